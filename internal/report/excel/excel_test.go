package excel

import (
	"os"
	"path/filepath"
	"testing"

	"sdlrecon/internal/celltype"
	"sdlrecon/internal/config"
	"sdlrecon/internal/metadata"
	"sdlrecon/internal/model"
	"sdlrecon/internal/sheet"

	"github.com/xuri/excelize/v2"
)

func TestExcelReport(t *testing.T) {
	schema := &metadata.Frozen{
		Order: []string{"Product", "Price"},
		Keys: map[string]celltype.Tag{
			"Product": celltype.String,
			"Price":   celltype.GBPxVAT,
		},
	}

	rows := []model.Row{
		{
			{Type: celltype.String, Name: "Product", Cell: sheet.Cell{Value: "Widget"}},
			{Type: celltype.GBPxVAT, Name: "Price", Cell: sheet.Cell{Value: "2.50"}},
		},
		{
			{Type: celltype.String, Name: "Product", Cell: sheet.Cell{Value: "Gadget"}},
			{Type: celltype.GBPxVAT, Name: "Price", Cell: sheet.Cell{Value: "5.00"}},
		},
	}

	summary := model.NewSummary("Sheet1")
	for _, r := range rows {
		summary.AddRow(r)
	}
	summary.AddUnusedKey("Quantity")

	dir := t.TempDir()
	cfg := &config.Config{
		Output: config.OutputConfig{Dir: dir, FileName: "report"},
	}

	if err := New().Report(rows, summary, schema, cfg); err != nil {
		t.Fatalf("Report failed: %v", err)
	}

	outputFile := filepath.Join(dir, "report.xlsx")
	if _, err := os.Stat(outputFile); err != nil {
		t.Fatalf("expected output file: %v", err)
	}

	f, err := excelize.OpenFile(outputFile)
	if err != nil {
		t.Fatalf("failed to reopen generated workbook: %v", err)
	}
	defer f.Close()

	dataRows, err := f.GetRows("Rows")
	if err != nil {
		t.Fatalf("failed to read Rows sheet: %v", err)
	}
	if len(dataRows) != 3 { // header + 2 rows
		t.Fatalf("expected 3 rows (incl. header), got %d", len(dataRows))
	}
	if dataRows[0][0] != "Product" || dataRows[0][1] != "Price" {
		t.Fatalf("unexpected header row: %v", dataRows[0])
	}
	// the Rows sheet is sorted by the first declared column (Product),
	// so "Gadget" sorts ahead of "Widget"
	if dataRows[1][0] != "Gadget" {
		t.Fatalf("unexpected first data row: %v", dataRows[1])
	}
}
