// Package e2e drives the full validator/extractor/reporter pipeline
// against an in-memory workbook, the same way cmd/sdlrecon wires the
// pieces together, without shelling out to a built binary.
package e2e

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"

	"sdlrecon/internal/config"
	"sdlrecon/internal/extract"
	"sdlrecon/internal/metadata"
	"sdlrecon/internal/model"
	"sdlrecon/internal/report"
	"sdlrecon/internal/sdl"
	"sdlrecon/internal/sheet"
)

const catalogDoc = `# Product catalog sample
declare-type	"Product"	String
declare-type	"Price"	GBPxVAT
declare-type	"Quantity"	Number
declare-header	A1:C1
declare-data	A2:C5`

func buildCatalogWorkbook(t *testing.T) string {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()

	grid := [][]string{
		{"Product", "Price", "Quantity"},
		{"Widget", "2.50", "10"},
		{"Gadget", "9.99", "3"},
		{"Gizmo", "14.00", "7"},
		{"Sprocket", "0.75", "120"},
	}
	for r, row := range grid {
		for c, v := range row {
			cellName, err := excelize.CoordinatesToCellName(c+1, r+1)
			if err != nil {
				t.Fatalf("CoordinatesToCellName: %v", err)
			}
			f.SetCellValue("Sheet1", cellName, v)
		}
	}

	path := filepath.Join(t.TempDir(), "catalog.xlsx")
	if err := f.SaveAs(path); err != nil {
		t.Fatalf("SaveAs: %v", err)
	}
	return path
}

func parseCatalogMetadata(t *testing.T) *metadata.Frozen {
	t.Helper()
	state, err := sdl.New(strings.NewReader(catalogDoc)).Parse()
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	frozen, err := state.Validate()
	if err != nil {
		t.Fatalf("Validate: %v", err)
	}
	return frozen
}

// TestEndToEndFlow exercises every stage of the pipeline — parse,
// validate, extract, report — against a catalog workbook and checks
// that each configured reporter produces a non-empty file.
func TestEndToEndFlow(t *testing.T) {
	frozen := parseCatalogMetadata(t)
	sheetPath := buildCatalogWorkbook(t)

	wb, err := sheet.Open(sheetPath)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}

	var warnings []extract.Warning
	inst := extract.Validate(frozen, wb, func(w extract.Warning) {
		warnings = append(warnings, w)
	})
	if len(warnings) != 0 {
		t.Fatalf("expected no warnings, got %v", warnings)
	}

	summary := model.NewSummary("Sheet1")
	rows, err := inst.Extract(func(row model.Row) { summary.AddRow(row) })
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if len(rows) != 4 {
		t.Fatalf("expected 4 rows, got %d", len(rows))
	}

	cfg := &config.Config{
		Output: config.OutputConfig{
			Dir:      t.TempDir(),
			FileName: "e2e_report",
			Formats:  []string{"excel", "html", "word", "json"},
		},
	}

	reporters := report.GetReporters(cfg.Output.Formats)
	if len(reporters) != 4 {
		t.Fatalf("expected 4 reporters, got %d", len(reporters))
	}
	for _, rep := range reporters {
		if err := rep.Report(rows, summary, frozen, cfg); err != nil {
			t.Fatalf("Report: %v", err)
		}
	}

	expected := []string{
		"e2e_report.xlsx",
		"e2e_report.html",
		"e2e_report.docx",
		"e2e_report.json",
	}
	for _, name := range expected {
		path := filepath.Join(cfg.Output.Dir, name)
		info, err := os.Stat(path)
		if err != nil {
			t.Errorf("expected output file missing: %s (%v)", name, err)
			continue
		}
		if info.Size() == 0 {
			t.Errorf("output file is empty: %s", name)
		}
	}

	validateExcelRowsPopulated(t, filepath.Join(cfg.Output.Dir, "e2e_report.xlsx"), len(frozen.Order))
	validateJSONHasFields(t, filepath.Join(cfg.Output.Dir, "e2e_report.json"))
}

// validateExcelRowsPopulated is the zero-tolerance check for the
// extracted Rows sheet: every declared column must have a value in
// every data row. This is stricter than cmd/sdldebug's verify
// subcommand, which skips columns that are blank in every row.
func validateExcelRowsPopulated(t *testing.T, path string, columnCount int) {
	t.Helper()
	f, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatalf("OpenFile: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows("Rows")
	if err != nil {
		t.Fatalf("GetRows: %v", err)
	}
	if len(rows) < 2 {
		t.Fatalf("expected a header row plus data rows, got %d rows", len(rows))
	}
	if len(rows[0]) != columnCount {
		t.Fatalf("expected %d header columns, got %d", columnCount, len(rows[0]))
	}
	for r, row := range rows[1:] {
		for c := 0; c < columnCount; c++ {
			if c >= len(row) || strings.TrimSpace(row[c]) == "" {
				t.Errorf("row %d column %d is empty", r+2, c)
			}
		}
	}
}

// validateJSONHasFields checks the JSON reporter emitted the declared
// column names, not some internal renaming of them.
func validateJSONHasFields(t *testing.T, path string) {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	body := string(data)
	for _, field := range []string{"Product", "Price", "Quantity", "Widget", "Sprocket"} {
		if !strings.Contains(body, field) {
			t.Errorf("expected JSON report to contain %q, got:\n%s", field, body)
		}
	}
}
