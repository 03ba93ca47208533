package html

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"sdlrecon/internal/celltype"
	"sdlrecon/internal/config"
	"sdlrecon/internal/metadata"
	"sdlrecon/internal/model"
	"sdlrecon/internal/sheet"
)

func TestHTMLReport(t *testing.T) {
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
	}

	summary := model.NewSummary("Sheet1")
	summary.AddRow(rows[0])
	summary.AddDuplicateHeader("Product")

	dir := t.TempDir()
	cfg := &config.Config{
		Output: config.OutputConfig{Dir: dir, FileName: "report"},
	}

	if err := New().Report(rows, summary, schema, cfg); err != nil {
		t.Fatalf("Report failed: %v", err)
	}

	out, err := os.ReadFile(filepath.Join(dir, "report.html"))
	if err != nil {
		t.Fatalf("failed to read generated report: %v", err)
	}

	html := string(out)
	if !strings.Contains(html, "Widget") {
		t.Error("expected cell value in HTML output")
	}
	if !strings.Contains(html, "DuplicateHeader: Product") {
		t.Error("expected warning in HTML output")
	}
}
