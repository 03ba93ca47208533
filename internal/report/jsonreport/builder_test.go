package jsonreport

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"sdlrecon/internal/celltype"
	"sdlrecon/internal/config"
	"sdlrecon/internal/metadata"
	"sdlrecon/internal/model"
	"sdlrecon/internal/sheet"
)

func TestJSONReport(t *testing.T) {
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
	summary.AddUnusedKey("Quantity")

	dir := t.TempDir()
	cfg := &config.Config{
		Output: config.OutputConfig{Dir: dir, FileName: "report"},
	}

	if err := New().Report(rows, summary, schema, cfg); err != nil {
		t.Fatalf("Report failed: %v", err)
	}

	raw, err := os.ReadFile(filepath.Join(dir, "report.json"))
	if err != nil {
		t.Fatalf("failed to read generated report: %v", err)
	}

	var doc document
	if err := json.Unmarshal(raw, &doc); err != nil {
		t.Fatalf("failed to decode report: %v", err)
	}

	if doc.Sheet != "Sheet1" || doc.TotalRows != 1 {
		t.Fatalf("unexpected document: %+v", doc)
	}
	if len(doc.Schema) != 2 {
		t.Fatalf("expected 2 schema columns, got %d", len(doc.Schema))
	}
	if len(doc.Rows) != 1 || doc.Rows[0]["Product"] != "Widget" {
		t.Fatalf("unexpected rows: %v", doc.Rows)
	}
	if len(doc.UnusedKeys) != 1 || doc.UnusedKeys[0] != "Quantity" {
		t.Fatalf("unexpected unused keys: %v", doc.UnusedKeys)
	}
}
