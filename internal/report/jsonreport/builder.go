// Package jsonreport writes a machine-readable dump of the declared
// column schema and the extracted rows, grounded on the shape of the
// teacher's openapi builder (describe a schema, marshal with
// encoding/json) repurposed from REST paths to SDL columns.
package jsonreport

import (
	"encoding/json"
	"os"

	"sdlrecon/internal/config"
	"sdlrecon/internal/metadata"
	"sdlrecon/internal/model"
)

// Reporter writes a JSON document describing the schema and rows.
type Reporter struct{}

// New creates a Reporter.
func New() *Reporter {
	return &Reporter{}
}

// Column describes one declared key by name and type.
type Column struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

type document struct {
	Sheet      string            `json:"sheet"`
	TotalRows  int               `json:"total_rows"`
	Schema     []Column          `json:"schema"`
	Rows       []map[string]any  `json:"rows"`
	UnusedKeys []string          `json:"unused_keys,omitempty"`
	Duplicates []string          `json:"duplicate_headers,omitempty"`
}

// Report marshals the schema, rows, and warnings to cfg.OutputPath("json").
func (r *Reporter) Report(rows []model.Row, summary *model.Summary, schema *metadata.Frozen, cfg *config.Config) error {
	doc := document{
		Sheet:      summary.SheetName,
		TotalRows:  summary.TotalRows,
		UnusedKeys: summary.UnusedKeys,
		Duplicates: summary.Duplicates,
	}

	for _, name := range schema.Order {
		doc.Schema = append(doc.Schema, Column{Name: name, Type: string(schema.Keys[name])})
	}

	for _, row := range rows {
		entry := make(map[string]any, len(schema.Order))
		for _, name := range schema.Order {
			if v, ok := row.ByName(name); ok {
				entry[name] = v.Value()
			}
		}
		doc.Rows = append(doc.Rows, entry)
	}

	f, err := os.Create(cfg.OutputPath("json"))
	if err != nil {
		return err
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}
