// Package html renders extracted rows as a static HTML table.
package html

import (
	"fmt"
	"html/template"
	"os"

	"sdlrecon/internal/config"
	"sdlrecon/internal/metadata"
	"sdlrecon/internal/model"
)

// Reporter writes an HTML table report.
type Reporter struct{}

// New creates a Reporter.
func New() *Reporter {
	return &Reporter{}
}

type reportData struct {
	SheetName string
	TotalRows int
	Columns   []string
	Rows      [][]string
	Warnings  []string
}

// Report renders rows and the summary to an HTML document.
func (r *Reporter) Report(rows []model.Row, summary *model.Summary, schema *metadata.Frozen, cfg *config.Config) error {
	data := reportData{
		SheetName: summary.SheetName,
		TotalRows: summary.TotalRows,
		Columns:   schema.Order,
	}

	for _, row := range rows {
		rendered := make([]string, len(schema.Order))
		for i, name := range schema.Order {
			if v, ok := row.ByName(name); ok {
				rendered[i] = v.Value()
			}
		}
		data.Rows = append(data.Rows, rendered)
	}

	for _, k := range summary.UnusedKeys {
		data.Warnings = append(data.Warnings, fmt.Sprintf("UnusedKey: %s", k))
	}
	for _, k := range summary.Duplicates {
		data.Warnings = append(data.Warnings, fmt.Sprintf("DuplicateHeader: %s", k))
	}

	f, err := os.Create(cfg.OutputPath("html"))
	if err != nil {
		return err
	}
	defer f.Close()

	tmpl, err := template.New("report").Parse(reportTemplate)
	if err != nil {
		return err
	}

	return tmpl.Execute(f, data)
}
