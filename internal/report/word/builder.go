// Package word writes a .docx summary of an extraction run by filling
// an embedded template.docx with docx.Replace.
package word

import (
	"embed"
	"fmt"
	"os"
	"strings"

	"sdlrecon/internal/config"
	"sdlrecon/internal/metadata"
	"sdlrecon/internal/model"

	"github.com/nguyenthenguyen/docx"
)

//go:embed template.docx
var templateFS embed.FS

// Reporter writes a .docx summary report.
type Reporter struct{}

// New creates a Reporter.
func New() *Reporter {
	return &Reporter{}
}

// Report fills in the embedded template with the run's statistics and
// warnings and writes it to cfg.Output.
func (r *Reporter) Report(rows []model.Row, summary *model.Summary, schema *metadata.Frozen, cfg *config.Config) error {
	templateBytes, err := templateFS.ReadFile("template.docx")
	if err != nil {
		return fmt.Errorf("failed to read embedded template: %w", err)
	}

	tmpFile, err := os.CreateTemp("", "sdlrecon-report-*.docx")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	defer os.Remove(tmpFile.Name())

	if _, err := tmpFile.Write(templateBytes); err != nil {
		return fmt.Errorf("failed to write template to temp file: %w", err)
	}
	if err := tmpFile.Close(); err != nil {
		return fmt.Errorf("failed to close temp file: %w", err)
	}

	d, err := docx.ReadDocxFile(tmpFile.Name())
	if err != nil {
		return fmt.Errorf("failed to read docx from temp file: %w", err)
	}
	defer d.Close()

	doc := d.Editable()

	doc.Replace("{{Date}}", "", -1)
	doc.Replace("{{SheetName}}", summary.SheetName, -1)
	doc.Replace("{{TotalRows}}", fmt.Sprintf("%d", summary.TotalRows), -1)
	doc.Replace("{{UnusedKeyCount}}", fmt.Sprintf("%d", len(summary.UnusedKeys)), -1)
	doc.Replace("{{DuplicateCount}}", fmt.Sprintf("%d", len(summary.Duplicates)), -1)
	doc.Replace("{{Content}}", buildContent(schema, summary), -1)

	return doc.WriteToFile(cfg.OutputPath("docx"))
}

func buildContent(schema *metadata.Frozen, summary *model.Summary) string {
	var sb strings.Builder

	sb.WriteString("Declared Columns:\n")
	for _, name := range schema.Order {
		sb.WriteString(fmt.Sprintf("  - %s (%s)\n", name, schema.Keys[name]))
	}

	if len(summary.UnusedKeys) > 0 {
		sb.WriteString("\nUnused Keys:\n")
		for _, k := range summary.UnusedKeys {
			sb.WriteString(fmt.Sprintf("  - %s\n", k))
		}
	}

	if len(summary.Duplicates) > 0 {
		sb.WriteString("\nDuplicate Headers:\n")
		for _, k := range summary.Duplicates {
			sb.WriteString(fmt.Sprintf("  - %s\n", k))
		}
	}

	return sb.String()
}
