// Package report defines the row-sink reporter interface and the
// factory that turns requested output formats into concrete
// reporters.
package report

import (
	"strings"

	"sdlrecon/internal/config"
	"sdlrecon/internal/metadata"
	"sdlrecon/internal/model"
	"sdlrecon/internal/report/excel"
	"sdlrecon/internal/report/html"
	"sdlrecon/internal/report/jsonreport"
	"sdlrecon/internal/report/word"
)

// Reporter is the unified interface for all output strategies. A
// reporter receives the full set of extracted rows, the run summary,
// and the declared column schema, and writes its own artifact under
// cfg.Output.Dir.
type Reporter interface {
	Report(rows []model.Row, summary *model.Summary, schema *metadata.Frozen, cfg *config.Config) error
}

// GetReporters returns one Reporter per requested format, skipping
// duplicates and unrecognised names.
func GetReporters(formats []string) []Reporter {
	reporters := []Reporter{}
	seen := make(map[string]bool)

	for _, f := range formats {
		f = strings.ToLower(strings.TrimSpace(f))
		if seen[f] {
			continue
		}
		seen[f] = true

		switch f {
		case "excel", "xlsx":
			reporters = append(reporters, excel.New())
		case "html":
			reporters = append(reporters, html.New())
		case "word", "docx":
			reporters = append(reporters, word.New())
		case "json", "jsonreport":
			reporters = append(reporters, jsonreport.New())
		}
	}

	return reporters
}
