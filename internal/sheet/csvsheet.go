package sheet

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

// csvSheetName is the single, synthetic sheet name a CSV file is
// exposed under: CSV has no concept of multiple sheets, but the
// Workbook interface is shared across every provider.
const csvSheetName = "Sheet1"

// OpenCSV reads a single CSV file into an in-memory Workbook containing
// one sheet. Input is read as UTF-8 when valid; otherwise it falls back
// to Windows-1252, the common legacy export encoding for CSV files
// produced by older spreadsheet software.
func OpenCSV(path string) (Workbook, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("open csv %s: %w", path, err)
	}

	content := raw
	if !utf8.Valid(raw) {
		decoded, _, err := transform.Bytes(charmap.Windows1252.NewDecoder(), raw)
		if err == nil {
			content = decoded
		}
	}

	r := csv.NewReader(bytes.NewReader(content))
	r.FieldsPerRecord = -1

	var rows []gridRow
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("parse csv %s: %w", path, err)
		}

		cells := make([]Cell, len(record))
		for i, v := range record {
			cells[i] = Cell{Value: v}
		}
		rows = append(rows, gridRow{cells: cells})
	}

	gs := &gridSheet{name: csvSheetName, rows: rows}
	return &gridWorkbook{
		order:  []string{csvSheetName},
		sheets: map[string]*gridSheet{csvSheetName: gs},
	}, nil
}
