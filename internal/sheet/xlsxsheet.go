package sheet

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// OpenXLSX reads an Excel workbook into an in-memory Workbook. Every
// sheet is eagerly materialised row by row via excelize, the same
// library the report writers already depend on for building XLSX
// output.
func OpenXLSX(path string) (Workbook, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open xlsx %s: %w", path, err)
	}
	defer f.Close()

	names := f.GetSheetList()
	wb := &gridWorkbook{order: names, sheets: make(map[string]*gridSheet, len(names))}

	for _, name := range names {
		rows, err := f.GetRows(name)
		if err != nil {
			return nil, fmt.Errorf("read sheet %q: %w", name, err)
		}

		gs := &gridSheet{name: name, rows: make([]gridRow, len(rows))}
		for r, raw := range rows {
			cells := make([]Cell, len(raw))
			for c, v := range raw {
				cellName, err := excelize.CoordinatesToCellName(c+1, r+1)
				if err != nil {
					cells[c] = Cell{Value: v}
					continue
				}
				formula, _ := f.GetCellFormula(name, cellName)
				cells[c] = Cell{Value: v, Formula: formula}
			}
			gs.rows[r] = gridRow{cells: cells}
		}
		wb.sheets[name] = gs
	}

	return wb, nil
}
