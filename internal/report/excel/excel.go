// Package excel writes extracted rows to a styled XLSX workbook.
package excel

import (
	"fmt"

	"sdlrecon/internal/celltype"
	"sdlrecon/internal/config"
	"sdlrecon/internal/metadata"
	"sdlrecon/internal/model"
	"sdlrecon/internal/report/common"

	"github.com/xuri/excelize/v2"
)

// Reporter writes extracted rows to an XLSX workbook via excelize.
type Reporter struct{}

// New creates a Reporter.
func New() *Reporter {
	return &Reporter{}
}

// Report generates the Excel report: an Overview sheet with run
// statistics and warnings, and a Rows sheet with one row per
// extracted record, coloured by declared column type.
func (r *Reporter) Report(rows []model.Row, summary *model.Summary, schema *metadata.Frozen, cfg *config.Config) error {
	f := excelize.NewFile()
	styler, err := newStyler(f)
	if err != nil {
		return err
	}

	if err := writeOverview(f, styler, summary); err != nil {
		return err
	}
	if err := writeRows(f, styler, schema, rows); err != nil {
		return err
	}

	if idx, err := f.GetSheetIndex("Sheet1"); err == nil && idx != -1 {
		f.DeleteSheet("Sheet1")
	}

	return f.SaveAs(cfg.OutputPath("xlsx"))
}

func writeOverview(f *excelize.File, s *styler, summary *model.Summary) error {
	sheet := "Overview"
	f.NewSheet(sheet)

	writeRow(f, sheet, 1, []string{"Metric", "Count"}, s.headerStyle)
	row := 2

	f.SetCellValue(sheet, fmt.Sprintf("A%d", row), "Sheet")
	f.SetCellValue(sheet, fmt.Sprintf("B%d", row), summary.SheetName)
	row++

	f.SetCellValue(sheet, fmt.Sprintf("A%d", row), "Total Rows")
	f.SetCellValue(sheet, fmt.Sprintf("B%d", row), summary.TotalRows)
	row++

	for _, tag := range []celltype.Tag{celltype.String, celltype.GBPxVAT, celltype.Number, celltype.Formula} {
		f.SetCellValue(sheet, fmt.Sprintf("A%d", row), fmt.Sprintf("%s cells", tag))
		f.SetCellValue(sheet, fmt.Sprintf("B%d", row), summary.RowsByType[tag])
		row++
	}

	row++
	writeRow(f, sheet, row, []string{"Unused Keys"}, s.headerStyle)
	row++
	for _, k := range summary.UnusedKeys {
		f.SetCellValue(sheet, fmt.Sprintf("A%d", row), k)
		f.SetCellStyle(sheet, fmt.Sprintf("A%d", row), fmt.Sprintf("A%d", row), s.warnStyle)
		row++
	}

	row++
	writeRow(f, sheet, row, []string{"Duplicate Headers"}, s.headerStyle)
	row++
	for _, k := range summary.Duplicates {
		f.SetCellValue(sheet, fmt.Sprintf("A%d", row), k)
		f.SetCellStyle(sheet, fmt.Sprintf("A%d", row), fmt.Sprintf("A%d", row), s.warnStyle)
		row++
	}

	f.SetColWidth(sheet, "A", "B", 30)
	return nil
}

func writeRows(f *excelize.File, s *styler, schema *metadata.Frozen, rows []model.Row) error {
	sheet := "Rows"
	f.NewSheet(sheet)

	writeRow(f, sheet, 1, schema.Order, s.headerStyle)
	f.SetPanes(sheet, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	})

	if len(schema.Order) > 0 {
		rows = common.SortRows(rows, schema.Order[0])
	}

	for i, row := range rows {
		excelRow := i + 2
		for _, name := range schema.Order {
			v, ok := row.ByName(name)
			col, _ := excelize.CoordinatesToCellName(indexOf(schema.Order, name)+1, excelRow)
			if !ok {
				continue
			}
			f.SetCellValue(sheet, col, v.Value())
			f.SetCellStyle(sheet, col, col, s.styleFor(v.Type))
		}
	}

	f.SetColWidth(sheet, "A", fmt.Sprintf("%c", 'A'+len(schema.Order)-1), 24)
	return nil
}

func writeRow(f *excelize.File, sheet string, row int, values []string, style int) {
	for i, val := range values {
		cell, _ := excelize.CoordinatesToCellName(i+1, row)
		f.SetCellValue(sheet, cell, val)
		f.SetCellStyle(sheet, cell, cell, style)
	}
}

func indexOf(values []string, target string) int {
	for i, v := range values {
		if v == target {
			return i
		}
	}
	return -1
}
