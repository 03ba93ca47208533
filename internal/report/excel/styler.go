package excel

import (
	"sdlrecon/internal/celltype"

	"github.com/xuri/excelize/v2"
)

// styler holds the registered excelize style IDs used across the
// Overview and Rows sheets, one style per declared TypeTag plus a
// header and a warning style.
type styler struct {
	file *excelize.File

	headerStyle int
	warnStyle   int

	stringStyle  int
	moneyStyle   int
	numberStyle  int
	formulaStyle int
}

func newStyler(f *excelize.File) (*styler, error) {
	s := &styler{file: f}

	border := createBorder()

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"4472C4"}, Pattern: 1},
		Border:    border,
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return nil, err
	}
	s.headerStyle = headerStyle

	s.warnStyle, err = f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Color: "9C5700"},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"FFEB9C"}, Pattern: 1},
	})
	if err != nil {
		return nil, err
	}

	s.stringStyle, err = f.NewStyle(&excelize.Style{Border: border})
	if err != nil {
		return nil, err
	}

	gbpFmt := `£#,##0.00`
	s.moneyStyle, err = f.NewStyle(&excelize.Style{
		Border:        border,
		CustomNumFmt:  &gbpFmt,
		Fill:          excelize.Fill{Type: "pattern", Color: []string{"E2EFDA"}, Pattern: 1},
	})
	if err != nil {
		return nil, err
	}

	s.numberStyle, err = f.NewStyle(&excelize.Style{
		Border: border,
		Fill:   excelize.Fill{Type: "pattern", Color: []string{"DDEBF7"}, Pattern: 1},
	})
	if err != nil {
		return nil, err
	}

	s.formulaStyle, err = f.NewStyle(&excelize.Style{
		Border: border,
		Fill:   excelize.Fill{Type: "pattern", Color: []string{"FCE4D6"}, Pattern: 1},
	})
	if err != nil {
		return nil, err
	}

	return s, nil
}

func (s *styler) styleFor(tag celltype.Tag) int {
	switch tag {
	case celltype.GBPxVAT:
		return s.moneyStyle
	case celltype.Number:
		return s.numberStyle
	case celltype.Formula:
		return s.formulaStyle
	default:
		return s.stringStyle
	}
}

func createBorder() []excelize.Border {
	return []excelize.Border{
		{Type: "left", Color: "D9D9D9", Style: 1},
		{Type: "top", Color: "D9D9D9", Style: 1},
		{Type: "right", Color: "D9D9D9", Style: 1},
		{Type: "bottom", Color: "D9D9D9", Style: 1},
	}
}
