// Package model holds the row and summary types produced by the
// extraction engine.
package model

import (
	"fmt"

	"sdlrecon/internal/celltype"
	"sdlrecon/internal/sheet"
)

// CellValue is the result of binding one data-region cell to a
// declared key: its type tag, its declared name, and the underlying
// cell it was read from.
type CellValue struct {
	Type celltype.Tag
	Name string
	Cell sheet.Cell
}

// Value returns the cell's underlying textual value.
func (v CellValue) Value() string { return v.Cell.Value }

// Check is a no-op hook reserved for future per-type validation.
func (v CellValue) Check() error { return nil }

// String renders the value for diagnostics.
func (v CellValue) String() string {
	return fmt.Sprintf("%s=%q (%s)", v.Name, v.Value(), v.Type)
}

// Row is one extracted data row, in header column order.
type Row []CellValue

// ByName returns the first CellValue in the row with the given
// declared name, and whether one was found.
func (r Row) ByName(name string) (CellValue, bool) {
	for _, v := range r {
		if v.Name == name {
			return v, true
		}
	}
	return CellValue{}, false
}

// Summary holds the aggregate statistics gathered across an
// extraction run: the total row count, the number of extracted cells
// per declared type (RowsByType), plus the non-fatal warnings raised
// along the way.
type Summary struct {
	SheetName  string
	TotalRows  int
	RowsByType map[celltype.Tag]int
	UnusedKeys []string
	Duplicates []string
}

// NewSummary creates an empty Summary ready to be populated as
// extraction proceeds.
func NewSummary(sheetName string) *Summary {
	return &Summary{
		SheetName:  sheetName,
		RowsByType: make(map[celltype.Tag]int),
	}
}

// AddRow folds one extracted row into the running totals.
func (s *Summary) AddRow(row Row) {
	s.TotalRows++
	for _, v := range row {
		s.RowsByType[v.Type]++
	}
}

// AddUnusedKey records an UnusedKey warning.
func (s *Summary) AddUnusedKey(name string) {
	s.UnusedKeys = append(s.UnusedKeys, name)
}

// AddDuplicateHeader records a DuplicateHeader warning.
func (s *Summary) AddDuplicateHeader(name string) {
	s.Duplicates = append(s.Duplicates, name)
}
