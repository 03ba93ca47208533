// Package ref parses and represents A1-style spreadsheet cell and
// range references.
package ref

import (
	"fmt"
	"regexp"
	"strconv"
)

var cellPattern = regexp.MustCompile(`^([A-Z]+)([1-9][0-9]*)$`)

// BadReferenceError reports a cell or range specifier that does not
// match the A1 grammar.
type BadReferenceError struct {
	Spec string
}

func (e *BadReferenceError) Error() string {
	return fmt.Sprintf("bad reference: %q is not a valid cell or range specifier", e.Spec)
}

// Kind identifies the error category for diagnostics and logging.
func (e *BadReferenceError) Kind() string { return "BadReference" }

// UnsupportedError reports a syntactically recognised but not-yet
// implemented reference form (currently: named ranges).
type UnsupportedError struct {
	Feature string
}

func (e *UnsupportedError) Error() string {
	return fmt.Sprintf("unsupported: %s", e.Feature)
}

// Kind identifies the error category for diagnostics and logging.
func (e *UnsupportedError) Kind() string { return "Unsupported" }

// EmptyRangeError reports a range whose end is before its start on at
// least one axis.
type EmptyRangeError struct {
	Spec string
}

func (e *EmptyRangeError) Error() string {
	return fmt.Sprintf("empty range: %q has an end before its start", e.Spec)
}

// Kind identifies the error category for diagnostics and logging.
func (e *EmptyRangeError) Kind() string { return "EmptyRange" }

// Cell is an immutable zero-based (column, row) pair, plus the
// original textual specifier for diagnostics.
type Cell struct {
	Column int
	Row    int
	text   string
}

// String renders the cell's original textual form.
func (c Cell) String() string {
	return c.text
}

// ParseCell parses an A1-style cell specifier such as "A1" or "AA12".
// The alpha portion is base-26 with letter values 1..26 ('A'=1,
// 'Z'=26, 'AA'=27, ...); the computed column index is (base26 - 1).
func ParseCell(spec string) (Cell, error) {
	m := cellPattern.FindStringSubmatch(spec)
	if m == nil {
		return Cell{}, &BadReferenceError{Spec: spec}
	}

	letters, digits := m[1], m[2]

	n := 0
	for _, c := range letters {
		n = n*26 + int(c-'A'+1)
	}

	row, err := strconv.Atoi(digits)
	if err != nil {
		// cellPattern already guarantees a decimal run, so this can't
		// realistically fail, but surface it as a bad reference rather
		// than panicking.
		return Cell{}, &BadReferenceError{Spec: spec}
	}

	return Cell{Column: n - 1, Row: row - 1, text: spec}, nil
}

// Range is an immutable (start, end) pair of cells plus its derived
// width and height.
type Range struct {
	Start  Cell
	End    Cell
	Width  int
	Height int
}

var rangePattern = regexp.MustCompile(`^([^:!]+):([^:!]+)$`)
var namedRangePattern = regexp.MustCompile(`^[^!]+![^!]+$`)

// ParseRange parses a range specifier, either a literal "<cell>:<cell>"
// form or a named "<sheet>!<name>" form. Named ranges are syntactically
// recognised but rejected with UnsupportedError, per spec.
func ParseRange(spec string) (Range, error) {
	if namedRangePattern.MatchString(spec) {
		return Range{}, &UnsupportedError{Feature: "named range"}
	}

	m := rangePattern.FindStringSubmatch(spec)
	if m == nil {
		return Range{}, &BadReferenceError{Spec: spec}
	}

	start, err := ParseCell(m[1])
	if err != nil {
		return Range{}, err
	}
	end, err := ParseCell(m[2])
	if err != nil {
		return Range{}, err
	}

	width := end.Column - start.Column + 1
	height := end.Row - start.Row + 1
	if width < 1 || height < 1 {
		return Range{}, &EmptyRangeError{Spec: spec}
	}

	return Range{Start: start, End: end, Width: width, Height: height}, nil
}

// String renders the range in its canonical "<start>:<end>" form.
func (r Range) String() string {
	return fmt.Sprintf("%s:%s", r.Start, r.End)
}

// IsOneDimensional reports whether the range is a single row or a
// single column (or both, for a 1x1 range).
func (r Range) IsOneDimensional() bool {
	return r.Width == 1 || r.Height == 1
}

// Cells returns every cell in the range in row-major order.
func (r Range) Cells() []Cell {
	cells := make([]Cell, 0, r.Width*r.Height)
	for row := r.Start.Row; row <= r.End.Row; row++ {
		for col := r.Start.Column; col <= r.End.Column; col++ {
			cells = append(cells, Cell{Column: col, Row: row})
		}
	}
	return cells
}
