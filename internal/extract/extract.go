// Package extract binds frozen metadata to a concrete spreadsheet and
// walks its declared header and data ranges, tagging each data cell
// with its declared name and type and streaming the resulting rows to
// a caller-supplied sink.
package extract

import (
	"fmt"

	"sdlrecon/internal/celltype"
	"sdlrecon/internal/metadata"
	"sdlrecon/internal/model"
	"sdlrecon/internal/ref"
	"sdlrecon/internal/sheet"
)

// Warning is a non-fatal diagnostic raised during extraction.
// Kind is one of "DuplicateHeader" or "UnusedKey".
type Warning struct {
	Kind string
	Name string
	Type celltype.Tag
}

func (w Warning) String() string {
	return fmt.Sprintf("%s: %s (%s)", w.Kind, w.Name, w.Type)
}

// RowSink receives each extracted row as it completes. It returns
// nothing — Extract always accumulates and returns the full row
// sequence regardless of what a sink does with it.
type RowSink func(row model.Row)

// headerKey is one (name, type) pair recorded at a position in the
// header's 2D constructor array.
type headerKey struct {
	Name string
	Type celltype.Tag
}

// Instance is the transient binding between frozen metadata and a
// concrete workbook, produced by Validate. Extract consumes it; it is
// not safe for concurrent use by multiple goroutines — callers should
// use one Instance per thread during its lifetime.
type Instance struct {
	frozen     *metadata.Frozen
	workbook   sheet.Workbook
	unusedKeys map[string]bool
	onWarning  func(Warning)
}

// Validate binds frozen metadata to a workbook, without yet
// resolving a concrete sheet — the sheet is obtained lazily by
// Extract's first step, since only the first sheet of a workbook is
// ever used. onWarning may be nil, in which case warnings are
// silently discarded.
func Validate(frozen *metadata.Frozen, wb sheet.Workbook, onWarning func(Warning)) *Instance {
	if onWarning == nil {
		onWarning = func(Warning) {}
	}
	return &Instance{
		frozen:     frozen,
		workbook:   wb,
		unusedKeys: frozen.UnusedKeys(),
		onWarning:  onWarning,
	}
}

// Extract walks the header range to resolve per-position constructors,
// then walks the data range in row-major order, invoking sink once per
// completed row. It returns every row it produced, in emission order.
func (inst *Instance) Extract(sink RowSink) ([]model.Row, error) {
	if sink == nil {
		sink = func(model.Row) {}
	}

	names := inst.workbook.SheetNames()
	if len(names) == 0 {
		return nil, &NoSheetError{}
	}
	sh, err := inst.workbook.Sheet(names[0])
	if err != nil {
		return nil, err
	}

	header := inst.frozen.Header
	if err := checkBounds(sh, header); err != nil {
		return nil, err
	}

	headerGrid, err := inst.walkHeader(sh, header)
	if err != nil {
		return nil, err
	}

	for _, name := range orderedUnused(inst.frozen.Order, inst.unusedKeys) {
		inst.onWarning(Warning{Kind: "UnusedKey", Name: name, Type: inst.frozen.Keys[name]})
	}

	data := inst.frozen.Data
	if err := checkBounds(sh, data); err != nil {
		return nil, err
	}

	rows := make([]model.Row, 0, data.Height)
	for r := 0; r < data.Height; r++ {
		row := make(model.Row, 0, data.Width)
		for c := 0; c < data.Width; c++ {
			key := findConstructor(headerGrid, header.Height, header.Width, r, c)

			cell := sh.Row(data.Start.Row + r).Cell(data.Start.Column + c)
			value := model.CellValue{Type: key.Type, Name: key.Name, Cell: cell}
			if err := value.Check(); err != nil {
				return nil, err
			}
			row = append(row, value)
		}
		sink(row)
		rows = append(rows, row)
	}

	return rows, nil
}

// walkHeader reads the header range's cells in row-major order,
// resolves each against the declared keys, and records the result in
// a 2D grid matching the header range's own geometry.
func (inst *Instance) walkHeader(sh sheet.Sheet, header ref.Range) ([][]headerKey, error) {
	grid := make([][]headerKey, header.Height)
	for i := range grid {
		grid[i] = make([]headerKey, header.Width)
	}

	idx := 0
	for _, cell := range header.Cells() {
		r, c := idx/header.Width, idx%header.Width
		idx++

		sheetCell := sh.Row(cell.Row).Cell(cell.Column)
		if sheetCell.IsFormula() || sheetCell.Value == "" {
			return nil, &HeaderNotStringError{Row: cell.Row, Column: cell.Column}
		}

		value := sheetCell.Value
		tag, ok := inst.frozen.Keys[value]
		if !ok {
			return nil, &UnknownHeaderError{Value: value}
		}

		if inst.unusedKeys[value] {
			delete(inst.unusedKeys, value)
		} else {
			inst.onWarning(Warning{Kind: "DuplicateHeader", Name: value, Type: tag})
		}

		grid[r][c] = headerKey{Name: value, Type: tag}
	}

	return grid, nil
}

// findConstructor maps a data-region position to its header
// constructor via periodic (modular) indexing: row_idx = r mod R,
// col_idx = c mod C. This is correct for single-row and single-column
// headers (R==1 or C==1 respectively); periodic 2D headers are left
// undefined, since a 2D header range is rejected before extraction
// ever runs.
func findConstructor(grid [][]headerKey, rows, cols, r, c int) headerKey {
	return grid[r%rows][c%cols]
}

// checkBounds asserts the sheet is at least as large as r requires.
func checkBounds(sh sheet.Sheet, r ref.Range) error {
	if sh.Height() <= r.End.Row {
		return &RangeOutOfBoundsError{Range: r.String()}
	}
	for row := r.Start.Row; row <= r.End.Row; row++ {
		if sh.Row(row).Width() <= r.End.Column {
			return &RangeOutOfBoundsError{Range: r.String()}
		}
	}
	return nil
}

// orderedUnused returns the names still present in unused, in the
// metadata's original declaration order, so UnusedKey warnings read
// deterministically rather than in random map-iteration order.
func orderedUnused(order []string, unused map[string]bool) []string {
	result := make([]string, 0, len(unused))
	for _, name := range order {
		if unused[name] {
			result = append(result, name)
		}
	}
	return result
}
