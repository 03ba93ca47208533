// Package common holds helpers shared across reporter implementations.
package common

import (
	"sort"

	"sdlrecon/internal/model"
)

// SortRows returns a copy of rows sorted by the string value of the
// named column, ascending. Rows missing the column sort first.
func SortRows(rows []model.Row, column string) []model.Row {
	sorted := make([]model.Row, len(rows))
	copy(sorted, rows)

	sort.SliceStable(sorted, func(i, j int) bool {
		vi, oki := sorted[i].ByName(column)
		vj, okj := sorted[j].ByName(column)
		if !oki {
			return okj
		}
		if !okj {
			return false
		}
		return vi.Value() < vj.Value()
	})

	return sorted
}
