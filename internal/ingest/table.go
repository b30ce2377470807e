// Package ingest reads spreadsheet and delimited files into an in-memory
// table that the profitability engine consumes.
package ingest

import "strings"

// Table is a raw tabular dataset: one header row plus string cells. Cells
// keep their source text untouched; all coercion happens in the engine's
// normalizer.
type Table struct {
	Header []string
	Rows   [][]string
	index  map[string]int
}

// NewTable builds a table and its column index. Header matching is
// case-insensitive and ignores surrounding whitespace, since spreadsheet
// exports are inconsistent about both. The first occurrence of a duplicated
// header wins.
func NewTable(header []string, rows [][]string) *Table {
	index := make(map[string]int, len(header))
	for i, name := range header {
		key := normalizeHeader(name)
		if _, exists := index[key]; !exists {
			index[key] = i
		}
	}
	return &Table{Header: header, Rows: rows, index: index}
}

// Column returns the index of the named column.
func (t *Table) Column(name string) (int, bool) {
	i, ok := t.index[normalizeHeader(name)]
	return i, ok
}

// HasColumn reports whether the named column exists.
func (t *Table) HasColumn(name string) bool {
	_, ok := t.Column(name)
	return ok
}

// Cell returns the cell at (row, col), or the empty string when the row is
// shorter than the header. Ragged rows are common in spreadsheet exports.
func (t *Table) Cell(row, col int) string {
	if row < 0 || row >= len(t.Rows) || col < 0 {
		return ""
	}
	cells := t.Rows[row]
	if col >= len(cells) {
		return ""
	}
	return cells[col]
}

func normalizeHeader(name string) string {
	return strings.ToUpper(strings.TrimSpace(name))
}
