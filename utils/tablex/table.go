// File: table.go
// Title: Core Table Type
// Description: Implements the Table value used by the tabular-data helpers:
//              an ordered column header plus string-cell rows, with schema
//              validation on construction and row append.
// Author: msto63
// Version: v0.1.0
// Created: 2025-03-06
// Modified: 2025-03-06
//
// Change History:
// - 2025-03-06 v0.1.0: Initial implementation with core table type

package tablex

import (
	"github.com/msto63/gox/core/errx"
	"github.com/msto63/gox/utils/slicex"
)

// Table represents tabular data as an ordered column header and rows of
// string cells. The zero value is not usable; construct tables through New
// or FromCSV.
type Table struct {
	columns []string
	index   map[string]int
	rows    [][]string
}

// Row provides named access to the cells of a single table row
type Row struct {
	index map[string]int
	cells []string
}

// New creates an empty table with the given column names. Column names must
// be non-empty and unique.
func New(columns ...string) (*Table, error) {
	if len(columns) == 0 {
		return nil, errx.New("table needs at least one column").
			WithCode(errx.CodeTableSchema)
	}

	index := make(map[string]int, len(columns))
	for i, col := range columns {
		if col == "" {
			return nil, errx.Newf("column %d has an empty name", i).
				WithCode(errx.CodeTableSchema)
		}
		if _, exists := index[col]; exists {
			return nil, errx.Newf("duplicate column name %q", col).
				WithCode(errx.CodeTableSchema).
				WithDetail("column", col)
		}
		index[col] = i
	}

	return &Table{
		columns: slicex.Clone(columns),
		index:   index,
	}, nil
}

// Columns returns a copy of the column names in order
func (t *Table) Columns() []string {
	return slicex.Clone(t.columns)
}

// HasColumn checks if the table has a column with the given name
func (t *Table) HasColumn(name string) bool {
	_, exists := t.index[name]
	return exists
}

// NumRows returns the number of rows
func (t *Table) NumRows() int {
	return len(t.rows)
}

// NumColumns returns the number of columns
func (t *Table) NumColumns() int {
	return len(t.columns)
}

// AppendRow adds a row to the table. The number of cells must match the
// number of columns.
func (t *Table) AppendRow(cells ...string) error {
	if len(cells) != len(t.columns) {
		return errx.Newf("row has %d cells, table has %d columns", len(cells), len(t.columns)).
			WithCode(errx.CodeTableSchema).
			WithDetail("cells", len(cells)).
			WithDetail("columns", len(t.columns))
	}

	t.rows = append(t.rows, slicex.Clone(cells))
	return nil
}

// Row returns named access to the row at the given index. The returned Row
// shares storage with the table; it is a view, not a copy.
func (t *Table) Row(i int) (Row, error) {
	if i < 0 || i >= len(t.rows) {
		return Row{}, errx.Newf("row index %d out of range [0, %d)", i, len(t.rows)).
			WithCode(errx.CodeInvalidInput)
	}
	return Row{index: t.index, cells: t.rows[i]}, nil
}

// Cell returns the cell at the given row index and column name
func (t *Table) Cell(row int, column string) (string, error) {
	r, err := t.Row(row)
	if err != nil {
		return "", err
	}

	value, ok := r.Get(column)
	if !ok {
		return "", errx.Newf("unknown column %q", column).
			WithCode(errx.CodeTableSchema).
			WithDetail("column", column)
	}
	return value, nil
}

// Column returns all values of the named column in row order
func (t *Table) Column(name string) ([]string, error) {
	i, ok := t.index[name]
	if !ok {
		return nil, errx.Newf("unknown column %q", name).
			WithCode(errx.CodeTableSchema).
			WithDetail("column", name)
	}

	values := make([]string, len(t.rows))
	for r, row := range t.rows {
		values[r] = row[i]
	}
	return values, nil
}

// Clone returns a deep copy of the table
func (t *Table) Clone() *Table {
	clone := &Table{
		columns: slicex.Clone(t.columns),
		index:   make(map[string]int, len(t.index)),
		rows:    make([][]string, len(t.rows)),
	}
	for k, v := range t.index {
		clone.index[k] = v
	}
	for i, row := range t.rows {
		clone.rows[i] = slicex.Clone(row)
	}
	return clone
}

// Get returns the cell value for the given column name
func (r Row) Get(column string) (string, bool) {
	i, ok := r.index[column]
	if !ok || i >= len(r.cells) {
		return "", false
	}
	return r.cells[i], true
}

// GetOr returns the cell value for the column, or def if the column is unknown
func (r Row) GetOr(column, def string) string {
	if v, ok := r.Get(column); ok {
		return v
	}
	return def
}

// Cells returns a copy of the row's cells in column order
func (r Row) Cells() []string {
	return slicex.Clone(r.cells)
}
