// File: ops.go
// Title: Table Operations
// Description: Implements filtering, projection, merging, and row
//              deduplication over Table values. All operations return new
//              tables and never modify their receivers.
// Author: msto63
// Version: v0.1.0
// Created: 2025-03-06
// Modified: 2025-03-06
//
// Change History:
// - 2025-03-06 v0.1.0: Initial implementation with table operations

package tablex

import (
	"strconv"
	"strings"

	"github.com/msto63/gox/core/errx"
	"github.com/msto63/gox/core/log"
	"github.com/msto63/gox/utils/slicex"
)

// MergeMode controls how Merge reconciles the schemas of two tables
type MergeMode int

const (
	// MergeStrict requires both tables to have identical columns in
	// identical order and fails otherwise
	MergeStrict MergeMode = iota

	// MergeUnion appends rows over the union of both column sets, filling
	// cells absent from a source table with the empty string
	MergeUnion
)

// Filter returns a new table containing only rows matching the predicate
func (t *Table) Filter(predicate func(Row) bool) *Table {
	result := t.emptyLike()
	if predicate == nil {
		return result
	}

	for _, cells := range t.rows {
		if predicate(Row{index: t.index, cells: cells}) {
			result.rows = append(result.rows, slicex.Clone(cells))
		}
	}
	return result
}

// Select returns a new table restricted to the named columns, in the order
// given
func (t *Table) Select(columns ...string) (*Table, error) {
	result, err := New(columns...)
	if err != nil {
		return nil, err
	}

	indices := make([]int, len(columns))
	for i, col := range columns {
		idx, ok := t.index[col]
		if !ok {
			return nil, errx.Newf("unknown column %q", col).
				WithCode(errx.CodeTableSchema).
				WithDetail("column", col)
		}
		indices[i] = idx
	}

	for _, row := range t.rows {
		cells := make([]string, len(indices))
		for i, idx := range indices {
			cells[i] = row[idx]
		}
		result.rows = append(result.rows, cells)
	}
	return result, nil
}

// Merge combines two tables into a new one. MergeStrict requires identical
// schemas; MergeUnion reconciles differing schemas over the column union,
// keeping the receiver's column order and appending the other table's extra
// columns at the end.
func (t *Table) Merge(other *Table, mode MergeMode) (*Table, error) {
	if other == nil {
		return t.Clone(), nil
	}

	switch mode {
	case MergeStrict:
		if !slicex.Equal(t.columns, other.columns) {
			return nil, errx.New("tables have different schemas").
				WithCode(errx.CodeTableSchema).
				WithDetail("left", strings.Join(t.columns, ",")).
				WithDetail("right", strings.Join(other.columns, ","))
		}

		result := t.Clone()
		for _, row := range other.rows {
			result.rows = append(result.rows, slicex.Clone(row))
		}
		return result, nil

	case MergeUnion:
		columns := slicex.Clone(t.columns)
		for _, col := range other.columns {
			if !t.HasColumn(col) {
				columns = append(columns, col)
			}
		}

		if len(columns) != len(t.columns) || len(columns) != len(other.columns) {
			log.Default().Named("tablex").Debug("merge reconciling schemas",
				log.Field("left_columns", len(t.columns)),
				log.Field("right_columns", len(other.columns)),
				log.Field("union_columns", len(columns)))
		}

		result, err := New(columns...)
		if err != nil {
			return nil, err
		}

		appendAligned := func(src *Table) {
			for _, row := range src.rows {
				cells := make([]string, len(columns))
				for i, col := range columns {
					if idx, ok := src.index[col]; ok {
						cells[i] = row[idx]
					}
				}
				result.rows = append(result.rows, cells)
			}
		}
		appendAligned(t)
		appendAligned(other)
		return result, nil

	default:
		return nil, errx.Newf("unknown merge mode %d", mode).
			WithCode(errx.CodeInvalidInput)
	}
}

// Distinct returns a new table with duplicate rows removed; the first
// occurrence wins and row order is preserved
func (t *Table) Distinct() *Table {
	result := t.emptyLike()
	seen := make(map[string]bool, len(t.rows))

	for _, row := range t.rows {
		key := rowKey(row)
		if !seen[key] {
			seen[key] = true
			result.rows = append(result.rows, slicex.Clone(row))
		}
	}
	return result
}

// DistinctBy returns a new table with rows deduplicated by the values of the
// named columns only; the first occurrence wins
func (t *Table) DistinctBy(columns ...string) (*Table, error) {
	indices := make([]int, len(columns))
	for i, col := range columns {
		idx, ok := t.index[col]
		if !ok {
			return nil, errx.Newf("unknown column %q", col).
				WithCode(errx.CodeTableSchema).
				WithDetail("column", col)
		}
		indices[i] = idx
	}

	result := t.emptyLike()
	seen := make(map[string]bool, len(t.rows))

	for _, row := range t.rows {
		parts := make([]string, len(indices))
		for i, idx := range indices {
			parts[i] = row[idx]
		}
		key := rowKey(parts)
		if !seen[key] {
			seen[key] = true
			result.rows = append(result.rows, slicex.Clone(row))
		}
	}
	return result, nil
}

// emptyLike returns an empty table with the receiver's schema
func (t *Table) emptyLike() *Table {
	return &Table{
		columns: slicex.Clone(t.columns),
		index:   t.index,
	}
}

// rowKey builds a collision-safe key for a row by length-prefixing each
// cell, so ["a","bc"] and ["ab","c"] produce different keys
func rowKey(cells []string) string {
	var b strings.Builder
	for _, c := range cells {
		b.WriteString(strconv.Itoa(len(c)))
		b.WriteByte(':')
		b.WriteString(c)
		b.WriteByte(';')
	}
	return b.String()
}
