// File: doc.go
// Title: Package Documentation for tablex
// Description: Package tablex provides tabular-data helpers around a simple
//              Table value: CSV conversion, filtering, projection, merging,
//              and row deduplication.
// Author: msto63
// Version: v0.1.0
// Created: 2025-03-06
// Modified: 2025-03-06
//
// Change History:
// - 2025-03-06 v0.1.0: Initial documentation

// Package tablex provides tabular-data helpers.
//
// Overview
//
// A Table is an ordered column header plus rows of string cells. Tables are
// immutable with respect to their operations: Filter, Select, Merge,
// Distinct, and DistinctBy all return new tables and leave the receiver
// untouched. Only AppendRow mutates a table, and only the one it is called
// on.
//
//	t, _ := tablex.New("name", "city")
//	_ = t.AppendRow("Ada", "London")
//	_ = t.AppendRow("Ada", "London")
//	deduped := t.Distinct() // one row
//
// CSV
//
// FromCSV and WriteCSV speak RFC 4180 through encoding/csv. The first record
// is the header unless WithColumns supplies names for headerless data; the
// separator is configurable with WithComma:
//
//	t, err := tablex.FromCSVString(data, tablex.WithComma(';'), tablex.WithTrimSpace())
//
// Merging
//
// Merge takes an explicit MergeMode. MergeStrict fails with CodeTableSchema
// when the schemas differ; MergeUnion reconciles them over the column union,
// filling missing cells with the empty string and reporting the
// reconciliation at debug level through core/log.
package tablex
