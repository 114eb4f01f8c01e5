// File: csv.go
// Title: CSV Conversion for Tables
// Description: Implements RFC 4180 CSV reading and writing for Table values
//              with configurable separators and optional explicit column
//              headers for headerless data.
// Author: msto63
// Version: v0.1.0
// Created: 2025-03-06
// Modified: 2025-03-06
//
// Change History:
// - 2025-03-06 v0.1.0: Initial implementation with CSV conversion

package tablex

import (
	"encoding/csv"
	"io"
	"strings"

	"github.com/msto63/gox/core/errx"
)

// csvOptions holds the configuration shared by the CSV reader and writer
type csvOptions struct {
	comma     rune
	columns   []string
	trimSpace bool
}

// CSVOption configures CSV reading or writing
type CSVOption func(*csvOptions)

// WithComma sets the field separator (default ',')
func WithComma(comma rune) CSVOption {
	return func(o *csvOptions) {
		o.comma = comma
	}
}

// WithColumns supplies explicit column names for headerless input. When set,
// the first record is treated as data rather than a header row.
func WithColumns(columns ...string) CSVOption {
	return func(o *csvOptions) {
		o.columns = columns
	}
}

// WithTrimSpace trims leading and trailing whitespace from every cell on read
func WithTrimSpace() CSVOption {
	return func(o *csvOptions) {
		o.trimSpace = true
	}
}

func buildCSVOptions(opts []CSVOption) csvOptions {
	options := csvOptions{comma: ','}
	for _, opt := range opts {
		opt(&options)
	}
	return options
}

// FromCSV reads CSV data into a new table. The first record is used as the
// column header unless WithColumns supplies explicit names.
func FromCSV(r io.Reader, opts ...CSVOption) (*Table, error) {
	options := buildCSVOptions(opts)

	reader := csv.NewReader(r)
	reader.Comma = options.comma

	records, err := reader.ReadAll()
	if err != nil {
		return nil, errx.Wrap(err, "cannot parse CSV input").
			WithCode(errx.CodeTableParse)
	}

	columns := options.columns
	dataStart := 0
	if columns == nil {
		if len(records) == 0 {
			return nil, errx.New("CSV input has no header row").
				WithCode(errx.CodeTableParse)
		}
		columns = records[0]
		dataStart = 1
	}

	table, err := New(columns...)
	if err != nil {
		return nil, err
	}

	for i, record := range records[dataStart:] {
		if options.trimSpace {
			for j, cell := range record {
				record[j] = strings.TrimSpace(cell)
			}
		}
		if err := table.AppendRow(record...); err != nil {
			return nil, errx.Wrapf(err, "CSV record %d does not match header", dataStart+i+1).
				WithCode(errx.CodeTableParse)
		}
	}
	return table, nil
}

// FromCSVString reads CSV data from a string into a new table
func FromCSVString(s string, opts ...CSVOption) (*Table, error) {
	return FromCSV(strings.NewReader(s), opts...)
}

// WriteCSV writes the table as CSV, header row first
func (t *Table) WriteCSV(w io.Writer, opts ...CSVOption) error {
	options := buildCSVOptions(opts)

	writer := csv.NewWriter(w)
	writer.Comma = options.comma

	if err := writer.Write(t.columns); err != nil {
		return errx.Wrap(err, "cannot write CSV header").
			WithCode(errx.CodeSerialization)
	}
	for _, row := range t.rows {
		if err := writer.Write(row); err != nil {
			return errx.Wrap(err, "cannot write CSV row").
				WithCode(errx.CodeSerialization)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return errx.Wrap(err, "cannot flush CSV output").
			WithCode(errx.CodeSerialization)
	}
	return nil
}

// ToCSVString renders the table as a CSV string, header row first
func (t *Table) ToCSVString(opts ...CSVOption) (string, error) {
	var b strings.Builder
	if err := t.WriteCSV(&b, opts...); err != nil {
		return "", err
	}
	return b.String(), nil
}
