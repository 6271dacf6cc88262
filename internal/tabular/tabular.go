//-------------------------------------------------------------------------
//
// SmartStore Warehouse Tools
//
// Portions copyright (c) 2025 - 2026, SmartStore Analytics
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

// Package tabular provides the in-memory table used between pipeline
// stages: an ordered column header plus string-valued rows, read from and
// written to delimited text files.
package tabular

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
)

// Table is a rectangular block of string cells under an ordered header.
type Table struct {
	Columns []string
	Rows    [][]string
}

// New creates an empty table with the given header.
func New(columns ...string) *Table {
	return &Table{Columns: columns}
}

// Len returns the number of data rows.
func (t *Table) Len() int {
	return len(t.Rows)
}

// AddRow appends a row. The row must have one cell per column.
func (t *Table) AddRow(row []string) {
	t.Rows = append(t.Rows, row)
}

// ColumnIndex returns the position of the named column, or -1.
func (t *Table) ColumnIndex(name string) int {
	for i, c := range t.Columns {
		if c == name {
			return i
		}
	}
	return -1
}

// ReadFile loads a CSV file into a table. The first record is the header.
// Rows shorter than the header are padded with empty cells; longer rows are
// truncated. A file containing only a header yields an empty table.
func ReadFile(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1 // raw extracts are ragged; pad/truncate below

	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("%s: no header row", path)
	}

	t := &Table{Columns: records[0]}
	width := len(t.Columns)
	for _, rec := range records[1:] {
		row := make([]string, width)
		copy(row, rec)
		t.Rows = append(t.Rows, row)
	}
	return t, nil
}

// WriteFile writes the table as CSV, creating parent directories as needed.
func (t *Table) WriteFile(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create directory for %s: %w", path, err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}

	w := csv.NewWriter(f)
	if err := w.Write(t.Columns); err != nil {
		f.Close()
		return fmt.Errorf("failed to write header to %s: %w", path, err)
	}
	for _, row := range t.Rows {
		if err := w.Write(row); err != nil {
			f.Close()
			return fmt.Errorf("failed to write row to %s: %w", path, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		f.Close()
		return fmt.Errorf("failed to flush %s: %w", path, err)
	}
	return f.Close()
}
