//-------------------------------------------------------------------------
//
// SmartStore Warehouse Tools
//
// Copyright (c) 2025 - 2026, SmartStore Analytics
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

// Package cleaner normalizes raw extracts into validated, deduplicated
// prepared tables. All behavior is driven by the dataset's declarative rule
// table; there is no per-dataset branching here.
package cleaner

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/smartstore/smartstore-dw/internal/datasets"
	"github.com/smartstore/smartstore-dw/internal/errdefs"
	"github.com/smartstore/smartstore-dw/internal/logging"
	"github.com/smartstore/smartstore-dw/internal/tabular"
)

// Report carries the cleaning counters for one dataset.
type Report struct {
	Dataset string
	RowsIn  int
	RowsOut int

	// Rows rejected, by reason. A row is counted once, under the first
	// rule it fails.
	DroppedMissing   int // missing cell under a drop-row policy
	DroppedType      int // present but unparseable value
	DroppedDuplicate int // primary key already seen
	DroppedRange     int // value outside its declared bounds

	// Defaulted counts substituted values, not rows; a row may have
	// several cells defaulted.
	Defaulted int
}

// Dropped returns the total number of rejected rows.
func (r *Report) Dropped() int {
	return r.DroppedMissing + r.DroppedType + r.DroppedDuplicate + r.DroppedRange
}

type cellStatus int

const (
	cellOK cellStatus = iota
	cellDefaulted
	cellMissing
	cellBadType
)

// Clean applies the dataset's rule table to a raw table and returns the
// prepared table plus counters. Rules run in declared order: column
// presence, per-cell missing policy and type coercion, primary-key
// deduplication (first seen wins), then range checks. A non-empty input
// that yields zero accepted rows fails with a schema error.
func Clean(spec *datasets.Spec, raw *tabular.Table) (*tabular.Table, *Report, error) {
	report := &Report{Dataset: spec.Name, RowsIn: raw.Len()}

	// Every declared column must resolve to a raw header. Undeclared raw
	// columns are ignored.
	colIdx := make([]int, len(spec.Columns))
	for i := range spec.Columns {
		col := &spec.Columns[i]
		colIdx[i] = -1
		for j, header := range raw.Columns {
			if col.Matches(header) {
				colIdx[i] = j
				break
			}
		}
		if colIdx[i] == -1 {
			return nil, report, errdefs.NewSchemaError(
				spec.Name, col.Name, "required column absent from input")
		}
	}

	keyIdx := -1
	for i := range spec.Columns {
		if spec.Columns[i].Name == spec.Key {
			keyIdx = i
			break
		}
	}
	if keyIdx == -1 {
		return nil, report, errdefs.NewSchemaError(
			spec.Name, spec.Key, "key column not declared in rule table")
	}

	out := tabular.New(spec.ColumnNames()...)
	seen := make(map[string]struct{}, raw.Len())

rows:
	for _, rawRow := range raw.Rows {
		row := make([]string, len(spec.Columns))
		for i := range spec.Columns {
			col := &spec.Columns[i]
			cell, status := cleanCell(col, rawRow[colIdx[i]])
			switch status {
			case cellMissing:
				report.DroppedMissing++
				logging.Debug().
					Str("dataset", spec.Name).
					Str("column", col.Name).
					Msg("Dropping row with missing value")
				continue rows
			case cellBadType:
				report.DroppedType++
				logging.Debug().
					Str("dataset", spec.Name).
					Str("column", col.Name).
					Str("value", clip(rawRow[colIdx[i]])).
					Msg("Dropping row with unparseable value")
				continue rows
			case cellDefaulted:
				report.Defaulted++
			}
			row[i] = cell
		}

		// First row seen keeps the key; later holders are discarded.
		key := row[keyIdx]
		if _, dup := seen[key]; dup {
			report.DroppedDuplicate++
			logging.Debug().
				Str("dataset", spec.Name).
				Str("key", key).
				Msg("Discarding duplicate key")
			continue
		}
		seen[key] = struct{}{}

		for i := range spec.Columns {
			col := &spec.Columns[i]
			if col.Range == nil {
				continue
			}
			v, err := strconv.ParseFloat(row[i], 64)
			if err != nil || !col.Range.Contains(v) {
				report.DroppedRange++
				logging.Debug().
					Str("dataset", spec.Name).
					Str("column", col.Name).
					Str("value", row[i]).
					Msg("Dropping row outside declared range")
				continue rows
			}
		}

		out.AddRow(row)
		report.RowsOut++
	}

	if report.RowsIn > 0 && report.RowsOut == 0 {
		return nil, report, errdefs.NewSchemaError(spec.Name, "", fmt.Sprintf(
			"no rows accepted from %d input rows; rules or input likely misconfigured",
			report.RowsIn))
	}
	return out, report, nil
}

// cleanCell applies the missing-value policy and type coercion for one cell.
func cleanCell(col *datasets.Column, raw string) (string, cellStatus) {
	v := strings.TrimSpace(raw)
	defaulted := false

	if isMissing(v) {
		if col.OnMissing == datasets.DropRow {
			return "", cellMissing
		}
		v = col.Default
		defaulted = true
	}

	coerced, ok := coerce(col, v)
	if !ok {
		return "", cellBadType
	}
	if defaulted {
		return coerced, cellDefaulted
	}
	return coerced, cellOK
}

// isMissing reports whether a trimmed cell is empty or a placeholder token.
func isMissing(v string) bool {
	switch strings.ToLower(v) {
	case "", "null", "nan", "none":
		return true
	}
	return false
}

// coerce parses a cell under the column's declared type and re-formats it
// canonically: integers without leading zeros, floats in plain decimal
// notation, dates as 2006-01-02, text optionally lowercased and trimmed.
func coerce(col *datasets.Column, v string) (string, bool) {
	switch col.Type {
	case datasets.Int:
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return "", false
		}
		return strconv.FormatInt(n, 10), true

	case datasets.Float:
		if col.PercentSuffix {
			v = strings.TrimSuffix(v, "%")
		}
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return "", false
		}
		return strconv.FormatFloat(f, 'f', -1, 64), true

	case datasets.Date:
		layouts := col.Layouts
		if len(layouts) == 0 {
			layouts = datasets.DateLayouts
		}
		for _, layout := range layouts {
			if ts, err := time.Parse(layout, v); err == nil {
				return ts.Format(datasets.DateLayouts[0]), true
			}
		}
		return "", false

	default: // Text
		if col.Normalize {
			v = strings.ToLower(v)
		}
		return v, true
	}
}

func clip(s string) string {
	s = strings.TrimSpace(s)
	if len(s) > 32 {
		return s[:32]
	}
	return s
}
