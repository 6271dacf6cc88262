//-------------------------------------------------------------------------
//
// SmartStore Warehouse Tools
//
// Copyright (c) 2025 - 2026, SmartStore Analytics
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

package warehouse

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/smartstore/smartstore-dw/internal/datagen"
	"github.com/smartstore/smartstore-dw/internal/datasets"
	"github.com/smartstore/smartstore-dw/internal/errdefs"
	"github.com/smartstore/smartstore-dw/internal/logging"
	"github.com/smartstore/smartstore-dw/internal/tabular"
)

// progressInterval is the number of inserted rows between progress log lines.
const progressInterval = 10000

// TableReport carries the load counters for one warehouse table.
type TableReport struct {
	Table    string
	RowsIn   int
	Inserted int

	// DuplicateSkipped counts rows whose key was already loaded with
	// identical attributes; DuplicateConflicts counts rows whose key was
	// already loaded with different attributes. Neither is inserted.
	DuplicateSkipped   int
	DuplicateConflicts int

	// MissingReference counts fact rows with an unresolved foreign key.
	MissingReference int

	// Malformed counts rows whose cells failed typed conversion.
	Malformed int

	// MissingInput marks a prepared table that was absent on disk.
	MissingInput bool
}

// LoadReport aggregates the per-table reports for one load pass.
type LoadReport struct {
	Tables map[string]*TableReport
}

// TotalInserted returns the number of rows inserted across all tables.
func (r *LoadReport) TotalInserted() int {
	total := 0
	for _, tr := range r.Tables {
		total += tr.Inserted
	}
	return total
}

// Loader populates the star schema from prepared tables.
type Loader struct {
	db *sql.DB
}

// NewLoader creates a loader over an open warehouse database.
func NewLoader(db *sql.DB) *Loader {
	return &Loader{db: db}
}

// Load recreates the schema and populates it from the prepared tables under
// preparedDir, dimensions before the fact, inside one transaction; readers
// never observe a partially loaded schema. A missing prepared table is fatal
// for that table only; the loader proceeds with the tables it has and the
// returned error joins the per-table failures. Re-running against unchanged
// prepared tables yields identical counts.
func (l *Loader) Load(ctx context.Context, preparedDir string) (*LoadReport, error) {
	specs := datasets.All()
	report := &LoadReport{Tables: make(map[string]*TableReport, len(specs))}

	var errs []error

	// Read every prepared table up front so gaps are known before the
	// schema is touched.
	tables := make(map[string]*tabular.Table, len(specs))
	for _, spec := range specs {
		tr := &TableReport{Table: spec.Table}
		report.Tables[spec.Table] = tr

		path := filepath.Join(preparedDir, spec.PreparedFile)
		if _, err := os.Stat(path); err != nil {
			tr.MissingInput = true
			errs = append(errs, errdefs.NewInputMissingError(spec.Name, path))
			logging.Warn().
				Str("dataset", spec.Name).
				Str("path", path).
				Msg("Prepared table missing, skipping")
			continue
		}

		t, err := tabular.ReadFile(path)
		if err != nil {
			errs = append(errs, fmt.Errorf("failed to read prepared table %s: %w", spec.Name, err))
			continue
		}
		tables[spec.Name] = t
		tr.RowsIn = t.Len()
	}

	tx, err := l.db.BeginTx(ctx, nil)
	if err != nil {
		return report, fmt.Errorf("failed to begin load transaction: %w", err)
	}
	defer tx.Rollback()

	if err := DropSchema(ctx, tx); err != nil {
		return report, fmt.Errorf("failed to drop schema: %w", err)
	}
	if err := CreateSchema(ctx, tx); err != nil {
		return report, fmt.Errorf("failed to create schema: %w", err)
	}

	// Dimension keys loaded in this pass. Fact references resolve against
	// these, never against rows from a previous load.
	keysets := make(map[string]map[string]struct{})

	for _, spec := range specs {
		t, ok := tables[spec.Name]
		if !ok {
			continue
		}
		tr := report.Tables[spec.Table]

		keys, err := loadTable(ctx, tx, spec, t, tr, keysets)
		if err != nil {
			errs = append(errs, err)
		}
		if spec.Role == datasets.RoleDimension {
			keysets[spec.Table] = keys
		}

		logging.Info().
			Str("table", spec.Table).
			Int("rows_in", tr.RowsIn).
			Int("inserted", tr.Inserted).
			Int("duplicates_skipped", tr.DuplicateSkipped).
			Int("duplicate_conflicts", tr.DuplicateConflicts).
			Int("missing_references", tr.MissingReference).
			Int("malformed", tr.Malformed).
			Msg("Loaded table")
	}

	if err := tx.Commit(); err != nil {
		return report, fmt.Errorf("failed to commit load: %w", err)
	}

	if err := SaveLoadInfo(ctx, l.db, report); err != nil {
		errs = append(errs, fmt.Errorf("failed to save load metadata: %w", err))
	}

	logging.Info().
		Int("tables", len(tables)).
		Int("total_inserted", report.TotalInserted()).
		Msg("Load complete")

	return report, errors.Join(errs...)
}

// loadTable inserts one prepared table and returns the set of keys inserted.
// Per-row violations are counted and skipped; the table as a whole fails
// only when a non-empty input yields zero inserted rows.
func loadTable(ctx context.Context, tx *sql.Tx, spec *datasets.Spec, t *tabular.Table,
	tr *TableReport, keysets map[string]map[string]struct{}) (map[string]struct{}, error) {

	keys := make(map[string]struct{}, t.Len())

	// Resolve the prepared table's header against the declared columns.
	srcIdx := make([]int, len(spec.Columns))
	for i := range spec.Columns {
		srcIdx[i] = t.ColumnIndex(spec.Columns[i].Name)
		if srcIdx[i] == -1 {
			return keys, errdefs.NewSchemaError(spec.Name, spec.Columns[i].Name,
				"column absent from prepared table")
		}
	}

	pos := make(map[string]int, len(spec.Columns))
	for i, c := range spec.Columns {
		pos[c.Name] = i
	}
	keyIdx, ok := pos[spec.Key]
	if !ok {
		return keys, errdefs.NewSchemaError(spec.Name, spec.Key,
			"key column not declared in rule table")
	}

	names := spec.ColumnNames()
	marks := make([]string, len(names))
	for i := range marks {
		marks[i] = "?"
	}
	stmt, err := tx.PrepareContext(ctx, fmt.Sprintf(
		"INSERT INTO %s (%s) VALUES (%s)",
		spec.Table, strings.Join(names, ", "), strings.Join(marks, ", ")))
	if err != nil {
		return keys, fmt.Errorf("failed to prepare insert for %s: %w", spec.Table, err)
	}
	defer stmt.Close()

	// First row seen claims its key; later holders are compared against it.
	first := make(map[string][]string, t.Len())
	progress := datagen.NewProgressReporter(spec.Table, int64(t.Len()), progressInterval)

	for _, row := range t.Rows {
		cells := make([]string, len(spec.Columns))
		for i := range spec.Columns {
			cells[i] = row[srcIdx[i]]
		}

		vals, ok := convertRow(spec, cells)
		if !ok {
			tr.Malformed++
			continue
		}

		key := cells[keyIdx]
		if prev, dup := first[key]; dup {
			if slices.Equal(cells, prev) {
				tr.DuplicateSkipped++
			} else {
				tr.DuplicateConflicts++
				logging.Warn().
					Str("table", spec.Table).
					Str("key", key).
					Msg("Duplicate key with conflicting attributes, keeping first row")
			}
			continue
		}
		first[key] = cells

		resolved := true
		for _, fk := range spec.ForeignKeys {
			if _, ok := keysets[fk.Table][cells[pos[fk.Column]]]; !ok {
				resolved = false
				break
			}
		}
		if !resolved {
			tr.MissingReference++
			continue
		}

		// The keyset checks make constraint failures impossible; the
		// database raising one anyway means the pass cannot be trusted.
		if _, err := stmt.ExecContext(ctx, vals...); err != nil {
			return keys, errdefs.NewIntegrityError(spec.Table, key, err.Error())
		}
		keys[key] = struct{}{}
		tr.Inserted++
		progress.Update(1)
	}

	if t.Len() > 0 && tr.Inserted == 0 {
		return keys, errdefs.NewSchemaError(spec.Name, "", fmt.Sprintf(
			"no rows inserted from %d prepared rows; input likely misconfigured", t.Len()))
	}
	progress.Done()
	return keys, nil
}

// convertRow coerces prepared cells into driver values per the declared
// column types. Prepared data is normally canonical already; anything that
// fails here is counted as malformed rather than passed to the driver.
func convertRow(spec *datasets.Spec, cells []string) ([]any, bool) {
	vals := make([]any, len(spec.Columns))
	for i := range spec.Columns {
		switch spec.Columns[i].Type {
		case datasets.Int:
			n, err := strconv.ParseInt(cells[i], 10, 64)
			if err != nil {
				return nil, false
			}
			vals[i] = n

		case datasets.Float:
			f, err := strconv.ParseFloat(cells[i], 64)
			if err != nil {
				return nil, false
			}
			vals[i] = f

		case datasets.Date:
			if _, err := time.Parse(datasets.DateLayouts[0], cells[i]); err != nil {
				return nil, false
			}
			vals[i] = cells[i]

		default:
			vals[i] = cells[i]
		}
	}
	return vals, true
}
