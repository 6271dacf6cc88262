//-------------------------------------------------------------------------
//
// SmartStore Warehouse Tools
//
// Copyright (c) 2025 - 2026, SmartStore Analytics
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

// Package pipeline exposes the batch stages the CLI drives: cleaning raw
// extracts into prepared tables, loading the warehouse, and building the
// cube artifact. Each stage processes every dataset it can and joins the
// per-dataset fatal errors; per-row rejections are counted in the reports,
// never raised.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/smartstore/smartstore-dw/internal/cleaner"
	"github.com/smartstore/smartstore-dw/internal/cube"
	"github.com/smartstore/smartstore-dw/internal/datasets"
	"github.com/smartstore/smartstore-dw/internal/errdefs"
	"github.com/smartstore/smartstore-dw/internal/logging"
	"github.com/smartstore/smartstore-dw/internal/tabular"
	"github.com/smartstore/smartstore-dw/internal/warehouse"
)

// CleanAll cleans every registered dataset's raw extract from rawDir into
// preparedDir. When only is non-empty, just that dataset runs. A failing
// dataset does not stop its siblings; the per-dataset errors come back
// joined.
func CleanAll(rawDir, preparedDir, only string) ([]*cleaner.Report, error) {
	specs := datasets.All()
	if only != "" {
		spec, err := datasets.Get(only)
		if err != nil {
			return nil, err
		}
		specs = []*datasets.Spec{spec}
	}

	var reports []*cleaner.Report
	var errs []error

	for _, spec := range specs {
		rawPath := filepath.Join(rawDir, spec.RawFile)
		if _, err := os.Stat(rawPath); err != nil {
			errs = append(errs, errdefs.NewInputMissingError(spec.Name, rawPath))
			logging.Warn().
				Str("dataset", spec.Name).
				Str("path", rawPath).
				Msg("Raw extract missing, skipping")
			continue
		}

		raw, err := tabular.ReadFile(rawPath)
		if err != nil {
			errs = append(errs, fmt.Errorf("failed to read raw extract %s: %w", spec.Name, err))
			continue
		}

		prepared, report, err := cleaner.Clean(spec, raw)
		if report != nil {
			reports = append(reports, report)
		}
		if err != nil {
			errs = append(errs, err)
			continue
		}

		if err := prepared.WriteFile(filepath.Join(preparedDir, spec.PreparedFile)); err != nil {
			errs = append(errs, fmt.Errorf("failed to write prepared table %s: %w", spec.Name, err))
			continue
		}

		logging.Info().
			Str("dataset", spec.Name).
			Int("rows_in", report.RowsIn).
			Int("rows_out", report.RowsOut).
			Int("dropped_missing", report.DroppedMissing).
			Int("dropped_type", report.DroppedType).
			Int("dropped_duplicate", report.DroppedDuplicate).
			Int("dropped_range", report.DroppedRange).
			Int("defaulted", report.Defaulted).
			Msg("Cleaned dataset")
	}

	return reports, errors.Join(errs...)
}

// LoadAll loads the prepared tables under preparedDir into the warehouse at
// dbPath, creating the database file as needed.
func LoadAll(ctx context.Context, preparedDir, dbPath string) (*warehouse.LoadReport, error) {
	db, err := warehouse.Open(ctx, dbPath)
	if err != nil {
		return nil, err
	}
	defer db.Close()

	return warehouse.NewLoader(db).Load(ctx, preparedDir)
}

// BuildCube builds the (dims, measure) cube from the warehouse at dbPath and,
// when outPath is non-empty, writes the cube artifact there.
func BuildCube(ctx context.Context, dbPath string, dims [2]string, measure, outPath string) (*cube.Cube, error) {
	if _, err := os.Stat(dbPath); err != nil {
		return nil, errdefs.NewInputMissingError("warehouse", dbPath)
	}

	db, err := warehouse.Open(ctx, dbPath)
	if err != nil {
		return nil, err
	}
	defer db.Close()

	c, err := cube.Build(ctx, db, dims, measure)
	if err != nil {
		return nil, err
	}

	if outPath != "" {
		if err := c.WriteCSV(outPath); err != nil {
			return nil, fmt.Errorf("failed to write cube artifact: %w", err)
		}
		logging.Info().
			Str("path", outPath).
			Int("cells", len(c.Cells)).
			Msg("Wrote cube artifact")
	}

	return c, nil
}
