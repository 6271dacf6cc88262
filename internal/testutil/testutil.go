//-------------------------------------------------------------------------
//
// SmartStore Warehouse Tools
//
// Copyright (c) 2025 - 2026, SmartStore Analytics
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

// Package testutil provides fixture helpers shared by the package tests.
package testutil

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"
)

// TempWarehousePath returns a path for a throwaway warehouse database under
// the test's temp directory.
func TempWarehousePath(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "test_warehouse.db")
}

// WriteCSV writes a CSV file with the given header and rows, creating parent
// directories as needed.
func WriteCSV(t *testing.T, path string, header []string, rows [][]string) {
	t.Helper()

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("Failed to create fixture directory: %v", err)
	}
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("Failed to create fixture %s: %v", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(header); err != nil {
		t.Fatalf("Failed to write fixture header: %v", err)
	}
	for _, row := range rows {
		if err := w.Write(row); err != nil {
			t.Fatalf("Failed to write fixture row: %v", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		t.Fatalf("Failed to flush fixture %s: %v", path, err)
	}
}

// ReadCSV reads a CSV file and returns its header and data rows.
func ReadCSV(t *testing.T, path string) ([]string, [][]string) {
	t.Helper()

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("Failed to open %s: %v", path, err)
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatalf("Failed to parse %s: %v", path, err)
	}
	if len(records) == 0 {
		t.Fatalf("%s: no header row", path)
	}
	return records[0], records[1:]
}
