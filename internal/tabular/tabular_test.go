package tabular

import (
	"os"
	"path/filepath"
	"testing"
)

func TestNewAndAddRow(t *testing.T) {
	tbl := New("id", "name")
	if tbl.Len() != 0 {
		t.Errorf("Expected empty table, got %d rows", tbl.Len())
	}

	tbl.AddRow([]string{"1", "stapler"})
	tbl.AddRow([]string{"2", "desk lamp"})

	if tbl.Len() != 2 {
		t.Errorf("Expected 2 rows, got %d", tbl.Len())
	}
	if tbl.Rows[1][1] != "desk lamp" {
		t.Errorf("Expected desk lamp, got %q", tbl.Rows[1][1])
	}
}

func TestColumnIndex(t *testing.T) {
	tbl := New("id", "name", "price")

	if idx := tbl.ColumnIndex("name"); idx != 1 {
		t.Errorf("Expected index 1 for name, got %d", idx)
	}
	if idx := tbl.ColumnIndex("missing"); idx != -1 {
		t.Errorf("Expected -1 for missing column, got %d", idx)
	}
}

func TestWriteReadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "products.csv")

	tbl := New("id", "name", "price")
	tbl.AddRow([]string{"1", "stapler", "7.50"})
	tbl.AddRow([]string{"2", "lamp, desk", "24.99"}) // embedded comma
	tbl.AddRow([]string{"3", `8" tablet`, "199.00"}) // embedded quote

	if err := tbl.WriteFile(path); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	got, err := ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}

	if len(got.Columns) != 3 {
		t.Fatalf("Expected 3 columns, got %d", len(got.Columns))
	}
	if got.Len() != tbl.Len() {
		t.Fatalf("Expected %d rows, got %d", tbl.Len(), got.Len())
	}
	for i, row := range tbl.Rows {
		for j, cell := range row {
			if got.Rows[i][j] != cell {
				t.Errorf("Row %d col %d: expected %q, got %q",
					i, j, cell, got.Rows[i][j])
			}
		}
	}
}

func TestWriteFileCreatesParentDirs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "deeply", "out.csv")

	tbl := New("id")
	tbl.AddRow([]string{"1"})

	if err := tbl.WriteFile(path); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("Expected file to exist: %v", err)
	}
}

func TestReadFileRaggedRows(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ragged.csv")
	content := "id,name,price\n" +
		"1,stapler\n" + // short: padded
		"2,lamp,24.99,extra\n" + // long: truncated
		"3,pen,1.50\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to write fixture: %v", err)
	}

	tbl, err := ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	if tbl.Len() != 3 {
		t.Fatalf("Expected 3 rows, got %d", tbl.Len())
	}
	for i, row := range tbl.Rows {
		if len(row) != 3 {
			t.Errorf("Row %d: expected width 3, got %d", i, len(row))
		}
	}
	if tbl.Rows[0][2] != "" {
		t.Errorf("Expected short row padded with empty cell, got %q", tbl.Rows[0][2])
	}
	if tbl.Rows[1][2] != "24.99" {
		t.Errorf("Expected long row truncated after price, got %q", tbl.Rows[1][2])
	}
}

func TestReadFileHeaderOnly(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.csv")
	if err := os.WriteFile(path, []byte("id,name\n"), 0o644); err != nil {
		t.Fatalf("Failed to write fixture: %v", err)
	}

	tbl, err := ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	if tbl.Len() != 0 {
		t.Errorf("Expected 0 rows, got %d", tbl.Len())
	}
	if len(tbl.Columns) != 2 {
		t.Errorf("Expected 2 columns, got %d", len(tbl.Columns))
	}
}

func TestReadFileNoHeader(t *testing.T) {
	path := filepath.Join(t.TempDir(), "blank.csv")
	if err := os.WriteFile(path, []byte(""), 0o644); err != nil {
		t.Fatalf("Failed to write fixture: %v", err)
	}

	if _, err := ReadFile(path); err == nil {
		t.Error("Expected error for file without header row")
	}
}

func TestReadFileMissing(t *testing.T) {
	if _, err := ReadFile(filepath.Join(t.TempDir(), "nope.csv")); err == nil {
		t.Error("Expected error for missing file")
	}
}
