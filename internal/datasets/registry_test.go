//-------------------------------------------------------------------------
//
// SmartStore Warehouse Tools
//
// Copyright (c) 2025 - 2026, SmartStore Analytics
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

package datasets_test

import (
	"testing"

	"github.com/smartstore/smartstore-dw/internal/datagen"
	"github.com/smartstore/smartstore-dw/internal/datasets"
	// Import dataset packages to trigger their init() functions which
	// register the datasets
	_ "github.com/smartstore/smartstore-dw/internal/datasets/customers"
	_ "github.com/smartstore/smartstore-dw/internal/datasets/products"
	_ "github.com/smartstore/smartstore-dw/internal/datasets/sales"
)

func TestGet(t *testing.T) {
	knownDatasets := []string{
		"customers",
		"products",
		"sales",
	}

	for _, name := range knownDatasets {
		t.Run(name, func(t *testing.T) {
			spec, err := datasets.Get(name)
			if err != nil {
				t.Fatalf("Failed to get dataset '%s': %v", name, err)
			}
			if spec.Name != name {
				t.Errorf("Dataset name mismatch: expected '%s', got '%s'",
					name, spec.Name)
			}
			if spec.Description == "" {
				t.Error("Dataset description should not be empty")
			}
			if spec.Role != datasets.RoleDimension && spec.Role != datasets.RoleFact {
				t.Errorf("Unexpected role: %s", spec.Role)
			}
			if spec.Seed == nil {
				t.Error("Dataset has no seeder")
			}
		})
	}
}

func TestGetInvalidDataset(t *testing.T) {
	_, err := datasets.Get("nonexistent")
	if err == nil {
		t.Error("Expected error for unknown dataset, got nil")
	}
}

func TestListSorted(t *testing.T) {
	names := datasets.List()
	want := []string{"customers", "products", "sales"}

	if len(names) != len(want) {
		t.Fatalf("Expected %d datasets, got %d: %v", len(want), len(names), names)
	}
	for i, name := range want {
		if names[i] != name {
			t.Errorf("Position %d: expected %s, got %s", i, name, names[i])
		}
	}
}

func TestAllOrdersDimensionsBeforeFact(t *testing.T) {
	specs := datasets.All()
	if len(specs) != 3 {
		t.Fatalf("Expected 3 specs, got %d", len(specs))
	}

	sawFact := false
	for _, spec := range specs {
		if spec.Role == datasets.RoleFact {
			sawFact = true
		}
		if sawFact && spec.Role == datasets.RoleDimension {
			t.Errorf("Dimension %s ordered after a fact", spec.Name)
		}
	}
	if specs[0].Name != "customers" || specs[1].Name != "products" {
		t.Errorf("Expected dimensions sorted alphabetically, got %s, %s",
			specs[0].Name, specs[1].Name)
	}
	if specs[2].Name != "sales" {
		t.Errorf("Expected sales last, got %s", specs[2].Name)
	}
}

// TestSpecConsistency checks the structural invariants the pipeline relies
// on: declared keys, distinct file names, and resolvable foreign keys.
func TestSpecConsistency(t *testing.T) {
	tables := make(map[string]*datasets.Spec)
	for _, spec := range datasets.All() {
		tables[spec.Table] = spec
	}

	for _, spec := range datasets.All() {
		t.Run(spec.Name, func(t *testing.T) {
			if spec.Table == "" {
				t.Error("Spec has no warehouse table")
			}
			if spec.RawFile == "" || spec.PreparedFile == "" {
				t.Error("Spec has empty file names")
			}
			if spec.RawFile == spec.PreparedFile {
				t.Error("Raw and prepared file names must differ")
			}

			if _, ok := spec.Column(spec.Key); !ok {
				t.Errorf("Key column %s not declared in rule table", spec.Key)
			}

			for _, fk := range spec.ForeignKeys {
				if _, ok := spec.Column(fk.Column); !ok {
					t.Errorf("Foreign key column %s not declared", fk.Column)
				}
				ref, ok := tables[fk.Table]
				if !ok {
					t.Errorf("Foreign key references unknown table %s", fk.Table)
					continue
				}
				if ref.Role != datasets.RoleDimension {
					t.Errorf("Foreign key references non-dimension table %s", fk.Table)
				}
				if ref.Key != fk.Ref {
					t.Errorf("Foreign key ref %s is not the key of %s",
						fk.Ref, fk.Table)
				}
			}

			if spec.Role == datasets.RoleFact && len(spec.ForeignKeys) == 0 {
				t.Error("Fact dataset declares no foreign keys")
			}
		})
	}
}

// TestSeedHeadersResolve checks that every seeded extract's legacy headers
// resolve against the dataset's declared columns.
func TestSeedHeadersResolve(t *testing.T) {
	f := datagen.NewFakerWithSeed(7)
	params := datasets.SeedParams{
		Rows: 5, DirtyPercent: 0, Customers: 5, Products: 5,
	}

	for _, spec := range datasets.All() {
		t.Run(spec.Name, func(t *testing.T) {
			raw := spec.Seed(f, params)
			if raw.Len() != params.Rows {
				t.Errorf("Expected %d rows, got %d", params.Rows, raw.Len())
			}

			for i := range spec.Columns {
				col := &spec.Columns[i]
				found := false
				for _, header := range raw.Columns {
					if col.Matches(header) {
						found = true
						break
					}
				}
				if !found {
					t.Errorf("No raw header resolves to column %s", col.Name)
				}
			}
		})
	}
}

func TestSeedReproducible(t *testing.T) {
	params := datasets.SeedParams{
		Rows: 20, DirtyPercent: 30, Customers: 20, Products: 20,
	}

	for _, spec := range datasets.All() {
		t.Run(spec.Name, func(t *testing.T) {
			a := spec.Seed(datagen.NewFakerWithSeed(99), params)
			b := spec.Seed(datagen.NewFakerWithSeed(99), params)

			if a.Len() != b.Len() {
				t.Fatalf("Row counts differ: %d vs %d", a.Len(), b.Len())
			}
			for i := range a.Rows {
				for j := range a.Rows[i] {
					if a.Rows[i][j] != b.Rows[i][j] {
						t.Fatalf("Row %d col %d differs: %q vs %q",
							i, j, a.Rows[i][j], b.Rows[i][j])
					}
				}
			}
		})
	}
}
