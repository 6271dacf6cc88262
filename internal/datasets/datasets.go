//-------------------------------------------------------------------------
//
// SmartStore Warehouse Tools
//
// Copyright (c) 2025 - 2026, SmartStore Analytics
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

// Package datasets defines the declarative rule tables that drive cleaning,
// loading, and seeding. Each dataset is registered by its own subpackage at
// init time; adding a dataset means adding data, not new code paths.
package datasets

import (
	"strings"

	"github.com/smartstore/smartstore-dw/internal/datagen"
	"github.com/smartstore/smartstore-dw/internal/tabular"
)

// ColumnType is the semantic type a cleaned column must satisfy.
type ColumnType string

// Column types.
const (
	Text  ColumnType = "text"
	Int   ColumnType = "int"
	Float ColumnType = "float"
	Date  ColumnType = "date"
)

// MissingPolicy decides what happens to a row whose cell is missing.
type MissingPolicy string

// Missing-value policies. Every column declares one explicitly.
const (
	// DropRow rejects the whole row and counts it.
	DropRow MissingPolicy = "drop"

	// UseDefault substitutes the column's declared default.
	UseDefault MissingPolicy = "default"
)

// Role distinguishes dimension datasets from fact datasets. Dimensions are
// always loaded before facts.
type Role string

// Dataset roles.
const (
	RoleDimension Role = "dimension"
	RoleFact      Role = "fact"
)

// NumericRange is an inclusive bound on a numeric column.
type NumericRange struct {
	Min float64
	Max float64
}

// Range builds a bound for use in a rule table literal.
func Range(min, max float64) *NumericRange {
	return &NumericRange{Min: min, Max: max}
}

// Contains reports whether v falls inside the bound.
func (r *NumericRange) Contains(v float64) bool {
	return v >= r.Min && v <= r.Max
}

// Column declares the cleaning rules for one canonical column.
type Column struct {
	// Name is the canonical (warehouse) column name.
	Name string

	// Aliases are raw header spellings that map to this column in
	// addition to the normalized form of Name.
	Aliases []string

	// Type is the semantic type the cleaned value must satisfy.
	Type ColumnType

	// OnMissing is the policy applied when the raw cell is missing.
	OnMissing MissingPolicy

	// Default is substituted when OnMissing is UseDefault. It must be a
	// valid value for Type.
	Default string

	// Normalize lowercases and trims text values.
	Normalize bool

	// PercentSuffix strips one trailing '%' before numeric parsing.
	PercentSuffix bool

	// Layouts are the accepted date layouts, tried in order.
	Layouts []string

	// Range is an optional inclusive numeric bound.
	Range *NumericRange
}

// Matches reports whether a raw header refers to this column.
func (c *Column) Matches(header string) bool {
	h := NormalizeHeader(header)
	if h == NormalizeHeader(c.Name) {
		return true
	}
	for _, a := range c.Aliases {
		if h == NormalizeHeader(a) {
			return true
		}
	}
	return false
}

// NormalizeHeader reduces a header to its comparable form: lowercased with
// spaces, underscores, and hyphens removed. Raw extracts spell headers in
// mixed legacy styles (CustomerID, productid, unit_price).
func NormalizeHeader(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	return strings.Map(func(r rune) rune {
		switch r {
		case ' ', '_', '-':
			return -1
		}
		return r
	}, s)
}

// ForeignKey declares a fact column that must resolve against a dimension
// table's key at load time.
type ForeignKey struct {
	// Column is the fact column holding the reference.
	Column string

	// Table is the referenced dimension table.
	Table string

	// Ref is the referenced key column.
	Ref string
}

// SeedParams controls raw-extract generation.
type SeedParams struct {
	// Rows is the number of records to produce before defect injection.
	Rows int

	// DirtyPercent is the share of rows (0-100) that receive an injected
	// defect: duplicate keys, missing cells, unparseable values,
	// out-of-range values, or dangling references.
	DirtyPercent int

	// Customers and Products are the sizes of the seeded dimension id
	// universes, used by the sales seeder to produce resolvable keys.
	Customers int
	Products  int
}

// SeedFunc generates a raw extract with authentic legacy headers.
type SeedFunc func(f *datagen.Faker, p SeedParams) *tabular.Table

// Spec is the complete declarative description of one dataset.
type Spec struct {
	// Name is the dataset name (customers, products, sales).
	Name string

	// Description is a human-readable summary.
	Description string

	// Role marks the dataset as a dimension or the fact.
	Role Role

	// RawFile and PreparedFile are the file names under the raw and
	// prepared data locations.
	RawFile      string
	PreparedFile string

	// Table is the warehouse table this dataset loads into.
	Table string

	// Key is the primary-key column name.
	Key string

	// ForeignKeys are the mandatory references a fact row must resolve.
	ForeignKeys []ForeignKey

	// Columns are the cleaning rules in output order.
	Columns []Column

	// Seed generates a raw extract for this dataset.
	Seed SeedFunc
}

// Column returns the declared rule for the named canonical column.
func (s *Spec) Column(name string) (*Column, bool) {
	for i := range s.Columns {
		if s.Columns[i].Name == name {
			return &s.Columns[i], true
		}
	}
	return nil, false
}

// ColumnNames returns the canonical column names in output order.
func (s *Spec) ColumnNames() []string {
	names := make([]string, len(s.Columns))
	for i, c := range s.Columns {
		names[i] = c.Name
	}
	return names
}

// DateLayouts are the layouts accepted for date columns, tried in order.
// Cleaned output always uses the first.
var DateLayouts = []string{
	"2006-01-02",
	"2006-01-02 15:04:05",
	"2006/01/02",
	"01/02/2006",
}

// Seeded id bases. Sales extracts reference the customer and product ranges
// so that cleaned data loads with resolvable keys.
const (
	CustomerIDBase = 1000
	ProductIDBase  = 100
	SaleIDBase     = 500000
)
