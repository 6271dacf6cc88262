//-------------------------------------------------------------------------
//
// SmartStore Warehouse Tools
//
// Portions copyright (c) 2025 - 2026, SmartStore Analytics
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

// Package cube builds and queries two-dimensional aggregates over the star
// schema. A cube is a full recompute: the fact table is joined with both
// dimensions, grouped by a dimension pair, and the joined rows are retained
// so queries can drill back down to finer grains.
package cube

import (
	"context"
	"database/sql"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"

	"github.com/smartstore/smartstore-dw/internal/errdefs"
	"github.com/smartstore/smartstore-dw/internal/logging"
)

// attributes maps every groupable attribute to its source column in the
// joined row set.
var attributes = map[string]string{
	"region":        "c.region",
	"category":      "p.category",
	"product_name":  "p.product_name",
	"customer_name": "c.name",
	"supplier_name": "p.supplier_name",
	"store_id":      "s.store_id",
	"campaign_id":   "s.campaign_id",
	"payment_type":  "s.payment_type",
	"sale_date":     "s.sale_date",
}

// measures maps every aggregatable measure to its fact column.
var measures = map[string]string{
	"sale_amount":      "s.sale_amount",
	"discount_percent": "s.discount_percent",
}

// joinQuery produces the joined row set the cube aggregates over. Fact rows
// that lost a dimension row do not exist by construction (the loader rejects
// unresolved references), so an inner join is exact.
const joinQuery = `
SELECT c.region, p.category, p.product_name, c.name, p.supplier_name,
       s.store_id, s.campaign_id, s.payment_type, s.sale_date,
       s.sale_amount, s.discount_percent
FROM sale s
INNER JOIN customer c ON s.customer_id = c.customer_id
INNER JOIN product p ON s.product_id = p.product_id
`

// Row is one joined fact row: the full attribute set plus the measure value
// the cube was built over.
type Row struct {
	Attrs   map[string]string
	Measure float64
}

// Cell is one aggregate bucket. Dim1 and Dim2 hold the bucket's values for
// the cube's dimension pair.
type Cell struct {
	Dim1  string
	Dim2  string
	Sum   float64
	Count int
}

// Mean returns the cell's average measure value.
func (c *Cell) Mean() float64 {
	if c.Count == 0 {
		return 0
	}
	return c.Sum / float64(c.Count)
}

// Cube is a two-dimensional aggregate over the joined fact rows.
type Cube struct {
	// Dim1, Dim2, and Measure name the grouping pair and the summed
	// measure.
	Dim1    string
	Dim2    string
	Measure string

	// Cells are the aggregate buckets, sorted by (Dim1, Dim2) value.
	Cells []Cell

	rows []Row
}

// Build computes the cube for the given dimension pair and measure. The
// whole fact table is re-aggregated on every build; an empty fact table
// yields an empty cube, not an error.
func Build(ctx context.Context, db *sql.DB, dims [2]string, measure string) (*Cube, error) {
	for _, d := range dims {
		if _, ok := attributes[d]; !ok {
			return nil, errdefs.NewSchemaError("cube", d, "unknown dimension")
		}
	}
	if _, ok := measures[measure]; !ok {
		return nil, errdefs.NewSchemaError("cube", measure, "unknown measure")
	}

	rows, err := db.QueryContext(ctx, joinQuery)
	if err != nil {
		return nil, fmt.Errorf("failed to query joined fact rows: %w", err)
	}
	defer rows.Close()

	c := &Cube{Dim1: dims[0], Dim2: dims[1], Measure: measure}

	type cellKey struct{ d1, d2 string }
	agg := make(map[cellKey]*Cell)

	for rows.Next() {
		var region, category, productName, customerName, supplierName string
		var storeID, campaignID, paymentType, saleDate string
		var saleAmount, discountPercent float64

		err := rows.Scan(&region, &category, &productName, &customerName,
			&supplierName, &storeID, &campaignID, &paymentType, &saleDate,
			&saleAmount, &discountPercent)
		if err != nil {
			return nil, fmt.Errorf("failed to scan joined row: %w", err)
		}

		r := Row{
			Attrs: map[string]string{
				"region":        region,
				"category":      category,
				"product_name":  productName,
				"customer_name": customerName,
				"supplier_name": supplierName,
				"store_id":      storeID,
				"campaign_id":   campaignID,
				"payment_type":  paymentType,
				"sale_date":     saleDate,
			},
		}
		switch measure {
		case "discount_percent":
			r.Measure = discountPercent
		default:
			r.Measure = saleAmount
		}
		c.rows = append(c.rows, r)

		k := cellKey{r.Attrs[c.Dim1], r.Attrs[c.Dim2]}
		cell, ok := agg[k]
		if !ok {
			cell = &Cell{Dim1: k.d1, Dim2: k.d2}
			agg[k] = cell
		}
		cell.Sum += r.Measure
		cell.Count++
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read joined rows: %w", err)
	}

	c.Cells = make([]Cell, 0, len(agg))
	for _, cell := range agg {
		c.Cells = append(c.Cells, *cell)
	}
	sort.Slice(c.Cells, func(i, j int) bool {
		if c.Cells[i].Dim1 != c.Cells[j].Dim1 {
			return c.Cells[i].Dim1 < c.Cells[j].Dim1
		}
		return c.Cells[i].Dim2 < c.Cells[j].Dim2
	})

	logging.Info().
		Str("dim1", c.Dim1).
		Str("dim2", c.Dim2).
		Str("measure", c.Measure).
		Int("fact_rows", len(c.rows)).
		Int("cells", len(c.Cells)).
		Msg("Built cube")

	return c, nil
}

// Rows returns the number of joined fact rows the cube was built over.
func (c *Cube) Rows() int {
	return len(c.rows)
}

// WriteCSV writes the cube artifact: one row per cell in (Dim1, Dim2) order
// with the summed measure, its mean, and the fact row count.
func (c *Cube) WriteCSV(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create directory for %s: %w", path, err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}

	w := csv.NewWriter(f)
	header := []string{c.Dim1, c.Dim2, c.Measure + "_sum", c.Measure + "_mean", "fact_count"}
	if err := w.Write(header); err != nil {
		f.Close()
		return fmt.Errorf("failed to write header to %s: %w", path, err)
	}
	for i := range c.Cells {
		cell := &c.Cells[i]
		record := []string{
			cell.Dim1,
			cell.Dim2,
			strconv.FormatFloat(cell.Sum, 'f', -1, 64),
			strconv.FormatFloat(cell.Mean(), 'f', -1, 64),
			strconv.Itoa(cell.Count),
		}
		if err := w.Write(record); err != nil {
			f.Close()
			return fmt.Errorf("failed to write cell to %s: %w", path, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		f.Close()
		return fmt.Errorf("failed to flush %s: %w", path, err)
	}
	return f.Close()
}
