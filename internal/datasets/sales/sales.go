//-------------------------------------------------------------------------
//
// SmartStore Warehouse Tools
//
// Portions copyright (c) 2025 - 2026, SmartStore Analytics
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

// Package sales registers the sale fact dataset: its cleaning rule table,
// its foreign keys, and its raw-extract seeder.
package sales

import (
	"github.com/smartstore/smartstore-dw/internal/datasets"
)

var spec = &datasets.Spec{
	Name:         "sales",
	Description:  "Sale fact: one row per transaction, referencing customer and product",
	Role:         datasets.RoleFact,
	RawFile:      "sales_data.csv",
	PreparedFile: "sales_prepared.csv",
	Table:        "sale",
	Key:          "sale_id",
	ForeignKeys: []datasets.ForeignKey{
		{Column: "customer_id", Table: "customer", Ref: "customer_id"},
		{Column: "product_id", Table: "product", Ref: "product_id"},
	},
	Columns: []datasets.Column{
		{
			Name:      "sale_id",
			Aliases:   []string{"TransactionID"},
			Type:      datasets.Int,
			OnMissing: datasets.DropRow,
		},
		{
			Name:      "customer_id",
			Type:      datasets.Int,
			OnMissing: datasets.DropRow,
		},
		{
			Name:      "product_id",
			Type:      datasets.Int,
			OnMissing: datasets.DropRow,
		},
		{
			Name:      "store_id",
			Type:      datasets.Text,
			OnMissing: datasets.UseDefault,
			Default:   "n/a",
			Normalize: true,
		},
		{
			Name:      "campaign_id",
			Type:      datasets.Text,
			OnMissing: datasets.UseDefault,
			Default:   "n/a",
			Normalize: true,
		},
		{
			Name:      "sale_date",
			Type:      datasets.Date,
			OnMissing: datasets.DropRow,
			Layouts:   datasets.DateLayouts,
		},
		{
			// Revenue in thousands of dollars.
			Name:      "sale_amount",
			Type:      datasets.Float,
			OnMissing: datasets.DropRow,
			Range:     datasets.Range(0, 10000),
		},
		{
			Name:          "discount_percent",
			Type:          datasets.Float,
			OnMissing:     datasets.UseDefault,
			Default:       "0",
			PercentSuffix: true,
			Range:         datasets.Range(0, 100),
		},
		{
			Name:      "payment_type",
			Type:      datasets.Text,
			OnMissing: datasets.UseDefault,
			Default:   "n/a",
			Normalize: true,
		},
	},
	Seed: seedSales,
}

func init() {
	datasets.Register(spec)
}
