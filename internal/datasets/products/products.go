//-------------------------------------------------------------------------
//
// SmartStore Warehouse Tools
//
// Copyright (c) 2025 - 2026, SmartStore Analytics
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

// Package products registers the product dimension dataset: its cleaning
// rule table and its raw-extract seeder.
package products

import (
	"github.com/smartstore/smartstore-dw/internal/datasets"
)

var spec = &datasets.Spec{
	Name:         "products",
	Description:  "Product dimension: catalog entry, category, price, stock, supplier",
	Role:         datasets.RoleDimension,
	RawFile:      "products_data.csv",
	PreparedFile: "products_prepared.csv",
	Table:        "product",
	Key:          "product_id",
	Columns: []datasets.Column{
		{
			Name:      "product_id",
			Type:      datasets.Int,
			OnMissing: datasets.DropRow,
		},
		{
			Name:      "product_name",
			Type:      datasets.Text,
			OnMissing: datasets.UseDefault,
			Default:   "n/a",
			Normalize: true,
		},
		{
			Name:      "category",
			Type:      datasets.Text,
			OnMissing: datasets.UseDefault,
			Default:   "n/a",
			Normalize: true,
		},
		{
			Name:      "unit_price",
			Type:      datasets.Float,
			OnMissing: datasets.UseDefault,
			Default:   "0",
			Range:     datasets.Range(0, 2000),
		},
		{
			Name:      "stock_quantity",
			Type:      datasets.Int,
			OnMissing: datasets.UseDefault,
			Default:   "0",
			Range:     datasets.Range(0, 1000),
		},
		{
			Name:      "supplier_name",
			Type:      datasets.Text,
			OnMissing: datasets.UseDefault,
			Default:   "n/a",
			Normalize: true,
		},
	},
	Seed: seedProducts,
}

func init() {
	datasets.Register(spec)
}
