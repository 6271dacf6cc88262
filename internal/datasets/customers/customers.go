//-------------------------------------------------------------------------
//
// SmartStore Warehouse Tools
//
// Copyright (c) 2025 - 2026, SmartStore Analytics
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

// Package customers registers the customer dimension dataset: its cleaning
// rule table and its raw-extract seeder.
package customers

import (
	"github.com/smartstore/smartstore-dw/internal/datasets"
)

var spec = &datasets.Spec{
	Name:         "customers",
	Description:  "Customer dimension: identity, region, loyalty, contact preference",
	Role:         datasets.RoleDimension,
	RawFile:      "customers_data.csv",
	PreparedFile: "customers_prepared.csv",
	Table:        "customer",
	Key:          "customer_id",
	Columns: []datasets.Column{
		{
			Name:      "customer_id",
			Type:      datasets.Int,
			OnMissing: datasets.DropRow,
		},
		{
			Name:      "name",
			Type:      datasets.Text,
			OnMissing: datasets.UseDefault,
			Default:   "n/a",
			Normalize: true,
		},
		{
			Name:      "region",
			Type:      datasets.Text,
			OnMissing: datasets.UseDefault,
			Default:   "unknown",
			Normalize: true,
		},
		{
			Name:      "join_date",
			Type:      datasets.Date,
			OnMissing: datasets.DropRow,
			Layouts:   datasets.DateLayouts,
		},
		{
			Name:      "loyalty_points",
			Type:      datasets.Int,
			OnMissing: datasets.UseDefault,
			Default:   "0",
		},
		{
			Name:      "preferred_contact_method",
			Type:      datasets.Text,
			OnMissing: datasets.UseDefault,
			Default:   "n/a",
			Normalize: true,
		},
	},
	Seed: seedCustomers,
}

func init() {
	datasets.Register(spec)
}
