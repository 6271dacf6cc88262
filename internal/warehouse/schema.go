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
)

// Schema SQL for the star schema: two dimension tables and one fact table.
const createSchemaSQL = `
-- Customer dimension
CREATE TABLE IF NOT EXISTS customer (
    customer_id              INTEGER PRIMARY KEY,
    name                     TEXT NOT NULL,
    region                   TEXT NOT NULL,
    join_date                TEXT NOT NULL,
    loyalty_points           INTEGER NOT NULL,
    preferred_contact_method TEXT NOT NULL
);

-- Product dimension
CREATE TABLE IF NOT EXISTS product (
    product_id     INTEGER PRIMARY KEY,
    product_name   TEXT NOT NULL,
    category       TEXT NOT NULL,
    unit_price     REAL NOT NULL,
    stock_quantity INTEGER NOT NULL,
    supplier_name  TEXT NOT NULL
);

-- Sale fact
CREATE TABLE IF NOT EXISTS sale (
    sale_id          INTEGER PRIMARY KEY,
    customer_id      INTEGER NOT NULL REFERENCES customer(customer_id),
    product_id       INTEGER NOT NULL REFERENCES product(product_id),
    store_id         TEXT NOT NULL,
    campaign_id      TEXT NOT NULL,
    sale_date        TEXT NOT NULL,
    sale_amount      REAL NOT NULL,
    discount_percent REAL NOT NULL,
    payment_type     TEXT NOT NULL
);

-- Create indexes for cube joins and date filters
CREATE INDEX IF NOT EXISTS idx_sale_customer ON sale(customer_id);
CREATE INDEX IF NOT EXISTS idx_sale_product ON sale(product_id);
CREATE INDEX IF NOT EXISTS idx_sale_date ON sale(sale_date);
`

// Drop schema SQL. The fact table goes first so foreign keys never dangle.
const dropSchemaSQL = `
DROP TABLE IF EXISTS sale;
DROP TABLE IF EXISTS product;
DROP TABLE IF EXISTS customer;
`

// Execer is the statement-execution surface shared by *sql.DB and *sql.Tx.
// The loader recreates the schema inside its transaction.
type Execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

// CreateSchema creates the warehouse schema.
func CreateSchema(ctx context.Context, db Execer) error {
	_, err := db.ExecContext(ctx, createSchemaSQL)
	return err
}

// DropSchema drops the warehouse schema.
func DropSchema(ctx context.Context, db Execer) error {
	_, err := db.ExecContext(ctx, dropSchemaSQL)
	return err
}
