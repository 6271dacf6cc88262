//-------------------------------------------------------------------------
//
// SmartStore Warehouse Tools
//
// Portions copyright (c) 2025 - 2026, SmartStore Analytics
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

package warehouse

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"
	"time"

	"github.com/smartstore/smartstore-dw/internal/logging"
	"github.com/smartstore/smartstore-dw/pkg/version"
)

// createLoadInfoSQL creates the load metadata table if it doesn't exist.
// Unlike the star schema it survives reloads; values are upserted.
const createLoadInfoSQL = `
CREATE TABLE IF NOT EXISTS load_info (
    key   TEXT PRIMARY KEY,
    value TEXT NOT NULL
)`

// SaveLoadInfo records load provenance: when the load ran, the tool version,
// and the inserted count per table.
func SaveLoadInfo(ctx context.Context, db *sql.DB, report *LoadReport) error {
	_, err := db.ExecContext(ctx, createLoadInfoSQL)
	if err != nil {
		return fmt.Errorf("failed to create load_info table: %w", err)
	}

	info := map[string]string{
		"loaded_at": time.Now().UTC().Format(time.RFC3339),
		"version":   version.Short(),
	}
	for table, tr := range report.Tables {
		info["rows_"+table] = strconv.Itoa(tr.Inserted)
	}

	for key, value := range info {
		_, err := db.ExecContext(ctx, `
            INSERT INTO load_info (key, value) VALUES (?, ?)
            ON CONFLICT (key) DO UPDATE SET value = excluded.value
        `, key, value)
		if err != nil {
			return fmt.Errorf("failed to save load_info %s: %w", key, err)
		}
	}

	logging.Debug().
		Int("keys", len(info)).
		Msg("Saved load metadata")

	return nil
}

// GetLoadInfoValue retrieves a single load metadata value by key.
func GetLoadInfoValue(ctx context.Context, db *sql.DB, key string) (string, error) {
	var value string
	err := db.QueryRowContext(ctx, `
        SELECT value FROM load_info WHERE key = ?
    `, key).Scan(&value)
	if err != nil {
		return "", err
	}
	return value, nil
}

// GetAllLoadInfo retrieves all load metadata as a map.
func GetAllLoadInfo(ctx context.Context, db *sql.DB) (map[string]string, error) {
	rows, err := db.QueryContext(ctx, `SELECT key, value FROM load_info`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	info := make(map[string]string)
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return nil, err
		}
		info[key] = value
	}

	return info, rows.Err()
}
