// Package warehouse manages the SQLite star schema: connection setup, DDL,
// the loader that populates it from prepared tables, and load metadata.
package warehouse

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"github.com/smartstore/smartstore-dw/internal/logging"
)

// Open opens the warehouse database at path, creating the file and its
// parent directory as needed, and verifies the connection. Foreign key
// enforcement is switched on for every connection, and transactions take a
// write lock at BEGIN so the loader runs exclusively.
func Open(ctx context.Context, path string) (*sql.DB, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create warehouse directory: %w", err)
		}
	}

	dsn := fmt.Sprintf("file:%s?_txlock=immediate&_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)", path)
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open warehouse: %w", err)
	}

	// Single writer; one connection keeps the loader transaction and the
	// metadata writes from contending for the file lock.
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping warehouse: %w", err)
	}

	logging.Debug().
		Str("path", path).
		Msg("Opened warehouse")

	return db, nil
}
