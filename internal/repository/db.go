package repository

import (
	"context"
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS runs (
	run_id TEXT PRIMARY KEY,
	started_at TEXT NOT NULL,
	tool_version TEXT NOT NULL,
	total_invoices INTEGER NOT NULL
);
CREATE TABLE IF NOT EXISTS invoices (
	run_id TEXT NOT NULL REFERENCES runs(run_id),
	invoice_id INTEGER NOT NULL,
	file_name TEXT NOT NULL,
	source_file TEXT NOT NULL,
	vendor_name TEXT,
	invoice_number TEXT,
	invoice_date TEXT,
	currency TEXT,
	grand_total TEXT,
	completeness_score REAL NOT NULL,
	is_valid INTEGER NOT NULL,
	missing_fields TEXT NOT NULL,
	raw_ocr_text TEXT NOT NULL,
	PRIMARY KEY (run_id, invoice_id)
);
CREATE TABLE IF NOT EXISTS line_items (
	run_id TEXT NOT NULL,
	invoice_id INTEGER NOT NULL,
	line_number INTEGER NOT NULL,
	description TEXT,
	quantity TEXT,
	unit_price TEXT,
	amount TEXT,
	PRIMARY KEY (run_id, invoice_id, line_number),
	FOREIGN KEY (run_id, invoice_id) REFERENCES invoices(run_id, invoice_id)
);
`

// Open opens (or creates) the SQLite audit database at path and applies the
// schema. Use ":memory:" for tests.
func Open(ctx context.Context, path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite %s: %w", path, err)
	}
	// a second pooled connection would see a different :memory: database
	db.SetMaxOpenConns(1)
	if _, err := db.ExecContext(ctx, "PRAGMA foreign_keys = ON"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("enable foreign keys: %w", err)
	}
	if _, err := db.ExecContext(ctx, schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}
	return db, nil
}
