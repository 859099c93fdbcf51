package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

// MemoryPath opens a private in-memory database.
const MemoryPath = ":memory:"

// Open opens (or creates) the database at path and ensures the schema.
// SQLite has a single writer, so the pool is pinned to one connection;
// that also keeps an in-memory database alive for the pool's lifetime.
func Open(ctx context.Context, path string) (*sql.DB, error) {
	dsn := path
	if path != MemoryPath {
		dsn = path + "?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)"
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("sqlite: open: %w", err)
	}
	db.SetMaxOpenConns(1)

	if err := EnsureSchema(ctx, db); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}

var schema = []string{
	`CREATE TABLE IF NOT EXISTS scam_reports (
  seq          INTEGER PRIMARY KEY AUTOINCREMENT,
  id           TEXT NOT NULL UNIQUE,
  phone_number TEXT NOT NULL UNIQUE,
  category     TEXT NOT NULL,
  description  TEXT NOT NULL,
  call_type    TEXT NULL,
  frequency    TEXT NULL,
  is_verified  INTEGER NOT NULL DEFAULT 0,
  report_count INTEGER NOT NULL DEFAULT 1,
  created_at   INTEGER NOT NULL,
  updated_at   INTEGER NOT NULL
)`,
	`CREATE INDEX IF NOT EXISTS idx_scam_reports_created ON scam_reports (created_at DESC)`,
	`CREATE TABLE IF NOT EXISTS disputes (
  seq               INTEGER PRIMARY KEY AUTOINCREMENT,
  id                TEXT NOT NULL UNIQUE,
  scam_report_id    TEXT NOT NULL,
  description       TEXT NOT NULL,
  verification_info TEXT NULL,
  created_at        INTEGER NOT NULL
)`,
	`CREATE INDEX IF NOT EXISTS idx_disputes_report ON disputes (scam_report_id)`,
}

func EnsureSchema(ctx context.Context, db *sql.DB) error {
	for _, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("sqlite: ensure schema: %w", err)
		}
	}
	return nil
}
