package mysql

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/go-sql-driver/mysql"
)

func Connect(ctx context.Context, dsn string) (*sql.DB, error) {
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, fmt.Errorf("mysql: open: %w", err)
	}
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(10)
	db.SetConnMaxLifetime(30 * time.Minute)

	// test ping
	ctx2, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := db.PingContext(ctx2); err != nil {
		db.Close()
		return nil, fmt.Errorf("mysql: ping: %w", err)
	}
	return db, nil
}

var schema = []string{
	`CREATE TABLE IF NOT EXISTS scam_reports (
  seq          BIGINT AUTO_INCREMENT PRIMARY KEY,
  id           VARCHAR(36) NOT NULL,
  phone_number VARCHAR(15) NOT NULL,
  category     VARCHAR(32) NOT NULL,
  description  TEXT NOT NULL,
  call_type    VARCHAR(16) NULL,
  frequency    VARCHAR(16) NULL,
  is_verified  BOOLEAN NOT NULL DEFAULT FALSE,
  report_count INT NOT NULL DEFAULT 1,
  created_at   DATETIME(6) NOT NULL,
  updated_at   DATETIME(6) NOT NULL,
  UNIQUE KEY uq_scam_reports_id (id),
  UNIQUE KEY uq_scam_reports_phone (phone_number),
  KEY idx_scam_reports_created (created_at)
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,
	`CREATE TABLE IF NOT EXISTS disputes (
  seq               BIGINT AUTO_INCREMENT PRIMARY KEY,
  id                VARCHAR(36) NOT NULL,
  scam_report_id    VARCHAR(64) NOT NULL,
  description       TEXT NOT NULL,
  verification_info TEXT NULL,
  created_at        DATETIME(6) NOT NULL,
  UNIQUE KEY uq_disputes_id (id),
  KEY idx_disputes_report (scam_report_id)
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,
}

// EnsureSchema creates the tables when they do not exist yet.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	for _, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("mysql: ensure schema: %w", err)
		}
	}
	return nil
}
