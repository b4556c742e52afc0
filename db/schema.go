// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"
)

// Supported database drivers, matching the database/sql driver names.
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// Open connects to the database and verifies the connection.
// SQLite is limited to a single connection, and every connection the pool
// opens has foreign keys enforced.
func Open(ctx context.Context, driver, dsn string) (*sql.DB, error) {
	if _, err := schemaFor(driver); err != nil {
		return nil, err
	}

	if driver == DriverSQLite {
		dsn = sqliteDSN(dsn)
	}

	conn, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s database: %w", driver, err)
	}

	if driver == DriverSQLite {
		conn.SetMaxOpenConns(1)
	}

	if err := conn.PingContext(ctx); err != nil {
		conn.Close()
		return nil, fmt.Errorf("database ping failed: %w", err)
	}

	return conn, nil
}

// CreateSchema creates all tables needed for the application.
// Safe to call multiple times - uses IF NOT EXISTS.
func CreateSchema(ctx context.Context, db *sql.DB, driver string) error {
	schema, err := schemaFor(driver)
	if err != nil {
		return err
	}

	if _, err := db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

// sqliteDSN adds the foreign_keys pragma as a connection parameter so the
// driver applies it to each new connection.
func sqliteDSN(dsn string) string {
	if strings.Contains(dsn, "foreign_keys") {
		return dsn
	}
	sep := "?"
	if strings.Contains(dsn, "?") {
		sep = "&"
	}
	return dsn + sep + "_pragma=foreign_keys(1)"
}

func schemaFor(driver string) (string, error) {
	switch driver {
	case DriverSQLite:
		return sqliteSchema, nil
	case DriverPostgres:
		return postgresSchema, nil
	default:
		return "", fmt.Errorf("unsupported database driver %q", driver)
	}
}

const sqliteSchema = `
-- Locations
CREATE TABLE IF NOT EXISTS location (
    location_id TEXT PRIMARY KEY,
    passcode INTEGER NOT NULL,
    description TEXT,
    seed_order INTEGER NOT NULL DEFAULT 0
);

-- Messages
CREATE TABLE IF NOT EXISTS message (
    message_id INTEGER PRIMARY KEY AUTOINCREMENT,
    description TEXT NOT NULL,
    location_id TEXT NOT NULL REFERENCES location(location_id)
);

-- Leaderboard
CREATE TABLE IF NOT EXISTS leaderboard (
    location_id TEXT PRIMARY KEY REFERENCES location(location_id),
    message_counter INTEGER NOT NULL DEFAULT 0
);
`

const postgresSchema = `
-- Locations
CREATE TABLE IF NOT EXISTS location (
    location_id TEXT PRIMARY KEY,
    passcode INTEGER NOT NULL,
    description TEXT,
    seed_order INTEGER NOT NULL DEFAULT 0
);

-- Messages
CREATE TABLE IF NOT EXISTS message (
    message_id BIGSERIAL PRIMARY KEY,
    description TEXT NOT NULL,
    location_id TEXT NOT NULL REFERENCES location(location_id)
);

-- Leaderboard
CREATE TABLE IF NOT EXISTS leaderboard (
    location_id TEXT PRIMARY KEY REFERENCES location(location_id),
    message_counter INTEGER NOT NULL DEFAULT 0
);
`
