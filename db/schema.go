// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"
	"strconv"
	"strings"

	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"

	"github.com/danielhkuo/angelito/models"
)

// Open connects to a sqlite or postgres database, verifies the connection
// and creates the schema.
func Open(storeType, dsn string) (*sql.DB, error) {
	var driver string
	switch storeType {
	case models.StoreSQLite:
		driver = "sqlite"
		dsn = withSQLitePragmas(dsn)
	case models.StorePostgres:
		driver = "postgres"
	default:
		return nil, fmt.Errorf("unsupported database type %q", storeType)
	}

	conn, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// SQLite allows one writer; a single connection keeps transactions from
	// tripping over SQLITE_BUSY.
	if storeType == models.StoreSQLite {
		conn.SetMaxOpenConns(1)
	}

	if err := conn.Ping(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	if err := CreateSchema(conn); err != nil {
		conn.Close()
		return nil, err
	}

	return conn, nil
}

// CreateSchema creates all tables needed for the application.
// Safe to call multiple times - uses IF NOT EXISTS.
func CreateSchema(db *sql.DB) error {
	_, err := db.Exec(schema)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

// Rebind rewrites ? placeholders to $N for postgres. Queries must not
// contain literal question marks.
func Rebind(storeType, query string) string {
	if storeType != models.StorePostgres {
		return query
	}

	var b strings.Builder
	b.Grow(len(query) + 8)
	n := 0
	for i := 0; i < len(query); i++ {
		if query[i] == '?' {
			n++
			b.WriteByte('$')
			b.WriteString(strconv.Itoa(n))
			continue
		}
		b.WriteByte(query[i])
	}
	return b.String()
}

func withSQLitePragmas(dsn string) string {
	sep := "?"
	if strings.Contains(dsn, "?") {
		sep = "&"
	}
	return dsn + sep + "_pragma=busy_timeout(5000)&_pragma=foreign_keys(1)"
}

const schema = `
CREATE TABLE IF NOT EXISTS participant (
    id INTEGER PRIMARY KEY,
    name TEXT NOT NULL,
    code TEXT NOT NULL UNIQUE,
    has_picked BOOLEAN NOT NULL DEFAULT FALSE,
    assigned_to INTEGER UNIQUE REFERENCES participant(id),
    CHECK (assigned_to IS NULL OR assigned_to <> id),
    CHECK ((has_picked AND assigned_to IS NOT NULL) OR (NOT has_picked AND assigned_to IS NULL))
)`
