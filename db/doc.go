// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db opens SQL databases for the participant store.

# Opening

Open picks the driver from the store type, pings, and creates the schema:

	conn, err := db.Open("sqlite", "file:angelito.db")
	conn, err := db.Open("postgres", "postgres://...")

SQLite uses the pure Go modernc.org/sqlite driver with busy_timeout and
foreign_keys pragmas and a single open connection. PostgreSQL uses
github.com/lib/pq.

# Schema

CreateSchema is safe to call multiple times - uses IF NOT EXISTS.

	participant (
	    id          INTEGER PRIMARY KEY,
	    name        TEXT NOT NULL,
	    code        TEXT NOT NULL UNIQUE,
	    has_picked  BOOLEAN NOT NULL,
	    assigned_to INTEGER UNIQUE REFERENCES participant(id)
	)

The UNIQUE on assigned_to stops two givers from sharing an angelito even
if application checks were bypassed. CHECK constraints forbid
self-assignment and keep has_picked in step with assigned_to.

# Placeholders

Queries are written with ? and passed through Rebind, which rewrites
them to $1, $2, ... for postgres.
*/
package db
