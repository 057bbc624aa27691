// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package store persists participants in a JSON file (JSONStore) or a SQL
// database (SQLStore). Both satisfy assign.Store: Update is an atomic
// read-modify-write, serialized by a mutex for the file and by a
// transaction (plus a table lock on postgres) for SQL.
package store
