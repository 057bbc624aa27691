// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the API.

# Domain Types

  - Participant: id, name, secret code, hasPicked, assignedTo

The JSON field names match the participants file format, so the same
type is used for the file store and for the API.

# Request Types

  - DrawRequest: code

# Response Types

  - DrawResponse: success, angelitoName
  - AdminEntry: id, name, code, hasPicked, angelito (name or null)
  - ErrorResponse: success (always false), message

# Constants

Store backends:

	StoreJSON     = "json"
	StoreSQLite   = "sqlite"
	StorePostgres = "postgres"
*/
package models
