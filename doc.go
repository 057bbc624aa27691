// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the Angelito server.

Angelito is a secret santa service: every participant enters a secret
code and is assigned a random recipient (their angelito) that nobody else
holds. An admin view lists who got whom.

# Starting the Server

With the default JSON store, only a participants file is needed:

	go run . -f participants.json

Or with a SQLite database seeded from that file:

	STORE_TYPE=sqlite DATABASE_URL=file:angelito.db go run . -seed

# Configuration

Settings come from a .env file, the environment, and CLI flags (flags win):

  - PORT (-p): Server port (default: 3000)
  - STORE_TYPE (-t): json, sqlite or postgres (default: json)
  - DATA_FILE (-f): Participants file (default: participants.json)
  - DATABASE_URL (-d): Required for sqlite and postgres
  - ADMIN_KEY (--admin-key): Protects /admin-data when set
  - PUBLIC_URL (--public-url): URL shown by /api/qr.png
  - STATIC_DIR (--static): Serve pages from disk instead of the binary

# Participants File

	[
	  {"id": 1, "name": "Ana", "code": "sol", "hasPicked": false, "assignedTo": null},
	  {"id": 2, "name": "Bea", "code": "luna", "hasPicked": false, "assignedTo": null}
	]

The server validates the participants at startup (unique ids and codes,
consistent assignments) and exits if they are broken.

# Architecture

  - assign: draw algorithm, validation, Service over a Store
  - store: JSON file and SQL participant stores
  - db: SQL connection and schema
  - handlers: HTTP request handlers (draw, admin, share)
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, logging, JSON helpers
  - i18n: Spanish and English messages
  - models: Request/response and domain types
  - auth: Admin key check and IP hashing
  - web: Embedded pages
  - cliparse: Configuration parsing
*/
package main
