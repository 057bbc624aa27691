// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

Environment variables are read first (github.com/caarlos0/env), then CLI
flags override them:

	_ = cliparse.LoadDotEnv(".env")
	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - Port: Server listen port (default: 3000)
  - StoreType: json, sqlite or postgres (default: json)
  - DataFile: participants JSON file (default: participants.json)
  - DatabaseURL: required for sqlite and postgres
  - StaticDir: directory served at / instead of the embedded page
  - AdminKey: when set, /admin-data requires it
  - PublicURL: URL encoded by the share QR code
  - Seed: import DataFile into an empty database

# CLI Flags

	-p          Server port
	-t          Store type
	-f          Participants file
	-d          Database URL
	-static     Static directory
	-public-url Public URL
	-admin-key  Admin key
	-seed       Seed the database from -f

# Environment Variables

	PORT, STORE_TYPE, DATA_FILE, DATABASE_URL, STATIC_DIR, ADMIN_KEY, PUBLIC_URL

A .env file in the working directory is loaded by LoadDotEnv; variables
already present in the environment win.
*/
package cliparse
