// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# CLI Flags

	-p                Server port (default: 3318)
	-d                Database URL or SQLite file path
	-t                Database type: sqlite (default) or postgres
	-admin-password   Initial admin password
	-prediction-entry Entry code whose final place voters predict (default: lt)

# Environment Variables

Flags fall back to environment variables:

	PORT             → -p
	DATABASE_URL     → -d
	DATABASE_TYPE    → -t
	ADMIN_PASSWORD   → -admin-password
	PREDICTION_ENTRY → -prediction-entry

CLI flags take precedence over environment variables. A .env file is
loaded by main before parsing.

ParseFlags returns an error when the database URL or admin password is
missing, or when the database type or prediction entry is unknown.
*/
package cliparse
