// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the uzkuraitis-eu API server.

uzkuraitis-eu runs a song contest prediction game. Voters rank ten
entries with contest points (12, 10, 8..1) and guess the final place of
one chosen entry. Once the real results are in, every ballot is scored
against them and the voters are ranked.

# Starting the Server

	ADMIN_PASSWORD=secret DATABASE_URL=contest.db go run .

Or against PostgreSQL with flags:

	go run . -t postgres -d "postgres://..." -admin-password secret

A .env file in the working directory is loaded when present.

# Architecture

  - handlers: HTTP request handlers
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, logging, admin gate, JSON helpers
  - models: Request/response types
  - scoring: Ballot scoring, ranking and live tallies
  - entries: The fixed list of competing entries
  - store: Persistence for voters, settings and score snapshots
  - export: CSV and XLSX writers
  - auth: Admin key checks and session tokens
  - db: Connection and schema creation
  - cliparse: Configuration parsing
*/
package main
