// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db opens the database and creates the schema.

	conn, err := db.Open(db.TypeSQLite, "contest.db")
	if err != nil {
		log.Fatal(err)
	}
	if err := db.CreateSchema(conn); err != nil {
		log.Fatal(err)
	}

Both PostgreSQL (lib/pq) and SQLite (modernc.org/sqlite) are supported.
The SQL is written to run unchanged on either.

# Tables

  - voter: One row per ballot, keyed by session
  - pick: Entry code per point value, at most one per slot
  - score_snapshot: Ranked output of the last score calculation
  - setting: Key/value store for voting status, results and admin settings

	voter 1──* pick

Deleting a voter cascades to its picks. CreateSchema is safe to call
multiple times.
*/
package db
