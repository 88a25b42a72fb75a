// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// CreateSchema creates all tables needed for the application.
// Safe to call multiple times - uses IF NOT EXISTS.
// The statements are valid for both PostgreSQL and SQLite.
func CreateSchema(db *sql.DB) error {
	// Executed one at a time; database/sql drivers differ on multi-statement Exec.
	for _, stmt := range strings.Split(schema, ";") {
		if strings.TrimSpace(stmt) == "" {
			continue
		}
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("failed to create schema: %w", err)
		}
	}

	return nil
}

const schema = `
-- Voters (one ballot each)
CREATE TABLE IF NOT EXISTS voter (
    id TEXT PRIMARY KEY,
    name TEXT NOT NULL,
    session_id TEXT UNIQUE,
    prediction INTEGER,
    created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
    updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_voter_created_at ON voter(created_at);

-- Picks: one row per awarded point value
CREATE TABLE IF NOT EXISTS pick (
    voter_id TEXT NOT NULL REFERENCES voter(id) ON DELETE CASCADE,
    entry_code TEXT NOT NULL,
    points INTEGER NOT NULL CHECK (points IN (12, 10, 8, 7, 6, 5, 4, 3, 2, 1)),
    PRIMARY KEY (voter_id, points),
    UNIQUE (voter_id, entry_code)
);

CREATE INDEX IF NOT EXISTS idx_pick_entry_code ON pick(entry_code);

-- Score snapshots, replaced wholesale on every computation
CREATE TABLE IF NOT EXISTS score_snapshot (
    voter_id TEXT PRIMARY KEY,
    voter_name TEXT NOT NULL,
    rank_score INTEGER NOT NULL,
    secondary_score INTEGER NOT NULL,
    total_score INTEGER NOT NULL,
    position INTEGER NOT NULL,
    computed_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_score_snapshot_position ON score_snapshot(position);

-- Settings and the final results record (JSON in value)
CREATE TABLE IF NOT EXISTS setting (
    key TEXT PRIMARY KEY,
    value TEXT NOT NULL,
    updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);
`
