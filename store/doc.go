// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package store persists voters, picks, settings and score snapshots.
// All queries use $n placeholders so they run on PostgreSQL and SQLite.
package store
