// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the contest API.

# Handler Types

Each handler is a struct with database and config dependencies:

  - EntriesHandler: The fixed list of entries
  - VotingHandler: Ballot submission and voting status
  - LeaderboardHandler: Live entry totals for the scoreboard
  - ResultsHandler: Final results and score calculation
  - AdminHandler: Voting switch, moderation, reset and settings
  - ExportHandler: CSV and XLSX downloads

Handlers are created via constructor functions that accept *sql.DB and Config:

	votingHandler := handlers.NewVotingHandler(db, cfg)

# Ballots

A ballot names ten distinct entries, one per point value (12, 10, 8..1),
and optionally predicts the final place of the configured prediction
entry. Resubmitting with the same session_id replaces the earlier
ballot: the first submission returns 201, later ones 200.

# Scoring

POST /admin/scores reads the saved results and every ballot, runs
scoring.ComputeScores and replaces the stored snapshots. Incomplete
ballots are skipped and reported as warnings. Invalid results leave the
previous snapshots untouched.

# Error Handling

Errors are returned as JSON:

	{"error": "Bad Request", "message": "exactly 10 picks are required, got 9"}

Status codes:

  - 400: Invalid input
  - 401: Missing or wrong admin key
  - 403: Voting is closed
  - 404: Voter or pick not found
  - 422: Results missing or unusable for scoring
  - 500: Server error
*/
package handlers
