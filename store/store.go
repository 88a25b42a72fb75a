// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/siurna/uzkuraitis-eu/scoring"
)

// ErrNotFound is returned when a voter or pick to delete does not exist.
var ErrNotFound = errors.New("not found")

// Store reads and writes ballots, results and score snapshots.
type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// FetchBallots returns every stored ballot in submission order.
func (s *Store) FetchBallots(ctx context.Context) ([]scoring.Ballot, error) {
	voters, err := s.ListVoters(ctx)
	if err != nil {
		return nil, err
	}

	ballots := make([]scoring.Ballot, len(voters))
	for i, v := range voters {
		ballots[i] = v.Ballot()
	}
	return ballots, nil
}

// Reset deletes every voter, pick, score snapshot and the results record.
// Settings other than the results record are kept.
func (s *Store) Reset(ctx context.Context) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	for _, stmt := range []string{
		`DELETE FROM pick`,
		`DELETE FROM voter`,
		`DELETE FROM score_snapshot`,
	} {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to reset: %w", err)
		}
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM setting WHERE key = $1`, settingFinalResults); err != nil {
		return fmt.Errorf("failed to clear results: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit reset: %w", err)
	}

	slog.Info("store reset")
	return nil
}

func now() time.Time {
	return time.Now().UTC()
}
