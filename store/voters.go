// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/siurna/uzkuraitis-eu/models"
	"github.com/siurna/uzkuraitis-eu/scoring"
)

// BallotInput is a validated ballot submission.
type BallotInput struct {
	Name       string
	SessionID  string
	Prediction *int
	Picks      scoring.Picks
}

// SaveBallot creates a voter, or replaces the voter owning in.SessionID.
// The voter's picks are deleted and recreated in the same transaction.
func (s *Store) SaveBallot(ctx context.Context, in BallotInput) (voterID string, updated bool, err error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return "", false, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var sessionID *string
	if in.SessionID != "" {
		sessionID = &in.SessionID

		err = tx.QueryRowContext(ctx, `
			SELECT id FROM voter WHERE session_id = $1
		`, in.SessionID).Scan(&voterID)
		switch {
		case err == nil:
			updated = true
		case errors.Is(err, sql.ErrNoRows):
		default:
			return "", false, fmt.Errorf("failed to look up session: %w", err)
		}
	}

	ts := now()
	if updated {
		_, err = tx.ExecContext(ctx, `
			UPDATE voter SET name = $1, prediction = $2, updated_at = $3
			WHERE id = $4
		`, in.Name, in.Prediction, ts, voterID)
		if err != nil {
			return "", false, fmt.Errorf("failed to update voter: %w", err)
		}

		if _, err = tx.ExecContext(ctx, `DELETE FROM pick WHERE voter_id = $1`, voterID); err != nil {
			return "", false, fmt.Errorf("failed to delete old picks: %w", err)
		}
	} else {
		voterID = uuid.NewString()
		_, err = tx.ExecContext(ctx, `
			INSERT INTO voter (id, name, session_id, prediction, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6)
		`, voterID, in.Name, sessionID, in.Prediction, ts, ts)
		if err != nil {
			return "", false, fmt.Errorf("failed to insert voter: %w", err)
		}
	}

	for i, entry := range in.Picks {
		if entry == "" {
			continue
		}
		_, err = tx.ExecContext(ctx, `
			INSERT INTO pick (voter_id, entry_code, points)
			VALUES ($1, $2, $3)
		`, voterID, entry, int(scoring.PointValues[i]))
		if err != nil {
			return "", false, fmt.Errorf("failed to insert pick: %w", err)
		}
	}

	if err = tx.Commit(); err != nil {
		return "", false, fmt.Errorf("failed to commit ballot: %w", err)
	}

	return voterID, updated, nil
}

// ListVoters returns every voter with picks, oldest first.
func (s *Store) ListVoters(ctx context.Context) ([]models.Voter, error) {
	return s.listVoters(ctx, `
		SELECT id, name, session_id, prediction, created_at, updated_at
		FROM voter
		ORDER BY created_at, id
	`)
}

// RecentVoters returns the newest voters with picks, newest first.
func (s *Store) RecentVoters(ctx context.Context, limit int) ([]models.Voter, error) {
	return s.listVoters(ctx, `
		SELECT id, name, session_id, prediction, created_at, updated_at
		FROM voter
		ORDER BY created_at DESC, id DESC
		LIMIT $1
	`, limit)
}

func (s *Store) listVoters(ctx context.Context, query string, args ...any) ([]models.Voter, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query voters: %w", err)
	}

	voters := []models.Voter{}
	index := make(map[string]int)
	for rows.Next() {
		var v models.Voter
		var sessionID sql.NullString
		var prediction sql.NullInt64
		if err := rows.Scan(&v.ID, &v.Name, &sessionID, &prediction, &v.CreatedAt, &v.UpdatedAt); err != nil {
			rows.Close()
			return nil, fmt.Errorf("failed to scan voter: %w", err)
		}
		if sessionID.Valid {
			v.SessionID = &sessionID.String
		}
		if prediction.Valid {
			p := int(prediction.Int64)
			v.Prediction = &p
		}
		index[v.ID] = len(voters)
		voters = append(voters, v)
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return nil, fmt.Errorf("failed to read voters: %w", err)
	}
	rows.Close()

	if len(voters) == 0 {
		return voters, nil
	}

	// Picks are loaded after the voter rows are closed; SQLite runs on a
	// single connection.
	if err := s.loadPicks(ctx, voters, index); err != nil {
		return nil, err
	}
	return voters, nil
}

func (s *Store) loadPicks(ctx context.Context, voters []models.Voter, index map[string]int) error {
	rows, err := s.db.QueryContext(ctx, `
		SELECT voter_id, entry_code, points FROM pick
	`)
	if err != nil {
		return fmt.Errorf("failed to query picks: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var voterID, entry string
		var points int
		if err := rows.Scan(&voterID, &entry, &points); err != nil {
			return fmt.Errorf("failed to scan pick: %w", err)
		}

		i, ok := index[voterID]
		if !ok {
			continue
		}
		if err := voters[i].Picks.Set(scoring.PointValue(points), entry); err != nil {
			slog.Warn("ignoring stored pick", "voter_id", voterID, "entry", entry, "points", points, "error", err)
		}
	}

	return rows.Err()
}

// DeleteVoter removes a voter and their picks.
func (s *Store) DeleteVoter(ctx context.Context, voterID string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM pick WHERE voter_id = $1`, voterID); err != nil {
		return fmt.Errorf("failed to delete picks: %w", err)
	}

	res, err := tx.ExecContext(ctx, `DELETE FROM voter WHERE id = $1`, voterID)
	if err != nil {
		return fmt.Errorf("failed to delete voter: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrNotFound
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit voter deletion: %w", err)
	}
	return nil
}

// DeletePick removes the pick that received points from a voter's ballot.
// The ballot is left incomplete and is skipped by the scoring engine until
// the voter resubmits.
func (s *Store) DeletePick(ctx context.Context, voterID string, points scoring.PointValue) error {
	res, err := s.db.ExecContext(ctx, `
		DELETE FROM pick WHERE voter_id = $1 AND points = $2
	`, voterID, int(points))
	if err != nil {
		return fmt.Errorf("failed to delete pick: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrNotFound
	}
	return nil
}
