// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"fmt"
	"time"

	"github.com/siurna/uzkuraitis-eu/scoring"
)

// ReplaceScores discards every stored snapshot and installs snapshots in
// one transaction. Either the whole set is replaced or nothing changes.
func (s *Store) ReplaceScores(ctx context.Context, snapshots []scoring.Snapshot, computedAt time.Time) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM score_snapshot`); err != nil {
		return fmt.Errorf("failed to clear scores: %w", err)
	}

	for i, snap := range snapshots {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO score_snapshot (voter_id, voter_name, rank_score, secondary_score, total_score, position, computed_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
		`, snap.VoterID, snap.VoterName, snap.RankScore, snap.SecondaryScore, snap.TotalScore, i+1, computedAt)
		if err != nil {
			return fmt.Errorf("failed to insert score for %s: %w", snap.VoterID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit scores: %w", err)
	}
	return nil
}

// ListScores returns the stored snapshots in leaderboard order.
func (s *Store) ListScores(ctx context.Context) ([]scoring.Snapshot, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT voter_id, voter_name, rank_score, secondary_score, total_score
		FROM score_snapshot
		ORDER BY position
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query scores: %w", err)
	}
	defer rows.Close()

	scores := []scoring.Snapshot{}
	for rows.Next() {
		var snap scoring.Snapshot
		if err := rows.Scan(&snap.VoterID, &snap.VoterName, &snap.RankScore, &snap.SecondaryScore, &snap.TotalScore); err != nil {
			return nil, fmt.Errorf("failed to scan score: %w", err)
		}
		scores = append(scores, snap)
	}
	return scores, rows.Err()
}
