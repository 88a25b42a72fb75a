// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"log/slog"
	"net/http"

	"github.com/siurna/uzkuraitis-eu/cliparse"
	"github.com/siurna/uzkuraitis-eu/entries"
	"github.com/siurna/uzkuraitis-eu/middleware"
	"github.com/siurna/uzkuraitis-eu/models"
	"github.com/siurna/uzkuraitis-eu/scoring"
	"github.com/siurna/uzkuraitis-eu/store"
)

// recentVoterLimit is how many voters the scoreboard lists
const recentVoterLimit = 10

type LeaderboardHandler struct {
	store *store.Store
	cfg   cliparse.Config
}

func NewLeaderboardHandler(db *sql.DB, cfg cliparse.Config) *LeaderboardHandler {
	return &LeaderboardHandler{store: store.New(db), cfg: cfg}
}

// GetScoreboard handles GET /scoreboard
// Returns live entry totals, the most recent voters and whether voting is open.
// Totals are recomputed from the stored ballots on every request.
func (h *LeaderboardHandler) GetScoreboard(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	ballots, err := h.store.FetchBallots(ctx)
	if err != nil {
		slog.Error("failed to fetch ballots", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	recent, err := h.store.RecentVoters(ctx, recentVoterLimit)
	if err != nil {
		slog.Error("failed to fetch recent voters", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	enabled, err := h.store.VotingEnabled(ctx)
	if err != nil {
		slog.Error("failed to read voting status", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	totals := scoring.Tally(ballots, entries.Codes())
	scores := make([]models.EntryScore, len(totals))
	for i, t := range totals {
		scores[i] = entryScore(t)
	}

	voters := make([]models.VoterSummary, len(recent))
	for i, v := range recent {
		voters[i] = v.Summary()
	}

	middleware.JSONResponse(w, http.StatusOK, models.ScoreboardResponse{
		Scores:        scores,
		Voters:        voters,
		VotingEnabled: enabled,
	})
}

func entryScore(t scoring.EntryTotal) models.EntryScore {
	breakdown := make(map[string]int, scoring.Slots)
	for i, n := range t.Counts {
		breakdown[scoring.PointValues[i].String()] = n
	}

	score := models.EntryScore{
		Code:            t.Entry,
		Name:            entries.Name(t.Entry),
		TotalPoints:     t.Total,
		PointsBreakdown: breakdown,
	}
	if e, ok := entries.Lookup(t.Entry); ok {
		score.Flag = e.Flag
	}
	return score
}
