// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/siurna/uzkuraitis-eu/cliparse"
	"github.com/siurna/uzkuraitis-eu/entries"
	"github.com/siurna/uzkuraitis-eu/middleware"
	"github.com/siurna/uzkuraitis-eu/models"
	"github.com/siurna/uzkuraitis-eu/scoring"
	"github.com/siurna/uzkuraitis-eu/store"
)

type ResultsHandler struct {
	store *store.Store
	cfg   cliparse.Config
}

func NewResultsHandler(db *sql.DB, cfg cliparse.Config) *ResultsHandler {
	return &ResultsHandler{store: store.New(db), cfg: cfg}
}

// GetResults handles GET /results
// Returns the results record (null until saved) and the last computed scores
func (h *ResultsHandler) GetResults(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	rec, err := h.store.FetchResults(ctx)
	if err != nil {
		slog.Error("failed to fetch results", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	scores, err := h.store.ListScores(ctx)
	if err != nil {
		slog.Error("failed to fetch scores", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.ResultsResponse{
		Results: rec,
		Scores:  scores,
	})
}

// SaveResults handles POST /admin/results
// The record may be incomplete; completeness is checked when scores are computed
func (h *ResultsHandler) SaveResults(w http.ResponseWriter, r *http.Request) {
	var req models.ResultsRecord
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if len(req.Top10) > scoring.Slots {
		middleware.ErrorResponse(w, http.StatusBadRequest,
			fmt.Sprintf("top10 has %d entries, at most %d allowed", len(req.Top10), scoring.Slots))
		return
	}

	if place := req.PredictionPlace; place.Valid && (place.Value < 1 || place.Value > entries.Count()) {
		middleware.ErrorResponse(w, http.StatusBadRequest,
			fmt.Sprintf("prediction_place must be between 1 and %d", entries.Count()))
		return
	}

	rec := models.ResultsRecord{
		Top10:           make([]string, scoring.Slots),
		PredictionPlace: models.Place{Value: req.PredictionPlace.Value, Valid: req.PredictionPlace.Valid},
	}
	filled := 0
	for i, code := range req.Top10 {
		code = strings.ToLower(strings.TrimSpace(code))
		if code == "" {
			continue
		}
		if !entries.Valid(code) {
			middleware.ErrorResponse(w, http.StatusBadRequest, fmt.Sprintf("unknown entry %q at position %d", code, i+1))
			return
		}
		rec.Top10[i] = code
		filled++
	}

	if err := h.store.SaveResults(r.Context(), rec); err != nil {
		slog.Error("failed to save results", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	slog.Info("results saved", "positions_filled", filled, "prediction_place_set", rec.PredictionPlace.Valid)

	middleware.JSONResponse(w, http.StatusOK, rec)
}

// CalculateScores handles POST /admin/scores
// Scores every ballot against the results record and replaces the stored
// snapshots. Invalid results answer 422 and leave earlier scores in place.
func (h *ResultsHandler) CalculateScores(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	rec, err := h.store.FetchResults(ctx)
	if err != nil {
		slog.Error("failed to fetch results", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	if rec == nil {
		middleware.ErrorResponse(w, http.StatusUnprocessableEntity, "No results have been saved")
		return
	}

	ballots, err := h.store.FetchBallots(ctx)
	if err != nil {
		slog.Error("failed to fetch ballots", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	run, err := scoring.ComputeScores(ballots, rec.ScoringResults())
	var invalid *scoring.InvalidResultsError
	if errors.As(err, &invalid) {
		slog.Warn("score computation rejected", "reason", invalid.Reason)
		middleware.ErrorResponse(w, http.StatusUnprocessableEntity, invalid.Error())
		return
	}
	if err != nil {
		slog.Error("failed to compute scores", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to compute scores")
		return
	}

	warnings := make([]models.BallotWarning, len(run.Warnings))
	for i, wrn := range run.Warnings {
		slog.Warn("ballot skipped", "voter_id", wrn.VoterID, "voter_name", wrn.VoterName, "reason", wrn.Reason)
		warnings[i] = models.BallotWarning{
			VoterID:   wrn.VoterID,
			VoterName: wrn.VoterName,
			Reason:    wrn.Reason,
		}
	}

	computedAt := time.Now().UTC()
	if err := h.store.ReplaceScores(ctx, run.Snapshots, computedAt); err != nil {
		slog.Error("failed to store scores", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	slog.Info("scores computed", "voters", len(run.Snapshots), "skipped", len(warnings))

	middleware.JSONResponse(w, http.StatusOK, models.CalculateScoresResponse{
		Scores:     run.Snapshots,
		Warnings:   warnings,
		ComputedAt: computedAt,
	})
}
