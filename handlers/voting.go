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
	"unicode/utf8"

	"github.com/siurna/uzkuraitis-eu/auth"
	"github.com/siurna/uzkuraitis-eu/cliparse"
	"github.com/siurna/uzkuraitis-eu/entries"
	"github.com/siurna/uzkuraitis-eu/middleware"
	"github.com/siurna/uzkuraitis-eu/models"
	"github.com/siurna/uzkuraitis-eu/scoring"
	"github.com/siurna/uzkuraitis-eu/store"
)

// Voter name length limits, in characters
const (
	minNameLen = 2
	maxNameLen = 50
)

type VotingHandler struct {
	store *store.Store
	cfg   cliparse.Config
}

func NewVotingHandler(db *sql.DB, cfg cliparse.Config) *VotingHandler {
	return &VotingHandler{store: store.New(db), cfg: cfg}
}

// SubmitBallot handles POST /ballots
// Creates a ballot, or replaces the ballot owned by session_id
func (h *VotingHandler) SubmitBallot(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	enabled, err := h.store.VotingEnabled(ctx)
	if err != nil {
		slog.Error("failed to read voting status", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	if !enabled {
		middleware.ErrorResponse(w, http.StatusForbidden, "Voting is closed")
		return
	}

	var req models.SubmitBallotRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	in, msg := parseBallot(req)
	if msg != "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, msg)
		return
	}

	if in.SessionID == "" {
		token, err := auth.GenerateSessionToken()
		if err != nil {
			slog.Error("failed to generate session token", "error", err)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to create session")
			return
		}
		in.SessionID = token
	}

	voterID, updated, err := h.store.SaveBallot(ctx, in)
	if err != nil {
		slog.Error("failed to save ballot", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	slog.Info("ballot saved", "voter_id", voterID, "updated", updated)

	status := http.StatusCreated
	message := "Vote submitted"
	if updated {
		status = http.StatusOK
		message = "Vote updated"
	}

	middleware.JSONResponse(w, status, models.SubmitBallotResponse{
		VoterID:   voterID,
		SessionID: in.SessionID,
		Message:   message,
	})
}

// parseBallot validates a submission and converts it to a store input.
// It returns a client-facing message when the submission is rejected.
func parseBallot(req models.SubmitBallotRequest) (store.BallotInput, string) {
	in := store.BallotInput{
		Name:      strings.TrimSpace(req.Name),
		SessionID: strings.TrimSpace(req.SessionID),
	}

	n := utf8.RuneCountInString(in.Name)
	if n < minNameLen || n > maxNameLen {
		return in, fmt.Sprintf("name must be between %d and %d characters", minNameLen, maxNameLen)
	}

	if len(req.Picks) != scoring.Slots {
		return in, fmt.Sprintf("exactly %d picks are required, got %d", scoring.Slots, len(req.Picks))
	}

	for key, code := range req.Picks {
		points, err := scoring.ParsePointValue(strings.TrimSpace(key))
		if err != nil {
			return in, err.Error()
		}
		code = strings.ToLower(strings.TrimSpace(code))
		if !entries.Valid(code) {
			return in, fmt.Sprintf("unknown entry %q for %s points", code, points)
		}
		if err := in.Picks.Set(points, code); err != nil {
			return in, err.Error()
		}
	}

	ballot := scoring.Ballot{Picks: in.Picks}
	var invalid *scoring.InvalidBallotError
	if err := ballot.Validate(); errors.As(err, &invalid) {
		return in, invalid.Reason
	}

	if req.Prediction.Invalid {
		return in, "prediction must be a whole number"
	}
	if req.Prediction.Valid {
		place := req.Prediction.Value
		if place < 1 || place > entries.Count() {
			return in, fmt.Sprintf("prediction must be between 1 and %d", entries.Count())
		}
		in.Prediction = &place
	}

	return in, ""
}

// GetVotingStatus handles GET /voting-status
func (h *VotingHandler) GetVotingStatus(w http.ResponseWriter, r *http.Request) {
	enabled, err := h.store.VotingEnabled(r.Context())
	if err != nil {
		slog.Error("failed to read voting status", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.VotingStatusResponse{Enabled: enabled})
}
