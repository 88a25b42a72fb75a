// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/siurna/uzkuraitis-eu/cliparse"
	"github.com/siurna/uzkuraitis-eu/middleware"
	"github.com/siurna/uzkuraitis-eu/models"
	"github.com/siurna/uzkuraitis-eu/scoring"
	"github.com/siurna/uzkuraitis-eu/store"
)

// minPasswordLen is the shortest admin password the settings endpoint accepts
const minPasswordLen = 4

type AdminHandler struct {
	store *store.Store
	cfg   cliparse.Config
}

func NewAdminHandler(db *sql.DB, cfg cliparse.Config) *AdminHandler {
	return &AdminHandler{store: store.New(db), cfg: cfg}
}

// Password returns the current admin password: the one set through
// UpdateSettings, or the configured one until that happens.
func (h *AdminHandler) Password(ctx context.Context) (string, error) {
	return h.store.AdminPassword(ctx, h.cfg.AdminPassword)
}

// SetVotingStatus handles POST /admin/voting-status
func (h *AdminHandler) SetVotingStatus(w http.ResponseWriter, r *http.Request) {
	var req models.VotingStatusRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	if req.Enabled == nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "enabled is required")
		return
	}

	if err := h.store.SetVotingEnabled(r.Context(), *req.Enabled); err != nil {
		slog.Error("failed to update voting status", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	slog.Info("voting status changed", "enabled", *req.Enabled)

	middleware.JSONResponse(w, http.StatusOK, models.VotingStatusResponse{Enabled: *req.Enabled})
}

// DeleteVoter handles DELETE /admin/voters/{id}
func (h *AdminHandler) DeleteVoter(w http.ResponseWriter, r *http.Request) {
	voterID := r.PathValue("id")
	if voterID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "id is required")
		return
	}

	err := h.store.DeleteVoter(r.Context(), voterID)
	if errors.Is(err, store.ErrNotFound) {
		middleware.ErrorResponse(w, http.StatusNotFound, "Voter not found")
		return
	}
	if err != nil {
		slog.Error("failed to delete voter", "voter_id", voterID, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	slog.Info("voter deleted", "voter_id", voterID)

	middleware.JSONResponse(w, http.StatusOK, models.SuccessResponse{Success: true, Message: "Voter deleted"})
}

// DeletePick handles DELETE /admin/voters/{id}/picks/{points}
// The voter's ballot becomes incomplete and is skipped when scores are computed
func (h *AdminHandler) DeletePick(w http.ResponseWriter, r *http.Request) {
	voterID := r.PathValue("id")
	if voterID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "id is required")
		return
	}

	points, err := scoring.ParsePointValue(r.PathValue("points"))
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	err = h.store.DeletePick(r.Context(), voterID, points)
	if errors.Is(err, store.ErrNotFound) {
		middleware.ErrorResponse(w, http.StatusNotFound, "Pick not found")
		return
	}
	if err != nil {
		slog.Error("failed to delete pick", "voter_id", voterID, "points", int(points), "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	slog.Info("pick deleted", "voter_id", voterID, "points", int(points))

	middleware.JSONResponse(w, http.StatusOK, models.SuccessResponse{Success: true, Message: "Pick deleted"})
}

// Reset handles POST /admin/reset
// Deletes all voters, picks, scores and the results record
func (h *AdminHandler) Reset(w http.ResponseWriter, r *http.Request) {
	if err := h.store.Reset(r.Context()); err != nil {
		slog.Error("failed to reset", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.SuccessResponse{Success: true, Message: "All data has been reset"})
}

// GetPublicSettings handles GET /settings
func (h *AdminHandler) GetPublicSettings(w http.ResponseWriter, r *http.Request) {
	h.writeSettings(w, r)
}

// GetSettings handles GET /admin/settings
func (h *AdminHandler) GetSettings(w http.ResponseWriter, r *http.Request) {
	h.writeSettings(w, r)
}

func (h *AdminHandler) writeSettings(w http.ResponseWriter, r *http.Request) {
	show, err := h.store.ShowAdminButton(r.Context())
	if err != nil {
		slog.Error("failed to read settings", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.Settings{ShowAdminButton: show})
}

// UpdateSettings handles POST /admin/settings
// Toggles the admin button and optionally changes the admin password
func (h *AdminHandler) UpdateSettings(w http.ResponseWriter, r *http.Request) {
	var req models.UpdateSettingsRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	password := strings.TrimSpace(req.AdminPassword)
	if req.AdminPassword != "" && len(password) < minPasswordLen {
		middleware.ErrorResponse(w, http.StatusBadRequest, "admin_password is too short")
		return
	}

	ctx := r.Context()

	if req.ShowAdminButton != nil {
		if err := h.store.SetShowAdminButton(ctx, *req.ShowAdminButton); err != nil {
			slog.Error("failed to update admin button setting", "error", err)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
			return
		}
	}

	if password != "" {
		if err := h.store.SetAdminPassword(ctx, password); err != nil {
			slog.Error("failed to update admin password", "error", err)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
			return
		}
		slog.Info("admin password changed")
	}

	h.writeSettings(w, r)
}
