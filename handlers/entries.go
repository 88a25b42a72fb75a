// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"

	"github.com/siurna/uzkuraitis-eu/cliparse"
	"github.com/siurna/uzkuraitis-eu/entries"
	"github.com/siurna/uzkuraitis-eu/middleware"
	"github.com/siurna/uzkuraitis-eu/models"
)

type EntriesHandler struct {
	cfg cliparse.Config
}

func NewEntriesHandler(cfg cliparse.Config) *EntriesHandler {
	return &EntriesHandler{cfg: cfg}
}

// List handles GET /entries
// Returns the catalog in running order
func (h *EntriesHandler) List(w http.ResponseWriter, r *http.Request) {
	middleware.JSONResponse(w, http.StatusOK, models.EntriesResponse{
		Entries:         entries.All(),
		PredictionEntry: h.cfg.PredictionEntry,
	})
}
