// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"bytes"
	"context"
	"database/sql"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/siurna/uzkuraitis-eu/cliparse"
	"github.com/siurna/uzkuraitis-eu/export"
	"github.com/siurna/uzkuraitis-eu/middleware"
	"github.com/siurna/uzkuraitis-eu/store"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type ExportHandler struct {
	store *store.Store
	cfg   cliparse.Config
}

func NewExportHandler(db *sql.DB, cfg cliparse.Config) *ExportHandler {
	return &ExportHandler{store: store.New(db), cfg: cfg}
}

// CSV handles GET /admin/export.csv
func (h *ExportHandler) CSV(w http.ResponseWriter, r *http.Request) {
	h.serve(w, r, "csv", "text/csv; charset=utf-8", export.WriteCSV)
}

// XLSX handles GET /admin/export.xlsx
func (h *ExportHandler) XLSX(w http.ResponseWriter, r *http.Request) {
	h.serve(w, r, "xlsx", xlsxContentType, export.WriteXLSX)
}

// serve renders the export into memory first so a failure can still be
// reported as a JSON error.
func (h *ExportHandler) serve(w http.ResponseWriter, r *http.Request, ext, contentType string,
	write func(w io.Writer, d export.Data) error) {
	data, err := h.load(r.Context())
	if err != nil {
		slog.Error("failed to load export data", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	var buf bytes.Buffer
	if err := write(&buf, data); err != nil {
		slog.Error("failed to render export", "format", ext, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to generate export")
		return
	}

	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", export.FileName(ext, time.Now())))
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	w.WriteHeader(http.StatusOK)
	if _, err := buf.WriteTo(w); err != nil {
		slog.Error("failed to write export", "format", ext, "error", err)
	}
}

func (h *ExportHandler) load(ctx context.Context) (export.Data, error) {
	voters, err := h.store.ListVoters(ctx)
	if err != nil {
		return export.Data{}, err
	}

	scores, err := h.store.ListScores(ctx)
	if err != nil {
		return export.Data{}, err
	}

	results, err := h.store.FetchResults(ctx)
	if err != nil {
		return export.Data{}, err
	}

	return export.Data{
		Voters:          voters,
		Scores:          scores,
		Results:         results,
		PredictionEntry: h.cfg.PredictionEntry,
	}, nil
}
