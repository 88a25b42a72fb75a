// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"database/sql"
	"net/http"

	"github.com/siurna/uzkuraitis-eu/cliparse"
	"github.com/siurna/uzkuraitis-eu/handlers"
	"github.com/siurna/uzkuraitis-eu/middleware"
)

func NewRouter(db *sql.DB, cfg cliparse.Config) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	entriesHandler := handlers.NewEntriesHandler(cfg)
	votingHandler := handlers.NewVotingHandler(db, cfg)
	leaderboardHandler := handlers.NewLeaderboardHandler(db, cfg)
	resultsHandler := handlers.NewResultsHandler(db, cfg)
	adminHandler := handlers.NewAdminHandler(db, cfg)
	exportHandler := handlers.NewExportHandler(db, cfg)

	admin := func(h http.HandlerFunc) http.HandlerFunc {
		return middleware.WithLogging(middleware.RequireAdmin(adminHandler.Password, h))
	}

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Voting (public)
	mux.HandleFunc("GET /entries", middleware.WithLogging(entriesHandler.List))
	mux.HandleFunc("POST /ballots", middleware.WithLogging(votingHandler.SubmitBallot))
	mux.HandleFunc("GET /voting-status", middleware.WithLogging(votingHandler.GetVotingStatus))

	// Live view and results (public)
	mux.HandleFunc("GET /scoreboard", middleware.WithLogging(leaderboardHandler.GetScoreboard))
	mux.HandleFunc("GET /results", middleware.WithLogging(resultsHandler.GetResults))
	mux.HandleFunc("GET /settings", middleware.WithLogging(adminHandler.GetPublicSettings))

	// Contest administration (X-Admin-Key)
	mux.HandleFunc("POST /admin/voting-status", admin(adminHandler.SetVotingStatus))
	mux.HandleFunc("POST /admin/results", admin(resultsHandler.SaveResults))
	mux.HandleFunc("POST /admin/scores", admin(resultsHandler.CalculateScores))
	mux.HandleFunc("DELETE /admin/voters/{id}", admin(adminHandler.DeleteVoter))
	mux.HandleFunc("DELETE /admin/voters/{id}/picks/{points}", admin(adminHandler.DeletePick))
	mux.HandleFunc("POST /admin/reset", admin(adminHandler.Reset))
	mux.HandleFunc("GET /admin/settings", admin(adminHandler.GetSettings))
	mux.HandleFunc("POST /admin/settings", admin(adminHandler.UpdateSettings))
	mux.HandleFunc("GET /admin/export.csv", admin(exportHandler.CSV))
	mux.HandleFunc("GET /admin/export.xlsx", admin(exportHandler.XLSX))

	// Root endpoint
	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("uzkuraitis-eu API v1"))
	})

	return mux
}
