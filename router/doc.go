// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the contest API.

# Route Registration

NewRouter creates a configured http.ServeMux with all endpoints:

	mux := router.NewRouter(db, cfg)

# Endpoints

Health:

	GET /health

Voting (public):

	GET  /entries       - Entries in running order
	POST /ballots       - Submit or replace a ballot
	GET  /voting-status - Whether ballots are accepted

Live view and results (public):

	GET /scoreboard - Entry totals and recent voters
	GET /results    - Final results and ranked scores
	GET /settings   - Public display settings

Administration (requires X-Admin-Key):

	POST   /admin/voting-status               - Open or close voting
	POST   /admin/results                     - Save the final results
	POST   /admin/scores                      - Recompute voter scores
	DELETE /admin/voters/{id}                 - Remove a voter
	DELETE /admin/voters/{id}/picks/{points}  - Remove one pick
	POST   /admin/reset                       - Clear all contest data
	GET    /admin/settings                    - Read settings
	POST   /admin/settings                    - Update settings
	GET    /admin/export.csv                  - CSV export
	GET    /admin/export.xlsx                 - Workbook export

Admin routes are wrapped in middleware.RequireAdmin, which checks the key
against the stored admin password on every request.
*/
package router
