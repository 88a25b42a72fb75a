// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/siurna/uzkuraitis-eu/entries"
	"github.com/siurna/uzkuraitis-eu/models"
	"github.com/siurna/uzkuraitis-eu/scoring"
	"github.com/siurna/uzkuraitis-eu/store"
	"github.com/siurna/uzkuraitis-eu/testutil"
)

func intPtr(v int) *int { return &v }

func TestGetResults_Empty(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	handler := NewResultsHandler(db, testutil.GetTestConfig())

	w := httptest.NewRecorder()
	handler.GetResults(w, testutil.MakeRequest("GET", "/results", nil, nil))
	testutil.AssertStatus(t, w, http.StatusOK)

	body := w.Body.String()
	if !strings.Contains(body, `"results":null`) {
		t.Errorf("Expected null results, got %s", body)
	}
	if !strings.Contains(body, `"scores":[]`) {
		t.Errorf("Expected empty scores, got %s", body)
	}
}

func TestSaveResults(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	handler := NewResultsHandler(db, testutil.GetTestConfig())

	tests := []struct {
		name           string
		requestBody    interface{}
		expectedStatus int
		checkStored    func(t *testing.T, rec *models.ResultsRecord)
	}{
		{
			name: "complete results",
			requestBody: map[string]interface{}{
				"top10":            testutil.FinalTop10,
				"prediction_place": 5,
			},
			expectedStatus: http.StatusOK,
			checkStored: func(t *testing.T, rec *models.ResultsRecord) {
				if rec.Top10[0] != "se" || rec.Top10[9] != "gr" {
					t.Errorf("Unexpected top10: %v", rec.Top10)
				}
				if !rec.PredictionPlace.Valid || rec.PredictionPlace.Value != 5 {
					t.Errorf("Expected place 5, got %+v", rec.PredictionPlace)
				}
			},
		},
		{
			name: "partial results are padded",
			requestBody: map[string]interface{}{
				"top10":            []string{"se", "", "AT"},
				"prediction_place": "",
			},
			expectedStatus: http.StatusOK,
			checkStored: func(t *testing.T, rec *models.ResultsRecord) {
				if len(rec.Top10) != scoring.Slots {
					t.Fatalf("Expected %d positions, got %d", scoring.Slots, len(rec.Top10))
				}
				if rec.Top10[1] != "" || rec.Top10[2] != "at" {
					t.Errorf("Unexpected top10: %v", rec.Top10)
				}
				if rec.PredictionPlace.Valid {
					t.Error("Expected prediction place to be absent")
				}
			},
		},
		{
			name: "prediction place above the field",
			requestBody: map[string]interface{}{
				"top10":            testutil.FinalTop10,
				"prediction_place": 999,
			},
			expectedStatus: http.StatusBadRequest,
			checkStored: func(t *testing.T, rec *models.ResultsRecord) {
				if rec.Top10[0] != "se" || rec.PredictionPlace.Valid {
					t.Errorf("Expected the earlier record to be kept, got %+v", rec)
				}
			},
		},
		{
			name: "prediction place zero",
			requestBody: map[string]interface{}{
				"top10":            testutil.FinalTop10,
				"prediction_place": 0,
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "last place is accepted",
			requestBody: map[string]interface{}{
				"top10":            testutil.FinalTop10,
				"prediction_place": entries.Count(),
			},
			expectedStatus: http.StatusOK,
			checkStored: func(t *testing.T, rec *models.ResultsRecord) {
				if rec.PredictionPlace.Value != entries.Count() {
					t.Errorf("Expected place %d, got %+v", entries.Count(), rec.PredictionPlace)
				}
			},
		},
		{
			name: "too many positions",
			requestBody: map[string]interface{}{
				"top10": append(append([]string{}, testutil.FinalTop10...), "lt"),
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "unknown entry",
			requestBody: map[string]interface{}{
				"top10": []string{"se", "zz"},
			},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := testutil.MakeRequest("POST", "/admin/results", tt.requestBody, testutil.AdminHeaders())
			w := httptest.NewRecorder()

			handler.SaveResults(w, req)

			testutil.AssertStatus(t, w, tt.expectedStatus)
			if tt.checkStored != nil {
				rec, err := store.New(db).FetchResults(context.Background())
				if err != nil {
					t.Fatal(err)
				}
				if rec == nil {
					t.Fatal("Expected stored results")
				}
				tt.checkStored(t, rec)
			}
		})
	}
}

func TestCalculateScores(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	handler := NewResultsHandler(db, testutil.GetTestConfig())
	base := time.Date(2025, 5, 17, 20, 0, 0, 0, time.UTC)

	// Perfect ballot: 58 rank points
	perfect := testutil.CreateTestVoter(t, db, "Perfect", testutil.Picks(testutil.FinalTop10...), intPtr(5), base)
	// Reversed ballot: every pick in the top ten but misplaced
	reversed := testutil.CreateTestVoter(t, db, "Reversed",
		testutil.Picks("gr", "pl", "fi", "ee", "it", "nl", "il", "at", "fr", "se"), nil, base.Add(time.Minute))
	// Partial ballot is skipped
	partial := testutil.CreateTestVoter(t, db, "Partial", testutil.Picks("se", "fr"), nil, base.Add(2*time.Minute))

	testutil.SaveTestResults(t, db, testutil.FinalTop10, 5)

	w := httptest.NewRecorder()
	handler.CalculateScores(w, testutil.MakeRequest("POST", "/admin/scores", nil, testutil.AdminHeaders()))
	testutil.AssertStatus(t, w, http.StatusOK)

	var resp models.CalculateScoresResponse
	testutil.AssertJSON(t, w, &resp)

	if len(resp.Scores) != 2 {
		t.Fatalf("Expected 2 scores, got %d", len(resp.Scores))
	}
	if resp.Scores[0].VoterID != perfect {
		t.Errorf("Expected perfect ballot first, got %s", resp.Scores[0].VoterName)
	}
	if resp.Scores[0].RankScore != 58 || resp.Scores[0].SecondaryScore != 10 || resp.Scores[0].TotalScore != 68 {
		t.Errorf("Unexpected perfect score: %+v", resp.Scores[0])
	}
	// Half credit for every misplaced pick: 6+5+4+3+3+2+2+1+1+0
	if resp.Scores[1].VoterID != reversed || resp.Scores[1].TotalScore != 27 {
		t.Errorf("Unexpected reversed score: %+v", resp.Scores[1])
	}

	if len(resp.Warnings) != 1 || resp.Warnings[0].VoterID != partial {
		t.Fatalf("Expected one warning for the partial ballot, got %+v", resp.Warnings)
	}
	if !strings.Contains(resp.Warnings[0].Reason, "missing picks") {
		t.Errorf("Unexpected warning reason: %s", resp.Warnings[0].Reason)
	}

	stored, err := store.New(db).ListScores(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if len(stored) != 2 || stored[0].VoterID != perfect {
		t.Errorf("Stored scores do not match response: %+v", stored)
	}
}

func TestCalculateScores_InvalidResults(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	handler := NewResultsHandler(db, testutil.GetTestConfig())
	s := store.New(db)
	ctx := context.Background()

	testutil.CreateTestVoter(t, db, "Alice", testutil.Picks(testutil.FinalTop10...), nil, time.Time{})

	// Earlier scores must survive a rejected run
	previous := []scoring.Snapshot{{VoterID: "old", VoterName: "Old", RankScore: 1, TotalScore: 1}}
	if err := s.ReplaceScores(ctx, previous, time.Now().UTC()); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name  string
		top10 []string
		place interface{}
	}{
		{"incomplete top10", []string{"se", "fr", "at"}, 5},
		{"empty position", []string{"se", "fr", "at", "il", "", "it", "ee", "fi", "pl", "gr"}, 5},
		{"duplicate entry", []string{"se", "se", "at", "il", "nl", "it", "ee", "fi", "pl", "gr"}, 5},
		{"missing place", testutil.FinalTop10, nil},
		{"non-numeric place", testutil.FinalTop10, "soon"},
		{"zero place", testutil.FinalTop10, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			testutil.SaveTestResults(t, db, tt.top10, tt.place)

			w := httptest.NewRecorder()
			handler.CalculateScores(w, testutil.MakeRequest("POST", "/admin/scores", nil, testutil.AdminHeaders()))
			testutil.AssertStatus(t, w, http.StatusUnprocessableEntity)

			stored, err := s.ListScores(ctx)
			if err != nil {
				t.Fatal(err)
			}
			if len(stored) != 1 || stored[0].VoterID != "old" {
				t.Errorf("Expected previous scores to be kept, got %+v", stored)
			}
		})
	}
}

func TestCalculateScores_NoResults(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	handler := NewResultsHandler(db, testutil.GetTestConfig())

	w := httptest.NewRecorder()
	handler.CalculateScores(w, testutil.MakeRequest("POST", "/admin/scores", nil, testutil.AdminHeaders()))
	testutil.AssertStatus(t, w, http.StatusUnprocessableEntity)
}

func TestCalculateScores_Idempotent(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	handler := NewResultsHandler(db, testutil.GetTestConfig())

	testutil.CreateTestVoter(t, db, "Alice", testutil.Picks(testutil.FinalTop10...), intPtr(9), time.Time{})
	testutil.SaveTestResults(t, db, testutil.FinalTop10, 5)

	var runs [2]models.CalculateScoresResponse
	for i := range runs {
		w := httptest.NewRecorder()
		handler.CalculateScores(w, testutil.MakeRequest("POST", "/admin/scores", nil, testutil.AdminHeaders()))
		testutil.AssertStatus(t, w, http.StatusOK)
		testutil.AssertJSON(t, w, &runs[i])
	}

	if len(runs[0].Scores) != 1 || len(runs[1].Scores) != 1 {
		t.Fatal("Expected one score per run")
	}
	if runs[0].Scores[0] != runs[1].Scores[0] {
		t.Errorf("Expected identical runs, got %+v and %+v", runs[0].Scores[0], runs[1].Scores[0])
	}
	if n := testutil.CountRows(t, db, "score_snapshot"); n != 1 {
		t.Errorf("Expected 1 stored snapshot, got %d", n)
	}
}
