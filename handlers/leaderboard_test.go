// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/siurna/uzkuraitis-eu/entries"
	"github.com/siurna/uzkuraitis-eu/models"
	"github.com/siurna/uzkuraitis-eu/testutil"
)

func TestListEntries(t *testing.T) {
	handler := NewEntriesHandler(testutil.GetTestConfig())

	w := httptest.NewRecorder()
	handler.List(w, testutil.MakeRequest("GET", "/entries", nil, nil))
	testutil.AssertStatus(t, w, http.StatusOK)

	var resp models.EntriesResponse
	testutil.AssertJSON(t, w, &resp)

	if len(resp.Entries) != entries.Count() {
		t.Errorf("Expected %d entries, got %d", entries.Count(), len(resp.Entries))
	}
	if resp.PredictionEntry != "lt" {
		t.Errorf("Expected prediction entry lt, got %s", resp.PredictionEntry)
	}
	for i := 1; i < len(resp.Entries); i++ {
		if resp.Entries[i].Order <= resp.Entries[i-1].Order {
			t.Fatal("Expected entries in running order")
		}
	}
}

func TestGetScoreboard(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	handler := NewLeaderboardHandler(db, testutil.GetTestConfig())
	base := time.Date(2025, 5, 17, 20, 0, 0, 0, time.UTC)

	// Twelve voters; Sweden always gets 12, France 10 or nothing
	for i := 0; i < 12; i++ {
		picks := testutil.Picks(fullPicks...)
		if i%2 == 1 {
			picks = testutil.Picks("se", "lt", "at", "il", "nl", "it", "ee", "fi", "pl", "gr")
		}
		testutil.CreateTestVoter(t, db, "Voter"+string(rune('A'+i)), picks, nil, base.Add(time.Duration(i)*time.Minute))
	}

	w := httptest.NewRecorder()
	handler.GetScoreboard(w, testutil.MakeRequest("GET", "/scoreboard", nil, nil))
	testutil.AssertStatus(t, w, http.StatusOK)

	var resp models.ScoreboardResponse
	testutil.AssertJSON(t, w, &resp)

	if !resp.VotingEnabled {
		t.Error("Expected voting enabled")
	}
	if len(resp.Scores) != entries.Count() {
		t.Fatalf("Expected a row for every entry, got %d", len(resp.Scores))
	}

	top := resp.Scores[0]
	if top.Code != "se" || top.TotalPoints != 144 {
		t.Errorf("Expected Sweden on 144, got %s on %d", top.Code, top.TotalPoints)
	}
	if top.Name != "Sweden" || top.Flag == "" {
		t.Errorf("Expected entry details, got %+v", top)
	}
	if top.PointsBreakdown["12"] != 12 || top.PointsBreakdown["1"] != 0 {
		t.Errorf("Unexpected breakdown: %v", top.PointsBreakdown)
	}

	byCode := make(map[string]models.EntryScore)
	for _, s := range resp.Scores {
		byCode[s.Code] = s
	}
	if byCode["fr"].TotalPoints != 60 || byCode["lt"].TotalPoints != 60 {
		t.Errorf("Expected France and Lithuania on 60, got %d and %d", byCode["fr"].TotalPoints, byCode["lt"].TotalPoints)
	}
	if byCode["no"].TotalPoints != 0 {
		t.Errorf("Expected Norway on 0, got %d", byCode["no"].TotalPoints)
	}

	// Ten most recent voters, newest first
	if len(resp.Voters) != 10 {
		t.Fatalf("Expected 10 voters, got %d", len(resp.Voters))
	}
	if resp.Voters[0].Name != "VoterL" {
		t.Errorf("Expected newest voter first, got %s", resp.Voters[0].Name)
	}
	if resp.Voters[0].Picks["10"] != "lt" {
		t.Errorf("Expected picks in summary, got %v", resp.Voters[0].Picks)
	}
}

func TestGetScoreboard_Empty(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	handler := NewLeaderboardHandler(db, testutil.GetTestConfig())

	w := httptest.NewRecorder()
	handler.GetScoreboard(w, testutil.MakeRequest("GET", "/scoreboard", nil, nil))
	testutil.AssertStatus(t, w, http.StatusOK)

	var resp models.ScoreboardResponse
	testutil.AssertJSON(t, w, &resp)

	if len(resp.Voters) != 0 {
		t.Errorf("Expected no voters, got %d", len(resp.Voters))
	}
	for _, s := range resp.Scores {
		if s.TotalPoints != 0 {
			t.Errorf("Expected all totals 0, got %s on %d", s.Code, s.TotalPoints)
		}
	}
}
