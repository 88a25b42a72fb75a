package models

import (
	"time"

	"github.com/siurna/uzkuraitis-eu/entries"
	"github.com/siurna/uzkuraitis-eu/scoring"
)

// Setting keys
const (
	SettingVotingEnabled   = "voting_enabled"
	SettingShowAdminButton = "show_admin_button"
	SettingAdminPassword   = "admin_password"
	SettingFinalResults    = "final_results"
)

// Request types

// picks: point value ("12", "10", ... "1") -> entry code
type SubmitBallotRequest struct {
	Name       string            `json:"name"`
	Picks      map[string]string `json:"picks"`
	Prediction Place             `json:"prediction"`
	SessionID  string            `json:"session_id"`
}

type VotingStatusRequest struct {
	Enabled *bool `json:"enabled"`
}

type UpdateSettingsRequest struct {
	ShowAdminButton *bool  `json:"show_admin_button"`
	AdminPassword   string `json:"admin_password"`
}

// Response types

type SubmitBallotResponse struct {
	VoterID   string `json:"voter_id"`
	SessionID string `json:"session_id"`
	Message   string `json:"message"`
}

// EntriesResponse lists the catalog and names the entry whose final
// place voters predict.
type EntriesResponse struct {
	Entries         []entries.Entry `json:"entries"`
	PredictionEntry string          `json:"prediction_entry"`
}

type VotingStatusResponse struct {
	Enabled bool `json:"enabled"`
}

type ResultsResponse struct {
	Results *ResultsRecord     `json:"results"`
	Scores  []scoring.Snapshot `json:"scores"`
}

type CalculateScoresResponse struct {
	Scores     []scoring.Snapshot `json:"scores"`
	Warnings   []BallotWarning    `json:"warnings"`
	ComputedAt time.Time          `json:"computed_at"`
}

type BallotWarning struct {
	VoterID   string `json:"voter_id"`
	VoterName string `json:"voter_name"`
	Reason    string `json:"reason"`
}

type ScoreboardResponse struct {
	Scores        []EntryScore   `json:"scores"`
	Voters        []VoterSummary `json:"voters"`
	VotingEnabled bool           `json:"voting_enabled"`
}

// EntryScore is one row of the live leaderboard.
// PointsBreakdown counts how many voters gave each point value.
type EntryScore struct {
	Code            string         `json:"code"`
	Name            string         `json:"name"`
	Flag            string         `json:"flag"`
	TotalPoints     int            `json:"total_points"`
	PointsBreakdown map[string]int `json:"points_breakdown"`
}

type VoterSummary struct {
	ID         string            `json:"id"`
	Name       string            `json:"name"`
	Picks      map[string]string `json:"picks"`
	Prediction *int              `json:"prediction"`
	CreatedAt  time.Time         `json:"created_at"`
}

type Settings struct {
	ShowAdminButton bool `json:"show_admin_button"`
}

type SuccessResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

// Domain types

// Voter is a stored ballot together with its owner.
type Voter struct {
	ID         string
	Name       string
	SessionID  *string
	Prediction *int
	Picks      scoring.Picks
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Ballot converts the voter into the scoring engine's input.
func (v Voter) Ballot() scoring.Ballot {
	return scoring.Ballot{
		VoterID:    v.ID,
		VoterName:  v.Name,
		Picks:      v.Picks,
		Prediction: v.Prediction,
	}
}

// Summary is the public JSON view of a voter.
func (v Voter) Summary() VoterSummary {
	return VoterSummary{
		ID:         v.ID,
		Name:       v.Name,
		Picks:      PicksMap(v.Picks),
		Prediction: v.Prediction,
		CreatedAt:  v.CreatedAt,
	}
}

// PicksMap renders picks in their wire form, omitting unfilled slots.
func PicksMap(p scoring.Picks) map[string]string {
	m := make(map[string]string, scoring.Slots)
	for i, entry := range p {
		if entry != "" {
			m[scoring.PointValues[i].String()] = entry
		}
	}
	return m
}

// ResultsRecord is the admin-entered final outcome. It may be stored
// incomplete; the scoring engine rejects it until it is whole.
type ResultsRecord struct {
	Top10           []string `json:"top10"`
	PredictionPlace Place    `json:"prediction_place"`
}

// ScoringResults converts the record into the scoring engine's input.
func (r ResultsRecord) ScoringResults() scoring.Results {
	return scoring.Results{
		Top10:           r.Top10,
		PredictionPlace: r.PredictionPlace.Ptr(),
	}
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
