// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package scoring

import (
	"cmp"
	"fmt"
	"slices"
)

// Ballot is one voter's ranked picks plus the optional place prediction.
type Ballot struct {
	VoterID    string
	VoterName  string
	Picks      Picks
	Prediction *int
}

// Validate checks that every point value is assigned to a distinct entry.
func (b Ballot) Validate() error {
	if reason := b.Picks.validate(); reason != "" {
		return &InvalidBallotError{VoterID: b.VoterID, VoterName: b.VoterName, Reason: reason}
	}
	return nil
}

// Results is the authoritative outcome ballots are scored against.
type Results struct {
	// Top10 holds entry codes in finishing order, first place first.
	Top10 []string
	// PredictionPlace is the final place of the distinguished entry.
	PredictionPlace *int
}

// Validate checks the structure of the results record.
func (r Results) Validate() error {
	if len(r.Top10) != Slots {
		return &InvalidResultsError{Reason: fmt.Sprintf("top 10 has %d entries, want %d", len(r.Top10), Slots)}
	}
	seen := make(map[string]int, Slots)
	for i, entry := range r.Top10 {
		if entry == "" {
			return &InvalidResultsError{Reason: fmt.Sprintf("position %d is empty", i+1)}
		}
		if prev, dup := seen[entry]; dup {
			return &InvalidResultsError{Reason: fmt.Sprintf("entry %s appears at positions %d and %d", entry, prev, i+1)}
		}
		seen[entry] = i + 1
	}
	if r.PredictionPlace == nil {
		return &InvalidResultsError{Reason: "prediction place is missing or not a number"}
	}
	if *r.PredictionPlace < 1 {
		return &InvalidResultsError{Reason: fmt.Sprintf("prediction place %d is not a valid place", *r.PredictionPlace)}
	}
	return nil
}

// positions maps each entry in Top10 to its 1-indexed finishing place.
func (r Results) positions() map[string]int {
	actual := make(map[string]int, len(r.Top10))
	for i, entry := range r.Top10 {
		actual[entry] = i + 1
	}
	return actual
}

// Snapshot is one voter's computed score.
type Snapshot struct {
	VoterID        string `json:"voter_id"`
	VoterName      string `json:"voter_name"`
	RankScore      int    `json:"rank_score"`
	SecondaryScore int    `json:"secondary_score"`
	TotalScore     int    `json:"total_score"`
}

// Run is the output of a scoring pass.
type Run struct {
	// Snapshots are ordered by TotalScore descending; ties keep ballot order.
	Snapshots []Snapshot
	// Warnings lists the ballots that were skipped.
	Warnings []*InvalidBallotError
}

// ComputeScores scores every ballot against results.
//
// An invalid results record aborts the whole run with *InvalidResultsError.
// Invalid ballots are skipped and reported in Run.Warnings; the remaining
// voters are still scored. The function has no side effects and identical
// inputs always produce identical output.
func ComputeScores(ballots []Ballot, results Results) (*Run, error) {
	if err := results.Validate(); err != nil {
		return nil, err
	}

	actual := results.positions()
	place := *results.PredictionPlace

	run := &Run{Snapshots: make([]Snapshot, 0, len(ballots))}
	for _, b := range ballots {
		if err := b.Validate(); err != nil {
			run.Warnings = append(run.Warnings, err.(*InvalidBallotError))
			continue
		}

		rank := RankScore(b.Picks, actual)
		secondary := 0
		if b.Prediction != nil {
			secondary = SecondaryScore(*b.Prediction, place)
		}

		run.Snapshots = append(run.Snapshots, Snapshot{
			VoterID:        b.VoterID,
			VoterName:      b.VoterName,
			RankScore:      rank,
			SecondaryScore: secondary,
			TotalScore:     rank + secondary,
		})
	}

	SortSnapshots(run.Snapshots)
	return run, nil
}

// RankScore sums PickScore over every filled slot. actual maps entry codes
// to their finishing place; entries outside the top ten are absent.
func RankScore(picks Picks, actual map[string]int) int {
	score := 0
	for i, entry := range picks {
		if entry == "" {
			continue
		}
		score += PickScore(i+1, actual[entry])
	}
	return score
}

// PickScore is the contribution of one pick predicted at place predicted
// (1..10) for an entry that finished at actual (0 when outside the top ten).
// An exact placement earns the full point value of the predicted place, any
// other top-ten placement earns half of it rounded down.
func PickScore(predicted, actual int) int {
	if predicted < 1 || predicted > Slots || actual == 0 {
		return 0
	}
	full := int(PointValues[predicted-1])
	if predicted == actual {
		return full
	}
	return full / 2
}

// SecondaryScore maps the distance between the predicted and actual place
// of the distinguished entry onto a fixed step function.
func SecondaryScore(predicted, actual int) int {
	diff := predicted - actual
	if diff < 0 {
		diff = -diff
	}

	switch {
	case diff == 0:
		return 10
	case diff == 1:
		return 7
	case diff == 2:
		return 5
	case diff <= 5:
		return 3
	case diff <= 10:
		return 1
	default:
		return 0
	}
}

// SortSnapshots orders snapshots by total score, highest first.
// Equal totals keep their relative order.
func SortSnapshots(snapshots []Snapshot) {
	slices.SortStableFunc(snapshots, func(a, b Snapshot) int {
		return cmp.Compare(b.TotalScore, a.TotalScore)
	})
}
