// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package export writes the contest data as CSV or an XLSX workbook.
package export

import (
	"fmt"
	"strconv"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/siurna/uzkuraitis-eu/entries"
	"github.com/siurna/uzkuraitis-eu/models"
	"github.com/siurna/uzkuraitis-eu/scoring"
)

// TimestampLayout formats ballot submission times in exports
const TimestampLayout = "2006-01-02 15:04:05"

// Data is everything an export contains.
type Data struct {
	// Voters in the order they appear in the votes table
	Voters []models.Voter
	// Scores in leaderboard order
	Scores []scoring.Snapshot
	// Results is nil when no results have been saved
	Results *models.ResultsRecord
	// PredictionEntry is the entry code voters predicted a place for
	PredictionEntry string
}

// FileName returns the download name for an export made at t, e.g.
// "eurovision-data-2025-05-17.csv".
func FileName(ext string, t time.Time) string {
	return fmt.Sprintf("eurovision-data-%s.%s", t.UTC().Format("2006-01-02"), ext)
}

func (d Data) predictionName() string {
	return entries.Name(d.PredictionEntry)
}

// votesHeader is the header row of the votes table.
func (d Data) votesHeader() []string {
	header := make([]string, 0, scoring.Slots+3)
	header = append(header, "Name")
	for _, p := range scoring.PointValues {
		if p == 1 {
			header = append(header, "1 Point")
		} else {
			header = append(header, p.String()+" Points")
		}
	}
	return append(header, d.predictionName()+" Prediction", "Timestamp")
}

// voteRow renders one voter: picks by entry name, blank for unfilled slots.
func voteRow(v models.Voter) []string {
	row := make([]string, 0, scoring.Slots+3)
	row = append(row, v.Name)
	for _, code := range v.Picks {
		if code == "" {
			row = append(row, "")
			continue
		}
		row = append(row, entries.Name(code))
	}

	prediction := ""
	if v.Prediction != nil {
		prediction = strconv.Itoa(*v.Prediction)
	}
	return append(row, prediction, v.CreatedAt.UTC().Format(TimestampLayout))
}

var scoresHeader = []string{"Name", "Top 10 Score", "Prediction Score", "Total Score"}

// placeLabel renders a 1-indexed place as an ordinal ("1st", "22nd").
func placeLabel(place int) string {
	return humanize.Ordinal(place)
}

// resultRows lists the final top ten, skipping empty positions.
func resultRows(rec *models.ResultsRecord) [][]string {
	var rows [][]string
	for i, code := range rec.Top10 {
		if code == "" {
			continue
		}
		rows = append(rows, []string{placeLabel(i + 1), entries.Name(code)})
	}
	return rows
}

func predictionPlaceLabel(rec *models.ResultsRecord) string {
	if !rec.PredictionPlace.Valid {
		return ""
	}
	return placeLabel(rec.PredictionPlace.Value)
}
