// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package export

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
)

// Sheet names in the exported workbook
const (
	SheetVotes   = "Votes"
	SheetScores  = "Scores"
	SheetResults = "Results"
)

// WriteXLSX writes a workbook with one sheet per section. Scores are
// numeric cells; the Results sheet only has a header when no results exist.
func WriteXLSX(w io.Writer, d Data) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetVotes); err != nil {
		return fmt.Errorf("failed to rename sheet: %w", err)
	}
	for _, name := range []string{SheetScores, SheetResults} {
		if _, err := f.NewSheet(name); err != nil {
			return fmt.Errorf("failed to add sheet %s: %w", name, err)
		}
	}

	header, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("failed to create header style: %w", err)
	}

	votes := [][]interface{}{toRow(d.votesHeader())}
	for _, v := range d.Voters {
		votes = append(votes, toRow(voteRow(v)))
	}

	scores := [][]interface{}{toRow(scoresHeader)}
	for _, s := range d.Scores {
		scores = append(scores, []interface{}{s.VoterName, s.RankScore, s.SecondaryScore, s.TotalScore})
	}

	results := [][]interface{}{{"Position", "Country"}}
	if d.Results != nil {
		for _, row := range resultRows(d.Results) {
			results = append(results, toRow(row))
		}
		results = append(results, []interface{}{}, []interface{}{d.predictionName() + " Final Position", predictionPlaceLabel(d.Results)})
	}

	for _, sheet := range []struct {
		name string
		rows [][]interface{}
	}{
		{SheetVotes, votes},
		{SheetScores, scores},
		{SheetResults, results},
	} {
		if err := writeSheet(f, sheet.name, sheet.rows); err != nil {
			return err
		}
		if err := f.SetRowStyle(sheet.name, 1, 1, header); err != nil {
			return fmt.Errorf("failed to style %s header: %w", sheet.name, err)
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}

// writeSheet fills sheet starting at A1, one slice per row.
func writeSheet(f *excelize.File, sheet string, rows [][]interface{}) error {
	for r, values := range rows {
		for c, value := range values {
			cell, err := excelize.CoordinatesToCellName(c+1, r+1)
			if err != nil {
				return fmt.Errorf("failed to address cell: %w", err)
			}
			if err := f.SetCellValue(sheet, cell, value); err != nil {
				return fmt.Errorf("failed to set %s!%s: %w", sheet, cell, err)
			}
		}
	}
	return nil
}

func toRow(values []string) []interface{} {
	row := make([]interface{}, len(values))
	for i, v := range values {
		row[i] = v
	}
	return row
}
