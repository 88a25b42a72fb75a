// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
)

// WriteCSV writes the votes table, then the SCORES section, then the
// FINAL RESULTS section when results exist. Sections are separated by
// blank lines.
func WriteCSV(w io.Writer, d Data) error {
	cw := csv.NewWriter(w)

	records := [][]string{d.votesHeader()}
	for _, v := range d.Voters {
		records = append(records, voteRow(v))
	}

	records = append(records, []string{}, []string{}, []string{"SCORES"}, scoresHeader)
	for _, s := range d.Scores {
		records = append(records, []string{
			s.VoterName,
			strconv.Itoa(s.RankScore),
			strconv.Itoa(s.SecondaryScore),
			strconv.Itoa(s.TotalScore),
		})
	}

	if d.Results != nil {
		records = append(records, []string{}, []string{}, []string{"FINAL RESULTS"}, []string{"Position", "Country"})
		records = append(records, resultRows(d.Results)...)
		records = append(records, []string{},
			[]string{d.predictionName() + " Final Position", predictionPlaceLabel(d.Results)})
	}

	if err := cw.WriteAll(records); err != nil {
		return fmt.Errorf("failed to write csv: %w", err)
	}
	return nil
}
