// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package scoring

import (
	"cmp"
	"slices"
)

// EntryTotal is one row of the live leaderboard.
type EntryTotal struct {
	Entry string
	Total int
	// Counts[i] is how many voters gave the entry PointValues[i].
	Counts [Slots]int
}

// Tally sums the points every entry received across all ballots.
//
// Every filled slot counts, including those on incomplete ballots. Entries
// listed in catalog appear even when nobody picked them; entries missing
// from the catalog are appended after them. The result is ordered by total
// descending with ties kept in catalog order.
func Tally(ballots []Ballot, catalog []string) []EntryTotal {
	index := make(map[string]int, len(catalog))
	totals := make([]EntryTotal, 0, len(catalog))
	for _, code := range catalog {
		if _, ok := index[code]; ok {
			continue
		}
		index[code] = len(totals)
		totals = append(totals, EntryTotal{Entry: code})
	}

	for _, b := range ballots {
		for i, entry := range b.Picks {
			if entry == "" {
				continue
			}
			idx, ok := index[entry]
			if !ok {
				idx = len(totals)
				index[entry] = idx
				totals = append(totals, EntryTotal{Entry: entry})
			}
			totals[idx].Total += int(PointValues[i])
			totals[idx].Counts[i]++
		}
	}

	slices.SortStableFunc(totals, func(a, b EntryTotal) int {
		return cmp.Compare(b.Total, a.Total)
	})
	return totals
}
