// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package scoring scores ballots against the final contest results.

# Point Values

A ballot has ten slots, one per contest point value:

	12, 10, 8, 7, 6, 5, 4, 3, 2, 1

Slot i predicts finishing position i+1. A complete ballot assigns a
distinct entry to every slot.

# Rank Score

Each pick scores against the entry's actual position in the top ten:

  - exact position: the full point value of the slot
  - in the top ten, wrong position: half the value of the predicted slot, rounded down
  - outside the top ten: 0

A perfect ballot scores 58.

# Secondary Score

The place prediction for the chosen entry scores by distance:

	0 → 10, 1 → 7, 2 → 5, 3..5 → 3, 6..10 → 1, otherwise 0

A missing prediction or unknown final place scores 0.

# Ranking

ComputeScores skips incomplete ballots with a warning and returns
snapshots sorted by total score, highest first. Ties keep input order.
Tally produces the live per-entry point totals shown on the scoreboard.
*/
package scoring
