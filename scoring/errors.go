// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package scoring

import "fmt"

// InvalidResultsError means the results record cannot be scored against.
// No snapshots are produced when it is returned.
type InvalidResultsError struct {
	Reason string
}

func (e *InvalidResultsError) Error() string {
	return "invalid results: " + e.Reason
}

// InvalidBallotError identifies a single ballot that was skipped.
type InvalidBallotError struct {
	VoterID   string
	VoterName string
	Reason    string
}

func (e *InvalidBallotError) Error() string {
	return fmt.Sprintf("invalid ballot for voter %s (%s): %s", e.VoterID, e.VoterName, e.Reason)
}
