// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the API.

Request types (SubmitBallotRequest, VotingStatusRequest,
UpdateSettingsRequest) are decoded from JSON bodies. Response types
mirror the JSON returned by each handler.

Voter and ResultsRecord are the stored forms of a ballot and of the
admin's final results; Ballot and ScoringResults convert them into
scoring inputs.

Place is a nullable finishing place. It decodes numbers, numeric strings
and null. Anything else decodes as absent with Invalid set; ballots
reject it while the results record keeps it absent.
*/
package models
