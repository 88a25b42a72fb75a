// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/siurna/uzkuraitis-eu/models"
	"github.com/siurna/uzkuraitis-eu/scoring"
	"github.com/siurna/uzkuraitis-eu/testutil"
)

func intPtr(v int) *int { return &v }

var ballotPicks = testutil.Picks("se", "fr", "at", "il", "nl", "it", "ee", "fi", "pl", "gr")

func TestStore_SaveBallot(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()

	s := New(conn)
	ctx := context.Background()

	t.Run("new voter", func(t *testing.T) {
		id, updated, err := s.SaveBallot(ctx, BallotInput{
			Name:       "Alice",
			SessionID:  "session-alice",
			Prediction: intPtr(5),
			Picks:      ballotPicks,
		})
		require.NoError(t, err)
		assert.False(t, updated)
		assert.NotEmpty(t, id)

		voters, err := s.ListVoters(ctx)
		require.NoError(t, err)
		require.Len(t, voters, 1)

		v := voters[0]
		assert.Equal(t, id, v.ID)
		assert.Equal(t, "Alice", v.Name)
		require.NotNil(t, v.SessionID)
		assert.Equal(t, "session-alice", *v.SessionID)
		require.NotNil(t, v.Prediction)
		assert.Equal(t, 5, *v.Prediction)
		assert.Equal(t, ballotPicks, v.Picks)
		assert.False(t, v.CreatedAt.IsZero())
	})

	t.Run("resubmission replaces ballot", func(t *testing.T) {
		first, _, err := s.SaveBallot(ctx, BallotInput{
			Name:      "Bob",
			SessionID: "session-bob",
			Picks:     ballotPicks,
		})
		require.NoError(t, err)

		reversed := testutil.Picks("gr", "pl", "fi", "ee", "it", "nl", "il", "at", "fr", "se")
		second, updated, err := s.SaveBallot(ctx, BallotInput{
			Name:       "Bobby",
			SessionID:  "session-bob",
			Prediction: intPtr(2),
			Picks:      reversed,
		})
		require.NoError(t, err)
		assert.True(t, updated)
		assert.Equal(t, first, second)

		voters, err := s.ListVoters(ctx)
		require.NoError(t, err)
		require.Len(t, voters, 2)

		bob := voters[1]
		assert.Equal(t, "Bobby", bob.Name)
		assert.Equal(t, reversed, bob.Picks)
		require.NotNil(t, bob.Prediction)
		assert.Equal(t, 2, *bob.Prediction)
		assert.Equal(t, scoring.Slots*2, testutil.CountRows(t, conn, "pick"))
	})

	t.Run("no session always creates", func(t *testing.T) {
		a, _, err := s.SaveBallot(ctx, BallotInput{Name: "Anon", Picks: ballotPicks})
		require.NoError(t, err)
		b, _, err := s.SaveBallot(ctx, BallotInput{Name: "Anon", Picks: ballotPicks})
		require.NoError(t, err)
		assert.NotEqual(t, a, b)
	})
}

func TestStore_ListOrdering(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()

	s := New(conn)
	ctx := context.Background()

	base := time.Date(2025, 5, 17, 19, 0, 0, 0, time.UTC)
	for i, name := range []string{"first", "second", "third"} {
		testutil.CreateTestVoter(t, conn, name, ballotPicks, nil, base.Add(time.Duration(i)*time.Minute))
	}

	all, err := s.ListVoters(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "first", all[0].Name)
	assert.Equal(t, "third", all[2].Name)

	recent, err := s.RecentVoters(ctx, 2)
	require.NoError(t, err)
	require.Len(t, recent, 2)
	assert.Equal(t, "third", recent[0].Name)
	assert.Equal(t, "second", recent[1].Name)

	ballots, err := s.FetchBallots(ctx)
	require.NoError(t, err)
	require.Len(t, ballots, 3)
	assert.Equal(t, all[0].ID, ballots[0].VoterID)
	assert.Nil(t, ballots[0].Prediction)
}

func TestStore_DeleteVoter(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()

	s := New(conn)
	ctx := context.Background()

	id := testutil.CreateTestVoter(t, conn, "Alice", ballotPicks, intPtr(3), time.Time{})

	require.NoError(t, s.DeleteVoter(ctx, id))
	assert.Equal(t, 0, testutil.CountRows(t, conn, "voter"))
	assert.Equal(t, 0, testutil.CountRows(t, conn, "pick"))

	assert.ErrorIs(t, s.DeleteVoter(ctx, id), ErrNotFound)
}

func TestStore_DeletePick(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()

	s := New(conn)
	ctx := context.Background()

	id := testutil.CreateTestVoter(t, conn, "Alice", ballotPicks, nil, time.Time{})

	require.NoError(t, s.DeletePick(ctx, id, 12))
	assert.ErrorIs(t, s.DeletePick(ctx, id, 12), ErrNotFound)
	assert.ErrorIs(t, s.DeletePick(ctx, "missing", 10), ErrNotFound)

	voters, err := s.ListVoters(ctx)
	require.NoError(t, err)
	require.Len(t, voters, 1)
	assert.Equal(t, "", voters[0].Picks.Get(12))
	assert.Equal(t, "fr", voters[0].Picks.Get(10))

	// An incomplete ballot no longer validates
	assert.Error(t, voters[0].Ballot().Validate())
}

func TestStore_Scores(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()

	s := New(conn)
	ctx := context.Background()

	scores, err := s.ListScores(ctx)
	require.NoError(t, err)
	assert.Empty(t, scores)

	first := []scoring.Snapshot{
		{VoterID: "a", VoterName: "A", RankScore: 80, SecondaryScore: 20, TotalScore: 100},
		{VoterID: "b", VoterName: "B", RankScore: 50, SecondaryScore: 0, TotalScore: 50},
	}
	require.NoError(t, s.ReplaceScores(ctx, first, time.Now().UTC()))

	scores, err = s.ListScores(ctx)
	require.NoError(t, err)
	assert.Equal(t, first, scores)

	second := []scoring.Snapshot{
		{VoterID: "c", VoterName: "C", RankScore: 10, SecondaryScore: 5, TotalScore: 15},
	}
	require.NoError(t, s.ReplaceScores(ctx, second, time.Now().UTC()))

	scores, err = s.ListScores(ctx)
	require.NoError(t, err)
	assert.Equal(t, second, scores)
}

func TestStore_Settings(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()

	s := New(conn)
	ctx := context.Background()

	t.Run("defaults", func(t *testing.T) {
		enabled, err := s.VotingEnabled(ctx)
		require.NoError(t, err)
		assert.True(t, enabled)

		show, err := s.ShowAdminButton(ctx)
		require.NoError(t, err)
		assert.True(t, show)

		pw, err := s.AdminPassword(ctx, "fallback")
		require.NoError(t, err)
		assert.Equal(t, "fallback", pw)

		rec, err := s.FetchResults(ctx)
		require.NoError(t, err)
		assert.Nil(t, rec)
	})

	t.Run("updates", func(t *testing.T) {
		require.NoError(t, s.SetVotingEnabled(ctx, false))
		require.NoError(t, s.SetShowAdminButton(ctx, false))
		require.NoError(t, s.SetAdminPassword(ctx, "new-password"))

		enabled, err := s.VotingEnabled(ctx)
		require.NoError(t, err)
		assert.False(t, enabled)

		show, err := s.ShowAdminButton(ctx)
		require.NoError(t, err)
		assert.False(t, show)

		pw, err := s.AdminPassword(ctx, "fallback")
		require.NoError(t, err)
		assert.Equal(t, "new-password", pw)

		// Upsert overwrites
		require.NoError(t, s.SetVotingEnabled(ctx, true))
		enabled, err = s.VotingEnabled(ctx)
		require.NoError(t, err)
		assert.True(t, enabled)
	})

	t.Run("results record", func(t *testing.T) {
		rec := models.ResultsRecord{
			Top10:           testutil.FinalTop10,
			PredictionPlace: models.NewPlace(7),
		}
		require.NoError(t, s.SaveResults(ctx, rec))

		got, err := s.FetchResults(ctx)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, rec.Top10, got.Top10)
		assert.Equal(t, rec.PredictionPlace, got.PredictionPlace)
	})
}

func TestStore_Reset(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()

	s := New(conn)
	ctx := context.Background()

	testutil.CreateTestVoter(t, conn, "Alice", ballotPicks, nil, time.Time{})
	testutil.SaveTestResults(t, conn, testutil.FinalTop10, 3)
	require.NoError(t, s.ReplaceScores(ctx, []scoring.Snapshot{{VoterID: "a", VoterName: "A"}}, time.Now().UTC()))
	require.NoError(t, s.SetVotingEnabled(ctx, false))

	require.NoError(t, s.Reset(ctx))

	assert.Equal(t, 0, testutil.CountRows(t, conn, "voter"))
	assert.Equal(t, 0, testutil.CountRows(t, conn, "pick"))
	assert.Equal(t, 0, testutil.CountRows(t, conn, "score_snapshot"))

	rec, err := s.FetchResults(ctx)
	require.NoError(t, err)
	assert.Nil(t, rec)

	// Other settings survive a reset
	enabled, err := s.VotingEnabled(ctx)
	require.NoError(t, err)
	assert.False(t, enabled)
}
