package candystore

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatchResultsScoring(t *testing.T) {
	store, err := New(Count(1), WithSeed(42))
	require.NoError(t, err)

	for _, r := range store.MatchResults() {
		assert.Equal(t, r.HomeGoals*6+r.HomeBehinds, r.HomePoints)
		assert.Equal(t, r.AwayGoals*6+r.AwayBehinds, r.AwayPoints)
		// Margin is always home minus away, never flipped for the winner.
		assert.Equal(t, r.HomePoints-r.AwayPoints, r.Margin)

		assert.GreaterOrEqual(t, r.HomeGoals, minReasonableGoals)
		assert.Less(t, r.HomeGoals, maxReasonableGoals)
		assert.GreaterOrEqual(t, r.HomeBehinds, minReasonableBehinds)
		assert.Less(t, r.HomeBehinds, maxReasonableBehinds)
	}
}

func TestMatchResultsRoundLabels(t *testing.T) {
	store, err := New(Count(1), WithSeed(42))
	require.NoError(t, err)

	for _, r := range store.MatchResults() {
		assert.Equal(t, "R"+strconv.Itoa(r.RoundNumber), r.Round)
	}
}

func TestMatchResultsFinalsClassification(t *testing.T) {
	store, err := New(Range{Start: 2016, End: 2018}, WithSeed(42))
	require.NoError(t, err)

	results := store.MatchResults()

	maxRounds := make(map[int]int)
	for _, r := range results {
		if r.RoundNumber > maxRounds[r.Season] {
			maxRounds[r.Season] = r.RoundNumber
		}
	}

	finalsRounds := make(map[int]map[int]bool)
	for _, r := range results {
		switch r.RoundType {
		case roundTypeFinals:
			if finalsRounds[r.Season] == nil {
				finalsRounds[r.Season] = make(map[int]bool)
			}
			finalsRounds[r.Season][r.RoundNumber] = true
		case roundTypeRegular:
			assert.Less(t, r.RoundNumber, firstFinalsRound(maxRounds[r.Season]))
		default:
			t.Fatalf("unexpected round type %q", r.RoundType)
		}
	}

	// The five finals stages compress into the last four round numbers.
	for season, maxRound := range maxRounds {
		require.Len(t, finalsRounds[season], 4)
		for round := maxRound - 3; round <= maxRound; round++ {
			assert.True(t, finalsRounds[season][round],
				"season %d round %d should be a finals round", season, round)
		}
	}
}

func TestMatchResultsGameCounter(t *testing.T) {
	store, err := New(Range{Start: 2016, End: 2018}, WithSeed(42))
	require.NoError(t, err)

	counters := make(map[int]int)
	for _, r := range store.MatchResults() {
		assert.Equal(t, counters[r.Season], r.Game)
		counters[r.Season]++
	}
}

func TestMatchResultsDateIsDateOnly(t *testing.T) {
	store, err := New(Count(1), WithSeed(42))
	require.NoError(t, err)

	for _, r := range store.MatchResults() {
		assert.Len(t, r.Date, len(dateLayout))
	}
}
