package candystore

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFixturesSeasonGameCounter(t *testing.T) {
	store, err := New(Range{Start: 2016, End: 2018}, WithSeed(42))
	require.NoError(t, err)

	counters := make(map[int]int)
	for _, f := range store.Fixtures() {
		assert.Equal(t, counters[f.Season], f.SeasonGame)
		counters[f.Season]++
	}
	// The counter restarts from zero for each season.
	assert.Len(t, counters, 2)
}

func TestFixturesDateFormat(t *testing.T) {
	store, err := New(Count(1), WithSeed(42))
	require.NoError(t, err)

	for _, f := range store.Fixtures() {
		date, err := time.Parse(dateTimeLayout, f.Date)
		require.NoError(t, err)
		assert.Equal(t, f.Season, date.Year())
		assert.GreaterOrEqual(t, date.Hour(), 12)
		assert.Less(t, date.Hour(), 20)
	}
}

func TestFixturesRoundsAreOneBased(t *testing.T) {
	store, err := New(Count(1), WithSeed(42))
	require.NoError(t, err)

	minRound := int(^uint(0) >> 1)
	for _, f := range store.Fixtures() {
		if f.Round < minRound {
			minRound = f.Round
		}
	}
	assert.Equal(t, 1, minRound)
}
