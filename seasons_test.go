package candystore

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tipresias/candystore/internal/sampler"
)

func TestResolveSeasonsCount(t *testing.T) {
	const currentYear = 2024
	smp := sampler.New(42)

	// Resolved counts always start at a valid year and leave room to
	// possibly include the current year.
	for i := 0; i < 500; i++ {
		years, err := resolveSeasons(smp, Count(3), currentYear)
		require.NoError(t, err)
		require.Len(t, years, 3)
		assert.GreaterOrEqual(t, years[0], FirstSeason)
		assert.LessOrEqual(t, years[0]+3, currentYear+2)
		assert.Equal(t, []int{years[0], years[0] + 1, years[0] + 2}, years)
	}
}

func TestResolveSeasonsCountAtLimit(t *testing.T) {
	const currentYear = 2024
	smp := sampler.New(42)

	// The largest count that fits pins the start year to the first season.
	maxCount := currentYear - FirstSeason + 1
	years, err := resolveSeasons(smp, Count(maxCount), currentYear)
	require.NoError(t, err)
	assert.Equal(t, FirstSeason, years[0])
	assert.Len(t, years, maxCount)

	_, err = resolveSeasons(smp, Count(maxCount+2), currentYear)
	var configErr *ConfigError
	require.ErrorAs(t, err, &configErr)
}

func TestResolveSeasonsRange(t *testing.T) {
	const currentYear = 2024
	smp := sampler.New(42)

	years, err := resolveSeasons(smp, Range{Start: 1967, End: 1970}, currentYear)
	require.NoError(t, err)
	assert.Equal(t, []int{1967, 1968, 1969}, years)

	years, err = resolveSeasons(smp, Years(2015, 2017), currentYear)
	require.NoError(t, err)
	assert.Equal(t, []int{2015, 2016}, years)

	// The current year + 1 is a valid exclusive upper bound.
	years, err = resolveSeasons(smp, Range{Start: currentYear, End: currentYear + 1}, currentYear)
	require.NoError(t, err)
	assert.Equal(t, []int{currentYear}, years)
}

func TestResolveSeasonsInvalidSpecs(t *testing.T) {
	const currentYear = 2024

	tests := []struct {
		name    string
		spec    SeasonSpec
		wantMsg string
	}{
		{"zero count", Count(0), "at least one season"},
		{"negative count", Count(-3), "at least one season"},
		{"three bounds", Years(2015, 2016, 2017), "provide two seasons"},
		{"one bound", Years(2015), "provide two seasons"},
		{"before first season", Range{Start: 1850, End: 1900}, "seasons must be in the range"},
		{"after current year", Range{Start: currentYear, End: currentYear + 5}, "seasons must be in the range"},
		{"reversed bounds", Range{Start: 2018, End: 2015}, "less than"},
		{"equal bounds", Range{Start: 2015, End: 2015}, "less than"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			smp := sampler.New(42)
			_, err := resolveSeasons(smp, tt.spec, currentYear)
			var configErr *ConfigError
			require.ErrorAs(t, err, &configErr)
			assert.ErrorContains(t, err, tt.wantMsg)
		})
	}
}

func TestResolveSeasonsUnsupportedSpec(t *testing.T) {
	smp := sampler.New(42)
	_, err := resolveSeasons(smp, nil, 2024)
	require.ErrorIs(t, err, ErrSeasonsType)
}

func TestNewFailsFast(t *testing.T) {
	_, err := New(Count(0))
	var configErr *ConfigError
	require.ErrorAs(t, err, &configErr)

	_, err = New(nil)
	require.ErrorIs(t, err, ErrSeasonsType)
}
