// Package candystore generates fake AFL-style datasets for use as test
// fixtures: match fixtures, betting odds, match results, and per-player
// match statistics. All four datasets derive from one internally consistent
// base schedule (same seasons, rounds, teams, venues and dates), while their
// numeric fields are sampled independently per dataset from realistic
// ranges. The goal is data with the shape of the real thing, not data that
// is statistically faithful to it.
package candystore

import (
	"math/rand"
	"time"

	"github.com/tipresias/candystore/internal/sampler"
	"github.com/tipresias/candystore/internal/schedule"
)

// CandyStore is a data factory for the four derived datasets. The base
// schedule is generated once at construction and shared by every accessor;
// the dataset-specific fields are sampled fresh on every call, so two calls
// to the same accessor return the same schedule with different numbers.
//
// A CandyStore is not safe for concurrent use: all accessors draw from the
// one random stream.
type CandyStore struct {
	smp     *sampler.Sampler
	seasons []int
	base    []schedule.Match
}

// Option configures a CandyStore's randomness.
type Option func(*storeOptions)

type storeOptions struct {
	rng  *rand.Rand
	seed *int64
}

// WithSeed seeds the store's random stream, making every generated dataset
// deterministic for a given seasons spec.
func WithSeed(seed int64) Option {
	return func(o *storeOptions) { o.seed = &seed }
}

// WithRand supplies an existing random handle, for callers that share one
// stream across several generators.
func WithRand(rng *rand.Rand) Option {
	return func(o *storeOptions) { o.rng = rng }
}

// New resolves the season spec and generates the base schedule immediately.
// An invalid spec fails here with a *ConfigError or ErrSeasonsType; accessors
// on a successfully constructed store do not fail.
func New(seasons SeasonSpec, opts ...Option) (*CandyStore, error) {
	var o storeOptions
	for _, opt := range opts {
		opt(&o)
	}

	var smp *sampler.Sampler
	switch {
	case o.rng != nil:
		smp = sampler.FromRand(o.rng)
	case o.seed != nil:
		smp = sampler.New(*o.seed)
	default:
		smp = sampler.New(time.Now().UnixNano())
	}

	years, err := resolveSeasons(smp, seasons, time.Now().Year())
	if err != nil {
		return nil, err
	}

	return &CandyStore{
		smp:     smp,
		seasons: years,
		base:    schedule.Generate(smp, years),
	}, nil
}

// Seasons returns the years data is generated for, in order.
func (c *CandyStore) Seasons() []int {
	years := make([]int, len(c.seasons))
	copy(years, c.seasons)
	return years
}

// MatchCount returns the number of matches in the base schedule.
func (c *CandyStore) MatchCount() int {
	return len(c.base)
}

// Fixtures generates fixture records for the store's seasons.
func (c *CandyStore) Fixtures() []Fixture {
	return convertToFixtures(c.base)
}

// BettingOdds generates betting odds records for the store's seasons.
func (c *CandyStore) BettingOdds() []BettingOdds {
	return convertToBettingOdds(c.smp, c.base)
}

// MatchResults generates match result records for the store's seasons.
func (c *CandyStore) MatchResults() []MatchResult {
	return convertToMatchResults(c.smp, c.base)
}

// Players generates one record per player per match: 22 players for each of
// the two sides of every scheduled match.
func (c *CandyStore) Players() []PlayerStats {
	return convertToPlayers(c.smp, c.base)
}
