package candystore

import (
	"errors"
	"fmt"

	"github.com/tipresias/candystore/internal/sampler"
	"github.com/tipresias/candystore/internal/schedule"
)

// FirstSeason is the earliest year a season can be generated for.
const FirstSeason = schedule.FirstSeason

// ErrSeasonsType is returned by New when the seasons argument is not one of
// the supported spec kinds.
var ErrSeasonsType = errors.New(
	"seasons argument must be either a season count or a range of two years")

// ConfigError reports an invalid season specification. It is always returned
// from New, never from an accessor.
type ConfigError struct {
	msg string
}

func (e *ConfigError) Error() string { return e.msg }

func configErrorf(format string, args ...any) *ConfigError {
	return &ConfigError{msg: fmt.Sprintf(format, args...)}
}

// SeasonSpec selects the seasons to generate data for: either a Count of
// consecutive seasons starting from a random valid year, or an explicit
// Range of years. The interface is sealed; use Count, Range or Years.
type SeasonSpec interface {
	seasonSpec()
}

// Count requests the given number of consecutive seasons, starting from a
// uniformly random year for which league data could exist.
type Count int

func (Count) seasonSpec() {}

// Range requests the half-open year range [Start, End), following the same
// rules as a Python range.
type Range struct {
	Start int
	End   int
}

func (Range) seasonSpec() {}

// Years builds a SeasonSpec from explicit bounds. Exactly two bounds make a
// valid range; any other arity fails at construction.
func Years(bounds ...int) SeasonSpec {
	return yearBounds(bounds)
}

type yearBounds []int

func (yearBounds) seasonSpec() {}

// resolveSeasons turns a season spec into the concrete, validated sequence
// of years to generate. Resolving a Count consumes randomness; ranges do not.
func resolveSeasons(smp *sampler.Sampler, spec SeasonSpec, currentYear int) ([]int, error) {
	switch s := spec.(type) {
	case Count:
		return resolveCount(smp, int(s), currentYear)
	case Range:
		return resolveRange(s, currentYear)
	case yearBounds:
		if len(s) != 2 {
			return nil, configErrorf(
				"must provide two seasons to have a valid range, but %v was given", []int(s))
		}
		return resolveRange(Range{Start: s[0], End: s[1]}, currentYear)
	default:
		return nil, ErrSeasonsType
	}
}

func resolveCount(smp *sampler.Sampler, count, currentYear int) ([]int, error) {
	if count <= 0 {
		return nil, configErrorf("must generate fixture data for at least one season, but %d was given", count)
	}

	// Adding 2 leaves open the possibility of including the current year.
	maxStartSeason := currentYear - count + 2
	if maxStartSeason <= FirstSeason {
		return nil, configErrorf(
			"cannot fit %d consecutive seasons between %d and %d", count, FirstSeason, currentYear+1)
	}

	start := smp.IntBetween(FirstSeason, maxStartSeason)
	return yearSequence(start, start+count), nil
}

func resolveRange(r Range, currentYear int) ([]int, error) {
	lower, upper := r.Start, r.End
	if upper < lower {
		lower, upper = upper, lower
	}

	if lower < FirstSeason || upper > currentYear+1 {
		return nil, configErrorf(
			"provided seasons must be in the range of %d to %d (inclusive) to generate valid data, but [%d, %d) was given",
			FirstSeason, currentYear+1, r.Start, r.End)
	}

	if r.Start >= r.End {
		return nil, configErrorf(
			"first season must be less than second to create a valid range, but [%d, %d) was given",
			r.Start, r.End)
	}

	return yearSequence(r.Start, r.End), nil
}

func yearSequence(start, end int) []int {
	years := make([]int, 0, end-start)
	for year := start; year < end; year++ {
		years = append(years, year)
	}
	return years
}
