// Package sampler provides the shared random primitives behind all generated
// data: uniform integer draws, permutations, and fake personal-data fields.
// Every sampler is backed by an explicit *rand.Rand handle so callers can
// seed deterministically; there is no package-level random state.
package sampler

import (
	"math"
	"math/rand"

	"github.com/brianvoe/gofakeit/v6"
)

// Sampler draws uniform values and fake names from a single random stream.
// One seed drives both the numeric draws and the name faker, so seeding a
// sampler fixes every downstream dataset. Not safe for concurrent use.
type Sampler struct {
	rng   *rand.Rand
	faker *gofakeit.Faker
}

// New returns a sampler seeded with the given value.
func New(seed int64) *Sampler {
	return FromRand(rand.New(rand.NewSource(seed)))
}

// FromRand returns a sampler backed by an existing random handle.
// The faker shares the same source, so the caller's seed covers names too.
func FromRand(rng *rand.Rand) *Sampler {
	return &Sampler{
		rng:   rng,
		faker: gofakeit.NewCustom(rng),
	}
}

// IntBetween returns a uniform integer in the half-open range [min, max).
func (s *Sampler) IntBetween(min, max int) int {
	if max <= min {
		return min
	}
	return min + s.rng.Intn(max-min)
}

// Float64 returns a uniform float in [0, 1).
func (s *Sampler) Float64() float64 {
	return s.rng.Float64()
}

// Round2 truncates a float to two decimal places, the precision used for
// betting odds.
func Round2(f float64) float64 {
	return math.Round(f*100) / 100
}

// Perm returns a random permutation of [0, n).
func (s *Sampler) Perm(n int) []int {
	return s.rng.Perm(n)
}

// Shuffled returns a freshly permuted copy of the given strings.
func (s *Sampler) Shuffled(items []string) []string {
	out := make([]string, len(items))
	for i, j := range s.rng.Perm(len(items)) {
		out[i] = items[j]
	}
	return out
}

// Pick returns one of the given strings, chosen uniformly.
func (s *Sampler) Pick(items []string) string {
	return items[s.rng.Intn(len(items))]
}

// FirstName returns a fake given name.
func (s *Sampler) FirstName() string {
	return s.faker.FirstName()
}

// LastName returns a fake surname.
func (s *Sampler) LastName() string {
	return s.faker.LastName()
}

// FullName returns a fake "First Last" name, used for umpires.
func (s *Sampler) FullName() string {
	return s.faker.Name()
}
