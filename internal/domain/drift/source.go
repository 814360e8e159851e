// Package drift provides the bounded random primitives used to synthesize and
// evolve records: uniform, normal and log-normal draws, a tolerant integer
// range picker and a calendar-day sampler.
//
// Every Source owns its generator. Nothing in this package touches the
// package-level math/rand state, so two sources built from the same seed
// produce the same stream.
package drift

import (
	"math"
	"math/rand"
	"time"
)

const hoursPerDay = 24

// Source wraps a pseudorandom generator with the distributions the
// generators need. A Source is not safe for concurrent use; give each
// chain its own.
type Source struct {
	rng *rand.Rand
}

// New returns a deterministic Source for the given seed.
func New(seed int64) *Source {
	return &Source{rng: rand.New(rand.NewSource(seed))} //nolint:gosec // synthetic data, not security sensitive
}

// NewUnseeded returns a Source seeded from the wall clock.
func NewUnseeded() *Source {
	return New(time.Now().UnixNano())
}

// Float64 returns a uniform value in [0, 1).
func (s *Source) Float64() float64 { return s.rng.Float64() }

// Intn returns a uniform integer in [0, n). n <= 0 yields 0.
func (s *Source) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return s.rng.Intn(n)
}

// Int63 returns a non-negative 63-bit integer. Used to derive child seeds.
func (s *Source) Int63() int64 { return s.rng.Int63() }

// Uniform returns a value in [min, max). Inverted bounds are accepted and
// sample the same interval.
func (s *Source) Uniform(min, max float64) float64 {
	return min + s.rng.Float64()*(max-min)
}

// Normal draws from N(mean, stddev).
func (s *Source) Normal(mean, stddev float64) float64 {
	return mean + s.rng.NormFloat64()*stddev
}

// LogNormal draws exp(N(mu, sigma)).
func (s *Source) LogNormal(mu, sigma float64) float64 {
	return math.Exp(s.Normal(mu, sigma))
}

// Bernoulli reports true with probability p.
func (s *Source) Bernoulli(p float64) bool {
	return s.rng.Float64() < p
}

// Pick returns one element of options, or "" when options is empty.
func (s *Source) Pick(options []string) string {
	if len(options) == 0 {
		return ""
	}
	return options[s.rng.Intn(len(options))]
}

// SafeRangeInt truncates both bounds toward zero, swaps them when a > b and
// returns a uniform integer in the closed interval [a, b].
func (s *Source) SafeRangeInt(a, b float64) int {
	lo, hi := int(a), int(b)
	if lo > hi {
		lo, hi = hi, lo
	}
	return lo + s.rng.Intn(hi-lo+1)
}

// DateBetween returns a uniformly random calendar day in [start, end]. The
// result keeps start's location and time of day. Inverted windows are
// swapped.
func (s *Source) DateBetween(start, end time.Time) time.Time {
	if end.Before(start) {
		start, end = end, start
	}
	days := int(end.Sub(start).Hours() / hoursPerDay)
	return start.AddDate(0, 0, s.SafeRangeInt(0, float64(days)))
}
