// Package random provides the single seeded pseudo-random source threaded
// through every generator. All draws for one run pull from one PCG stream,
// so output is fully determined by the seed and the call order. Generators
// must keep their draw order stable.
package random

import (
	"math"
	"math/rand/v2"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"gonum.org/v1/gonum/stat/distuv"
)

// Source wraps one seeded PCG shared by the raw generator, the
// distribution draws and the faker.
type Source struct {
	src   rand.Source
	rng   *rand.Rand
	faker *gofakeit.Faker
}

// New returns a Source seeded with the given value.
func New(seed uint64) *Source {
	src := rand.NewPCG(seed, seed)
	return &Source{
		src:   src,
		rng:   rand.New(src),
		faker: gofakeit.NewFaker(src, false),
	}
}

// Float64 returns a uniform draw in [0, 1).
func (s *Source) Float64() float64 {
	return s.rng.Float64()
}

// IntBetween returns a uniform integer in [lo, hi] inclusive.
func (s *Source) IntBetween(lo, hi int) int {
	return lo + s.rng.IntN(hi-lo+1)
}

// Bernoulli returns true with probability p.
func (s *Source) Bernoulli(p float64) bool {
	return distuv.Bernoulli{P: p, Src: s.src}.Rand() == 1
}

// Normal returns a draw from Normal(mu, sigma).
func (s *Source) Normal(mu, sigma float64) float64 {
	return distuv.Normal{Mu: mu, Sigma: sigma, Src: s.src}.Rand()
}

// Poisson returns a draw from Poisson(lambda).
func (s *Source) Poisson(lambda float64) int {
	return int(distuv.Poisson{Lambda: lambda, Src: s.src}.Rand())
}

// Geometric returns the number of Bernoulli(p) trials up to and including
// the first success, so the support starts at 1. distuv carries no
// geometric distribution; this is the inverse-transform construction.
func (s *Source) Geometric(p float64) int {
	u := s.rng.Float64()
	k := int(math.Floor(math.Log(1-u)/math.Log(1-p))) + 1
	if k < 1 {
		k = 1
	}
	return k
}

// WeightedIndex returns an index into weights drawn proportionally to them.
func (s *Source) WeightedIndex(weights []float64) int {
	c := distuv.NewCategorical(weights, s.src)
	return int(c.Rand())
}

// Pick returns a uniformly chosen element of options.
func (s *Source) Pick(options []string) string {
	return options[s.rng.IntN(len(options))]
}

// Country returns a country name.
func (s *Source) Country() string {
	return s.faker.Country()
}

// TimeOfDay returns a uniform offset into a calendar day.
func (s *Source) TimeOfDay() time.Duration {
	return time.Duration(s.rng.IntN(24*60*60)) * time.Second
}

// DaysAgo returns ref moved back by a uniform number of days in [lo, hi].
func (s *Source) DaysAgo(ref time.Time, lo, hi int) time.Time {
	return ref.AddDate(0, 0, -s.IntBetween(lo, hi))
}
