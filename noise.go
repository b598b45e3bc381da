package wpinq

import (
	"math"
	"math/rand/v2"
)

// noiseScale is the integer scale of a Laplace draw (2^31 - 1), chosen
// so that noise lives on the same integer scale as integer-encoded
// weights.
const noiseScale = math.MaxInt32

// NoiseSource draws integer-quantised Laplace noise for measure's
// per-datum noise. It is an interface, rather than a bare function,
// grounded on catrate's injectable-time-function pattern generalised
// so tests can substitute a fixed-sequence fake without touching
// package-level state.
type NoiseSource interface {
	// Laplace returns one sample from a zero-mean, two-sided, integer-
	// quantised Laplace distribution with scale noiseScale.
	Laplace() int64
}

type randNoiseSource struct {
	rng *rand.Rand
}

// NewNoiseSource builds the default NoiseSource, deterministically
// seeded so that a fixed seed reproduces a fixed draw sequence.
func NewNoiseSource(seed int64) NoiseSource {
	return &randNoiseSource{rng: rand.New(rand.NewPCG(uint64(seed), uint64(seed>>32)))}
}

func (s *randNoiseSource) Laplace() int64 {
	u := s.rng.Float64()
	for u <= 0 {
		u = s.rng.Float64()
	}
	r := int64(math.Floor(math.Log(u) * noiseScale))
	if s.rng.IntN(2) == 0 {
		r = -r
	}
	return r
}

// fixedNoiseSource replays a fixed, cyclic sequence of draws; used by
// tests that need to pin the noise for a scenario (e.g. §8 scenario 4).
type fixedNoiseSource struct {
	values []int64
	next   int
}

// FixedNoiseSource returns a NoiseSource that replays values in order,
// cycling once exhausted. Calling it with no values always returns 0.
func FixedNoiseSource(values ...int64) NoiseSource {
	return &fixedNoiseSource{values: values}
}

func (s *fixedNoiseSource) Laplace() int64 {
	if len(s.values) == 0 {
		return 0
	}
	v := s.values[s.next%len(s.values)]
	s.next++
	return v
}
