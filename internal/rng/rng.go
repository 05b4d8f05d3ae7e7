// Package rng provides the seeded pseudo-random source used to initialize
// network weights.
//
// A Source is injected into every network instead of living in a package
// global, so tests can rewind it with Reset and independent networks never
// share state. A Source is not safe for concurrent use.
package rng

import (
	"math/rand/v2"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/antikrem/EscalatorNet/internal/matrix"
)

// DefaultSeed is the seed used when a caller does not supply a Source.
const DefaultSeed uint64 = 1

// Source is a resettable PCG generator. It implements rand.Source.
type Source struct {
	seed uint64
	pcg  *rand.PCG
}

// New creates a Source positioned at the start of seed's stream.
func New(seed uint64) *Source {
	return &Source{seed: seed, pcg: rand.NewPCG(seed, 0)}
}

// Uint64 returns the next raw value.
func (s *Source) Uint64() uint64 {
	return s.pcg.Uint64()
}

// Seed returns the seed the source rewinds to.
func (s *Source) Seed() uint64 {
	return s.seed
}

// Reset rewinds the source to the start of its seed's stream.
func (s *Source) Reset() {
	s.pcg.Seed(s.seed, 0)
}

// Reseed switches the source to a new seed and rewinds it.
func (s *Source) Reseed(seed uint64) {
	s.seed = seed
	s.Reset()
}

// Uniform samples one value from U[lower, upper).
func (s *Source) Uniform(lower, upper float64) float64 {
	return distuv.Uniform{Min: lower, Max: upper, Src: s}.Rand()
}

// FillUniform overwrites dst with consecutive samples from U[lower, upper).
func FillUniform[T matrix.Float](s *Source, dst []T, lower, upper float64) {
	dist := distuv.Uniform{Min: lower, Max: upper, Src: s}
	for i := range dst {
		dst[i] = T(dist.Rand())
	}
}
