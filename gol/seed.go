package gol

import (
	"errors"
	"math/rand"
)

// ErrSeedExhausted is returned by a sequence seed with no values left.
var ErrSeedExhausted = errors.New("seed exhausted")

// Seed supplies the initial liveness of each cell, one value per cell in
// index order.
type Seed interface {
	Next() (bool, error)
}

// SeedFunc adapts a function to the Seed interface.
type SeedFunc func() (bool, error)

func (f SeedFunc) Next() (bool, error) {
	return f()
}

type randomSeed struct {
	rng     *rand.Rand
	density float64
}

// NewRandomSeed returns a pseudo-random seed where each cell is alive with
// probability density. The same seed value always yields the same stream.
func NewRandomSeed(seed int64, density float64) Seed {
	return &randomSeed{rng: rand.New(rand.NewSource(seed)), density: density}
}

func (s *randomSeed) Next() (bool, error) {
	return s.rng.Float64() < s.density, nil
}

type sequenceSeed struct {
	values []bool
	pos    int
}

// NewSequenceSeed replays values in order and fails once they run out.
func NewSequenceSeed(values []bool) Seed {
	return &sequenceSeed{values: values}
}

func (s *sequenceSeed) Next() (bool, error) {
	if s.pos >= len(s.values) {
		return false, ErrSeedExhausted
	}
	v := s.values[s.pos]
	s.pos++
	return v, nil
}
