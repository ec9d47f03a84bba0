// Package random provides the seed source threaded through world generation.
//
// A Source is an explicit value handed from builder to builder. Every draw
// advances its state, so a fixed seed and a fixed call order always reproduce
// the same output. A Source must not be shared between goroutines.
package random

import (
	"encoding/binary"
	"math/rand/v2"

	"starmap-server/internal/shared/errors"
)

type Source struct {
	seed uint64
	rng  *rand.Rand
}

// New returns a Source seeded with seed
func New(seed uint64) *Source {
	return &Source{
		seed: seed,
		rng:  rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
	}
}

// NewUnseeded returns a Source seeded from the runtime's random generator
func NewUnseeded() *Source {
	return New(rand.Uint64())
}

// Seed returns the seed the Source was created with
func (s *Source) Seed() uint64 {
	return s.seed
}

func (s *Source) Uint64() uint64 {
	return s.rng.Uint64()
}

// Int8 draws a value across the full signed 8-bit range
func (s *Source) Int8() int8 {
	return int8(uint8(s.rng.Uint32()))
}

// Pick returns an index in [0, n). n must be positive.
func (s *Source) Pick(n int) int {
	return s.rng.IntN(n)
}

// Between draws an integer from the inclusive range r
func (s *Source) Between(r Range) int {
	if r.Max <= r.Min {
		return r.Min
	}
	return r.Min + s.rng.IntN(r.Max-r.Min+1)
}

// Read fills p with pseudo-random bytes so the Source can back uuid generation
func (s *Source) Read(p []byte) (int, error) {
	var buf [8]byte
	n := 0
	for n < len(p) {
		binary.LittleEndian.PutUint64(buf[:], s.rng.Uint64())
		n += copy(p[n:], buf[:])
	}
	return n, nil
}

// Range is an inclusive [Min, Max] bound for a random count
type Range struct {
	Min int `json:"min" yaml:"min"`
	Max int `json:"max" yaml:"max"`
}

// Validate rejects negative, inverted or oversized ranges
func (r Range) Validate(name string, limit int) error {
	if r.Min < 0 || r.Max < 0 {
		return errors.Validationf("%s range must not be negative (got %d-%d)", name, r.Min, r.Max)
	}
	if r.Min > r.Max {
		return errors.Validationf("%s range is inverted (got %d-%d)", name, r.Min, r.Max)
	}
	if limit > 0 && r.Max > limit {
		return errors.Validationf("%s range exceeds %d (got %d-%d)", name, limit, r.Min, r.Max)
	}
	return nil
}
