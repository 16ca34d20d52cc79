package bloom

import (
	"encoding/binary"
	"math/rand/v2"
)

// Rand is the deterministic random source driving all parameter sampling.
// It wraps a ChaCha8 generator seeded from a single uint64 and remembers
// that seed, so Restore can rewind a sub-pipeline to the seed's initial
// state and re-consume the same stream (the center mosaic is regenerated
// this way, independently from the surrounding flower).
//
// Given an identical seed, every draw is bit-identical across runs.
type Rand struct {
	*rand.Rand
	seed uint64
}

// NewRand creates a generator seeded with seed.
func NewRand(seed uint64) *Rand {
	var key [32]byte
	binary.LittleEndian.PutUint64(key[:8], seed)
	binary.LittleEndian.PutUint64(key[8:16], ^seed)
	return &Rand{
		Rand: rand.New(rand.NewChaCha8(key)),
		seed: seed,
	}
}

// Seed returns the seed this generator started from.
func (r *Rand) Seed() uint64 {
	return r.seed
}

// Restore returns a fresh generator rewound to the seed's initial state.
func (r *Rand) Restore() *Rand {
	return NewRand(r.seed)
}

// Float32Range returns a uniform float32 in [min, max).
func (r *Rand) Float32Range(min, max float32) float32 {
	return min + r.Float32()*(max-min)
}

// Float64Range returns a uniform float64 in [min, max).
func (r *Rand) Float64Range(min, max float64) float64 {
	return min + r.Float64()*(max-min)
}

// IntRange returns a uniform int in [min, max]. min must not exceed max.
func (r *Rand) IntRange(min, max int) int {
	return min + r.IntN(max-min+1)
}

// Uint16Range returns a uniform uint16 in [min, max]. min must not exceed
// max.
func (r *Rand) Uint16Range(min, max uint16) uint16 {
	return min + uint16(r.IntN(int(max)-int(min)+1))
}

// Bool returns true with probability 1/2.
func (r *Rand) Bool() bool {
	return r.IntN(2) == 0
}

// Chance returns true with the given probability.
func (r *Rand) Chance(probability float64) bool {
	return r.Float64() < probability
}

// maybe runs fn with probability 1/2 and returns its result, or nil.
// Shared generation parameters are sampled this way: a non-nil result is
// locked for all layers, a nil result is re-drawn per layer.
func maybe[T any](r *Rand, fn func(*Rand) T) *T {
	if !r.Bool() {
		return nil
	}
	v := fn(r)
	return &v
}
