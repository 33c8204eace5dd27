package geom

import (
	"math/rand/v2"
)

// Rand is the random source injected into everything that samples.
// *rand.Rand from math/rand/v2 satisfies it.
type Rand interface {
	IntN(n int) int
	Float64() float64
}

// NewRand returns a deterministic PCG-backed source.
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9E3779B97F4A7C15))
}

// NewEntropyRand returns a source seeded from the runtime's entropy.
func NewEntropyRand() *rand.Rand {
	return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
}

// RandomInt returns a uniform integer in [min, max], both inclusive.
func RandomInt(r Rand, min, max int) int {
	if max <= min {
		return min
	}
	return min + r.IntN(max-min+1)
}

// RandomChoice returns a uniformly chosen element of list.
// It panics on an empty list.
func RandomChoice[T any](r Rand, list []T) T {
	if len(list) == 0 {
		panic("geom: RandomChoice on empty list")
	}
	return list[r.IntN(len(list))]
}

// RandomSpread returns a value uniform in [-spread/2, spread/2).
func RandomSpread(r Rand, spread float64) float64 {
	return (r.Float64() - 0.5) * spread
}
