package entity

import "math/rand/v2"

// Rand is the randomness source for spawning and particles.
// *rand.Rand from math/rand/v2 satisfies it.
type Rand interface {
	Float64() float64
}

type globalRand struct{}

func (globalRand) Float64() float64 { return rand.Float64() }

// rangeF returns a value in [lo, hi).
func rangeF(r Rand, lo, hi float64) float64 {
	if hi <= lo {
		return lo
	}
	return lo + r.Float64()*(hi-lo)
}

// intN returns a value in [0, n).
func intN(r Rand, n int) int {
	if n <= 1 {
		return 0
	}
	return min(int(r.Float64()*float64(n)), n-1)
}
