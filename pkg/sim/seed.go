package sim

import (
	"math/rand/v2"
	"strconv"

	"github.com/cespare/xxhash/v2"
)

// SeedFromPhrase turns a human-friendly seed into a numeric one. Plain
// numbers are used as-is.
func SeedFromPhrase(phrase string) uint64 {
	if n, err := strconv.ParseUint(phrase, 10, 64); err == nil {
		return n
	}
	return xxhash.Sum64String(phrase)
}

// NewRand returns a deterministic source for seed.
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}
