// Package synth generates the deterministic synthetic waste data that backs
// every dashboard view. All generators derive an independent rand.Rand from a
// stable hash of the identity key, so re-rendering a page for the same user or
// ward always produces the same values, and concurrent generations never share
// RNG state.
package synth

import (
	"hash/fnv"
	"math"
	"math/rand"
)

// Seed derives a stable seed from an identity key. FNV-1a over the UTF-8
// bytes keeps seeds reproducible across runs and machines.
func Seed(key string) int64 {
	h := fnv.New32a()
	h.Write([]byte(key))
	return int64(h.Sum32())
}

// NewRand returns a generator owned by the caller and seeded by key.
func NewRand(key string) *rand.Rand {
	return rand.New(rand.NewSource(Seed(key)))
}

func uniform(r *rand.Rand, lo, hi float64) float64 {
	return lo + r.Float64()*(hi-lo)
}

// randInt returns an integer in [lo, hi] inclusive.
func randInt(r *rand.Rand, lo, hi int) int {
	return lo + r.Intn(hi-lo+1)
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
