// Package randutil derives reproducible random sources from int64 seeds.
package randutil

import rand "math/rand/v2"

const goldenRatio64 = 0x9e3779b97f4a7c15

// New returns a *rand.Rand seeded deterministically from seed. The two PCG
// words are spread with splitmix64 so neighbouring seeds diverge at once.
func New(seed int64) *rand.Rand {
	u := uint64(seed)
	return rand.New(rand.NewPCG(mix(u), mix(u+goldenRatio64)))
}

// Float64 returns a source of values in [0, 1) for shuffling decks
func Float64(seed int64) func() float64 {
	return New(seed).Float64
}

// Seeds derives n seeds from seed, e.g. one per worker goroutine
func Seeds(seed int64, n int) []int64 {
	rng := New(seed)
	seeds := make([]int64, n)
	for i := range seeds {
		seeds[i] = rng.Int64()
	}
	return seeds
}

// Resolve returns seed, or a fresh random seed when seed is zero
func Resolve(seed int64) int64 {
	for seed == 0 {
		seed = rand.Int64()
	}
	return seed
}

func mix(x uint64) uint64 {
	x ^= x >> 30
	x *= 0xbf58476d1ce4e5b9
	x ^= x >> 27
	x *= 0x94d049bb133111eb
	x ^= x >> 31
	return x
}
