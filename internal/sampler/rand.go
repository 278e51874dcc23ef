package sampler

import "math/rand/v2"

const goldenRatio64 = 0x9e3779b97f4a7c15

// NewRand returns a *rand.Rand derived deterministically from seed, so two
// runs with the same seed, pool and grid produce identical sheet sets. It
// centralises how the two 64-bit PCG seeds are derived from a single int64.
func NewRand(seed int64) *rand.Rand {
	u := uint64(seed)
	return rand.New(rand.NewPCG(mix(u), mix(u+goldenRatio64)))
}

// mix is a splitmix64-style finaliser that spreads low-entropy seeds across
// the full 64-bit range.
func mix(x uint64) uint64 {
	x ^= x >> 30
	x *= 0xbf58476d1ce4e5b9
	x ^= x >> 27
	x *= 0x94d049bb133111eb
	x ^= x >> 31
	return x
}
