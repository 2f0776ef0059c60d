// Package kselect - deterministic RNG derivation for reference resampling.
//
// Goals:
//   - Determinism: same seed ⇒ identical tables across platforms and
//     regardless of worker scheduling.
//   - Independence: each k derives its own stream, so parallel per-k work
//     never shares (or races on) a *rand.Rand, which is not goroutine-safe.
package kselect

import "math/rand"

// defaultRNGSeed is the fixed "zero" seed used when callers pass Seed==0.
// Arbitrary but stable, to keep defaults reproducible.
const defaultRNGSeed int64 = 1

// rngForK returns the deterministic stream for candidate k, derived from
// the base seed with a SplitMix64-style avalanche so per-k streams are
// decorrelated even for adjacent k.
// Complexity: O(1).
func rngForK(seed int64, k int) *rand.Rand {
	s := seed
	if s == 0 {
		s = defaultRNGSeed
	}

	return rand.New(rand.NewSource(deriveSeed(s, uint64(k))))
}

// deriveSeed mixes a parent seed and a stream id into a new 64-bit seed
// using the canonical SplitMix64 finalizer constants (strong bit
// diffusion: nearby inputs yield well-spread outputs).
// Complexity: O(1).
func deriveSeed(parent int64, stream uint64) int64 {
	x := uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31

	return int64(x)
}
