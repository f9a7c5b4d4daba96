// Package coreset - RNG utilities shared by the sampler suite.
//
// This file centralizes deterministic random generation for all samplers.
//
// Goals:
//   - Determinism: same seed ⇒ identical results across platforms.
//   - Encapsulation: a single RNG factory; no time-based sources hidden anywhere.
//   - Composability: one mutable stream threaded explicitly through nested
//     calls, so best-of-N trial sequences are reproducible and trial i
//     consumes the same draws whether or not it wins.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. Do not share a *rand.Rand across
//     goroutines. Running trials in parallel requires abandoning the shared
//     stream and seeding each trial independently — a semantic change, not a
//     free optimization.
package coreset

import "math/rand"

// defaultRNGSeed is the fixed “zero” seed used when callers pass seed==0.
// The value is arbitrary but stable to keep reproducible defaults.
const defaultRNGSeed int64 = 1

// rngFromSeed returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ use defaultRNGSeed; otherwise use the provided seed verbatim.
//
// Complexity: O(1).
func rngFromSeed(seed int64) *rand.Rand {
	s := seed
	if s == 0 {
		s = defaultRNGSeed
	}
	return rand.New(rand.NewSource(s))
}

// deriveSeed mixes a parent seed and a stream identifier into a new 64-bit
// seed with a SplitMix64-style avalanche mix, so substreams derived from a
// base RNG stay uncorrelated.
//
// Complexity: O(1).
func deriveSeed(parent int64, stream uint64) int64 {
	// SplitMix64 finalizer; see Vigna 2014 for the constants.
	x := uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31
	return int64(x)
}

// deriveRNG creates an independent deterministic RNG stream from a base RNG
// and a stream identifier. base.Int63() is consumed once so repeated stream
// ids still yield distinct children.
//
// Complexity: O(1).
func deriveRNG(base *rand.Rand, stream uint64) *rand.Rand {
	parent := defaultRNGSeed
	if base != nil {
		parent = base.Int63()
	}
	return rand.New(rand.NewSource(deriveSeed(parent, stream)))
}

// randomSubset draws n distinct elements from pool using rng.
// The contract is strict-subset: n must be positive and smaller than the
// pool, otherwise ErrSampleTooLarge. Draw-and-reject keeps the result a
// set while consuming the stream exactly as drawn (no reordering).
//
// Complexity: expected O(n) draws while n remains well below len(pool).
func randomSubset(pool []string, n int, rng *rand.Rand) ([]string, error) {
	if n < 1 || n >= len(pool) {
		return nil, ErrSampleTooLarge
	}
	out := make([]string, 0, n)
	seen := make(map[string]struct{}, n)
	for len(out) < n {
		item := pool[rng.Intn(len(pool))]
		if _, dup := seen[item]; dup {
			continue
		}
		seen[item] = struct{}{}
		out = append(out, item)
	}
	return out, nil
}
