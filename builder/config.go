// SPDX-License-Identifier: MIT
// Package: coreset/builder
//
// config.go — internal configuration and deterministic defaults.
//
// builderConfig is the single source of truth for all builder knobs; no
// globals. newBuilderConfig applies options in order (later overrides
// earlier) and returns the config by value, immutable to constructors.

package builder

import (
	"math/rand"
	"strconv"
)

// builderConfig aggregates the knobs used by constructors.
type builderConfig struct {
	// Vertex ID strategy: index -> ID (deterministic).
	idFn func(int) string
	// RNG for stochastic choices; nil means no randomness.
	rng *rand.Rand
	// Weight generator for edges; consulted only for weighted graphs.
	weightFn func(*rand.Rand) float64
}

// defaultConstWeight is the edge weight used when no WithWeightFn override
// is given and the graph is weighted. Unit weights make path lengths equal
// hop counts, which keeps fixture costs easy to reason about.
const defaultConstWeight = 1.0

// newBuilderConfig constructs a config with deterministic defaults and
// applies all options in order.
// Complexity: O(len(opts)) time, O(1) space.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn:     decimalID,
		rng:      nil,
		weightFn: func(*rand.Rand) float64 { return defaultConstWeight },
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// decimalID renders an index as a base-10 string ("0","1","2",...).
func decimalID(i int) string {
	return strconv.Itoa(i)
}
