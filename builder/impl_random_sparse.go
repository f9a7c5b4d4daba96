// SPDX-License-Identifier: MIT
// Package: coreset/builder
//
// impl_random_sparse.go - implementation of RandomSparse(n, p) constructor.
//
// Erdős–Rényi-like generator: include each admissible edge independently
// with probability p. Undirected graphs iterate unordered pairs {i,j} with
// i<j; directed graphs iterate ordered pairs (i,j), i≠j.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices).
//   - 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   - cfg.rng must be non-nil for 0 < p < 1 (else ErrNeedRandSource).
//   - Adds vertices via cfg.idFn in ascending index order (0..n-1).
//   - Weight policy: if g.Weighted() then cfg.weightFn(cfg.rng) else 0.
//
// Determinism: the trial order is fixed (i asc, then j asc), so outcomes
// are identical for a fixed seed and option set.
//
// Complexity:
//   - Time: O(n) vertices + O(n²) Bernoulli trials.
//   - Space: O(1) extra.

package builder

import (
	"fmt"

	"github.com/katalvlaran/coreset/core"
)

const (
	methodRandomSparse      = "RandomSparse"
	minRandomSparseVertices = 1
	probMin                 = 0.0
	probMax                 = 1.0
)

// RandomSparse returns a Constructor that samples an Erdős–Rényi-like graph
// over n vertices with independent edge probability p.
func RandomSparse(n int, p float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minRandomSparseVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w",
				methodRandomSparse, n, minRandomSparseVertices, ErrTooFewVertices)
		}
		if p < probMin || p > probMax {
			return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				methodRandomSparse, p, probMin, probMax, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > probMin && p < probMax {
			return fmt.Errorf("%s: rng is required: %w", methodRandomSparse, ErrNeedRandSource)
		}

		for i := 0; i < n; i++ {
			id := cfg.idFn(i)
			if err := g.AddVertex(id); err != nil {
				return fmt.Errorf("%s: AddVertex(%s): %w", methodRandomSparse, id, err)
			}
		}

		useWeight := g.Weighted()
		directed := g.Directed()
		rng := cfg.rng

		include := func() bool {
			if p == probMax {
				return true
			}
			if p == probMin {
				return false
			}
			return rng.Float64() < p
		}

		for i := 0; i < n; i++ {
			jStart := i + 1
			if directed {
				jStart = 0
			}
			for j := jStart; j < n; j++ {
				if j == i {
					continue
				}
				if !include() {
					continue
				}
				uID, vID := cfg.idFn(i), cfg.idFn(j)
				var w float64
				if useWeight {
					w = cfg.weightFn(cfg.rng)
				}
				if _, err := g.AddEdge(uID, vID, w); err != nil {
					return fmt.Errorf("%s: AddEdge(%s→%s, w=%g): %w", methodRandomSparse, uID, vID, w, err)
				}
			}
		}

		return nil
	}
}
