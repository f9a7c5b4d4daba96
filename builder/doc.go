// SPDX-License-Identifier: MIT
// Package: coreset/builder
//
// Package builder provides deterministic graph constructors for tests,
// benchmarks and examples.
//
// One orchestrator, BuildGraph(gopts, bopts, cons...), creates a core.Graph,
// resolves the builder configuration from functional options, and applies
// the given constructors in order. Same inputs, options, seed and
// constructor order always produce an identical graph.
//
// Topologies:
//
//   - Path(n)           — simple path P_n with unit hop weights by default.
//   - Cycle(n)          — simple cycle C_n.
//   - Star(n)           — hub "Center" plus n-1 leaves.
//   - Grid(rows, cols)  — 4-neighborhood grid with "r,c" coordinate IDs.
//   - Complete(n)       — complete simple graph K_n.
//   - RandomSparse(n,p) — Erdős–Rényi-like sparse graph; requires a seed.
//
// Weight policy: when the graph is weighted, each edge weight comes from
// cfg.weightFn (constant 1 by default, overridable via WithWeightFn), so
// topologies double as known-cost fixtures for the samplers.
package builder
