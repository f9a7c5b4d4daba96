// Package coreset builds small representative vertex subsets ("coresets")
// of large edge-weighted graphs, so that assigning every vertex to its
// nearest chosen representative approximates the optimal k-median cost —
// without ever solving k-median exactly.
//
// 🚀 What is coreset?
//
//	A deterministic, explicitly-seeded implementation of Thorup-style
//	metric sampling over weighted graphs:
//		• Core primitives: a mutable weighted graph with thread-safe mutation
//		• Shortest paths: Dijkstra with distance + predecessor vectors
//		• Sampling: fine-grained round sampling (Algorithm D) and
//		  coarse-grained cumulative-forest sampling with cost readout
//		• Assignment: per-vertex facility resolution via predecessor chains
//		• Selection: best-of-N trials over one shared random stream
//
// ✨ Why choose coreset?
//
//   - Reproducible – every random draw flows from an explicit seed
//   - Rock-solid guarantees – scoped graph mutation is always undone,
//     costs are numerically validated before they are reported
//   - Practical – built for road networks and other graphs where exact
//     k-median solving is out of reach
//
// Under the hood, everything is organized into small packages:
//
//	core/       — fundamental Graph, Vertex, Edge types & thread-safe primitives
//	dijkstra/   — single-source shortest paths (float64 weights)
//	coreset/    — the sampler suite: rounds, forests, assignment, trials
//	builder/    — canonical test topologies (path, star, cycle, grid)
//	diskmat/    — file-backed dense matrices for out-of-core post-processing
//	dimacs/     — DIMACS shortest-path file ingestion and dumps
//	cmd/coreset — command-line front end for DIMACS road networks
//
// Quick ASCII example:
//
//	0──1──2──3──4     sampling {2} on this unit path costs 2+1+1+2 = 6
//
// Dive into each package's doc.go for contracts, complexity and examples.
//
//	go get github.com/katalvlaran/coreset
package coreset
