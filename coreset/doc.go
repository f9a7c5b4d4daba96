// Package coreset implements bicriteria facility sampling for the metric
// k-median problem on weighted graphs, after Thorup's shortest-path
// sampling schemes ("Quick k-Median, k-Center, and Facility Location for
// Sparse Graphs", SICOMP 2005).
//
// Three samplers are provided, all built on the same primitive: a temporary
// synthetic vertex wired by zero-weight edges to the current facility set,
// so one single-source Dijkstra pass yields dist(v, F) for every vertex v.
//
//   - SampleRounds — one run of the fine-grained sampler: draws with
//     replacement, per-round wiring reset, random-pivot pool eviction.
//   - Sample — repeats SampleRounds with size-derived parameters and merges
//     the results into one deduplicated facility set.
//   - SampleWithCost — the without-replacement variant with cumulative
//     wiring; also reports the connection cost of the sampled set.
//   - SampleBest — best of numTrials SampleWithCost runs over one shared
//     random stream, finished with full per-vertex assignments.
//
// Assign maps every vertex to its nearest facility (distance plus facility
// index) by recovering owners from the shortest-path predecessor chains.
//
// All entry points are deterministic for a fixed (graph, parameters, seed)
// triple: vertex pools come from the sorted enumeration and cost sums use a
// fixed accumulation order. Seed 0 selects a default seed, so the zero value
// is still reproducible.
//
// Graphs must be weighted, undirected and connected; unreachable vertices
// surface as ErrDisconnected rather than silently inflating costs.
package coreset
