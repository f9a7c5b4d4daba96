// Package dijkstra provides a precise, high-performance implementation of
// Dijkstra's shortest-path algorithm on weighted graphs with non-negative
// real (float64) edge weights.
//
// Overview:
//
//   - Dijkstra computes the minimum-cost path from a single source vertex to
//     all reachable vertices in O((V + E) log V) time.
//   - It relies on a min-heap (priority queue) to always expand the
//     next-closest vertex.
//   - Supports optional path reconstruction, distance caps, and “impassable”
//     edge thresholds.
//
// When to use:
//
//   - In any scenario where you need guaranteed shortest paths on a static
//     weighted graph.
//   - As the distance oracle behind facility-location style sampling: wire a
//     temporary vertex to a source set with zero-weight edges and a single
//     run yields multi-source distances plus the shortest-path forest
//     (the predecessor map) needed to attribute each vertex to its source.
//
// Key features:
//
//   - Functional options allow fine-tuning behavior without changing the API signature.
//   - ReturnPath: if enabled, returns a “predecessor” map, so you can rebuild each path.
//   - MaxDistance: aborts exploration beyond a specified distance, saving work in large graphs.
//   - InfEdgeThreshold: treats any edge with weight ≥ threshold as impassable (infinite cost).
//
// Performance and complexity:
//
//   - Time:  O((V + E) log V)
//   - Each vertex is extracted at most once from the priority queue.
//   - Each edge relaxation may push one new entry (lazy decrease-key).
//   - Space: O(V + E)
//
// Error handling (sentinel errors):
//
//   - ErrEmptySource:     the Source option was empty.
//   - ErrNilGraph:        a nil *core.Graph was passed.
//   - ErrUnweightedGraph: the graph lacks core.WithWeighted().
//   - ErrVertexNotFound:  the source vertex does not exist.
//   - ErrNegativeWeight:  a negative edge weight was detected (O(E) pre-scan).
//   - ErrBadMaxDistance:  (panic) MaxDistance set negative.
//   - ErrBadInfThreshold: (panic) InfEdgeThreshold set non-positive.
//
// API reference:
//
//	func Dijkstra(
//	    g *core.Graph,
//	    opts ...Option,
//	) (dist map[string]float64, prev map[string]string, err error)
//
// Unreachable vertices carry dist == math.Inf(1) and prev == "".
package dijkstra
