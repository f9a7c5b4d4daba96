// Package dijkstra_test contains unit tests for the Dijkstra implementation.
// These tests validate correct behavior under various configurations, including
// basic functionality, directed graphs, MaxDistance, InfEdgeThreshold, and edge
// cases such as single-vertex graphs and zero-weight edges.
package dijkstra_test

import (
	"errors"
	"math"
	"testing"

	"github.com/katalvlaran/coreset/core"
	"github.com/katalvlaran/coreset/dijkstra"
)

// ------------------------------------------------------------------------
// 1. Validation Tests: Ensure errors are returned for invalid inputs.
// ------------------------------------------------------------------------

func TestDijkstra_EmptySource(t *testing.T) {
	// When no Source is provided (empty by default), Dijkstra should return ErrEmptySource.
	g := core.NewGraph(core.WithWeighted())
	_, _, err := dijkstra.Dijkstra(g)
	if !errors.Is(err, dijkstra.ErrEmptySource) {
		t.Fatalf("Expected ErrEmptySource, got %v", err)
	}
}

func TestDijkstra_NilGraphWithSource(t *testing.T) {
	// If graph is nil but Source is provided, Dijkstra should return ErrNilGraph.
	_, _, err := dijkstra.Dijkstra(nil, dijkstra.Source("X"))
	if !errors.Is(err, dijkstra.ErrNilGraph) {
		t.Fatalf("Expected ErrNilGraph when graph is nil, got %v", err)
	}
}

func TestDijkstra_UnweightedGraph(t *testing.T) {
	// If the graph is not weighted, Dijkstra must return ErrUnweightedGraph.
	g := core.NewGraph() // unweighted by default
	_, _, err := dijkstra.Dijkstra(g, dijkstra.Source("A"))
	if !errors.Is(err, dijkstra.ErrUnweightedGraph) {
		t.Fatalf("Expected ErrUnweightedGraph, got %v", err)
	}
}

func TestDijkstra_SourceNotFound(t *testing.T) {
	// If the graph is weighted but does not contain the Source vertex, return ErrVertexNotFound.
	g := core.NewGraph(core.WithWeighted())
	_, _, err := dijkstra.Dijkstra(g, dijkstra.Source("X"))
	if !errors.Is(err, dijkstra.ErrVertexNotFound) {
		t.Fatalf("Expected ErrVertexNotFound, got %v", err)
	}
}

func TestDijkstra_NegativeWeightDetectedEarly(t *testing.T) {
	// Build a weighted graph with a negative weight edge.
	g := core.NewGraph(core.WithWeighted())
	g.AddEdge("A", "B", -5)
	_, _, err := dijkstra.Dijkstra(g, dijkstra.Source("A"))
	if !errors.Is(err, dijkstra.ErrNegativeWeight) {
		t.Fatalf("Expected ErrNegativeWeight, got %v", err)
	}
}

// ------------------------------------------------------------------------
// 2. Basic Functionality: Small graphs, path correctness without and with ReturnPath.
// ------------------------------------------------------------------------

func TestDijkstra_SimpleTriangle_NoPath(t *testing.T) {
	// Graph: A—B(1), B—C(2), A—C(5), all undirected by default.
	g := core.NewGraph(core.WithWeighted())
	g.AddEdge("A", "B", 1)
	g.AddEdge("B", "C", 2)
	g.AddEdge("A", "C", 5)

	// Compute distances without requesting the predecessor map.
	dist, prev, err := dijkstra.Dijkstra(g, dijkstra.Source("A"))
	if err != nil {
		t.Fatal(err)
	}

	// Distance from A to C should be 3 via A→B→C.
	if got, want := dist["C"], 3.0; got != want {
		t.Errorf("dist[C] = %g; want %g", got, want)
	}
	// prev should be nil when ReturnPath=false.
	if prev != nil {
		t.Errorf("expected nil predecessor map, got %v", prev)
	}
}

func TestDijkstra_SimpleTriangle_WithPath(t *testing.T) {
	// Same triangle graph, but request path reconstruction.
	g := core.NewGraph(core.WithWeighted())
	g.AddEdge("A", "B", 1)
	g.AddEdge("B", "C", 2)
	g.AddEdge("A", "C", 5)

	dist, prev, err := dijkstra.Dijkstra(g, dijkstra.Source("A"), dijkstra.WithReturnPath())
	if err != nil {
		t.Fatal(err)
	}

	// Check distance values.
	if dist["A"] != 0 || dist["B"] != 1 || dist["C"] != 3 {
		t.Errorf("Unexpected distances: %v", dist)
	}

	// Check predecessor chain: B←A, C←B.
	if prev["B"] != "A" {
		t.Errorf("prev[B] = %q; want %q", prev["B"], "A")
	}
	if prev["C"] != "B" {
		t.Errorf("prev[C] = %q; want %q", prev["C"], "B")
	}
}

func TestDijkstra_UndirectedTraversalBothWays(t *testing.T) {
	// Undirected edges must be walkable against their insertion direction:
	// insert C—B and B—A "backwards", then route from A.
	g := core.NewGraph(core.WithWeighted())
	g.AddEdge("C", "B", 2)
	g.AddEdge("B", "A", 1)

	dist, _, err := dijkstra.Dijkstra(g, dijkstra.Source("A"))
	if err != nil {
		t.Fatal(err)
	}
	if dist["B"] != 1 || dist["C"] != 3 {
		t.Errorf("Unexpected distances on reversed insertion: %v", dist)
	}
}

func TestDijkstra_FractionalWeights(t *testing.T) {
	// Real-valued weights: A—B(0.5), B—C(0.25), A—C(1.0).
	g := core.NewGraph(core.WithWeighted())
	g.AddEdge("A", "B", 0.5)
	g.AddEdge("B", "C", 0.25)
	g.AddEdge("A", "C", 1.0)

	dist, _, err := dijkstra.Dijkstra(g, dijkstra.Source("A"))
	if err != nil {
		t.Fatal(err)
	}
	if got, want := dist["C"], 0.75; math.Abs(got-want) > 1e-12 {
		t.Errorf("dist[C] = %g; want %g", got, want)
	}
}

// ------------------------------------------------------------------------
// 3. Directed Graph Tests: Ensure correct handling of one-way edges.
// ------------------------------------------------------------------------

func TestDijkstra_MediumDirectedGraph(t *testing.T) {
	// Directed graph:
	// A→B(2), A→C(1), C→B(1), B→D(3), C→D(5)
	g := core.NewGraph(core.WithDirected(true), core.WithWeighted())
	g.AddEdge("A", "B", 2)
	g.AddEdge("A", "C", 1)
	g.AddEdge("C", "B", 1)
	g.AddEdge("B", "D", 3)
	g.AddEdge("C", "D", 5)

	dist, prev, err := dijkstra.Dijkstra(g, dijkstra.Source("A"))
	if err != nil {
		t.Fatal(err)
	}

	// Expected: dist[B]=2 (via A→C→B), dist[C]=1, dist[D]=5 (via A→C→B→D).
	if dist["C"] != 1 {
		t.Errorf("dist[C] = %g; want 1", dist["C"])
	}
	if dist["B"] != 2 {
		t.Errorf("dist[B] = %g; want 2", dist["B"])
	}
	if dist["D"] != 5 {
		t.Errorf("dist[D] = %g; want 5", dist["D"])
	}
	if prev != nil {
		t.Errorf("expected nil prev, got %v", prev)
	}
}

func TestDijkstra_DirectedUnreachable(t *testing.T) {
	// A→B, but C only points at A: C is unreachable from A.
	g := core.NewGraph(core.WithDirected(true), core.WithWeighted())
	g.AddEdge("A", "B", 1)
	g.AddEdge("C", "A", 1)

	dist, _, err := dijkstra.Dijkstra(g, dijkstra.Source("A"))
	if err != nil {
		t.Fatal(err)
	}
	if !math.IsInf(dist["C"], 1) {
		t.Errorf("dist[C] = %g; want +Inf (unreachable)", dist["C"])
	}
}

// ------------------------------------------------------------------------
// 4. MaxDistance Tests: Ensure that vertices beyond the cap are not explored.
// ------------------------------------------------------------------------

func TestDijkstra_MaxDistanceLimits(t *testing.T) {
	// Linear graph: A—B(1)—C(1)—D(1)
	g := core.NewGraph(core.WithWeighted())
	g.AddEdge("A", "B", 1)
	g.AddEdge("B", "C", 1)
	g.AddEdge("C", "D", 1)

	// Set MaxDistance = 1: only A and B are within threshold.
	dist, _, err := dijkstra.Dijkstra(
		g,
		dijkstra.Source("A"),
		dijkstra.WithMaxDistance(1),
	)
	if err != nil {
		t.Fatal(err)
	}

	// dist[A]=0, dist[B]=1, dist[C] and dist[D] remain +Inf (unvisited).
	if dist["A"] != 0 {
		t.Errorf("dist[A] = %g; want 0", dist["A"])
	}
	if dist["B"] != 1 {
		t.Errorf("dist[B] = %g; want 1", dist["B"])
	}
	if !math.IsInf(dist["C"], 1) {
		t.Errorf("dist[C] = %g; want +Inf (unreachable)", dist["C"])
	}
	if !math.IsInf(dist["D"], 1) {
		t.Errorf("dist[D] = %g; want +Inf (unreachable)", dist["D"])
	}
}

// ------------------------------------------------------------------------
// 5. InfEdgeThreshold Tests: Ensure “impassable” edges are skipped.
// ------------------------------------------------------------------------

func TestDijkstra_InfThresholdStopsHeavyEdge(t *testing.T) {
	// Graph: A—B(2), B—C(4), A—C(10)
	g := core.NewGraph(core.WithWeighted())
	g.AddEdge("A", "B", 2)
	g.AddEdge("B", "C", 4)
	g.AddEdge("A", "C", 10)

	// Set InfEdgeThreshold = 5: edges with weight ≥5 are skipped, so A—C(10) is ignored.
	dist, _, err := dijkstra.Dijkstra(
		g,
		dijkstra.Source("A"),
		dijkstra.WithInfEdgeThreshold(5),
	)
	if err != nil {
		t.Fatal(err)
	}

	// Now the shortest path from A to C is A→B→C with total cost 6.
	if dist["C"] != 6 {
		t.Errorf("dist[C] = %g; want 6", dist["C"])
	}
}

// ------------------------------------------------------------------------
// 6. Edge Cases: Single vertex, empty graph, zero-weight wiring.
// ------------------------------------------------------------------------

func TestDijkstra_SingleVertex_ReturnsZero(t *testing.T) {
	// Graph with a single vertex "Solo" and no edges.
	g := core.NewGraph(core.WithWeighted())
	g.AddVertex("Solo")

	dist, prev, err := dijkstra.Dijkstra(g, dijkstra.Source("Solo"), dijkstra.WithReturnPath())
	if err != nil {
		t.Fatal(err)
	}

	if d := dist["Solo"]; d != 0 {
		t.Errorf("dist[Solo] = %g; want 0", d)
	}
	if p := prev["Solo"]; p != "" {
		t.Errorf("prev[Solo] = %q; want empty string", p)
	}
}

func TestDijkstra_EmptyGraph_ReturnsVertexNotFound(t *testing.T) {
	g := core.NewGraph(core.WithWeighted())
	_, _, err := dijkstra.Dijkstra(g, dijkstra.Source("Any"))
	if !errors.Is(err, dijkstra.ErrVertexNotFound) {
		t.Errorf("Expected ErrVertexNotFound for empty graph, got %v", err)
	}
}

func TestDijkstra_ZeroWeightHub(t *testing.T) {
	// The multi-source trick: hub wired to A and C with zero weight, A—B(3), C—B(1).
	// Distances from hub are the minimum over both sources.
	g := core.NewGraph(core.WithWeighted())
	g.AddEdge("A", "B", 3)
	g.AddEdge("C", "B", 1)
	g.AddEdge("hub", "A", 0)
	g.AddEdge("hub", "C", 0)

	dist, prev, err := dijkstra.Dijkstra(g, dijkstra.Source("hub"), dijkstra.WithReturnPath())
	if err != nil {
		t.Fatal(err)
	}
	if dist["A"] != 0 || dist["C"] != 0 {
		t.Errorf("zero-weight wiring broken: dist[A]=%g dist[C]=%g", dist["A"], dist["C"])
	}
	if dist["B"] != 1 {
		t.Errorf("dist[B] = %g; want 1 (via C)", dist["B"])
	}
	if prev["B"] != "C" {
		t.Errorf("prev[B] = %q; want C", prev["B"])
	}
}
