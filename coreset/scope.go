package coreset

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/katalvlaran/coreset/core"
)

// syntheticVertex is a temporary vertex wired to a set of sample vertices by
// zero-weight edges, so a single-source shortest-path run from it behaves as
// a multi-source run from the whole set.
//
// Lifecycle:
//
//	sv, err := newSyntheticVertex(g)
//	defer sv.Release()
//	sv.Connect(samples...)   // repeatable; duplicates collapse
//	dist, _, err := dijkstra.Dijkstra(g, dijkstra.Source(sv.ID()))
//	sv.ClearEdges()          // reuse the same vertex for the next round
//
// Release removes the vertex and all its synthetic edges from the graph;
// calling it more than once is a no-op.
type syntheticVertex struct {
	g        *core.Graph
	id       string
	wired    map[string]struct{}
	released bool
}

// newSyntheticVertex inserts a fresh vertex into g. The ID is random and
// re-drawn until it collides with nothing already present, so caller vertex
// namespaces are never constrained.
func newSyntheticVertex(g *core.Graph) (*syntheticVertex, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	// Collisions are practically impossible; the loop is cheap either way.
	id := "sv-" + uuid.NewString()
	for g.HasVertex(id) {
		id = "sv-" + uuid.NewString()
	}
	if err := g.AddVertex(id); err != nil {
		return nil, fmt.Errorf("coreset: add synthetic vertex: %w", err)
	}
	return &syntheticVertex{g: g, id: id, wired: make(map[string]struct{})}, nil
}

// ID returns the synthetic vertex identifier, for use as a Dijkstra source
// and as the skip key when summing distance vectors.
func (sv *syntheticVertex) ID() string { return sv.id }

// Connect wires sv to each target with a zero-weight edge. Targets already
// wired since the last ClearEdges are skipped, so a multiset of samples
// (draws with replacement) needs no pre-deduplication and the graph never
// sees parallel synthetic edges.
func (sv *syntheticVertex) Connect(targets ...string) error {
	if sv.released {
		return fmt.Errorf("coreset: connect on released synthetic vertex %q", sv.id)
	}
	for _, t := range targets {
		if _, ok := sv.wired[t]; ok {
			continue
		}
		if !sv.g.HasVertex(t) {
			return fmt.Errorf("coreset: connect synthetic vertex: %w: %q", core.ErrVertexNotFound, t)
		}
		if _, err := sv.g.AddEdge(sv.id, t, 0); err != nil {
			return fmt.Errorf("coreset: connect synthetic vertex to %q: %w", t, err)
		}
		sv.wired[t] = struct{}{}
	}
	return nil
}

// ClearEdges removes every synthetic edge while keeping the vertex itself,
// resetting the wiring set so the next round starts clean.
func (sv *syntheticVertex) ClearEdges() error {
	if sv.released {
		return nil
	}
	if err := sv.g.ClearVertexEdges(sv.id); err != nil {
		return fmt.Errorf("coreset: clear synthetic edges: %w", err)
	}
	sv.wired = make(map[string]struct{})
	return nil
}

// Release removes the synthetic vertex (and, with it, any remaining
// synthetic edges) from the graph. Safe to call multiple times and from a
// defer on every exit path.
func (sv *syntheticVertex) Release() error {
	if sv.released {
		return nil
	}
	sv.released = true
	sv.wired = nil
	if err := sv.g.RemoveVertex(sv.id); err != nil {
		return fmt.Errorf("coreset: release synthetic vertex: %w", err)
	}
	return nil
}
