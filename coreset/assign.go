package coreset

import (
	"fmt"
	"math"

	"github.com/katalvlaran/coreset/core"
	"github.com/katalvlaran/coreset/dijkstra"
)

// Assign computes, for every vertex of g, its distance to the nearest
// facility and the index of that facility within the facilities slice.
//
// All facilities are wired to one synthetic source with zero-weight edges
// and a single Dijkstra pass with predecessor tracking covers the whole
// graph. The owning facility of a vertex is recovered by walking the
// predecessor chain until the hop adjacent to the synthetic source: that
// vertex is the facility the shortest path entered the graph through, so
// ties are resolved exactly as the shortest-path tree resolved them.
//
// If the same vertex appears more than once in facilities, the last index
// wins for every vertex assigned to it.
//
// Returns costs (vertex ID → distance to nearest facility) and assignments
// (vertex ID → facility index). Every vertex must reach a facility;
// otherwise ErrDisconnected. A predecessor chain that cannot be resolved
// yields ErrAssignmentFailed.
func Assign(g *core.Graph, facilities []string) (map[string]float64, map[string]int, error) {
	if g == nil {
		return nil, nil, ErrNilGraph
	}
	if g.VertexCount() == 0 {
		return nil, nil, ErrEmptyGraph
	}
	if len(facilities) == 0 {
		return nil, nil, fmt.Errorf("%w: no facilities", ErrBadParams)
	}

	sv, err := newSyntheticVertex(g)
	if err != nil {
		return nil, nil, err
	}
	defer sv.Release()

	// Connect validates that every facility exists in g.
	if err = sv.Connect(facilities...); err != nil {
		return nil, nil, err
	}

	dist, prev, err := dijkstra.Dijkstra(g,
		dijkstra.Source(sv.ID()),
		dijkstra.WithReturnPath(),
	)
	if err != nil {
		return nil, nil, fmt.Errorf("coreset: assignment shortest paths: %w", err)
	}

	// Later duplicates overwrite earlier ones.
	facIndex := make(map[string]int, len(facilities))
	for i, id := range facilities {
		facIndex[id] = i
	}

	n := g.VertexCount()
	costs := make(map[string]float64, n-1)
	assignments := make(map[string]int, n-1)

	for _, v := range g.Vertices() {
		if v == sv.ID() {
			continue
		}
		d := dist[v]
		if math.IsInf(d, 1) {
			return nil, nil, fmt.Errorf("%w: vertex %q cannot reach any facility", ErrDisconnected, v)
		}
		if d < 0 || math.IsNaN(d) {
			return nil, nil, fmt.Errorf("%w: distance %g at vertex %q", ErrNumericInvariant, d, v)
		}

		// Climb predecessors until the parent is the synthetic source; the
		// current vertex at that point is the owning facility. The walk is
		// bounded by n hops, anything longer means a broken chain.
		cur := v
		owner := ""
		for hops := 0; hops <= n; hops++ {
			parent, ok := prev[cur]
			if !ok || parent == "" {
				break
			}
			if parent == sv.ID() {
				owner = cur
				break
			}
			cur = parent
		}
		if owner == "" {
			return nil, nil, fmt.Errorf("%w: predecessor chain of %q never reaches a facility", ErrAssignmentFailed, v)
		}
		idx, ok := facIndex[owner]
		if !ok {
			return nil, nil, fmt.Errorf("%w: chain of %q ends at non-facility %q", ErrAssignmentFailed, v, owner)
		}

		costs[v] = d
		assignments[v] = idx
	}

	return costs, assignments, nil
}
