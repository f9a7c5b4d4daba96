package coreset

import (
	"fmt"

	"github.com/katalvlaran/coreset/core"
	"github.com/katalvlaran/coreset/dijkstra"
)

// Goldman1Median is the exact 1-median on a shortest-path tree (Goldman,
// "Optimal Center Location in Simple Networks", 1971). It is the missing
// piece of the ReduceNonCentrality descent and is not implemented yet.
//
// TODO: implement the linear-time tree scan; the predecessor maps returned
// by Assign already encode the required shortest-path forest.
func Goldman1Median(g *core.Graph, tree map[string]string, root string) (string, error) {
	if g == nil {
		return "", ErrNilGraph
	}
	if root == "" || !g.HasVertex(root) {
		return "", fmt.Errorf("%w: root %q", ErrBadParams, root)
	}
	return "", fmt.Errorf("coreset: goldman 1-median: %w", ErrNotImplemented)
}

// ReduceNonCentrality is an iteratively-decreasing-non-centrality refinement
// (Todo, Nakamura and Kudo, MLG '19): start from k random distinct centers,
// then repeatedly replace each center with the 1-median of its shortest-path
// subtree until the total cost stops improving.
//
// Input validation and the initial candidate evaluation run; the descent
// itself depends on Goldman1Median and therefore returns ErrNotImplemented.
func ReduceNonCentrality(g *core.Graph, k int, seed int64) ([]string, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if k < 1 {
		return nil, fmt.Errorf("%w: k=%d", ErrBadParams, k)
	}
	n := g.VertexCount()
	if n == 0 {
		return nil, ErrEmptyGraph
	}

	// Initial candidate set: k distinct vertices.
	rng := rngFromSeed(seed)
	candidates, err := randomSubset(g.Vertices(), k, rng)
	if err != nil {
		return nil, err
	}

	// Evaluate the starting cost so parameter and connectivity problems
	// surface before the unimplemented descent.
	sv, err := newSyntheticVertex(g)
	if err != nil {
		return nil, err
	}
	defer sv.Release()
	if err = sv.Connect(candidates...); err != nil {
		return nil, err
	}
	dist, _, err := dijkstra.Dijkstra(g, dijkstra.Source(sv.ID()))
	if err != nil {
		return nil, fmt.Errorf("coreset: initial candidate cost: %w", err)
	}
	if _, err = sumCosts(dist, sv.ID()); err != nil {
		return nil, err
	}

	return nil, fmt.Errorf("coreset: non-centrality descent: %w", ErrNotImplemented)
}
