package coreset

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/katalvlaran/coreset/core"
	"github.com/katalvlaran/coreset/dijkstra"
)

// SampleWithCost draws a facility set the way SampleRounds does, with two
// deliberate differences, and additionally reports the connection cost of
// the result:
//
//   - Draws are WITHOUT replacement: each sampled vertex is removed from the
//     pool immediately (swap-with-last removal), so the facility set holds
//     distinct vertices.
//   - The synthetic wiring is cumulative: edges added for earlier facilities
//     stay in place across rounds, so each Dijkstra pass only extends the
//     previous frontier.
//
// Once the pool is smaller than perRound the whole remainder is absorbed,
// which guarantees termination with full coverage when maxRounds permits.
// The reported cost is the sum of dist(v, F) over all vertices under the
// final facility set, computed from the last Dijkstra pass.
//
// The graph must be connected (ErrDisconnected otherwise).
func SampleWithCost(g *core.Graph, perRound, maxRounds int, seed int64) ([]string, float64, error) {
	if g == nil {
		return nil, 0, ErrNilGraph
	}
	if perRound < 1 || maxRounds < 1 {
		return nil, 0, fmt.Errorf("%w: perRound=%d, maxRounds=%d", ErrBadParams, perRound, maxRounds)
	}
	if g.VertexCount() == 0 {
		return nil, 0, ErrEmptyGraph
	}
	return sampleForest(g, perRound, maxRounds, rngFromSeed(seed))
}

// sampleForest is the rng-threaded body of SampleWithCost; BestOfTrials
// advances one random stream through repeated calls.
func sampleForest(g *core.Graph, perRound, maxRounds int, rng *rand.Rand) ([]string, float64, error) {
	pool := g.Vertices()
	f := make([]string, 0, minInt(len(pool), perRound*maxRounds))

	sv, err := newSyntheticVertex(g)
	if err != nil {
		return nil, 0, err
	}
	defer sv.Release()

	var dist map[string]float64
	for iter := 0; iter < maxRounds && len(pool) > 0; iter++ {
		// 1) Move samples from the pool into F. Capture the value before the
		//    swap removal so the last pool element cannot alias the draw.
		if len(pool) > perRound {
			for j := 0; j < perRound; j++ {
				idx := rng.Intn(len(pool))
				v := pool[idx]
				f = append(f, v)
				if err = sv.Connect(v); err != nil {
					return nil, 0, err
				}
				pool[idx] = pool[len(pool)-1]
				pool = pool[:len(pool)-1]
			}
		} else {
			for _, v := range pool {
				f = append(f, v)
				if err = sv.Connect(v); err != nil {
					return nil, 0, err
				}
			}
			pool = pool[:0]
		}

		// 2) Wiring persists across rounds; one pass covers all of F so far.
		var derr error
		dist, _, derr = dijkstra.Dijkstra(g, dijkstra.Source(sv.ID()))
		if derr != nil {
			return nil, 0, fmt.Errorf("coreset: forest round %d shortest paths: %w", iter, derr)
		}
		if len(pool) == 0 {
			break
		}

		// 3) Random-pivot eviction, as in SampleRounds.
		pivot := pool[rng.Intn(len(pool))]
		minv := dist[pivot]
		if math.IsInf(minv, 1) {
			return nil, 0, fmt.Errorf("%w: pivot %q unreachable from sample", ErrDisconnected, pivot)
		}
		if minv < 0 || math.IsNaN(minv) {
			return nil, 0, fmt.Errorf("%w: pivot %q distance %g", ErrNumericInvariant, pivot, minv)
		}
		kept := pool[:0]
		for _, v := range pool {
			if dist[v] > minv {
				kept = append(kept, v)
			}
		}
		pool = kept
	}

	cost, err := sumCosts(dist, sv.ID())
	if err != nil {
		return nil, 0, err
	}
	return f, cost, nil
}
