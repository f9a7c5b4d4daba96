package coreset

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/katalvlaran/coreset/core"
	"github.com/katalvlaran/coreset/dijkstra"
)

// SampleRounds draws a facility multiset from g by repeated rounds of
// sampling with replacement and distance-based pruning:
//
//  1. Draw perRound vertices (with replacement) from the remaining pool and
//     append them to the growing facility list F.
//  2. Wire every member of F to a temporary synthetic vertex with zero-weight
//     edges and run one Dijkstra pass, giving dist(v, F) for every vertex.
//  3. Pick a uniformly random pool member t and evict from the pool every
//     vertex v with dist(v, F) ≤ dist(t, F).
//
// The synthetic wiring is torn down after each round and rebuilt from the
// full F on the next, so pool vertices never see stale connections. Rounds
// stop when the pool empties or maxRounds is reached; the returned slice may
// contain duplicates (draws are with replacement).
//
// The graph must be connected: an unreachable pivot yields ErrDisconnected.
//
// Complexity: O(maxRounds · (V + E) log V).
func SampleRounds(g *core.Graph, perRound, maxRounds int, seed int64) ([]string, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if perRound < 1 || maxRounds < 1 {
		return nil, fmt.Errorf("%w: perRound=%d, maxRounds=%d", ErrBadParams, perRound, maxRounds)
	}
	if g.VertexCount() == 0 {
		return nil, ErrEmptyGraph
	}
	return sampleRounds(g, perRound, maxRounds, rngFromSeed(seed))
}

// sampleRounds is the rng-threaded body of SampleRounds, shared with callers
// that advance one random stream across several invocations.
func sampleRounds(g *core.Graph, perRound, maxRounds int, rng *rand.Rand) ([]string, error) {
	// 1) Pool starts as the full (sorted, hence reproducible) vertex set.
	pool := g.Vertices()
	f := make([]string, 0, minInt(len(pool), perRound*maxRounds))

	// 2) One synthetic vertex serves every round.
	sv, err := newSyntheticVertex(g)
	if err != nil {
		return nil, err
	}
	defer sv.Release()

	for iter := 0; iter < maxRounds && len(pool) > 0; iter++ {
		// 3) Draw with replacement; the pool is untouched by the draw itself.
		for i := 0; i < perRound && len(pool) > 0; i++ {
			f = append(f, pool[rng.Intn(len(pool))])
		}

		// 4) Rebuild the zero-weight wiring for the whole facility list.
		if err = sv.Connect(f...); err != nil {
			return nil, err
		}
		dist, _, derr := dijkstra.Dijkstra(g, dijkstra.Source(sv.ID()))
		if derr != nil {
			return nil, fmt.Errorf("coreset: round %d shortest paths: %w", iter, derr)
		}
		if err = sv.ClearEdges(); err != nil {
			return nil, err
		}

		// 5) Random pivot sets the eviction threshold for this round.
		pivot := pool[rng.Intn(len(pool))]
		minv := dist[pivot]
		if math.IsInf(minv, 1) {
			return nil, fmt.Errorf("%w: pivot %q unreachable from sample", ErrDisconnected, pivot)
		}
		if minv < 0 || math.IsNaN(minv) {
			return nil, fmt.Errorf("%w: pivot %q distance %g", ErrNumericInvariant, pivot, minv)
		}

		// 6) Evict everything at least as close to F as the pivot, keeping
		//    the relative order of survivors.
		kept := pool[:0]
		for _, v := range pool {
			if dist[v] > minv {
				kept = append(kept, v)
			}
		}
		pool = kept
	}

	return f, nil
}

// Sample produces a deduplicated facility set by running SampleRounds
// repeatedly with parameters derived from the graph size:
//
//	logn     = log2(n)
//	eps      = 1 / √logn
//	perRound = ⌈21 · k · logn / eps⌉
//	rounds   = ⌈3 · logn⌉
//	repeats  = ⌈logn^1.5⌉
//
// Each repeat runs with a fresh sub-seed drawn from one generator seeded by
// seed, and its output is merged into the accumulated set. Results keep
// first-insertion order, so identical (graph, k, seed, maxSampled) inputs
// yield identical output. Accumulation stops early once maxSampled distinct
// facilities are collected; maxSampled ≤ 0 means no cap beyond n.
func Sample(g *core.Graph, k int, seed int64, maxSampled int) ([]string, error) {
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
	if n == 1 {
		return g.Vertices(), nil
	}
	if maxSampled <= 0 || maxSampled > n {
		maxSampled = n
	}

	// Parameter derivation. n ≥ 2 here, so logn ≥ 1 and eps is well formed.
	logn := math.Log2(float64(n))
	eps := 1.0 / math.Sqrt(logn)
	perRound := int(math.Ceil(21.0 * float64(k) * logn / eps))
	maxRounds := int(math.Ceil(3.0 * logn))
	repeats := int(math.Ceil(math.Pow(logn, 1.5)))

	mt := rngFromSeed(seed)
	seen := make(map[string]struct{}, maxSampled)
	ordered := make([]string, 0, maxSampled)

	for i := 0; i < repeats; i++ {
		buf, err := sampleRounds(g, perRound, maxRounds, deriveRNG(mt, uint64(i)))
		if err != nil {
			return nil, err
		}
		for _, v := range buf {
			if _, ok := seen[v]; ok {
				continue
			}
			seen[v] = struct{}{}
			ordered = append(ordered, v)
		}
		if len(ordered) >= maxSampled {
			break
		}
	}

	if len(ordered) > maxSampled {
		ordered = ordered[:maxSampled]
	}
	return ordered, nil
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
