package coreset

import (
	"fmt"
	"math"

	"github.com/katalvlaran/coreset/core"
)

// bestOfTrialsEps fixes the sampling slack for SampleBest. A loose constant
// keeps per-trial facility sets small; running several trials and keeping
// the cheapest one compensates for the variance.
const bestOfTrialsEps = 0.5

// SampleBest runs the without-replacement sampler numTrials times and keeps
// the facility set with the lowest connection cost, then computes the full
// per-vertex cost and assignment maps for that winner.
//
// Per-trial parameters are derived from the graph size:
//
//	logn     = max(1, log2(n))
//	perRound = ⌈21 · k · logn / 0.5⌉
//	rounds   = ⌈3 · logn⌉
//
// All trials advance one random stream seeded by seed, so the full run is
// reproducible and trials are not independent restarts of the same draw.
// A later trial replaces the incumbent only on strictly lower cost, so with
// equal costs the earliest trial wins.
func SampleBest(g *core.Graph, k int, seed int64, numTrials int) (*Result, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if k < 1 || numTrials < 1 {
		return nil, fmt.Errorf("%w: k=%d, numTrials=%d", ErrBadParams, k, numTrials)
	}
	n := g.VertexCount()
	if n == 0 {
		return nil, ErrEmptyGraph
	}

	logn := math.Log2(float64(n))
	if logn < 1 {
		logn = 1
	}
	perRound := int(math.Ceil(21.0 * float64(k) * logn / bestOfTrialsEps))
	maxRounds := int(math.Ceil(3.0 * logn))

	rng := rngFromSeed(seed)
	best, bestCost, err := sampleForest(g, perRound, maxRounds, rng)
	if err != nil {
		return nil, err
	}
	for i := 1; i < numTrials; i++ {
		next, nextCost, terr := sampleForest(g, perRound, maxRounds, rng)
		if terr != nil {
			return nil, terr
		}
		if nextCost < bestCost {
			best, bestCost = next, nextCost
		}
	}

	costs, assignments, err := Assign(g, best)
	if err != nil {
		return nil, err
	}
	total, err := sumCosts(costs, "")
	if err != nil {
		return nil, err
	}

	return &Result{
		Facilities:  best,
		Costs:       costs,
		Assignments: assignments,
		TotalCost:   total,
	}, nil
}
