// Package coreset - cost-vector validation and reduction.
//
// Every distance vector produced by a shortest-path run is funneled through
// sumCosts before any cost is reported: entries must be finite and
// non-negative, and the accumulation order is fixed so repeated runs on the
// same inputs produce the same float64 total.
package coreset

import (
	"fmt"
	"math"
	"runtime"
	"sort"
	"sync"
)

// parallelSumThreshold is the vector size below which a sequential sum is
// cheaper than goroutine fan-out. Summation is a pure read with associative
// addition — the only operation in this package that may run in parallel.
const parallelSumThreshold = 1 << 14

// sumCosts validates dist and returns its sum, excluding skipID (the
// synthetic vertex; pass "" to sum everything).
//
// Numeric policy:
//   - +Inf  ⇒ ErrDisconnected (the connectivity precondition was violated)
//   - <0, NaN, -Inf ⇒ ErrNumericInvariant (malformed graph or logic defect)
//
// The entries are accumulated in sorted-key chunk order, so the result is
// reproducible for identical inputs regardless of map iteration order.
//
// Complexity: O(n log n) for the key sort, O(n) for the reduction.
func sumCosts(dist map[string]float64, skipID string) (float64, error) {
	// 1) Validate and collect in deterministic order.
	ids := make([]string, 0, len(dist))
	for id := range dist {
		if id == skipID {
			continue
		}
		ids = append(ids, id)
	}
	sort.Strings(ids)

	vals := make([]float64, len(ids))
	for i, id := range ids {
		d := dist[id]
		if math.IsInf(d, 1) {
			return 0, fmt.Errorf("%w: vertex %q unreachable", ErrDisconnected, id)
		}
		if d < 0 || math.IsNaN(d) {
			return 0, fmt.Errorf("%w: distance %g at vertex %q", ErrNumericInvariant, d, id)
		}
		vals[i] = d
	}

	// 2) Reduce. Small vectors: one tight loop.
	if len(vals) < parallelSumThreshold {
		var total float64
		for _, v := range vals {
			total += v
		}
		return total, nil
	}

	// 3) Large vectors: chunked parallel reduction. Each worker owns one
	//    contiguous chunk and one partial slot; partials are combined in
	//    chunk order to keep the accumulation sequence fixed.
	workers := runtime.NumCPU()
	if workers > len(vals) {
		workers = len(vals)
	}
	chunk := (len(vals) + workers - 1) / workers
	partial := make([]float64, workers)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		lo := w * chunk
		hi := lo + chunk
		if hi > len(vals) {
			hi = len(vals)
		}
		wg.Add(1)
		go func(slot int, part []float64) {
			defer wg.Done()
			var s float64
			for _, v := range part {
				s += v
			}
			partial[slot] = s
		}(w, vals[lo:hi])
	}
	wg.Wait()

	var total float64
	for _, p := range partial {
		total += p
	}
	return total, nil
}
