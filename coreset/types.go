// Package coreset defines the result types and sentinel errors shared by
// the sampler suite.
//
// All operations work against a connected, weighted *core.Graph. The
// samplers mutate the graph transiently (one synthetic auxiliary vertex
// plus zero-weight wiring edges) and restore it before returning; no other
// goroutine may touch the same graph instance while a sampler runs.
//
// Errors (sentinel):
//
//	– ErrNilGraph         if a nil *core.Graph is passed.
//	– ErrEmptyGraph       if the graph contains no vertices.
//	– ErrBadParams        if a count parameter (samples per round, rounds,
//	                      k, trials) is below its minimum.
//	– ErrDisconnected     if an infinite distance is observed: the input
//	                      violated the connectivity precondition.
//	– ErrSampleTooLarge   if a strict-subset draw requests at least the
//	                      whole pool.
//	– ErrAssignmentFailed if a predecessor walk cannot reach a facility.
//	– ErrNumericInvariant if a negative or NaN distance/cost appears.
//	– ErrNotImplemented   for the unfinished 1-median refinement path.
package coreset

import "errors"

// Sentinel errors returned by the sampler suite.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed.
	ErrNilGraph = errors.New("coreset: graph is nil")

	// ErrEmptyGraph indicates that the graph contains no vertices.
	ErrEmptyGraph = errors.New("coreset: graph has no vertices")

	// ErrBadParams indicates a count parameter below its minimum
	// (samplesPerRound ≥ 1, maxRounds ≥ 1, k ≥ 1, numTrials ≥ 1).
	ErrBadParams = errors.New("coreset: invalid sampling parameters")

	// ErrDisconnected indicates an infinite shortest-path distance was
	// observed. Connectivity is a caller precondition; it is detected
	// lazily, at the first unreachable vertex, not verified upfront.
	ErrDisconnected = errors.New("coreset: graph must be connected")

	// ErrSampleTooLarge indicates a strict-subset draw asked for at least
	// as many elements as the pool holds.
	ErrSampleTooLarge = errors.New("coreset: sample size must be smaller than the pool")

	// ErrAssignmentFailed indicates a predecessor-chain walk exhausted the
	// shortest-path tree without reaching a facility. This is an invariant
	// violation (malformed tree); no default index is ever substituted.
	ErrAssignmentFailed = errors.New("coreset: cannot resolve serving facility")

	// ErrNumericInvariant indicates a negative or NaN entry in a distance
	// or cost vector — a malformed graph or a logic defect. The operation
	// aborts rather than propagate a corrupted cost.
	ErrNumericInvariant = errors.New("coreset: numeric invariant violated")

	// ErrNotImplemented marks the unfinished multi-threaded 1-median
	// refinement path. Invoking it never yields a partial result.
	ErrNotImplemented = errors.New("coreset: not implemented")
)

// Result is the outcome of SampleBest: the winning facility set, the
// per-vertex cost and assignment vectors, and the summed total cost.
//
// Facilities is ordered (assignment indices point into it). Costs[v] is
// the shortest-path distance from v to its serving facility. Assignments
// maps every vertex — facility members trivially self-mapped — to an
// index into Facilities. The synthetic auxiliary vertex used internally
// never appears in any of the three.
type Result struct {
	// Facilities is the winning sample set, in draw order.
	Facilities []string

	// Costs maps each vertex ID to its assignment distance.
	Costs map[string]float64

	// Assignments maps each vertex ID to an index into Facilities.
	Assignments map[string]int

	// TotalCost is the sum of Costs over all vertices.
	TotalCost float64
}
