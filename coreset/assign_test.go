package coreset_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/coreset/builder"
	"github.com/katalvlaran/coreset/core"
	"github.com/katalvlaran/coreset/coreset"
	"github.com/katalvlaran/coreset/dijkstra"
)

func TestAssign_Validation(t *testing.T) {
	g := mustBuild(t, builder.Path(4))

	_, _, err := coreset.Assign(nil, []string{"0"})
	require.ErrorIs(t, err, coreset.ErrNilGraph)

	_, _, err = coreset.Assign(g, nil)
	require.ErrorIs(t, err, coreset.ErrBadParams)

	_, _, err = coreset.Assign(g, []string{"ghost"})
	require.ErrorIs(t, err, core.ErrVertexNotFound)

	empty := core.NewGraph(core.WithWeighted())
	_, _, err = coreset.Assign(empty, []string{"0"})
	require.ErrorIs(t, err, coreset.ErrEmptyGraph)
}

// A unit-weight path 0──1──2──3 served by facility {0} costs 0+1+2+3 = 6.
func TestAssign_PathFromOneEnd(t *testing.T) {
	g := mustBuild(t, builder.Path(4))

	costs, assignments, err := coreset.Assign(g, []string{"0"})
	require.NoError(t, err)
	require.Len(t, costs, 4)
	require.Len(t, assignments, 4)

	var total float64
	for v, c := range costs {
		total += c
		require.Equal(t, 0, assignments[v], "single facility owns everything")
	}
	require.InDelta(t, 6.0, total, 1e-9)
}

// A unit-weight path 0──1──2──3──4 served from the middle costs
// 2+1+0+1+2 = 6.
func TestAssign_PathFromMiddle(t *testing.T) {
	g := mustBuild(t, builder.Path(5))

	costs, _, err := coreset.Assign(g, []string{"2"})
	require.NoError(t, err)

	var total float64
	for _, c := range costs {
		total += c
	}
	require.InDelta(t, 6.0, total, 1e-9)
	require.Zero(t, costs["2"])
}

// A star with n leaves served by {Center} costs exactly n.
func TestAssign_StarFromCenter(t *testing.T) {
	const leaves = 7
	g := mustBuild(t, builder.Star(leaves+1))

	costs, assignments, err := coreset.Assign(g, []string{builder.CenterVertexID})
	require.NoError(t, err)

	var total float64
	for _, c := range costs {
		total += c
	}
	require.InDelta(t, float64(leaves), total, 1e-9)
	require.Zero(t, costs[builder.CenterVertexID])
	for v := range assignments {
		require.Equal(t, 0, assignments[v], "vertex %q", v)
	}
}

func TestAssign_FacilitySelfService(t *testing.T) {
	g := mustBuild(t, builder.Grid(3, 3))
	facilities := []string{"0,0", "2,2"}

	costs, assignments, err := coreset.Assign(g, facilities)
	require.NoError(t, err)
	for i, f := range facilities {
		require.Zero(t, costs[f], "facility %q must cost nothing", f)
		require.Equal(t, i, assignments[f], "facility %q must serve itself", f)
	}
}

// Cross-check Assign against per-facility single-source runs: the assigned
// cost must equal the minimum over facilities of dist(facility, v).
func TestAssign_MatchesBruteForceNearest(t *testing.T) {
	g := mustBuild(t, builder.Grid(4, 5))
	facilities := []string{"0,0", "1,3", "3,1"}

	costs, assignments, err := coreset.Assign(g, facilities)
	require.NoError(t, err)

	perFacility := make([]map[string]float64, len(facilities))
	for i, f := range facilities {
		dist, _, derr := dijkstra.Dijkstra(g, dijkstra.Source(f))
		require.NoError(t, derr)
		perFacility[i] = dist
	}

	for _, v := range g.Vertices() {
		want := math.Inf(1)
		for i := range facilities {
			if d := perFacility[i][v]; d < want {
				want = d
			}
		}
		require.InDelta(t, want, costs[v], 1e-9, "vertex %q", v)

		// The assigned facility must realize the minimum (ties may pick
		// any optimal facility, so compare costs, not indices).
		got := perFacility[assignments[v]][v]
		require.InDelta(t, want, got, 1e-9, "vertex %q served suboptimally", v)
	}
}

func TestAssign_DuplicateFacilityLastIndexWins(t *testing.T) {
	g := mustBuild(t, builder.Path(3))

	_, assignments, err := coreset.Assign(g, []string{"0", "2", "0"})
	require.NoError(t, err)
	require.Equal(t, 2, assignments["0"], "later duplicate owns the index")
	require.Equal(t, 1, assignments["2"])
}

func TestAssign_Disconnected(t *testing.T) {
	g := mustBuild(t, builder.Path(3))
	require.NoError(t, g.AddVertex("island"))

	_, _, err := coreset.Assign(g, []string{"0"})
	require.ErrorIs(t, err, coreset.ErrDisconnected)
}

func TestAssign_RestoresGraph(t *testing.T) {
	g := mustBuild(t, builder.Cycle(6))
	nv, ne := g.VertexCount(), g.EdgeCount()

	_, _, err := coreset.Assign(g, []string{"0", "3"})
	require.NoError(t, err)
	require.Equal(t, nv, g.VertexCount())
	require.Equal(t, ne, g.EdgeCount())
}
