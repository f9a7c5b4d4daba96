package coreset_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/coreset/builder"
	"github.com/katalvlaran/coreset/core"
	"github.com/katalvlaran/coreset/coreset"
)

func TestSampleWithCost_Validation(t *testing.T) {
	g := mustBuild(t, builder.Path(4))

	_, _, err := coreset.SampleWithCost(nil, 2, 2, 1)
	require.ErrorIs(t, err, coreset.ErrNilGraph)

	_, _, err = coreset.SampleWithCost(g, 0, 2, 1)
	require.ErrorIs(t, err, coreset.ErrBadParams)

	_, _, err = coreset.SampleWithCost(g, 2, 0, 1)
	require.ErrorIs(t, err, coreset.ErrBadParams)

	empty := core.NewGraph(core.WithWeighted())
	_, _, err = coreset.SampleWithCost(empty, 2, 2, 1)
	require.ErrorIs(t, err, coreset.ErrEmptyGraph)
}

func TestSampleWithCost_DistinctFacilities(t *testing.T) {
	g := mustBuild(t, builder.Grid(4, 4))

	f, cost, err := coreset.SampleWithCost(g, 3, 10, 5)
	require.NoError(t, err)
	require.NotEmpty(t, f)
	require.GreaterOrEqual(t, cost, 0.0)

	seen := make(map[string]struct{}, len(f))
	for _, v := range f {
		_, dup := seen[v]
		require.False(t, dup, "draws are without replacement, %q repeated", v)
		seen[v] = struct{}{}
	}
}

func TestSampleWithCost_FullAbsorptionIsFree(t *testing.T) {
	// perRound ≥ n absorbs the whole pool in round one; every vertex is a
	// facility, so the connection cost is exactly zero.
	g := mustBuild(t, builder.Path(6))

	f, cost, err := coreset.SampleWithCost(g, 100, 3, 1)
	require.NoError(t, err)
	require.Len(t, f, 6)
	require.Zero(t, cost)
	require.Equal(t, g.Vertices(), f, "whole-pool absorption keeps sorted order")
}

func TestSampleWithCost_RestoresGraph(t *testing.T) {
	g := mustBuild(t, builder.Cycle(9))
	nv, ne := g.VertexCount(), g.EdgeCount()

	_, _, err := coreset.SampleWithCost(g, 2, 4, 5)
	require.NoError(t, err)
	require.Equal(t, nv, g.VertexCount())
	require.Equal(t, ne, g.EdgeCount())
}

func TestSampleWithCost_Deterministic(t *testing.T) {
	g := mustBuild(t, builder.Grid(5, 4))

	f1, c1, err := coreset.SampleWithCost(g, 3, 6, 23)
	require.NoError(t, err)
	f2, c2, err := coreset.SampleWithCost(g, 3, 6, 23)
	require.NoError(t, err)
	require.Equal(t, f1, f2)
	require.Equal(t, c1, c2)
}

func TestSampleWithCost_Disconnected(t *testing.T) {
	// Path plus an isolated vertex: one round with one draw leaves at least
	// one component unwired, so either the pivot or the final cost sum sees
	// an unreachable vertex.
	g := mustBuild(t, builder.Path(4))
	require.NoError(t, g.AddVertex("island"))

	_, _, err := coreset.SampleWithCost(g, 1, 1, 1)
	require.ErrorIs(t, err, coreset.ErrDisconnected)
}
