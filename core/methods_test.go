// Package core_test verifies core.Graph method-level contracts.
package core_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/apsp/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func collect(g *core.Graph, u int) []core.Edge {
	var out []core.Edge
	for to, w := range g.EdgesFrom(u) {
		out = append(out, core.Edge{From: u, To: to, Weight: w})
	}

	return out
}

func TestNewGraph_Validation(t *testing.T) {
	_, err := core.NewGraph(-1)
	require.ErrorIs(t, err, core.ErrNegativeVertexCount)

	g, err := core.NewGraph(0)
	require.NoError(t, err)
	assert.Equal(t, 0, g.VertexCount())
	assert.Empty(t, g.Edges())

	assert.Panics(t, func() { core.WithEdgeCapacity(-1) })
}

func TestAddEdge_InvalidVertexIsNonFatal(t *testing.T) {
	g := core.MustGraph(3)

	require.NoError(t, g.AddEdge(0, 1, 2))
	for _, bad := range [][2]int{{3, 0}, {0, 3}, {-1, 0}, {0, -1}, {5, 5}} {
		err := g.AddEdge(bad[0], bad[1], 1)
		require.ErrorIs(t, err, core.ErrInvalidVertex, "edge %v", bad)
	}
	// Construction continues after rejections.
	require.NoError(t, g.AddEdge(1, 2, -4))

	assert.Equal(t, 2, g.EdgeCount())
	assert.Equal(t, []core.Edge{{0, 1, 2}, {1, 2, -4}}, g.Edges())
}

func TestAddEdge_WeightBounds(t *testing.T) {
	g := core.MustGraph(2)

	require.NoError(t, g.AddEdge(0, 1, core.MaxAbsWeight))
	require.NoError(t, g.AddEdge(1, 0, -core.MaxAbsWeight))
	require.ErrorIs(t, g.AddEdge(0, 1, core.MaxAbsWeight+1), core.ErrWeightOutOfRange)
	require.ErrorIs(t, g.AddEdge(0, 1, -core.MaxAbsWeight-1), core.ErrWeightOutOfRange)
	assert.Equal(t, 2, g.EdgeCount())
}

func TestAddEdge_Loops(t *testing.T) {
	g := core.MustGraph(1)
	require.NoError(t, g.AddEdge(0, 0, 3))
	assert.True(t, g.Looped())

	strict := core.MustGraph(1, core.WithoutLoops())
	require.ErrorIs(t, strict.AddEdge(0, 0, 3), core.ErrLoopNotAllowed)
	assert.False(t, strict.Looped())
	assert.Zero(t, strict.EdgeCount())
}

func TestEdgesFrom_OrderAndRestartable(t *testing.T) {
	g := core.MustGraph(4)
	require.NoError(t, g.AddEdge(0, 3, 7))
	require.NoError(t, g.AddEdge(0, 1, 1))
	require.NoError(t, g.AddEdge(0, 1, 5)) // parallel edges stay separate
	require.NoError(t, g.AddEdge(2, 0, 0))

	want := []core.Edge{{0, 3, 7}, {0, 1, 1}, {0, 1, 5}}
	assert.Equal(t, want, collect(g, 0))
	assert.Equal(t, want, collect(g, 0), "second pass must match the first")
	assert.Empty(t, collect(g, 1))
	assert.Empty(t, collect(g, 9))

	// Early break stops the sequence.
	n := 0
	for range g.EdgesFrom(0) {
		n++
		break
	}
	assert.Equal(t, 1, n)
	assert.Equal(t, 3, g.OutDegree(0))
	assert.Zero(t, g.OutDegree(-1))
}

func TestNeighbors(t *testing.T) {
	g := core.MustGraph(2)
	require.NoError(t, g.AddEdge(1, 0, -2))

	nbs, err := g.Neighbors(1)
	require.NoError(t, err)
	assert.Equal(t, []core.Edge{{1, 0, -2}}, nbs)

	// Mutating the copy leaves the graph untouched.
	nbs[0].Weight = 100
	again, _ := g.Neighbors(1)
	assert.Equal(t, int64(-2), again[0].Weight)

	_, err = g.Neighbors(2)
	require.ErrorIs(t, err, core.ErrInvalidVertex)
}

func TestClone_Independent(t *testing.T) {
	g := core.MustGraph(3)
	require.NoError(t, g.AddEdge(0, 1, 1))
	c := g.Clone()
	require.NoError(t, c.AddEdge(1, 2, 2))

	assert.Equal(t, 1, g.EdgeCount())
	assert.Equal(t, 2, c.EdgeCount())
	assert.Equal(t, g.VertexCount(), c.VertexCount())
}

func TestAugment(t *testing.T) {
	g := core.MustGraph(3)
	require.NoError(t, g.AddEdge(0, 1, -1))
	require.NoError(t, g.AddEdge(2, 2, 4))

	aug, src := g.Augment()
	require.Equal(t, 3, src)
	require.Equal(t, 4, aug.VertexCount())
	assert.Equal(t, g.EdgeCount()+3, aug.EdgeCount())

	// Original edges are copied verbatim.
	assert.Equal(t, collect(g, 0), collect(aug, 0))
	assert.Equal(t, collect(g, 2), collect(aug, 2))
	// The virtual source reaches every vertex with weight 0.
	assert.Equal(t, []core.Edge{{3, 0, 0}, {3, 1, 0}, {3, 2, 0}}, collect(aug, src))
	// Nothing enters the virtual source.
	for _, e := range aug.Edges() {
		assert.NotEqual(t, src, e.To)
	}
	// The original graph is unchanged.
	assert.Equal(t, 3, g.VertexCount())
	assert.Equal(t, 2, g.EdgeCount())
}

func TestAugment_Empty(t *testing.T) {
	aug, src := core.MustGraph(0).Augment()
	assert.Equal(t, 0, src)
	assert.Equal(t, 1, aug.VertexCount())
	assert.Zero(t, aug.EdgeCount())
}

func TestStats(t *testing.T) {
	g := core.MustGraph(3)
	assert.Equal(t, core.GraphStats{VertexCount: 3}, g.Stats())

	require.NoError(t, g.AddEdge(0, 1, -5))
	require.NoError(t, g.AddEdge(1, 1, 2))
	require.NoError(t, g.AddEdge(1, 2, 9))

	assert.Equal(t, core.GraphStats{
		VertexCount:   3,
		EdgeCount:     3,
		NegativeEdges: 1,
		SelfLoops:     1,
		MinWeight:     -5,
		MaxWeight:     9,
	}, g.Stats())
}

func TestDistance(t *testing.T) {
	var zero core.Distance
	assert.True(t, zero.IsInf(), "zero value is unreachable")
	assert.Equal(t, core.Infinity(), zero)

	d := core.Finite(-7)
	v, ok := d.Value()
	assert.True(t, ok)
	assert.Equal(t, int64(-7), v)
	assert.Equal(t, int64(-4), d.Add(3).Int64())
	assert.True(t, core.Infinity().Add(-100).IsInf())

	assert.True(t, core.Finite(1).Less(core.Finite(2)))
	assert.False(t, core.Finite(2).Less(core.Finite(2)))
	assert.True(t, core.Finite(2).LessOrEqual(core.Finite(2)))
	assert.True(t, core.Finite(1<<40).Less(core.Infinity()))
	assert.False(t, core.Infinity().Less(core.Finite(0)))
	assert.False(t, core.Infinity().Less(core.Infinity()))
	assert.True(t, core.Infinity().LessOrEqual(core.Infinity()))

	assert.Equal(t, "-7", d.String())
	assert.Equal(t, "INF", core.Infinity().String())
}

func TestDistance_AddSaturates(t *testing.T) {
	top := core.Finite(math.MaxInt64 - 1)
	assert.Equal(t, core.Finite(math.MaxInt64), top.Add(5))
	assert.Equal(t, core.Finite(math.MaxInt64), top.Add(1))
	assert.Equal(t, core.Finite(math.MaxInt64-3), top.Add(-2))

	bottom := core.Finite(math.MinInt64 + 1)
	assert.Equal(t, core.Finite(math.MinInt64), bottom.Add(-5))
	assert.Equal(t, core.Finite(math.MinInt64), bottom.Add(-1))
	assert.Equal(t, core.Finite(math.MinInt64+3), bottom.Add(2))

	assert.Equal(t, core.Finite(math.MaxInt64), core.Finite(math.MaxInt64).Add(math.MaxInt64))
	assert.Equal(t, core.Finite(-1), core.Finite(math.MaxInt64).Add(math.MinInt64))
	assert.True(t, core.Finite(math.MaxInt64).Add(1).IsFinite(), "saturation never turns into unreachable")
}
