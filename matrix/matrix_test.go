package matrix_test

import (
	"testing"

	"github.com/katalvlaran/apsp/core"
	"github.com/katalvlaran/apsp/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ---------- 1. Dense tables ----------

func TestDistances_Accessors(t *testing.T) {
	t.Parallel()

	_, err := matrix.NewDistances(-1)
	require.ErrorIs(t, err, matrix.ErrBadShape)

	d, err := matrix.NewDistances(3)
	require.NoError(t, err)
	assert.Equal(t, 3, d.Size())

	v, err := d.At(2, 1)
	require.NoError(t, err)
	assert.True(t, v.IsInf(), "fresh entries are unreachable")

	require.NoError(t, d.Set(2, 1, core.Finite(-4)))
	v, _ = d.At(2, 1)
	assert.Equal(t, core.Finite(-4), v)

	_, err = d.At(3, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	require.ErrorIs(t, d.Set(0, -1, core.Finite(1)), matrix.ErrOutOfRange)

	row, err := d.Row(1)
	require.NoError(t, err)
	row[0] = core.Finite(9)
	v, _ = d.At(1, 0)
	assert.Equal(t, core.Finite(9), v, "Row aliases the table")

	_, err = d.Row(3)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}

func TestDistances_EqualAndDiff(t *testing.T) {
	t.Parallel()

	a, _ := matrix.NewDistances(2)
	b, _ := matrix.NewDistances(2)
	assert.True(t, a.Equal(b))

	require.NoError(t, b.Set(1, 0, core.Finite(0)))
	assert.False(t, a.Equal(b))

	i, j, ok, err := a.Diff(b)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, [2]int{1, 0}, [2]int{i, j})

	c, _ := matrix.NewDistances(3)
	assert.False(t, a.Equal(c))
	_, _, _, err = a.Diff(c)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	var nilD *matrix.Distances
	assert.True(t, nilD.Equal(nil))
	assert.False(t, a.Equal(nil))
}

func TestPredecessors_Accessors(t *testing.T) {
	t.Parallel()

	_, err := matrix.NewPredecessors(-2)
	require.ErrorIs(t, err, matrix.ErrBadShape)

	p, err := matrix.NewPredecessors(2)
	require.NoError(t, err)
	v, err := p.At(0, 1)
	require.NoError(t, err)
	assert.Equal(t, core.NoVertex, v)

	require.NoError(t, p.Set(0, 1, 0))
	row, err := p.Row(0)
	require.NoError(t, err)
	assert.Equal(t, []int{core.NoVertex, 0}, row)

	_, err = p.At(0, 2)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	q, _ := matrix.NewPredecessors(2)
	assert.False(t, p.Equal(q))
	require.NoError(t, q.Set(0, 1, 0))
	assert.True(t, p.Equal(q))
}

// ---------- 2. FloydWarshall ----------

func TestFloydWarshall_Errors(t *testing.T) {
	t.Parallel()

	_, err := matrix.FloydWarshall(nil)
	require.ErrorIs(t, err, matrix.ErrGraphNil)

	g := core.MustGraph(3)
	require.NoError(t, g.AddEdge(0, 1, 1))
	require.NoError(t, g.AddEdge(1, 2, 1))
	require.NoError(t, g.AddEdge(2, 0, -3))
	_, err = matrix.FloydWarshall(g)
	require.ErrorIs(t, err, matrix.ErrNegativeCycle)

	loop := core.MustGraph(1)
	require.NoError(t, loop.AddEdge(0, 0, -1))
	_, err = matrix.FloydWarshall(loop)
	require.ErrorIs(t, err, matrix.ErrNegativeCycle)
}

// Classic CLRS example (5×5, directed, with negative edges but no negative cycles).
func TestFloydWarshall_CLRS_5x5(t *testing.T) {
	t.Parallel()

	g := core.MustGraph(5)
	for _, e := range [][3]int64{
		{0, 1, 3}, {0, 2, 8}, {0, 4, -4}, {1, 3, 1}, {1, 4, 7},
		{2, 1, 4}, {3, 0, 2}, {3, 2, -5}, {4, 3, 6},
	} {
		require.NoError(t, g.AddEdge(int(e[0]), int(e[1]), e[2]))
	}

	want := [5][5]int64{
		{0, 1, -3, 2, -4},
		{3, 0, -4, 1, -1},
		{7, 4, 0, 5, 3},
		{2, -1, -5, 0, -2},
		{8, 5, 1, 6, 0},
	}

	d, err := matrix.FloydWarshall(g)
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		for j := 0; j < 5; j++ {
			v, err := d.At(i, j)
			require.NoError(t, err)
			assert.Equal(t, core.Finite(want[i][j]), v, "(%d,%d)", i, j)
		}
	}
}

func TestFloydWarshall_UnreachableAndParallel(t *testing.T) {
	t.Parallel()

	g := core.MustGraph(3)
	require.NoError(t, g.AddEdge(0, 1, 5))
	require.NoError(t, g.AddEdge(0, 1, 2))
	require.NoError(t, g.AddEdge(1, 1, 3)) // positive loop is ignored

	d, err := matrix.FloydWarshall(g)
	require.NoError(t, err)

	v, _ := d.At(0, 1)
	assert.Equal(t, core.Finite(2), v)
	v, _ = d.At(1, 1)
	assert.Equal(t, core.Finite(0), v)
	v, _ = d.At(1, 0)
	assert.True(t, v.IsInf())
	v, _ = d.At(2, 0)
	assert.True(t, v.IsInf())
}
