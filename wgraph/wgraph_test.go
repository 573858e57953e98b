package wgraph_test

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/velmark/sptcert/wgraph"
)

// ------------------------------------------------------------------------
// 1. Construction.
// ------------------------------------------------------------------------

func TestNew_EmptyGraph(t *testing.T) {
	g, err := wgraph.New[float64](4)
	require.NoError(t, err)
	assert.Equal(t, 4, g.VertexCount())
	assert.Equal(t, 0, g.EdgeCount())
}

func TestNew_ZeroVertices(t *testing.T) {
	g, err := wgraph.New[int](0)
	require.NoError(t, err)
	assert.Equal(t, 0, g.VertexCount())
}

func TestNew_NegativeCount(t *testing.T) {
	_, err := wgraph.New[float64](-1)
	require.ErrorIs(t, err, wgraph.ErrNegativeVertexCount)
}

// ------------------------------------------------------------------------
// 2. Edge mutation and queries.
// ------------------------------------------------------------------------

func TestAddEdge_RoundTrip(t *testing.T) {
	g, err := wgraph.New[float64](3)
	require.NoError(t, err)

	require.NoError(t, g.AddEdge(0, 1, 2.5))
	assert.True(t, g.HasEdge(0, 1))
	w, err := g.EdgeWeight(0, 1)
	require.NoError(t, err)
	assert.Equal(t, 2.5, w)
	// directed: the reverse edge does not exist
	assert.False(t, g.HasEdge(1, 0))
}

func TestAddEdge_Upsert(t *testing.T) {
	g, err := wgraph.New[int](2)
	require.NoError(t, err)

	require.NoError(t, g.AddEdge(0, 1, 7))
	require.NoError(t, g.AddEdge(0, 1, 9))
	w, err := g.EdgeWeight(0, 1)
	require.NoError(t, err)
	assert.Equal(t, 9, w, "last write wins")
	assert.Equal(t, 1, g.EdgeCount(), "upsert must not duplicate the edge")
}

func TestAddEdge_OutOfRange(t *testing.T) {
	g, err := wgraph.New[float64](2)
	require.NoError(t, err)

	for _, tc := range []struct{ i, j int }{
		{-1, 0}, {0, -1}, {2, 0}, {0, 2},
	} {
		err = g.AddEdge(tc.i, tc.j, 1)
		assert.ErrorIs(t, err, wgraph.ErrVertexOutOfRange, "edge (%d,%d)", tc.i, tc.j)
	}
	assert.Equal(t, 0, g.EdgeCount())
}

func TestAddEdge_ZeroWeightIsStored(t *testing.T) {
	g, err := wgraph.New[float64](2)
	require.NoError(t, err)

	require.NoError(t, g.AddEdge(0, 1, 0))
	w, err := g.EdgeWeight(0, 1)
	require.NoError(t, err)
	assert.Zero(t, w)
	assert.True(t, g.HasEdge(0, 1), "weight 0 must not read as missing")
}

func TestRemoveEdge(t *testing.T) {
	g, err := wgraph.New[float64](3)
	require.NoError(t, err)
	require.NoError(t, g.AddEdge(0, 1, 1))

	g.RemoveEdge(0, 1)
	assert.False(t, g.HasEdge(0, 1))
	assert.Equal(t, 0, g.EdgeCount())

	// silent no-ops: absent edge, out-of-range indices
	g.RemoveEdge(0, 1)
	g.RemoveEdge(-1, 0)
	g.RemoveEdge(0, 99)
	assert.Equal(t, 0, g.EdgeCount())
}

func TestEdgeWeight_NotFound(t *testing.T) {
	g, err := wgraph.New[float64](2)
	require.NoError(t, err)

	_, err = g.EdgeWeight(0, 1)
	assert.ErrorIs(t, err, wgraph.ErrEdgeNotFound)
	_, err = g.EdgeWeight(-1, 0)
	assert.ErrorIs(t, err, wgraph.ErrEdgeNotFound, "out-of-range origin reads as not found")
}

func TestHasEdge_OutOfRange(t *testing.T) {
	g, err := wgraph.New[float64](2)
	require.NoError(t, err)
	assert.False(t, g.HasEdge(5, 0))
	assert.False(t, g.HasEdge(0, 5))
	assert.False(t, g.HasEdge(-1, -1))
}

// ------------------------------------------------------------------------
// 3. Neighbor iteration.
// ------------------------------------------------------------------------

func TestNeighbors_YieldsAllEdges(t *testing.T) {
	g, err := wgraph.New[int](4)
	require.NoError(t, err)
	require.NoError(t, g.AddEdge(1, 0, 10))
	require.NoError(t, g.AddEdge(1, 2, 20))
	require.NoError(t, g.AddEdge(1, 3, 30))

	got := map[int]int{}
	for v, w := range g.Neighbors(1) {
		got[v] = w
	}
	assert.Equal(t, map[int]int{0: 10, 2: 20, 3: 30}, got)
}

func TestNeighbors_Restartable(t *testing.T) {
	g, err := wgraph.New[int](2)
	require.NoError(t, err)
	require.NoError(t, g.AddEdge(0, 1, 5))

	seq := g.Neighbors(0)
	for range 2 {
		count := 0
		for range seq {
			count++
		}
		assert.Equal(t, 1, count)
	}
}

func TestNeighbors_OutOfRangeIsEmpty(t *testing.T) {
	g, err := wgraph.New[int](1)
	require.NoError(t, err)
	for range g.Neighbors(9) {
		t.Fatal("out-of-range vertex must yield nothing")
	}
}

func TestDegree(t *testing.T) {
	g, err := wgraph.New[int](3)
	require.NoError(t, err)
	require.NoError(t, g.AddEdge(0, 1, 1))
	require.NoError(t, g.AddEdge(0, 2, 1))
	assert.Equal(t, 2, g.Degree(0))
	assert.Equal(t, 0, g.Degree(1))
	assert.Equal(t, 0, g.Degree(-3))
}

// ------------------------------------------------------------------------
// 4. Clone.
// ------------------------------------------------------------------------

func TestClone_Independent(t *testing.T) {
	g, err := wgraph.New[float64](3)
	require.NoError(t, err)
	require.NoError(t, g.AddEdge(0, 1, 1.5))

	c := g.Clone()
	assert.Equal(t, g.VertexCount(), c.VertexCount())
	assert.True(t, c.HasEdge(0, 1))

	require.NoError(t, c.AddEdge(1, 2, 4))
	assert.False(t, g.HasEdge(1, 2), "clone mutation must not leak into the original")
}

// ------------------------------------------------------------------------
// 5. Infinity across weight domains.
// ------------------------------------------------------------------------

func TestInfinity(t *testing.T) {
	assert.True(t, math.IsInf(wgraph.Infinity[float64](), 1))
	assert.True(t, math.IsInf(float64(wgraph.Infinity[float32]()), 1))
	assert.Equal(t, math.MaxInt, wgraph.Infinity[int]())
	assert.Equal(t, int64(math.MaxInt64), wgraph.Infinity[int64]())
	assert.Equal(t, int8(math.MaxInt8), wgraph.Infinity[int8]())
	assert.Equal(t, uint8(math.MaxUint8), wgraph.Infinity[uint8]())
	assert.Equal(t, uint64(math.MaxUint64), wgraph.Infinity[uint64]())
}

// ------------------------------------------------------------------------
// 6. Diagnostic rendering.
// ------------------------------------------------------------------------

func TestString_Rendering(t *testing.T) {
	g, err := wgraph.New[int](3)
	require.NoError(t, err)
	require.NoError(t, g.AddEdge(0, 2, 4))
	require.NoError(t, g.AddEdge(0, 1, 1))
	require.NoError(t, g.AddEdge(2, 0, 7))

	want := strings.Join([]string{
		"0: (0, 1)[1] (0, 2)[4]",
		"1:",
		"2: (2, 0)[7]",
		"",
	}, "\n")
	assert.Equal(t, want, g.String())
}
