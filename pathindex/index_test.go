package pathindex_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Overcraft90/odgi/graph"
	"github.com/Overcraft90/odgi/pathindex"
)

func build3NodePath(t *testing.T) (*graph.Graph, [][]graph.Handle) {
	t.Helper()
	g := graph.New()
	require.NoError(t, g.AddNode(1, "AAA"))          // length 3
	require.NoError(t, g.AddNode(2, "CCCCCCCCCC"))    // length 10
	require.NoError(t, g.AddNode(3, "GGGGGGGGGGGGGGG")) // length 15
	require.NoError(t, g.AddEdge(graph.Handle{ID: 1}, graph.Handle{ID: 2}))
	require.NoError(t, g.AddEdge(graph.Handle{ID: 2}, graph.Handle{ID: 3}))

	path := []graph.Handle{{ID: 1}, {ID: 2}, {ID: 3}}

	return g, [][]graph.Handle{path}
}

func TestPathLengthAndStepOffsets(t *testing.T) {
	g, paths := build3NodePath(t)
	idx, err := pathindex.New(g, paths)
	require.NoError(t, err)

	l, err := idx.PathLength(0)
	require.NoError(t, err)
	require.Equal(t, uint64(28), l)

	step, err := idx.GetStepAtPosition(0, 0)
	require.NoError(t, err)
	require.Equal(t, 0, step.Rank)

	step, err = idx.GetStepAtPosition(0, 3)
	require.NoError(t, err)
	require.Equal(t, 1, step.Rank)

	step, err = idx.GetStepAtPosition(0, 27)
	require.NoError(t, err)
	require.Equal(t, 2, step.Rank)

	_, err = idx.GetStepAtPosition(0, 28)
	require.ErrorIs(t, err, pathindex.ErrPositionOutOfRange)
}

func TestGetPositionOfStepAndHandle(t *testing.T) {
	g, paths := build3NodePath(t)
	idx, err := pathindex.New(g, paths)
	require.NoError(t, err)

	pos, err := idx.GetPositionOfStep(pathindex.Step{Path: 0, Rank: 2})
	require.NoError(t, err)
	require.Equal(t, uint64(13), pos)

	h, err := idx.GetHandleOfStep(pathindex.Step{Path: 0, Rank: 2})
	require.NoError(t, err)
	require.Equal(t, uint64(3), h.ID)
}

func TestNPLayoutBoundariesAndSelect(t *testing.T) {
	g, paths := build3NodePath(t)
	idx, err := pathindex.New(g, paths)
	require.NoError(t, err)

	// 3 nodes, each visited exactly once: np = [boundary, step, boundary, step, boundary, step]
	require.Equal(t, 6, idx.NPLen())
	require.True(t, idx.NPBoundary(0))
	require.False(t, idx.NPBoundary(1))
	require.Equal(t, pathindex.PathID(0), idx.NPPath(1))
	require.Equal(t, 1, idx.NPStepRank(1))

	// np_bv_select(1) is the first node's boundary position (np index 0).
	require.Equal(t, 0, idx.NPSelect1(1))
	// np_bv_select(2) is the second node's boundary position (np index 2).
	require.Equal(t, 2, idx.NPSelect1(2))
	require.Equal(t, 4, idx.NPSelect1(3))
}

func TestBitVectorRankSelect(t *testing.T) {
	bv := pathindex.NewBitVector(10)
	bv.Set(0)
	bv.Set(3)
	bv.Set(9)
	bv.Freeze()

	require.Equal(t, 3, bv.Ones())
	require.Equal(t, 0, bv.Rank1(0))
	require.Equal(t, 1, bv.Rank1(1))
	require.Equal(t, 2, bv.Rank1(4))
	require.Equal(t, 3, bv.Rank1(10))

	require.Equal(t, 0, bv.Select1(1))
	require.Equal(t, 3, bv.Select1(2))
	require.Equal(t, 9, bv.Select1(3))
	require.Equal(t, -1, bv.Select1(4))
}
