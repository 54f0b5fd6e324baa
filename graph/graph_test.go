package graph_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Overcraft90/odgi/graph"
)

func build3Path(t *testing.T) *graph.Graph {
	t.Helper()
	g := graph.New()
	require.NoError(t, g.AddNode(1, "AAAAAAAAAA"))
	require.NoError(t, g.AddNode(2, "CCCCCCCCCCCCCCCCCCCC"))
	require.NoError(t, g.AddNode(3, "GGGGGGGGGGGGGGGGGGGGGGGGGGGGGG"))
	require.NoError(t, g.AddEdge(graph.Handle{ID: 1}, graph.Handle{ID: 2}))
	require.NoError(t, g.AddEdge(graph.Handle{ID: 2}, graph.Handle{ID: 3}))

	return g
}

func TestAddNodeRejectsEmptySequence(t *testing.T) {
	g := graph.New()
	err := g.AddNode(1, "")
	require.ErrorIs(t, err, graph.ErrEmptySequence)
}

func TestAddNodeRejectsDuplicate(t *testing.T) {
	g := graph.New()
	require.NoError(t, g.AddNode(1, "A"))
	err := g.AddNode(1, "C")
	require.ErrorIs(t, err, graph.ErrDuplicateNode)
}

func TestAddEdgeRejectsUnknownNode(t *testing.T) {
	g := graph.New()
	require.NoError(t, g.AddNode(1, "A"))
	err := g.AddEdge(graph.Handle{ID: 1}, graph.Handle{ID: 2})
	require.True(t, errors.Is(err, graph.ErrNodeNotFound))
}

func TestForEachHandleVisitsInInsertionOrder(t *testing.T) {
	g := build3Path(t)
	var lengths []uint64
	g.ForEachHandle(func(h graph.Handle) {
		l, err := g.Length(h)
		require.NoError(t, err)
		lengths = append(lengths, l)
	})
	require.Equal(t, []uint64{10, 20, 30}, lengths)
}

func TestUnpackNumberIsZeroBased(t *testing.T) {
	require.Equal(t, uint64(0), graph.UnpackNumber(graph.Handle{ID: 1}))
	require.Equal(t, uint64(2), graph.UnpackNumber(graph.Handle{ID: 3}))
}

func TestValidateCompactIDs(t *testing.T) {
	g := graph.New()
	require.NoError(t, g.AddNode(1, "A"))
	require.NoError(t, g.AddNode(3, "A"))
	require.Error(t, g.ValidateCompactIDs())

	g2 := build3Path(t)
	require.NoError(t, g2.ValidateCompactIDs())
}

func TestWeaklyConnectedComponentsSplitsDisjointGraphs(t *testing.T) {
	g := graph.New()
	require.NoError(t, g.AddNode(1, "A"))
	require.NoError(t, g.AddNode(2, "A"))
	require.NoError(t, g.AddNode(3, "A"))
	require.NoError(t, g.AddNode(4, "A"))
	require.NoError(t, g.AddEdge(graph.Handle{ID: 1}, graph.Handle{ID: 2}))
	require.NoError(t, g.AddEdge(graph.Handle{ID: 3}, graph.Handle{ID: 4}))

	comps := g.WeaklyConnectedComponents()
	require.Len(t, comps, 2)

	total := 0
	for _, c := range comps {
		total += len(c)
	}
	require.Equal(t, 4, total)
}

func TestWeaklyConnectedComponentsSingleComponent(t *testing.T) {
	g := build3Path(t)
	comps := g.WeaklyConnectedComponents()
	require.Len(t, comps, 1)
	require.Len(t, comps[0], 3)
}
