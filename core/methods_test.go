package core_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/aoc2023/core"
)

func TestAddVertex(t *testing.T) {
	g := core.NewGraph()
	require.ErrorIs(t, g.AddVertex(""), core.ErrEmptyVertexID)

	require.NoError(t, g.AddVertex("A"))
	require.NoError(t, g.AddVertex("A")) // idempotent
	assert.True(t, g.HasVertex("A"))
	assert.False(t, g.HasVertex("B"))
	assert.False(t, g.HasVertex(""))
	assert.Equal(t, 1, g.VertexCount())
}

func TestAddEdge_Constraints(t *testing.T) {
	g := core.NewGraph()

	_, err := g.AddEdge("", "B", 0)
	assert.ErrorIs(t, err, core.ErrEmptyVertexID)

	_, err = g.AddEdge("A", "B", 3)
	assert.ErrorIs(t, err, core.ErrBadWeight)

	_, err = g.AddEdge("A", "A", 0)
	assert.ErrorIs(t, err, core.ErrLoopNotAllowed)

	id, err := g.AddEdge("A", "B", 0)
	require.NoError(t, err)
	assert.Equal(t, "e1", id)

	// undirected: B→A is the same pair
	_, err = g.AddEdge("B", "A", 0)
	assert.ErrorIs(t, err, core.ErrMultiEdgeNotAllowed)

	m := core.NewGraph(core.WithMultiEdges(), core.WithLoops())
	_, err = m.AddEdge("A", "B", 0)
	require.NoError(t, err)
	_, err = m.AddEdge("A", "B", 0)
	require.NoError(t, err)
	_, err = m.AddEdge("C", "C", 0)
	require.NoError(t, err)
	assert.Equal(t, 3, m.EdgeCount())
}

func TestNeighbors_Orientation(t *testing.T) {
	g := core.NewGraph(core.WithWeighted())
	_, _ = g.AddEdge("A", "B", 4)
	_, _ = g.AddEdge("C", "A", 2)

	nbrs, err := g.Neighbors("A")
	require.NoError(t, err)
	require.Len(t, nbrs, 2)
	assert.Equal(t, "B", nbrs[0].To)
	assert.Equal(t, "C", nbrs[1].To)
	for _, e := range nbrs {
		assert.Equal(t, "A", e.From, "edges must be oriented away from the queried vertex")
	}
	assert.Equal(t, int64(2), nbrs[1].Weight)

	// the stored edge is untouched by mirroring
	edges := g.Edges()
	assert.Equal(t, "C", edges[1].From)

	_, err = g.Neighbors("Z")
	assert.ErrorIs(t, err, core.ErrVertexNotFound)
}

func TestDirectedGraph(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true))
	_, _ = g.AddEdge("A", "B", 0)

	assert.True(t, g.HasEdge("A", "B"))
	assert.False(t, g.HasEdge("B", "A"))

	ids, err := g.NeighborIDs("B")
	require.NoError(t, err)
	assert.Empty(t, ids)

	// reverse edge is a distinct edge in a directed graph
	_, err = g.AddEdge("B", "A", 0)
	require.NoError(t, err)
}

func TestRemoveEdge(t *testing.T) {
	g := core.NewGraph()
	_, _ = g.AddEdge("A", "B", 0)
	_, _ = g.AddEdge("B", "C", 0)

	require.NoError(t, g.RemoveEdge("B", "A"))
	assert.False(t, g.HasEdge("A", "B"))
	assert.False(t, g.HasEdge("B", "A"))
	assert.True(t, g.HasEdge("C", "B"))
	assert.Equal(t, 1, g.EdgeCount())
	assert.Equal(t, 3, g.VertexCount(), "vertices survive edge removal")

	assert.ErrorIs(t, g.RemoveEdge("A", "B"), core.ErrEdgeNotFound)
}

func TestVerticesAndEdges_Deterministic(t *testing.T) {
	g := core.NewGraph()
	for _, pair := range [][2]string{{"d", "a"}, {"c", "b"}, {"a", "c"}} {
		_, err := g.AddEdge(pair[0], pair[1], 0)
		require.NoError(t, err)
	}
	assert.Equal(t, []string{"a", "b", "c", "d"}, g.Vertices())

	edges := g.Edges()
	require.Len(t, edges, 3)
	assert.Equal(t, []string{"e1", "e2", "e3"}, []string{edges[0].ID, edges[1].ID, edges[2].ID})
}

func TestClone_Independent(t *testing.T) {
	g := core.NewGraph(core.WithWeighted())
	_, _ = g.AddEdge("A", "B", 1)

	c := g.Clone()
	require.NoError(t, c.RemoveEdge("A", "B"))
	id, err := c.AddEdge("B", "C", 2)
	require.NoError(t, err)

	assert.Equal(t, "e2", id, "clone continues the edge ID sequence")
	assert.True(t, g.HasEdge("A", "B"))
	assert.False(t, g.HasVertex("C"))
	assert.True(t, c.Weighted())
}

func TestConcurrentReads(t *testing.T) {
	g := core.NewGraph()
	for i := 0; i < 50; i++ {
		_, _ = g.AddEdge("hub", string(rune('a'+i%26))+string(rune('a'+i/26)), 0)
	}

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ids, err := g.NeighborIDs("hub")
			assert.NoError(t, err)
			assert.Len(t, ids, 50)
		}()
	}
	wg.Wait()
}
