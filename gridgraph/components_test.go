package gridgraph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/aoc2023/gridgraph"
)

func land(_ gridgraph.Point, r rune) bool { return r == '#' }

// TestConnectedComponents checks Conn4 versus Conn8 on a diagonal pattern.
func TestConnectedComponents(t *testing.T) {
	g, err := gridgraph.Parse("#.#\n.#.\n#.#")
	require.NoError(t, err)

	assert.Len(t, g.ConnectedComponents(gridgraph.Conn4, land), 5)
	comps := g.ConnectedComponents(gridgraph.Conn8, land)
	require.Len(t, comps, 1)
	assert.Len(t, comps[0], 5)
	assert.Equal(t, gridgraph.Point{}, comps[0][0], "first component starts at first land cell")
}

func TestFloodFill(t *testing.T) {
	g, err := gridgraph.Parse("....\n.##.\n.#..\n....")
	require.NoError(t, err)
	open := func(_ gridgraph.Point, r rune) bool { return r == '.' }

	seen := g.FloodFill(gridgraph.Point{}, gridgraph.Conn4, open)
	n := 0
	for _, s := range seen {
		if s {
			n++
		}
	}
	assert.Equal(t, 13, n)

	// a blocked start fills nothing
	seen = g.FloodFill(gridgraph.Point{X: 1, Y: 1}, gridgraph.Conn4, open)
	for _, s := range seen {
		assert.False(t, s)
	}
}

func TestToCoreGraph(t *testing.T) {
	g, err := gridgraph.Parse("..#\n.#.")
	require.NoError(t, err)
	open := func(_ gridgraph.Point, r rune) bool { return r == '.' }
	always := func(_, _ gridgraph.Point) bool { return true }

	cg, err := g.ToCoreGraph(open, always)
	require.NoError(t, err)
	assert.Equal(t, 4, cg.VertexCount())
	// (0,0)-(1,0), (0,0)-(0,1); (2,1) is isolated
	assert.Equal(t, 2, cg.EdgeCount())
	assert.True(t, cg.HasEdge("1,0", "0,0"))

	p, err := gridgraph.ParseVertexID("2,1")
	require.NoError(t, err)
	assert.Equal(t, gridgraph.Point{X: 2, Y: 1}, p)
	_, err = gridgraph.ParseVertexID("nope")
	assert.Error(t, err)
}
