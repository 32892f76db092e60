package day23_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/aoc2023/dfs"
	"github.com/katalvlaran/aoc2023/internal/day23"
	"github.com/katalvlaran/aoc2023/internal/puzzle"
)

const sample = `#.#####################
#.......#########...###
#######.#########.#.###
###.....#.>.>.###.#.###
###v#####.#v#.###.#.###
###.>...#.#.#.....#...#
###v###.#.#.#########.#
###...#.#.#.......#...#
#####.#.#.#######.#.###
#.....#.#.#.......#...#
#.#####.#.#.#########v#
#.#...#...#...###...>.#
#.#.#v#######v###.###v#
#...#.>.#...>.>.#.###.#
#####v#.#.###v#.#.###.#
#.....#...#...#.#.#...#
#.#########.###.#.#.###
#...###...#...#...#.###
###.###.#.###v#####v###
#...#...#.#.>.>.#.>.###
#.###.###.#.###.#.#v###
#.....###...###...#...#
#####################.#`

func TestLongestHike(t *testing.T) {
	m, err := day23.Parse(sample)
	require.NoError(t, err)

	got, err := m.LongestHike(context.Background(), true)
	require.NoError(t, err)
	assert.Equal(t, int64(94), got)

	got, err = m.LongestHike(context.Background(), false)
	require.NoError(t, err)
	assert.Equal(t, int64(154), got)
}

func TestGraph(t *testing.T) {
	m, err := day23.Parse(sample)
	require.NoError(t, err)

	g, err := m.Graph(false)
	require.NoError(t, err)
	// start, end and seven junctions
	assert.Equal(t, 9, g.VertexCount())
	for _, e := range g.Edges() {
		assert.True(t, g.HasEdge(e.To, e.From), "corridor %s->%s walkable both ways", e.From, e.To)
	}
}

func TestLongestHike_Corridor(t *testing.T) {
	m, err := day23.Parse("#.#\n#v#\n#.#")
	require.NoError(t, err)
	got, err := m.LongestHike(context.Background(), true)
	require.NoError(t, err)
	assert.Equal(t, int64(2), got)

	m, err = day23.Parse("#.#\n#^#\n#.#")
	require.NoError(t, err)
	_, err = m.LongestHike(context.Background(), true)
	assert.ErrorIs(t, err, dfs.ErrNoPath)
}

func TestParse_Errors(t *testing.T) {
	for _, in := range []string{"#.#\n#x#\n#.#", "###\n#.#\n#.#", "#..\n#.#"} {
		_, err := day23.Parse(in)
		assert.ErrorIs(t, err, puzzle.ErrBadInput, in)
	}
}
