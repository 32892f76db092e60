package day11_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/aoc2023/internal/day11"
	"github.com/katalvlaran/aoc2023/internal/puzzle"
)

const sample = `...#......
.......#..
#.........
..........
......#...
.#........
.........#
..........
.......#..
#...#.....`

func TestDistances(t *testing.T) {
	img, err := day11.Parse(sample)
	require.NoError(t, err)
	assert.Len(t, img.Galaxies, 9)
	assert.Equal(t, []int{3, 7}, img.EmptyRows)
	assert.Equal(t, []int{2, 5, 8}, img.EmptyCols)

	assert.Equal(t, int64(374), img.Distances(day11.YoungFactor))
	assert.Equal(t, int64(1030), img.Distances(10))
	assert.Equal(t, int64(8410), img.Distances(100))
}

func TestParse_Errors(t *testing.T) {
	_, err := day11.Parse("#.\n.x")
	assert.ErrorIs(t, err, puzzle.ErrBadInput)
	_, err = day11.Parse("#.\n.")
	assert.ErrorIs(t, err, puzzle.ErrBadInput)
}
