package day24_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/aoc2023/internal/day24"
	"github.com/katalvlaran/aoc2023/internal/puzzle"
	"github.com/katalvlaran/aoc2023/matrix"
)

const sample = `19, 13, 30 @ -2,  1, -2
18, 19, 22 @ -1, -1, -2
20, 25, 34 @ -2, -2, -4
12, 31, 28 @ -1, -2, -1
20, 19, 15 @  1, -5, -3`

var sampleArea = day24.Area{Min: 7, Max: 27}

func TestParse(t *testing.T) {
	hs, err := day24.Parse(sample)
	require.NoError(t, err)
	require.Len(t, hs, 5)
	assert.Equal(t, day24.Hail{Pos: day24.Vec{19, 13, 30}, Vel: day24.Vec{-2, 1, -2}}, hs[0])
	assert.Equal(t, day24.Vec{1, -5, -3}, hs[4].Vel)
}

func TestCrossings(t *testing.T) {
	hs, err := day24.Parse(sample)
	require.NoError(t, err)
	assert.Equal(t, int64(2), day24.Crossings(hs, sampleArea))

	// inside at x=14.333, y=15.333
	assert.True(t, day24.CrossXY(hs[0], hs[1], sampleArea))
	// outside at x=6.2, y=19.4
	assert.False(t, day24.CrossXY(hs[0], hs[3], sampleArea))
	// in the past for the first stone
	assert.False(t, day24.CrossXY(hs[0], hs[4], sampleArea))
	// parallel
	assert.False(t, day24.CrossXY(hs[1], hs[2], sampleArea))
}

func TestThrow(t *testing.T) {
	hs, err := day24.Parse(sample)
	require.NoError(t, err)
	pos, vel, err := day24.Throw(hs)
	require.NoError(t, err)
	assert.Equal(t, day24.Vec{24, 13, 10}, pos)
	assert.Equal(t, day24.Vec{-3, 1, 2}, vel)
}

func TestThrow_Errors(t *testing.T) {
	hs, err := day24.Parse(sample)
	require.NoError(t, err)
	_, _, err = day24.Throw(hs[:2])
	assert.ErrorIs(t, err, day24.ErrTooFewStones)

	still := []day24.Hail{
		{Pos: day24.Vec{0, 0, 0}, Vel: day24.Vec{1, 0, 0}},
		{Pos: day24.Vec{1, 0, 0}, Vel: day24.Vec{1, 0, 0}},
		{Pos: day24.Vec{2, 0, 0}, Vel: day24.Vec{1, 0, 0}},
	}
	_, _, err = day24.Throw(still)
	assert.ErrorIs(t, err, matrix.ErrSingular)
}

func TestParse_Errors(t *testing.T) {
	for _, in := range []string{"1, 2, 3 -1, 0, 0", "1, 2 @ 1, 1, 1", "1, 2, x @ 1, 1, 1", "1, 2, 3 @ 1, 1"} {
		_, err := day24.Parse(in)
		assert.ErrorIs(t, err, puzzle.ErrBadInput, in)
	}
}
