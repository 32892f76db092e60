package day06_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/aoc2023/internal/day06"
	"github.com/katalvlaran/aoc2023/internal/puzzle"
)

const sample = `Time:      7  15   30
Distance:  9  40  200`

func TestSample(t *testing.T) {
	races, err := day06.Parse(sample, false)
	require.NoError(t, err)
	require.Len(t, races, 3)
	assert.Equal(t, []int64{4, 8, 9}, []int64{races[0].Ways(), races[1].Ways(), races[2].Ways()})
	assert.Equal(t, int64(288), day06.Product(races))

	races, err = day06.Parse(sample, true)
	require.NoError(t, err)
	assert.Equal(t, []day06.Race{{Time: 71530, Record: 940200}}, races)
	assert.Equal(t, int64(71503), day06.Product(races))
}

// TestWays_MatchesBruteForce checks the closed form against a direct count.
func TestWays_MatchesBruteForce(t *testing.T) {
	for T := int64(0); T <= 40; T++ {
		for D := int64(0); D <= 420; D += 7 {
			var want int64
			for h := int64(0); h <= T; h++ {
				if h*(T-h) > D {
					want++
				}
			}
			assert.Equal(t, want, day06.Race{Time: T, Record: D}.Ways(), "T=%d D=%d", T, D)
		}
	}
}

func TestParse_Errors(t *testing.T) {
	for _, in := range []string{
		"Time: 1 2",
		"Time: 1 2\nDistance: 3",
		"Tim: 1\nDistance: 3",
		"Time: 1\nDistance: x",
	} {
		_, err := day06.Parse(in, false)
		assert.ErrorIs(t, err, puzzle.ErrBadInput, in)
	}
}

func TestParse_MissingPrefixLine(t *testing.T) {
	_, err := day06.Parse("Tim: 1\nDistance: 3", false)
	require.ErrorIs(t, err, puzzle.ErrBadInput)
	assert.Contains(t, err.Error(), `line 1: missing "Time:"`)

	_, err = day06.Parse("Time: 1\nDist: 3", true)
	require.ErrorIs(t, err, puzzle.ErrBadInput)
	assert.Contains(t, err.Error(), `line 2: missing "Distance:"`)
	assert.NotContains(t, err.Error(), "line 0")
}
