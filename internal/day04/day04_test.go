package day04_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/aoc2023/internal/day04"
	"github.com/katalvlaran/aoc2023/internal/puzzle"
)

const sample = `Card 1: 41 48 83 86 17 | 83 86  6 31 17  9 48 53
Card 2: 13 32 20 16 61 | 61 30 68 82 17 32 24 19
Card 3:  1 21 53 59 44 | 69 82 63 72 16 21 14  1
Card 4: 41 92 73 84 69 | 59 84 76 51 58  5 54 83
Card 5: 87 83 26 28 32 | 88 30 70 12 93 22 82 36
Card 6: 31 18 13 56 72 | 74 77 10 23 35 67 36 11`

func TestSample(t *testing.T) {
	m, err := day04.Parse(sample)
	require.NoError(t, err)
	assert.Equal(t, []int{4, 2, 2, 1, 0, 0}, m)
	assert.Equal(t, int64(13), day04.Points(m))
	assert.Equal(t, int64(30), day04.Cards(m))
}

func TestCards_WinsPastEnd(t *testing.T) {
	assert.Equal(t, int64(3), day04.Cards([]int{5, 1}))
}

func TestParse_Errors(t *testing.T) {
	for _, in := range []string{"Card 1 1 2 | 3", "Card 1: 1 2 3", "Card 1: 1 x | 3"} {
		_, err := day04.Parse(in)
		assert.ErrorIs(t, err, puzzle.ErrBadInput, in)
	}
}
