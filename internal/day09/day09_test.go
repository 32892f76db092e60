package day09_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/aoc2023/internal/day09"
	"github.com/katalvlaran/aoc2023/internal/puzzle"
)

const sample = `0 3 6 9 12 15
1 3 6 10 15 21
10 13 16 21 30 45`

func TestSample(t *testing.T) {
	seqs, err := day09.Parse(sample)
	require.NoError(t, err)
	assert.Equal(t, int64(114), day09.SumExtrapolated(seqs, true))
	assert.Equal(t, int64(2), day09.SumExtrapolated(seqs, false))
}

func TestExtrapolate(t *testing.T) {
	assert.Equal(t, int64(68), day09.Extrapolate([]int64{10, 13, 16, 21, 30, 45}, true))
	assert.Equal(t, int64(5), day09.Extrapolate([]int64{10, 13, 16, 21, 30, 45}, false))
	assert.Equal(t, int64(7), day09.Extrapolate([]int64{7}, true))
	assert.Equal(t, int64(-4), day09.Extrapolate([]int64{-2, -3}, true))
}

func TestParse_Errors(t *testing.T) {
	_, err := day09.Parse("1 2\n1 x")
	assert.ErrorIs(t, err, puzzle.ErrBadInput)
}
