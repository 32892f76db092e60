package day12_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/aoc2023/internal/day12"
	"github.com/katalvlaran/aoc2023/internal/puzzle"
)

const sample = `???.### 1,1,3
.??..??...?##. 1,1,3
?#?#?#?#?#?#?#? 1,3,1,6
????.#...#... 4,1,1
????.######..#####. 1,6,5
?###???????? 3,2,1`

func TestArrangements(t *testing.T) {
	recs, err := day12.Parse(sample)
	require.NoError(t, err)

	folded := []int64{1, 4, 1, 1, 4, 10}
	unfolded := []int64{1, 16384, 1, 16, 2500, 506250}
	for i, r := range recs {
		assert.Equal(t, folded[i], r.Arrangements(), r.Springs)
		assert.Equal(t, unfolded[i], r.Unfold(day12.Folds).Arrangements(), r.Springs)
	}
}

func TestRegistered(t *testing.T) {
	d, err := puzzle.Lookup(12)
	require.NoError(t, err)
	p1, err := d.Part1(context.Background(), sample)
	require.NoError(t, err)
	assert.Equal(t, puzzle.Answer(21), p1)
	p2, err := d.Part2(context.Background(), sample)
	require.NoError(t, err)
	assert.Equal(t, puzzle.Answer(525152), p2)
}

func TestUnfold(t *testing.T) {
	r := day12.Record{Springs: ".#", Groups: []int{1}}.Unfold(5)
	assert.Equal(t, ".#?.#?.#?.#?.#", r.Springs)
	assert.Equal(t, []int{1, 1, 1, 1, 1}, r.Groups)
}

func TestEdgeCases(t *testing.T) {
	assert.Equal(t, int64(0), day12.Record{Springs: "#", Groups: nil}.Arrangements())
	assert.Equal(t, int64(1), day12.Record{Springs: "??", Groups: nil}.Arrangements())
	assert.Equal(t, int64(0), day12.Record{Springs: "##", Groups: []int{1}}.Arrangements())
	assert.Equal(t, int64(3), day12.Record{Springs: "???", Groups: []int{1}}.Arrangements())
}

func TestParse_Errors(t *testing.T) {
	for _, in := range []string{"???", "?x? 1", "??? 1,a", "??? 0"} {
		_, err := day12.Parse(in)
		assert.ErrorIs(t, err, puzzle.ErrBadInput, in)
	}
}
