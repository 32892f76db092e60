package day13_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/aoc2023/internal/day13"
	"github.com/katalvlaran/aoc2023/internal/puzzle"
)

const sample = `#.##..##.
..#.##.#.
##......#
##......#
..#.##.#.
..##..##.
#.#.##.#.

#...##..#
#....#..#
..##..###
#####.##.
#####.##.
..##..###
#....#..#`

func TestScore(t *testing.T) {
	pats, err := day13.Parse(sample)
	require.NoError(t, err)
	require.Len(t, pats, 2)

	// scores per pattern, indexed by smudge count
	for smudges, want := range [][2]int{{5, 400}, {300, 100}} {
		for i, p := range pats {
			got, err := day13.Score(p, smudges)
			require.NoError(t, err)
			assert.Equal(t, want[i], got)
		}
	}
}

func TestRegistered(t *testing.T) {
	d, err := puzzle.Lookup(13)
	require.NoError(t, err)
	p1, err := d.Part1(context.Background(), sample)
	require.NoError(t, err)
	assert.Equal(t, puzzle.Answer(405), p1)
	p2, err := d.Part2(context.Background(), sample)
	require.NoError(t, err)
	assert.Equal(t, puzzle.Answer(400), p2)
}

func TestMirror(t *testing.T) {
	n, ok := day13.Mirror([]string{"ab", "ab", "cd"}, 0)
	assert.True(t, ok)
	assert.Equal(t, 1, n)

	_, ok = day13.Mirror([]string{"ab", "cd"}, 0)
	assert.False(t, ok)
}

func TestScore_SmudgeMovesLine(t *testing.T) {
	pats, err := day13.Parse(sample)
	require.NoError(t, err)
	rows := pats[0].Rows()

	// clean: no horizontal line, vertical line after column 5
	_, ok := day13.Mirror(rows, 0)
	assert.False(t, ok)
	// one smudge: horizontal line below row 3 instead
	n, ok := day13.Mirror(rows, 1)
	require.True(t, ok)
	assert.Equal(t, 3, n)

	// rows 1 and 2 differ in one cell and rows 0 and 3 match
	rows = []string{"###", "#..", "##.", "###"}
	n, ok = day13.Mirror(rows, 1)
	require.True(t, ok)
	assert.Equal(t, 2, n)
	_, ok = day13.Mirror(rows, 0)
	assert.False(t, ok)
}

func TestScore_NoMirror(t *testing.T) {
	pats, err := day13.Parse("#.\n..")
	require.NoError(t, err)
	_, err = day13.Score(pats[0], 0)
	assert.ErrorIs(t, err, day13.ErrNoMirror)
}

func TestParse_Errors(t *testing.T) {
	_, err := day13.Parse("#.\n#")
	assert.ErrorIs(t, err, puzzle.ErrBadInput)
	_, err = day13.Parse("")
	assert.ErrorIs(t, err, puzzle.ErrBadInput)
}
