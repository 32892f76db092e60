// Package day13 finds the line of reflection in each pattern of ash and
// rocks. Part 2 looks for the line that becomes a reflection after fixing
// exactly one smudge.
package day13

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/aoc2023/gridgraph"
	"github.com/katalvlaran/aoc2023/internal/puzzle"
)

// ErrNoMirror is returned when a pattern has no matching reflection line.
var ErrNoMirror = errors.New("day13: no reflection line")

func init() {
	puzzle.Register(puzzle.Day{
		Number: 13,
		Title:  "Point of Incidence",
		Part1: func(_ context.Context, in string) (puzzle.Answer, error) {
			return solve(in, 0)
		},
		Part2: func(_ context.Context, in string) (puzzle.Answer, error) {
			return solve(in, 1)
		},
	})
}

func solve(in string, smudges int) (puzzle.Answer, error) {
	pats, err := Parse(in)
	if err != nil {
		return 0, err
	}
	var sum int64
	for i, p := range pats {
		s, err := Score(p, smudges)
		if err != nil {
			return 0, fmt.Errorf("pattern %d: %w", i+1, err)
		}
		sum += int64(s)
	}

	return puzzle.Answer(sum), nil
}

// Parse splits the input into blank-line separated patterns.
func Parse(in string) ([]*gridgraph.Grid, error) {
	var out []*gridgraph.Grid
	for i, block := range puzzle.Blocks(in) {
		g, err := gridgraph.FromRows(block)
		if err != nil {
			return nil, fmt.Errorf("%w: pattern %d: %v", puzzle.ErrBadInput, i+1, err)
		}
		out = append(out, g)
	}
	if len(out) == 0 {
		return nil, puzzle.BadInput(1, "no patterns")
	}

	return out, nil
}

// Score returns 100 times the rows above a horizontal mirror, or the columns
// left of a vertical one, for the mirror with exactly smudges mismatches.
func Score(g *gridgraph.Grid, smudges int) (int, error) {
	if n, ok := Mirror(g.Rows(), smudges); ok {
		return 100 * n, nil
	}
	if n, ok := Mirror(g.Transpose().Rows(), smudges); ok {
		return n, nil
	}

	return 0, ErrNoMirror
}

// Mirror returns the number of rows above the first horizontal line whose
// reflection differs from rows in exactly smudges cells.
func Mirror(rows []string, smudges int) (int, bool) {
	for line := 1; line < len(rows); line++ {
		diff := 0
		for a, b := line-1, line; a >= 0 && b < len(rows) && diff <= smudges; a, b = a-1, b+1 {
			diff += mismatches(rows[a], rows[b])
		}
		if diff == smudges {
			return line, true
		}
	}

	return 0, false
}

func mismatches(a, b string) int {
	n := 0
	for i := 0; i < len(a) && i < len(b); i++ {
		if a[i] != b[i] {
			n++
		}
	}

	return n
}
