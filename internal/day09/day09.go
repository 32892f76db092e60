// Package day09 extrapolates sequences by repeated differencing until the
// differences are all zero, then rebuilding one value forward (part 1) or
// backward (part 2).
package day09

import (
	"context"

	"github.com/katalvlaran/aoc2023/internal/puzzle"
)

func init() {
	puzzle.Register(puzzle.Day{
		Number: 9,
		Title:  "Mirage Maintenance",
		Part1: func(_ context.Context, in string) (puzzle.Answer, error) {
			seqs, err := Parse(in)
			if err != nil {
				return 0, err
			}
			return puzzle.Answer(SumExtrapolated(seqs, true)), nil
		},
		Part2: func(_ context.Context, in string) (puzzle.Answer, error) {
			seqs, err := Parse(in)
			if err != nil {
				return 0, err
			}
			return puzzle.Answer(SumExtrapolated(seqs, false)), nil
		},
	})
}

// Parse reads one whitespace-separated sequence per line.
func Parse(in string) ([][]int64, error) {
	lines := puzzle.Lines(in)
	out := make([][]int64, 0, len(lines))
	for i, l := range lines {
		seq, err := puzzle.Ints(l)
		if err != nil {
			return nil, puzzle.BadInput(i+1, "%v", err)
		}
		if len(seq) == 0 {
			return nil, puzzle.BadInput(i+1, "empty sequence")
		}
		out = append(out, seq)
	}

	return out, nil
}

// Extrapolate returns the value after the last element (forward) or before
// the first one.
func Extrapolate(seq []int64, forward bool) int64 {
	allZero := true
	diffs := make([]int64, 0, len(seq))
	for i := 1; i < len(seq); i++ {
		d := seq[i] - seq[i-1]
		diffs = append(diffs, d)
		if d != 0 {
			allZero = false
		}
	}
	edge := seq[0]
	if forward {
		edge = seq[len(seq)-1]
	}
	if allZero || len(diffs) == 0 {
		return edge
	}
	if forward {
		return edge + Extrapolate(diffs, true)
	}

	return edge - Extrapolate(diffs, false)
}

// SumExtrapolated sums Extrapolate over seqs.
func SumExtrapolated(seqs [][]int64, forward bool) int64 {
	var sum int64
	for _, s := range seqs {
		sum += Extrapolate(s, forward)
	}

	return sum
}
