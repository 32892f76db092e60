// Package day04 scores scratchcards. Part 1 doubles per matching number;
// part 2 lets each card with m matches win one copy of each of the next m
// cards.
package day04

import (
	"context"
	"strings"

	"github.com/katalvlaran/aoc2023/internal/puzzle"
)

func init() {
	puzzle.Register(puzzle.Day{
		Number: 4,
		Title:  "Scratchcards",
		Part1: func(_ context.Context, in string) (puzzle.Answer, error) {
			m, err := Parse(in)
			if err != nil {
				return 0, err
			}
			return puzzle.Answer(Points(m)), nil
		},
		Part2: func(_ context.Context, in string) (puzzle.Answer, error) {
			m, err := Parse(in)
			if err != nil {
				return 0, err
			}
			return puzzle.Answer(Cards(m)), nil
		},
	})
}

// Parse returns, per card, how many of its numbers are winning numbers.
func Parse(in string) ([]int, error) {
	lines := puzzle.Lines(in)
	matches := make([]int, len(lines))
	for i, line := range lines {
		_, body, ok := strings.Cut(line, ":")
		if !ok {
			return nil, puzzle.BadInput(i+1, "missing ':'")
		}
		winStr, haveStr, ok := strings.Cut(body, "|")
		if !ok {
			return nil, puzzle.BadInput(i+1, "missing '|'")
		}
		win, err := puzzle.Ints(winStr)
		if err != nil {
			return nil, puzzle.BadInput(i+1, "%v", err)
		}
		have, err := puzzle.Ints(haveStr)
		if err != nil {
			return nil, puzzle.BadInput(i+1, "%v", err)
		}
		set := make(map[int64]bool, len(win))
		for _, w := range win {
			set[w] = true
		}
		for _, h := range have {
			if set[h] {
				matches[i]++
			}
		}
	}

	return matches, nil
}

// Points sums 2^(m-1) over cards with m > 0 matches.
func Points(matches []int) int64 {
	var sum int64
	for _, m := range matches {
		if m > 0 {
			sum += 1 << (m - 1)
		}
	}

	return sum
}

// Cards counts every card held once all won copies are processed. Wins
// running past the last card are dropped.
func Cards(matches []int) int64 {
	copies := make([]int64, len(matches))
	for i := range copies {
		copies[i] = 1
	}
	var total int64
	for i, m := range matches {
		total += copies[i]
		for j := i + 1; j <= i+m && j < len(matches); j++ {
			copies[j] += copies[i]
		}
	}

	return total
}
