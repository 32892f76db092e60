// Package day06 counts the ways to beat a boat-race record. Holding the
// button for h of T milliseconds travels h*(T-h); the winning holds form a
// window symmetric around T/2 found from the quadratic's roots.
package day06

import (
	"context"
	"fmt"
	"math"
	"strings"

	"github.com/katalvlaran/aoc2023/internal/puzzle"
)

func init() {
	puzzle.Register(puzzle.Day{
		Number: 6,
		Title:  "Wait For It",
		Part1: func(_ context.Context, in string) (puzzle.Answer, error) {
			races, err := Parse(in, false)
			if err != nil {
				return 0, err
			}
			return puzzle.Answer(Product(races)), nil
		},
		Part2: func(_ context.Context, in string) (puzzle.Answer, error) {
			races, err := Parse(in, true)
			if err != nil {
				return 0, err
			}
			return puzzle.Answer(Product(races)), nil
		},
	})
}

// Race is one time limit and the record distance to beat.
type Race struct {
	Time, Record int64
}

// Parse reads the "Time:" and "Distance:" lines. With joined set, the
// digits on each line are read as one number (bad kerning).
func Parse(in string, joined bool) ([]Race, error) {
	lines := puzzle.Lines(in)
	if len(lines) != 2 {
		return nil, puzzle.BadInput(1, "want Time and Distance lines, got %d lines", len(lines))
	}
	times, err := field(lines[0], "Time:", joined)
	if err != nil {
		return nil, puzzle.BadInput(1, "%v", err)
	}
	dists, err := field(lines[1], "Distance:", joined)
	if err != nil {
		return nil, puzzle.BadInput(2, "%v", err)
	}
	if len(times) != len(dists) {
		return nil, puzzle.BadInput(2, "%d times but %d distances", len(times), len(dists))
	}
	races := make([]Race, len(times))
	for i := range times {
		races[i] = Race{Time: times[i], Record: dists[i]}
	}

	return races, nil
}

func field(line, prefix string, joined bool) ([]int64, error) {
	rest, ok := strings.CutPrefix(line, prefix)
	if !ok {
		return nil, fmt.Errorf("missing %q", prefix)
	}
	if joined {
		rest = strings.Join(strings.Fields(rest), "")
	}

	return puzzle.Ints(rest)
}

// isqrt returns floor(sqrt(n)) for n >= 0.
func isqrt(n int64) int64 {
	r := int64(math.Sqrt(float64(n)))
	for r*r > n {
		r--
	}
	for (r+1)*(r+1) <= n {
		r++
	}

	return r
}

// Ways counts the hold times that beat the record.
func (r Race) Ways() int64 {
	T, D := r.Time, r.Record
	// the window is symmetric around T/2, so it is empty iff the middle loses
	if mid := T / 2; T < 0 || mid*(T-mid) <= D {
		return 0
	}
	disc := T*T - 4*D
	lo := (T - isqrt(disc)) / 2
	if lo < 0 {
		lo = 0
	}
	for lo <= T && lo*(T-lo) <= D {
		lo++
	}
	for lo > 0 && (lo-1)*(T-lo+1) > D {
		lo--
	}
	hi := T - lo
	if lo > hi {
		return 0
	}

	return hi - lo + 1
}

// Product multiplies the ways of every race.
func Product(races []Race) int64 {
	p := int64(1)
	for _, r := range races {
		p *= r.Ways()
	}

	return p
}
