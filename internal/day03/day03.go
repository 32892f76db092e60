// Package day03 reads an engine schematic: numbers touching a symbol
// (diagonals included) are part numbers, and a '*' touching exactly two
// part numbers is a gear.
package day03

import (
	"context"

	"github.com/katalvlaran/aoc2023/gridgraph"
	"github.com/katalvlaran/aoc2023/internal/puzzle"
)

func init() {
	puzzle.Register(puzzle.Day{
		Number: 3,
		Title:  "Gear Ratios",
		Part1: func(_ context.Context, in string) (puzzle.Answer, error) {
			s, err := Parse(in)
			if err != nil {
				return 0, err
			}
			return puzzle.Answer(s.Part1()), nil
		},
		Part2: func(_ context.Context, in string) (puzzle.Answer, error) {
			s, err := Parse(in)
			if err != nil {
				return 0, err
			}
			return puzzle.Answer(s.Part2()), nil
		},
	})
}

// Number is a run of digits on one row.
type Number struct {
	Value int64
	Start gridgraph.Point // leftmost digit
	Len   int
}

// Schematic is the parsed grid with its numbers located.
type Schematic struct {
	grid    *gridgraph.Grid
	Numbers []Number
}

func isDigit(r rune) bool { return r >= '0' && r <= '9' }

// IsSymbol reports whether r marks a part: anything but a digit or '.'.
func IsSymbol(r rune) bool { return r != '.' && !isDigit(r) }

// Parse reads a rectangular schematic of any size.
func Parse(in string) (*Schematic, error) {
	g, err := gridgraph.Parse(in)
	if err != nil {
		return nil, puzzle.BadInput(1, "%v", err)
	}
	s := &Schematic{grid: g}
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); {
			p := gridgraph.Point{X: x, Y: y}
			if !isDigit(g.At(p)) {
				x++
				continue
			}
			n := Number{Start: p}
			for ; x < g.Width() && isDigit(g.At(gridgraph.Point{X: x, Y: y})); x++ {
				n.Value = n.Value*10 + int64(g.At(gridgraph.Point{X: x, Y: y})-'0')
				n.Len++
			}
			s.Numbers = append(s.Numbers, n)
		}
	}

	return s, nil
}

// symbolsAround returns the distinct symbol cells touching n.
func (s *Schematic) symbolsAround(n Number) []gridgraph.Point {
	seen := make(map[gridgraph.Point]bool)
	var out []gridgraph.Point
	for i := 0; i < n.Len; i++ {
		cell := gridgraph.Point{X: n.Start.X + i, Y: n.Start.Y}
		for _, q := range s.grid.Neighbors(cell, gridgraph.Conn8) {
			if IsSymbol(s.grid.At(q)) && !seen[q] {
				seen[q] = true
				out = append(out, q)
			}
		}
	}

	return out
}

// Part1 sums every part number.
func (s *Schematic) Part1() int64 {
	var sum int64
	for _, n := range s.Numbers {
		if len(s.symbolsAround(n)) > 0 {
			sum += n.Value
		}
	}

	return sum
}

// Part2 sums the gear ratios.
func (s *Schematic) Part2() int64 {
	touching := make(map[gridgraph.Point][]int64)
	for _, n := range s.Numbers {
		for _, p := range s.symbolsAround(n) {
			if s.grid.At(p) == '*' {
				touching[p] = append(touching[p], n.Value)
			}
		}
	}
	var sum int64
	for _, nums := range touching {
		if len(nums) == 2 {
			sum += nums[0] * nums[1]
		}
	}

	return sum
}
