// Package day17 steers a crucible across a city block of heat-loss digits.
// The crucible must travel between MinRun and MaxRun blocks before it turns
// or stops and may never reverse. The cheapest route is found with a
// Dijkstra search over (position, heading, run) states.
package day17

import (
	"context"

	"github.com/katalvlaran/aoc2023/dijkstra"
	"github.com/katalvlaran/aoc2023/gridgraph"
	"github.com/katalvlaran/aoc2023/internal/puzzle"
)

// Movement rules for the two crucibles.
var (
	Crucible      = Rules{MinRun: 1, MaxRun: 3}
	UltraCrucible = Rules{MinRun: 4, MaxRun: 10}
)

func init() {
	puzzle.Register(puzzle.Day{
		Number: 17,
		Title:  "Clumsy Crucible",
		Part1: func(ctx context.Context, in string) (puzzle.Answer, error) {
			return solve(ctx, in, Crucible)
		},
		Part2: func(ctx context.Context, in string) (puzzle.Answer, error) {
			return solve(ctx, in, UltraCrucible)
		},
	})
}

func solve(ctx context.Context, in string, rules Rules) (puzzle.Answer, error) {
	c, err := Parse(in)
	if err != nil {
		return 0, err
	}
	v, err := c.MinHeatLoss(ctx, rules)

	return puzzle.Answer(v), err
}

// Rules bounds how many blocks the crucible moves in one heading.
type Rules struct {
	MinRun int
	MaxRun int
}

// City is the grid of heat-loss digits.
type City struct {
	grid *gridgraph.Grid
}

// Parse reads the city; every tile must be a digit.
func Parse(in string) (*City, error) {
	g, err := gridgraph.Parse(in)
	if err != nil {
		return nil, puzzle.BadInput(1, "%v", err)
	}
	for y, row := range g.Rows() {
		for _, r := range row {
			if r < '0' || r > '9' {
				return nil, puzzle.BadInput(y+1, "unexpected %q", r)
			}
		}
	}

	return &City{grid: g}, nil
}

// state is the search node. run 0 marks the start, before any move.
type state struct {
	pos gridgraph.Point
	dir gridgraph.Dir
	run int
}

func (c *City) cost(p gridgraph.Point) int64 { return int64(c.grid.At(p) - '0') }

// MinHeatLoss returns the least heat lost getting from the top-left block
// to the bottom-right one, entering the start block's loss excluded.
func (c *City) MinHeatLoss(ctx context.Context, rules Rules) (int64, error) {
	goal := gridgraph.Point{X: c.grid.Width() - 1, Y: c.grid.Height() - 1}

	successors := func(s state) []dijkstra.Step[state] {
		out := make([]dijkstra.Step[state], 0, 3)
		for _, d := range gridgraph.Dirs {
			run := 1
			switch {
			case s.run == 0:
			case d == s.dir.Reverse():
				continue
			case d == s.dir:
				if s.run >= rules.MaxRun {
					continue
				}
				run = s.run + 1
			case s.run < rules.MinRun:
				continue
			}
			next := c.grid.Step(s.pos, d)
			if !c.grid.InBounds(next) {
				continue
			}
			out = append(out, dijkstra.Step[state]{
				State: state{pos: next, dir: d, run: run},
				Cost:  c.cost(next),
			})
		}
		return out
	}
	isGoal := func(s state) bool {
		return s.pos == goal && (s.run == 0 || s.run >= rules.MinRun)
	}

	res, err := dijkstra.Search(state{}, successors, isGoal, dijkstra.WithContext(ctx))
	if err != nil {
		return 0, err
	}

	return res.Cost, nil
}
