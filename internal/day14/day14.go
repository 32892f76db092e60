// Package day14 tilts a platform of round ('O') and cube ('#') rocks and
// measures the load on its north support beams.
package day14

import (
	"context"

	"github.com/katalvlaran/aoc2023/gridgraph"
	"github.com/katalvlaran/aoc2023/internal/puzzle"
)

// Cycles is the number of spin cycles part 2 runs.
const Cycles = 1_000_000_000

func init() {
	puzzle.Register(puzzle.Day{
		Number: 14,
		Title:  "Parabolic Reflector Dish",
		Part1: func(_ context.Context, in string) (puzzle.Answer, error) {
			g, err := Parse(in)
			if err != nil {
				return 0, err
			}
			TiltNorth(g)
			return puzzle.Answer(Load(g)), nil
		},
		Part2: func(ctx context.Context, in string) (puzzle.Answer, error) {
			g, err := Parse(in)
			if err != nil {
				return 0, err
			}
			g, err = SpinMany(ctx, g, Cycles)
			if err != nil {
				return 0, err
			}
			return puzzle.Answer(Load(g)), nil
		},
	})
}

// Parse reads the platform; only 'O', '#' and '.' are allowed.
func Parse(in string) (*gridgraph.Grid, error) {
	g, err := gridgraph.Parse(in)
	if err != nil {
		return nil, puzzle.BadInput(1, "%v", err)
	}
	for y, row := range g.Rows() {
		for _, r := range row {
			if r != 'O' && r != '#' && r != '.' {
				return nil, puzzle.BadInput(y+1, "unexpected %q", r)
			}
		}
	}

	return g, nil
}

// TiltNorth rolls every round rock north until it hits a cube rock, another
// round rock or the edge.
func TiltNorth(g *gridgraph.Grid) {
	for x := 0; x < g.Width(); x++ {
		free := 0
		for y := 0; y < g.Height(); y++ {
			p := gridgraph.Point{X: x, Y: y}
			switch g.At(p) {
			case '#':
				free = y + 1
			case 'O':
				if free != y {
					_ = g.Set(gridgraph.Point{X: x, Y: free}, 'O')
					_ = g.Set(p, '.')
				}
				free++
			}
		}
	}
}

// Spin runs one cycle of tilts north, west, south and east.
func Spin(g *gridgraph.Grid) *gridgraph.Grid {
	for range 4 {
		TiltNorth(g)
		g = g.RotateCW()
	}

	return g
}

// SpinMany runs n spin cycles, skipping ahead once the layouts repeat.
func SpinMany(ctx context.Context, g *gridgraph.Grid, n int) (*gridgraph.Grid, error) {
	seen := map[string]int{g.String(): 0}
	for i := 1; i <= n; i++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		g = Spin(g)
		key := g.String()
		first, ok := seen[key]
		if !ok {
			seen[key] = i
			continue
		}
		// Layout i equals layout first; fast-forward over whole periods.
		period := i - first
		for range (n - i) % period {
			g = Spin(g)
		}
		return g, nil
	}

	return g, nil
}

// Load sums, over round rocks, the number of rows from the rock to the
// south edge inclusive.
func Load(g *gridgraph.Grid) int64 {
	var load int64
	for y, row := range g.Rows() {
		for _, r := range row {
			if r == 'O' {
				load += int64(g.Height() - y)
			}
		}
	}

	return load
}
