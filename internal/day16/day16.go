// Package day16 traces a light beam through mirrors ('/', '\') and
// splitters ('|', '-') and counts the energised tiles.
package day16

import (
	"context"

	"github.com/katalvlaran/aoc2023/gridgraph"
	"github.com/katalvlaran/aoc2023/internal/puzzle"
)

func init() {
	puzzle.Register(puzzle.Day{
		Number: 16,
		Title:  "The Floor Will Be Lava",
		Part1: func(_ context.Context, in string) (puzzle.Answer, error) {
			g, err := Parse(in)
			if err != nil {
				return 0, err
			}
			return puzzle.Answer(Energized(g, Beam{Dir: gridgraph.East})), nil
		},
		Part2: func(ctx context.Context, in string) (puzzle.Answer, error) {
			g, err := Parse(in)
			if err != nil {
				return 0, err
			}
			v, err := BestEntry(ctx, g)
			return puzzle.Answer(v), err
		},
	})
}

// Beam is a position and heading.
type Beam struct {
	Pos gridgraph.Point
	Dir gridgraph.Dir
}

// Parse reads the contraption layout.
func Parse(in string) (*gridgraph.Grid, error) {
	g, err := gridgraph.Parse(in)
	if err != nil {
		return nil, puzzle.BadInput(1, "%v", err)
	}
	for y, row := range g.Rows() {
		for _, r := range row {
			switch r {
			case '.', '/', '\\', '|', '-':
			default:
				return nil, puzzle.BadInput(y+1, "unexpected %q", r)
			}
		}
	}

	return g, nil
}

// deflect returns the headings a beam leaves tile r with when entering on d.
func deflect(r rune, d gridgraph.Dir) []gridgraph.Dir {
	vertical := d == gridgraph.North || d == gridgraph.South
	switch r {
	case '/':
		if vertical {
			return []gridgraph.Dir{d.TurnRight()}
		}
		return []gridgraph.Dir{d.TurnLeft()}
	case '\\':
		if vertical {
			return []gridgraph.Dir{d.TurnLeft()}
		}
		return []gridgraph.Dir{d.TurnRight()}
	case '|':
		if !vertical {
			return []gridgraph.Dir{gridgraph.North, gridgraph.South}
		}
	case '-':
		if vertical {
			return []gridgraph.Dir{gridgraph.East, gridgraph.West}
		}
	}

	return []gridgraph.Dir{d}
}

// Energized returns how many tiles the beam entering at start passes
// through. Beams are followed with an explicit stack; a (tile, heading)
// pair is processed at most once, so loops terminate.
func Energized(g *gridgraph.Grid, start Beam) int {
	seen := make([]uint8, g.Width()*g.Height())
	stack := []Beam{start}
	count := 0
	for len(stack) > 0 {
		b := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if !g.InBounds(b.Pos) {
			continue
		}
		i := g.Index(b.Pos)
		bit := uint8(1) << b.Dir
		if seen[i]&bit != 0 {
			continue
		}
		if seen[i] == 0 {
			count++
		}
		seen[i] |= bit
		for _, d := range deflect(g.At(b.Pos), b.Dir) {
			stack = append(stack, Beam{Pos: g.Step(b.Pos, d), Dir: d})
		}
	}

	return count
}

// BestEntry tries every edge tile heading inwards and returns the largest
// energised count.
func BestEntry(ctx context.Context, g *gridgraph.Grid) (int, error) {
	w, h := g.Width(), g.Height()
	var entries []Beam
	for x := 0; x < w; x++ {
		entries = append(entries,
			Beam{gridgraph.Point{X: x, Y: 0}, gridgraph.South},
			Beam{gridgraph.Point{X: x, Y: h - 1}, gridgraph.North})
	}
	for y := 0; y < h; y++ {
		entries = append(entries,
			Beam{gridgraph.Point{X: 0, Y: y}, gridgraph.East},
			Beam{gridgraph.Point{X: w - 1, Y: y}, gridgraph.West})
	}

	best := 0
	for _, b := range entries {
		if err := ctx.Err(); err != nil {
			return 0, err
		}
		best = max(best, Energized(g, b))
	}

	return best, nil
}
