// Package day18 computes the volume of a lagoon dug along a rectilinear
// dig plan. The area inside the trench comes from the shoelace formula and
// Pick's theorem gives the interior lattice points:
//
//	A = I + B/2 - 1  =>  I + B = A + B/2 + 1
package day18

import (
	"context"
	"strconv"
	"strings"

	"github.com/katalvlaran/aoc2023/gridgraph"
	"github.com/katalvlaran/aoc2023/internal/puzzle"
)

func init() {
	puzzle.Register(puzzle.Day{
		Number: 18,
		Title:  "Lavaduct Lagoon",
		Part1: func(_ context.Context, in string) (puzzle.Answer, error) {
			return solve(in, false)
		},
		Part2: func(_ context.Context, in string) (puzzle.Answer, error) {
			return solve(in, true)
		},
	})
}

func solve(in string, fromColor bool) (puzzle.Answer, error) {
	plan, err := Parse(in)
	if err != nil {
		return 0, err
	}
	steps := make([]Step, len(plan))
	for i, s := range plan {
		steps[i] = s.Plain
		if fromColor {
			steps[i] = s.Color
		}
	}

	return puzzle.Answer(Volume(steps)), nil
}

// Step is one straight trench segment.
type Step struct {
	Dir   gridgraph.Dir
	Count int64
}

// Instruction carries both readings of a dig plan line.
type Instruction struct {
	Plain Step // "R 6"
	Color Step // "(#70c710)": five hex digits of distance, then the heading
}

var letters = map[string]gridgraph.Dir{
	"U": gridgraph.North,
	"R": gridgraph.East,
	"D": gridgraph.South,
	"L": gridgraph.West,
}

// hexDirs maps the last hex digit to a heading: 0=R, 1=D, 2=L, 3=U.
var hexDirs = [4]gridgraph.Dir{gridgraph.East, gridgraph.South, gridgraph.West, gridgraph.North}

// Parse reads lines like "R 6 (#70c710)".
func Parse(in string) ([]Instruction, error) {
	lines := puzzle.Lines(in)
	out := make([]Instruction, 0, len(lines))
	for i, l := range lines {
		f := strings.Fields(l)
		if len(f) != 3 {
			return nil, puzzle.BadInput(i+1, "want 3 fields, got %d", len(f))
		}
		d, ok := letters[f[0]]
		if !ok {
			return nil, puzzle.BadInput(i+1, "bad direction %q", f[0])
		}
		n, err := strconv.ParseInt(f[1], 10, 64)
		if err != nil || n <= 0 {
			return nil, puzzle.BadInput(i+1, "bad distance %q", f[1])
		}
		color, ok := strings.CutPrefix(f[2], "(#")
		color, ok2 := strings.CutSuffix(color, ")")
		if !ok || !ok2 || len(color) != 6 {
			return nil, puzzle.BadInput(i+1, "bad colour %q", f[2])
		}
		dist, err := strconv.ParseInt(color[:5], 16, 64)
		if err != nil {
			return nil, puzzle.BadInput(i+1, "bad colour %q", f[2])
		}
		hd := color[5] - '0'
		if hd > 3 {
			return nil, puzzle.BadInput(i+1, "bad colour heading %q", color[5])
		}
		out = append(out, Instruction{
			Plain: Step{Dir: d, Count: n},
			Color: Step{Dir: hexDirs[hd], Count: dist},
		})
	}

	return out, nil
}

// Volume returns the cubic metres dug out: trench plus enclosed interior.
func Volume(steps []Step) int64 {
	var x, y, twiceArea, boundary int64
	for _, s := range steps {
		d := s.Dir.Delta()
		nx, ny := x+int64(d.X)*s.Count, y+int64(d.Y)*s.Count
		twiceArea += x*ny - nx*y
		boundary += s.Count
		x, y = nx, ny
	}

	return puzzle.Abs(twiceArea)/2 + boundary/2 + 1
}
