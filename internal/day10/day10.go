// Package day10 follows the loop of pipes through 'S'. Part 1 is the
// distance to the loop's farthest tile; part 2 counts tiles the loop
// encloses, including pockets only reachable by squeezing between pipes.
package day10

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/aoc2023/bfs"
	"github.com/katalvlaran/aoc2023/gridgraph"
	"github.com/katalvlaran/aoc2023/internal/puzzle"
)

func init() {
	puzzle.Register(puzzle.Day{
		Number: 10,
		Title:  "Pipe Maze",
		Part1: func(ctx context.Context, in string) (puzzle.Answer, error) {
			m, err := Parse(in)
			if err != nil {
				return 0, err
			}
			v, err := m.Farthest(ctx)
			return puzzle.Answer(v), err
		},
		Part2: func(ctx context.Context, in string) (puzzle.Answer, error) {
			m, err := Parse(in)
			if err != nil {
				return 0, err
			}
			v, err := m.Enclosed(ctx)
			return puzzle.Answer(v), err
		},
	})
}

var (
	// ErrNoStart is returned when the map has no 'S'.
	ErrNoStart = errors.New("day10: no start tile")

	// ErrAmbiguousStart is returned when no pair of pipes next to 'S' forms
	// a loop through it.
	ErrAmbiguousStart = errors.New("day10: start is not on a loop")
)

// openings lists, per pipe, the headings it connects to.
var openings = map[rune][]gridgraph.Dir{
	'|': {gridgraph.North, gridgraph.South},
	'-': {gridgraph.East, gridgraph.West},
	'L': {gridgraph.North, gridgraph.East},
	'J': {gridgraph.North, gridgraph.West},
	'7': {gridgraph.South, gridgraph.West},
	'F': {gridgraph.East, gridgraph.South},
}

func opens(r rune, d gridgraph.Dir) bool {
	for _, o := range openings[r] {
		if o == d {
			return true
		}
	}
	return false
}

// Maze is the tile grid with 'S' replaced by the pipe it stands on.
type Maze struct {
	grid  *gridgraph.Grid
	start gridgraph.Point
}

// Parse reads the grid and infers the pipe under 'S' from its neighbours.
func Parse(in string) (*Maze, error) {
	g, err := gridgraph.Parse(in)
	if err != nil {
		return nil, puzzle.BadInput(1, "%v", err)
	}
	s, ok := g.Find('S')
	if !ok {
		return nil, ErrNoStart
	}
	var dirs []gridgraph.Dir
	for _, d := range gridgraph.Dirs {
		if opens(g.At(g.Step(s, d)), d.Reverse()) {
			dirs = append(dirs, d)
		}
	}
	// With more than two candidates, keep the first pair that closes a loop.
	for i := 0; i < len(dirs); i++ {
		for j := i + 1; j < len(dirs); j++ {
			pipe := pipeFor(dirs[i], dirs[j])
			_ = g.Set(s, pipe)
			if closes(g, s, dirs[i], dirs[j]) {
				return &Maze{grid: g, start: s}, nil
			}
		}
	}

	return nil, fmt.Errorf("%w: %d candidates", ErrAmbiguousStart, len(dirs))
}

// pipeFor returns the pipe opening toward a and b.
func pipeFor(a, b gridgraph.Dir) rune {
	for pipe, o := range openings {
		if (o[0] == a && o[1] == b) || (o[0] == b && o[1] == a) {
			return pipe
		}
	}

	return 0
}

// closes follows the pipes leaving s toward out and reports whether the
// walk comes back to s heading in against back.
func closes(g *gridgraph.Grid, s gridgraph.Point, out, back gridgraph.Dir) bool {
	cur, heading := s, out
	for range g.Width() * g.Height() {
		cur = g.Step(cur, heading)
		if cur == s {
			return heading == back.Reverse()
		}
		r := g.At(cur)
		if !opens(r, heading.Reverse()) {
			return false
		}
		for _, d := range openings[r] {
			if d != heading.Reverse() {
				heading = d
				break
			}
		}
	}

	return false
}

// Start returns the position of 'S'.
func (m *Maze) Start() gridgraph.Point { return m.start }

// Pipe returns the tile at p with 'S' resolved.
func (m *Maze) Pipe(p gridgraph.Point) rune { return m.grid.At(p) }

// linked reports whether a's pipe opens toward the orthogonal neighbour b.
func (m *Maze) linked(a, b gridgraph.Point) bool {
	for _, d := range openings[m.grid.At(a)] {
		if m.grid.Step(a, d) == b {
			return true
		}
	}
	return false
}

// walk runs a BFS from the start over mutually connected pipes and returns
// the loop tiles with their distances.
func (m *Maze) walk(ctx context.Context) (*bfs.Result, error) {
	g, err := m.grid.ToCoreGraph(
		func(_ gridgraph.Point, r rune) bool { return len(openings[r]) > 0 },
		m.linked,
	)
	if err != nil {
		return nil, err
	}

	return bfs.BFS(g, gridgraph.VertexID(m.start), bfs.WithContext(ctx))
}

// Loop returns the tiles of the main loop.
func (m *Maze) Loop(ctx context.Context) (map[gridgraph.Point]bool, error) {
	res, err := m.walk(ctx)
	if err != nil {
		return nil, err
	}
	loop := make(map[gridgraph.Point]bool, len(res.Order))
	for _, id := range res.Order {
		p, err := gridgraph.ParseVertexID(id)
		if err != nil {
			return nil, err
		}
		loop[p] = true
	}

	return loop, nil
}

// Farthest returns the steps from 'S' to the loop tile farthest along it.
func (m *Maze) Farthest(ctx context.Context) (int64, error) {
	res, err := m.walk(ctx)
	if err != nil {
		return 0, err
	}
	best := 0
	for _, d := range res.Depth {
		best = max(best, d)
	}

	return int64(best), nil
}

// Enclosed counts tiles inside the loop. The loop is drawn at double
// resolution with a one-cell border: tile (x, y) lands on (2x+1, 2y+1) and
// each connection fills the cell between two tiles. A flood fill from the
// border then reaches every outside tile, gaps between pipes included.
func (m *Maze) Enclosed(ctx context.Context) (int64, error) {
	loop, err := m.Loop(ctx)
	if err != nil {
		return 0, err
	}
	big := gridgraph.New(2*m.grid.Width()+1, 2*m.grid.Height()+1, '.')
	scale := func(p gridgraph.Point) gridgraph.Point { return p.Scale(2).Add(gridgraph.Point{X: 1, Y: 1}) }
	for p := range loop {
		c := scale(p)
		_ = big.Set(c, '#')
		for _, d := range openings[m.grid.At(p)] {
			_ = big.Set(big.Step(c, d), '#')
		}
	}
	outside := big.FloodFill(gridgraph.Point{}, gridgraph.Conn4, func(_ gridgraph.Point, r rune) bool { return r != '#' })

	var inside int64
	for y := 0; y < m.grid.Height(); y++ {
		for x := 0; x < m.grid.Width(); x++ {
			p := gridgraph.Point{X: x, Y: y}
			if !loop[p] && !outside[big.Index(scale(p))] {
				inside++
			}
		}
	}

	return inside, nil
}
