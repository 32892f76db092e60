// Package day23 finds the longest hike through a forest map that never
// steps on the same tile twice.
//
// The grid is compressed into a graph whose vertices are the start, the
// end and every junction tile (three or more open neighbours); each edge
// is a corridor weighted by its length. The longest simple path is then
// found on that much smaller graph.
package day23

import (
	"context"
	"fmt"
	"strings"

	"github.com/katalvlaran/aoc2023/core"
	"github.com/katalvlaran/aoc2023/dfs"
	"github.com/katalvlaran/aoc2023/gridgraph"
	"github.com/katalvlaran/aoc2023/internal/puzzle"
)

func init() {
	puzzle.Register(puzzle.Day{
		Number: 23,
		Title:  "A Long Walk",
		Part1: func(ctx context.Context, in string) (puzzle.Answer, error) {
			return solve(ctx, in, true)
		},
		Part2: func(ctx context.Context, in string) (puzzle.Answer, error) {
			return solve(ctx, in, false)
		},
	})
}

func solve(ctx context.Context, in string, slippery bool) (puzzle.Answer, error) {
	m, err := Parse(in)
	if err != nil {
		return 0, err
	}
	v, err := m.LongestHike(ctx, slippery)

	return puzzle.Answer(v), err
}

var slopes = map[rune]gridgraph.Dir{
	'^': gridgraph.North,
	'>': gridgraph.East,
	'v': gridgraph.South,
	'<': gridgraph.West,
}

// Map is the forest with its entry and exit tiles.
type Map struct {
	grid       *gridgraph.Grid
	start, end gridgraph.Point
}

// Parse reads the map; the start is the single path tile of the top row and
// the end the single path tile of the bottom row.
func Parse(in string) (*Map, error) {
	g, err := gridgraph.Parse(in)
	if err != nil {
		return nil, puzzle.BadInput(1, "%v", err)
	}
	for y, row := range g.Rows() {
		if s := strings.Trim(row, "#.^>v<"); s != "" {
			return nil, puzzle.BadInput(y+1, "unexpected %q", s[0])
		}
	}
	top, bottom := g.Row(0), g.Row(g.Height()-1)
	if strings.Count(top, ".") != 1 || strings.Count(bottom, ".") != 1 || g.Height() < 2 {
		return nil, puzzle.BadInput(1, "need exactly one opening in the top and bottom rows")
	}

	return &Map{
		grid:  g,
		start: gridgraph.Point{X: strings.IndexByte(top, '.')},
		end:   gridgraph.Point{X: strings.IndexByte(bottom, '.'), Y: g.Height() - 1},
	}, nil
}

func (m *Map) open(p gridgraph.Point) bool {
	r := m.grid.At(p)
	return r != 0 && r != '#'
}

// canMove reports whether a hiker may step from p toward d. On slippery
// ground a slope tile can only be left, and only entered, along its arrow.
func (m *Map) canMove(p gridgraph.Point, d gridgraph.Dir, slippery bool) bool {
	next := m.grid.Step(p, d)
	if !m.open(next) {
		return false
	}
	if !slippery {
		return true
	}
	if s, ok := slopes[m.grid.At(p)]; ok && s != d {
		return false
	}
	if s, ok := slopes[m.grid.At(next)]; ok && s != d {
		return false
	}

	return true
}

func (m *Map) junction(p gridgraph.Point) bool {
	if p == m.start || p == m.end {
		return true
	}
	n := 0
	for _, d := range gridgraph.Dirs {
		if m.open(m.grid.Step(p, d)) {
			n++
		}
	}

	return n >= 3
}

// Graph compresses the map into a directed graph of junctions connected by
// corridors weighted with their step counts.
func (m *Map) Graph(slippery bool) (*core.Graph, error) {
	g := core.NewGraph(core.WithDirected(true), core.WithWeighted(), core.WithMultiEdges())
	for _, p := range []gridgraph.Point{m.start, m.end} {
		if err := g.AddVertex(gridgraph.VertexID(p)); err != nil {
			return nil, err
		}
	}

	for y := 0; y < m.grid.Height(); y++ {
		for x := 0; x < m.grid.Width(); x++ {
			from := gridgraph.Point{X: x, Y: y}
			if !m.open(from) || !m.junction(from) {
				continue
			}
			for _, d := range gridgraph.Dirs {
				to, steps, ok := m.corridor(from, d, slippery)
				if !ok || to == from {
					continue
				}
				if _, err := g.AddEdge(gridgraph.VertexID(from), gridgraph.VertexID(to), steps); err != nil {
					return nil, fmt.Errorf("day23: corridor %v->%v: %w", from, to, err)
				}
			}
		}
	}

	return g, nil
}

// corridor follows the path leaving junction from toward d and returns the
// next junction with the steps taken. ok is false for dead ends and for
// corridors the slopes forbid.
func (m *Map) corridor(from gridgraph.Point, d gridgraph.Dir, slippery bool) (gridgraph.Point, int64, bool) {
	if !m.canMove(from, d, slippery) {
		return gridgraph.Point{}, 0, false
	}
	cur, heading, steps := m.grid.Step(from, d), d, int64(1)
	for !m.junction(cur) {
		moved := false
		for _, nd := range gridgraph.Dirs {
			if nd == heading.Reverse() || !m.canMove(cur, nd, slippery) {
				continue
			}
			cur, heading = m.grid.Step(cur, nd), nd
			steps++
			moved = true
			break
		}
		if !moved {
			return gridgraph.Point{}, 0, false
		}
	}

	return cur, steps, true
}

// LongestHike returns the most steps a simple path from start to end can
// take. With slippery set, slopes may only be walked downhill.
func (m *Map) LongestHike(ctx context.Context, slippery bool) (int64, error) {
	g, err := m.Graph(slippery)
	if err != nil {
		return 0, err
	}

	return dfs.LongestPath(g, gridgraph.VertexID(m.start), gridgraph.VertexID(m.end), dfs.WithContext(ctx))
}
