package gridgraph

import (
	"fmt"

	"github.com/katalvlaran/aoc2023/core"
)

// FloodFill marks every cell reachable from start through cells accepted by
// pass, using conn connectivity. The result is indexed by Index(p). start
// itself is marked only if pass accepts it.
//
// Time:   O(W·H·d), where d = 4 or 8.
// Memory: O(W·H) for visited flags and the queue.
func (g *Grid) FloodFill(start Point, conn Connectivity, pass func(p Point, r rune) bool) []bool {
	seen := make([]bool, len(g.cells))
	if !g.InBounds(start) || !pass(start, g.At(start)) {
		return seen
	}
	g.fill(start, conn, pass, seen, nil)

	return seen
}

// ConnectedComponents finds all contiguous regions of cells accepted by
// pass, according to conn. Components are discovered in row-major order of
// their first cell; each lists its cells in BFS order.
//
// Time:   O(W·H·d), where d = 4 or 8.
// Memory: O(W·H) for visited flags and output.
func (g *Grid) ConnectedComponents(conn Connectivity, pass func(p Point, r rune) bool) [][]Point {
	seen := make([]bool, len(g.cells))
	var comps [][]Point
	for i, r := range g.cells {
		p := g.Coordinate(i)
		if seen[i] || !pass(p, r) {
			continue
		}
		var comp []Point
		g.fill(p, conn, pass, seen, func(q Point) { comp = append(comp, q) })
		comps = append(comps, comp)
	}

	return comps
}

// fill runs a BFS from start, marking seen and reporting each cell to visit.
func (g *Grid) fill(start Point, conn Connectivity, pass func(Point, rune) bool, seen []bool, visit func(Point)) {
	queue := []int{g.Index(start)}
	seen[queue[0]] = true
	offsets := conn.Offsets()
	for qi := 0; qi < len(queue); qi++ {
		u := g.Coordinate(queue[qi])
		if visit != nil {
			visit(u)
		}
		for _, d := range offsets {
			v := u.Add(d)
			if !g.InBounds(v) {
				continue
			}
			vi := g.Index(v)
			if seen[vi] || !pass(v, g.cells[vi]) {
				continue
			}
			seen[vi] = true
			queue = append(queue, vi)
		}
	}
}

// VertexID formats the vertex identifier used for p in ToCoreGraph.
func VertexID(p Point) string {
	return fmt.Sprintf("%d,%d", p.X, p.Y)
}

// ParseVertexID reverses VertexID.
func ParseVertexID(id string) (Point, error) {
	var p Point
	if _, err := fmt.Sscanf(id, "%d,%d", &p.X, &p.Y); err != nil {
		return Point{}, fmt.Errorf("gridgraph: bad vertex id %q: %w", id, err)
	}

	return p, nil
}

// ToCoreGraph converts g into an undirected *core.Graph. Every cell accepted
// by keep becomes a vertex with ID VertexID(p); an edge joins orthogonal
// neighbours a, b (both kept) whenever link(a, b) and link(b, a) both hold.
// Complexity: O(W×H×4 + E) time, Memory: O(W×H + E).
func (g *Grid) ToCoreGraph(keep func(p Point, r rune) bool, link func(a, b Point) bool) (*core.Graph, error) {
	cg := core.NewGraph()
	// 1) Vertices
	for i, r := range g.cells {
		p := g.Coordinate(i)
		if keep(p, r) {
			if err := cg.AddVertex(VertexID(p)); err != nil {
				return nil, err
			}
		}
	}
	// 2) Edges, looking only east and south so each pair is seen once
	for i, r := range g.cells {
		a := g.Coordinate(i)
		if !keep(a, r) {
			continue
		}
		for _, d := range []Dir{East, South} {
			b := g.Step(a, d)
			if !g.InBounds(b) || !keep(b, g.At(b)) {
				continue
			}
			if !link(a, b) || !link(b, a) {
				continue
			}
			if _, err := cg.AddEdge(VertexID(a), VertexID(b), 0); err != nil {
				return nil, err
			}
		}
	}

	return cg, nil
}
