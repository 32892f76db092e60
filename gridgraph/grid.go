package gridgraph

import (
	"strings"
)

// Grid is a mutable rectangular grid of runes addressed by Point.
type Grid struct {
	width, height int
	cells         []rune // row-major
}

// Parse builds a Grid from newline-separated text. Trailing carriage
// returns and trailing blank lines are ignored.
// Returns ErrEmptyGrid if no rows remain, ErrNonRectangular if any row
// length differs.
// Complexity: O(W×H) time and memory.
func Parse(text string) (*Grid, error) {
	text = strings.TrimRight(strings.ReplaceAll(text, "\r", ""), "\n")
	if text == "" {
		return nil, ErrEmptyGrid
	}

	return FromRows(strings.Split(text, "\n"))
}

// FromRows builds a Grid from rows of equal length.
func FromRows(rows []string) (*Grid, error) {
	if len(rows) == 0 {
		return nil, ErrEmptyGrid
	}
	w := len([]rune(rows[0]))
	if w == 0 {
		return nil, ErrEmptyGrid
	}
	cells := make([]rune, 0, w*len(rows))
	for _, row := range rows {
		r := []rune(row)
		if len(r) != w {
			return nil, ErrNonRectangular
		}
		cells = append(cells, r...)
	}

	return &Grid{width: w, height: len(rows), cells: cells}, nil
}

// New returns a width×height Grid filled with fill.
func New(width, height int, fill rune) *Grid {
	cells := make([]rune, width*height)
	for i := range cells {
		cells[i] = fill
	}

	return &Grid{width: width, height: height, cells: cells}
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.height }

// InBounds reports whether p lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(p Point) bool {
	return p.X >= 0 && p.X < g.width && p.Y >= 0 && p.Y < g.height
}

// Index maps p to a row-major index: Y*Width + X.
func (g *Grid) Index(p Point) int {
	return p.Y*g.width + p.X
}

// Coordinate converts a row-major index back to a Point.
func (g *Grid) Coordinate(idx int) Point {
	return Point{idx % g.width, idx / g.width}
}

// At returns the rune at p, or 0 when p is outside the grid.
func (g *Grid) At(p Point) rune {
	if !g.InBounds(p) {
		return 0
	}
	return g.cells[g.Index(p)]
}

// Set stores r at p.
func (g *Grid) Set(p Point, r rune) error {
	if !g.InBounds(p) {
		return ErrOutOfBounds
	}
	g.cells[g.Index(p)] = r

	return nil
}

// Find returns the first cell (row-major) holding r.
func (g *Grid) Find(r rune) (Point, bool) {
	for i, c := range g.cells {
		if c == r {
			return g.Coordinate(i), true
		}
	}

	return Point{}, false
}

// Step returns the neighbour of p in direction d; it may be out of bounds.
func (g *Grid) Step(p Point, d Dir) Point {
	return p.Add(d.Delta())
}

// Neighbors returns the in-bounds neighbours of p, clockwise from north.
func (g *Grid) Neighbors(p Point, conn Connectivity) []Point {
	out := make([]Point, 0, 8)
	for _, d := range conn.Offsets() {
		if q := p.Add(d); g.InBounds(q) {
			out = append(out, q)
		}
	}

	return out
}

// Row returns row y as a string.
func (g *Grid) Row(y int) string {
	return string(g.cells[y*g.width : (y+1)*g.width])
}

// Col returns column x, read top to bottom, as a string.
func (g *Grid) Col(x int) string {
	col := make([]rune, g.height)
	for y := range col {
		col[y] = g.cells[y*g.width+x]
	}

	return string(col)
}

// Rows returns every row as a string.
func (g *Grid) Rows() []string {
	rows := make([]string, g.height)
	for y := range rows {
		rows[y] = g.Row(y)
	}

	return rows
}

// Clone returns an independent copy of g.
func (g *Grid) Clone() *Grid {
	cells := make([]rune, len(g.cells))
	copy(cells, g.cells)

	return &Grid{width: g.width, height: g.height, cells: cells}
}

// String renders g as newline-separated rows without a trailing newline.
func (g *Grid) String() string {
	return strings.Join(g.Rows(), "\n")
}

// Transpose returns a new grid with rows and columns swapped.
func (g *Grid) Transpose() *Grid {
	t := New(g.height, g.width, 0)
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			t.cells[x*t.width+y] = g.cells[y*g.width+x]
		}
	}

	return t
}

// RotateCW returns a new grid rotated 90° clockwise: the west column
// becomes the north row.
func (g *Grid) RotateCW() *Grid {
	r := New(g.height, g.width, 0)
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			// (x, y) → (H-1-y, x)
			r.cells[x*r.width+(g.height-1-y)] = g.cells[y*g.width+x]
		}
	}

	return r
}

// Count returns how many cells hold r.
func (g *Grid) Count(r rune) int {
	n := 0
	for _, c := range g.cells {
		if c == r {
			n++
		}
	}

	return n
}
