package gridgraph

import "errors"

// Sentinel errors for gridgraph operations.
var (
	// ErrEmptyGrid indicates input grid has no rows or no columns.
	ErrEmptyGrid = errors.New("gridgraph: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("gridgraph: all rows must have the same length")
	// ErrOutOfBounds indicates a point outside the grid.
	ErrOutOfBounds = errors.New("gridgraph: point out of bounds")
)

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional connectivity: N, NE, E, SE, S, SW, W, NW.
	Conn8
)

var (
	offsets4 = []Point{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
	offsets8 = []Point{{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}}
)

// Offsets returns the neighbor offsets for c in clockwise order from north.
// The returned slice must not be modified.
func (c Connectivity) Offsets() []Point {
	if c == Conn8 {
		return offsets8
	}
	return offsets4
}

// Point is a cell coordinate; X grows east, Y grows south.
type Point struct {
	X, Y int
}

// Add returns p translated by q.
func (p Point) Add(q Point) Point { return Point{p.X + q.X, p.Y + q.Y} }

// Scale returns p multiplied by k.
func (p Point) Scale(k int) Point { return Point{p.X * k, p.Y * k} }

// Manhattan returns the taxicab distance between p and q.
func (p Point) Manhattan(q Point) int {
	return abs(p.X-q.X) + abs(p.Y-q.Y)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// Dir is one of the four compass headings, clockwise from North.
type Dir uint8

const (
	North Dir = iota
	East
	South
	West
)

// Dirs lists the headings in clockwise order.
var Dirs = [4]Dir{North, East, South, West}

// Delta returns the unit step for d.
func (d Dir) Delta() Point { return offsets4[d&3] }

// TurnRight rotates d clockwise by 90°.
func (d Dir) TurnRight() Dir { return (d + 1) & 3 }

// TurnLeft rotates d counter-clockwise by 90°.
func (d Dir) TurnLeft() Dir { return (d + 3) & 3 }

// Reverse returns the opposite heading.
func (d Dir) Reverse() Dir { return (d + 2) & 3 }

func (d Dir) String() string {
	return [...]string{"N", "E", "S", "W"}[d&3]
}
