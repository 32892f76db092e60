// Package day11 sums the Manhattan distances between every pair of
// galaxies after empty rows and columns have been widened.
package day11

import (
	"context"
	"sort"

	"github.com/katalvlaran/aoc2023/gridgraph"
	"github.com/katalvlaran/aoc2023/internal/puzzle"
)

// Expansion factors for part 1 and part 2.
const (
	YoungFactor = 2
	OldFactor   = 1_000_000
)

func init() {
	puzzle.Register(puzzle.Day{
		Number: 11,
		Title:  "Cosmic Expansion",
		Part1: func(_ context.Context, in string) (puzzle.Answer, error) {
			return solve(in, YoungFactor)
		},
		Part2: func(_ context.Context, in string) (puzzle.Answer, error) {
			return solve(in, OldFactor)
		},
	})
}

func solve(in string, factor int64) (puzzle.Answer, error) {
	img, err := Parse(in)
	if err != nil {
		return 0, err
	}

	return puzzle.Answer(img.Distances(factor)), nil
}

// Image holds galaxy positions and the indices of empty rows and columns.
type Image struct {
	Galaxies  []gridgraph.Point
	EmptyRows []int
	EmptyCols []int
}

// Parse reads the image; any rune other than '#' and '.' is rejected.
func Parse(in string) (*Image, error) {
	g, err := gridgraph.Parse(in)
	if err != nil {
		return nil, puzzle.BadInput(1, "%v", err)
	}
	img := &Image{}
	rowUsed := make([]bool, g.Height())
	colUsed := make([]bool, g.Width())
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			switch r := g.At(gridgraph.Point{X: x, Y: y}); r {
			case '#':
				img.Galaxies = append(img.Galaxies, gridgraph.Point{X: x, Y: y})
				rowUsed[y], colUsed[x] = true, true
			case '.':
			default:
				return nil, puzzle.BadInput(y+1, "unexpected %q", r)
			}
		}
	}
	for y, used := range rowUsed {
		if !used {
			img.EmptyRows = append(img.EmptyRows, y)
		}
	}
	for x, used := range colUsed {
		if !used {
			img.EmptyCols = append(img.EmptyCols, x)
		}
	}

	return img, nil
}

// Distances returns the sum of pairwise distances once every empty row and
// column is replaced by factor copies of itself.
func (img *Image) Distances(factor int64) int64 {
	xs := make([]int64, len(img.Galaxies))
	ys := make([]int64, len(img.Galaxies))
	for i, p := range img.Galaxies {
		xs[i] = expand(p.X, img.EmptyCols, factor)
		ys[i] = expand(p.Y, img.EmptyRows, factor)
	}

	return pairSum(xs) + pairSum(ys)
}

// expand shifts v by (factor-1) for every empty line before it.
func expand(v int, empty []int, factor int64) int64 {
	before := sort.SearchInts(empty, v)
	return int64(v) + int64(before)*(factor-1)
}

// pairSum returns the sum of |a-b| over all pairs, in O(n log n).
func pairSum(vals []int64) int64 {
	sort.Slice(vals, func(i, j int) bool { return vals[i] < vals[j] })
	var sum, prefix int64
	for i, v := range vals {
		sum += v*int64(i) - prefix
		prefix += v
	}

	return sum
}
