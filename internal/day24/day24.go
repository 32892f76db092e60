// Package day24 works with hailstones moving in straight lines.
//
// Part 1 counts pairs whose xy paths cross inside a test area in the
// future of both stones. Part 2 finds the rock throw (P, V) that hits every
// hailstone: for each stone (P - p) × (V - v) = 0, and subtracting that
// equation for two stones cancels the P×V term, leaving a linear system
// that is solved exactly over the rationals.
package day24

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"strings"

	"github.com/katalvlaran/aoc2023/internal/puzzle"
	"github.com/katalvlaran/aoc2023/matrix"
)

var (
	// ErrTooFewStones is returned when part 2 has fewer than three stones.
	ErrTooFewStones = errors.New("day24: need at least three hailstones")

	// ErrNotIntegral is returned when the rock throw is not on integer coordinates.
	ErrNotIntegral = errors.New("day24: rock throw is not integral")
)

// DefaultArea is the test area of the puzzle input.
var DefaultArea = Area{Min: 200_000_000_000_000, Max: 400_000_000_000_000}

func init() {
	puzzle.Register(puzzle.Day{
		Number: 24,
		Title:  "Never Tell Me The Odds",
		Part1: func(_ context.Context, in string) (puzzle.Answer, error) {
			hs, err := Parse(in)
			if err != nil {
				return 0, err
			}
			return puzzle.Answer(Crossings(hs, DefaultArea)), nil
		},
		Part2: func(_ context.Context, in string) (puzzle.Answer, error) {
			hs, err := Parse(in)
			if err != nil {
				return 0, err
			}
			p, _, err := Throw(hs)
			if err != nil {
				return 0, err
			}
			return puzzle.Answer(p[0] + p[1] + p[2]), nil
		},
	})
}

// Vec is an integer 3-vector.
type Vec [3]int64

// Hail is a stone's starting position and velocity per nanosecond.
type Hail struct {
	Pos Vec
	Vel Vec
}

// Area is the inclusive square [Min, Max]² of the xy plane.
type Area struct {
	Min int64
	Max int64
}

// Parse reads lines like "19, 13, 30 @ -2,  1, -2".
func Parse(in string) ([]Hail, error) {
	lines := puzzle.Lines(in)
	out := make([]Hail, 0, len(lines))
	for i, l := range lines {
		pos, vel, ok := strings.Cut(l, "@")
		if !ok {
			return nil, puzzle.BadInput(i+1, "missing '@'")
		}
		var h Hail
		var err error
		if h.Pos, err = parseVec(pos); err != nil {
			return nil, puzzle.BadInput(i+1, "position: %v", err)
		}
		if h.Vel, err = parseVec(vel); err != nil {
			return nil, puzzle.BadInput(i+1, "velocity: %v", err)
		}
		out = append(out, h)
	}

	return out, nil
}

func parseVec(s string) (Vec, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return Vec{}, fmt.Errorf("want 3 components, got %d", len(parts))
	}
	var v Vec
	for i, p := range parts {
		n, err := puzzle.Int(p)
		if err != nil {
			return Vec{}, err
		}
		v[i] = n
	}

	return v, nil
}

func rat(v int64) *big.Rat { return new(big.Rat).SetInt64(v) }

// CrossXY reports whether the xy paths of a and b meet inside area at a
// point both stones reach at a non-negative time. Parallel paths never
// count.
func CrossXY(a, b Hail, area Area) bool {
	// a.p + t·a.v = b.p + s·b.v, solved by Cramer's rule.
	det := b.Vel[0]*a.Vel[1] - a.Vel[0]*b.Vel[1]
	if det == 0 {
		return false
	}
	dx, dy := b.Pos[0]-a.Pos[0], b.Pos[1]-a.Pos[1]

	// t = (b.vx·dy - b.vy·dx) / det, s = (a.vx·dy - a.vy·dx) / det
	tNum := new(big.Rat).Sub(new(big.Rat).Mul(rat(b.Vel[0]), rat(dy)), new(big.Rat).Mul(rat(b.Vel[1]), rat(dx)))
	sNum := new(big.Rat).Sub(new(big.Rat).Mul(rat(a.Vel[0]), rat(dy)), new(big.Rat).Mul(rat(a.Vel[1]), rat(dx)))
	t := tNum.Quo(tNum, rat(det))
	s := sNum.Quo(sNum, rat(det))
	if t.Sign() < 0 || s.Sign() < 0 {
		return false
	}

	lo, hi := rat(area.Min), rat(area.Max)
	for axis := 0; axis < 2; axis++ {
		c := new(big.Rat).Mul(t, rat(a.Vel[axis]))
		c.Add(c, rat(a.Pos[axis]))
		if c.Cmp(lo) < 0 || c.Cmp(hi) > 0 {
			return false
		}
	}

	return true
}

// Crossings counts the pairs satisfying CrossXY.
func Crossings(hs []Hail, area Area) int64 {
	var n int64
	for i := range hs {
		for j := i + 1; j < len(hs); j++ {
			if CrossXY(hs[i], hs[j], area) {
				n++
			}
		}
	}

	return n
}

// cross returns a × b exactly.
func cross(a, b Vec) [3]*big.Rat {
	mul := func(x, y int64) *big.Int { return new(big.Int).Mul(big.NewInt(x), big.NewInt(y)) }
	comp := func(i, j int) *big.Rat {
		return new(big.Rat).SetInt(new(big.Int).Sub(mul(a[i], b[j]), mul(a[j], b[i])))
	}

	return [3]*big.Rat{comp(1, 2), comp(2, 0), comp(0, 1)}
}

// Throw returns the rock position and velocity hitting every stone.
//
// With d = v_j - v_i and e = p_j - p_i, each pair contributes
// P×d + e×V = p_j×v_j - p_i×v_i, three rows over (Px, Py, Pz, Vx, Vy, Vz).
// Pairs (0, j) for up to four j give an overdetermined system.
func Throw(hs []Hail) (Vec, Vec, error) {
	if len(hs) < 3 {
		return Vec{}, Vec{}, ErrTooFewStones
	}

	var a [][]*big.Rat
	var b []*big.Rat
	base := hs[0]
	bx := cross(base.Pos, base.Vel)
	for j := 1; j < len(hs) && j <= 4; j++ {
		var d, e Vec
		for k := range 3 {
			d[k] = hs[j].Vel[k] - base.Vel[k]
			e[k] = hs[j].Pos[k] - base.Pos[k]
		}
		a = append(a,
			matrix.Rats(0, d[2], -d[1], 0, -e[2], e[1]),
			matrix.Rats(-d[2], 0, d[0], e[2], 0, -e[0]),
			matrix.Rats(d[1], -d[0], 0, -e[1], e[0], 0),
		)
		jx := cross(hs[j].Pos, hs[j].Vel)
		for k := range 3 {
			b = append(b, new(big.Rat).Sub(jx[k], bx[k]))
		}
	}

	x, err := matrix.SolveRat(a, b)
	if err != nil {
		return Vec{}, Vec{}, fmt.Errorf("day24: %w", err)
	}
	var pos, vel Vec
	for k := range 3 {
		if !x[k].IsInt() || !x[k+3].IsInt() {
			return Vec{}, Vec{}, ErrNotIntegral
		}
		pos[k] = x[k].Num().Int64()
		vel[k] = x[k+3].Num().Int64()
	}

	return pos, vel, nil
}
