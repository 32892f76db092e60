// Package matrix solves linear systems exactly over the rationals.
//
// SolveRat runs Gauss–Jordan elimination on math/big rationals, so results
// carry no rounding error even when coefficients reach 10^15 and products
// overflow int64. Overdetermined systems are accepted as long as the extra
// equations are consistent with the rest.
package matrix

import (
	"fmt"
	"math/big"
)

// Rats converts integers to a fresh row of rationals.
func Rats(vals ...int64) []*big.Rat {
	out := make([]*big.Rat, len(vals))
	for i, v := range vals {
		out[i] = new(big.Rat).SetInt64(v)
	}

	return out
}

// SolveRat returns the unique x with a·x = b.
//
// a has m rows and n columns (m ≥ n for a unique answer); b has m entries.
// The inputs are not modified.
//
// Errors, in priority order: ErrBadShape, ErrDimensionMismatch, ErrNilEntry,
// ErrInconsistent, ErrSingular.
//
// Time Complexity: O(m·n²) rational operations; Memory: O(m·n).
func SolveRat(a [][]*big.Rat, b []*big.Rat) ([]*big.Rat, error) {
	// Stage 1: Validate shape
	m := len(a)
	if m == 0 || len(a[0]) == 0 {
		return nil, ErrBadShape
	}
	n := len(a[0])
	if len(b) != m {
		return nil, fmt.Errorf("SolveRat: %d rows, %d rhs: %w", m, len(b), ErrDimensionMismatch)
	}

	// Stage 2: Copy into augmented matrix [a | b]
	aug := make([][]*big.Rat, m)
	for i, row := range a {
		if len(row) != n {
			return nil, fmt.Errorf("SolveRat: row %d has %d cols, want %d: %w", i, len(row), n, ErrDimensionMismatch)
		}
		aug[i] = make([]*big.Rat, n+1)
		for j, v := range row {
			if v == nil {
				return nil, fmt.Errorf("SolveRat: a[%d][%d]: %w", i, j, ErrNilEntry)
			}
			aug[i][j] = new(big.Rat).Set(v)
		}
		if b[i] == nil {
			return nil, fmt.Errorf("SolveRat: b[%d]: %w", i, ErrNilEntry)
		}
		aug[i][n] = new(big.Rat).Set(b[i])
	}

	// Stage 3: Eliminate column by column
	rank := 0
	tmp := new(big.Rat)
	for col := 0; col < n && rank < m; col++ {
		// find a pivot row with a non-zero entry
		p := -1
		for r := rank; r < m; r++ {
			if aug[r][col].Sign() != 0 {
				p = r
				break
			}
		}
		if p < 0 {
			continue
		}
		aug[rank], aug[p] = aug[p], aug[rank]

		// normalise the pivot row
		inv := new(big.Rat).Inv(aug[rank][col])
		for j := col; j <= n; j++ {
			aug[rank][j].Mul(aug[rank][j], inv)
		}

		// clear the column in every other row
		for r := 0; r < m; r++ {
			if r == rank || aug[r][col].Sign() == 0 {
				continue
			}
			f := new(big.Rat).Set(aug[r][col])
			for j := col; j <= n; j++ {
				tmp.Mul(f, aug[rank][j])
				aug[r][j].Sub(aug[r][j], tmp)
			}
		}
		rank++
	}

	// Stage 4: Leftover rows are all-zero on the left; their rhs must be too
	for r := rank; r < m; r++ {
		if aug[r][n].Sign() != 0 {
			return nil, ErrInconsistent
		}
	}
	if rank < n {
		return nil, fmt.Errorf("SolveRat: rank %d < %d unknowns: %w", rank, n, ErrSingular)
	}

	// Stage 5: Reduced form has the identity on top
	x := make([]*big.Rat, n)
	for i := range x {
		x[i] = aug[i][n]
	}

	return x, nil
}
