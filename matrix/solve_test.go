package matrix_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/aoc2023/matrix"
)

func ratStrings(xs []*big.Rat) []string {
	out := make([]string, len(xs))
	for i, x := range xs {
		out[i] = x.RatString()
	}
	return out
}

func TestSolveRat_Square(t *testing.T) {
	// 2x +  y = 5
	//  x + 3y = 10  =>  x = 1, y = 3
	a := [][]*big.Rat{matrix.Rats(2, 1), matrix.Rats(1, 3)}
	x, err := matrix.SolveRat(a, matrix.Rats(5, 10))
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "3"}, ratStrings(x))
}

func TestSolveRat_NeedsPivotSwapAndFractions(t *testing.T) {
	//      2y = 1
	// 3x +  y = 1  =>  y = 1/2, x = 1/6
	a := [][]*big.Rat{matrix.Rats(0, 2), matrix.Rats(3, 1)}
	x, err := matrix.SolveRat(a, matrix.Rats(1, 1))
	require.NoError(t, err)
	assert.Equal(t, []string{"1/6", "1/2"}, ratStrings(x))
}

func TestSolveRat_Overdetermined(t *testing.T) {
	// three consistent equations in two unknowns, one redundant
	a := [][]*big.Rat{matrix.Rats(1, 1), matrix.Rats(1, -1), matrix.Rats(2, 2)}
	x, err := matrix.SolveRat(a, matrix.Rats(4, 2, 8))
	require.NoError(t, err)
	assert.Equal(t, []string{"3", "1"}, ratStrings(x))
}

func TestSolveRat_LargeValues(t *testing.T) {
	// coefficients whose products overflow int64
	big1 := int64(400_000_000_000_000)
	a := [][]*big.Rat{matrix.Rats(big1, 1), matrix.Rats(1, big1)}
	b := []*big.Rat{
		new(big.Rat).SetInt64(big1 + 1),
		new(big.Rat).SetInt64(big1 + 1),
	}
	x, err := matrix.SolveRat(a, b)
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "1"}, ratStrings(x))
}

func TestSolveRat_Errors(t *testing.T) {
	_, err := matrix.SolveRat(nil, nil)
	assert.ErrorIs(t, err, matrix.ErrBadShape)

	_, err = matrix.SolveRat([][]*big.Rat{matrix.Rats(1, 2)}, matrix.Rats(1, 2))
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = matrix.SolveRat([][]*big.Rat{matrix.Rats(1, 2), matrix.Rats(1)}, matrix.Rats(1, 2))
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = matrix.SolveRat([][]*big.Rat{{nil}}, matrix.Rats(1))
	assert.ErrorIs(t, err, matrix.ErrNilEntry)

	// x + y = 1 and 2x + 2y = 2: one equation, two unknowns
	_, err = matrix.SolveRat([][]*big.Rat{matrix.Rats(1, 1), matrix.Rats(2, 2)}, matrix.Rats(1, 2))
	assert.ErrorIs(t, err, matrix.ErrSingular)

	// x + y = 1 and x + y = 2
	_, err = matrix.SolveRat([][]*big.Rat{matrix.Rats(1, 1), matrix.Rats(1, 1)}, matrix.Rats(1, 2))
	assert.ErrorIs(t, err, matrix.ErrInconsistent)

	// inputs are left untouched
	a := [][]*big.Rat{matrix.Rats(2, 0), matrix.Rats(0, 4)}
	_, err = matrix.SolveRat(a, matrix.Rats(2, 4))
	require.NoError(t, err)
	assert.Equal(t, "2", a[0][0].RatString())
}
