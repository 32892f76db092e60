package matrix

import "errors"

// Every message is prefixed with "matrix: ..."; callers match with errors.Is.
var (
	// ErrBadShape is returned when the system has no rows or no columns.
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g. a ragged coefficient matrix or len(b) != rows.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNilEntry indicates a nil *big.Rat inside an operand.
	ErrNilEntry = errors.New("matrix: nil entry")

	// ErrSingular indicates the system has fewer independent equations than
	// unknowns, so the solution is not unique.
	ErrSingular = errors.New("matrix: system is singular")

	// ErrInconsistent indicates the equations contradict each other.
	ErrInconsistent = errors.New("matrix: system is inconsistent")
)
