package vector

import (
	"errors"
	"fmt"
)

var (
	// ErrDimensionMismatch is returned when a vector-vector operation
	// receives operands of unequal dimension.
	ErrDimensionMismatch = errors.New("vector: dimension mismatch")
	// ErrUnsupportedDimension is returned when the cross product is
	// requested for vectors that are not 3-dimensional.
	ErrUnsupportedDimension = errors.New("vector: unsupported dimension")
	// ErrDivisionByZero is returned when dividing by a zero scalar,
	// including normalization of a zero-magnitude vector.
	ErrDivisionByZero = errors.New("vector: division by zero")
	// ErrIndexOutOfRange is returned for indices outside [0, dimension).
	ErrIndexOutOfRange = errors.New("vector: index out of range")
	// ErrInvalidAssignment is returned when an in-place operation would
	// have to store a scalar result into a vector.
	ErrInvalidAssignment = errors.New("vector: cannot assign scalar result to vector")
	// ErrUnsupportedOperand is returned when an operator is not defined
	// for the given operand kind, e.g. dividing by a vector.
	ErrUnsupportedOperand = errors.New("vector: unsupported operand")
	// ErrParse is returned by Parse and UnmarshalText for malformed input.
	ErrParse = errors.New("vector: invalid syntax")
)

// DimensionError carries the dimensions of the operands that caused a
// dimension-related failure. It matches ErrDimensionMismatch or
// ErrUnsupportedDimension under errors.Is.
type DimensionError struct {
	Op    string
	Left  int
	Right int
	kind  error
}

func (e *DimensionError) Error() string {
	if e.kind == ErrUnsupportedDimension {
		return fmt.Sprintf("%v: %s requires 3 dimensions, got %d and %d", e.kind, e.Op, e.Left, e.Right)
	}
	return fmt.Sprintf("%v: %s of %d and %d dimensions", e.kind, e.Op, e.Left, e.Right)
}

func (e *DimensionError) Unwrap() error { return e.kind }

// IndexError reports an out-of-range index together with the dimension
// it was checked against. It matches ErrIndexOutOfRange.
type IndexError struct {
	Index     int
	Dimension int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("%v: index %d, dimension %d", ErrIndexOutOfRange, e.Index, e.Dimension)
}

func (e *IndexError) Unwrap() error { return ErrIndexOutOfRange }

func mismatch(op string, left, right int) error {
	return &DimensionError{Op: op, Left: left, Right: right, kind: ErrDimensionMismatch}
}

func unsupportedDimension(op string, left, right int) error {
	return &DimensionError{Op: op, Left: left, Right: right, kind: ErrUnsupportedDimension}
}
