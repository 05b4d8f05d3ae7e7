package matrix

import (
	"errors"
	"fmt"
)

// Common errors.
//
// Every operation that rejects its operands returns one of these, usually
// wrapped with the failing method's name. Match with errors.Is.
var (
	ErrShapeMismatch   = errors.New("matrix: shape mismatch")
	ErrIndexOutOfRange = errors.New("matrix: index out of range")
	ErrNotVector       = errors.New("matrix: operation requires a vector shape")
	ErrNonSquare       = errors.New("matrix: matrix is not square")
	ErrBadShape        = errors.New("matrix: invalid shape")
	ErrRaggedRows      = errors.New("matrix: rows have unequal length")
	ErrEmpty           = errors.New("matrix: matrix has no elements")
)

// ShapeError describes a binary operation whose operands have incompatible
// shapes. It unwraps to ErrShapeMismatch.
type ShapeError struct {
	Op    string // Method that rejected the operands (e.g., "Add", "Mul")
	Left  Shape  // Shape of the receiver
	Right Shape  // Shape of the argument
}

// Error implements the error interface.
func (e *ShapeError) Error() string {
	return fmt.Sprintf("Matrix.%s: shape mismatch %v vs %v", e.Op, e.Left, e.Right)
}

// Unwrap returns ErrShapeMismatch.
func (e *ShapeError) Unwrap() error {
	return ErrShapeMismatch
}

func shapeErr(op string, left, right Shape) error {
	return &ShapeError{Op: op, Left: left, Right: right}
}

func indexErr(op string, x, y int, s Shape) error {
	return fmt.Errorf("Matrix.%s(%d,%d) on %v: %w", op, x, y, s, ErrIndexOutOfRange)
}
