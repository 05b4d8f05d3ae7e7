// Copyright 2026 EscalatorNet Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package matrix

import (
	"gonum.org/v1/gonum/mat"

	"github.com/antikrem/EscalatorNet/internal/matrix"
)

// Float is the set of element types a Matrix can hold.
type Float = matrix.Float

// Matrix is a dense matrix with one example per row.
type Matrix[T Float] = matrix.Matrix[T]

// Shape is a pair of RowLength and ColumnLength.
type Shape = matrix.Shape

// ShapeError reports the operands of a failed operation.
type ShapeError = matrix.ShapeError

// Errors returned by Matrix operations.
var (
	ErrShapeMismatch   = matrix.ErrShapeMismatch
	ErrIndexOutOfRange = matrix.ErrIndexOutOfRange
	ErrNotVector       = matrix.ErrNotVector
	ErrNonSquare       = matrix.ErrNonSquare
	ErrBadShape        = matrix.ErrBadShape
	ErrRaggedRows      = matrix.ErrRaggedRows
	ErrEmpty           = matrix.ErrEmpty
)

// New creates a rowLength x columnLength matrix filled with value.
func New[T Float](rowLength, columnLength int, value T) (*Matrix[T], error) {
	return matrix.New(rowLength, columnLength, value)
}

// Generate creates a matrix whose cell (x, y) is generator(x, y).
func Generate[T Float](rowLength, columnLength int, generator func(x, y int) T) (*Matrix[T], error) {
	return matrix.Generate(rowLength, columnLength, generator)
}

// FromRows creates a matrix with one row per inner slice.
//
// Example:
//
//	m, _ := matrix.FromRows([][]float64{{1, 2}, {3, 4}, {5, 6}})  // 2 x 3
func FromRows[T Float](rows [][]T) (*Matrix[T], error) {
	return matrix.FromRows(rows)
}

// IdentitySquare creates an n x n identity matrix.
func IdentitySquare[T Float](n int) (*Matrix[T], error) {
	return matrix.IdentitySquare[T](n)
}

// FromDense copies a gonum matrix, one mat row per example.
func FromDense[T Float](d mat.Matrix) *Matrix[T] {
	return matrix.FromDense[T](d)
}
