// Copyright 2026 EscalatorNet Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package matrix provides the dense, dynamically sized matrix that carries
// data through a network.
//
// # Layout
//
// A Matrix stores one example per row. RowLength is the width of one
// example and ColumnLength is the number of examples, so a batch of four
// two-feature inputs has RowLength 2 and ColumnLength 4:
//
//	m, err := matrix.FromRows([][]float64{
//	    {0, 0},
//	    {0, 1},
//	    {1, 0},
//	    {1, 1},
//	})
//
// Cell (x, y) is feature x of example y.
//
// # Errors
//
// Operations never panic on bad input. Shape violations return errors that
// match ErrShapeMismatch with errors.Is, and carry both shapes in a
// *ShapeError.
//
// # gonum
//
// ToDense and FromDense convert to and from gonum's mat.Dense, with one
// example per mat row.
package matrix
