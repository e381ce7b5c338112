// SPDX-License-Identifier: MIT

// Package matrix: domain types shared by the dense storage and the kernels.
// This file intentionally contains ONLY type declarations (element constraint,
// shape pair and the read/write Matrix surface). Errors and validators live in
// dedicated files (errors.go, validators.go).
package matrix

// Number is the closed set of element types a matrix may hold.
// Exactly one integer kind and one floating-point kind are admitted; there is
// no tilde, so named types built on int or float64 are rejected at compile time.
type Number interface {
	int | float64
}

// Shape is the (rows, cols) pair describing a matrix's dimensions.
// The zero value is the shape of the empty matrix.
type Shape struct {
	Rows int // number of rows (>= 0)
	Cols int // number of columns (>= 0)
}

// IsEmpty reports whether the shape is 0×0.
func (s Shape) IsEmpty() bool { return s.Rows == 0 && s.Cols == 0 }

// Area returns Rows*Cols, the number of stored elements.
func (s Shape) Area() int { return s.Rows * s.Cols }

// Matrix is the bounds-checked read/write surface every kernel accepts.
// *Dense[T] is the only implementation in this package; kernels take a
// fast path on it and fall back to At/Set for anything else.
//
// Complexity notes: all methods are expected O(1).
type Matrix[T Number] interface {
	// Rows returns the number of rows in the matrix.
	Rows() int

	// Cols returns the number of columns in the matrix.
	Cols() int

	// At retrieves the element at position (i, j).
	// Returns ErrOutOfRange if i<0, i>=Rows(), j<0 or j>=Cols().
	At(i, j int) (T, error)

	// Set assigns the value v at position (i, j).
	// Returns ErrOutOfRange if indices are invalid; nothing is written then.
	Set(i, j int, v T) error
}
