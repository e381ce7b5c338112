// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All operations MUST return these sentinels and tests MUST check them
// via errors.Is. No operation panics on user-triggered error conditions.

package matrix

import (
	"errors"
	"fmt"
)

// NOTE ON ERROR KINDS
// -------------------
// There are exactly two kinds of failure: ErrOutOfRange and ErrInvalidArgument.
// Every specific sentinel below wraps one of them, so a caller may match either
// the precise condition (errors.Is(err, ErrNonSquare)) or the kind
// (errors.Is(err, ErrInvalidArgument)). Every message is prefixed with
// "matrix: ..." for easy grepping across logs.

var (
	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// Public indexers (At/Set/Ref) and Minor/Induced MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrInvalidArgument is the kind shared by all shape and operand violations.
	ErrInvalidArgument = errors.New("matrix: invalid argument")
)

var (
	// ErrInvalidDimensions is returned when a requested shape has a negative side.
	ErrInvalidDimensions = fmt.Errorf("%w: dimensions must be >= 0", ErrInvalidArgument)

	// ErrDimensionMismatch indicates incompatible shapes between operands
	// (Add/Sub) or ragged row literals (NewFromRows).
	ErrDimensionMismatch = fmt.Errorf("%w: dimension mismatch", ErrInvalidArgument)

	// ErrEmptyMatrix signals an operand with no elements where at least one is required.
	ErrEmptyMatrix = fmt.Errorf("%w: empty matrix", ErrInvalidArgument)

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare = fmt.Errorf("%w: matrix is not square", ErrInvalidArgument)

	// ErrNilMatrix indicates that a nil Matrix (receiver or argument) was used.
	ErrNilMatrix = fmt.Errorf("%w: nil matrix", ErrInvalidArgument)
)
