// SPDX-License-Identifier: MIT

package matrix_test

import (
	"testing"

	"github.com/katalvlaran/densematrix/matrix"
	"github.com/stretchr/testify/require"
)

func TestValidateNotNil(t *testing.T) {
	require.NoError(t, matrix.ValidateNotNil[int](matrix.New[int]()))
	require.ErrorIs(t, matrix.ValidateNotNil[int](nil), matrix.ErrNilMatrix)

	var typedNil *matrix.Dense[int]
	require.ErrorIs(t, matrix.ValidateNotNil[int](typedNil), matrix.ErrNilMatrix)
}

func TestValidateNotEmpty(t *testing.T) {
	require.NoError(t, matrix.ValidateNotEmpty[int](MustDense[int](t, 1, 1)))
	require.ErrorIs(t, matrix.ValidateNotEmpty[int](matrix.New[int]()), matrix.ErrEmptyMatrix)
	require.ErrorIs(t, matrix.ValidateNotEmpty[int](MustDense[int](t, 3, 0)), matrix.ErrEmptyMatrix)
}

func TestValidateSameShape(t *testing.T) {
	a := MustDense[float64](t, 2, 3)
	require.NoError(t, matrix.ValidateSameShape[float64](a, MustDense[float64](t, 2, 3)))

	err := matrix.ValidateSameShape[float64](a, MustDense[float64](t, 3, 3))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	require.Contains(t, err.Error(), "Rows")

	err = matrix.ValidateSameShape[float64](a, MustDense[float64](t, 2, 2))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	require.Contains(t, err.Error(), "Columns")
}

func TestValidateSquare(t *testing.T) {
	require.NoError(t, matrix.ValidateSquare[int](MustDense[int](t, 4, 4)))
	require.NoError(t, matrix.ValidateSquare[int](matrix.New[int]()))
	require.ErrorIs(t, matrix.ValidateSquare[int](MustDense[int](t, 4, 1)), matrix.ErrNonSquare)
}

// TestValidateCompositeOrder pins the precedence of the composite validators.
func TestValidateCompositeOrder(t *testing.T) {
	empty := matrix.New[int]()
	rect := MustDense[int](t, 2, 3)

	// Nil wins over emptiness.
	require.ErrorIs(t, matrix.ValidateBinarySameShape[int](nil, empty), matrix.ErrNilMatrix)
	// Emptiness wins over mismatch.
	err := matrix.ValidateBinarySameShape[int](rect, empty)
	require.ErrorIs(t, err, matrix.ErrEmptyMatrix)
	require.NotErrorIs(t, err, matrix.ErrDimensionMismatch)

	// Non-square wins over emptiness.
	err = matrix.ValidateSquareNonEmpty[int](MustDense[int](t, 0, 3))
	require.ErrorIs(t, err, matrix.ErrNonSquare)
	require.ErrorIs(t, matrix.ValidateSquareNonEmpty[int](empty), matrix.ErrEmptyMatrix)
	require.NoError(t, matrix.ValidateSquareNonEmpty[int](MustDense[int](t, 1, 1)))
}
