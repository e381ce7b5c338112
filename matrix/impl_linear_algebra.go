// SPDX-License-Identifier: MIT
// Package matrix provides operations on any Matrix implementation:
// element-wise addition and subtraction, transpose, minor extraction and
// the cofactor determinant. All functions perform strict fail-fast
// validation and return clear errors on shape violations.
//
// Notes:
//   - Kernels use the central validators and wrap failures via matrixErrorf.
//   - Results are always freshly allocated *Dense values; operands are never mutated.

package matrix

import "fmt"

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opAdd         = "Add"
	opSub         = "Sub"
	opTranspose   = "Transpose"
	opMinor       = "Minor"
	opDeterminant = "Determinant"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil to avoid creating a non-nil wrapper around a nil cause.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// addSub computes elementwise out = a + sign*b for sign ∈ {+1, -1}.
// Internal helper for Add/Sub to share validation, allocation, and fast-path.
//
// Implementation:
//   - Stage 1: ValidateBinarySameShape(a, b). Allocate result Dense(rows, cols).
//   - Stage 2: Fast-path if both are *Dense - single flat loop 0..n-1.
//     Otherwise, fallback At/Set with fixed i→j order.
//
// Errors:
//   - ErrNilMatrix, ErrEmptyMatrix, ErrDimensionMismatch (all ErrInvalidArgument).
//
// Notes:
//   - Multiplying by ±1 is exact for both int and float64, so sharing one loop
//     for both operators changes no result bit.
func addSub[T Number](a, b Matrix[T], sign T, opTag string) (*Dense[T], error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, matrixErrorf(opTag, err)
	}

	rows, cols := a.Rows(), a.Cols()
	res, err := NewDense[T](rows, cols)
	if err != nil {
		return nil, matrixErrorf(opTag, err)
	}

	// Fast path: *Dense with *Dense → single flat loop.
	if da, okA := a.(*Dense[T]); okA {
		if db, okB := b.(*Dense[T]); okB {
			for idx := range res.data {
				res.data[idx] = da.data[idx] + sign*db.data[idx]
			}

			return res, nil
		}
	}

	// Fallback: interface path with fixed i→j order.
	var i, j int
	var av, bv T
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if av, err = a.At(i, j); err != nil {
				return nil, matrixErrorf(opTag, err)
			}
			if bv, err = b.At(i, j); err != nil {
				return nil, matrixErrorf(opTag, err)
			}
			res.data[i*cols+j] = av + sign*bv
		}
	}

	return res, nil
}

// Add computes the element-wise sum C = A + B and returns a fresh Dense result.
// MAIN DESCRIPTION:
//   - Both operands must be non-empty and share one shape; no broadcasting.
//
// Errors:
//   - ErrEmptyMatrix (an operand has no elements), ErrDimensionMismatch (shape mismatch),
//     ErrNilMatrix (nil operand). All of them match ErrInvalidArgument.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Add[T Number](a, b Matrix[T]) (*Dense[T], error) { return addSub(a, b, T(1), opAdd) }

// Sub computes the element-wise difference C = A - B and returns a fresh Dense result.
// Preconditions and errors are identical to Add.
// Complexity: O(r*c).
func Sub[T Number](a, b Matrix[T]) (*Dense[T], error) { return addSub(a, b, T(-1), opSub) }

// Transpose returns a new (cols×rows) matrix with out[j,i] = m[i,j].
// The empty matrix transposes to the empty matrix; m is not modified.
//
// Errors:
//   - ErrNilMatrix.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Transpose[T Number](m Matrix[T]) (*Dense[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	rows, cols := m.Rows(), m.Cols()
	res, err := NewDense[T](cols, rows) // dims flipped
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	var i, j int
	// Fast-path for Dense → Dense: data[i*cols + j] → res.data[j*rows + i]
	if dm, ok := m.(*Dense[T]); ok {
		var baseSrc int
		for i = 0; i < rows; i++ {
			baseSrc = i * cols
			for j = 0; j < cols; j++ {
				res.data[j*rows+i] = dm.data[baseSrc+j]
			}
		}

		return res, nil
	}

	var v T
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, matrixErrorf(opTranspose, err)
			}
			res.data[j*rows+i] = v
		}
	}

	return res, nil
}

// Transpose is the method form of the package-level Transpose.
// It cannot fail on a non-nil receiver.
func (m *Dense[T]) Transpose() *Dense[T] {
	res, _ := Transpose[T](m)

	return res
}

// Minor returns the (r-1)×(c-1) matrix obtained by deleting row removeRow and
// column removeCol. Remaining rows and columns keep their relative order.
//
// Implementation:
//   - Stage 1: bounds-check both indices against the current shape.
//   - Stage 2: build the kept index lists and delegate the copy to Induced.
//
// Errors:
//   - ErrNilMatrix for a nil receiver.
//   - ErrOutOfRange when either index is outside the current shape.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func (m *Dense[T]) Minor(removeRow, removeCol int) (*Dense[T], error) {
	if m == nil {
		return nil, matrixErrorf(opMinor, ErrNilMatrix)
	}
	if removeRow < 0 || removeRow >= m.r || removeCol < 0 || removeCol >= m.c {
		return nil, matrixErrorf(opMinor, denseErrorf(opMinor, removeRow, removeCol, ErrOutOfRange))
	}

	keepRows := make([]int, 0, m.r-1)
	for i := 0; i < m.r; i++ {
		if i != removeRow {
			keepRows = append(keepRows, i)
		}
	}
	keepCols := make([]int, 0, m.c-1)
	for j := 0; j < m.c; j++ {
		if j != removeCol {
			keepCols = append(keepCols, j)
		}
	}

	res, err := m.Induced(keepRows, keepCols)
	if err != nil {
		return nil, matrixErrorf(opMinor, err)
	}

	return res, nil
}

// Determinant computes det(m) by cofactor (Laplace) expansion along row 0.
// MAIN DESCRIPTION:
//   - 1×1 → the sole element; 2×2 → ad − bc; n ≥ 3 → Σ (−1)^j · m[0,j] · det(minor(0,j)).
//
// Behavior highlights:
//   - Arithmetic stays in T: integer determinants are exact, float64 ones carry
//     ordinary rounding (no compensated summation, no pivoting).
//   - The 0×0 matrix is rejected rather than defined as 1.
//
// Errors:
//   - ErrNonSquare (rows != cols), ErrEmptyMatrix (0×0), ErrNilMatrix.
//
// Complexity:
//   - Time O(n!) by construction; intended for small n only.
func (m *Dense[T]) Determinant() (T, error) {
	if err := ValidateSquareNonEmpty[T](m); err != nil {
		var zero T
		return zero, matrixErrorf(opDeterminant, err)
	}

	return m.cofactorDet()
}

// cofactorDet assumes m is square and non-empty.
func (m *Dense[T]) cofactorDet() (T, error) {
	var det T
	n := m.r
	switch n {
	case 1:
		return m.data[0], nil
	case 2:
		return m.data[0]*m.data[3] - m.data[1]*m.data[2], nil
	}

	sign := T(1)
	for col := 0; col < n; col++ {
		minor, err := m.Minor(0, col)
		if err != nil {
			return det, matrixErrorf(opDeterminant, err)
		}
		sub, err := minor.cofactorDet()
		if err != nil {
			return det, err
		}
		det += sign * m.data[col] * sub
		sign = -sign
	}

	return det, nil
}
