// SPDX-License-Identifier: MIT
// Package matrix — public API facades.
//
// Purpose:
//   - Provide thin entry points for common tasks across the package.
//   - Avoid any logic duplication — each facade delegates to the canonical implementation.
//   - Keep function names explicit and intention-revealing to improve discoverability.

package matrix

// ---------- Constructors & Utilities ----------

// NewZeros returns a new zero-initialized *Dense of size rows×cols.
// It is a thin alias of NewDense with an intention-revealing name.
func NewZeros[T Number](rows, cols int) (*Dense[T], error) {
	return NewDense[T](rows, cols)
}

// CloneMatrix returns a deep copy of m.
// Thin wrapper over (*Dense).Clone for API discoverability; a nil m yields nil.
func CloneMatrix[T Number](m *Dense[T]) *Dense[T] {
	if m == nil {
		return nil
	}

	return m.Clone()
}

// ZerosLike returns a new zero matrix with the same shape as m.
// Handy to preallocate staging buffers.
func ZerosLike[T Number](m Matrix[T]) (*Dense[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf("ZerosLike", err)
	}

	return NewDense[T](m.Rows(), m.Cols())
}

// ---------- Shape & equality ----------

// SameSize reports whether a and b have the same (rows, cols) shape.
// Contents are not compared. A nil operand is never the same size as anything.
func SameSize[T Number](a, b Matrix[T]) bool {
	if ValidateNotNil(a) != nil || ValidateNotNil(b) != nil {
		return false
	}

	return ValidateSameShape(a, b) == nil
}

// Equal reports whether a and b have identical shapes and equal elements.
// Any shape mismatch, including against the empty matrix, yields false.
// Complexity: O(r*c).
func Equal[T Number](a, b Matrix[T]) bool {
	if !SameSize(a, b) {
		return false
	}
	// Fast path: compare flat buffers.
	if da, okA := a.(*Dense[T]); okA {
		if db, okB := b.(*Dense[T]); okB {
			return da.Equal(db)
		}
	}

	rows, cols := a.Rows(), a.Cols()
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			av, errA := a.At(i, j)
			bv, errB := b.At(i, j)
			if errA != nil || errB != nil || av != bv {
				return false
			}
		}
	}

	return true
}

// ---------- Arithmetic & structure ----------

// Sum is an alias for Add: element-wise a + b.
// Complexity: O(rc).
func Sum[T Number](a, b Matrix[T]) (*Dense[T], error) { return Add(a, b) }

// Diff is an alias for Sub: element-wise a − b.
// Complexity: O(rc).
func Diff[T Number](a, b Matrix[T]) (*Dense[T], error) { return Sub(a, b) }

// T is an alias for Transpose: returns mᵀ.
func T[E Number](m Matrix[E]) (*Dense[E], error) { return Transpose(m) }

// Det is a function form of (*Dense).Determinant.
// A nil m reports ErrNilMatrix.
func Det[T Number](m *Dense[T]) (T, error) { return m.Determinant() }
