// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set/Ref return errors instead of panicking.
//   - Keep value semantics explicit: Clone/Assign deep-copy, Take/MoveFrom transfer storage.
//   - Support copy-based submatrix extraction (Induced), the building block of Minor.
//
// Invariants (hold after every operation, including Take/MoveFrom/Swap):
//   - len(data) == r*c, r >= 0, c >= 0.
//   - No two distinct *Dense values share a backing buffer.
//
// Complexity quicksheet:
//   - NewDense: O(r*c) zero-init; At/Set/Ref: O(1); Clone/Assign: O(r*c);
//     Take/MoveFrom/Swap: O(1); Induced: O(r'*c').

package matrix

import (
	"fmt"
	"io"
	"math"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt     = "At"      // method tag used in error wrappers
	ctxSet    = "Set"     // method tag used in error wrappers
	ctxRef    = "Ref"     // method tag used in error wrappers
	ctxInduce = "Induced" // method tag for Dense.Induced
)

// ---------- Formatting literals ----------
const (
	_fmtSep     = " "
	_fmtRowTerm = "\n"
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
// Format: "Dense.<method>(row,col): %w". The sentinel stays matchable via errors.Is.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete row-major matrix over T.
//   - r,c hold dimensions (rows, cols).
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
//
// The zero value is the empty 0×0 matrix and is ready to use.
// A *Dense is not safe for concurrent mutation; callers synchronize externally.
type Dense[T Number] struct {
	r, c int // row and column counts (>= 0)
	data []T // contiguous row-major storage (len == r*c)
}

// Compile-time assertions for interface & fmt.Stringer conformance.
var (
	_ Matrix[int]     = (*Dense[int])(nil)
	_ Matrix[float64] = (*Dense[float64])(nil)
	_ fmt.Stringer    = (*Dense[int])(nil)
	_ io.WriterTo     = (*Dense[float64])(nil)
)

// New returns the empty 0×0 matrix.
// Complexity: O(1).
func New[T Number]() *Dense[T] {
	return &Dense[T]{}
}

// NewDense creates an rows×cols zero matrix using row-major storage.
// MAIN DESCRIPTION:
//   - Public constructor with strict shape validation.
//
// Implementation:
//   - Stage 1: validate rows>=0 && cols>=0; else ErrInvalidDimensions.
//   - Stage 2: allocate a zero-filled buffer (make() zero-fills deterministically).
//
// Behavior highlights:
//   - Zero sides are legal: NewDense(0,0) is the empty matrix, NewDense(0,3) a 0×3 one.
//   - Every element starts as the additive identity of T (0 or 0.0).
//
// Errors:
//   - ErrInvalidDimensions (negative side, or rows*cols overflows int).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDense[T Number](rows, cols int) (*Dense[T], error) {
	if rows < 0 || cols < 0 {
		return nil, fmt.Errorf("NewDense(%d,%d): %w", rows, cols, ErrInvalidDimensions)
	}
	if cols != 0 && rows > math.MaxInt/cols {
		return nil, fmt.Errorf("NewDense(%d,%d): %w", rows, cols, ErrInvalidDimensions)
	}

	return &Dense[T]{
		r:    rows,
		c:    cols,
		data: make([]T, rows*cols),
	}, nil
}

// NewSquare creates an n×n zero matrix. n==0 yields the empty matrix.
// Complexity: O(n^2).
func NewSquare[T Number](n int) (*Dense[T], error) {
	return NewDense[T](n, n)
}

// NewFromShape creates a zero matrix with the packaged (rows, cols) pair.
// Equivalent to NewDense(s.Rows, s.Cols).
func NewFromShape[T Number](s Shape) (*Dense[T], error) {
	return NewDense[T](s.Rows, s.Cols)
}

// NewFromRows builds a matrix from row literals, copying every value.
// MAIN DESCRIPTION:
//   - Convenience constructor for fixtures and literals: [][]T{{1,2},{3,4}} → 2×2.
//
// Implementation:
//   - Stage 1: take cols from the first row; reject ragged input.
//   - Stage 2: copy rows into the flat buffer in order.
//
// Behavior highlights:
//   - nil or zero-length input yields the empty matrix.
//   - The caller's slices are never retained.
//
// Errors:
//   - ErrDimensionMismatch when a row length differs from the first row.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewFromRows[T Number](rows [][]T) (*Dense[T], error) {
	if len(rows) == 0 {
		return New[T](), nil
	}
	cols := len(rows[0])
	for i := range rows {
		if len(rows[i]) != cols {
			return nil, fmt.Errorf("NewFromRows: row %d has %d elements, want %d: %w",
				i, len(rows[i]), cols, ErrDimensionMismatch)
		}
	}

	m := &Dense[T]{r: len(rows), c: cols, data: make([]T, len(rows)*cols)}
	for i := range rows {
		copy(m.data[i*cols:(i+1)*cols], rows[i])
	}

	return m, nil
}

// Rows returns the row count. No side effects.
func (m *Dense[T]) Rows() int { return m.r }

// Cols returns the column count. No side effects.
func (m *Dense[T]) Cols() int { return m.c }

// Shape packs Rows() and Cols() into a single value.
// Complexity: O(1).
func (m *Dense[T]) Shape() Shape { return Shape{Rows: m.r, Cols: m.c} }

// IsEmpty reports whether m is the 0×0 matrix.
func (m *Dense[T]) IsEmpty() bool { return m.r == 0 && m.c == 0 }

// indexOf computes the row-major offset or returns ErrOutOfRange.
// Shared by At, Set and Ref so all three apply the identical bounds check.
// Negative indices (the signed image of an unsigned wraparound) fail the same way.
func (m *Dense[T]) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r {
		return 0, ErrOutOfRange
	}
	if col < 0 || col >= m.c {
		return 0, ErrOutOfRange
	}

	// Row-major offset: i*c + j.
	return row*m.c + col, nil
}

// At returns the value at (row, col) or ErrOutOfRange.
// MAIN DESCRIPTION:
//   - Safe, read-only element access.
//
// Errors:
//   - ErrOutOfRange when out of bounds (wrapped with "Dense.At(row,col)").
//
// Complexity:
//   - Time O(1), Space O(1).
func (m *Dense[T]) At(row, col int) (T, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		var zero T
		return zero, denseErrorf(ctxAt, row, col, err)
	}

	return m.data[off], nil
}

// Set stores v at (row, col) or returns ErrOutOfRange.
// On error nothing is written and the shape never changes.
// Complexity: O(1).
func (m *Dense[T]) Set(row, col int, v T) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxSet, row, col, err)
	}
	m.data[off] = v // direct flat write

	return nil
}

// Ref returns a pointer to the element at (row, col) for in-place updates,
// e.g. *p += 1. It applies the same bounds check and error as At/Set.
//
// The pointer addresses the backing storage, not m. Once Assign, MoveFrom,
// Take or Swap hands that storage elsewhere, writes through the pointer no
// longer reach m; after m.Swap(o) or o.MoveFrom(m) they land in o.
func (m *Dense[T]) Ref(row, col int) (*T, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		return nil, denseErrorf(ctxRef, row, col, err)
	}

	return &m.data[off], nil
}

// Clone returns a deep copy (new buffer, same shape and values).
// MAIN DESCRIPTION:
//   - Produce an independent Dense; mutations on either side never leak.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func (m *Dense[T]) Clone() *Dense[T] {
	cp := make([]T, len(m.data))
	copy(cp, m.data)

	return &Dense[T]{r: m.r, c: m.c, data: cp}
}

// Assign replaces the contents of m with a deep copy of src (copy assignment).
// Self-assignment is a no-op. The copy is built before m is touched, so m is
// either fully replaced or left unchanged.
//
// Errors:
//   - ErrNilMatrix when src is nil.
func (m *Dense[T]) Assign(src *Dense[T]) error {
	if src == nil {
		return fmt.Errorf("Dense.Assign: %w", ErrNilMatrix)
	}
	if src == m {
		return nil
	}
	tmp := src.Clone()
	m.Swap(tmp)

	return nil
}

// Take transfers the storage of m to a new value in O(1) and leaves m as the
// empty 0×0 matrix. No element is copied.
func (m *Dense[T]) Take() *Dense[T] {
	out := &Dense[T]{r: m.r, c: m.c, data: m.data}
	m.r, m.c, m.data = 0, 0, nil

	return out
}

// MoveFrom transfers the storage of src into m (move assignment) and leaves
// src empty. The previous contents of m are released. Self-move is a no-op.
// A nil src leaves m unchanged.
func (m *Dense[T]) MoveFrom(src *Dense[T]) {
	if src == nil || src == m {
		return
	}
	m.r, m.c, m.data = src.r, src.c, src.data
	src.r, src.c, src.data = 0, 0, nil
}

// Swap exchanges shape and storage of m and other in O(1).
// A nil m or other, or other == m, is a no-op.
func (m *Dense[T]) Swap(other *Dense[T]) {
	if m == nil || other == nil || m == other {
		return
	}
	m.r, other.r = other.r, m.r
	m.c, other.c = other.c, m.c
	m.data, other.data = other.data, m.data
}

// Equal reports whether m and other have identical shape and elements.
// A shape mismatch (including against the empty matrix) yields false.
func (m *Dense[T]) Equal(other *Dense[T]) bool {
	if m == other {
		return true
	}
	if m == nil || other == nil {
		return false
	}
	if m.r != other.r || m.c != other.c {
		return false
	}
	for k := range m.data {
		if m.data[k] != other.data[k] {
			return false
		}
	}

	return true
}

// WriteTo renders m as Rows() lines, each holding the row's elements in order
// separated by single spaces and terminated by "\n". The empty matrix writes
// nothing. Implements io.WriterTo.
//
// Complexity: O(r*c).
func (m *Dense[T]) WriteTo(w io.Writer) (int64, error) {
	var total int64
	var i, j, base int
	for i = 0; i < m.r; i++ {
		var b strings.Builder
		base = i * m.c
		for j = 0; j < m.c; j++ {
			if j > 0 {
				b.WriteString(_fmtSep)
			}
			fmt.Fprint(&b, m.data[base+j])
		}
		b.WriteString(_fmtRowTerm)

		n, err := io.WriteString(w, b.String())
		total += int64(n)
		if err != nil {
			return total, err
		}
	}

	return total, nil
}

// String implements fmt.Stringer with the same layout as WriteTo.
// Intended for diagnostics; it is not a parseable persistence format.
func (m *Dense[T]) String() string {
	var b strings.Builder
	_, _ = m.WriteTo(&b) // strings.Builder never fails

	return b.String()
}

// Induced materializes a copy submatrix using explicit index sets.
// MAIN DESCRIPTION:
//   - Copy rows/cols at the given index lists, in the given order (duplicates allowed).
//
// Implementation:
//   - Stage 1: bounds-check every index up front so a failure allocates nothing.
//   - Stage 2: nested loops with direct offset math.
//
// Returns:
//   - *Dense: independent copy with size len(rowsIdx)×len(colsIdx).
//
// Errors:
//   - ErrOutOfRange (index outside bounds).
//
// Complexity:
//   - Time O(rp*cp), Space O(rp*cp).
func (m *Dense[T]) Induced(rowsIdx, colsIdx []int) (*Dense[T], error) {
	for _, ri := range rowsIdx {
		if ri < 0 || ri >= m.r {
			return nil, fmt.Errorf("Dense.%s: row index %d: %w", ctxInduce, ri, ErrOutOfRange)
		}
	}
	for _, cj := range colsIdx {
		if cj < 0 || cj >= m.c {
			return nil, fmt.Errorf("Dense.%s: col index %d: %w", ctxInduce, cj, ErrOutOfRange)
		}
	}

	rp, cp := len(rowsIdx), len(colsIdx)
	res := &Dense[T]{r: rp, c: cp, data: make([]T, rp*cp)}

	var i, j, src int
	for i = 0; i < rp; i++ {
		src = rowsIdx[i] * m.c
		for j = 0; j < cp; j++ {
			res.data[i*cp+j] = m.data[src+colsIdx[j]]
		}
	}

	return res, nil
}

// Do visits each element (i,j) in row-major order and calls f(i,j,v).
// Read-only visitor; stops early when f returns false.
//
// Complexity:
//   - Time O(r*c), Space O(1).
func (m *Dense[T]) Do(f func(i, j int, v T) bool) {
	var i, j, base int
	for i = 0; i < m.r; i++ {
		base = i * m.c
		for j = 0; j < m.c; j++ {
			if !f(i, j, m.data[base+j]) {
				return // early exit requested by caller
			}
		}
	}
}

// Apply replaces each element with f(i,j,v) in-place, in row-major order.
// The shape never changes.
func (m *Dense[T]) Apply(f func(i, j int, v T) T) {
	var i, j, base int
	for i = 0; i < m.r; i++ {
		base = i * m.c
		for j = 0; j < m.c; j++ {
			m.data[base+j] = f(i, j, m.data[base+j])
		}
	}
}
