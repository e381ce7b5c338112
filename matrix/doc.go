// Package matrix offers a small dense two-dimensional numeric matrix value type.
//
// The matrix package provides:
//
//   - Dense[T], a row-major rows×cols container over T ∈ {int, float64}.
//   - Bounds-checked element access (At, Set, Ref) that never panics.
//   - Value semantics: Clone and Assign deep-copy, Take and MoveFrom transfer
//     storage and leave the source as the empty 0×0 matrix.
//   - Shape and equality helpers (Shape, SameSize, Equal).
//   - Element-wise Add/Sub, Transpose, Minor and a cofactor Determinant.
//   - A plain text rendering (String, WriteTo): one line per row, elements
//     separated by single spaces.
//
// Errors come in two kinds, ErrOutOfRange and ErrInvalidArgument; every
// specific sentinel (ErrNonSquare, ErrEmptyMatrix, ...) matches its kind via
// errors.Is.
//
// The determinant is computed by Laplace expansion along the first row, which
// costs O(n!) time. It is meant for small matrices only.
//
// A *Dense is not safe for concurrent mutation; there is no global state.
//
// See the examples in this package for usage patterns.
package matrix
