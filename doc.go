// Package densematrix is a small dense two-dimensional numeric matrix library.
//
// What is densematrix?
//
//	A value-semantic matrix type over int or float64 with:
//		• Construction: empty, square, rectangular, from a shape or from row literals
//		• Bounds-checked access: At / Set / Ref never panic
//		• Copy & move: Clone / Assign deep-copy; Take / MoveFrom transfer storage
//		• Arithmetic: element-wise Add / Sub with strict shape checks
//		• Structure: Transpose, Minor
//		• Determinant: recursive cofactor (Laplace) expansion for small matrices
//
// Under the hood:
//
//	matrix/          — the Dense[T] type, validators, sentinel errors and kernels
//	cmd/matrixdemo/  — demonstration command (walkthrough, det, transpose)
//
// Quick example:
//
//	m, _ := matrix.NewFromRows([][]int{{1, 2}, {3, 4}})
//	det, _ := m.Determinant() // -2
//
//	go get github.com/katalvlaran/densematrix/matrix
package densematrix
