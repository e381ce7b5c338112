// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic test fixtures and utilities for the kernels.
//   • Bridge to gonum/mat so floating-point results can be checked against an
//     independent implementation.

package matrix_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/densematrix/matrix"
	"gonum.org/v1/gonum/mat"
)

// hide wraps any Matrix to hide its concrete type from type assertions.
// Use hide[T]{X} in tests to force the non-*Dense (fallback) paths.
type hide[T matrix.Number] struct{ matrix.Matrix[T] }

// MustDense allocates an r×c *Dense or fails the test (fatal on error).
func MustDense[T matrix.Number](t testing.TB, r, c int) *matrix.Dense[T] {
	t.Helper()
	m, err := matrix.NewDense[T](r, c)
	if err != nil {
		t.Fatalf("NewDense(%d,%d): %v", r, c, err)
	}

	return m
}

// MustRows builds a *Dense from row literals or fails the test.
func MustRows[T matrix.Number](t testing.TB, rows [][]T) *matrix.Dense[T] {
	t.Helper()
	m, err := matrix.NewFromRows(rows)
	if err != nil {
		t.Fatalf("NewFromRows(%v): %v", rows, err)
	}

	return m
}

// MustAt reads (i,j) or fails the test.
func MustAt[T matrix.Number](t testing.TB, m matrix.Matrix[T], i, j int) T {
	t.Helper()
	v, err := m.At(i, j)
	if err != nil {
		t.Fatalf("At(%d,%d): %v", i, j, err)
	}

	return v
}

// fillRand fills m with small integers in [-9, 9] from a seeded source.
// Integer-valued entries keep float64 determinants well within exact range
// for the sizes used in tests.
func fillRand[T matrix.Number](m *matrix.Dense[T], seed int64) {
	rng := rand.New(rand.NewSource(seed))
	m.Apply(func(_, _ int, _ T) T {
		return T(rng.Intn(19) - 9)
	})
}

// toGonum copies a float64 Dense into a gonum *mat.Dense.
func toGonum(t testing.TB, m *matrix.Dense[float64]) *mat.Dense {
	t.Helper()
	r, c := m.Rows(), m.Cols()
	data := make([]float64, 0, r*c)
	m.Do(func(_, _ int, v float64) bool {
		data = append(data, v)
		return true
	})

	return mat.NewDense(r, c, data)
}

// detTolerance scales an absolute tolerance with the magnitude of want.
func detTolerance(want float64) float64 {
	return 1e-9 * math.Max(1, math.Abs(want))
}
