// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures covering every layout.
//   • Keep all data finite and integral so float comparisons are exact.

package matrix_test

import (
	"testing"

	"github.com/katalvlaran/matcalc/matrix"
	"github.com/stretchr/testify/require"
)

// hide WRAPS any Matrix to hide its concrete type from type switches.
// Use hide{X} in tests to force the dense fallback arm of a kernel.
type hide struct{ matrix.Matrix }

// MustDense builds a Dense from row-major data or fails the test.
func MustDense(t *testing.T, data [][]float64) *matrix.Dense {
	t.Helper()
	require.NotEmpty(t, data)
	m, err := matrix.NewDenseFrom(len(data), len(data[0]), data)
	require.NoError(t, err)

	return m
}

// MustKind builds a matrix of the given kind from square or rectangular data.
func MustKind(t *testing.T, kind matrix.Kind, data [][]float64) matrix.Matrix {
	t.Helper()
	require.NotEmpty(t, data)
	m, err := matrix.New(kind, matrix.Shape{Rows: len(data), Cols: len(data[0])}, data)
	require.NoError(t, err)

	return m
}

// MustAt reads (i,j) or fails the test.
func MustAt(t *testing.T, m matrix.Matrix, i, j int) float64 {
	t.Helper()
	v, err := m.At(i, j)
	require.NoError(t, err)

	return v
}

// Elements returns the full dense content of m as rows.
func Elements(t *testing.T, m matrix.Matrix) [][]float64 {
	t.Helper()
	out := make([][]float64, m.Rows())
	for i := range out {
		out[i] = make([]float64, m.Cols())
		for j := range out[i] {
			out[i][j] = MustAt(t, m, i, j)
		}
	}

	return out
}

// RequireElements asserts that m reads exactly want at every position.
func RequireElements(t *testing.T, want [][]float64, m matrix.Matrix) {
	t.Helper()
	require.Equal(t, len(want), m.Rows(), "rows")
	require.Equal(t, len(want[0]), m.Cols(), "cols")
	require.Equal(t, want, Elements(t, m))
}

// fixture is a named 3×3 matrix used in cross-layout tables.
type fixture struct {
	name string
	m    matrix.Matrix
}

// Fixtures returns one 3×3 matrix per layout, with distinct non-zero values.
func Fixtures(t *testing.T) []fixture {
	t.Helper()

	return []fixture{
		{"general", MustKind(t, matrix.KindGeneral, [][]float64{
			{1, 2, 3},
			{4, 5, 6},
			{7, 8, 9},
		})},
		{"lower", MustKind(t, matrix.KindLowerTriangular, [][]float64{
			{2, 0, 0},
			{3, 4, 0},
			{5, 6, 7},
		})},
		{"upper", MustKind(t, matrix.KindUpperTriangular, [][]float64{
			{-1, 2, -3},
			{0, 4, 5},
			{0, 0, 6},
		})},
		{"diagonal", MustKind(t, matrix.KindDiagonal, [][]float64{
			{10, 0, 0},
			{0, 20, 0},
			{0, 0, 30},
		})},
	}
}
