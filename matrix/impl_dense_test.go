// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for the Dense (General) layout.
package matrix_test

import (
	"testing"

	"github.com/katalvlaran/matcalc/matrix"
	"github.com/stretchr/testify/require"
)

// TestNewDenseInvalidDimensions ensures that NewDense rejects non-positive dimensions.
func TestNewDenseInvalidDimensions(t *testing.T) {
	_, err := matrix.NewDense(0, 5)                      // attempt to create with zero rows
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions) // expect ErrInvalidDimensions

	_, err = matrix.NewDense(5, 0)                       // attempt to create with zero columns
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions) // expect ErrInvalidDimensions

	_, err = matrix.NewDense(-1, 2)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

// TestRowsColsKind verifies dimension accessors and the General kind.
func TestRowsColsKind(t *testing.T) {
	m, err := matrix.NewDense(3, 4)
	require.NoError(t, err)

	require.Equal(t, 3, m.Rows())
	require.Equal(t, 4, m.Cols())
	require.Equal(t, matrix.Shape{Rows: 3, Cols: 4}, m.Shape())
	require.Equal(t, matrix.KindGeneral, m.Kind())
	RequireElements(t, [][]float64{{0, 0, 0, 0}, {0, 0, 0, 0}, {0, 0, 0, 0}}, m)
}

// TestAtSetOutOfBounds ensures At() and Set() return ErrIndexOutOfBounds on invalid access.
func TestAtSetOutOfBounds(t *testing.T) {
	m, err := matrix.NewDense(2, 2)
	require.NoError(t, err)

	_, err = m.At(-1, 0)                                // negative row index
	require.ErrorIs(t, err, matrix.ErrIndexOutOfBounds) // expect ErrIndexOutOfBounds

	_, err = m.At(0, 2) // column index out of range
	require.ErrorIs(t, err, matrix.ErrIndexOutOfBounds)

	err = m.Set(2, 0, 1.23) // row index out of range
	require.ErrorIs(t, err, matrix.ErrIndexOutOfBounds)

	err = m.Set(0, -1, 4.56) // negative column index
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}

// TestSetGet validates correct behavior of Set() followed by At() on valid indices.
func TestSetGet(t *testing.T) {
	m, err := matrix.NewDense(2, 3)
	require.NoError(t, err)

	require.NoError(t, m.Set(1, 2, 7.89))
	require.Equal(t, 7.89, MustAt(t, m, 1, 2))
}

// TestNewDenseFrom covers pre-populated construction and its shape checks.
func TestNewDenseFrom(t *testing.T) {
	data := [][]float64{{1, 2, 3}, {4, 5, 6}}
	m, err := matrix.NewDenseFrom(2, 3, data)
	require.NoError(t, err)
	RequireElements(t, data, m)

	// caller's slices are not retained
	data[0][0] = 100
	require.Equal(t, 1.0, MustAt(t, m, 0, 0))

	_, err = matrix.NewDenseFrom(3, 3, [][]float64{{1, 2, 3}, {4, 5, 6}})
	require.ErrorIs(t, err, matrix.ErrShapeMismatch)

	_, err = matrix.NewDenseFrom(2, 3, [][]float64{{1, 2, 3}, {4, 5}})
	require.ErrorIs(t, err, matrix.ErrShapeMismatch)

	_, err = matrix.NewDenseFrom(0, 3, nil)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	z, err := matrix.NewDenseFrom(1, 2, nil)
	require.NoError(t, err)
	RequireElements(t, [][]float64{{0, 0}}, z)
}

// TestCloneIndependence ensures Clone() returns a deep copy that does not share storage.
func TestCloneIndependence(t *testing.T) {
	m := MustDense(t, [][]float64{{1, 0}, {0, 2}})
	m.SetName("A")

	clone := m.Clone()
	require.Equal(t, "A", clone.Name())
	require.NoError(t, clone.Set(0, 0, 3.0))

	require.Equal(t, 1.0, MustAt(t, m, 0, 0))
	require.Equal(t, 3.0, MustAt(t, clone, 0, 0))
}

// TestDenseCopyIsUnnamedAndIndependent checks Dense() on a General matrix.
func TestDenseCopyIsUnnamedAndIndependent(t *testing.T) {
	m := MustDense(t, [][]float64{{1, 2}})
	m.SetName("A")

	d := m.Dense()
	require.Empty(t, d.Name())
	require.NoError(t, d.Set(0, 1, 9))
	require.Equal(t, 2.0, MustAt(t, m, 0, 1))
}

// TestRowAndDo covers the row accessor and the visitor's order/early stop.
func TestRowAndDo(t *testing.T) {
	m := MustDense(t, [][]float64{{1, 2}, {3, 4}})

	row, err := m.Row(1)
	require.NoError(t, err)
	require.Equal(t, []float64{3, 4}, row)
	row[0] = 99
	require.Equal(t, 3.0, MustAt(t, m, 1, 0))

	_, err = m.Row(2)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	var seen []float64
	m.Do(func(_, _ int, v float64) bool {
		seen = append(seen, v)
		return len(seen) < 3
	})
	require.Equal(t, []float64{1, 2, 3}, seen)
}
