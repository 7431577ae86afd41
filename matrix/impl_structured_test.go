// SPDX-License-Identifier: MIT

package matrix_test

import (
	"testing"

	"github.com/katalvlaran/matcalc/matrix"
	"github.com/stretchr/testify/require"
)

func TestStructuredConstructors_RejectNonPositive(t *testing.T) {
	t.Parallel()

	_, err := matrix.NewLowerTriangular(0)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
	_, err = matrix.NewUpperTriangular(-2)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
	_, err = matrix.NewDiagonal(0)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
	_, err = matrix.NewDiagonalFrom(nil)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
	_, err = matrix.NewIdentity(0)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

func TestLowerTriangular_RowLayout(t *testing.T) {
	t.Parallel()

	m, err := matrix.NewLowerTriangular(4)
	require.NoError(t, err)
	require.Equal(t, matrix.KindLowerTriangular, m.Kind())
	for i := 0; i < 4; i++ {
		require.Equal(t, i+1, m.RowLen(i))
	}
	require.Len(t, m.Packed(), 10)

	// fill every stored cell with a distinct value and read back the packing
	v := 1.0
	for i := 0; i < 4; i++ {
		for j := 0; j <= i; j++ {
			require.NoError(t, m.Set(i, j, v))
			v++
		}
	}
	require.Equal(t, []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}, m.Packed())
	RequireElements(t, [][]float64{
		{1, 0, 0, 0},
		{2, 3, 0, 0},
		{4, 5, 6, 0},
		{7, 8, 9, 10},
	}, m)
}

func TestUpperTriangular_RowLayout(t *testing.T) {
	t.Parallel()

	m, err := matrix.NewUpperTriangular(3)
	require.NoError(t, err)
	require.Equal(t, matrix.KindUpperTriangular, m.Kind())
	require.Equal(t, 3, m.RowLen(0))
	require.Equal(t, 1, m.RowLen(2))

	v := 1.0
	for i := 0; i < 3; i++ {
		for j := i; j < 3; j++ {
			require.NoError(t, m.Set(i, j, v))
			v++
		}
	}
	require.Equal(t, []float64{1, 2, 3, 4, 5, 6}, m.Packed())
	RequireElements(t, [][]float64{
		{1, 2, 3},
		{0, 4, 5},
		{0, 0, 6},
	}, m)
}

func TestDiagonal_Layout(t *testing.T) {
	t.Parallel()

	d, err := matrix.NewDiagonalFrom([]float64{2, 3, 4})
	require.NoError(t, err)
	require.Equal(t, matrix.KindDiagonal, d.Kind())
	require.Equal(t, 1, d.RowLen(2))
	require.Equal(t, []float64{2, 3, 4}, d.Packed())
	RequireElements(t, [][]float64{{2, 0, 0}, {0, 3, 0}, {0, 0, 4}}, d)

	id, err := matrix.NewIdentity(2)
	require.NoError(t, err)
	RequireElements(t, [][]float64{{1, 0}, {0, 1}}, id)
}

// Writing a non-zero value outside a structured footprint always fails;
// writing zero there always succeeds and leaves every readable element unchanged.
func TestStructured_FootprintWrites(t *testing.T) {
	t.Parallel()

	outside := map[string][2]int{
		"lower":    {0, 2},
		"upper":    {2, 0},
		"diagonal": {1, 2},
	}
	for _, f := range Fixtures(t) {
		pos, ok := outside[f.name]
		if !ok {
			continue
		}
		t.Run(f.name, func(t *testing.T) {
			before := Elements(t, f.m)

			err := f.m.Set(pos[0], pos[1], 1.5)
			require.ErrorIs(t, err, matrix.ErrInvalidElementPosition)
			require.Equal(t, before, Elements(t, f.m))

			require.NoError(t, f.m.Set(pos[0], pos[1], 0))
			require.Equal(t, before, Elements(t, f.m))
		})
	}
}

func TestStructured_IndexChecksComeFirst(t *testing.T) {
	t.Parallel()

	for _, f := range Fixtures(t) {
		t.Run(f.name, func(t *testing.T) {
			_, err := f.m.At(3, 0)
			require.ErrorIs(t, err, matrix.ErrOutOfRange)
			_, err = f.m.At(0, -1)
			require.ErrorIs(t, err, matrix.ErrOutOfRange)
			err = f.m.Set(-1, 5, 0)
			require.ErrorIs(t, err, matrix.ErrOutOfRange)
			err = f.m.Set(0, 3, 7)
			require.ErrorIs(t, err, matrix.ErrOutOfRange)
		})
	}
}

func TestStructured_DenseAndClone(t *testing.T) {
	t.Parallel()

	for _, f := range Fixtures(t) {
		t.Run(f.name, func(t *testing.T) {
			f.m.SetName("X")
			want := Elements(t, f.m)

			d := f.m.Dense()
			require.Equal(t, matrix.KindGeneral, d.Kind())
			require.Empty(t, d.Name())
			RequireElements(t, want, d)

			c := f.m.Clone()
			require.Equal(t, f.m.Kind(), c.Kind())
			require.Equal(t, "X", c.Name())
			RequireElements(t, want, c)

			// mutate copies; the source must not change
			require.NoError(t, d.Set(0, 0, 1000))
			require.NoError(t, c.Set(0, 0, 1000))
			require.Equal(t, want, Elements(t, f.m))
		})
	}
}

// Concrete end-to-end from the calculator walkthrough.
func TestLowerTriangular_EndToEnd(t *testing.T) {
	t.Parallel()

	a, err := matrix.NewLowerTriangular(2)
	require.NoError(t, err)
	require.NoError(t, a.Set(0, 0, 1))
	require.NoError(t, a.Set(1, 0, 2))
	require.NoError(t, a.Set(1, 1, 3))
	RequireElements(t, [][]float64{{1, 0}, {2, 3}}, a.Dense())

	b, err := matrix.NewLowerTriangular(2)
	require.NoError(t, err)
	require.NoError(t, b.Set(0, 0, 5))
	require.NoError(t, b.Set(1, 0, 6))
	require.NoError(t, b.Set(1, 1, 7))

	sum, err := matrix.Add(a, b)
	require.NoError(t, err)
	lt, ok := sum.(*matrix.LowerTriangular)
	require.True(t, ok, "want *LowerTriangular, got %T", sum)
	require.Equal(t, []float64{6, 8, 10}, lt.Packed())
	require.Equal(t, 1, lt.RowLen(0))
	require.Equal(t, 2, lt.RowLen(1))
}
