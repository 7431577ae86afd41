// SPDX-License-Identifier: MIT

// Package matrix - packed triangular storage.
//
// Both triangular layouts store n(n+1)/2 values in one flat buffer, row by
// row. Row i occupies data[off(i) : off(i)+k(i)] where
//
//	lower: k(i) = i+1,  off(i) = i(i+1)/2,       columns 0..i
//	upper: k(i) = n-i,  off(i) = i*n - i(i-1)/2, columns i..n-1
//
// Positions outside the footprint are implicit zeros: At returns 0, Set
// accepts 0 as a no-op and rejects anything else with ErrInvalidElementPosition.

package matrix

import "fmt"

const (
	typLower = "LowerTriangular"
	typUpper = "UpperTriangular"
)

// packedLen is the stored element count of an n×n triangle.
func packedLen(n int) int { return n * (n + 1) / 2 }

// newSquareOrErr validates an n×n request for the structured constructors.
func newSquareOrErr(ctor string, n int) error {
	if err := (Shape{Rows: n, Cols: n}).validate(); err != nil {
		return fmt.Errorf("%s(%d): %w", ctor, n, err)
	}

	return nil
}

// LowerTriangular is an n×n matrix whose entries above the main diagonal are
// structurally zero.
type LowerTriangular struct {
	named
	n    int       // order
	data []float64 // packed rows, len == n(n+1)/2
}

var (
	_ Matrix       = (*LowerTriangular)(nil)
	_ fmt.Stringer = (*LowerTriangular)(nil)
)

// NewLowerTriangular returns a zero-filled n×n lower-triangular matrix.
// Errors: ErrInvalidDimensions when n <= 0.
func NewLowerTriangular(n int) (*LowerTriangular, error) {
	if err := newSquareOrErr("NewLowerTriangular", n); err != nil {
		return nil, err
	}

	return &LowerTriangular{n: n, data: make([]float64, packedLen(n))}, nil
}

// Rows returns n.
func (m *LowerTriangular) Rows() int { return m.n }

// Cols returns n.
func (m *LowerTriangular) Cols() int { return m.n }

// Shape returns n×n.
func (m *LowerTriangular) Shape() Shape { return Shape{Rows: m.n, Cols: m.n} }

// Kind reports KindLowerTriangular.
func (m *LowerTriangular) Kind() Kind { return KindLowerTriangular }

// RowLen returns the number of stored values in row i (i+1).
func (m *LowerTriangular) RowLen(i int) int { return i + 1 }

func lowerOffset(i int) int { return i * (i + 1) / 2 }

// At returns the element at (row, col); above the diagonal it is 0.
func (m *LowerTriangular) At(row, col int) (float64, error) {
	if err := checkIndex(m.n, m.n, row, col); err != nil {
		return 0, elementErrorf(typLower, ctxAt, row, col, err)
	}
	if col > row {
		return 0, nil
	}

	return m.data[lowerOffset(row)+col], nil
}

// Set writes v at (row, col). Above the diagonal only v == 0 is accepted,
// and it changes nothing.
func (m *LowerTriangular) Set(row, col int, v float64) error {
	if err := checkIndex(m.n, m.n, row, col); err != nil {
		return elementErrorf(typLower, ctxSet, row, col, err)
	}
	if col > row {
		if v != 0 {
			return elementErrorf(typLower, ctxSet, row, col, ErrInvalidElementPosition)
		}
		return nil
	}
	m.data[lowerOffset(row)+col] = v

	return nil
}

// Dense expands the triangle into an unnamed n×n Dense.
func (m *LowerTriangular) Dense() *Dense {
	d := newDense(m.n, m.n)
	var i, j, off int
	for i = 0; i < m.n; i++ {
		off = lowerOffset(i)
		for j = 0; j <= i; j++ {
			d.data[i*m.n+j] = m.data[off+j]
		}
	}

	return d
}

// Clone returns a deep copy that keeps the display name.
func (m *LowerTriangular) Clone() Matrix {
	cp := &LowerTriangular{n: m.n, data: make([]float64, len(m.data))}
	copy(cp.data, m.data)
	cp.name = m.name

	return cp
}

// Packed returns a copy of the stored values in row order
// (row 0: 1 value, row 1: 2 values, ...).
func (m *LowerTriangular) Packed() []float64 {
	out := make([]float64, len(m.data))
	copy(out, m.data)

	return out
}

// String renders the dense form with the default Format options.
func (m *LowerTriangular) String() string { return Format(m) }

// UpperTriangular is an n×n matrix whose entries below the main diagonal are
// structurally zero.
type UpperTriangular struct {
	named
	n    int       // order
	data []float64 // packed rows, len == n(n+1)/2
}

var (
	_ Matrix       = (*UpperTriangular)(nil)
	_ fmt.Stringer = (*UpperTriangular)(nil)
)

// NewUpperTriangular returns a zero-filled n×n upper-triangular matrix.
// Errors: ErrInvalidDimensions when n <= 0.
func NewUpperTriangular(n int) (*UpperTriangular, error) {
	if err := newSquareOrErr("NewUpperTriangular", n); err != nil {
		return nil, err
	}

	return &UpperTriangular{n: n, data: make([]float64, packedLen(n))}, nil
}

// Rows returns n.
func (m *UpperTriangular) Rows() int { return m.n }

// Cols returns n.
func (m *UpperTriangular) Cols() int { return m.n }

// Shape returns n×n.
func (m *UpperTriangular) Shape() Shape { return Shape{Rows: m.n, Cols: m.n} }

// Kind reports KindUpperTriangular.
func (m *UpperTriangular) Kind() Kind { return KindUpperTriangular }

// RowLen returns the number of stored values in row i (n-i).
func (m *UpperTriangular) RowLen(i int) int { return m.n - i }

func (m *UpperTriangular) offset(i int) int { return i*m.n - i*(i-1)/2 }

// At returns the element at (row, col); below the diagonal it is 0.
func (m *UpperTriangular) At(row, col int) (float64, error) {
	if err := checkIndex(m.n, m.n, row, col); err != nil {
		return 0, elementErrorf(typUpper, ctxAt, row, col, err)
	}
	if col < row {
		return 0, nil
	}

	return m.data[m.offset(row)+col-row], nil
}

// Set writes v at (row, col). Below the diagonal only v == 0 is accepted,
// and it changes nothing.
func (m *UpperTriangular) Set(row, col int, v float64) error {
	if err := checkIndex(m.n, m.n, row, col); err != nil {
		return elementErrorf(typUpper, ctxSet, row, col, err)
	}
	if col < row {
		if v != 0 {
			return elementErrorf(typUpper, ctxSet, row, col, ErrInvalidElementPosition)
		}
		return nil
	}
	m.data[m.offset(row)+col-row] = v

	return nil
}

// Dense expands the triangle into an unnamed n×n Dense.
func (m *UpperTriangular) Dense() *Dense {
	d := newDense(m.n, m.n)
	var i, j, off int
	for i = 0; i < m.n; i++ {
		off = m.offset(i)
		for j = i; j < m.n; j++ {
			d.data[i*m.n+j] = m.data[off+j-i]
		}
	}

	return d
}

// Clone returns a deep copy that keeps the display name.
func (m *UpperTriangular) Clone() Matrix {
	cp := &UpperTriangular{n: m.n, data: make([]float64, len(m.data))}
	copy(cp.data, m.data)
	cp.name = m.name

	return cp
}

// Packed returns a copy of the stored values in row order
// (row 0: n values, row 1: n-1 values, ...).
func (m *UpperTriangular) Packed() []float64 {
	out := make([]float64, len(m.data))
	copy(out, m.data)

	return out
}

// String renders the dense form with the default Format options.
func (m *UpperTriangular) String() string { return Format(m) }
