// SPDX-License-Identifier: MIT

package matrix

import "fmt"

const typDiag = "Diagonal"

// Diagonal is an n×n matrix that stores only its main diagonal.
type Diagonal struct {
	named
	data []float64 // data[i] == A[i,i]; n == len(data)
}

var (
	_ Matrix       = (*Diagonal)(nil)
	_ fmt.Stringer = (*Diagonal)(nil)
)

// NewDiagonal returns a zero-filled n×n diagonal matrix.
// Errors: ErrInvalidDimensions when n <= 0.
func NewDiagonal(n int) (*Diagonal, error) {
	if err := newSquareOrErr("NewDiagonal", n); err != nil {
		return nil, err
	}

	return &Diagonal{data: make([]float64, n)}, nil
}

// NewDiagonalFrom returns diag(values). The slice is copied.
// Errors: ErrInvalidDimensions when values is empty.
func NewDiagonalFrom(values []float64) (*Diagonal, error) {
	d, err := NewDiagonal(len(values))
	if err != nil {
		return nil, err
	}
	copy(d.data, values)

	return d, nil
}

// NewIdentity returns I_n as a Diagonal (ones on the diagonal).
// Errors: ErrInvalidDimensions when n <= 0.
func NewIdentity(n int) (*Diagonal, error) {
	d, err := NewDiagonal(n)
	if err != nil {
		return nil, err
	}
	for i := range d.data {
		d.data[i] = 1.0
	}

	return d, nil
}

// Rows returns n.
func (m *Diagonal) Rows() int { return len(m.data) }

// Cols returns n.
func (m *Diagonal) Cols() int { return len(m.data) }

// Shape returns n×n.
func (m *Diagonal) Shape() Shape { return Shape{Rows: len(m.data), Cols: len(m.data)} }

// Kind reports KindDiagonal.
func (m *Diagonal) Kind() Kind { return KindDiagonal }

// RowLen is always 1: every row stores exactly its diagonal entry.
func (m *Diagonal) RowLen(int) int { return 1 }

// At returns A[row,col]; off the diagonal it is 0.
func (m *Diagonal) At(row, col int) (float64, error) {
	n := len(m.data)
	if err := checkIndex(n, n, row, col); err != nil {
		return 0, elementErrorf(typDiag, ctxAt, row, col, err)
	}
	if row != col {
		return 0, nil
	}

	return m.data[row], nil
}

// Set writes v at (row, col). Off the diagonal only v == 0 is accepted, and
// it changes nothing.
func (m *Diagonal) Set(row, col int, v float64) error {
	n := len(m.data)
	if err := checkIndex(n, n, row, col); err != nil {
		return elementErrorf(typDiag, ctxSet, row, col, err)
	}
	if row != col {
		if v != 0 {
			return elementErrorf(typDiag, ctxSet, row, col, ErrInvalidElementPosition)
		}
		return nil
	}
	m.data[row] = v

	return nil
}

// Dense expands the diagonal into an unnamed n×n Dense.
func (m *Diagonal) Dense() *Dense {
	n := len(m.data)
	d := newDense(n, n)
	for i, v := range m.data {
		d.data[i*n+i] = v
	}

	return d
}

// Clone returns a deep copy that keeps the display name.
func (m *Diagonal) Clone() Matrix {
	cp := &Diagonal{data: make([]float64, len(m.data))}
	copy(cp.data, m.data)
	cp.name = m.name

	return cp
}

// Packed returns a copy of the diagonal entries.
func (m *Diagonal) Packed() []float64 {
	out := make([]float64, len(m.data))
	copy(out, m.data)

	return out
}

// String renders the dense form with the default Format options.
func (m *Diagonal) String() string { return Format(m) }
