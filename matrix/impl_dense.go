// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Serve as the universal fallback layout: every other layout converts to Dense.
//
// Complexity quicksheet:
//   - NewDense: O(r*c) zero-init; At/Set: O(1); Clone/Dense: O(r*c).

package matrix

import "fmt"

// ---------- error context tags ----------

const (
	ctxAt  = "At"  // method tag used in error wrappers
	ctxSet = "Set" // method tag used in error wrappers

	typDense = "Dense"
)

// Dense is a concrete row-major General matrix.
//   - r,c hold dimensions (rows, cols).
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
type Dense struct {
	named
	r, c int       // row and column counts (>0)
	data []float64 // contiguous row-major storage (len == r*c)
}

// Compile-time assertions for interface & fmt.Stringer conformance.
var (
	_ Matrix       = (*Dense)(nil)
	_ fmt.Stringer = (*Dense)(nil)
)

// NewDense creates an r×c zero matrix using row-major storage.
// MAIN DESCRIPTION:
//   - Public constructor for Dense with strict shape validation.
//
// Implementation:
//   - Stage 1: validate rows>0 && cols>0; else ErrInvalidDimensions.
//   - Stage 2: allocate zero-filled buffer.
//
// Behavior highlights:
//   - No panics on user errors; returns sentinel errors.
//   - Public constructor forbids empty dimensions to avoid accidental 0×n matrices.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDense(rows, cols int) (*Dense, error) {
	if err := (Shape{Rows: rows, Cols: cols}).validate(); err != nil {
		return nil, fmt.Errorf("NewDense(%d,%d): %w", rows, cols, err)
	}

	return newDense(rows, cols), nil
}

// newDense allocates without validation; callers guarantee rows,cols > 0.
func newDense(rows, cols int) *Dense {
	return &Dense{r: rows, c: cols, data: make([]float64, rows*cols)}
}

// NewDenseFrom creates an r×c Dense pre-populated from row-major data.
// MAIN DESCRIPTION:
//   - Copy explicit rows into a fresh buffer; the caller's slices are not retained.
//
// Implementation:
//   - Stage 1: ValidateData(rows, cols, data) (shape + ragged-row check).
//   - Stage 2: allocate and copy row by row.
//
// Errors:
//   - ErrInvalidDimensions (rows<=0 or cols<=0).
//   - ErrShapeMismatch (len(data) != rows, or some len(row) != cols).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
//
// Notes:
//   - A nil data set yields a zero matrix, same as NewDense.
func NewDenseFrom(rows, cols int, data [][]float64) (*Dense, error) {
	if err := ValidateData(rows, cols, data); err != nil {
		return nil, fmt.Errorf("NewDenseFrom(%d,%d): %w", rows, cols, err)
	}
	m := newDense(rows, cols)
	for i, row := range data { // data == nil skips the loop
		copy(m.data[i*cols:(i+1)*cols], row)
	}

	return m, nil
}

// Rows returns the row count. Complexity: O(1).
func (m *Dense) Rows() int { return m.r }

// Cols returns the column count. Complexity: O(1).
func (m *Dense) Cols() int { return m.c }

// Shape packs Rows() and Cols(). Complexity: O(1).
func (m *Dense) Shape() Shape { return Shape{Rows: m.r, Cols: m.c} }

// Kind reports KindGeneral.
func (m *Dense) Kind() Kind { return KindGeneral }

// indexOf computes the row-major offset or returns ErrOutOfRange.
// Returns the bare sentinel; public methods (At/Set) wrap with coordinates.
// Complexity: O(1).
func (m *Dense) indexOf(row, col int) (int, error) {
	if err := checkIndex(m.r, m.c, row, col); err != nil {
		return 0, err
	}

	// Row-major offset: i*c + j.
	return row*m.c + col, nil
}

// At returns the value at (row, col) or ErrOutOfRange.
// MAIN DESCRIPTION:
//   - Safe element read at coordinates.
//
// Implementation:
//   - Stage 1: compute offset via indexOf (bounds check).
//   - Stage 2: load from flat buffer.
//
// Complexity:
//   - Time O(1), Space O(1).
func (m *Dense) At(row, col int) (float64, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		return 0, elementErrorf(typDense, ctxAt, row, col, err)
	}

	return m.data[off], nil
}

// Set stores v at (row, col) or returns ErrOutOfRange.
// Every in-range position of a General matrix is writable.
// Complexity: O(1).
func (m *Dense) Set(row, col int, v float64) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return elementErrorf(typDense, ctxSet, row, col, err)
	}
	m.data[off] = v

	return nil
}

// Dense returns an unnamed deep copy. A General matrix is already dense, but
// results must never alias their source.
// Complexity: O(r*c).
func (m *Dense) Dense() *Dense {
	cp := newDense(m.r, m.c)
	copy(cp.data, m.data)

	return cp
}

// Clone returns a deep copy that keeps the display name.
// Complexity: O(r*c).
func (m *Dense) Clone() Matrix {
	cp := m.Dense()
	cp.name = m.name

	return cp
}

// Row returns a copy of row i, or ErrOutOfRange.
func (m *Dense) Row(i int) ([]float64, error) {
	if i < 0 || i >= m.r {
		return nil, fmt.Errorf("Dense.Row(%d): %w", i, ErrOutOfRange)
	}
	out := make([]float64, m.c)
	copy(out, m.data[i*m.c:(i+1)*m.c])

	return out, nil
}

// Do visits each element (i,j) in row-major order and calls f(i,j,v).
// MAIN DESCRIPTION:
//   - Read-only visitor; stops early when f returns false.
//
// Determinism:
//   - Fixed i→j order.
//
// Complexity:
//   - Time O(r*c), Space O(1).
func (m *Dense) Do(f func(i, j int, v float64) bool) {
	var i, j, base int
	for i = 0; i < m.r; i++ { // iterate rows deterministically
		base = i * m.c
		for j = 0; j < m.c; j++ {
			if !f(i, j, m.data[base+j]) {
				return // early exit requested by caller
			}
		}
	}
}

// String renders the matrix with the default Format options.
func (m *Dense) String() string { return Format(m) }
