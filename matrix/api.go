// SPDX-License-Identifier: MIT
// Package matrix: public API facades.
//
// Purpose:
//   - Provide thin entry points for construction by kind and for the common
//     arithmetic names used by callers (Sum, Diff, Product, T, ScaleBy).
//   - Avoid logic duplication: each facade delegates to the canonical kernel.
//
// Determinism & Policy:
//   - Facades never change the loop orders or numeric policy of underlying kernels.
//   - Validation happens in the kernels and constructors; facades only compose.

package matrix

import "fmt"

// ---------- Construction by kind ----------

// New constructs a matrix of the given kind and shape, optionally populated
// from row-major data (nil data means zero-filled).
//
// Implementation:
//   - Stage 1: validate the shape and the data dimensions.
//   - Stage 2: structured kinds require a square shape.
//   - Stage 3: allocate the layout and load data through Set, so a non-zero
//     value outside a structured footprint is rejected.
//
// Errors:
//   - ErrInvalidDimensions, ErrShapeMismatch, ErrNonSquare,
//     ErrInvalidElementPosition, ErrUnknownKind.
//
// Complexity:
//   - Time O(r*c), Space O(stored).
func New(kind Kind, shape Shape, data [][]float64) (Matrix, error) {
	if err := ValidateData(shape.Rows, shape.Cols, data); err != nil {
		return nil, matrixErrorf(opNew, err)
	}
	if kind == KindGeneral {
		d, err := NewDenseFrom(shape.Rows, shape.Cols, data)
		if err != nil {
			return nil, matrixErrorf(opNew, err)
		}
		return d, nil
	}

	m, err := newStructured(kind, shape)
	if err != nil {
		return nil, matrixErrorf(opNew, err)
	}
	if err = loadRows(m, data); err != nil {
		return nil, matrixErrorf(opNew, err)
	}

	return m, nil
}

// newStructured allocates an empty structured layout for a square shape.
func newStructured(kind Kind, shape Shape) (Matrix, error) {
	if !kind.Structured() {
		return nil, fmt.Errorf("%s: %w", kind, ErrUnknownKind)
	}
	if !shape.IsSquare() {
		return nil, fmt.Errorf("%s %s: %w", kind, shape, ErrNonSquare)
	}

	switch kind {
	case KindLowerTriangular:
		return NewLowerTriangular(shape.Rows)
	case KindUpperTriangular:
		return NewUpperTriangular(shape.Rows)
	default:
		return NewDiagonal(shape.Rows)
	}
}

// loadRows writes row-major data into m through Set (footprint-checked).
func loadRows(m Matrix, data [][]float64) error {
	for i, row := range data {
		for j, v := range row {
			if err := m.Set(i, j, v); err != nil {
				return err
			}
		}
	}

	return nil
}

// Convert re-lays m out as kind. Converting to KindGeneral always succeeds;
// converting to a structured kind fails with ErrNonSquare for a rectangular
// input and ErrInvalidElementPosition when m has non-zero values outside the
// target footprint. The result is unnamed and independent of m.
func Convert(m Matrix, kind Kind) (Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opConvert, err)
	}
	if kind == KindGeneral {
		return m.Dense(), nil
	}

	out, err := newStructured(kind, m.Shape())
	if err != nil {
		return nil, matrixErrorf(opConvert, err)
	}
	var setErr error
	denseOf(m).Do(func(i, j int, v float64) bool {
		setErr = out.Set(i, j, v)
		return setErr == nil
	})
	if setErr != nil {
		return nil, matrixErrorf(opConvert, setErr)
	}

	return out, nil
}

// ToDense returns the General form of m (Matrix.Dense with a nil guard).
func ToDense(m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, err
	}

	return m.Dense(), nil
}

// ---------- Arithmetic aliases ----------

// Sum is an alias for Add: element-wise a + b.
func Sum(a, b Matrix) (Matrix, error) { return Add(a, b) }

// Diff is an alias for Sub: element-wise a − b.
func Diff(a, b Matrix) (Matrix, error) { return Sub(a, b) }

// Product is an alias for Mul: matrix product a × b.
func Product(a, b Matrix) (Matrix, error) { return Mul(a, b) }

// T is an alias for Transpose: returns mᵀ as a General matrix.
func T(m Matrix) (Matrix, error) { return Transpose(m) }

// ScaleBy is an alias for Scale: α*m.
func ScaleBy(m Matrix, alpha float64) (Matrix, error) { return Scale(m, alpha) }
