// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Keep kernels minimal by delegating nil/shape/index checks here.
//  - Return sentinel errors tagged with the validator name so call sites can
//    wrap uniformly.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate nothing on success.
//
// Note:
//  - Each composite validator follows a fixed sequence (NotNil → Shape).

package matrix

import "fmt"

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// isNil reports a nil interface or a nil pointer of one of the package's
// layouts held in a non-nil interface.
func isNil(m Matrix) bool {
	switch x := m.(type) {
	case nil:
		return true
	case *Dense:
		return x == nil
	case *LowerTriangular:
		return x == nil
	case *UpperTriangular:
		return x == nil
	case *Diagonal:
		return x == nil
	default:
		return false
	}
}

// ValidateNotNil ensures the matrix reference is non-nil, including typed
// nil pointers such as (*Dense)(nil).
// Complexity: O(1).
func ValidateNotNil(m Matrix) error {
	if isNil(m) {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSameShape ensures a and b have equal dimensions.
// Assumes a and b are not nil (caller must ensure).
// Complexity: O(1).
func ValidateSameShape(a, b Matrix) error {
	if a.Rows() != b.Rows() {
		return validatorErrorf("ValidateSameShape: Rows", ErrDimensionMismatch)
	}
	if a.Cols() != b.Cols() {
		return validatorErrorf("ValidateSameShape: Columns", ErrDimensionMismatch)
	}

	return nil
}

// ValidateBinarySameShape is the composite NotNil(a) → NotNil(b) → SameShape
// used by Add and Sub.
func ValidateBinarySameShape(a, b Matrix) error {
	if err := ValidateNotNil(a); err != nil {
		return validatorErrorf("ValidateBinarySameShape", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return validatorErrorf("ValidateBinarySameShape", err)
	}
	if err := ValidateSameShape(a, b); err != nil {
		return validatorErrorf("ValidateBinarySameShape", err)
	}

	return nil
}

// ValidateMulCompatible is the composite NotNil(a) → NotNil(b) → a.Cols == b.Rows.
func ValidateMulCompatible(a, b Matrix) error {
	if err := ValidateNotNil(a); err != nil {
		return validatorErrorf("ValidateMulCompatible", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return validatorErrorf("ValidateMulCompatible", err)
	}
	if a.Cols() != b.Rows() {
		return validatorErrorf("ValidateMulCompatible", ErrDimensionMismatch)
	}

	return nil
}

// ValidateSquare checks that m is square (Rows == Cols).
// Errors: ErrNilMatrix if nil, ErrNonSquare if not square.
func ValidateSquare(m Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return validatorErrorf("ValidateSquare", err)
	}
	if m.Rows() != m.Cols() {
		return validatorErrorf("ValidateSquare", ErrNonSquare)
	}

	return nil
}

// ValidateData checks that row-major data has exactly rows rows of cols
// values each. A nil data set is accepted (meaning "zero-filled").
// Errors: ErrInvalidDimensions, ErrShapeMismatch.
func ValidateData(rows, cols int, data [][]float64) error {
	if err := (Shape{Rows: rows, Cols: cols}).validate(); err != nil {
		return validatorErrorf("ValidateData", err)
	}
	if data == nil {
		return nil
	}
	if len(data) != rows {
		return validatorErrorf(fmt.Sprintf("ValidateData: got %d rows, want %d", len(data), rows), ErrShapeMismatch)
	}
	for i, row := range data {
		if len(row) != cols {
			return validatorErrorf(fmt.Sprintf("ValidateData: row %d has %d values, want %d", i, len(row), cols), ErrShapeMismatch)
		}
	}

	return nil
}

// checkIndex bounds-checks (row, col) against an r×c shape.
// Returns the bare ErrOutOfRange; At/Set wrap it with coordinates.
func checkIndex(r, c, row, col int) error {
	if row < 0 || row >= r || col < 0 || col >= c {
		return ErrOutOfRange
	}

	return nil
}

// elementErrorf wraps err with the uniform "<Type>.<Method>(row,col)" context.
func elementErrorf(typ, method string, row, col int, err error) error {
	return fmt.Errorf("%s.%s(%d,%d): %w", typ, method, row, col, err)
}
