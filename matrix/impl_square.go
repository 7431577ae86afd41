// SPDX-License-Identifier: MIT

package matrix

// Trace returns Σ A[i,i] for a square matrix.
// Errors: ErrNilMatrix, ErrNonSquare.
// Complexity: O(n).
func Trace(m Matrix) (float64, error) {
	if err := ValidateSquare(m); err != nil {
		return 0, matrixErrorf(opTrace, err)
	}
	if d, ok := m.(*Diagonal); ok {
		sum := ZeroSum
		for _, v := range d.data {
			sum += v
		}
		return sum, nil
	}

	sum := ZeroSum
	for i := 0; i < m.Rows(); i++ {
		v, err := m.At(i, i)
		if err != nil {
			return 0, matrixErrorf(opTrace, err)
		}
		sum += v
	}

	return sum, nil
}

// Determinant returns Π A[i,i] for a square matrix.
//
// This is the diagonal product for EVERY layout. It equals the determinant
// only for triangular and diagonal matrices; for a General matrix the
// off-diagonal entries are ignored, e.g. [[1,2],[3,4]] yields 4, not -2.
// Callers needing a true determinant must not rely on this function.
//
// Errors: ErrNilMatrix, ErrNonSquare.
// Complexity: O(n).
func Determinant(m Matrix) (float64, error) {
	if err := ValidateSquare(m); err != nil {
		return 0, matrixErrorf(opDeterminant, err)
	}

	prod := 1.0
	for i := 0; i < m.Rows(); i++ {
		v, err := m.At(i, i)
		if err != nil {
			return 0, matrixErrorf(opDeterminant, err)
		}
		prod *= v
	}

	return prod, nil
}
