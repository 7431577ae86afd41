// SPDX-License-Identifier: MIT
// Package matrix provides the arithmetic engine over every Matrix layout:
// element-wise addition and subtraction, matrix multiplication, scalar
// scaling and transpose. All functions perform strict fail-fast validation
// and return clear errors on dimension mismatches.
//
// Dispatch policy:
//   - Each kernel switches on the concrete (left, right) pair. Pairs with
//     exploitable shared structure take a fast path that keeps the layout
//     (Diagonal±Diagonal → Diagonal, Lower±Lower → Lower, ...).
//   - Every other pair falls back to dense computation through Matrix.Dense,
//     producing a *Dense result.
//   - Operands are never mutated; every result is freshly allocated and shares
//     no storage with its operands.

package matrix

import "fmt"

// ZeroSum is the initial accumulator for sums.
const ZeroSum = 0.0

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opAdd         = "Add"
	opSub         = "Sub"
	opMul         = "Mul"
	opMultiply    = "Multiply"
	opTranspose   = "Transpose"
	opScale       = "Scale"
	opTrace       = "Trace"
	opDeterminant = "Determinant"
	opNew         = "New"
	opConvert     = "Convert"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil to avoid creating a non-nil wrapper around a nil cause.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// denseOf returns a read-only dense view of m: m itself when it already is a
// *Dense, otherwise its expansion. Kernels must not write through the result.
func denseOf(m Matrix) *Dense {
	if d, ok := m.(*Dense); ok {
		return d
	}

	return m.Dense()
}

// combinePacked returns x + sign*y for two packed buffers of equal length.
func combinePacked(x, y []float64, sign float64) []float64 {
	out := make([]float64, len(x))
	for idx := range x { // deterministic 0..n-1
		out[idx] = x[idx] + sign*y[idx]
	}

	return out
}

// scalePacked returns alpha*x in a fresh buffer.
func scalePacked(x []float64, alpha float64) []float64 {
	out := make([]float64, len(x))
	for idx := range x {
		out[idx] = x[idx] * alpha
	}

	return out
}

// addSub computes elementwise out = a + sign*b for sign ∈ {+1, -1}.
// Internal helper for Add/Sub to share validation and dispatch.
//
// Implementation:
//   - Stage 1: ValidateBinarySameShape(a, b).
//   - Stage 2: dispatch on the concrete pair:
//     Diagonal×Diagonal, Lower×Lower, Upper×Upper → same layout, packed loop;
//     Dense×Dense → single flat loop;
//     otherwise → Dense via the dense views of both operands.
//
// Behavior highlights:
//   - Structured fast paths combine stored values only; implicit zeros are
//     never touched because both operands share the same zero pattern.
//   - Inputs remain immutable.
//
// Errors:
//   - ErrNilMatrix          (a or b nil).
//   - ErrDimensionMismatch  (shapes differ).
//
// Complexity:
//   - Time O(stored) on fast paths, O(r*c) otherwise. Space likewise.
func addSub(a, b Matrix, sign float64, opTag string) (Matrix, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, matrixErrorf(opTag, err)
	}

	switch x := a.(type) {
	case *Diagonal:
		if y, ok := b.(*Diagonal); ok {
			return &Diagonal{data: combinePacked(x.data, y.data, sign)}, nil
		}
	case *LowerTriangular:
		if y, ok := b.(*LowerTriangular); ok {
			return &LowerTriangular{n: x.n, data: combinePacked(x.data, y.data, sign)}, nil
		}
	case *UpperTriangular:
		if y, ok := b.(*UpperTriangular); ok {
			return &UpperTriangular{n: x.n, data: combinePacked(x.data, y.data, sign)}, nil
		}
	}

	// General arm: mixed layouts or Dense operands.
	da, db := denseOf(a), denseOf(b)

	return &Dense{r: da.r, c: da.c, data: combinePacked(da.data, db.data, sign)}, nil
}

// Add computes the element-wise sum C = A + B.
//
// Behavior highlights:
//   - Two operands of the same structured layout yield that layout.
//   - Any other combination yields a *Dense with C[i,j] = A[i,j] + B[i,j].
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (shape mismatch).
//
// Complexity:
//   - Time O(r*c) worst case, Space O(r*c).
func Add(a, b Matrix) (Matrix, error) { return addSub(a, b, +1, opAdd) }

// Sub computes the element-wise difference C = A - B.
// Layout selection is identical to Add.
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (shape mismatch).
func Sub(a, b Matrix) (Matrix, error) { return addSub(a, b, -1, opSub) }

// Mul performs standard matrix multiplication C = A × B (no aliasing).
// Implementation:
//   - Stage 1: Validate A,B (not nil) and inner dimensions (A.Cols == B.Rows).
//   - Stage 2: Diagonal×Diagonal → Diagonal with C[i] = A[i]*B[i].
//   - Stage 3: every other pair runs the i→k→j triple loop on the dense
//     views, skipping A[i,k] == 0, into a fresh *Dense of shape (A.Rows × B.Cols).
//
// Behavior highlights:
//   - Only Diagonal×Diagonal keeps a structured layout. Dense×Diagonal and
//     triangular products take the general loop.
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (inner mismatch).
//
// Determinism:
//   - Fixed loop order i→k→j.
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c). Skipping zero A[i,k] avoids useless multiplies.
func Mul(a, b Matrix) (Matrix, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	if x, okA := a.(*Diagonal); okA {
		if y, okB := b.(*Diagonal); okB {
			out := make([]float64, len(x.data))
			for i := range out {
				out[i] = x.data[i] * y.data[i]
			}
			return &Diagonal{data: out}, nil
		}
	}

	da, db := denseOf(a), denseOf(b)
	aRows, aCols, bCols := da.r, da.c, db.c
	res := newDense(aRows, bCols)

	// da.data layout: i*aCols + k
	// db.data layout: k*bCols + j
	var (
		i, k, j                            int
		av                                 float64
		rowOffsetA, rowOffsetB, rowOffsetR int
	)
	for i = 0; i < aRows; i++ {
		rowOffsetA = i * aCols
		rowOffsetR = i * bCols
		for k = 0; k < aCols; k++ {
			av = da.data[rowOffsetA+k]
			if av == 0 {
				continue // skip zero for performance
			}
			rowOffsetB = k * bCols
			for j = 0; j < bCols; j++ {
				res.data[rowOffsetR+j] += av * db.data[rowOffsetB+j]
			}
		}
	}

	return res, nil
}

// Transpose returns a new *Dense with rows and columns swapped (mᵀ).
//
// Behavior highlights:
//   - The result is always General, even for Diagonal input whose transpose
//     is itself; no structured transpose is ever produced.
//   - The original matrix is never mutated.
//
// Errors:
//   - ErrNilMatrix.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Transpose(m Matrix) (Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	dm := denseOf(m)
	rows, cols := dm.r, dm.c
	res := newDense(cols, rows) // dims flipped

	// data[i*cols + j] → res.data[j*rows + i]
	var i, j, baseSrc int
	for i = 0; i < rows; i++ {
		baseSrc = i * cols
		for j = 0; j < cols; j++ {
			res.data[j*rows+i] = dm.data[baseSrc+j]
		}
	}

	return res, nil
}

// Scale returns a new matrix whose elements are alpha * m[i,j].
//
// Behavior highlights:
//   - Structured layouts scale only their stored values and keep their
//     layout, since scaling preserves the zero pattern.
//   - General (and unknown) layouts yield a *Dense.
//   - alpha = 0 yields an explicit zero matrix in the same layout.
//
// Errors:
//   - ErrNilMatrix only; Scale never fails on a valid matrix.
//
// Complexity:
//   - Time O(stored) for structured layouts, O(r*c) otherwise.
func Scale(m Matrix, alpha float64) (Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opScale, err)
	}

	switch x := m.(type) {
	case *Diagonal:
		return &Diagonal{data: scalePacked(x.data, alpha)}, nil
	case *LowerTriangular:
		return &LowerTriangular{n: x.n, data: scalePacked(x.data, alpha)}, nil
	case *UpperTriangular:
		return &UpperTriangular{n: x.n, data: scalePacked(x.data, alpha)}, nil
	}

	dm := denseOf(m)

	return &Dense{r: dm.r, c: dm.c, data: scalePacked(dm.data, alpha)}, nil
}

// Multiply is the overloaded product: the right operand's dynamic type picks
// the operation.
//
//   - Matrix                         → Mul(a, operand)
//   - float64, float32, int, int64   → Scale(a, operand)
//   - anything else (including nil)  → ErrUnsupportedOperand
//
// A typed nil matrix such as (*Dense)(nil) is a Matrix operand and fails
// with ErrNilMatrix.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (from Mul), ErrUnsupportedOperand.
func Multiply(a Matrix, operand any) (Matrix, error) {
	switch v := operand.(type) {
	case Matrix:
		return Mul(a, v)
	case float64:
		return Scale(a, v)
	case float32:
		return Scale(a, float64(v))
	case int:
		return Scale(a, float64(v))
	case int64:
		return Scale(a, float64(v))
	default:
		return nil, matrixErrorf(opMultiply, fmt.Errorf("operand of type %T: %w", operand, ErrUnsupportedOperand))
	}
}
