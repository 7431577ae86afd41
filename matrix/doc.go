// SPDX-License-Identifier: MIT

// Package matrix implements a small family of matrix storage layouts and the
// arithmetic engine that operates on them.
//
// The package provides:
//
//   - Dense (General): row-major flat storage; every element is stored.
//   - LowerTriangular / UpperTriangular: square, packed row storage where row i
//     holds i+1 (lower) or n-i (upper) values; the other triangle reads as 0.
//   - Diagonal: square, a single length-n vector; off-diagonal reads as 0.
//
// All four satisfy the Matrix interface and behave as interchangeable values.
// Arithmetic lives in free functions (Add, Sub, Mul, Scale, Transpose) that
// select a fast path from the concrete (left, right) pair and otherwise fall
// back to dense computation through Matrix.Dense. Operands are never mutated;
// every result is freshly allocated.
//
// Square-only helpers Trace and Determinant require Rows()==Cols().
// Determinant returns the product of the main diagonal for every layout. That
// value equals the true determinant only for triangular and diagonal input.
//
// Errors are package sentinels (see errors.go) wrapped with call-site context;
// match them with errors.Is. Nothing in this package logs or panics on user
// input.
package matrix
