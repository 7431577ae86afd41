// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// All public functions return these sentinels (optionally wrapped with
// call-site context via %w) and tests check them via errors.Is.
// No function panics on user-triggered error conditions.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. Wrap with fmt.Errorf("ctx: %w", ErrX) at the
// detection site; callers still match with errors.Is.
//
// ERROR PRIORITY (enforced in tests):
// nil operand -> shape/dimension -> index -> footprint.

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// Public indexers (At/Set) MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g., Add/Sub on different shapes, or Mul where a.Cols != b.Rows.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrInvalidElementPosition signals a non-zero write outside the storage
	// footprint of a structured layout (e.g., above the diagonal of a
	// LowerTriangular).
	ErrInvalidElementPosition = errors.New("matrix: non-zero value outside storage footprint")

	// ErrShapeMismatch indicates that explicit row-major data disagrees with the
	// declared rows/cols of a constructor.
	ErrShapeMismatch = errors.New("matrix: data does not match declared shape")

	// ErrUnsupportedOperand is returned by Multiply when the right operand is
	// neither a number nor a Matrix.
	ErrUnsupportedOperand = errors.New("matrix: unsupported operand kind")

	// ErrNilMatrix indicates that a nil Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrUnknownKind indicates a Kind value or kind name outside the closed set.
	ErrUnknownKind = errors.New("matrix: unknown matrix kind")
)

// ErrIndexOutOfBounds names the same condition as ErrOutOfRange.
var ErrIndexOutOfBounds = ErrOutOfRange

// ErrNotSquare names the same condition as ErrNonSquare.
var ErrNotSquare = ErrNonSquare
