// SPDX-License-Identifier: MIT

// Package matrix: domain types shared by every storage layout.
// This file contains ONLY domain-facing types (Kind, Shape, the Matrix
// interface and the display-name holder). Errors and options live in
// dedicated files (errors.go, options.go).
package matrix

import (
	"fmt"
	"strings"
)

// Kind identifies one of the closed set of storage layouts.
type Kind uint8

const (
	// KindGeneral is the unconstrained dense layout (*Dense).
	KindGeneral Kind = iota
	// KindLowerTriangular is the packed lower-triangular layout (*LowerTriangular).
	KindLowerTriangular
	// KindUpperTriangular is the packed upper-triangular layout (*UpperTriangular).
	KindUpperTriangular
	// KindDiagonal is the single-vector diagonal layout (*Diagonal).
	KindDiagonal
)

// Display labels, one per Kind. labelSquare is used by Label for square Dense.
const (
	labelGeneral = "General"
	labelSquare  = "Square"
	labelLower   = "Lower Triangular"
	labelUpper   = "Upper Triangular"
	labelDiag    = "Diagonal"
)

// String returns the display label of k.
func (k Kind) String() string {
	switch k {
	case KindGeneral:
		return labelGeneral
	case KindLowerTriangular:
		return labelLower
	case KindUpperTriangular:
		return labelUpper
	case KindDiagonal:
		return labelDiag
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// Structured reports whether k is one of the square, footprint-restricted layouts.
func (k Kind) Structured() bool {
	return k == KindLowerTriangular || k == KindUpperTriangular || k == KindDiagonal
}

// ParseKind maps a user-supplied name to a Kind.
// Matching is case-insensitive and ignores spaces, dashes and underscores, so
// "Lower Triangular", "lower-triangular" and "lower" are all accepted.
// "Square" maps to KindGeneral, mirroring Label.
func ParseKind(s string) (Kind, error) {
	key := strings.ToLower(s)
	key = strings.NewReplacer(" ", "", "-", "", "_", "").Replace(key)
	switch key {
	case "general", "dense", "square", "g":
		return KindGeneral, nil
	case "lowertriangular", "lower", "l":
		return KindLowerTriangular, nil
	case "uppertriangular", "upper", "u":
		return KindUpperTriangular, nil
	case "diagonal", "diag", "d":
		return KindDiagonal, nil
	}

	return 0, fmt.Errorf("ParseKind(%q): %w", s, ErrUnknownKind)
}

// Label returns the human-facing label of m: a square Dense reads "Square",
// every other layout reads its Kind label.
func Label(m Matrix) string {
	if isNil(m) {
		return ""
	}
	if m.Kind() == KindGeneral && m.Rows() == m.Cols() {
		return labelSquare
	}

	return m.Kind().String()
}

// Shape is a (rows, cols) pair.
type Shape struct {
	Rows int // number of rows (>0 for constructed matrices)
	Cols int // number of columns (>0 for constructed matrices)
}

// IsSquare reports Rows == Cols.
func (s Shape) IsSquare() bool { return s.Rows == s.Cols }

// SameAs reports whether s and o have identical dimensions.
func (s Shape) SameAs(o Shape) bool { return s.Rows == o.Rows && s.Cols == o.Cols }

// MulCompatible reports whether s×o is defined (s.Cols == o.Rows).
func (s Shape) MulCompatible(o Shape) bool { return s.Cols == o.Rows }

// String renders the shape as "RxC".
func (s Shape) String() string { return fmt.Sprintf("%dx%d", s.Rows, s.Cols) }

// validate rejects degenerate shapes; 0×n matrices are never constructed.
func (s Shape) validate() error {
	if s.Rows <= 0 || s.Cols <= 0 {
		return ErrInvalidDimensions
	}

	return nil
}

// Matrix is the common contract of every storage layout.
//
// Complexity notes: all methods are O(1) except Dense and Clone, which copy
// the stored elements.
type Matrix interface {
	// Rows returns the number of rows in the matrix.
	Rows() int

	// Cols returns the number of columns in the matrix.
	Cols() int

	// Shape packs Rows() and Cols().
	Shape() Shape

	// Kind reports the storage layout.
	Kind() Kind

	// At retrieves the element at position (i, j).
	// Returns ErrOutOfRange if i or j is outside the shape. Positions outside a
	// structured footprint read as 0.
	At(i, j int) (float64, error)

	// Set assigns v at position (i, j).
	// Returns ErrOutOfRange for invalid indices and ErrInvalidElementPosition
	// for a non-zero write outside a structured footprint. Writing 0 outside
	// the footprint is a no-op.
	Set(i, j int, v float64) error

	// Dense returns an equivalent, independent General matrix (unnamed).
	// It always succeeds.
	Dense() *Dense

	// Clone returns a deep copy in the same layout, keeping the display name.
	Clone() Matrix

	// Name returns the display name ("" until a registry assigns one).
	Name() string

	// SetName assigns the display name.
	SetName(name string)
}

// named holds the optional display name shared by every layout.
// Arithmetic results start unnamed; the registry assigns names.
type named struct {
	name string
}

// Name returns the display name.
func (n *named) Name() string { return n.name }

// SetName assigns the display name.
func (n *named) SetName(name string) { n.name = name }
