// SPDX-License-Identifier: MIT

// Package matcalc is an in-memory calculator for named matrices with
// structure-aware storage.
//
// 🚀 What is matcalc?
//
//	A small, dependency-light toolkit that brings together:
//		• Layouts: General (dense), Lower/Upper Triangular (packed), Diagonal
//		• Arithmetic: Add, Sub, Mul, Scale, Transpose with structured fast paths
//		• Square operations: Trace and a diagonal-product Determinant
//		• A named registry with ordered listing
//		• Text persistence: single matrix files and collection dumps
//		• An interactive numbered menu and a one-shot CLI
//
// ✨ Why structured layouts?
//
//   - A triangular n×n matrix keeps n(n+1)/2 values instead of n².
//   - A diagonal matrix keeps n values; Diagonal×Diagonal stays Diagonal.
//   - Every layout answers the same Matrix contract, so mixed operations
//     always work through the dense fallback.
//
// Packages:
//
//	matrix/         core types, constructors, arithmetic, Format
//	registry/       ordered name → Matrix map
//	textio/         matrix file reader, collection dump writer/reader
//	calculator/     command interface over registry + engine, zap logging
//	config/         YAML configuration with validation
//	internal/shell/ interactive numbered menu
//	cmd/matcalc/    cobra entry point
//
// Quick example:
//
//	L = [1 0]   U = [5 6]   L×U = [ 5  6]
//	    [2 3]       [0 7]         [10 33]
//
// Note: Determinant is the product of the diagonal. It is exact for
// triangular and diagonal matrices only.
//
//	go install github.com/katalvlaran/matcalc/cmd/matcalc@latest
package matcalc
