// SPDX-License-Identifier: MIT

// Package textio reads and writes matrices in plain text.
//
// Two formats are supported:
//
// Matrix file (input only): the first non-blank line is "rows cols", followed
// by rows lines of cols whitespace-separated numbers.
//
//	2 3
//	1 2 3
//	4 5 6
//
// Collection dump (written by SaveCollection, read back by LoadCollection):
// one block per named matrix, blocks separated by a blank line.
//
//	Matrix: A
//	Kind: Lower Triangular
//	Dimensions: 2x2
//	Data:
//	1	0
//	2	3
//
// Reading a dump restores each matrix in the layout named by its Kind line
// ("Square" and "General" both restore as General). Dumps are always written
// with tab separators and shortest round-trip numbers, whatever the display
// settings, so a saved session reloads bit for bit.
package textio
