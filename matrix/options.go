// SPDX-License-Identifier: MIT

// Package matrix: functional options for display formatting.
// This file defines:
//   - FormatOption (functional option over unexported state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values).
//
// Design goals:
//   - Deterministic output: fixed row-major traversal, no locale dependence.
//   - Defaults mirror the collection dump format: tab between elements,
//     newline between rows, shortest round-trip float formatting.
package matrix

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultElementSeparator separates values within a row.
	DefaultElementSeparator = "\t"

	// DefaultRowSeparator separates rows. No trailing separator is emitted.
	DefaultRowSeparator = "\n"

	// DefaultPrecision selects shortest round-trip formatting ('g', -1).
	// A value p >= 0 selects fixed notation with p decimals.
	DefaultPrecision = -1
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicPrecisionInvalid = "matrix: WithPrecision: precision must be >= -1"
)

// FormatOption mutates internal formatting options. Safe to apply repeatedly.
type FormatOption func(*formatOptions)

// formatOptions is the resolved formatting state.
type formatOptions struct {
	elemSep   string
	rowSep    string
	precision int
}

// defaultFormatOptions returns the documented defaults.
func defaultFormatOptions() formatOptions {
	return formatOptions{
		elemSep:   DefaultElementSeparator,
		rowSep:    DefaultRowSeparator,
		precision: DefaultPrecision,
	}
}

// gatherFormatOptions applies opts over the defaults, skipping nil entries.
func gatherFormatOptions(opts ...FormatOption) formatOptions {
	o := defaultFormatOptions()
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}

// WithElementSeparator sets the separator between values of one row.
func WithElementSeparator(sep string) FormatOption {
	return func(o *formatOptions) { o.elemSep = sep }
}

// WithRowSeparator sets the separator between rows.
func WithRowSeparator(sep string) FormatOption {
	return func(o *formatOptions) { o.rowSep = sep }
}

// WithPrecision selects fixed notation with p decimals (p >= 0) or shortest
// round-trip notation (p == -1). Panics for p < -1 (programmer error).
func WithPrecision(p int) FormatOption {
	if p < -1 {
		panic(panicPrecisionInvalid)
	}

	return func(o *formatOptions) { o.precision = p }
}
