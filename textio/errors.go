// SPDX-License-Identifier: MIT

package textio

import "errors"

var (
	// ErrEmpty is returned when the input holds no matrix at all.
	ErrEmpty = errors.New("textio: empty input")

	// ErrMalformed is returned for a header, row or block that does not match
	// the expected format. The wrapping error names the offending line.
	ErrMalformed = errors.New("textio: malformed input")
)
