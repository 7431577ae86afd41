// SPDX-License-Identifier: MIT

package matrix

import (
	"strconv"
	"strings"
)

// Format renders m row-major through its dense form.
// Defaults: "\t" between values, "\n" between rows, shortest round-trip
// float formatting. A nil matrix renders as "".
//
// Complexity: O(r*c).
func Format(m Matrix, opts ...FormatOption) string {
	if isNil(m) {
		return ""
	}
	o := gatherFormatOptions(opts...)
	d := denseOf(m)

	var b strings.Builder
	d.Do(func(i, j int, v float64) bool {
		if j == 0 && i > 0 {
			b.WriteString(o.rowSep)
		} else if j > 0 {
			b.WriteString(o.elemSep)
		}
		b.WriteString(formatValue(v, o.precision))
		return true
	})

	return b.String()
}

// formatValue formats one element under the precision policy.
func formatValue(v float64, precision int) string {
	if precision < 0 {
		return strconv.FormatFloat(v, 'g', -1, 64)
	}

	return strconv.FormatFloat(v, 'f', precision, 64)
}

// FormatScalar renders v the way Format renders one element. Only the
// precision option applies; separators are ignored.
func FormatScalar(v float64, opts ...FormatOption) string {
	return formatValue(v, gatherFormatOptions(opts...).precision)
}
