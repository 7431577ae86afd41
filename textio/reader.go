// SPDX-License-Identifier: MIT

package textio

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/matcalc/matrix"
)

// lineReader yields trimmed lines with their 1-based numbers.
type lineReader struct {
	sc   *bufio.Scanner
	line int
}

func newLineReader(r io.Reader) *lineReader {
	return &lineReader{sc: bufio.NewScanner(r)}
}

// next returns the next line, or ok=false at EOF.
func (lr *lineReader) next() (text string, ok bool) {
	if !lr.sc.Scan() {
		return "", false
	}
	lr.line++

	return strings.TrimSpace(lr.sc.Text()), true
}

// nextNonBlank skips blank lines.
func (lr *lineReader) nextNonBlank() (string, bool) {
	for {
		text, ok := lr.next()
		if !ok || text != "" {
			return text, ok
		}
	}
}

func (lr *lineReader) malformed(format string, args ...any) error {
	return fmt.Errorf("line %d: %s: %w", lr.line, fmt.Sprintf(format, args...), ErrMalformed)
}

// parseRow splits a data line into exactly cols floats.
func (lr *lineReader) parseRow(text string, cols int) ([]float64, error) {
	fields := strings.Fields(text)
	if len(fields) != cols {
		return nil, lr.malformed("got %d values, want %d", len(fields), cols)
	}
	row := make([]float64, cols)
	for j, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return nil, lr.malformed("value %q", f)
		}
		row[j] = v
	}

	return row, nil
}

// readRows reads rows data lines, skipping blank lines in between.
func (lr *lineReader) readRows(rows, cols int) ([][]float64, error) {
	data := make([][]float64, 0, rows)
	for i := 0; i < rows; i++ {
		text, ok := lr.nextNonBlank()
		if !ok {
			return nil, lr.malformed("got %d rows, want %d", i, rows)
		}
		row, err := lr.parseRow(text, cols)
		if err != nil {
			return nil, err
		}
		data = append(data, row)
	}

	return data, nil
}

// ReadMatrix parses a matrix file: a "rows cols" header followed by rows
// lines of cols numbers. Lines after the last row are ignored.
//
// Errors: ErrEmpty when r has no non-blank line, ErrMalformed for a bad
// header or row, and matrix.ErrInvalidDimensions for non-positive sizes.
func ReadMatrix(r io.Reader) (*matrix.Dense, error) {
	lr := newLineReader(r)
	header, ok := lr.nextNonBlank()
	if err := lr.sc.Err(); err != nil {
		return nil, fmt.Errorf("textio: read: %w", err)
	}
	if !ok {
		return nil, ErrEmpty
	}

	fields := strings.Fields(header)
	if len(fields) != 2 {
		return nil, lr.malformed("header %q, want \"rows cols\"", header)
	}
	rows, errR := strconv.Atoi(fields[0])
	cols, errC := strconv.Atoi(fields[1])
	if errR != nil || errC != nil {
		return nil, lr.malformed("header %q, want integers", header)
	}
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("line %d: %w", lr.line, matrix.ErrInvalidDimensions)
	}

	data, err := lr.readRows(rows, cols)
	if err != nil {
		return nil, err
	}
	if err = lr.sc.Err(); err != nil {
		return nil, fmt.Errorf("textio: read: %w", err)
	}

	return matrix.NewDenseFrom(rows, cols, data)
}

// ReadMatrixFile opens path and calls ReadMatrix.
func ReadMatrixFile(path string) (*matrix.Dense, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("textio: open %s: %w", path, err)
	}
	defer f.Close()

	m, err := ReadMatrix(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return m, nil
}
