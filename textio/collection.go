// SPDX-License-Identifier: MIT

package textio

import (
	"bufio"
	"fmt"
	"io"
	"iter"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/matcalc/matrix"
	"github.com/katalvlaran/matcalc/registry"
)

// Block field prefixes of the collection dump.
const (
	keyMatrix     = "Matrix:"
	keyKind       = "Kind:"
	keyDimensions = "Dimensions:"
	keyData       = "Data:"
)

// Named is one matrix read from a collection dump.
type Named struct {
	Name   string
	Matrix matrix.Matrix
}

// WriteCollection writes one block per (name, matrix) pair. The Data section
// always uses the default Format options so every value round-trips exactly;
// display settings never reach a dump.
func WriteCollection(w io.Writer, items iter.Seq2[string, matrix.Matrix]) error {
	bw := bufio.NewWriter(w)
	for name, m := range items {
		fmt.Fprintf(bw, "%s %s\n", keyMatrix, name)
		fmt.Fprintf(bw, "%s %s\n", keyKind, matrix.Label(m))
		fmt.Fprintf(bw, "%s %s\n", keyDimensions, m.Shape())
		fmt.Fprintf(bw, "%s\n", keyData)
		fmt.Fprintf(bw, "%s\n\n", matrix.Format(m))
	}

	return bw.Flush()
}

// SaveCollection writes every matrix of reg to path, truncating the file.
func SaveCollection(path string, reg *registry.Registry) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("textio: create %s: %w", path, err)
	}
	if err = WriteCollection(f, reg.All()); err != nil {
		_ = f.Close()
		return fmt.Errorf("textio: write %s: %w", path, err)
	}

	return f.Close()
}

// ReadCollection parses a collection dump. An input with no blocks yields an
// empty slice and no error.
func ReadCollection(r io.Reader) ([]Named, error) {
	lr := newLineReader(r)
	var out []Named
	for {
		text, ok := lr.nextNonBlank()
		if !ok {
			break
		}
		item, err := lr.readBlock(text)
		if err != nil {
			return nil, err
		}
		out = append(out, item)
	}
	if err := lr.sc.Err(); err != nil {
		return nil, fmt.Errorf("textio: read: %w", err)
	}

	return out, nil
}

// field strips key from text or reports a malformed line.
func (lr *lineReader) field(text, key string) (string, error) {
	if !strings.HasPrefix(text, key) {
		return "", lr.malformed("want %q, got %q", key, text)
	}

	return strings.TrimSpace(strings.TrimPrefix(text, key)), nil
}

// expectField reads the next line and strips key from it.
func (lr *lineReader) expectField(key string) (string, error) {
	text, ok := lr.next()
	if !ok {
		return "", lr.malformed("unexpected end of input, want %q", key)
	}

	return lr.field(text, key)
}

// readBlock parses one block whose first line is first.
func (lr *lineReader) readBlock(first string) (Named, error) {
	name, err := lr.field(first, keyMatrix)
	if err != nil {
		return Named{}, err
	}
	label, err := lr.expectField(keyKind)
	if err != nil {
		return Named{}, err
	}
	kind, err := matrix.ParseKind(label)
	if err != nil {
		return Named{}, lr.malformed("kind %q", label)
	}
	dims, err := lr.expectField(keyDimensions)
	if err != nil {
		return Named{}, err
	}
	shape, err := lr.parseShape(dims)
	if err != nil {
		return Named{}, err
	}
	if _, err = lr.expectField(keyData); err != nil {
		return Named{}, err
	}
	data, err := lr.readRows(shape.Rows, shape.Cols)
	if err != nil {
		return Named{}, err
	}

	m, err := matrix.New(kind, shape, data)
	if err != nil {
		return Named{}, fmt.Errorf("matrix %q: %w", name, err)
	}

	return Named{Name: name, Matrix: m}, nil
}

// parseShape parses "RxC".
func (lr *lineReader) parseShape(s string) (matrix.Shape, error) {
	rs, cs, found := strings.Cut(s, "x")
	if !found {
		return matrix.Shape{}, lr.malformed("dimensions %q, want RxC", s)
	}
	rows, errR := strconv.Atoi(strings.TrimSpace(rs))
	cols, errC := strconv.Atoi(strings.TrimSpace(cs))
	if errR != nil || errC != nil || rows <= 0 || cols <= 0 {
		return matrix.Shape{}, lr.malformed("dimensions %q", s)
	}

	return matrix.Shape{Rows: rows, Cols: cols}, nil
}

// LoadCollection reads the dump at path into reg and returns the number of
// matrices added. Nothing is added when the file fails to parse.
func LoadCollection(path string, reg *registry.Registry) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("textio: open %s: %w", path, err)
	}
	defer f.Close()

	items, err := ReadCollection(f)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", path, err)
	}
	for _, it := range items {
		reg.Add(it.Name, it.Matrix)
	}

	return len(items), nil
}
