// SPDX-License-Identifier: MIT

package shell_test

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/matcalc/calculator"
	"github.com/katalvlaran/matcalc/internal/shell"
	"github.com/katalvlaran/matcalc/matrix"
	"github.com/katalvlaran/matcalc/registry"
)

// session runs the shell over the given input lines and returns the output.
func session(t *testing.T, calc *calculator.Calculator, lines ...string) string {
	t.Helper()
	var out bytes.Buffer
	in := strings.NewReader(strings.Join(lines, "\n") + "\n")
	require.NoError(t, shell.New(calc, in, &out).Run())

	return out.String()
}

func newCalc() *calculator.Calculator {
	return calculator.New(registry.New(), nil)
}

func TestRun_ArithmeticSession(t *testing.T) {
	calc := newCalc()
	out := session(t, calc,
		"3", "I", "2", // identity
		"1", "A", "2", "2", "1 2", "3", "3 4", // second row re-prompted
		"7", "A", "+", "I", "S",
		"6", "S",
		"10", "S",
		"11", "S",
		"5",
		"0",
	)

	assert.Contains(t, out, "Identity matrix 2x2 added as I.")
	assert.Contains(t, out, "Error: expected 2 elements!")
	assert.Contains(t, out, "Matrix A added.")
	assert.Contains(t, out, "Result stored as S.")
	assert.Contains(t, out, "Matrix S (Square):\n2\t2\n3\t5\n")
	assert.Contains(t, out, "Trace of matrix S: 7\n")
	assert.Contains(t, out, "Determinant of matrix S: 10\n")
	assert.Contains(t, out, "I: Diagonal 2x2\nA: Square 2x2\nS: Square 2x2\n")
	assert.True(t, strings.HasSuffix(out, "Exiting...\n"))

	assert.Equal(t, []string{"I", "A", "S"}, calc.Registry().Names())
}

func TestRun_ErrorsArePrintedAndLoopContinues(t *testing.T) {
	calc := newCalc()
	out := session(t, calc,
		"99",
		"6", "missing",
		"3", "I", "2",
		"3", "J", "3",
		"7", "I", "/", "*", "J", "P", // bad operator re-prompted, then shape error
		"10", "nope",
		"0",
	)

	assert.Contains(t, out, "Invalid option!")
	assert.Contains(t, out, "Invalid operation!")
	assert.Contains(t, out, "matrix not found")
	assert.Contains(t, out, "dimension mismatch")
	assert.Equal(t, 3, strings.Count(out, "Error: "))
	_, ok := calc.Registry().Get("P")
	assert.False(t, ok)
}

func TestRun_ScalarTransposeAndPrintOnly(t *testing.T) {
	calc := newCalc()
	out := session(t, calc,
		"1", "R", "2", "3", "1 2 3", "4 5 6",
		"8", "R", "x", "2", "R2",
		"9", "R", "",
		"0",
	)

	assert.Contains(t, out, "Invalid value! Use numbers.")
	assert.Contains(t, out, "1\t4\n2\t5\n3\t6\n")

	r2, ok := calc.Registry().Get("R2")
	require.True(t, ok)
	assert.Equal(t, "2\t4\t6\n8\t10\t12", matrix.Format(r2))
	assert.Equal(t, 2, calc.Registry().Len(), "print-only results are not stored")
}

func TestRun_AddStructured(t *testing.T) {
	calc := newCalc()
	out := session(t, calc,
		"15", "L", "square", "lower", "2", "1 0", "2 3",
		"15", "U", "upper", "2", "1 0", "2 3", // non-zero below the diagonal
		"0",
	)

	assert.Contains(t, out, "Unknown structured kind!")
	assert.Contains(t, out, "Matrix L (Lower Triangular) added.")
	assert.Contains(t, out, "outside storage footprint")

	l, ok := calc.Registry().Get("L")
	require.True(t, ok)
	assert.Equal(t, matrix.KindLowerTriangular, l.Kind())
	_, ok = calc.Registry().Get("U")
	assert.False(t, ok)
}

func TestRun_FilesRemoveAndReset(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "m.txt")
	require.NoError(t, os.WriteFile(src, []byte("2 2\n1 2\n3 4\n"), 0o644))
	dump := filepath.Join(dir, "session.txt")

	calc := newCalc()
	out := session(t, calc,
		"2", src, "M",
		"3", "I", "2",
		"12", dump,
		"4", "M",
		"14",
		"5",
		"13", dump,
		"0",
	)

	assert.Contains(t, out, "Matrix M loaded.")
	assert.Contains(t, out, "Matrix list saved.")
	assert.Contains(t, out, "Matrix M removed.")
	assert.Contains(t, out, "Matrix list cleared.")
	assert.Contains(t, out, "(none)")
	assert.Contains(t, out, "2 matrices loaded.")
	assert.Equal(t, []string{"M", "I"}, calc.Registry().Names())

	id, ok := calc.Registry().Get("I")
	require.True(t, ok)
	assert.Equal(t, matrix.KindDiagonal, id.Kind())
}

func TestRun_EndOfInputStopsCleanly(t *testing.T) {
	var out bytes.Buffer
	err := shell.New(newCalc(), strings.NewReader("1\nA\n2\n"), &out).Run()
	require.NoError(t, err)
	assert.Contains(t, out.String(), "Number of columns: ")
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("boom") }

func TestRun_ReadFailure(t *testing.T) {
	var out bytes.Buffer
	err := shell.New(newCalc(), failingReader{}, &out).Run()
	require.ErrorContains(t, err, "boom")
}

func TestWithFormat(t *testing.T) {
	calc := newCalc()
	_, err := calc.Identity("I", 2)
	require.NoError(t, err)

	var out bytes.Buffer
	sh := shell.New(calc, strings.NewReader("6\nI\n10\nI\n11\nI\n0\n"), &out,
		shell.WithFormat(matrix.WithElementSeparator(" "), matrix.WithPrecision(1)),
		shell.WithLogger(nil))
	require.NoError(t, sh.Run())
	assert.Contains(t, out.String(), "Matrix I (Diagonal):\n1.0 0.0\n0.0 1.0\n")
	assert.Contains(t, out.String(), "Trace of matrix I: 2.0\n")
	assert.Contains(t, out.String(), "Determinant of matrix I: 1.0\n")
}

// Display settings must not leak into saved collections.
func TestRun_SaveIgnoresDisplayFormat(t *testing.T) {
	third, err := matrix.NewDenseFrom(1, 2, [][]float64{{1.0 / 3, 2}})
	require.NoError(t, err)
	calc := newCalc()
	calc.Store("A", third)

	dump := filepath.Join(t.TempDir(), "session.txt")
	script := strings.Join([]string{"12", dump, "14", "13", dump, "6", "A", "0"}, "\n") + "\n"

	var out bytes.Buffer
	sh := shell.New(calc, strings.NewReader(script), &out,
		shell.WithFormat(matrix.WithElementSeparator(", "), matrix.WithPrecision(2)))
	require.NoError(t, sh.Run())

	assert.Contains(t, out.String(), "1 matrices loaded.")
	assert.Contains(t, out.String(), "Matrix A (General):\n0.33, 2.00\n")
	assert.NotContains(t, out.String(), "Error: ")

	got, ok := calc.Registry().Get("A")
	require.True(t, ok)
	v, err := got.At(0, 0)
	require.NoError(t, err)
	assert.Equal(t, 1.0/3, v)
}
