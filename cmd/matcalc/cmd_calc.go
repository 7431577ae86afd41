// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/matcalc/calculator"
	"github.com/katalvlaran/matcalc/matrix"
	"github.com/katalvlaran/matcalc/registry"
	"github.com/katalvlaran/matcalc/textio"
)

// showCmd prints a matrix file
var showCmd = &cobra.Command{
	Use:   "show FILE",
	Short: "Print a matrix file",
	Args:  cobra.ExactArgs(1),
	RunE:  showMatrix,
}

// calcCmd runs one operation on matrix files
var calcCmd = &cobra.Command{
	Use:   "calc OP FILE [FILE|SCALAR]",
	Short: "Run one operation on matrix files and print the result",
	Long: `Operations:
  +, -, *             need a second matrix file
  scalar              needs a number
  transpose, trace, determinant
                      take a single matrix

A matrix file starts with a "rows cols" line followed by one line of
space-separated values per row.`,
	Args: cobra.RangeArgs(2, 3),
	RunE: calcMatrix,
}

func showMatrix(cmd *cobra.Command, args []string) error {
	m, err := textio.ReadMatrixFile(args[0])
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n%s\n", matrix.Label(m), m.Shape(), matrix.Format(m, cfg.FormatOptions()...))

	return nil
}

func calcMatrix(cmd *cobra.Command, args []string) error {
	op, err := calculator.ParseOp(args[0])
	if err != nil {
		return err
	}

	calc := calculator.New(registry.New(), logger)
	req := calculator.Request{Op: op, A: args[1]}
	if err = storeFile(calc, args[1]); err != nil {
		return err
	}

	switch {
	case op.Binary():
		if len(args) != 3 {
			return fmt.Errorf("%s needs a second matrix file: %w", op, calculator.ErrMissingOperand)
		}
		req.B = args[2]
		if err = storeFile(calc, args[2]); err != nil {
			return err
		}
	case op == calculator.OpScalar:
		if len(args) != 3 {
			return fmt.Errorf("scalar needs a number: %w", calculator.ErrMissingOperand)
		}
		if req.Scalar, err = strconv.ParseFloat(args[2], 64); err != nil {
			return fmt.Errorf("scalar %q: %w", args[2], err)
		}
	case len(args) != 2:
		return fmt.Errorf("%s takes a single matrix file", op)
	}

	res, err := calc.Execute(req)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	if res.IsScalar {
		fmt.Fprintln(out, matrix.FormatScalar(res.Value, cfg.FormatOptions()...))
		return nil
	}
	fmt.Fprintln(out, matrix.Format(res.Matrix, cfg.FormatOptions()...))

	return nil
}

// storeFile registers the matrix read from path under the path itself, so
// the same file may be passed twice.
func storeFile(calc *calculator.Calculator, path string) error {
	if _, ok := calc.Registry().Get(path); ok {
		return nil
	}
	m, err := textio.ReadMatrixFile(path)
	if err != nil {
		return err
	}
	calc.Store(path, m)

	return nil
}
