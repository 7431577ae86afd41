// SPDX-License-Identifier: MIT

package shell

import (
	"fmt"

	"github.com/katalvlaran/matcalc/calculator"
	"github.com/katalvlaran/matcalc/matrix"
	"github.com/katalvlaran/matcalc/textio"
)

func (s *Shell) addFromKeyboard() error {
	name, err := s.askName("Matrix name: ")
	if err != nil {
		return err
	}
	rows, err := s.askPositive("Number of rows: ")
	if err != nil {
		return err
	}
	cols, err := s.askPositive("Number of columns: ")
	if err != nil {
		return err
	}
	data, err := s.askRows(rows, cols)
	if err != nil {
		return err
	}

	m, err := matrix.NewDenseFrom(rows, cols, data)
	if err != nil {
		return err
	}
	s.calc.Store(name, m)
	s.printf("Matrix %s added.\n", name)

	return nil
}

// addStructured builds a Lower, Upper or Diagonal matrix from full rows;
// non-zero entries outside the chosen footprint are rejected.
func (s *Shell) addStructured() error {
	name, err := s.askName("Matrix name: ")
	if err != nil {
		return err
	}
	var kind matrix.Kind
	for {
		text, askErr := s.ask("Kind (lower, upper, diagonal): ")
		if askErr != nil {
			return askErr
		}
		k, parseErr := matrix.ParseKind(text)
		if parseErr == nil && k.Structured() {
			kind = k
			break
		}
		s.println("Unknown structured kind!")
	}
	n, err := s.askPositive("Dimension (n): ")
	if err != nil {
		return err
	}
	data, err := s.askRows(n, n)
	if err != nil {
		return err
	}

	m, err := matrix.New(kind, matrix.Shape{Rows: n, Cols: n}, data)
	if err != nil {
		return err
	}
	s.calc.Store(name, m)
	s.printf("Matrix %s (%s) added.\n", name, matrix.Label(m))

	return nil
}

func (s *Shell) addFromFile() error {
	path, err := s.askName("File path: ")
	if err != nil {
		return err
	}
	name, err := s.askName("Matrix name: ")
	if err != nil {
		return err
	}

	m, err := textio.ReadMatrixFile(path)
	if err != nil {
		return err
	}
	s.calc.Store(name, m)
	s.printf("Matrix %s loaded.\n", name)

	return nil
}

func (s *Shell) addIdentity() error {
	name, err := s.askName("Matrix name: ")
	if err != nil {
		return err
	}
	n, err := s.askPositive("Dimension (n): ")
	if err != nil {
		return err
	}
	if _, err = s.calc.Identity(name, n); err != nil {
		return err
	}
	s.printf("Identity matrix %dx%d added as %s.\n", n, n, name)

	return nil
}

func (s *Shell) remove() error {
	name, err := s.askName("Matrix to remove: ")
	if err != nil {
		return err
	}
	s.calc.Registry().Remove(name)
	s.printf("Matrix %s removed.\n", name)

	return nil
}

func (s *Shell) list() error {
	s.println("\nAvailable matrices:")
	if s.calc.Registry().Len() == 0 {
		s.println("(none)")
		return nil
	}
	for e := range s.calc.Registry().List() {
		s.printf("%s: %s %s\n", e.Name, e.Label, e.Shape)
	}

	return nil
}

func (s *Shell) print() error {
	name, err := s.askName("Matrix name: ")
	if err != nil {
		return err
	}
	m, ok := s.calc.Registry().Get(name)
	if !ok {
		return fmt.Errorf("%q: %w", name, calculator.ErrMatrixNotFound)
	}
	s.printf("\nMatrix %s (%s):\n%s\n", name, matrix.Label(m), matrix.Format(m, s.format...))

	return nil
}

func (s *Shell) binary() error {
	a, err := s.askName("First matrix: ")
	if err != nil {
		return err
	}
	var op calculator.Op
	for {
		text, askErr := s.ask("Operation (+, -, *): ")
		if askErr != nil {
			return askErr
		}
		parsed, parseErr := calculator.ParseOp(text)
		if parseErr == nil && parsed.Binary() {
			op = parsed
			break
		}
		s.println("Invalid operation!")
	}
	b, err := s.askName("Second matrix: ")
	if err != nil {
		return err
	}

	return s.runAndStore(calculator.Request{Op: op, A: a, B: b}, "Result name: ")
}

func (s *Shell) scalar() error {
	a, err := s.askName("Matrix name: ")
	if err != nil {
		return err
	}
	k, err := s.askFloat("Scalar: ")
	if err != nil {
		return err
	}

	return s.runAndStore(calculator.Request{Op: calculator.OpScalar, A: a, Scalar: k}, "Result name: ")
}

func (s *Shell) transpose() error {
	a, err := s.askName("Matrix name: ")
	if err != nil {
		return err
	}

	return s.runAndStore(calculator.Request{Op: calculator.OpTranspose, A: a}, "Name for the transpose: ")
}

// runAndStore asks for the result name first, then executes req. An empty
// name prints the result instead of storing it.
func (s *Shell) runAndStore(req calculator.Request, prompt string) error {
	name, err := s.ask(prompt)
	if err != nil {
		return err
	}
	res, err := s.calc.Execute(req)
	if err != nil {
		return err
	}
	if name == "" {
		s.println(matrix.Format(res.Matrix, s.format...))
		return nil
	}
	s.calc.Store(name, res.Matrix)
	s.printf("Result stored as %s.\n", name)

	return nil
}

func (s *Shell) trace() error {
	return s.scalarResult(calculator.OpTrace, "Trace")
}

func (s *Shell) determinant() error {
	return s.scalarResult(calculator.OpDeterminant, "Determinant")
}

func (s *Shell) scalarResult(op calculator.Op, title string) error {
	a, err := s.askName("Matrix name: ")
	if err != nil {
		return err
	}
	res, err := s.calc.Execute(calculator.Request{Op: op, A: a})
	if err != nil {
		return err
	}
	s.printf("%s of matrix %s: %s\n", title, a, matrix.FormatScalar(res.Value, s.format...))

	return nil
}

func (s *Shell) save() error {
	path, err := s.askName("Save to path: ")
	if err != nil {
		return err
	}
	if err = textio.SaveCollection(path, s.calc.Registry()); err != nil {
		return err
	}
	s.println("Matrix list saved.")

	return nil
}

func (s *Shell) load() error {
	path, err := s.askName("File path: ")
	if err != nil {
		return err
	}
	n, err := textio.LoadCollection(path, s.calc.Registry())
	if err != nil {
		return err
	}
	s.printf("%d matrices loaded.\n", n)

	return nil
}

func (s *Shell) reset() error {
	s.calc.Registry().Clear()
	s.println("Matrix list cleared.")

	return nil
}

func (s *Shell) quit() error {
	s.println("Exiting...")
	return errQuit
}
