// SPDX-License-Identifier: MIT

// Package shell implements the interactive numbered menu of matcalc.
//
// The shell is line driven: every prompt reads one line from an io.Reader and
// every message goes to an io.Writer, so a session can be scripted in tests.
// Input errors re-prompt, operation errors are printed and the menu is shown
// again. Only the exit option, end of input or a read failure end Run.
package shell

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/katalvlaran/matcalc/calculator"
	"github.com/katalvlaran/matcalc/matrix"
)

// errQuit stops Run without reporting an error.
var errQuit = errors.New("shell: quit")

// Option configures a Shell.
type Option func(*Shell)

// WithFormat sets the options used to print matrices and scalar results.
// Saved collections always use the default format.
func WithFormat(opts ...matrix.FormatOption) Option {
	return func(s *Shell) { s.format = opts }
}

// WithLogger sets the logger. A nil logger is ignored.
func WithLogger(l *zap.Logger) Option {
	return func(s *Shell) {
		if l != nil {
			s.logger = l
		}
	}
}

// Shell is one interactive session over a Calculator.
type Shell struct {
	calc   *calculator.Calculator
	in     *bufio.Scanner
	out    io.Writer
	format []matrix.FormatOption
	logger *zap.Logger
}

// New returns a Shell reading commands from in and writing to out.
func New(calc *calculator.Calculator, in io.Reader, out io.Writer, opts ...Option) *Shell {
	s := &Shell{
		calc:   calc,
		in:     bufio.NewScanner(in),
		out:    out,
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// menuItem binds a choice number to its label and handler.
type menuItem struct {
	key    string
	label  string
	action func(*Shell) error
}

// menu lists the choices in display order; exit is printed last.
var menu = []menuItem{
	{"1", "Add matrix (keyboard)", (*Shell).addFromKeyboard},
	{"2", "Add matrix (file)", (*Shell).addFromFile},
	{"3", "Add identity matrix", (*Shell).addIdentity},
	{"4", "Remove matrix", (*Shell).remove},
	{"5", "List matrices", (*Shell).list},
	{"6", "Print matrix", (*Shell).print},
	{"7", "Operation between matrices", (*Shell).binary},
	{"8", "Scalar multiplication", (*Shell).scalar},
	{"9", "Transpose", (*Shell).transpose},
	{"10", "Trace", (*Shell).trace},
	{"11", "Determinant", (*Shell).determinant},
	{"12", "Save matrix list", (*Shell).save},
	{"13", "Load matrix list", (*Shell).load},
	{"14", "Reset matrix list", (*Shell).reset},
	{"15", "Add structured matrix", (*Shell).addStructured},
	{"0", "Exit", (*Shell).quit},
}

// Run shows the menu and dispatches choices until exit or end of input.
// It returns a non-nil error only when reading the input fails.
func (s *Shell) Run() error {
	for {
		s.showMenu()
		choice, err := s.ask("Choose an option: ")
		if err != nil {
			return s.stop(err)
		}

		item, ok := lookup(choice)
		if !ok {
			s.println("Invalid option!")
			continue
		}
		if err = item.action(s); err != nil {
			if errors.Is(err, errQuit) || errors.Is(err, io.EOF) {
				return s.stop(err)
			}
			s.logger.Debug("menu action failed", zap.String("option", item.key), zap.Error(err))
			s.printf("Error: %v\n", err)
		}
	}
}

// stop maps the loop-ending error to Run's result.
func (s *Shell) stop(err error) error {
	if errors.Is(err, errQuit) || errors.Is(err, io.EOF) {
		return nil
	}

	return err
}

func lookup(choice string) (menuItem, bool) {
	for _, it := range menu {
		if it.key == choice {
			return it, true
		}
	}

	return menuItem{}, false
}

func (s *Shell) showMenu() {
	s.println("\n--- Matrix Calculator ---")
	for _, it := range menu {
		s.printf("%s. %s\n", it.key, it.label)
	}
}

func (s *Shell) printf(format string, args ...any) { fmt.Fprintf(s.out, format, args...) }

func (s *Shell) println(args ...any) { fmt.Fprintln(s.out, args...) }

// ---------- Prompts ----------

// ask prints prompt and returns the next input line, trimmed. End of input
// yields io.EOF.
func (s *Shell) ask(prompt string) (string, error) {
	fmt.Fprint(s.out, prompt)
	if !s.in.Scan() {
		if err := s.in.Err(); err != nil {
			return "", fmt.Errorf("shell: read input: %w", err)
		}
		return "", io.EOF
	}

	return strings.TrimSpace(s.in.Text()), nil
}

// askName re-prompts until a non-empty line is entered.
func (s *Shell) askName(prompt string) (string, error) {
	for {
		name, err := s.ask(prompt)
		if err != nil || name != "" {
			return name, err
		}
		s.println("A name is required!")
	}
}

// askPositive re-prompts until a positive integer is entered.
func (s *Shell) askPositive(prompt string) (int, error) {
	for {
		text, err := s.ask(prompt)
		if err != nil {
			return 0, err
		}
		n, convErr := strconv.Atoi(text)
		if convErr == nil && n > 0 {
			return n, nil
		}
		s.println("Enter a positive integer!")
	}
}

// askFloat re-prompts until a number is entered.
func (s *Shell) askFloat(prompt string) (float64, error) {
	for {
		text, err := s.ask(prompt)
		if err != nil {
			return 0, err
		}
		v, convErr := strconv.ParseFloat(text, 64)
		if convErr == nil {
			return v, nil
		}
		s.println("Invalid value! Use numbers.")
	}
}

// askRows reads rows lines of exactly cols numbers each, re-prompting a
// line whose count or values are wrong.
func (s *Shell) askRows(rows, cols int) ([][]float64, error) {
	s.println("Enter the elements row by row (separated by spaces):")
	data := make([][]float64, rows)
	for i := 0; i < rows; {
		text, err := s.ask(fmt.Sprintf("Row %d: ", i+1))
		if err != nil {
			return nil, err
		}
		fields := strings.Fields(text)
		if len(fields) != cols {
			s.printf("Error: expected %d elements!\n", cols)
			continue
		}
		row, ok := parseFields(fields)
		if !ok {
			s.println("Invalid values! Use numbers.")
			continue
		}
		data[i] = row
		i++
	}

	return data, nil
}

func parseFields(fields []string) ([]float64, bool) {
	row := make([]float64, len(fields))
	for j, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return nil, false
		}
		row[j] = v
	}

	return row, true
}
