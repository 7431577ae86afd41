// SPDX-License-Identifier: MIT

// Package calculator is the command interface between a user-facing front end
// and the matrix engine. It resolves operand names through a registry, runs
// the requested operation and returns the result without storing it; the
// caller decides whether and under which name to keep a matrix result.
package calculator

import (
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/katalvlaran/matcalc/matrix"
	"github.com/katalvlaran/matcalc/registry"
)

var (
	// ErrMatrixNotFound is returned when an operand name is not registered.
	ErrMatrixNotFound = errors.New("calculator: matrix not found")

	// ErrUnknownOperation is returned by ParseOp for an unrecognized operation.
	ErrUnknownOperation = errors.New("calculator: unknown operation")

	// ErrMissingOperand is returned when a binary operation has no B operand.
	ErrMissingOperand = errors.New("calculator: missing operand")
)

// Op names one calculator operation.
type Op string

const (
	OpAdd         Op = "+"
	OpSub         Op = "-"
	OpMul         Op = "*"
	OpScalar      Op = "scalar"
	OpTranspose   Op = "transpose"
	OpTrace       Op = "trace"
	OpDeterminant Op = "determinant"
)

// opAliases maps accepted spellings to canonical operations.
var opAliases = map[string]Op{
	"+": OpAdd, "add": OpAdd,
	"-": OpSub, "sub": OpSub,
	"*": OpMul, "mul": OpMul,
	"scalar": OpScalar, "scale": OpScalar,
	"transpose": OpTranspose, "t": OpTranspose,
	"trace": OpTrace, "tr": OpTrace,
	"determinant": OpDeterminant, "det": OpDeterminant,
}

// ParseOp maps user input to an Op, case-insensitively.
func ParseOp(s string) (Op, error) {
	if op, ok := opAliases[strings.ToLower(strings.TrimSpace(s))]; ok {
		return op, nil
	}

	return "", fmt.Errorf("%q: %w", s, ErrUnknownOperation)
}

// Binary reports whether op takes a second matrix operand.
func (op Op) Binary() bool { return op == OpAdd || op == OpSub || op == OpMul }

// ScalarResult reports whether op yields a number rather than a matrix.
func (op Op) ScalarResult() bool { return op == OpTrace || op == OpDeterminant }

// Request is one operation on registered matrices.
type Request struct {
	Op     Op
	A      string  // left operand name (always required)
	B      string  // right operand name for binary ops
	Scalar float64 // factor for OpScalar
}

// Result holds either a matrix or a number, depending on the operation.
type Result struct {
	Matrix   matrix.Matrix // set unless IsScalar
	Value    float64       // set when IsScalar
	IsScalar bool
}

// Calculator executes Requests against a Registry.
type Calculator struct {
	reg    *registry.Registry
	logger *zap.Logger
}

// New returns a Calculator over reg. A nil logger is replaced by a no-op one.
func New(reg *registry.Registry, logger *zap.Logger) *Calculator {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Calculator{reg: reg, logger: logger}
}

// Registry exposes the underlying registry.
func (c *Calculator) Registry() *registry.Registry { return c.reg }

// Store registers m under name. A nil m is ignored.
func (c *Calculator) Store(name string, m matrix.Matrix) {
	if m == nil {
		return
	}
	c.reg.Add(name, m)
	c.logger.Debug("matrix stored",
		zap.String("name", name),
		zap.String("kind", matrix.Label(m)),
		zap.Stringer("shape", m.Shape()))
}

// Identity registers the n×n identity (Diagonal) under name and returns a
// copy of it; the stored matrix is owned by the registry.
func (c *Calculator) Identity(name string, n int) (matrix.Matrix, error) {
	id, err := matrix.NewIdentity(n)
	if err != nil {
		return nil, err
	}
	c.Store(name, id)

	return id.Clone(), nil
}

func (c *Calculator) lookup(name string) (matrix.Matrix, error) {
	m, ok := c.reg.Get(name)
	if !ok {
		return nil, fmt.Errorf("%q: %w", name, ErrMatrixNotFound)
	}

	return m, nil
}

// Execute runs req. Operands are read from the registry and never modified;
// the result is not stored.
func (c *Calculator) Execute(req Request) (Result, error) {
	log := c.logger.With(zap.String("op", string(req.Op)), zap.String("a", req.A))

	res, err := c.execute(req)
	if err != nil {
		log.Warn("operation failed", zap.String("b", req.B), zap.Error(err))
		return Result{}, err
	}
	if res.IsScalar {
		log.Debug("operation done", zap.Float64("value", res.Value))
	} else {
		log.Debug("operation done",
			zap.String("kind", matrix.Label(res.Matrix)),
			zap.Stringer("shape", res.Matrix.Shape()))
	}

	return res, nil
}

func (c *Calculator) execute(req Request) (Result, error) {
	a, err := c.lookup(req.A)
	if err != nil {
		return Result{}, err
	}

	var b matrix.Matrix
	if req.Op.Binary() {
		if req.B == "" {
			return Result{}, fmt.Errorf("%s: %w", req.Op, ErrMissingOperand)
		}
		if b, err = c.lookup(req.B); err != nil {
			return Result{}, err
		}
	}

	var m matrix.Matrix
	switch req.Op {
	case OpAdd:
		m, err = matrix.Add(a, b)
	case OpSub:
		m, err = matrix.Sub(a, b)
	case OpMul:
		m, err = matrix.Multiply(a, b)
	case OpScalar:
		m, err = matrix.Multiply(a, req.Scalar)
	case OpTranspose:
		m, err = matrix.Transpose(a)
	case OpTrace, OpDeterminant:
		return scalarOp(req.Op, a)
	default:
		return Result{}, fmt.Errorf("%q: %w", req.Op, ErrUnknownOperation)
	}
	if err != nil {
		return Result{}, err
	}

	return Result{Matrix: m}, nil
}

func scalarOp(op Op, a matrix.Matrix) (Result, error) {
	var (
		v   float64
		err error
	)
	if op == OpTrace {
		v, err = matrix.Trace(a)
	} else {
		v, err = matrix.Determinant(a)
	}
	if err != nil {
		return Result{}, err
	}

	return Result{Value: v, IsScalar: true}, nil
}
