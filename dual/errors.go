// SPDX-License-Identifier: MIT
// Package dual: sentinel error set.
// All operations return these sentinels (wrapped with the operation tag),
// callers and tests match them via errors.Is. No operation panics on a
// user-triggered domain error; MustNew is the only panicking constructor.

package dual

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidOperand is returned when a value handed to Coerce (directly or
	// through a coercing operation) is neither a Number nor a real scalar.
	ErrInvalidOperand = errors.New("dual: invalid operand")

	// ErrDivisionByZero is returned by Reciprocal, Div and negative integer
	// powers when the divisor's real component is exactly zero.
	ErrDivisionByZero = errors.New("dual: division by number with zero real part")

	// ErrUndefinedOperation is returned when the result is not real-analytic
	// at the given point, e.g. a negative base raised to a non-integer or
	// dual-valued exponent.
	ErrUndefinedOperation = errors.New("dual: undefined operation")

	// ErrNonFinite signals a NaN or ±Inf component, either supplied by the
	// caller or produced by overflow inside an operation.
	ErrNonFinite = errors.New("dual: NaN or Inf component")
)

// dualErrorf wraps err with the operation tag, keeping errors.Is intact.
func dualErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Operation tags used as error prefixes.
const (
	opNew        = "New"
	opCoerce     = "Coerce"
	opAdd        = "Add"
	opSub        = "Sub"
	opMul        = "Mul"
	opDiv        = "Div"
	opReciprocal = "Reciprocal"
	opPow        = "Pow"
	opPowInt     = "PowInt"
	opExp        = "Exp"
	opSin        = "Sin"
	opCos        = "Cos"
	opLog        = "Log"
	opSqrt       = "Sqrt"
	opEqual      = "Equal"
	opUnmarshal  = "Unmarshal"
)
