// SPDX-License-Identifier: MIT
// Package: dual
//
// coerce.go - the coercion contract applied at every binary boundary.
//
// Purpose:
//   - Turn any accepted operand into a Number: real scalars lift to (v, 0),
//     a Number passes through unchanged, a Result unwraps (a failed Result
//     propagates its own error).
//   - Every Go integer and float kind is one "real scalar": it is converted
//     to float64, there is no separate integer path.
//
// Contract:
//   - Unsupported kinds fail with ErrInvalidOperand, non-finite scalars with
//     ErrNonFinite. Never panics.

package dual

import "fmt"

// Coerce converts v into a Number.
//
// Accepted kinds: Number, *Number (non-nil), Result, float32, float64 and
// every signed and unsigned integer kind.
//
// Errors:
//   - ErrInvalidOperand for any other kind (including nil and nil *Number).
//   - ErrNonFinite when a float scalar is NaN or ±Inf.
//   - The carried error of a failed Result, unchanged.
func Coerce(v any) (Number, error) {
	switch t := v.(type) {
	case Number:
		return t, nil
	case *Number:
		if t == nil {
			return Number{}, dualErrorf(opCoerce, fmt.Errorf("nil *Number: %w", ErrInvalidOperand))
		}
		return *t, nil
	case Result:
		return t.Unwrap()
	case float64:
		return liftFinite(t)
	case float32:
		return liftFinite(float64(t))
	case int:
		return Lift(float64(t)), nil
	case int8:
		return Lift(float64(t)), nil
	case int16:
		return Lift(float64(t)), nil
	case int32:
		return Lift(float64(t)), nil
	case int64:
		return Lift(float64(t)), nil
	case uint:
		return Lift(float64(t)), nil
	case uint8:
		return Lift(float64(t)), nil
	case uint16:
		return Lift(float64(t)), nil
	case uint32:
		return Lift(float64(t)), nil
	case uint64:
		return Lift(float64(t)), nil
	default:
		return Number{}, dualErrorf(opCoerce, fmt.Errorf("%T: %w", v, ErrInvalidOperand))
	}
}

// liftFinite lifts f after checking it is finite.
func liftFinite(f float64) (Number, error) {
	if !isFinite(f) {
		return Number{}, dualErrorf(opCoerce, ErrNonFinite)
	}

	return Lift(f), nil
}

// coercePair coerces both operands of a binary operation, tagging failures
// with op. The left operand is checked first.
func coercePair(op string, x, y any) (Number, Number, error) {
	a, err := Coerce(x)
	if err != nil {
		return Number{}, Number{}, dualErrorf(op, err)
	}
	b, err := Coerce(y)
	if err != nil {
		return Number{}, Number{}, dualErrorf(op, err)
	}

	return a, b, nil
}
