// SPDX-License-Identifier: MIT
// Package: dual
//
// elementary.go - powers and transcendental functions.
//
// Every function here is the first-order Taylor expansion of the real
// function composed with the chain rule, which is exact under ε² = 0:
//
//	f(a + bε) = f(a) + b·f'(a)ε
//
// Power case analysis (x ** p, x = a+bε, p = c+dε):
//   - a > 0: a^c + (c·a^(c-1)·b + a^c·ln(a)·d)ε         (both partials)
//   - a < 0, d == 0, c integral: a^c + c·a^(c-1)·bε      (no ln of a negative)
//   - anything else: ErrUndefinedOperation (a^b is not real-analytic there)

package dual

import (
	"fmt"
	"math"
)

// Pow returns x ** p.
//
// Errors:
//   - ErrUndefinedOperation when x.Real() == 0, or x.Real() < 0 and p is not
//     a pure real integer.
//   - ErrDivisionByZero when a negative integer exponent meets a zero base
//     in the reciprocal sub-step.
//   - ErrNonFinite on overflow.
func (x Number) Pow(p Number) (Number, error) {
	a, b := x.re, x.du
	c, d := p.re, p.du

	switch {
	case a > 0:
		ac := math.Pow(a, c)
		return checked(opPow, Number{
			re: ac,
			du: c*math.Pow(a, c-1)*b + ac*math.Log(a)*d,
		})

	case a < 0 && d == 0 && c == math.Trunc(c):
		ac, err := powIntegral(a, c)
		if err != nil {
			return Number{}, dualErrorf(opPow, err)
		}
		acm1, err := powIntegral(a, c-1)
		if err != nil {
			return Number{}, dualErrorf(opPow, err)
		}
		return checked(opPow, Number{re: ac, du: c * acm1 * b})
	}

	return Number{}, dualErrorf(opPow, fmt.Errorf("%s ** %s: %w", x, p, ErrUndefinedOperation))
}

// powIntegral computes a^c for integral c; a negative exponent is a
// reciprocal and requires a ≠ 0.
func powIntegral(a, c float64) (float64, error) {
	if c < 0 && a == 0 {
		return 0, ErrDivisionByZero
	}

	return math.Pow(a, c), nil
}

// PowInt returns x ** n by repeated squaring over Mul.
//
// Unlike Pow, PowInt is total for n >= 0 (including a zero real part:
// (0+bε)² = 0). For n < 0 it raises Reciprocal(x) to -n and fails with
// ErrDivisionByZero when x.Real() == 0.
//
// Complexity: O(log |n|) multiplications.
func (x Number) PowInt(n int) (Number, error) {
	base := x
	k := uint64(n)
	if n < 0 {
		inv, err := x.Reciprocal()
		if err != nil {
			return Number{}, dualErrorf(opPowInt, err)
		}
		base = inv
		k = uint64(-(n + 1)) + 1 // |n| without overflowing on math.MinInt
	}

	acc := Lift(1)
	for k > 0 {
		if k&1 == 1 {
			acc = acc.Mul(base)
		}
		base = base.Mul(base)
		k >>= 1
	}

	return checked(opPowInt, acc)
}

// Exp returns base ** x: x is the exponent, base the (possibly dual) base.
// Errors are those of Pow.
func (x Number) Exp(base Number) (Number, error) {
	n, err := base.Pow(x)
	if err != nil {
		return Number{}, dualErrorf(opExp, err)
	}

	return n, nil
}

// ExpE returns e ** x, the natural exponential.
// Errors: ErrNonFinite on overflow.
func (x Number) ExpE() (Number, error) {
	return x.Exp(Lift(math.E))
}

// Sin returns sin(a) + b·cos(a)ε. Total; finite for finite x.
func (x Number) Sin() Number {
	s, c := math.Sincos(x.re)
	return Number{re: s, du: x.du * c}
}

// Cos returns cos(a) - b·sin(a)ε. Total; finite for finite x.
func (x Number) Cos() Number {
	s, c := math.Sincos(x.re)
	return Number{re: c, du: -x.du * s}
}

// Log returns the natural logarithm ln(a) + (b/a)ε.
//
// Errors:
//   - ErrUndefinedOperation unless x.Real() > 0.
//   - ErrNonFinite when b/a overflows (a subnormal a).
func (x Number) Log() (Number, error) {
	if !(x.re > 0) {
		return Number{}, dualErrorf(opLog, fmt.Errorf("ln(%s): %w", x, ErrUndefinedOperation))
	}

	return checked(opLog, Number{re: math.Log(x.re), du: x.du / x.re})
}

// Sqrt returns x ** 0.5.
// Errors: ErrUndefinedOperation unless x.Real() > 0.
func (x Number) Sqrt() (Number, error) {
	n, err := x.Pow(Lift(0.5))
	if err != nil {
		return Number{}, dualErrorf(opSqrt, err)
	}

	return n, nil
}

// ---------- coercing forms ----------

// Pow returns x ** p after coercing both operands. Reversed exponentiation
// (scalar ** dual) is Pow(scalar, d).
func Pow(x, p any) (Number, error) {
	a, b, err := coercePair(opPow, x, p)
	if err != nil {
		return Number{}, err
	}

	return a.Pow(b)
}

// Exp returns base ** x after coercing both operands.
func Exp(x, base any) (Number, error) {
	a, b, err := coercePair(opExp, x, base)
	if err != nil {
		return Number{}, err
	}

	return a.Exp(b)
}
