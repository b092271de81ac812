// SPDX-License-Identifier: MIT
// Package: dual
//
// arith.go - negation, conjugate, reciprocal and the four field-like
// operations of the dual algebra.
//
// Formulas (ε² = 0):
//   - (a+bε) + (c+dε) = (a+c) + (b+d)ε
//   - (a+bε) · (c+dε) = ac + (ad+bc)ε       (the bd·ε² term vanishes)
//   - (a+bε)⁻¹        = (a-bε) / a²         (requires a ≠ 0)
//   - x / y           = x · y⁻¹
//
// Methods take typed Number operands and never coerce. Add, Sub and Mul
// are total: on overflow they saturate to ±Inf (and later NaN) without
// reporting it. The package-level functions (Add, Sub, Mul, Div, Equal)
// accept any operand kind, run it through Coerce first, which is how
// scalar ⊕ dual and dual ⊕ scalar both work, and fail with ErrNonFinite
// instead of returning a non-finite result.

package dual

import "math"

// Neg returns -(a+bε) = -a - bε.
func (x Number) Neg() Number {
	return Number{re: -x.re, du: -x.du}
}

// Pos returns x unchanged (unary plus).
func (x Number) Pos() Number {
	return x
}

// Conjugate returns a - bε: the sign of the dual component flips, the real
// component is kept.
func (x Number) Conjugate() Number {
	return Number{re: x.re, du: -x.du}
}

// Reciprocal returns 1/x = conjugate(x) · (1/a²).
//
// Errors:
//   - ErrDivisionByZero if x.Real() == 0: 1/(bε) is not a dual number.
//   - ErrNonFinite if 1/a² overflows.
func (x Number) Reciprocal() (Number, error) {
	if x.re == 0 {
		return Number{}, dualErrorf(opReciprocal, ErrDivisionByZero)
	}

	return checked(opReciprocal, x.Conjugate().scale(1/(x.re*x.re)))
}

// Add returns x + y. Saturates on overflow; see the package function Add
// for a checked form.
func (x Number) Add(y Number) Number {
	return Number{re: x.re + y.re, du: x.du + y.du}
}

// Sub returns x - y. Saturates on overflow.
func (x Number) Sub(y Number) Number {
	return Number{re: x.re - y.re, du: x.du - y.du}
}

// Mul returns x · y = ac + (ad + bc)ε. Saturates on overflow.
func (x Number) Mul(y Number) Number {
	return Number{re: x.re * y.re, du: x.re*y.du + x.du*y.re}
}

// Div returns x / y = x · reciprocal(y).
// Errors: ErrDivisionByZero if y.Real() == 0.
func (x Number) Div(y Number) (Number, error) {
	inv, err := y.Reciprocal()
	if err != nil {
		return Number{}, dualErrorf(opDiv, err)
	}

	return checked(opDiv, x.Mul(inv))
}

// Equal reports exact structural equality: both components compare equal.
// No tolerance is applied; see EqualApprox.
func (x Number) Equal(y Number) bool {
	return x.re == y.re && x.du == y.du
}

// EqualApprox reports whether both components of x and y differ by at most
// eps. A negative or NaN eps never matches.
func (x Number) EqualApprox(y Number, eps float64) bool {
	if !(eps >= 0) {
		return false
	}

	return math.Abs(x.re-y.re) <= eps && math.Abs(x.du-y.du) <= eps
}

// scale multiplies both components by the real f.
func (x Number) scale(f float64) Number {
	return Number{re: x.re * f, du: x.du * f}
}

// ---------- coercing forms ----------

// Add returns x + y after coercing both operands.
// Errors: ErrInvalidOperand, ErrNonFinite on overflow.
func Add(x, y any) (Number, error) {
	a, b, err := coercePair(opAdd, x, y)
	if err != nil {
		return Number{}, err
	}

	return checked(opAdd, a.Add(b))
}

// Sub returns x - y after coercing both operands.
func Sub(x, y any) (Number, error) {
	a, b, err := coercePair(opSub, x, y)
	if err != nil {
		return Number{}, err
	}

	return checked(opSub, a.Sub(b))
}

// Mul returns x · y after coercing both operands.
func Mul(x, y any) (Number, error) {
	a, b, err := coercePair(opMul, x, y)
	if err != nil {
		return Number{}, err
	}

	return checked(opMul, a.Mul(b))
}

// Div returns x / y after coercing both operands. Reversed-operand division
// (scalar / dual) is simply Div(scalar, d).
func Div(x, y any) (Number, error) {
	a, b, err := coercePair(opDiv, x, y)
	if err != nil {
		return Number{}, err
	}

	return a.Div(b)
}

// Equal coerces both operands and compares them exactly.
func Equal(x, y any) (bool, error) {
	a, b, err := coercePair(opEqual, x, y)
	if err != nil {
		return false, err
	}

	return a.Equal(b), nil
}
