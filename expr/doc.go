// SPDX-License-Identifier: MIT

// Package expr compiles single-variable infix expressions such as
//
//	x^2 + 4*x + 3
//	0.25*(x/2)^3 - x/2 + 1
//	exp(-x^2) * sin(pi*x)
//
// into bytecode that runs over any number type implementing Algebra. The
// same Program therefore evaluates over plain reals (Reals) and over dual
// numbers (Duals), which yields the value and the exact first derivative
// in one pass:
//
//	p := expr.MustCompile("x^2 + 4*x + 3")
//	y, _ := p.EvalReal(2)                  // 15
//	d, _ := p.EvalDual(dual.Variable(2))   // 15 + 8ε
//
// Names: the variable (x unless WithVariable says otherwise), the
// constants pi and e, and the functions sin, cos, exp (exp(u) is e**u,
// exp(u, b) is b**u), ln (alias log), sqrt and pow. '^' and '**' both
// mean power and bind tighter than unary minus.
//
// Integral literal exponents (x^2, x^-1, pow(x, 3)) compile to repeated
// multiplication (dual.Number.PowInt), so they are defined at a zero base:
// x^2 at 0 is 0 + 0ε, where dual.Number.Pow, like the algebra it
// implements, reports ErrUndefinedOperation for any zero base. Write
// pow(x, y) with a non-literal exponent, or a fractional literal, to get
// the strict rule; any other exponent follows dual.Number.Pow.
package expr
