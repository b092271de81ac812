// SPDX-License-Identifier: MIT

// Package dual implements real dual numbers a + bε, where ε² = 0, and uses
// them for forward-mode automatic differentiation.
//
// 🚀 What is a dual number?
//
//	A dual number carries a function value a together with a derivative b.
//	Evaluating f on x + 1ε yields f(x) + f'(x)ε: every operation in this
//	package applies the chain rule to the ε-coefficient, so derivatives come
//	out exact (up to floating point) with no symbolic algebra and no finite
//	differences.
//
// ✨ Key features:
//   - immutable value type Number: every operation returns a fresh value
//   - arithmetic: Neg, Add, Sub, Mul, Div, Reciprocal, Conjugate
//   - powers: Pow (dual base, dual exponent), PowInt, Sqrt
//   - elementary functions: Sin, Cos, Exp, ExpE, Log
//   - explicit coercion (Coerce) of Go numeric scalars at binary boundaries,
//     so scalar ⊕ dual and dual ⊕ scalar behave the same
//   - Result: a success-or-error carrier that short-circuits composed
//     expressions on the first failure
//
// ⚠️ Domain rules (sentinel errors, match with errors.Is):
//   - ErrDivisionByZero      — reciprocal/division of a number with real part 0
//     (1/(bε) is not expressible: ε is a zero divisor)
//   - ErrUndefinedOperation  — x ** p with x.Real() ≤ 0 unless p is a pure
//     real integer and x.Real() < 0; Log of x.Real() ≤ 0
//   - ErrInvalidOperand      — coercion of a value that is not a number
//   - ErrNonFinite           — NaN/±Inf components, on input or on overflow
//
// ⚙️ Usage:
//
//	x := dual.Variable(2)                  // 2 + ε
//	r := dual.From(x).PowInt(2).Add(dual.From(x).Mul(4)).Add(3)
//	n, err := r.Unwrap()                   // 15 + 8ε: f(2)=15, f'(2)=8
//
// Concurrency:
//
//	Number is a plain value with no shared state. All functions are pure and
//	safe for concurrent use without synchronization.
package dual
