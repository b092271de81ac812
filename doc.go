// Package realdual is forward-mode automatic differentiation with real
// dual numbers a + bε, where ε² = 0.
//
// 🚀 What is realdual?
//
//	Evaluate f on x + ε and read f(x) off the real part and f'(x) off the
//	ε-coefficient. No symbolic algebra, no finite differences: the chain
//	rule is built into every operation.
//
// ✨ Packages:
//
//	dual/     — the dual number type: arithmetic, powers, sin/cos/exp/ln,
//	            domain errors, coercion of Go scalars, Result chains
//	expr/     — a small expression language compiled to bytecode and run
//	            over reals or duals by one generic VM
//	curve/    — EvaluateReal / EvaluateDual, derivatives, tangent segments,
//	            sampled curves and a numeric cross-check
//	catalog/  — named functions (built-in and YAML)
//	cmd/realdual — command-line front end (eval, sample, tangent, check)
//
// Quick example:
//
//	x := dual.Variable(2)                                   // 2 + ε
//	y, _ := dual.From(x).PowInt(2).Add(dual.From(4).Mul(x)).Add(3).Unwrap()
//	fmt.Println(y)                                          // 15 + 8ε
//
// Domain rules:
//
//	1/(bε)              → dual.ErrDivisionByZero (ε is a zero divisor)
//	(−2 + ε) ** 0.5     → dual.ErrUndefinedOperation
//	(−2 + ε) ** 2       → 4 − 4ε
//
// All library packages are pure: values are immutable and safe for
// concurrent use, nothing logs.
package realdual
