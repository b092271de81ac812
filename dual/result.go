// SPDX-License-Identifier: MIT

package dual

// Result is the outcome of a dual computation: either a Number or the first
// error met while computing it.
//
// Composed expressions built with Result stop at the first failure: once a
// Result carries an error every further method returns it unchanged and
// performs no arithmetic. Operands are coerced exactly like the
// package-level functions, so a Result can mix Numbers, Go scalars and other
// Results:
//
//	x := dual.Variable(2)
//	f := dual.From(x).PowInt(2).Add(dual.From(x).Mul(4)).Add(3)
//	n, err := f.Unwrap() // 15 + 8ε, nil
//
// Every step is checked: an overflowing Add, Sub or Mul fails with
// ErrNonFinite instead of carrying ±Inf forward.
//
// The zero Result holds 0 + 0ε and no error.
type Result struct {
	n   Number
	err error
}

// From coerces v into a Result.
func From(v any) Result {
	n, err := Coerce(v)
	return Result{n: n, err: err}
}

// Fail returns a Result carrying err.
func Fail(err error) Result {
	return Result{err: err}
}

// Unwrap returns the carried Number or error.
func (r Result) Unwrap() (Number, error) {
	if r.err != nil {
		return Number{}, r.err
	}

	return r.n, nil
}

// Err returns the carried error, nil on success.
func (r Result) Err() error { return r.err }

// OK reports whether r holds a Number.
func (r Result) OK() bool { return r.err == nil }

// then applies op to the coerced operand unless r already failed.
func (r Result) then(tag string, v any, op func(x, y Number) (Number, error)) Result {
	if r.err != nil {
		return r
	}
	y, err := Coerce(v)
	if err != nil {
		return Result{err: dualErrorf(tag, err)}
	}
	n, err := op(r.n, y)

	return Result{n: n, err: err}
}

// unary applies op unless r already failed.
func (r Result) unary(op func(x Number) (Number, error)) Result {
	if r.err != nil {
		return r
	}
	n, err := op(r.n)

	return Result{n: n, err: err}
}

// Add returns r + v.
func (r Result) Add(v any) Result {
	return r.then(opAdd, v, func(x, y Number) (Number, error) { return checked(opAdd, x.Add(y)) })
}

// Sub returns r - v.
func (r Result) Sub(v any) Result {
	return r.then(opSub, v, func(x, y Number) (Number, error) { return checked(opSub, x.Sub(y)) })
}

// Mul returns r · v.
func (r Result) Mul(v any) Result {
	return r.then(opMul, v, func(x, y Number) (Number, error) { return checked(opMul, x.Mul(y)) })
}

// Div returns r / v.
func (r Result) Div(v any) Result {
	return r.then(opDiv, v, Number.Div)
}

// Pow returns r ** v.
func (r Result) Pow(v any) Result {
	return r.then(opPow, v, Number.Pow)
}

// Exp returns base ** r.
func (r Result) Exp(base any) Result {
	return r.then(opExp, base, Number.Exp)
}

// PowInt returns r ** n.
func (r Result) PowInt(n int) Result {
	return r.unary(func(x Number) (Number, error) { return x.PowInt(n) })
}

// Neg returns -r.
func (r Result) Neg() Result {
	return r.unary(func(x Number) (Number, error) { return x.Neg(), nil })
}

// Reciprocal returns 1/r.
func (r Result) Reciprocal() Result {
	return r.unary(Number.Reciprocal)
}

// Sin returns sin(r).
func (r Result) Sin() Result {
	return r.unary(func(x Number) (Number, error) { return checked(opSin, x.Sin()) })
}

// Cos returns cos(r).
func (r Result) Cos() Result {
	return r.unary(func(x Number) (Number, error) { return checked(opCos, x.Cos()) })
}

// ExpE returns e ** r.
func (r Result) ExpE() Result {
	return r.unary(Number.ExpE)
}

// Log returns ln(r).
func (r Result) Log() Result {
	return r.unary(Number.Log)
}
