// SPDX-License-Identifier: MIT

package expr

import (
	"fmt"
	"math"

	"github.com/katalvlaran/realdual/dual"
)

// Algebra is the set of operations a Program needs from a number type.
// Every operation reports domain failures as errors so that evaluation
// stops at the first one.
type Algebra[T any] interface {
	Const(c float64) T
	Add(a, b T) (T, error)
	Sub(a, b T) (T, error)
	Mul(a, b T) (T, error)
	Div(a, b T) (T, error)
	Pow(a, p T) (T, error)
	PowInt(a T, n int) (T, error)
	Neg(a T) T
	Sin(a T) T
	Cos(a T) T
	Exp(a, base T) (T, error) // base ** a
	Log(a T) (T, error)
}

// Reals evaluates over float64. Its domain rules are those of dual.Number
// restricted to the real part, and errors wrap the dual package sentinels.
//
// A Program that fails under Reals fails under Duals, but not the other
// way round: Duals also sees the ε-parts, so it rejects a negative base
// under an exponent that depends on the variable ((0-2)^x) and a
// derivative that overflows (ln(x) at a subnormal x), where Reals has a
// value.
type Reals struct{}

// Duals evaluates over dual.Number.
type Duals struct{}

var (
	_ Algebra[float64]     = Reals{}
	_ Algebra[dual.Number] = Duals{}
)

// ---------- Reals ----------

func finite(tag string, f float64) (float64, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, exprErrorf(tag, dual.ErrNonFinite)
	}
	return f, nil
}

func (Reals) Const(c float64) float64 { return c }

func (Reals) Add(a, b float64) (float64, error) { return finite("Add", a+b) }

func (Reals) Sub(a, b float64) (float64, error) { return finite("Sub", a-b) }

func (Reals) Mul(a, b float64) (float64, error) { return finite("Mul", a*b) }

func (Reals) Div(a, b float64) (float64, error) {
	if b == 0 {
		return 0, exprErrorf("Div", dual.ErrDivisionByZero)
	}
	return finite("Div", a/b)
}

func (Reals) Pow(a, p float64) (float64, error) {
	switch {
	case a > 0:
		return finite("Pow", math.Pow(a, p))
	case a < 0 && p == math.Trunc(p):
		return finite("Pow", math.Pow(a, p))
	}

	return 0, exprErrorf("Pow", fmt.Errorf("%v ** %v: %w", a, p, dual.ErrUndefinedOperation))
}

func (Reals) PowInt(a float64, n int) (float64, error) {
	if n < 0 && a == 0 {
		return 0, exprErrorf("PowInt", dual.ErrDivisionByZero)
	}
	return finite("PowInt", math.Pow(a, float64(n)))
}

func (Reals) Neg(a float64) float64 { return -a }

func (Reals) Sin(a float64) float64 { return math.Sin(a) }

func (Reals) Cos(a float64) float64 { return math.Cos(a) }

func (r Reals) Exp(a, base float64) (float64, error) {
	v, err := r.Pow(base, a)
	if err != nil {
		return 0, exprErrorf("Exp", err)
	}
	return v, nil
}

func (Reals) Log(a float64) (float64, error) {
	if !(a > 0) {
		return 0, exprErrorf("Log", fmt.Errorf("ln(%v): %w", a, dual.ErrUndefinedOperation))
	}
	return math.Log(a), nil
}

// ---------- Duals ----------

// sum re-validates results of the total operations, which may overflow.
func sum(tag string, n dual.Number) (dual.Number, error) {
	if _, err := dual.New(n.Real(), n.Dual()); err != nil {
		return dual.Number{}, exprErrorf(tag, dual.ErrNonFinite)
	}
	return n, nil
}

func (Duals) Const(c float64) dual.Number { return dual.Lift(c) }

func (Duals) Add(a, b dual.Number) (dual.Number, error) { return sum("Add", a.Add(b)) }

func (Duals) Sub(a, b dual.Number) (dual.Number, error) { return sum("Sub", a.Sub(b)) }

func (Duals) Mul(a, b dual.Number) (dual.Number, error) { return sum("Mul", a.Mul(b)) }

func (Duals) Div(a, b dual.Number) (dual.Number, error) { return a.Div(b) }

func (Duals) Pow(a, p dual.Number) (dual.Number, error) { return a.Pow(p) }

func (Duals) PowInt(a dual.Number, n int) (dual.Number, error) { return a.PowInt(n) }

func (Duals) Neg(a dual.Number) dual.Number { return a.Neg() }

func (Duals) Sin(a dual.Number) dual.Number { return a.Sin() }

func (Duals) Cos(a dual.Number) dual.Number { return a.Cos() }

func (Duals) Exp(a, base dual.Number) (dual.Number, error) { return a.Exp(base) }

func (Duals) Log(a dual.Number) (dual.Number, error) { return a.Log() }
