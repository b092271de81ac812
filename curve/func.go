// SPDX-License-Identifier: MIT

package curve

import (
	"github.com/katalvlaran/realdual/dual"
)

// Func is a real function of one variable that can also be evaluated on
// dual numbers. Both methods must compute the same mathematical function.
type Func interface {
	EvalReal(x float64) (float64, error)
	EvalDual(x dual.Number) (dual.Number, error)
}

// Funcs adapts two Go functions to Func. Dual may be nil for callers that
// only plot values; operations needing derivatives then fail with
// ErrNilFunc.
type Funcs struct {
	Real func(float64) (float64, error)
	Dual func(dual.Number) (dual.Number, error)
}

// EvalReal implements Func.
func (f Funcs) EvalReal(x float64) (float64, error) {
	if f.Real == nil {
		return 0, ErrNilFunc
	}
	return f.Real(x)
}

// EvalDual implements Func.
func (f Funcs) EvalDual(x dual.Number) (dual.Number, error) {
	if f.Dual == nil {
		return dual.Number{}, ErrNilFunc
	}
	return f.Dual(x)
}

// EvaluateReal applies f to the real point x.
func EvaluateReal(f Func, x float64) (float64, error) {
	if f == nil {
		return 0, curveErrorf(opEvaluateReal, ErrNilFunc)
	}
	y, err := f.EvalReal(x)
	if err != nil {
		return 0, atErrorf(opEvaluateReal, x, err)
	}

	return y, nil
}

// EvaluateDual applies f lifted to dual numbers. With x = dual.Variable(a)
// the result is f(a) + f'(a)ε.
func EvaluateDual(f Func, x dual.Number) (dual.Number, error) {
	if f == nil {
		return dual.Number{}, curveErrorf(opEvaluateDual, ErrNilFunc)
	}
	y, err := f.EvalDual(x)
	if err != nil {
		return dual.Number{}, atErrorf(opEvaluateDual, x.Real(), err)
	}

	return y, nil
}

// Derivative returns f(x) and f'(x), read off f(x + 1ε).
func Derivative(f Func, x float64) (value, slope float64, err error) {
	y, err := EvaluateDual(f, dual.Variable(x))
	if err != nil {
		return 0, 0, curveErrorf(opDerivative, err)
	}

	return y.Real(), y.Dual(), nil
}

// CentralDifference approximates f'(x) by (f(x+h) - f(x-h)) / 2h.
// Panics if h is not positive.
func CentralDifference(f Func, x, h float64) (float64, error) {
	if !(h > 0) {
		panic("curve: CentralDifference: step must be > 0")
	}
	hi, err := EvaluateReal(f, x+h)
	if err != nil {
		return 0, curveErrorf(opCentralDifference, err)
	}
	lo, err := EvaluateReal(f, x-h)
	if err != nil {
		return 0, curveErrorf(opCentralDifference, err)
	}

	return (hi - lo) / (2 * h), nil
}
