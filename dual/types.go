// SPDX-License-Identifier: MIT

package dual

import "math"

// DefaultEpsilon is the tolerance used by callers of EqualApprox that have no
// better estimate of the accumulated rounding error.
const DefaultEpsilon = 1e-9

// Number is a real dual number a + bε with ε² = 0.
//
// The zero value is 0 + 0ε. Fields are unexported so a Number can only be
// changed by building a new one. Both components are finite for every value
// returned alongside a nil error; the total methods Add, Sub and Mul do not
// check and saturate to ±Inf on overflow.
type Number struct {
	re float64 // real component: the function value
	du float64 // dual component: the derivative / ε-coefficient
}

// Epsilon is the infinitesimal unit 0 + 1ε.
var Epsilon = Number{du: 1}

// New returns a + bε.
// Errors: ErrNonFinite if either component is NaN or ±Inf.
func New(a, b float64) (Number, error) {
	if !isFinite(a) || !isFinite(b) {
		return Number{}, dualErrorf(opNew, ErrNonFinite)
	}

	return Number{re: a, du: b}, nil
}

// MustNew is like New but panics on non-finite input.
// Intended for literals in tests, examples and package-level variables.
func MustNew(a, b float64) Number {
	n, err := New(a, b)
	if err != nil {
		panic(err)
	}

	return n
}

// Lift embeds the real scalar r as r + 0ε.
// r is expected to be finite; use Coerce for validated lifting.
func Lift(r float64) Number {
	return Number{re: r}
}

// Variable returns x + 1ε, the seed that makes the ε-coefficient of f(x+ε)
// equal to f'(x).
func Variable(x float64) Number {
	return Number{re: x, du: 1}
}

// Real returns the real component (the function value).
func (x Number) Real() float64 { return x.re }

// Dual returns the dual component (the derivative).
func (x Number) Dual() float64 { return x.du }

// IsReal reports whether the dual component is exactly zero.
func (x Number) IsReal() bool { return x.du == 0 }

// isFinite reports whether f is neither NaN nor ±Inf.
func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// checked returns n, or ErrNonFinite tagged with op if an operation overflowed.
func checked(op string, n Number) (Number, error) {
	if !isFinite(n.re) || !isFinite(n.du) {
		return Number{}, dualErrorf(op, ErrNonFinite)
	}

	return n, nil
}
