// SPDX-License-Identifier: MIT

package curve

import (
	"math"

	"seehuhn.de/go/geom/vec"

	"github.com/katalvlaran/realdual/dual"
)

// Point is one sample of a curve.
type Point struct {
	X       float64 `json:"x" yaml:"x"`
	Y       float64 `json:"y" yaml:"y"`
	Slope   float64 `json:"slope" yaml:"slope"`     // f'(X)
	Defined bool    `json:"defined" yaml:"defined"` // false for a gap left by WithSkipUndefined
}

// Vec returns the point as a 2D vector.
func (p Point) Vec() vec.Vec2 {
	return vec.Vec2{X: p.X, Y: p.Y}
}

// Grid returns n evenly spaced abscissae from from to to, both included.
//
// Errors: ErrInvalidRange unless from < to and both are finite.
// Panics if n < 2.
func Grid(from, to float64, n int) ([]float64, error) {
	if n < 2 {
		panic("curve: Grid: need at least 2 points")
	}
	if !(from < to) || math.IsInf(from, 0) || math.IsInf(to, 0) {
		return nil, ErrInvalidRange
	}

	xs := make([]float64, n)
	step := (to - from) / float64(n-1)
	for i := range xs {
		xs[i] = from + float64(i)*step
	}
	xs[n-1] = to

	return xs, nil
}

// Sample evaluates f and f' on an evenly spaced grid over [from, to]
// (WithSamples, default 101 points).
//
// The first undefined point aborts sampling and its error is returned,
// unless WithSkipUndefined is given.
func Sample(f Func, from, to float64, opts ...Option) ([]Point, error) {
	o := gatherOptions(opts)
	if f == nil {
		return nil, curveErrorf(opSample, ErrNilFunc)
	}
	xs, err := Grid(from, to, o.samples)
	if err != nil {
		return nil, curveErrorf(opSample, err)
	}

	pts := make([]Point, len(xs))
	for i, x := range xs {
		y, err := f.EvalDual(dual.Variable(x))
		if err != nil {
			if !o.skipUndefined {
				return nil, atErrorf(opSample, x, err)
			}
			pts[i] = Point{X: x}
			continue
		}
		pts[i] = Point{X: x, Y: y.Real(), Slope: y.Dual(), Defined: true}
	}

	return pts, nil
}
