// SPDX-License-Identifier: MIT

package curve

import (
	"math"
)

// Report summarises Check: the largest disagreement between the dual
// derivative and the central difference over the grid.
type Report struct {
	MaxAbsError float64 // max |dual slope - numeric slope|
	At          float64 // abscissa where MaxAbsError occurs
	Samples     int     // number of points compared
	Skipped     int     // points left out by WithSkipUndefined
}

// Within reports whether every compared point agrees to tol.
func (r Report) Within(tol float64) bool {
	return r.MaxAbsError <= tol
}

// Check compares f'(x) from dual evaluation with the central difference
// (WithStep, default 1e-5) at every grid point of [from, to].
//
// A point is undefined when either evaluation fails; that aborts Check
// unless WithSkipUndefined is given. If no point could be compared the
// error is ErrNoDefinedPoints.
func Check(f Func, from, to float64, opts ...Option) (Report, error) {
	o := gatherOptions(opts)
	if f == nil {
		return Report{}, curveErrorf(opCheck, ErrNilFunc)
	}
	xs, err := Grid(from, to, o.samples)
	if err != nil {
		return Report{}, curveErrorf(opCheck, err)
	}

	var r Report
	for _, x := range xs {
		_, slope, err := Derivative(f, x)
		if err == nil {
			var approx float64
			approx, err = CentralDifference(f, x, o.step)
			if err == nil {
				r.Samples++
				if d := math.Abs(slope - approx); d > r.MaxAbsError || r.Samples == 1 {
					r.MaxAbsError, r.At = d, x
				}
				continue
			}
		}
		if !o.skipUndefined {
			return Report{}, curveErrorf(opCheck, err)
		}
		r.Skipped++
	}
	if r.Samples == 0 {
		return r, curveErrorf(opCheck, ErrNoDefinedPoints)
	}

	return r, nil
}
