// SPDX-License-Identifier: MIT

package curve

import (
	"seehuhn.de/go/geom/vec"
)

// Segment is a tangent line segment centred on the touch point.
type Segment struct {
	Point vec.Vec2 // (x, f(x))
	From  vec.Vec2 // Point minus half a segment along the tangent
	To    vec.Vec2 // Point plus half a segment along the tangent
	Slope float64  // f'(x)
}

// Direction returns the unit vector from From to To.
func (s Segment) Direction() vec.Vec2 {
	return s.To.Sub(s.From).Normalize()
}

// Normal returns the unit normal, the direction rotated by 90°.
func (s Segment) Normal() vec.Vec2 {
	return s.Direction().Rot90()
}

// Tangent returns the tangent segment of f at x. Its direction is
// (1, f'(x)) normalised, so the segment has the same length for every
// slope (WithHalfLength, default 1).
func Tangent(f Func, x float64, opts ...Option) (Segment, error) {
	o := gatherOptions(opts)

	y, slope, err := Derivative(f, x)
	if err != nil {
		return Segment{}, curveErrorf(opTangent, err)
	}

	p := vec.Vec2{X: x, Y: y}
	half := vec.Vec2{X: 1, Y: slope}.Normalize().Mul(o.halfLength)

	return Segment{
		Point: p,
		From:  p.Sub(half),
		To:    p.Add(half),
		Slope: slope,
	}, nil
}
