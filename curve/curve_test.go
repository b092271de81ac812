// SPDX-License-Identifier: MIT

package curve_test

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"seehuhn.de/go/geom/vec"

	"github.com/katalvlaran/realdual/curve"
	"github.com/katalvlaran/realdual/dual"
	"github.com/katalvlaran/realdual/expr"
)

var approx = cmpopts.EquateApprox(0, 1e-12)

// square is x² written as Go closures.
var square = curve.Funcs{
	Real: func(x float64) (float64, error) { return x * x, nil },
	Dual: func(x dual.Number) (dual.Number, error) { return x.Mul(x), nil },
}

func TestEvaluate(t *testing.T) {
	p := expr.MustCompile("x^2 + 4*x + 3")

	y, err := curve.EvaluateReal(p, 2)
	require.NoError(t, err)
	assert.Equal(t, 15.0, y)

	d, err := curve.EvaluateDual(p, dual.Variable(2))
	require.NoError(t, err)
	assert.True(t, d.Equal(dual.MustNew(15, 8)))

	// a non-unit seed scales the derivative
	d, err = curve.EvaluateDual(square, dual.MustNew(3, 2))
	require.NoError(t, err)
	assert.True(t, d.Equal(dual.MustNew(9, 12)))
}

func TestEvaluate_Errors(t *testing.T) {
	_, err := curve.EvaluateReal(nil, 0)
	assert.ErrorIs(t, err, curve.ErrNilFunc)
	_, err = curve.EvaluateDual(nil, dual.Lift(0))
	assert.ErrorIs(t, err, curve.ErrNilFunc)

	realOnly := curve.Funcs{Real: square.Real}
	_, err = curve.EvaluateDual(realOnly, dual.Lift(1))
	assert.ErrorIs(t, err, curve.ErrNilFunc)
	_, err = curve.EvaluateReal(curve.Funcs{}, 1)
	assert.ErrorIs(t, err, curve.ErrNilFunc)

	_, err = curve.EvaluateReal(expr.MustCompile("1/x"), 0)
	require.ErrorIs(t, err, dual.ErrDivisionByZero)
	assert.Contains(t, err.Error(), "EvaluateReal at x=0")
}

func TestDerivative(t *testing.T) {
	v, s, err := curve.Derivative(expr.MustCompile("0.25*(x/2)^3 - x/2 + 1"), 2)
	require.NoError(t, err)
	assert.InDelta(t, 0.25, v, 1e-12)
	assert.InDelta(t, -0.125, s, 1e-12)

	_, _, err = curve.Derivative(expr.MustCompile("sqrt(x)"), -1)
	assert.ErrorIs(t, err, dual.ErrUndefinedOperation)
}

func TestCentralDifference(t *testing.T) {
	got, err := curve.CentralDifference(square, 3, 1e-3)
	require.NoError(t, err)
	assert.InDelta(t, 6, got, 1e-9)

	_, err = curve.CentralDifference(expr.MustCompile("ln(x)"), 0, 1e-3)
	assert.ErrorIs(t, err, dual.ErrUndefinedOperation)

	assert.Panics(t, func() { _, _ = curve.CentralDifference(square, 0, 0) })
}

func TestTangent(t *testing.T) {
	seg, err := curve.Tangent(square, 0)
	require.NoError(t, err)
	want := curve.Segment{
		Point: vec.Vec2{X: 0, Y: 0},
		From:  vec.Vec2{X: -1, Y: 0},
		To:    vec.Vec2{X: 1, Y: 0},
		Slope: 0,
	}
	if d := cmp.Diff(want, seg, approx); d != "" {
		t.Errorf("Tangent mismatch (-want +got):\n%s", d)
	}

	identity := expr.MustCompile("x")
	seg, err = curve.Tangent(identity, 1, curve.WithHalfLength(math.Sqrt2))
	require.NoError(t, err)
	want = curve.Segment{
		Point: vec.Vec2{X: 1, Y: 1},
		From:  vec.Vec2{X: 0, Y: 0},
		To:    vec.Vec2{X: 2, Y: 2},
		Slope: 1,
	}
	if d := cmp.Diff(want, seg, approx); d != "" {
		t.Errorf("Tangent mismatch (-want +got):\n%s", d)
	}
}

func TestTangent_FixedLength(t *testing.T) {
	p := expr.MustCompile("0.25*(x/2)^3 - x/2 + 1")
	for _, x := range []float64{-5.7, -2, 0, 1.3, 5.7} {
		seg, err := curve.Tangent(p, x, curve.WithHalfLength(0.5))
		require.NoError(t, err)
		assert.InDelta(t, 1.0, seg.To.Sub(seg.From).Length(), 1e-12, "x=%v", x)

		dir, n := seg.Direction(), seg.Normal()
		assert.InDelta(t, 0, dir.X*n.X+dir.Y*n.Y, 1e-12)
		assert.InDelta(t, 1, n.Length(), 1e-12)
		if dir.X != 0 {
			assert.InDelta(t, seg.Slope, dir.Y/dir.X, 1e-9)
		}
	}
}

func TestTangent_Undefined(t *testing.T) {
	_, err := curve.Tangent(expr.MustCompile("1/x"), 0)
	assert.ErrorIs(t, err, dual.ErrDivisionByZero)
}

func TestGrid(t *testing.T) {
	xs, err := curve.Grid(-1, 1, 5)
	require.NoError(t, err)
	if d := cmp.Diff([]float64{-1, -0.5, 0, 0.5, 1}, xs, approx); d != "" {
		t.Errorf("Grid mismatch (-want +got):\n%s", d)
	}

	for _, r := range [][2]float64{{1, 1}, {2, 1}, {math.Inf(-1), 0}, {0, math.NaN()}} {
		_, err := curve.Grid(r[0], r[1], 3)
		assert.ErrorIs(t, err, curve.ErrInvalidRange, "%v", r)
	}
}

func TestSample(t *testing.T) {
	pts, err := curve.Sample(square, 0, 1, curve.WithSamples(3))
	require.NoError(t, err)
	want := []curve.Point{
		{X: 0, Y: 0, Slope: 0, Defined: true},
		{X: 0.5, Y: 0.25, Slope: 1, Defined: true},
		{X: 1, Y: 1, Slope: 2, Defined: true},
	}
	if d := cmp.Diff(want, pts, approx); d != "" {
		t.Errorf("Sample mismatch (-want +got):\n%s", d)
	}
	assert.Equal(t, vec.Vec2{X: 0.5, Y: 0.25}, pts[1].Vec())
}

func TestSample_Defaults(t *testing.T) {
	pts, err := curve.Sample(expr.MustCompile("0.25*(x/2)^3 - x/2 + 1"), -5.7, 5.7)
	require.NoError(t, err)
	require.Len(t, pts, curve.DefaultSamples)
	assert.Equal(t, -5.7, pts[0].X)
	assert.Equal(t, 5.7, pts[len(pts)-1].X)
	assert.InDelta(t, 0, pts[50].X, 1e-12)
	assert.InDelta(t, 1, pts[50].Y, 1e-12)
	assert.InDelta(t, -0.5, pts[50].Slope, 1e-12)
}

func TestSample_Undefined(t *testing.T) {
	p := expr.MustCompile("1/x")

	_, err := curve.Sample(p, -1, 1, curve.WithSamples(3))
	require.ErrorIs(t, err, dual.ErrDivisionByZero)
	assert.Contains(t, err.Error(), "Sample at x=0")

	pts, err := curve.Sample(p, -1, 1, curve.WithSamples(3), curve.WithSkipUndefined())
	require.NoError(t, err)
	want := []curve.Point{
		{X: -1, Y: -1, Slope: -1, Defined: true},
		{X: 0},
		{X: 1, Y: 1, Slope: -1, Defined: true},
	}
	if d := cmp.Diff(want, pts, approx); d != "" {
		t.Errorf("Sample mismatch (-want +got):\n%s", d)
	}
}

func TestSample_Errors(t *testing.T) {
	_, err := curve.Sample(nil, 0, 1)
	assert.ErrorIs(t, err, curve.ErrNilFunc)
	_, err = curve.Sample(square, 1, 0)
	assert.ErrorIs(t, err, curve.ErrInvalidRange)
}

func TestCheck(t *testing.T) {
	r, err := curve.Check(expr.MustCompile("sin(x) * exp(-x^2)"), -3, 3)
	require.NoError(t, err)
	assert.Equal(t, curve.DefaultSamples, r.Samples)
	assert.Zero(t, r.Skipped)
	assert.True(t, r.Within(1e-6), "max error %g at %g", r.MaxAbsError, r.At)
}

// TestCheck_WrongDerivative: a Func whose dual half ignores ε is caught.
func TestCheck_WrongDerivative(t *testing.T) {
	broken := curve.Funcs{
		Real: square.Real,
		Dual: func(x dual.Number) (dual.Number, error) {
			return dual.Lift(x.Real() * x.Real()), nil
		},
	}
	r, err := curve.Check(broken, 0, 1, curve.WithSamples(11))
	require.NoError(t, err)
	assert.False(t, r.Within(1e-3))
	assert.InDelta(t, 2, r.MaxAbsError, 1e-6)
	assert.Equal(t, 1.0, r.At)
}

func TestCheck_Undefined(t *testing.T) {
	p := expr.MustCompile("ln(x)")

	_, err := curve.Check(p, -1, 1, curve.WithSamples(5))
	require.ErrorIs(t, err, dual.ErrUndefinedOperation)

	r, err := curve.Check(p, -1, 1, curve.WithSamples(5), curve.WithSkipUndefined())
	require.NoError(t, err)
	assert.Equal(t, 2, r.Samples)
	assert.Equal(t, 3, r.Skipped)
	assert.True(t, r.Within(1e-6))

	_, err = curve.Check(p, -2, -1, curve.WithSkipUndefined())
	assert.ErrorIs(t, err, curve.ErrNoDefinedPoints)
}

func TestOptions_Panics(t *testing.T) {
	assert.Panics(t, func() { curve.WithSamples(1) })
	assert.Panics(t, func() { curve.WithHalfLength(0) })
	assert.Panics(t, func() { curve.WithHalfLength(math.Inf(1)) })
	assert.Panics(t, func() { curve.WithHalfLength(math.NaN()) })
	assert.Panics(t, func() { curve.WithStep(-1e-3) })
	assert.NotPanics(t, func() { curve.WithSamples(2) })
}
