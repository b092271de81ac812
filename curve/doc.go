// SPDX-License-Identifier: MIT

// Package curve is the bridge between a single-variable function and the
// code that draws it. It exposes the two evaluation operations a plotting
// layer needs (EvaluateReal and EvaluateDual) and builds plot data on top
// of them: derivatives, tangent segments, sampled curves and a numeric
// cross-check of dual derivatives against central differences.
//
// A function is anything implementing Func, i.e. that can be evaluated both
// over float64 and over dual.Number. *expr.Program satisfies Func; Funcs
// adapts a pair of Go closures.
//
// Failure policy: Sample and Check stop at the first point where the
// function is undefined, unless WithSkipUndefined is given, in which case
// the point is kept as a gap (Point.Defined == false).
//
// Geometry (tangent segments, points) uses seehuhn.de/go/geom/vec.
package curve
