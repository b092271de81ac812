// SPDX-License-Identifier: MIT

package curve

import (
	"errors"
	"fmt"
)

var (
	// ErrNilFunc is returned when the function, or the half of Funcs that
	// an operation needs, is nil.
	ErrNilFunc = errors.New("curve: nil function")

	// ErrInvalidRange is returned for a sampling interval that is empty,
	// reversed or not finite.
	ErrInvalidRange = errors.New("curve: invalid range")

	// ErrNoDefinedPoints is returned by Check when no grid point could be
	// compared.
	ErrNoDefinedPoints = errors.New("curve: no defined points")
)

func curveErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// atErrorf tags err with the operation and the abscissa where it happened.
func atErrorf(tag string, x float64, err error) error {
	return fmt.Errorf("%s at x=%g: %w", tag, x, err)
}

const (
	opEvaluateReal      = "EvaluateReal"
	opEvaluateDual      = "EvaluateDual"
	opDerivative        = "Derivative"
	opCentralDifference = "CentralDifference"
	opTangent           = "Tangent"
	opSample            = "Sample"
	opCheck             = "Check"
)
