// SPDX-License-Identifier: MIT

// Package curve: functional options shared by Tangent, Sample and Check.
// Constructors panic on nonsensical values (programmer error); runtime
// input problems are reported as errors by the operations themselves.

package curve

import (
	"fmt"
	"math"
)

// Defaults.
const (
	// DefaultSamples is the number of grid points used by Sample and Check.
	DefaultSamples = 101

	// DefaultHalfLength is the distance from the touch point to either end
	// of a tangent segment.
	DefaultHalfLength = 1.0

	// DefaultStep is the central-difference step used by Check.
	DefaultStep = 1e-5
)

// Option configures Tangent, Sample and Check.
type Option func(*options)

type options struct {
	samples       int
	halfLength    float64
	step          float64
	skipUndefined bool
}

func gatherOptions(opts []Option) options {
	o := options{
		samples:    DefaultSamples,
		halfLength: DefaultHalfLength,
		step:       DefaultStep,
	}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// WithSamples sets the number of grid points, endpoints included.
// Panics if n < 2.
func WithSamples(n int) Option {
	if n < 2 {
		panic(fmt.Sprintf("curve: WithSamples(%d): need at least 2 samples", n))
	}
	return func(o *options) { o.samples = n }
}

// WithHalfLength sets the tangent segment half length.
// Panics unless l is finite and > 0.
func WithHalfLength(l float64) Option {
	if !(l > 0) || math.IsInf(l, 1) {
		panic(fmt.Sprintf("curve: WithHalfLength(%v): must be finite and > 0", l))
	}
	return func(o *options) { o.halfLength = l }
}

// WithStep sets the central-difference step used by Check.
// Panics unless h is finite and > 0.
func WithStep(h float64) Option {
	if !(h > 0) || math.IsInf(h, 1) {
		panic(fmt.Sprintf("curve: WithStep(%v): must be finite and > 0", h))
	}
	return func(o *options) { o.step = h }
}

// WithSkipUndefined makes Sample and Check record points where the
// function fails as gaps instead of aborting.
func WithSkipUndefined() Option {
	return func(o *options) { o.skipUndefined = true }
}
