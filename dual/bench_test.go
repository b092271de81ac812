// SPDX-License-Identifier: MIT
// Package dual_test provides benchmarks for the hot dual-number operations.

package dual_test

import (
	"testing"

	"github.com/katalvlaran/realdual/dual"
)

// sinks to defeat dead-code elimination
var (
	sinkN dual.Number
	sinkE error
)

func BenchmarkMul(b *testing.B) {
	x, y := dual.MustNew(1.5, 2), dual.MustNew(-0.25, 3)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		sinkN = x.Mul(y)
	}
}

func BenchmarkDiv(b *testing.B) {
	x, y := dual.MustNew(1.5, 2), dual.MustNew(-0.25, 3)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		sinkN, sinkE = x.Div(y)
	}
}

func BenchmarkPow(b *testing.B) {
	x, p := dual.MustNew(1.5, 2), dual.MustNew(2.5, 1)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		sinkN, sinkE = x.Pow(p)
	}
}

func BenchmarkPowInt(b *testing.B) {
	x := dual.MustNew(1.0001, 2)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		sinkN, sinkE = x.PowInt(17)
	}
}

// BenchmarkPolynomial evaluates x² + 4x + 3 through the coercing Result
// chain, the path an expression evaluator takes.
func BenchmarkPolynomial(b *testing.B) {
	x := dual.Variable(2)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		sinkN, sinkE = dual.From(x).PowInt(2).Add(dual.From(4).Mul(x)).Add(3).Unwrap()
	}
}
