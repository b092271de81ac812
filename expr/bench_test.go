// SPDX-License-Identifier: MIT

package expr_test

import (
	"testing"

	"github.com/katalvlaran/realdual/dual"
	"github.com/katalvlaran/realdual/expr"
)

var (
	sinkF float64
	sinkN dual.Number
	sinkP *expr.Program
)

const benchSrc = "0.25*(x/2)^3 - x/2 + 1"

func BenchmarkCompile(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		sinkP = expr.MustCompile(benchSrc)
	}
}

func BenchmarkEvalReal(b *testing.B) {
	p := expr.MustCompile(benchSrc)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		sinkF, _ = p.EvalReal(1.25)
	}
}

func BenchmarkEvalDual(b *testing.B) {
	p := expr.MustCompile(benchSrc)
	x := dual.Variable(1.25)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		sinkN, _ = p.EvalDual(x)
	}
}
