// SPDX-License-Identifier: MIT

package expr_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/realdual/dual"
	"github.com/katalvlaran/realdual/expr"
)

// ExampleCompile evaluates one program over reals and over dual numbers.
func ExampleCompile() {
	p, err := expr.Compile("x^2 + 4*x + 3")
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	y, _ := p.EvalReal(2)
	d, _ := p.EvalDual(dual.Variable(2))
	fmt.Println(y)
	fmt.Println(d)
	// Output:
	// 15
	// 15 + 8ε
}

// ExampleSyntaxError shows how compile errors point into the source.
func ExampleSyntaxError() {
	_, err := expr.Compile("x^2 + y")

	var se *expr.SyntaxError
	if errors.As(err, &se) {
		fmt.Println(se.Pos, errors.Is(err, expr.ErrUnknownName))
	}
	fmt.Println(err)
	// Output:
	// 6 true
	// expr: syntax error at offset 6: unknown name "y"
}
