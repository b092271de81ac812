// SPDX-License-Identifier: MIT

package catalog

// builtins are the functions shipped with the module.
var builtins = []Entry{
	{
		Name:        "lift",
		Expr:        "x^2 + 4*x + 3",
		From:        -6,
		To:          2,
		Description: "f(x) = x² + 4x + 3; f(2 + ε) = 15 + 8ε",
	},
	{
		Name:        "scene",
		Expr:        "0.25*(x/2)^3 - x/2 + 1",
		From:        -5.7,
		To:          5.7,
		Description: "g(x/2) with g(x) = x³/4 - x + 1, the tangent sweep curve",
	},
	{
		Name:        "sin",
		Expr:        "sin(x)",
		From:        -6.283185307179586,
		To:          6.283185307179586,
		Description: "sine over two periods",
	},
	{
		Name:        "cos",
		Expr:        "cos(x)",
		From:        -6.283185307179586,
		To:          6.283185307179586,
		Description: "cosine over two periods",
	},
	{
		Name:        "exp",
		Expr:        "exp(x)",
		From:        -3,
		To:          2,
		Description: "natural exponential, its own derivative",
	},
	{
		Name:        "reciprocal",
		Expr:        "1/x",
		From:        -2,
		To:          2,
		Description: "undefined at 0: division by a number with zero real part",
	},
	{
		Name:        "gauss",
		Expr:        "exp(-x^2/2)",
		From:        -4,
		To:          4,
		Description: "unnormalised Gaussian bell",
	},
}

// Builtin returns a Catalog of the shipped functions.
func Builtin() *Catalog {
	c, err := New(builtins...)
	if err != nil {
		panic(err)
	}
	return c
}
