// SPDX-License-Identifier: MIT

package expr

import "math"

// Run evaluates p over the algebra alg with the variable bound to x.
// Evaluation stops at the first failing instruction; its error is returned
// tagged with the instruction name.
func Run[T any](p *Program, alg Algebra[T], x T) (T, error) {
	var zero T
	stack := make([]T, 0, p.depth)

	pop := func() T {
		v := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		return v
	}

	for _, ins := range p.code {
		var (
			v   T
			err error
		)
		switch ins.op {
		case opConst:
			v = alg.Const(ins.fval)
		case opVar:
			v = x
		case opNeg:
			v = alg.Neg(pop())
		case opSin:
			v = alg.Sin(pop())
		case opCos:
			v = alg.Cos(pop())
		case opExp:
			v, err = alg.Exp(pop(), alg.Const(math.E))
		case opLog:
			v, err = alg.Log(pop())
		case opSqrt:
			v, err = alg.Pow(pop(), alg.Const(0.5))
		case opPowInt:
			v, err = alg.PowInt(pop(), ins.ival)
		default:
			b := pop()
			a := pop()
			switch ins.op {
			case opAdd:
				v, err = alg.Add(a, b)
			case opSub:
				v, err = alg.Sub(a, b)
			case opMul:
				v, err = alg.Mul(a, b)
			case opDiv:
				v, err = alg.Div(a, b)
			case opPow:
				v, err = alg.Pow(a, b)
			case opExpBase:
				v, err = alg.Exp(a, b)
			}
		}
		if err != nil {
			return zero, exprErrorf(ins.op.String(), err)
		}
		stack = append(stack, v)
	}

	return pop(), nil
}
