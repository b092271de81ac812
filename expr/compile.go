// SPDX-License-Identifier: MIT
// Package: expr
//
// compile.go - recursive-descent parser emitting postfix bytecode.
//
// Grammar (lowest to highest precedence):
//
//	expr    := term   (('+' | '-') term)*
//	term    := unary  (('*' | '/') unary)*
//	unary   := '-' unary | '+' unary | power
//	power   := primary (('^' | '**') unary)?        right-associative
//	primary := number | name | name '(' expr (',' expr)* ')' | '(' expr ')'
//
// So -x^2 is -(x^2) and 2^-1 is 0.5. A minus in front of a literal is
// folded into the literal, and a literal integral exponent compiles to
// opPowInt, which is total at a zero base.

package expr

import (
	"fmt"
	"math"
)

// opCode identifies a bytecode instruction.
type opCode uint8

const (
	opConst  opCode = iota // push fval
	opVar                  // push the variable
	opAdd                  // a b → a+b
	opSub                  // a b → a-b
	opMul                  // a b → a·b
	opDiv                  // a b → a/b
	opPow                  // a p → a**p
	opPowInt               // a → a**ival
	opNeg                  // a → -a
	opSin                  // a → sin a
	opCos                  // a → cos a
	opExp                  // a → e**a
	opExpBase              // a b → b**a
	opLog                  // a → ln a
	opSqrt                 // a → √a
)

var opNames = [...]string{
	opConst: "const", opVar: "var", opAdd: "add", opSub: "sub", opMul: "mul",
	opDiv: "div", opPow: "pow", opPowInt: "powi", opNeg: "neg", opSin: "sin",
	opCos: "cos", opExp: "exp", opExpBase: "expb", opLog: "ln", opSqrt: "sqrt",
}

func (op opCode) String() string { return opNames[op] }

// instruction is a single bytecode instruction.
type instruction struct {
	op   opCode
	ival int
	fval float64
}

// function describes a callable name: its arity range and the opcode for
// each accepted argument count.
type function struct {
	minArgs, maxArgs int
	ops              map[int]opCode
}

// functions lists the callable names. pow(u, p) is compiled like u^p.
var functions = map[string]function{
	"sin":  {1, 1, map[int]opCode{1: opSin}},
	"cos":  {1, 1, map[int]opCode{1: opCos}},
	"exp":  {1, 2, map[int]opCode{1: opExp, 2: opExpBase}},
	"ln":   {1, 1, map[int]opCode{1: opLog}},
	"log":  {1, 1, map[int]opCode{1: opLog}},
	"sqrt": {1, 1, map[int]opCode{1: opSqrt}},
	"pow":  {2, 2, map[int]opCode{2: opPow}},
}

// constants lists the named constants.
var constants = map[string]float64{
	"pi": math.Pi,
	"e":  math.E,
}

// maxPowInt bounds literal exponents compiled to opPowInt.
const maxPowInt = 1 << 20

type parser struct {
	toks     []token
	pos      int
	variable string
}

func (p *parser) peek() token { return p.toks[p.pos] }

func (p *parser) next() token {
	t := p.toks[p.pos]
	if t.typ != tokEOF {
		p.pos++
	}
	return t
}

func (p *parser) expect(typ int) (token, error) {
	t := p.next()
	if t.typ != typ {
		return t, syntaxErrorf(t.pos, "expected %s, found %s", tokNames[typ], t)
	}
	return t, nil
}

// compile converts an infix expression over variable into bytecode.
func compile(src, variable string) ([]instruction, error) {
	toks, err := tokenize(src)
	if err != nil {
		return nil, err
	}
	p := &parser{toks: toks, variable: variable}

	code, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if t := p.peek(); t.typ != tokEOF {
		return nil, syntaxErrorf(t.pos, "unexpected %s", t)
	}

	return code, nil
}

func (p *parser) parseExpr() ([]instruction, error) {
	code, err := p.parseTerm()
	if err != nil {
		return nil, err
	}
	for {
		var op opCode
		switch p.peek().typ {
		case tokPlus:
			op = opAdd
		case tokMinus:
			op = opSub
		default:
			return code, nil
		}
		p.next()
		rhs, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		code = append(append(code, rhs...), instruction{op: op})
	}
}

func (p *parser) parseTerm() ([]instruction, error) {
	code, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	for {
		var op opCode
		switch p.peek().typ {
		case tokStar:
			op = opMul
		case tokSlash:
			op = opDiv
		default:
			return code, nil
		}
		p.next()
		rhs, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		code = append(append(code, rhs...), instruction{op: op})
	}
}

func (p *parser) parseUnary() ([]instruction, error) {
	switch p.peek().typ {
	case tokMinus:
		p.next()
		code, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		if c, ok := literal(code); ok {
			return []instruction{{op: opConst, fval: -c}}, nil
		}
		return append(code, instruction{op: opNeg}), nil
	case tokPlus:
		p.next()
		return p.parseUnary()
	}

	return p.parsePower()
}

func (p *parser) parsePower() ([]instruction, error) {
	base, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}
	if p.peek().typ != tokCaret {
		return base, nil
	}
	p.next()
	exp, err := p.parseUnary()
	if err != nil {
		return nil, err
	}

	return power(base, exp), nil
}

// power emits base**exp, using opPowInt for small integral literal exponents.
func power(base, exp []instruction) []instruction {
	if c, ok := literal(exp); ok && c == math.Trunc(c) && math.Abs(c) <= maxPowInt {
		return append(base, instruction{op: opPowInt, ival: int(c)})
	}

	return append(append(base, exp...), instruction{op: opPow})
}

func (p *parser) parsePrimary() ([]instruction, error) {
	t := p.next()
	switch t.typ {
	case tokNumber:
		return []instruction{{op: opConst, fval: t.fval}}, nil

	case tokLParen:
		code, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(tokRParen); err != nil {
			return nil, err
		}
		return code, nil

	case tokIdent:
		if p.peek().typ == tokLParen {
			return p.parseCall(t)
		}
		if t.sval == p.variable {
			return []instruction{{op: opVar}}, nil
		}
		if c, ok := constants[t.sval]; ok {
			return []instruction{{op: opConst, fval: c}}, nil
		}
		e := syntaxErrorf(t.pos, "unknown name %q", t.sval)
		e.Err = ErrUnknownName
		return nil, e
	}

	return nil, syntaxErrorf(t.pos, "unexpected %s", t)
}

func (p *parser) parseCall(name token) ([]instruction, error) {
	fn, ok := functions[name.sval]
	if !ok {
		e := syntaxErrorf(name.pos, "unknown function %q", name.sval)
		e.Err = ErrUnknownName
		return nil, e
	}
	p.next() // '('

	var args [][]instruction
	for {
		arg, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		args = append(args, arg)
		if p.peek().typ != tokComma {
			break
		}
		p.next()
	}
	if _, err := p.expect(tokRParen); err != nil {
		return nil, err
	}
	if len(args) < fn.minArgs || len(args) > fn.maxArgs {
		want := fmt.Sprint(fn.minArgs)
		if fn.maxArgs != fn.minArgs {
			want = fmt.Sprintf("%d or %d", fn.minArgs, fn.maxArgs)
		}
		e := syntaxErrorf(name.pos, "%s takes %s argument(s), got %d", name.sval, want, len(args))
		e.Err = ErrArity
		return nil, e
	}

	op := fn.ops[len(args)]
	if op == opPow {
		return power(args[0], args[1]), nil
	}
	var code []instruction
	for _, a := range args {
		code = append(code, a...)
	}

	return append(code, instruction{op: op}), nil
}

// literal reports whether code is a single constant push.
func literal(code []instruction) (float64, bool) {
	if len(code) == 1 && code[0].op == opConst {
		return code[0].fval, true
	}
	return 0, false
}

// stackDepth returns the maximum operand stack depth code needs.
func stackDepth(code []instruction) int {
	depth, maxDepth := 0, 0
	for _, ins := range code {
		switch ins.op {
		case opConst, opVar:
			depth++
		case opAdd, opSub, opMul, opDiv, opPow, opExpBase:
			depth--
		}
		if depth > maxDepth {
			maxDepth = depth
		}
	}

	return maxDepth
}
