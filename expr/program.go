// SPDX-License-Identifier: MIT

package expr

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/realdual/dual"
)

// DefaultVariable is the variable name used when WithVariable is not given.
const DefaultVariable = "x"

// Program is a compiled single-variable expression. It is immutable and
// safe for concurrent use.
type Program struct {
	src      string
	variable string
	code     []instruction
	depth    int
}

// Option configures Compile.
type Option func(*compileOptions)

type compileOptions struct {
	variable string
}

// ValidVariable reports why name cannot be used as the free variable, or
// nil if it can.
func ValidVariable(name string) error {
	if name == "" || !isIdentStart(name[0]) {
		return fmt.Errorf("%w: %q is not an identifier", ErrUnknownName, name)
	}
	for i := 1; i < len(name); i++ {
		if !isIdentPart(name[i]) {
			return fmt.Errorf("%w: %q is not an identifier", ErrUnknownName, name)
		}
	}
	if _, ok := constants[name]; ok {
		return fmt.Errorf("%w: %q is a constant", ErrUnknownName, name)
	}
	if _, ok := functions[name]; ok {
		return fmt.Errorf("%w: %q is a function", ErrUnknownName, name)
	}

	return nil
}

// WithVariable sets the name of the free variable.
// Panics if ValidVariable rejects name.
func WithVariable(name string) Option {
	if err := ValidVariable(name); err != nil {
		panic("expr: WithVariable: " + err.Error())
	}

	return func(o *compileOptions) { o.variable = name }
}

// Compile parses src into a Program.
//
// Errors: a *SyntaxError (matching ErrSyntax, and ErrUnknownName or
// ErrArity where they apply) describing the first problem found.
func Compile(src string, opts ...Option) (*Program, error) {
	o := compileOptions{variable: DefaultVariable}
	for _, opt := range opts {
		opt(&o)
	}

	code, err := compile(src, o.variable)
	if err != nil {
		return nil, err
	}

	return &Program{
		src:      src,
		variable: o.variable,
		code:     code,
		depth:    stackDepth(code),
	}, nil
}

// MustCompile is like Compile but panics on error.
func MustCompile(src string, opts ...Option) *Program {
	p, err := Compile(src, opts...)
	if err != nil {
		panic(err)
	}
	return p
}

// Source returns the expression text the program was compiled from.
func (p *Program) Source() string { return p.src }

// Variable returns the name of the free variable.
func (p *Program) Variable() string { return p.variable }

// String returns the source text.
func (p *Program) String() string { return p.src }

// Disassemble lists the bytecode, one instruction per line.
func (p *Program) Disassemble() string {
	var b strings.Builder
	for _, ins := range p.code {
		b.WriteString(ins.op.String())
		switch ins.op {
		case opConst:
			fmt.Fprintf(&b, " %v", ins.fval)
		case opVar:
			fmt.Fprintf(&b, " %s", p.variable)
		case opPowInt:
			fmt.Fprintf(&b, " %d", ins.ival)
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// EvalReal evaluates the program at the real point x.
func (p *Program) EvalReal(x float64) (float64, error) {
	return Run[float64](p, Reals{}, x)
}

// EvalDual evaluates the program lifted to dual numbers. With
// x = dual.Variable(a) the result carries f(a) and f'(a).
func (p *Program) EvalDual(x dual.Number) (dual.Number, error) {
	return Run[dual.Number](p, Duals{}, x)
}
