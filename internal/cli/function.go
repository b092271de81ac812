// SPDX-License-Identifier: MIT

package cli

import (
	"strings"

	"github.com/katalvlaran/realdual/catalog"
	"github.com/katalvlaran/realdual/expr"
)

// DefaultFrom and DefaultTo bound sampling of a plain expression when no
// range is given.
const (
	DefaultFrom = -5.0
	DefaultTo   = 5.0
)

// function is a command argument resolved to a program.
type function struct {
	prog  *expr.Program
	entry *catalog.Entry // nil for a plain expression
}

// source returns the expression text.
func (f function) source() string { return f.prog.Source() }

// interval returns the catalog range, or the defaults.
func (f function) interval() (from, to float64) {
	if f.entry != nil {
		return f.entry.From, f.entry.To
	}
	return DefaultFrom, DefaultTo
}

// loadFunction resolves arg: "@name" looks up the catalog, anything else
// is compiled with the configured variable name.
func (o *RootOptions) loadFunction(arg string) (function, error) {
	if name, ok := strings.CutPrefix(arg, "@"); ok {
		p, err := o.catalog.Compile(name)
		if err != nil {
			return function{}, WrapExitError(ExitCommandError, "unknown function", err)
		}
		e, _ := o.catalog.Lookup(name)
		o.logger.Debug("catalog function", "name", name, "expr", e.Expr)
		return function{prog: p, entry: &e}, nil
	}

	p, err := expr.Compile(arg, expr.WithVariable(o.cfg.Variable))
	if err != nil {
		return function{}, WrapExitError(ExitCommandError, "compile", err)
	}
	o.logger.Debug("compiled expression", "expr", arg, "bytecode", strings.Count(p.Disassemble(), "\n"))

	return function{prog: p}, nil
}
