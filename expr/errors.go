// SPDX-License-Identifier: MIT

package expr

import (
	"errors"
	"fmt"
)

var (
	// ErrSyntax matches every compile-time error (see SyntaxError).
	ErrSyntax = errors.New("expr: syntax error")

	// ErrUnknownName indicates an identifier that is neither the variable, a
	// constant nor a known function. Also matches ErrSyntax.
	ErrUnknownName = errors.New("expr: unknown name")

	// ErrArity indicates a function called with the wrong number of
	// arguments. Also matches ErrSyntax.
	ErrArity = errors.New("expr: wrong number of arguments")
)

// SyntaxError reports a compile failure at byte offset Pos of the source.
type SyntaxError struct {
	Pos int    // byte offset into the source
	Msg string // human-readable description
	Err error  // optional finer sentinel (ErrUnknownName, ErrArity)
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("expr: syntax error at offset %d: %s", e.Pos, e.Msg)
}

// Is makes every SyntaxError match ErrSyntax.
func (e *SyntaxError) Is(target error) bool {
	return target == ErrSyntax
}

// Unwrap exposes the finer sentinel, if any.
func (e *SyntaxError) Unwrap() error {
	return e.Err
}

// syntaxErrorf builds a SyntaxError at pos.
func syntaxErrorf(pos int, format string, args ...any) *SyntaxError {
	return &SyntaxError{Pos: pos, Msg: fmt.Sprintf(format, args...)}
}

// exprErrorf tags a runtime error with the instruction that raised it.
func exprErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
