// SPDX-License-Identifier: MIT
// Package: dual
//
// format.go - textual rendering and serialization.
//
// Rendering contract:
//   - "{real} + {dual}ε", reals in Go's shortest float form (3, 0.5, 1e+21).
//   - A dual component of exactly 1 omits the coefficient: "{real} + ε".
//   - Negative dual parts are not folded into the sign: "3 + -2ε".
//
// Serialization: {"real": a, "dual": b} in JSON and YAML. Decoding validates
// finiteness like New.

package dual

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
)

// String renders x as "{real} + {dual}ε" (or "{real} + ε" when dual == 1).
func (x Number) String() string {
	return x.render('g', -1)
}

// GoString renders x as a Go-like literal, used by %#v.
func (x Number) GoString() string {
	return fmt.Sprintf("dual.Number{Real: %v, Dual: %v}", x.re, x.du)
}

// Format implements fmt.Formatter.
//
// %v and %s use String, %#v uses GoString, %+v prints both fields by name.
// The float verbs %e %E %f %F %g %G apply to both components and honour the
// precision: fmt.Sprintf("%.2f", MustNew(15, 8)) is "15.00 + 8.00ε".
func (x Number) Format(fs fmt.State, c rune) {
	prec, ok := fs.Precision()
	if !ok {
		prec = -1
	}

	switch c {
	case 'v':
		if fs.Flag('#') {
			_, _ = io.WriteString(fs, x.GoString())
			return
		}
		if fs.Flag('+') {
			_, _ = fmt.Fprintf(fs, "{Real:%v, Dual:%v}", x.re, x.du)
			return
		}
		fallthrough
	case 's':
		_, _ = io.WriteString(fs, x.render('g', prec))
	case 'e', 'E', 'f', 'g', 'G':
		_, _ = io.WriteString(fs, x.render(byte(c), prec))
	case 'F':
		_, _ = io.WriteString(fs, x.render('f', prec))
	default:
		_, _ = fmt.Fprintf(fs, "%%!%c(dual.Number=%s)", c, x.String())
	}
}

// render formats both components with strconv verb fmtc and precision prec.
func (x Number) render(fmtc byte, prec int) string {
	re := strconv.FormatFloat(x.re, fmtc, prec, 64)
	if x.du == 1 {
		return re + " + ε"
	}

	return re + " + " + strconv.FormatFloat(x.du, fmtc, prec, 64) + "ε"
}

// wire is the serialized shape of a Number.
type wire struct {
	Real float64 `json:"real" yaml:"real"`
	Dual float64 `json:"dual" yaml:"dual"`
}

// MarshalJSON encodes x as {"real":a,"dual":b}.
func (x Number) MarshalJSON() ([]byte, error) {
	return json.Marshal(wire{Real: x.re, Dual: x.du})
}

// UnmarshalJSON decodes {"real":a,"dual":b}.
func (x *Number) UnmarshalJSON(data []byte) error {
	var w wire
	if err := json.Unmarshal(data, &w); err != nil {
		return dualErrorf(opUnmarshal, err)
	}

	return x.assign(w)
}

// MarshalYAML encodes x as a mapping with keys real and dual.
func (x Number) MarshalYAML() (any, error) {
	return wire{Real: x.re, Dual: x.du}, nil
}

// UnmarshalYAML decodes a mapping with keys real and dual.
func (x *Number) UnmarshalYAML(unmarshal func(any) error) error {
	var w wire
	if err := unmarshal(&w); err != nil {
		return dualErrorf(opUnmarshal, err)
	}

	return x.assign(w)
}

// assign validates w and stores it in x.
func (x *Number) assign(w wire) error {
	n, err := New(w.Real, w.Dual)
	if err != nil {
		return dualErrorf(opUnmarshal, err)
	}
	*x = n

	return nil
}
