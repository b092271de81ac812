// SPDX-License-Identifier: MIT

package cli

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"golang.org/x/text/message"
	"gopkg.in/yaml.v3"
)

// Exit codes for CLI commands.
const (
	ExitSuccess      = 0 // Successful execution
	ExitFailure      = 1 // Check failure: dual and numeric derivatives disagree
	ExitCommandError = 2 // Command error (bad expression, flags, configuration, undefined point)
)

// ExitError represents an error with a specific exit code.
type ExitError struct {
	Code    int    // Exit code (use ExitFailure or ExitCommandError)
	Message string // Error message; empty when the output already explains it
	Err     error  // Underlying error (optional)
}

func (e *ExitError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// NewExitError creates a new ExitError with the given code and message.
func NewExitError(code int, message string) *ExitError {
	return &ExitError{Code: code, Message: message}
}

// WrapExitError wraps an existing error with an exit code.
func WrapExitError(code int, message string, err error) *ExitError {
	return &ExitError{Code: code, Message: message, Err: err}
}

// GetExitCode extracts the exit code from an error.
// Errors that are not an ExitError (cobra flag and argument errors) map to
// ExitCommandError.
func GetExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitCommandError
}

// Table is the text and CSV form of a command result.
type Table struct {
	Header   []string
	Rows     [][]string
	Vertical bool // Header[i] labels Rows[0][i]; printed as key/value lines
}

// tabler is implemented by command results. num renders a float in the
// output's number style.
type tabler interface {
	table(num func(float64) string) Table
}

// OutputFormatter writes command results in the configured format.
type OutputFormatter struct {
	Format    string
	Writer    io.Writer
	Printer   *message.Printer // locale-aware numbers in text output
	Precision int              // -1: shortest
}

// Write renders v. JSON and YAML encode v itself; text and CSV use its
// Table.
func (f *OutputFormatter) Write(v tabler) error {
	switch f.Format {
	case "json":
		enc := json.NewEncoder(f.Writer)
		enc.SetIndent("", "  ")
		return enc.Encode(v)

	case "yaml":
		enc := yaml.NewEncoder(f.Writer)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()

	case "csv":
		t := v.table(f.plainNumber)
		w := csv.NewWriter(f.Writer)
		if t.Vertical {
			for i, h := range t.Header {
				_ = w.Write([]string{h, t.Rows[0][i]})
			}
		} else {
			_ = w.Write(t.Header)
			_ = w.WriteAll(t.Rows)
		}
		w.Flush()
		return w.Error()

	default:
		return f.writeText(v.table(f.localNumber))
	}
}

func (f *OutputFormatter) writeText(t Table) error {
	tw := tabwriter.NewWriter(f.Writer, 0, 0, 2, ' ', 0)
	if t.Vertical {
		for i, h := range t.Header {
			fmt.Fprintf(tw, "%s\t%s\n", h, t.Rows[0][i])
		}
	} else {
		fmt.Fprintln(tw, strings.Join(t.Header, "\t"))
		for _, row := range t.Rows {
			fmt.Fprintln(tw, strings.Join(row, "\t"))
		}
	}

	return tw.Flush()
}

// localNumber formats v for people: locale separators via the message
// printer.
func (f *OutputFormatter) localNumber(v float64) string {
	if v == 0 {
		v = 0 // drop the sign of -0
	}
	if f.Precision < 0 {
		return f.Printer.Sprintf("%v", v)
	}
	return f.Printer.Sprintf("%."+strconv.Itoa(f.Precision)+"f", v)
}

// plainNumber formats v for machines: Go syntax, no grouping.
func (f *OutputFormatter) plainNumber(v float64) string {
	if v == 0 {
		v = 0
	}
	if f.Precision < 0 {
		return strconv.FormatFloat(v, 'g', -1, 64)
	}
	return strconv.FormatFloat(v, 'f', f.Precision, 64)
}
