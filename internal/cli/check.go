// SPDX-License-Identifier: MIT

package cli

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/realdual/curve"
)

// DefaultTolerance is the largest accepted |dual slope - numeric slope|.
const DefaultTolerance = 1e-6

// CheckResult is the output of the check command.
type CheckResult struct {
	Expr        string  `json:"expr" yaml:"expr"`
	From        float64 `json:"from" yaml:"from"`
	To          float64 `json:"to" yaml:"to"`
	Samples     int     `json:"samples" yaml:"samples"`
	Skipped     int     `json:"skipped" yaml:"skipped"`
	MaxAbsError float64 `json:"max_abs_error" yaml:"max_abs_error"`
	At          float64 `json:"at" yaml:"at"`
	Tolerance   float64 `json:"tolerance" yaml:"tolerance"`
	OK          bool    `json:"ok" yaml:"ok"`
}

func (r CheckResult) table(num func(float64) string) Table {
	status := "ok"
	if !r.OK {
		status = "FAIL"
	}
	// three significant digits
	exp := func(v float64) string { return strconv.FormatFloat(v, 'g', 3, 64) }
	return Table{
		Header: []string{"expr", "from", "to", "samples", "skipped", "max error", "at", "tolerance", "status"},
		Rows: [][]string{{
			r.Expr, num(r.From), num(r.To), strconv.Itoa(r.Samples), strconv.Itoa(r.Skipped),
			exp(r.MaxAbsError), num(r.At), exp(r.Tolerance), status,
		}},
		Vertical: true,
	}
}

type checkOptions struct {
	rangeOptions
	tolerance float64
	step      float64
}

// NewCheckCommand creates the check command.
func NewCheckCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &checkOptions{}

	cmd := &cobra.Command{
		Use:   "check <expr|@name>",
		Short: "Compare dual derivatives with central differences",
		Long: `Compare f'(x) obtained from f(x + ε) with the central difference
(f(x+h) - f(x-h)) / 2h over a grid. Exits with status 1 when the largest
disagreement exceeds --tolerance.`,
		Example: `  realdual check @scene
  realdual check "sin(x)*exp(-x^2)" --from -3 --to 3 --samples 201`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(rootOpts, *opts, args[0], cmd)
		},
	}
	addRangeFlags(cmd, &opts.rangeOptions)
	cmd.Flags().Float64Var(&opts.tolerance, "tolerance", DefaultTolerance, "largest accepted absolute difference")
	cmd.Flags().Float64Var(&opts.step, "step", curve.DefaultStep, "central difference step h")

	return cmd
}

func runCheck(root *RootOptions, opts checkOptions, arg string, cmd *cobra.Command) error {
	fn, err := root.loadFunction(arg)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("samples") && opts.samples < 2 {
		return NewExitError(ExitCommandError, "--samples must be at least 2")
	}
	if !(opts.step > 0) || !(opts.tolerance >= 0) {
		return NewExitError(ExitCommandError, "--step must be > 0 and --tolerance >= 0")
	}
	rng, copts := resolveRange(root, opts.rangeOptions, fn, cmd)
	copts = append(copts, curve.WithStep(opts.step))

	rep, err := curve.Check(fn.prog, rng.from, rng.to, copts...)
	if err != nil {
		return WrapExitError(ExitCommandError, "check", err)
	}
	res := CheckResult{
		Expr:        fn.source(),
		From:        rng.from,
		To:          rng.to,
		Samples:     rep.Samples,
		Skipped:     rep.Skipped,
		MaxAbsError: rep.MaxAbsError,
		At:          rep.At,
		Tolerance:   opts.tolerance,
		OK:          rep.Within(opts.tolerance),
	}
	root.logger.Debug("checked", "expr", res.Expr, "max_abs_error", res.MaxAbsError, "at", res.At)

	if err := root.formatter(cmd).Write(res); err != nil {
		return err
	}
	if !res.OK {
		root.logger.Warn("derivative check failed", "expr", res.Expr, "max_abs_error", res.MaxAbsError)
		return &ExitError{Code: ExitFailure}
	}

	return nil
}
