// SPDX-License-Identifier: MIT

package cli

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/realdual/curve"
	"github.com/katalvlaran/realdual/dual"
)

// EvalResult is the output of the eval command.
type EvalResult struct {
	Expr       string      `json:"expr" yaml:"expr"`
	Input      dual.Number `json:"input" yaml:"input"`
	Value      float64     `json:"value" yaml:"value"`
	Derivative float64     `json:"derivative" yaml:"derivative"`
	Dual       dual.Number `json:"dual" yaml:"dual"`
}

func (r EvalResult) table(num func(float64) string) Table {
	return Table{
		Header:   []string{"expr", "input", "value", "derivative", "dual"},
		Rows:     [][]string{{r.Expr, r.Input.String(), num(r.Value), num(r.Derivative), r.Dual.String()}},
		Vertical: true,
	}
}

type evalOptions struct {
	at   float64
	seed float64
}

// NewEvalCommand creates the eval command.
func NewEvalCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &evalOptions{}

	cmd := &cobra.Command{
		Use:   "eval <expr|@name>",
		Short: "Evaluate a function and its derivative at a point",
		Long: `Evaluate f at the dual number at + seed·ε.

With the default seed 1 the ε-coefficient of the result is f'(at).`,
		Example: `  realdual eval "x^2 + 4*x + 3" --at 2
  realdual eval @scene --at 1.5 --format json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEval(rootOpts, opts, args[0], cmd)
		},
	}

	cmd.Flags().Float64Var(&opts.at, "at", 0, "real part of the input")
	cmd.Flags().Float64Var(&opts.seed, "dual", 1, "dual part of the input")

	return cmd
}

func runEval(root *RootOptions, opts *evalOptions, arg string, cmd *cobra.Command) error {
	fn, err := root.loadFunction(arg)
	if err != nil {
		return err
	}
	in, err := dual.New(opts.at, opts.seed)
	if err != nil {
		return WrapExitError(ExitCommandError, "input", err)
	}

	out, err := curve.EvaluateDual(fn.prog, in)
	if err != nil {
		return WrapExitError(ExitCommandError, "evaluate", err)
	}
	root.logger.Debug("evaluated", "input", in, "result", out)

	return root.formatter(cmd).Write(EvalResult{
		Expr:       fn.source(),
		Input:      in,
		Value:      out.Real(),
		Derivative: out.Dual(),
		Dual:       out,
	})
}
