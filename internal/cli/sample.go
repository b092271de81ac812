// SPDX-License-Identifier: MIT

package cli

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/realdual/curve"
)

// SampleResult is the output of the sample command.
type SampleResult struct {
	Expr   string        `json:"expr" yaml:"expr"`
	From   float64       `json:"from" yaml:"from"`
	To     float64       `json:"to" yaml:"to"`
	Points []curve.Point `json:"points" yaml:"points"`
}

func (r SampleResult) table(num func(float64) string) Table {
	t := Table{Header: []string{"x", "f(x)", "f'(x)"}}
	for _, p := range r.Points {
		if !p.Defined {
			t.Rows = append(t.Rows, []string{num(p.X), "undefined", "undefined"})
			continue
		}
		t.Rows = append(t.Rows, []string{num(p.X), num(p.Y), num(p.Slope)})
	}
	return t
}

type rangeOptions struct {
	from, to      float64
	samples       int
	skipUndefined bool
}

// addRangeFlags registers the flags shared by sample and check.
func addRangeFlags(cmd *cobra.Command, opts *rangeOptions) {
	cmd.Flags().Float64Var(&opts.from, "from", DefaultFrom, "start of the interval (default: catalog range)")
	cmd.Flags().Float64Var(&opts.to, "to", DefaultTo, "end of the interval (default: catalog range)")
	cmd.Flags().IntVarP(&opts.samples, "samples", "n", 0, "number of grid points (default: configuration)")
	cmd.Flags().BoolVar(&opts.skipUndefined, "skip-undefined", false, "keep going where the function is undefined")
}

// resolveRange applies catalog ranges and the configured sample count to
// the flags the user did not set.
func resolveRange(root *RootOptions, opts rangeOptions, fn function, cmd *cobra.Command) (rangeOptions, []curve.Option) {
	from, to := fn.interval()
	if !cmd.Flags().Changed("from") {
		opts.from = from
	}
	if !cmd.Flags().Changed("to") {
		opts.to = to
	}
	if !cmd.Flags().Changed("samples") {
		opts.samples = root.cfg.Samples
	}

	var copts []curve.Option
	if opts.samples >= 2 {
		copts = append(copts, curve.WithSamples(opts.samples))
	}
	if opts.skipUndefined {
		copts = append(copts, curve.WithSkipUndefined())
	}

	return opts, copts
}

// NewSampleCommand creates the sample command.
func NewSampleCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &rangeOptions{}

	cmd := &cobra.Command{
		Use:   "sample <expr|@name>",
		Short: "Tabulate a function and its derivative over an interval",
		Example: `  realdual sample @scene --samples 25
  realdual sample "1/x" --from -1 --to 1 --samples 5 --skip-undefined --format csv`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSample(rootOpts, *opts, args[0], cmd)
		},
	}
	addRangeFlags(cmd, opts)

	return cmd
}

func runSample(root *RootOptions, opts rangeOptions, arg string, cmd *cobra.Command) error {
	fn, err := root.loadFunction(arg)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("samples") && opts.samples < 2 {
		return NewExitError(ExitCommandError, "--samples must be at least 2")
	}
	opts, copts := resolveRange(root, opts, fn, cmd)

	pts, err := curve.Sample(fn.prog, opts.from, opts.to, copts...)
	if err != nil {
		return WrapExitError(ExitCommandError, "sample", err)
	}
	root.logger.Debug("sampled", "expr", fn.source(), "from", opts.from, "to", opts.to, "points", len(pts))

	return root.formatter(cmd).Write(SampleResult{
		Expr:   fn.source(),
		From:   opts.from,
		To:     opts.to,
		Points: pts,
	})
}
