// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"seehuhn.de/go/geom/vec"

	"github.com/katalvlaran/realdual/curve"
)

// XY is a point in JSON and YAML output.
type XY struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
}

func toXY(v vec.Vec2) XY { return XY{X: v.X, Y: v.Y} }

// TangentResult is the output of the tangent command.
type TangentResult struct {
	Expr  string  `json:"expr" yaml:"expr"`
	At    float64 `json:"at" yaml:"at"`
	Value float64 `json:"value" yaml:"value"`
	Slope float64 `json:"slope" yaml:"slope"`
	From  XY      `json:"from" yaml:"from"`
	To    XY      `json:"to" yaml:"to"`
}

func (r TangentResult) table(num func(float64) string) Table {
	pt := func(p XY) string { return fmt.Sprintf("(%s, %s)", num(p.X), num(p.Y)) }
	return Table{
		Header:   []string{"expr", "at", "value", "slope", "from", "to"},
		Rows:     [][]string{{r.Expr, num(r.At), num(r.Value), num(r.Slope), pt(r.From), pt(r.To)}},
		Vertical: true,
	}
}

type tangentOptions struct {
	at         float64
	halfLength float64
}

// NewTangentCommand creates the tangent command.
func NewTangentCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &tangentOptions{}

	cmd := &cobra.Command{
		Use:   "tangent <expr|@name>",
		Short: "Compute the tangent segment of a function at a point",
		Long: `Compute the tangent segment of f at x: the segment centred on
(x, f(x)) along (1, f'(x)), extending --half-length to either side.`,
		Example: `  realdual tangent @scene --at -2`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTangent(rootOpts, opts, args[0], cmd)
		},
	}

	cmd.Flags().Float64Var(&opts.at, "at", 0, "touch point")
	cmd.Flags().Float64Var(&opts.halfLength, "half-length", curve.DefaultHalfLength, "distance from the touch point to each end")

	return cmd
}

func runTangent(root *RootOptions, opts *tangentOptions, arg string, cmd *cobra.Command) error {
	fn, err := root.loadFunction(arg)
	if err != nil {
		return err
	}
	if !(opts.halfLength > 0) {
		return NewExitError(ExitCommandError, "--half-length must be > 0")
	}

	seg, err := curve.Tangent(fn.prog, opts.at, curve.WithHalfLength(opts.halfLength))
	if err != nil {
		return WrapExitError(ExitCommandError, "tangent", err)
	}

	return root.formatter(cmd).Write(TangentResult{
		Expr:  fn.source(),
		At:    seg.Point.X,
		Value: seg.Point.Y,
		Slope: seg.Slope,
		From:  toXY(seg.From),
		To:    toXY(seg.To),
	})
}
