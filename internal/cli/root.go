// SPDX-License-Identifier: MIT

// Package cli implements the realdual command tree.
package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"
	"golang.org/x/text/message"

	"github.com/katalvlaran/realdual/catalog"
	"github.com/katalvlaran/realdual/internal/config"
)

// RootOptions holds global flags and the state resolved from them before
// a subcommand runs.
type RootOptions struct {
	ConfigFile  string
	Verbose     bool
	Format      string
	Locale      string
	Precision   int
	Variable    string
	CatalogFile string

	cfg     config.Config
	logger  *slog.Logger
	catalog *catalog.Catalog
}

// NewRootCommand creates the root command.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}
	def := config.Default()

	cmd := &cobra.Command{
		Use:   "realdual",
		Short: "Evaluate functions and their derivatives with dual numbers",
		Long: `realdual evaluates single-variable functions over real dual numbers
a + bε (ε² = 0). Evaluating f at x + ε yields f(x) + f'(x)ε: the exact
derivative, without symbolic algebra or finite differences.

A function is an expression such as "x^2 + 4*x + 3" or the name of a
catalog entry prefixed with @, e.g. "@lift".`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.resolve(cmd)
		},
	}

	pf := cmd.PersistentFlags()
	pf.StringVar(&opts.ConfigFile, "config", "", "YAML configuration file")
	pf.BoolVarP(&opts.Verbose, "verbose", "v", false, "debug logging on stderr")
	pf.StringVar(&opts.Format, "format", def.Format, fmt.Sprintf("output format %v", config.Formats))
	pf.StringVar(&opts.Locale, "locale", def.Locale, "BCP 47 locale for text output numbers")
	pf.IntVar(&opts.Precision, "precision", def.Precision, "digits after the decimal point (-1: shortest)")
	pf.StringVar(&opts.Variable, "var", def.Variable, "name of the free variable")
	pf.StringVar(&opts.CatalogFile, "catalog", "", "YAML file of additional catalog entries")

	cmd.AddCommand(NewEvalCommand(opts))
	cmd.AddCommand(NewSampleCommand(opts))
	cmd.AddCommand(NewTangentCommand(opts))
	cmd.AddCommand(NewCheckCommand(opts))
	cmd.AddCommand(NewCatalogCommand(opts))

	return cmd
}

// resolve builds the effective configuration (defaults, file, environment,
// then flags the user actually set), the logger and the catalog.
func (o *RootOptions) resolve(cmd *cobra.Command) error {
	cfg, err := config.Load(o.ConfigFile)
	if err != nil {
		return WrapExitError(ExitCommandError, "load configuration", err)
	}

	flags := cmd.Flags()
	if flags.Changed("format") {
		cfg.Format = o.Format
	}
	if flags.Changed("locale") {
		cfg.Locale = o.Locale
	}
	if flags.Changed("precision") {
		cfg.Precision = o.Precision
	}
	if flags.Changed("var") {
		cfg.Variable = o.Variable
	}
	if flags.Changed("catalog") {
		cfg.CatalogFile = o.CatalogFile
	}
	if o.Verbose {
		cfg.LogLevel = "debug"
	}
	if err := cfg.Validate(); err != nil {
		return WrapExitError(ExitCommandError, "invalid configuration", err)
	}
	o.cfg = cfg

	level, _ := cfg.Level()
	o.logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
	o.logger.Debug("configuration resolved",
		"format", cfg.Format, "locale", cfg.Locale, "samples", cfg.Samples,
		"precision", cfg.Precision, "variable", cfg.Variable, "catalog", cfg.CatalogFile)

	o.catalog = catalog.Builtin()
	if cfg.CatalogFile != "" {
		user, err := catalog.LoadFile(cfg.CatalogFile)
		if err != nil {
			return WrapExitError(ExitCommandError, "load catalog", err)
		}
		o.catalog = o.catalog.Merge(user)
		o.logger.Debug("catalog loaded", "file", cfg.CatalogFile, "entries", user.Len())
	}

	return nil
}

// formatter returns an OutputFormatter for cmd using the resolved
// configuration.
func (o *RootOptions) formatter(cmd *cobra.Command) *OutputFormatter {
	tag, _ := o.cfg.Language()
	return &OutputFormatter{
		Format:    o.cfg.Format,
		Writer:    cmd.OutOrStdout(),
		Printer:   message.NewPrinter(tag),
		Precision: o.cfg.Precision,
	}
}

// Execute runs the command tree with args and returns the process exit
// code. Errors are printed to stderr.
func Execute(args []string, stdout, stderr io.Writer) int {
	cmd := NewRootCommand()
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	err := cmd.Execute()
	if err == nil {
		return ExitSuccess
	}
	var exitErr *ExitError
	if !errors.As(err, &exitErr) || exitErr.Message != "" {
		fmt.Fprintln(stderr, "realdual:", err)
	}

	return GetExitCode(err)
}
