// SPDX-License-Identifier: MIT

// Package cli provides the command-line interface for chemsp.
package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/katalvlaran/chemsp/internal/config"
)

// Version is set at build time.
var Version = "0.1.0"

// app is the per-invocation state shared by subcommands.
type app struct {
	cfgFile string
	cfg     config.Config
	log     *slog.Logger
	cleanup func() error
}

// NewRootCmd builds the chemsp command tree.
func NewRootCmd() *cobra.Command {
	a := &app{log: slog.Default(), cleanup: func() error { return nil }}

	root := &cobra.Command{
		Use:   "chemsp",
		Short: "Graph spectral analysis of molecular representations",
		Long: `chemsp builds a similarity graph over molecular feature vectors, computes
the graph Fourier basis of its adjacency or Laplacian operator and projects
molecular property signals onto it.

Input files are CSV, JSON or YAML (see "chemsp help decompose").`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Name() == "version" || cmd.Name() == "help" {
				return nil
			}
			return a.setup(cmd)
		},
		PersistentPostRunE: func(_ *cobra.Command, _ []string) error {
			return a.cleanup()
		},
	}

	d := config.Defaults()
	pf := root.PersistentFlags()
	pf.StringVar(&a.cfgFile, "config", "", "YAML config file")
	pf.String(config.KeyKernel, d.Kernel, "kernel: rbf, linear, cosine, euclidean, tanimoto")
	pf.Float64(config.KeyLengthScale, d.LengthScale, "RBF length scale")
	pf.String(config.KeyOperator, d.Operator, "shift operator: adjacency or laplacian")
	pf.Float64(config.KeyEpsilon, d.Epsilon, "relative symmetry tolerance")
	pf.Int(config.KeyMaxSweeps, d.MaxSweeps, "Jacobi sweep cap")
	pf.Int(config.KeyWorkers, d.Workers, "concurrent signal projections")
	pf.String(config.KeyFormat, d.Format, "output format: json, yaml, msgpack")
	pf.String(config.KeyOutDir, d.OutDir, "write records to this directory instead of stdout")
	pf.Int(config.KeyLowPassK, d.LowPassK, "number of low frequencies in the low-pass energy share")
	pf.Float64(config.KeyThreshold, d.Threshold, "minimum kernel value kept as a graph edge")
	pf.String(config.KeyLogLevel, d.LogLevel, "log level: debug, info, warn, error")
	pf.String(config.KeyLogFile, d.LogFile, "also write JSON logs to this file")

	root.AddCommand(
		newAdjacencyCmd(a),
		newBasisCmd(a),
		newDecomposeCmd(a),
		newBatchCmd(a),
		newGiniCmd(a),
		newComponentsCmd(a),
		newVersionCmd(),
	)

	return root
}

// setup resolves configuration and the logger for one command run.
func (a *app) setup(cmd *cobra.Command) error {
	v, err := config.NewViper(a.cfgFile)
	if err != nil {
		return err
	}
	if err = bindChanged(v, cmd); err != nil {
		return err
	}
	if a.cfg, err = config.Load(v); err != nil {
		return err
	}
	level, _ := a.cfg.Level()
	a.log, a.cleanup = config.SetupLogger(a.cfg.LogFile, level)
	a.log.Debug("configuration loaded",
		"kernel", a.cfg.Kernel, "operator", a.cfg.Operator, "format", a.cfg.Format)

	return nil
}

// bindChanged binds only flags the user set, so unset flags do not mask the
// config file or the environment.
func bindChanged(v *viper.Viper, cmd *cobra.Command) error {
	var err error
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		if err != nil || !f.Changed || f.Name == "config" {
			return
		}
		err = v.BindPFlag(f.Name, f)
	})

	return err
}

// Execute runs the CLI and returns the process exit code.
func Execute() int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := NewRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return 1
	}

	return 0
}
