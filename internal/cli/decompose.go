// SPDX-License-Identifier: MIT

package cli

import (
	"errors"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/chemsp/export"
	"github.com/katalvlaran/chemsp/spectral"
	"github.com/katalvlaran/chemsp/spectrum"
)

const datasetHelp = `
Dataset files (.csv, .json, .yaml):

  CSV   header row; an "id" column names molecules, --signal-columns are
        signals, every other column is a feature.
  JSON/YAML
        ids: [...], features: [[...], ...], signals: {name: [...]}`

// decompositionOutput is the printed form of one signal's spectrum.
type decompositionOutput struct {
	Operator     string           `json:"operator" yaml:"operator" msgpack:"operator"`
	Signal       string           `json:"signal" yaml:"signal" msgpack:"signal"`
	Eigenvalues  []float64        `json:"eigenvalues" yaml:"eigenvalues" msgpack:"eigenvalues"`
	Coefficients []float64        `json:"coefficients" yaml:"coefficients" msgpack:"coefficients"`
	Summary      spectrum.Summary `json:"summary" yaml:"summary" msgpack:"summary"`
}

func newDecomposeCmd(a *app) *cobra.Command {
	var (
		signalColumns []string
		signalName    string
	)
	cmd := &cobra.Command{
		Use:   "decompose <dataset>",
		Short: "Graph Fourier coefficients of one signal",
		Long:  "Projects a named signal onto the graph Fourier basis of the dataset.\n" + datasetHelp,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if signalName == "" {
				return errors.New("--signal is required")
			}
			cols := signalColumns
			if len(cols) == 0 {
				cols = []string{signalName}
			}
			d, err := a.loadDataset(args[0], cols)
			if err != nil {
				return err
			}
			signal, err := d.Signal(signalName)
			if err != nil {
				return err
			}
			metric, _ := a.cfg.Metric()

			start := time.Now()
			res, err := spectral.Decompose(d.Features, metric, signal, a.cfg.SpectralOptions()...)
			if err != nil {
				return err
			}
			sum, err := spectrum.Summarize(res.Coefficients, a.cfg.LowPassK)
			if err != nil {
				return err
			}
			a.log.Debug("signal decomposed", "signal", signalName, "gini", sum.Gini, "elapsed", time.Since(start))

			return a.emit(cmd, signalName, decompositionOutput{
				Operator:     res.Kind.String(),
				Signal:       signalName,
				Eigenvalues:  res.Basis.Values,
				Coefficients: res.Coefficients,
				Summary:      sum,
			})
		},
	}
	cmd.Flags().StringSliceVar(&signalColumns, "signal-columns", nil, "CSV columns that are signals (default: --signal)")
	cmd.Flags().StringVarP(&signalName, "signal", "s", "", "signal to decompose")

	return cmd
}

func newBatchCmd(a *app) *cobra.Command {
	var signalColumns []string
	cmd := &cobra.Command{
		Use:   "batch <dataset>",
		Short: "Decompose every signal of a dataset into one record",
		Long: `Computes the basis once, projects all signals concurrently and writes an
export record (run id, fingerprint, operator, eigenpairs, spectra and their
Gini / energy summaries).
` + datasetHelp,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := a.loadDataset(args[0], signalColumns)
			if err != nil {
				return err
			}
			if len(d.Signals) == 0 {
				return errors.New("dataset has no signals")
			}
			metric, _ := a.cfg.Metric()

			start := time.Now()
			res, err := spectral.DecomposeBatch(cmd.Context(), d.Features, metric, d.Signals, a.cfg.SpectralOptions()...)
			if err != nil {
				return err
			}
			a.log.Debug("batch decomposed", "signals", len(res.Coefficients), "elapsed", time.Since(start))

			rec, err := export.NewRecord(export.Meta{
				Kernel:      a.cfg.Kernel,
				LengthScale: a.cfg.LengthScale,
				Source:      args[0],
				LowPassK:    a.cfg.LowPassK,
			}, res, d.Signals, d.IDs)
			if err != nil {
				return err
			}

			return a.writeRecord(cmd.OutOrStdout(), rec)
		},
	}
	cmd.Flags().StringSliceVar(&signalColumns, "signal-columns", nil, "CSV columns that are signals, not features")

	return cmd
}
