// SPDX-License-Identifier: MIT

package cli

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/chemsp/gso"
	"github.com/katalvlaran/chemsp/spectral"
)

// basisOutput is the printed form of a spectral basis.
type basisOutput struct {
	Operator    string      `json:"operator" yaml:"operator" msgpack:"operator"`
	IDs         []string    `json:"ids,omitempty" yaml:"ids,omitempty" msgpack:"ids,omitempty"`
	Eigenvalues []float64   `json:"eigenvalues" yaml:"eigenvalues" msgpack:"eigenvalues"`
	Basis       [][]float64 `json:"basis" yaml:"basis" msgpack:"basis"`
}

func newBasisCmd(a *app) *cobra.Command {
	var signalColumns []string
	cmd := &cobra.Command{
		Use:   "basis <dataset>",
		Short: "Print the graph Fourier basis of a dataset",
		Long: `Computes eigenvalues (ascending) and eigenvectors of the shift operator.
Column k of "basis" is the eigenvector of eigenvalue k.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := a.loadDataset(args[0], signalColumns)
			if err != nil {
				return err
			}
			x, err := d.Representations()
			if err != nil {
				return err
			}
			metric, _ := a.cfg.Metric()
			kind, _ := a.cfg.OperatorKind()
			op, err := gso.Build(x, metric, kind)
			if err != nil {
				return err
			}

			start := time.Now()
			b, err := spectral.Eigenbasis(op, a.cfg.SpectralOptions()...)
			if err != nil {
				return err
			}
			a.log.Debug("basis computed", "nodes", b.Len(), "elapsed", time.Since(start))

			return a.emit(cmd, "basis", basisOutput{
				Operator:    kind.String(),
				IDs:         d.IDs,
				Eigenvalues: b.Values,
				Basis:       b.Vectors.ToRows(),
			})
		},
	}
	cmd.Flags().StringSliceVar(&signalColumns, "signal-columns", nil, "CSV columns that are signals, not features")

	return cmd
}
