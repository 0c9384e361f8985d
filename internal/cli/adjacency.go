// SPDX-License-Identifier: MIT

package cli

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/chemsp/gso"
)

// operatorOutput is the printed form of a shift operator.
type operatorOutput struct {
	Operator string      `json:"operator" yaml:"operator" msgpack:"operator"`
	IDs      []string    `json:"ids,omitempty" yaml:"ids,omitempty" msgpack:"ids,omitempty"`
	Matrix   [][]float64 `json:"matrix" yaml:"matrix" msgpack:"matrix"`
}

func newAdjacencyCmd(a *app) *cobra.Command {
	var signalColumns []string
	cmd := &cobra.Command{
		Use:   "adjacency <dataset>",
		Short: "Print the shift operator of a dataset",
		Long: `Builds the pairwise kernel matrix of the dataset's feature vectors. With
--operator laplacian the Laplacian D - A is printed instead.`,
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

			start := time.Now()
			op, err := gso.Build(x, metric, kind)
			if err != nil {
				return err
			}
			a.log.Debug("operator built", "operator", kind, "nodes", op.Rows(), "elapsed", time.Since(start))

			return a.emit(cmd, kind.String(), operatorOutput{
				Operator: kind.String(),
				IDs:      d.IDs,
				Matrix:   op.ToRows(),
			})
		},
	}
	cmd.Flags().StringSliceVar(&signalColumns, "signal-columns", nil, "CSV columns that are signals, not features")

	return cmd
}
