// SPDX-License-Identifier: MIT

package cli

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/chemsp/graph"
	"github.com/katalvlaran/chemsp/gso"
)

type componentsOutput struct {
	Threshold  float64      `json:"threshold" yaml:"threshold" msgpack:"threshold"`
	Components [][]string   `json:"components" yaml:"components" msgpack:"components"`
	Edges      []graph.Edge `json:"edges" yaml:"edges" msgpack:"edges"`
}

func newComponentsCmd(a *app) *cobra.Command {
	var signalColumns []string
	cmd := &cobra.Command{
		Use:   "components <dataset>",
		Short: "Group molecules into connected similarity clusters",
		Long: `Keeps kernel values >= --threshold as edges of an undirected graph and
prints its connected components. The number of components equals the
multiplicity of the zero eigenvalue of that graph's Laplacian.`,
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
			adj, err := gso.Adjacency(x, metric)
			if err != nil {
				return err
			}
			g, err := graph.FromAdjacency(adj, d.IDs, a.cfg.GraphOptions()...)
			if err != nil {
				return err
			}
			comps, err := graph.Components(g)
			if err != nil {
				return err
			}
			a.log.Debug("graph thresholded",
				"threshold", a.cfg.Threshold, "edges", g.Size(), "components", len(comps))

			return a.emit(cmd, "components", componentsOutput{
				Threshold:  a.cfg.Threshold,
				Components: comps,
				Edges:      g.Edges(),
			})
		},
	}
	cmd.Flags().StringSliceVar(&signalColumns, "signal-columns", nil, "CSV columns that are signals, not features")

	return cmd
}
