// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"
	"sort"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/chemsp/export"
)

var headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
var cellStyle = lipgloss.NewStyle().Padding(0, 1)

func newGiniCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "gini <record>...",
		Short: "Compare spectra of exported records",
		Long: `Reads records written by "chemsp batch" and prints, per signal, the Gini
coefficient of the coefficient magnitudes, the spectral energy and the
low-pass energy share, sorted by Gini.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			type row struct {
				run, signal string
				gini        float64
				energy      float64
				lowPass     float64
			}
			var rows []row
			for _, path := range args {
				rec, err := export.ReadFile(path)
				if err != nil {
					return err
				}
				a.log.Debug("record read", "path", path, "run_id", rec.RunID, "signals", len(rec.Signals))
				for name, s := range rec.Signals {
					rows = append(rows, row{
						run:     shortID(rec.RunID),
						signal:  name,
						gini:    s.Summary.Gini,
						energy:  s.Summary.Energy,
						lowPass: s.Summary.LowPass,
					})
				}
			}
			sort.SliceStable(rows, func(i, j int) bool {
				if rows[i].gini != rows[j].gini {
					return rows[i].gini > rows[j].gini
				}
				return rows[i].signal < rows[j].signal
			})

			t := table.New().
				Border(lipgloss.NormalBorder()).
				Headers("run", "signal", "gini", "energy", "low-pass").
				StyleFunc(func(r, _ int) lipgloss.Style {
					if r == table.HeaderRow {
						return headerStyle
					}
					return cellStyle
				})
			for _, r := range rows {
				t.Row(r.run, r.signal,
					fmt.Sprintf("%.4f", r.gini), fmt.Sprintf("%.4g", r.energy), fmt.Sprintf("%.4f", r.lowPass))
			}
			_, err := fmt.Fprintln(cmd.OutOrStdout(), t.Render())

			return err
		},
	}
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
