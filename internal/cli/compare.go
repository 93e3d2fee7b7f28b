// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/citymst/prim_kruskal"
)

func newCompareCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compare <file>",
		Short: "Run Kruskal and Prim on a city file and check their totals agree",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			runID := a.runID()
			log := a.logger.With(zap.String("run_id", runID), zap.String("file", args[0]))

			g, comps, err := a.load(log, args[0])
			if err != nil {
				return err
			}
			results, err := a.compute(log, g, []string{prim_kruskal.MethodKruskal, prim_kruskal.MethodPrim})
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "Run %s: %s (%d cities, %d roads, %d components)\n",
				runID, args[0], g.NumNodes(), g.NumRoads(), comps)
			t := newTable(w)
			t.AddHeader("ALGORITHM", "ROADS", "COST", "TIME")
			for _, r := range results {
				t.AddLine(r.method, len(r.edges), r.total, r.took)
			}
			t.Print()

			if err = checkTotals(results); err != nil {
				return err
			}
			fmt.Fprintln(w, "Totals match.")
			return nil
		},
	}
	cmd.Flags().StringP(FlagSource, "s", "", "Prim start city (default: the first city)")
	return cmd
}
