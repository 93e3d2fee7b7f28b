// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/citymst/builder"
	"github.com/katalvlaran/citymst/cityfile"
)

// Topology names accepted by gen.
const (
	TopologyPath     = "path"
	TopologyCycle    = "cycle"
	TopologyStar     = "star"
	TopologyGrid     = "grid"
	TopologyComplete = "complete"
	TopologyRandom   = "random"
)

type genFlags struct {
	topology   string
	n          int
	rows, cols int
	p          float64
	seed       int64
	extent     float64
}

func (f genFlags) constructor() (builder.Constructor, error) {
	switch f.topology {
	case TopologyPath:
		return builder.Path(f.n), nil
	case TopologyCycle:
		return builder.Cycle(f.n), nil
	case TopologyStar:
		return builder.Star(f.n), nil
	case TopologyGrid:
		return builder.Grid(f.rows, f.cols), nil
	case TopologyComplete:
		return builder.Complete(f.n), nil
	case TopologyRandom:
		return builder.RandomSparse(f.n, f.p), nil
	default:
		return nil, fmt.Errorf("gen: unknown topology %q", f.topology)
	}
}

func newGenCommand(a *app) *cobra.Command {
	var f genFlags
	cmd := &cobra.Command{
		Use:   "gen",
		Short: "Generate a city file on stdout",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctor, err := f.constructor()
			if err != nil {
				return err
			}
			if f.extent <= 0 {
				return fmt.Errorf("gen: extent must be > 0, got %g", f.extent)
			}
			g, err := builder.BuildGraph([]builder.BuilderOption{
				builder.WithSeed(f.seed),
				builder.WithExtent(f.extent),
			}, ctor)
			if err != nil {
				return err
			}
			a.logger.Info("graph generated",
				zap.String("topology", f.topology),
				zap.Int("cities", g.NumNodes()),
				zap.Int("roads", g.NumRoads()),
				zap.Int64("seed", f.seed))
			return cityfile.Write(cmd.OutOrStdout(), g)
		},
	}
	fs := cmd.Flags()
	fs.StringVarP(&f.topology, "topology", "t", TopologyRandom, "path, cycle, star, grid, complete or random")
	fs.IntVarP(&f.n, "n", "n", 10, "Number of cities")
	fs.IntVar(&f.rows, "rows", 3, "Grid rows")
	fs.IntVar(&f.cols, "cols", 3, "Grid columns")
	fs.Float64VarP(&f.p, "p", "p", 0.3, "Road probability for random")
	fs.Int64Var(&f.seed, "seed", 1, "Random seed")
	fs.Float64Var(&f.extent, "extent", builder.DefaultExtent, "Side of the layout square")
	return cmd
}
