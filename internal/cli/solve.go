// SPDX-License-Identifier: MIT

package cli

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/citymst/cityfile"
	"github.com/katalvlaran/citymst/citygraph"
	"github.com/katalvlaran/citymst/internal/config"
	"github.com/katalvlaran/citymst/internal/logutil"
	"github.com/katalvlaran/citymst/prim_kruskal"
)

// result is one algorithm's tree over one graph.
type result struct {
	method string
	edges  []citygraph.Edge
	total  int64
	took   time.Duration
}

func newSolveCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "solve <file>",
		Short: "Compute the minimum spanning tree of a city file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			watch, err := cmd.Flags().GetBool(FlagWatch)
			if err != nil {
				return err
			}
			if err = a.solveOnce(cmd.OutOrStdout(), args[0]); err != nil && !watch {
				return err
			}
			if !watch {
				return nil
			}
			return a.watch(cmd.Context(), cmd.OutOrStdout(), args[0])
		},
	}
	cmd.Flags().StringP(FlagAlgorithm, "a", config.DefaultAlgorithm, "MST algorithm: kruskal, prim or both")
	cmd.Flags().StringP(FlagSource, "s", "", "Prim start city (default: the first city)")
	cmd.Flags().Bool(FlagRequireSpanning, false, "Fail when the graph is disconnected")
	cmd.Flags().String(FlagMetricsFile, "", "Write Prometheus metrics to this file after each run")
	cmd.Flags().BoolP(FlagWatch, "w", false, "Re-solve whenever the city file or profile changes")
	return cmd
}

// methodsFor expands a profile algorithm into prim_kruskal methods.
func methodsFor(algorithm string) []string {
	switch algorithm {
	case config.AlgorithmKruskal:
		return []string{prim_kruskal.MethodKruskal}
	case config.AlgorithmPrim:
		return []string{prim_kruskal.MethodPrim}
	default:
		return []string{prim_kruskal.MethodKruskal, prim_kruskal.MethodPrim}
	}
}

// compute runs every method the profile selects against g.
func (a *app) compute(log *zap.Logger, g *citygraph.Graph, methods []string) ([]result, error) {
	p := a.profile
	opts := []prim_kruskal.Option{}
	if p.Source != "" {
		opts = append(opts, prim_kruskal.WithSourceName(p.Source))
	}
	if p.RequireSpanning {
		opts = append(opts, prim_kruskal.WithRequireSpanning())
	}

	out := make([]result, 0, len(methods))
	for _, m := range methods {
		start := time.Now()
		edges, total, err := prim_kruskal.Compute(g, prim_kruskal.DefaultOptions(append(opts, prim_kruskal.WithMethod(m))...))
		took := time.Since(start)
		a.metrics.ObserveRun(m, took, len(edges), total, err)
		if err != nil {
			log.Error("mst failed", zap.String("algorithm", m), zap.Error(err))
			return nil, fmt.Errorf("%s: %w", m, err)
		}
		log.Info("mst computed",
			zap.String("algorithm", m),
			zap.Int("edges", len(edges)),
			zap.Int64("cost", total),
			zap.Duration("took", took))
		out = append(out, result{method: m, edges: edges, total: total, took: took})
	}
	return out, nil
}

// load reads the city file and records its shape.
func (a *app) load(log *zap.Logger, path string) (*citygraph.Graph, int, error) {
	g, err := cityfile.Load(path)
	if err != nil {
		log.Error("load failed", zap.Error(err))
		return nil, 0, err
	}
	comps, err := prim_kruskal.Components(g)
	if err != nil {
		log.Error("load failed", zap.Error(err))
		return nil, 0, err
	}
	a.metrics.ObserveGraph(g.NumNodes(), g.NumRoads(), comps)
	log.Info("graph loaded",
		zap.Int("cities", g.NumNodes()),
		zap.Int("roads", g.NumRoads()),
		zap.Int("components", comps))
	return g, comps, nil
}

func (a *app) solveOnce(w io.Writer, path string) error {
	runID := a.runID()
	log := a.logger.With(zap.String("run_id", runID), zap.String("file", path))

	err := a.solve(log, w, runID, path)
	if a.profile.MetricsFile != "" {
		if werr := a.metrics.WriteTextfile(a.profile.MetricsFile); werr != nil {
			log.Warn("metrics export failed", zap.String("path", a.profile.MetricsFile), zap.Error(werr))
		}
	}
	return err
}

func (a *app) solve(log *zap.Logger, w io.Writer, runID, path string) error {
	g, comps, err := a.load(log, path)
	if err != nil {
		return err
	}
	results, err := a.compute(log, g, methodsFor(a.profile.Algorithm))
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "Run %s: %s\n", runID, path)
	for _, r := range results {
		renderTree(w, g, r, comps)
	}
	return checkTotals(results)
}

// checkTotals fails when the algorithms disagree.
func checkTotals(results []result) error {
	for _, r := range results[1:] {
		if r.total != results[0].total {
			return fmt.Errorf("%w: %s=%d, %s=%d", ErrTotalsDiffer,
				results[0].method, results[0].total, r.method, r.total)
		}
	}
	return nil
}

// watch re-solves on every change of the graph file or profile until ctx ends.
// Failed runs are logged and do not stop the loop.
func (a *app) watch(ctx context.Context, w io.Writer, path string) error {
	trigger := make(chan string, 1)
	notify := func(what string) func() {
		return func() {
			select {
			case trigger <- what:
			default:
			}
		}
	}
	onError := func(err error) { a.logger.Warn("watch error", zap.Error(err)) }

	stopGraph, err := config.WatchFile(path, notify("graph"), onError)
	if err != nil {
		return err
	}
	defer stopGraph()

	if a.loader != nil {
		a.loader.OnChange(func(*config.Profile) { notify("config")() })
		stopConfig, err := a.loader.Watch(onError)
		if err != nil {
			return err
		}
		defer stopConfig()
	}

	a.logger.Info("watching", zap.String("file", path))
	for {
		select {
		case <-ctx.Done():
			a.logger.Info("watch stopped")
			return nil
		case what := <-trigger:
			if what == "config" {
				if err := a.reloadProfile(); err != nil {
					a.logger.Warn("profile reload rejected", zap.Error(err))
					continue
				}
			} else {
				a.metrics.GraphReloads.Inc()
			}
			if err := a.solveOnce(w, path); err != nil {
				a.logger.Warn("re-solve failed", zap.String("trigger", what), zap.Error(err))
			}
		}
	}
}

// reloadProfile re-applies flags over the reloaded file profile.
func (a *app) reloadProfile() error {
	p, err := a.resolve(a.loader.Config())
	if err != nil {
		return err
	}
	a.profile = p
	if !a.injected {
		return logutil.SetLevel(a.level, p.Log.Level)
	}
	return nil
}
