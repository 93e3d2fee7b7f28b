// SPDX-License-Identifier: MIT

// Package cli wires the citymst cobra command tree: solve, compare and gen.
package cli

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/katalvlaran/citymst/internal/config"
	"github.com/katalvlaran/citymst/internal/logutil"
	"github.com/katalvlaran/citymst/internal/metrics"
)

const (
	// FlagConfig is the name of the run profile flag.
	FlagConfig = "config"
	// FlagLogLevel is the name of log-level flag.
	FlagLogLevel = "log-level"
	// FlagLogFormat is the name of log-format flag.
	FlagLogFormat = "log-format"
	// FlagAlgorithm selects kruskal, prim or both.
	FlagAlgorithm = "algorithm"
	// FlagSource names Prim's start city.
	FlagSource = "source"
	// FlagRequireSpanning rejects disconnected graphs.
	FlagRequireSpanning = "require-spanning"
	// FlagMetricsFile is the Prometheus textfile destination.
	FlagMetricsFile = "metrics-file"
	// FlagWatch keeps solve running and re-solves when the input changes.
	FlagWatch = "watch"
)

// ErrTotalsDiffer is returned when Kruskal and Prim disagree on the MST weight.
var ErrTotalsDiffer = errors.New("cli: kruskal and prim totals differ")

// app is the state shared by all commands of one root.
type app struct {
	profile *config.Profile
	loader  *config.Loader
	flags   *pflag.FlagSet

	logger   *zap.Logger
	level    zap.AtomicLevel
	injected bool

	metrics *metrics.Recorder
	runID   func() string
}

// Option customizes the command tree, mostly for tests.
type Option func(*app)

// WithLogger uses l instead of building a logger from the profile.
func WithLogger(l *zap.Logger) Option {
	return func(a *app) {
		a.logger = l
		a.injected = true
	}
}

// WithRunID replaces the uuid run id generator.
func WithRunID(fn func() string) Option {
	return func(a *app) { a.runID = fn }
}

// NewRootCommand builds the citymst command tree.
func NewRootCommand(opts ...Option) *cobra.Command {
	a := &app{
		metrics: metrics.New(),
		runID:   uuid.NewString,
	}
	for _, opt := range opts {
		opt(a)
	}

	root := &cobra.Command{
		Use:               "citymst",
		Short:             "citymst computes minimum spanning trees over city road networks.",
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}
	root.PersistentFlags().StringP(FlagConfig, "c", "", "YAML run profile")
	root.PersistentFlags().StringP(FlagLogLevel, "L", "", "Set the log level (debug, info, warn, error)")
	root.PersistentFlags().String(FlagLogFormat, "", "Set the log format (console, json)")

	root.AddCommand(
		newSolveCommand(a),
		newCompareCommand(a),
		newGenCommand(a),
	)
	return root
}

// setup resolves the profile (file, then flags) and the logger.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	a.flags = cmd.Flags()

	path, err := a.flags.GetString(FlagConfig)
	if err != nil {
		return err
	}
	base := config.Default()
	if path != "" {
		if a.loader, err = config.NewLoader(path); err != nil {
			return err
		}
		base = a.loader.Config()
	}
	if a.profile, err = a.resolve(base); err != nil {
		return err
	}

	if !a.injected {
		if a.logger, a.level, err = logutil.New(a.profile.Log); err != nil {
			return err
		}
	}
	a.logger.Debug("profile resolved",
		zap.String("config", path),
		zap.String("algorithm", a.profile.Algorithm),
		zap.String("source", a.profile.Source),
		zap.Bool("require_spanning", a.profile.RequireSpanning))
	return nil
}

// resolve copies base and applies explicitly set flags on top.
func (a *app) resolve(base *config.Profile) (*config.Profile, error) {
	p := *base
	fs := a.flags
	changed := func(name string) bool {
		return fs.Lookup(name) != nil && fs.Changed(name)
	}

	var err error
	if changed(FlagAlgorithm) {
		if p.Algorithm, err = fs.GetString(FlagAlgorithm); err != nil {
			return nil, err
		}
	}
	if changed(FlagSource) {
		if p.Source, err = fs.GetString(FlagSource); err != nil {
			return nil, err
		}
	}
	if changed(FlagRequireSpanning) {
		if p.RequireSpanning, err = fs.GetBool(FlagRequireSpanning); err != nil {
			return nil, err
		}
	}
	if changed(FlagMetricsFile) {
		if p.MetricsFile, err = fs.GetString(FlagMetricsFile); err != nil {
			return nil, err
		}
	}
	if changed(FlagLogLevel) {
		if p.Log.Level, err = fs.GetString(FlagLogLevel); err != nil {
			return nil, err
		}
	}
	if changed(FlagLogFormat) {
		if p.Log.Format, err = fs.GetString(FlagLogFormat); err != nil {
			return nil, err
		}
	}

	if err = config.Validate(&p); err != nil {
		return nil, fmt.Errorf("flags: %w", err)
	}
	return &p, nil
}
