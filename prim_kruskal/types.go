// SPDX-License-Identifier: MIT
// Package prim_kruskal defines configuration options and sentinel errors for MST computation.
// It supports selecting between Kruskal and Prim algorithms via Options.
package prim_kruskal

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/citymst/citygraph"
)

// ErrNilGraph indicates that a nil *citygraph.Graph was passed in.
var ErrNilGraph = errors.New("prim_kruskal: graph is nil")

// ErrEmptyGraph indicates a graph without cities; there is nothing to span.
var ErrEmptyGraph = errors.New("prim_kruskal: graph has no vertices")

// ErrSourceNotFound indicates that Prim's source is not a city of the graph.
var ErrSourceNotFound = errors.New("prim_kruskal: source vertex not found")

// ErrUnknownMethod indicates Options.Method is neither MethodPrim nor MethodKruskal.
var ErrUnknownMethod = errors.New("prim_kruskal: unknown method")

// ErrDisconnected indicates that the graph is not fully connected, so a spanning
// tree covering all vertices cannot be formed. Only returned when spanning is required.
var ErrDisconnected = errors.New("prim_kruskal: graph is disconnected")

// ErrCycle indicates an edge list that joins two already-connected vertices.
var ErrCycle = errors.New("prim_kruskal: edge closes a cycle")

// ErrCostOverflow indicates a total cost that does not fit in an int64.
var ErrCostOverflow = errors.New("prim_kruskal: total cost overflows int64")

// ErrForeignEdge indicates an edge list entry that is not a road of the graph.
var ErrForeignEdge = errors.New("prim_kruskal: edge not in graph")

// MethodPrim selects Prim's algorithm (grow from a source using an indexed min-heap).
const MethodPrim = "prim"

// MethodKruskal selects Kruskal's algorithm (sort all edges and union-find).
const MethodKruskal = "kruskal"

// Options configures which MST algorithm to run, and for Prim, which starting vertex to use.
// Use DefaultOptions() to get a default setup (Kruskal).
type Options struct {
	// Method to use: MethodPrim or MethodKruskal.
	Method string

	// Source is the starting vertex id for Prim. Unused by Kruskal.
	Source int

	// SourceName, when non-empty, overrides Source by city name.
	SourceName string

	// RequireSpanning turns a spanning forest into ErrDisconnected.
	RequireSpanning bool
}

// Option configures Options.
type Option func(*Options)

// WithMethod returns an Option that sets the algorithm Method.
func WithMethod(m string) Option {
	return func(opts *Options) {
		opts.Method = m
	}
}

// WithSource sets Prim's starting vertex id.
func WithSource(id int) Option {
	return func(opts *Options) {
		opts.Source = id
	}
}

// WithSourceName sets Prim's starting vertex by city name.
func WithSourceName(name string) Option {
	return func(opts *Options) {
		opts.SourceName = name
	}
}

// WithRequireSpanning makes Compute reject spanning forests.
func WithRequireSpanning() Option {
	return func(opts *Options) {
		opts.RequireSpanning = true
	}
}

// DefaultOptions returns Options for Kruskal, source 0, forests allowed.
func DefaultOptions(opts ...Option) Options {
	o := Options{Method: MethodKruskal}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// Compute selects and runs the MST algorithm based on opts.Method.
//
// Returns the MST edges in the order the algorithm chose them, their total
// cost, and an error if the computation cannot proceed.
func Compute(g *citygraph.Graph, opts Options) ([]citygraph.Edge, int64, error) {
	algo, err := New(g, opts)
	if err != nil {
		return nil, 0, err
	}
	if err = algo.ComputeMST(); err != nil {
		return nil, 0, err
	}

	edges := algo.Edges()
	if opts.RequireSpanning && len(edges) < g.NumNodes()-1 {
		return nil, 0, ErrDisconnected
	}

	return edges, algo.TotalCost(), nil
}

// TotalCost sums the cost of edges. It returns ErrCostOverflow instead of
// wrapping around.
func TotalCost(edges []citygraph.Edge) (int64, error) {
	var (
		total int64
		err   error
	)
	for i, e := range edges {
		if total, err = addCost(total, e.Cost); err != nil {
			return 0, fmt.Errorf("%w: at #%d %s", err, i, e)
		}
	}

	return total, nil
}

// addCost adds a non-negative road cost to a running total.
func addCost(total, cost int64) (int64, error) {
	if cost > math.MaxInt64-total {
		return total, fmt.Errorf("%w: %d + %d", ErrCostOverflow, total, cost)
	}

	return total + cost, nil
}
