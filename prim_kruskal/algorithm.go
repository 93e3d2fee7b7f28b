// SPDX-License-Identifier: MIT

package prim_kruskal

import (
	"fmt"

	"github.com/katalvlaran/citymst/citygraph"
)

// Algorithm is an MST strategy bound to one graph. ComputeMST populates
// the edge list; Edges and TotalCost read it back. Calling ComputeMST
// again recomputes from scratch and replaces the previous result.
type Algorithm interface {
	Name() string
	ComputeMST() error
	Edges() []citygraph.Edge
	TotalCost() int64
}

// mstBase owns the accumulated result and forwards traversal primitives
// from the underlying graph.
type mstBase struct {
	g     *citygraph.Graph
	edges []citygraph.Edge
	total int64
}

// NumNodes forwards graph's NumNodes.
func (b *mstBase) NumNodes() int {
	if b.g == nil {
		return 0
	}

	return b.g.NumNodes()
}

// FirstEdge forwards graph's FirstEdge.
func (b *mstBase) FirstEdge(v int) int {
	if b.g == nil {
		return citygraph.NoEdge
	}

	return b.g.FirstEdge(v)
}

// Edges returns a copy of the last computed MST edge list.
func (b *mstBase) Edges() []citygraph.Edge {
	out := make([]citygraph.Edge, len(b.edges))
	copy(out, b.edges)

	return out
}

// TotalCost returns the cost of the last computed MST.
func (b *mstBase) TotalCost() int64 { return b.total }

func (b *mstBase) store(edges []citygraph.Edge, total int64) {
	b.edges, b.total = edges, total
}

// KruskalAlgorithm runs Kruskal over its graph.
type KruskalAlgorithm struct {
	mstBase
}

// NewKruskal binds Kruskal to g.
func NewKruskal(g *citygraph.Graph) *KruskalAlgorithm {
	return &KruskalAlgorithm{mstBase{g: g}}
}

// Name returns MethodKruskal.
func (k *KruskalAlgorithm) Name() string { return MethodKruskal }

// ComputeMST runs Kruskal and stores the result.
func (k *KruskalAlgorithm) ComputeMST() error {
	edges, total, err := Kruskal(k.g)
	if err != nil {
		return err
	}
	k.store(edges, total)

	return nil
}

// PrimAlgorithm runs Prim over its graph from a fixed source vertex.
type PrimAlgorithm struct {
	mstBase
	source int
}

// NewPrim binds Prim to g, starting at source.
func NewPrim(g *citygraph.Graph, source int) *PrimAlgorithm {
	return &PrimAlgorithm{mstBase: mstBase{g: g}, source: source}
}

// Name returns MethodPrim.
func (p *PrimAlgorithm) Name() string { return MethodPrim }

// Source returns the starting vertex id.
func (p *PrimAlgorithm) Source() int { return p.source }

// ComputeMST runs Prim and stores the result.
func (p *PrimAlgorithm) ComputeMST() error {
	edges, total, err := Prim(p.g, p.source)
	if err != nil {
		return err
	}
	p.store(edges, total)

	return nil
}

// New builds the Algorithm selected by opts. SourceName is resolved here
// so that a bad name fails before any work is done.
func New(g *citygraph.Graph, opts Options) (Algorithm, error) {
	switch opts.Method {
	case MethodKruskal:
		return NewKruskal(g), nil
	case MethodPrim:
		source := opts.Source
		if opts.SourceName != "" {
			if g == nil {
				return nil, ErrNilGraph
			}
			id, err := g.Lookup(opts.SourceName)
			if err != nil {
				return nil, fmt.Errorf("%w: %w", ErrSourceNotFound, err)
			}
			source = id
		}

		return NewPrim(g, source), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownMethod, opts.Method)
	}
}
