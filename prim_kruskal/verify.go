// SPDX-License-Identifier: MIT

package prim_kruskal

import (
	"fmt"

	"github.com/katalvlaran/citymst/citygraph"
	"github.com/katalvlaran/citymst/dsu"
)

// Verify replays edges through a fresh disjoint-set forest over g's
// vertices. Every edge must be a road of g and every union must succeed,
// i.e. the list is a forest. It does not check minimality; compare
// TotalCost across algorithms for that.
//
// Complexity: O(V + Σ deg(e.From) + |edges|·α(V)).
func Verify(g *citygraph.Graph, edges []citygraph.Edge) error {
	n, err := validate(g)
	if err != nil {
		return err
	}
	sets, err := dsu.New(n)
	if err != nil {
		return err
	}

	for i, e := range edges {
		if !g.HasRoad(e.From, e.To, e.Cost) {
			return fmt.Errorf("%w: #%d %s", ErrForeignEdge, i, e)
		}
		merged, err := sets.Union(e.From, e.To)
		if err != nil {
			return fmt.Errorf("%w: #%d %s: %w", ErrForeignEdge, i, e, err)
		}
		if !merged {
			return fmt.Errorf("%w: #%d %s", ErrCycle, i, e)
		}
	}

	return nil
}

// Components returns the number of connected components of g.
// A spanning forest of g has exactly NumNodes() - Components() edges.
func Components(g *citygraph.Graph) (int, error) {
	n, err := validate(g)
	if err != nil {
		return 0, err
	}
	sets, err := dsu.New(n)
	if err != nil {
		return 0, err
	}
	for _, e := range g.Edges() {
		if _, err = sets.Union(e.From, e.To); err != nil {
			return 0, err
		}
	}

	return sets.Count(), nil
}
