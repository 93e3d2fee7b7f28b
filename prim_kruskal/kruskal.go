// SPDX-License-Identifier: MIT

package prim_kruskal

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/citymst/citygraph"
	"github.com/katalvlaran/citymst/dsu"
)

// Kruskal computes the minimum spanning forest of g.
//
// Steps:
//  1. Validate: graph non-nil with at least one vertex.
//  2. Collect every directed record via g.Edges() (each road twice).
//  3. Stable sort by ascending cost; ties keep enumeration order.
//  4. Walk the sorted records; keep (u,v) when u and v are in different
//     sets and union them. This also drops the mirror copy of a chosen road.
//  5. Stop early once V-1 edges are kept.
//
// Complexity: O(E log E + E·α(V)). Memory: O(V + E).
func Kruskal(g *citygraph.Graph) ([]citygraph.Edge, int64, error) {
	// 1. Validate; a single city spans itself.
	n, err := validate(g)
	if err != nil {
		return nil, 0, err
	}
	if n == 1 {
		return []citygraph.Edge{}, 0, nil
	}

	// 2. Collect and stable-sort every directed record by cost.
	edges := g.Edges()
	sort.SliceStable(edges, func(i, j int) bool {
		return edges[i].Cost < edges[j].Cost
	})

	// 3. One singleton set per city.
	sets, err := dsu.New(n)
	if err != nil {
		return nil, 0, fmt.Errorf("prim_kruskal: kruskal: %w", err)
	}

	// 4. Keep each record that joins two sets; stop at V-1.
	var (
		mst   = make([]citygraph.Edge, 0, n-1)
		total int64
	)
	for _, e := range edges {
		merged, err := sets.Union(e.From, e.To)
		if err != nil {
			return nil, 0, fmt.Errorf("prim_kruskal: kruskal: edge %s: %w", e, err)
		}
		if !merged {
			continue
		}
		if total, err = addCost(total, e.Cost); err != nil {
			return nil, 0, fmt.Errorf("prim_kruskal: kruskal: %w", err)
		}
		mst = append(mst, citygraph.NewEdge(e.From, e.To, e.Cost))
		if len(mst) == n-1 {
			break
		}
	}

	return mst, total, nil
}

// validate checks the graph shared preconditions and returns its size.
func validate(g *citygraph.Graph) (int, error) {
	if g == nil {
		return 0, ErrNilGraph
	}
	n := g.NumNodes()
	if n == 0 {
		return 0, ErrEmptyGraph
	}

	return n, nil
}
