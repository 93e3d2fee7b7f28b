// SPDX-License-Identifier: MIT

package prim_kruskal

import (
	"fmt"

	"github.com/bits-and-blooms/bitset"

	"github.com/katalvlaran/citymst/citygraph"
	"github.com/katalvlaran/citymst/minheap"
)

// noPredecessor marks a table row that has not been reached yet.
const noPredecessor = -1

// Prim computes the MST of source's component by growing a tree outwards
// from source with an indexed min-heap.
//
// Steps:
//  1. Validate: graph non-nil with at least one vertex; source in range.
//  2. Table: bestCost=Infinity, pred=none; bestCost[source]=0. An empty
//     bitset holds the visited cities.
//  3. Heap over all vertices, source seeded at 0, others at Infinity.
//  4. Up to V times: peek at the minimum. If its priority is Infinity the
//     rest of the graph is unreachable and the loop ends. Otherwise extract
//     v, mark it visited, emit (pred[v], v, bestCost[v]) unless v is the
//     source, and lower every unvisited neighbour u with cost < bestCost[u].
//
// Complexity: O(E log V) time, O(V) memory.
func Prim(g *citygraph.Graph, source int) ([]citygraph.Edge, int64, error) {
	// 1. Validate graph and source.
	n, err := validate(g)
	if err != nil {
		return nil, 0, err
	}
	if source < 0 || source >= n {
		return nil, 0, fmt.Errorf("%w: %d not in [0,%d)", ErrSourceNotFound, source, n)
	}

	// 2. Build the table and heap, then run the extraction loop.
	r, err := newPrimRunner(g, source)
	if err != nil {
		return nil, 0, err
	}
	if err = r.process(); err != nil {
		return nil, 0, err
	}

	return r.mst, r.total, nil
}

// primEntry is one row of Prim's per-vertex table.
type primEntry struct {
	bestCost int64
	pred     int
}

// primRunner holds the mutable state for a single Prim execution. Nothing
// in it outlives the call.
type primRunner struct {
	g       *citygraph.Graph
	source  int
	table   []primEntry
	visited *bitset.BitSet
	pq      *minheap.Heap
	mst     []citygraph.Edge
	total   int64
}

func newPrimRunner(g *citygraph.Graph, source int) (*primRunner, error) {
	// 1. Table: every vertex unreached except the source.
	n := g.NumNodes()
	table := make([]primEntry, n)
	for v := range table {
		table[v] = primEntry{bestCost: minheap.Infinity, pred: noPredecessor}
	}
	table[source].bestCost = 0

	// 2. Heap over all vertices with the source seeded at 0.
	pq, err := minheap.New(n, minheap.WithPriority(source, 0))
	if err != nil {
		return nil, fmt.Errorf("prim_kruskal: prim: %w", err)
	}

	return &primRunner{
		g:       g,
		source:  source,
		table:   table,
		visited: bitset.New(uint(n)),
		pq:      pq,
		mst:     make([]citygraph.Edge, 0, n-1),
	}, nil
}

// process is the extraction loop.
func (r *primRunner) process() error {
	for !r.pq.Empty() {
		// 1. Stop once the frontier minimum is unreachable.
		_, cost, err := r.pq.Peek()
		if err != nil {
			return fmt.Errorf("prim_kruskal: prim: %w", err)
		}
		if cost == minheap.Infinity {
			break
		}

		// 2. Extract and mark visited.
		v, _, err := r.pq.RemoveMin()
		if err != nil {
			return fmt.Errorf("prim_kruskal: prim: %w", err)
		}
		r.visited.Set(uint(v))

		// 3. Emit the tree edge that reached v.
		row := &r.table[v]
		if v != r.source {
			if r.total, err = addCost(r.total, row.bestCost); err != nil {
				return fmt.Errorf("prim_kruskal: prim: %w", err)
			}
			r.mst = append(r.mst, citygraph.NewEdge(row.pred, v, row.bestCost))
		}

		// 4. Relax v's roads.
		if err = r.relax(v); err != nil {
			return err
		}
	}

	return nil
}

// relax lowers the frontier cost of every unvisited neighbour of v.
func (r *primRunner) relax(v int) error {
	for i := r.g.FirstEdge(v); i != citygraph.NoEdge; i = r.g.NextEdge(i) {
		e := r.g.Edge(i)
		// Only a strictly cheaper road to an unvisited city counts.
		if r.visited.Test(uint(e.To)) {
			continue
		}
		row := &r.table[e.To]
		if e.Cost >= row.bestCost {
			continue
		}
		row.bestCost = e.Cost
		row.pred = v
		if err := r.pq.ReduceKey(e.To, e.Cost); err != nil {
			return fmt.Errorf("prim_kruskal: prim: edge %s: %w", e, err)
		}
	}

	return nil
}
