// SPDX-License-Identifier: MIT
// Package prim_kruskal computes minimum spanning trees over a
// *citygraph.Graph with two independent algorithms, Kruskal's and Prim's,
// so their results can be cross-checked.
//
// What & Why
//
//   - An MST of a connected, weighted, undirected graph G = (V, E) is a
//     subset T ⊆ E that spans V with the minimum total cost. For road
//     networks it is the cheapest set of roads keeping every city reachable.
//   - MST weight is unique even when the edge set is not (ties), so the two
//     algorithms must agree on TotalCost for every connected graph.
//
// Algorithms Provided
//
//   - Kruskal(g) ([]citygraph.Edge, int64, error)
//
//   - Strategy: enumerate every directed record of every bucket (each road
//     appears twice), stable-sort by cost, then walk the list and keep an
//     edge whenever its endpoints lie in different dsu sets. The duplicate
//     reverse record of a chosen road, and any edge closing a cycle, are
//     rejected by the same test.
//
//   - Complexity: O(E log E) time for the sort, O(V + E) space.
//
//   - Disconnected input yields a minimum spanning forest (fewer than V-1
//     edges); that is a result, not an error.
//
//   - Prim(g, source) ([]citygraph.Edge, int64, error)
//
//   - Strategy: grow a tree from source. A per-vertex table tracks bestCost
//     and predecessor, a bitset tracks visited cities, and an indexed minheap keyed by bestCost picks the
//     next vertex and ReduceKey lowers a frontier vertex in O(log V).
//
//   - Complexity: O(E log V) time, O(V) space.
//
//   - Disconnected input: once the frontier minimum is minheap.Infinity no
//     further vertex is reachable, so Prim stops and returns the MST of the
//     source's component. No infinite-cost edge is ever emitted.
//
// Determinism
//
//   - citygraph buckets are ordered newest first; Kruskal's stable sort
//     keeps that enumeration order among equal costs, and Prim relaxes
//     edges in bucket order with a strict "<". Re-running either algorithm on
//     the same graph yields the same edge list.
//
// Strategy objects
//
//	algo := prim_kruskal.NewPrim(g, 0)
//	if err := algo.ComputeMST(); err != nil { ... }
//	for _, e := range algo.Edges() { ... }
//
// Error Conditions
//
//   - ErrNilGraph       graph is nil.
//   - ErrEmptyGraph     graph has no cities.
//   - ErrSourceNotFound Prim source id (or name) is not a city of the graph.
//   - ErrUnknownMethod  Compute with a Method other than prim/kruskal.
//   - ErrDisconnected   Compute with RequireSpanning on a disconnected graph.
//   - ErrCostOverflow   the tree's total cost does not fit in an int64.
//   - ErrCycle, ErrForeignEdge from Verify.
package prim_kruskal
