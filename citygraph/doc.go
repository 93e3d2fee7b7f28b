// SPDX-License-Identifier: MIT
// Package citygraph provides the read-only road network consumed by the
// MST algorithms: cities (named points with 2-D coordinates) joined by
// undirected roads with non-negative integer distances.
//
// Layout:
//
//	nodes []CityNode   // indexed by dense vertex id 0..n-1
//	head  []int        // head[v] = arena index of v's first edge, or NoEdge
//	edges []Edge       // arena; Edge.next chains a vertex bucket
//
// Every undirected road a–b is stored as two directed records (b→a is
// appended to b's bucket, a→b to a's bucket) with the same cost. A bucket
// is ordered most-recently-added first; Kruskal's stable sort and Prim's
// relaxation order both depend on that order, so it is part of the contract.
//
// A Graph is produced by a Builder and is never mutated afterwards, so it
// can be shared freely between goroutines running independent algorithms.
//
// Traversal:
//
//	for i := g.FirstEdge(v); i != citygraph.NoEdge; i = g.NextEdge(i) {
//	    e := g.Edge(i)
//	    // e.From == v
//	}
//
// Errors:
//
//	ErrEmptyName        - city name is empty.
//	ErrDuplicateCity    - city name declared twice.
//	ErrCityNotFound     - road references an undeclared city.
//	ErrNegativeCost     - road cost < 0.
//	ErrVertexOutOfRange - vertex id outside [0, n).
//	ErrSealed           - Builder used after Build.
package citygraph
