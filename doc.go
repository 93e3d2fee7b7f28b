// SPDX-License-Identifier: MIT

// Package citymst computes minimum spanning trees over road networks of
// cities: named points joined by undirected roads with non-negative
// integer costs.
//
// What is inside:
//
//	citygraph/    — immutable arena-backed graph of cities and roads + staging Builder
//	dsu/          — disjoint-set forest (union by size, path halving)
//	minheap/      — indexed binary min-heap with ReduceKey
//	prim_kruskal/ — Kruskal and Prim, the Algorithm strategy, Compute, Verify
//	cityfile/     — NODES/ARCS text format reader and writer
//	builder/      — deterministic fixture generators (path, cycle, star, grid, complete, random)
//	cmd/citymst/  — command-line driver (solve, compare, gen)
//
// Quick ASCII example:
//
//	    A─1─B
//	    │ ╲ │
//	    3  2 2
//	    │   ╲│
//	    D─1─C
//
// Both algorithms pick A–B, C–D and one of the 2-cost roads: total 4.
//
//	go install github.com/katalvlaran/citymst/cmd/citymst@latest
package citymst
