// SPDX-License-Identifier: MIT

// Package builder generates deterministic city road networks for tests,
// benchmarks and the `citymst gen` command.
//
// The package offers the following key components:
//
//   - Orchestrator:
//     – BuildGraph:        resolves options, runs constructors in order, seals a citygraph.Graph.
//   - Topology constructors (Constructor implementations):
//     – Path, Cycle, Star, Complete, Grid, RandomSparse.
//   - Configuration primitives:
//     – BuilderOption:     a function that mutates builderConfig before use.
//     – builderConfig:     holds RNG, name scheme, cost function and layout extent.
//   - City name schemes (NameFn implementations):
//     – DefaultNameFn:     "C0","C1",…
//     – ExcelColumnNameFn: "A","Z","AA",…
//     – AlphanumericNameFn: base-36 strings.
//   - Road cost schemes (CostFn implementations):
//     – EuclideanCost:     rounded distance between the two cities, at least 1.
//     – ConstantCost:      fixed user-provided value.
//     – UniformCost:       uniform integer in [min,max].
//
// Guarantees:
//
//   - Determinism: same options, seed and constructor order ⇒ identical graphs.
//   - Fast-fail on invalid option parameters via panics in option constructors.
//   - Constructors never panic; they return sentinel errors wrapped with the
//     constructor name (ErrTooFewVertices, ErrInvalidProbability, ErrNeedRandSource).
//
// Composing constructors is allowed but every constructor adds its own cities,
// so two constructors sharing a name scheme collide with citygraph.ErrDuplicateCity.
package builder
