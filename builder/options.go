// SPDX-License-Identifier: MIT
// Package: citymst/builder
//
// options.go — functional options for the builder package.
//
// Contract (strict):
//   • Options are functional (type BuilderOption func(*builderConfig)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Constructors themselves MUST NOT panic.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.

package builder

import (
	"fmt"
	"math/rand"
)

// BuilderOption customizes the behavior of a constructor by mutating a
// builderConfig instance before graph construction begins.
type BuilderOption func(*builderConfig)

// WithNameScheme sets the deterministic city name generator: idx -> name.
// Panics on nil.
func WithNameScheme(fn NameFn) BuilderOption {
	if fn == nil {
		panic("builder: WithNameScheme(nil)")
	}
	return func(c *builderConfig) {
		c.nameFn = fn
	}
}

// WithRand provides an explicit RNG for stochastic builders.
// Panics on nil; prefer WithSeed for reproducible runs.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed (deterministic).
// Use this in tests and examples to lock outcomes.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithCostFn overrides the per-road cost generator. Panics on nil.
func WithCostFn(fn CostFn) BuilderOption {
	if fn == nil {
		panic("builder: WithCostFn(nil)")
	}
	return func(c *builderConfig) {
		c.costFn = fn
	}
}

// WithConstantCost is shorthand for WithCostFn(ConstantCost(v)).
func WithConstantCost(v int64) BuilderOption {
	return WithCostFn(ConstantCost(v))
}

// WithUniformCost is shorthand for WithCostFn(UniformCost(min, max)).
func WithUniformCost(min, max int64) BuilderOption {
	return WithCostFn(UniformCost(min, max))
}

// WithExtent sets the side of the layout square. Panics if extent <= 0.
func WithExtent(extent float64) BuilderOption {
	if extent <= 0 {
		panic(fmt.Sprintf("builder: WithExtent(%g): extent must be > 0", extent))
	}
	return func(c *builderConfig) {
		c.extent = extent
	}
}
