// SPDX-License-Identifier: MIT
// Package: citymst/builder
//
// config.go — internal configuration and deterministic defaults.
//
// Deterministic defaults (no surprises):
//   • nameFn = DefaultNameFn   ("C0","C1",...)
//   • rng    = nil             (pure/deterministic unless seeded)
//   • costFn = EuclideanCost   (rounded distance, min 1)
//   • extent = 100             (side of the square the layout occupies)

package builder

import "math/rand"

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors (immutable to callers).
type builderConfig struct {
	// City name strategy: index -> name (deterministic).
	nameFn NameFn
	// RNG for stochastic choices; nil means “no randomness”.
	rng *rand.Rand
	// Road cost generator.
	costFn CostFn
	// Layout extent: cities are placed inside [0,extent]².
	extent float64
}

// DefaultExtent is the side length of the layout square.
const DefaultExtent = 100.0

// newBuilderConfig constructs a config with deterministic defaults and applies
// all options in order (last wins).
// Complexity: O(len(opts)) time, O(1) space.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		nameFn: DefaultNameFn,
		rng:    nil,
		costFn: EuclideanCost,
		extent: DefaultExtent,
	}

	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
