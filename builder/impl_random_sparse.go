// SPDX-License-Identifier: MIT
// Package: citymst/builder
//
// impl_random_sparse.go - implementation of RandomSparse(n, p) constructor.
//
// Canonical model:
//   - Erdős–Rényi-like generator: include each unordered pair {i,j}, i<j,
//     independently with probability p.
//   - Cities are scattered uniformly over the layout square.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices).
//   - 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   - cfg.rng must be non-nil (else ErrNeedRandSource); the layout itself is random.
//
// Complexity: O(n) cities + O(n²) Bernoulli trials.
//
// Determinism:
//   - Positions are drawn first (x then y per city), then trials run
//     for i asc, j asc, so a fixed seed gives a fixed graph.

package builder

import (
	"fmt"

	"github.com/katalvlaran/citymst/citygraph"
)

const (
	methodRandomSparse      = "RandomSparse"
	minRandomSparseVertices = 1
	probMin                 = 0.0
	probMax                 = 1.0
)

// RandomSparse returns a Constructor that samples a random road network
// over n cities with independent road probability p.
func RandomSparse(n int, p float64) Constructor {
	return func(b *citygraph.Builder, cfg builderConfig) error {
		if n < minRandomSparseVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w",
				methodRandomSparse, n, minRandomSparseVertices, ErrTooFewVertices)
		}
		if p < probMin || p > probMax {
			return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				methodRandomSparse, p, probMin, probMax, ErrInvalidProbability)
		}
		if cfg.rng == nil {
			return fmt.Errorf("%s: rng is required: %w", methodRandomSparse, ErrNeedRandSource)
		}

		rng := cfg.rng
		pts := make([]point, n)
		for i := range pts {
			pts[i] = point{x: roundCoord(rng.Float64() * cfg.extent), y: roundCoord(rng.Float64() * cfg.extent)}
		}
		cities, err := addCities(b, cfg, methodRandomSparse, pts)
		if err != nil {
			return err
		}

		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if rng.Float64() >= p {
					continue
				}
				if err = addRoad(b, cfg, methodRandomSparse, cities[i], cities[j]); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
