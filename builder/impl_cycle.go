// SPDX-License-Identifier: MIT
// Package: citymst/builder
//
// impl_cycle.go - implementation of Cycle(n) constructor.
//
// Contract:
//   - n ≥ 3 (else ErrTooFewVertices).
//   - Cities are spread evenly on a circle.
//   - Emits i—(i+1) for i=0..n-2, then the closing road (n-1)—0.
//
// Complexity: O(n) cities + O(n) roads.

package builder

import (
	"fmt"

	"github.com/katalvlaran/citymst/citygraph"
)

const (
	methodCycle   = "Cycle"
	minCycleNodes = 3
)

// Cycle returns a Constructor that builds a ring C_n.
func Cycle(n int) Constructor {
	return func(b *citygraph.Builder, cfg builderConfig) error {
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}

		cities, err := addCities(b, cfg, methodCycle, circleLayout(n, cfg.extent))
		if err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			if err = addRoad(b, cfg, methodCycle, cities[i], cities[(i+1)%n]); err != nil {
				return err
			}
		}

		return nil
	}
}
