// SPDX-License-Identifier: MIT
// Package: citymst/builder
//
// impl_complete.go - implementation of Complete(n) constructor.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices).
//   - Cities are spread evenly on a circle.
//   - Emits every unordered pair {i,j}, i<j, with i asc then j asc.
//
// Complexity: O(n) cities + O(n²) roads.

package builder

import (
	"fmt"

	"github.com/katalvlaran/citymst/citygraph"
)

const (
	methodComplete   = "Complete"
	minCompleteNodes = 1
)

// Complete returns a Constructor that builds K_n.
func Complete(n int) Constructor {
	return func(b *citygraph.Builder, cfg builderConfig) error {
		if n < minCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteNodes, ErrTooFewVertices)
		}

		cities, err := addCities(b, cfg, methodComplete, circleLayout(n, cfg.extent))
		if err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if err = addRoad(b, cfg, methodComplete, cities[i], cities[j]); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
