// SPDX-License-Identifier: MIT
// Package: citymst/builder
//
// impl_path.go - implementation of Path(n) constructor.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices).
//   - Cities sit on the x axis, evenly spaced across the extent.
//   - Emits roads (i-1)—i for i=1..n-1 in stable increasing order.
//
// Complexity: O(n) cities + O(n-1) roads.

package builder

import (
	"fmt"

	"github.com/katalvlaran/citymst/citygraph"
)

const (
	methodPath   = "Path"
	minPathNodes = 2
)

// Path returns a Constructor that builds a simple path P_n.
func Path(n int) Constructor {
	return func(b *citygraph.Builder, cfg builderConfig) error {
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}

		step := cfg.extent / float64(n-1)
		pts := make([]point, n)
		for i := range pts {
			pts[i] = point{x: roundCoord(float64(i) * step)}
		}
		cities, err := addCities(b, cfg, methodPath, pts)
		if err != nil {
			return err
		}

		for i := 1; i < n; i++ {
			if err = addRoad(b, cfg, methodPath, cities[i-1], cities[i]); err != nil {
				return err
			}
		}

		return nil
	}
}
