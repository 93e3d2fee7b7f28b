// SPDX-License-Identifier: MIT
// Package: citymst/builder
//
// impl_star.go - implementation of Star(n) constructor.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices).
//   - City 0 is the hub, placed at the center of the layout; the n-1
//     leaves named by cfg.nameFn(1..n-1) are spread on a circle.
//   - Emits hub—leaf roads in leaf order.
//
// Complexity: O(n) cities + O(n-1) roads.

package builder

import (
	"fmt"

	"github.com/katalvlaran/citymst/citygraph"
)

const (
	methodStar   = "Star"
	minStarNodes = 2
)

// Star returns a Constructor that builds a hub with n-1 spokes.
func Star(n int) Constructor {
	return func(b *citygraph.Builder, cfg builderConfig) error {
		if n < minStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewVertices)
		}

		c := cfg.extent / 2
		pts := append([]point{{x: c, y: c}}, circleLayout(n-1, cfg.extent)...)
		cities, err := addCities(b, cfg, methodStar, pts)
		if err != nil {
			return err
		}
		for _, leaf := range cities[1:] {
			if err = addRoad(b, cfg, methodStar, cities[0], leaf); err != nil {
				return err
			}
		}

		return nil
	}
}
