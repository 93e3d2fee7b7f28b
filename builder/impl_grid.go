// SPDX-License-Identifier: MIT
// Package: citymst/builder
//
// impl_grid.go — implementation of Grid(rows, cols) constructor.
//
// Canonical model:
//   • 2D orthogonal grid with 4-neighborhood (right & bottom neighbors per cell).
//   • City names use a fixed scheme "r,c" (row-major order). This is a
//     deliberate exception to cfg.nameFn to keep coordinates explicit.
//
// Contract:
//   • rows ≥ 1 and cols ≥ 1 (else ErrTooFewVertices).
//   • Cell (r,c) sits at (c·step, r·step) with step = extent / max(rows-1, cols-1, 1).
//   • For each (r,c) emits Right then Bottom if present.
//
// Complexity: O(rows*cols) cities + O(rows*cols) roads.

package builder

import (
	"fmt"

	"github.com/katalvlaran/citymst/citygraph"
)

const (
	methodGrid  = "Grid"
	minGridDim  = 1
	gridNameFmt = "%d,%d"
)

// Grid returns a Constructor that builds a rows×cols lattice.
func Grid(rows, cols int) Constructor {
	return func(b *citygraph.Builder, cfg builderConfig) error {
		if rows < minGridDim || cols < minGridDim {
			return fmt.Errorf("%s: rows=%d, cols=%d < min=%d: %w", methodGrid, rows, cols, minGridDim, ErrTooFewVertices)
		}

		step := cfg.extent / float64(max(rows-1, cols-1, 1))
		cfg.nameFn = func(i int) string { return fmt.Sprintf(gridNameFmt, i/cols, i%cols) }
		pts := make([]point, 0, rows*cols)
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				pts = append(pts, point{x: roundCoord(float64(c) * step), y: roundCoord(float64(r) * step)})
			}
		}
		cities, err := addCities(b, cfg, methodGrid, pts)
		if err != nil {
			return err
		}

		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				cur := cities[r*cols+c]
				if c+1 < cols {
					if err = addRoad(b, cfg, methodGrid, cur, cities[r*cols+c+1]); err != nil {
						return err
					}
				}
				if r+1 < rows {
					if err = addRoad(b, cfg, methodGrid, cur, cities[(r+1)*cols+c]); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}
