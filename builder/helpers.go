// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"
	"math"

	"github.com/katalvlaran/citymst/citygraph"
)

// point is a layout position.
type point struct{ x, y float64 }

// addCities inserts one city per point, named by cfg.nameFn(i), and
// returns the placed cities in order (ids as assigned by b).
// Complexity: O(len(pts)).
func addCities(b *citygraph.Builder, cfg builderConfig, method string, pts []point) ([]citygraph.CityNode, error) {
	cities := make([]citygraph.CityNode, len(pts))
	for i, p := range pts {
		name := cfg.nameFn(i)
		id, err := b.AddCity(name, p.x, p.y)
		if err != nil {
			return nil, fmt.Errorf("%s: AddCity(%s): %w", method, name, err)
		}
		cities[i] = citygraph.CityNode{ID: id, Name: name, X: p.x, Y: p.y}
	}

	return cities, nil
}

// addRoad costs u—v via cfg.costFn and links it.
func addRoad(b *citygraph.Builder, cfg builderConfig, method string, u, v citygraph.CityNode) error {
	cost := cfg.costFn(u, v, cfg.rng)
	if err := b.AddRoadByID(u.ID, v.ID, cost); err != nil {
		return fmt.Errorf("%s: AddRoad(%s—%s, c=%d): %w", method, u.Name, v.Name, cost, err)
	}

	return nil
}

// circleLayout spaces n points evenly on the circle inscribed in the
// layout square, starting at angle 0 and turning counter-clockwise.
func circleLayout(n int, extent float64) []point {
	pts := make([]point, n)
	r := extent / 2
	for i := 0; i < n; i++ {
		a := 2 * math.Pi * float64(i) / float64(n)
		pts[i] = point{x: roundCoord(r + r*math.Cos(a)), y: roundCoord(r + r*math.Sin(a))}
	}

	return pts
}

// roundCoord trims layout coordinates to 1e-3 so files stay readable.
func roundCoord(v float64) float64 {
	return math.Round(v*1000) / 1000
}
