// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/katalvlaran/citymst/citygraph"
)

// MinRoadCost is the cost floor of EuclideanCost, so coincident cities
// still get a positive road.
const MinRoadCost int64 = 1

// CostFn produces the cost of a road between a and b given an optional
// *rand.Rand source. It must be deterministic for a given RNG seed.
type CostFn func(a, b citygraph.CityNode, rng *rand.Rand) int64

// EuclideanCost returns the straight-line distance between a and b rounded
// to the nearest integer, never below MinRoadCost.
// Complexity: O(1). Never panics.
func EuclideanCost(a, b citygraph.CityNode, _ *rand.Rand) int64 {
	d := int64(math.Round(math.Hypot(a.X-b.X, a.Y-b.Y)))
	if d < MinRoadCost {
		return MinRoadCost
	}

	return d
}

// ConstantCost returns a CostFn that always yields value.
// Panics if value < 0.
func ConstantCost(value int64) CostFn {
	if value < 0 {
		panic(fmt.Sprintf("ConstantCost: value must be ≥ 0, got %d", value))
	}

	return func(_, _ citygraph.CityNode, _ *rand.Rand) int64 {
		return value
	}
}

// UniformCost returns a CostFn sampling uniformly in [min, max] inclusive.
// Panics if min < 0 or max < min.
// If rng is nil, yields min to keep a deterministic fallback.
func UniformCost(min, max int64) CostFn {
	if min < 0 || max < min {
		panic(fmt.Sprintf("UniformCost: require 0 ≤ min ≤ max, got min=%d, max=%d", min, max))
	}

	span := max - min + 1
	return func(_, _ citygraph.CityNode, rng *rand.Rand) int64 {
		if rng == nil || span == 1 {
			return min
		}

		return min + rng.Int63n(span)
	}
}
