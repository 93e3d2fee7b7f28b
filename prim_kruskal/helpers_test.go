// SPDX-License-Identifier: MIT

package prim_kruskal_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/citymst/citygraph"
)

// road is a fixture road between two named cities.
type road struct {
	from, to string
	cost     int64
}

// buildGraph declares cities in order (coordinates are irrelevant to the
// algorithms) and then adds roads in order.
func buildGraph(t testing.TB, cities []string, roads []road) *citygraph.Graph {
	t.Helper()

	b := citygraph.NewBuilder(len(cities))
	for i, name := range cities {
		_, err := b.AddCity(name, float64(i), 0)
		require.NoError(t, err)
	}
	for _, r := range roads {
		require.NoError(t, b.AddRoad(r.from, r.to, r.cost))
	}

	return b.Build()
}

// buildSquareDiagonal is the 4-city square A-B-C-D plus the A-C diagonal.
// Its MST weight is 4.
func buildSquareDiagonal(t testing.TB) *citygraph.Graph {
	return buildGraph(t, []string{"A", "B", "C", "D"}, []road{
		{"A", "B", 1},
		{"B", "C", 2},
		{"C", "D", 1},
		{"D", "A", 3},
		{"A", "C", 2},
	})
}

// buildMediumGraph creates a connected graph with n cities and edgesCount roads.
//   - A chain V0—V1—...—V(n-1) with costs in [1..10] guarantees connectivity.
//   - Extra random roads with costs in [1..100] fill up to edgesCount; parallel
//     roads are allowed.
//
// The generator is seeded with a fixed value so the graph is reproducible.
func buildMediumGraph(t testing.TB, n, edgesCount int) *citygraph.Graph {
	t.Helper()

	b := citygraph.NewBuilder(n)
	r := rand.New(rand.NewSource(42))
	for i := 0; i < n; i++ {
		_, err := b.AddCity(fmt.Sprintf("V%d", i), r.Float64()*100, r.Float64()*100)
		require.NoError(t, err)
	}
	for i := 1; i < n; i++ {
		require.NoError(t, b.AddRoadByID(i-1, i, 1+r.Int63n(10)))
	}
	for extra := edgesCount - (n - 1); extra > 0; {
		u, v := r.Intn(n), r.Intn(n)
		if u == v {
			continue
		}
		require.NoError(t, b.AddRoadByID(u, v, 1+r.Int63n(100)))
		extra--
	}

	return b.Build()
}

// names renders an edge list as "From-To" city names.
func names(g *citygraph.Graph, edges []citygraph.Edge) []string {
	out := make([]string, 0, len(edges))
	for _, e := range edges {
		out = append(out, g.Name(e.From)+"-"+g.Name(e.To))
	}

	return out
}
