// SPDX-License-Identifier: MIT

package citygraph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/citymst/citygraph"
)

// buildSquare constructs cities A,B,C,D with roads
//
//	A—B(1), B—C(2), C—D(1), D—A(3), A—C(2)
//
// declared in that order.
func buildSquare(t *testing.T) *citygraph.Graph {
	t.Helper()

	b := citygraph.NewBuilder(4)
	for i, name := range []string{"A", "B", "C", "D"} {
		id, err := b.AddCity(name, float64(i), float64(i*i))
		require.NoError(t, err)
		require.Equal(t, i, id) // ids are dense, in declaration order
	}
	require.NoError(t, b.AddRoad("A", "B", 1))
	require.NoError(t, b.AddRoad("B", "C", 2))
	require.NoError(t, b.AddRoad("C", "D", 1))
	require.NoError(t, b.AddRoad("D", "A", 3))
	require.NoError(t, b.AddRoad("A", "C", 2))

	return b.Build()
}

func TestGraph_Counts(t *testing.T) {
	g := buildSquare(t)

	assert.Equal(t, 4, g.NumNodes())
	assert.Equal(t, 10, g.NumEdges()) // two directed records per road
	assert.Equal(t, 5, g.NumRoads())
	assert.Len(t, g.Edges(), 10)
}

// TestGraph_BucketOrder locks in most-recently-added-first ordering.
func TestGraph_BucketOrder(t *testing.T) {
	g := buildSquare(t)

	// A's roads were added as A-B, D-A, A-C, so the bucket reads C, D, B.
	var to []int
	for i := g.FirstEdge(0); i != citygraph.NoEdge; i = g.NextEdge(i) {
		e := g.Edge(i)
		assert.Equal(t, 0, e.From)
		to = append(to, e.To)
	}
	assert.Equal(t, []int{2, 3, 1}, to)

	adj := g.Adjacent(0)
	require.Len(t, adj, 3)
	assert.Equal(t, int64(2), adj[0].Cost)
	assert.Equal(t, 3, g.Degree(0))
}

// TestGraph_ReverseRecords verifies every directed record has its mirror.
func TestGraph_ReverseRecords(t *testing.T) {
	g := buildSquare(t)

	for _, e := range g.Edges() {
		assert.True(t, g.HasRoad(e.To, e.From, e.Cost), "missing mirror of %s", e)
	}
}

func TestGraph_Roads(t *testing.T) {
	g := buildSquare(t)

	roads := g.Roads()
	require.Len(t, roads, 5)
	assert.Equal(t, citygraph.NewEdge(0, 1, 1), roads[0]) // A-B as declared
	assert.Equal(t, citygraph.NewEdge(3, 0, 3), roads[3]) // D-A keeps its orientation
	assert.Equal(t, citygraph.NewEdge(0, 2, 2), roads[4])
}

func TestGraph_NodeAndLookup(t *testing.T) {
	g := buildSquare(t)

	n, err := g.Node(2)
	require.NoError(t, err)
	assert.Equal(t, "C", n.Name)
	assert.Equal(t, 2.0, n.X)
	assert.Equal(t, 4.0, n.Y)

	_, err = g.Node(4)
	assert.ErrorIs(t, err, citygraph.ErrVertexOutOfRange)
	_, err = g.Node(-1)
	assert.ErrorIs(t, err, citygraph.ErrVertexOutOfRange)

	id, err := g.Lookup("D")
	require.NoError(t, err)
	assert.Equal(t, 3, id)
	_, err = g.Lookup("Z")
	assert.ErrorIs(t, err, citygraph.ErrCityNotFound)

	assert.Equal(t, "B", g.Name(1))
	assert.Empty(t, g.Name(9))
	assert.Len(t, g.Nodes(), 4)
}

func TestGraph_IsolatedVertex(t *testing.T) {
	b := citygraph.NewBuilder(0)
	_, err := b.AddCity("Solo", 0, 0)
	require.NoError(t, err)
	g := b.Build()

	assert.Equal(t, citygraph.NoEdge, g.FirstEdge(0))
	assert.Equal(t, citygraph.NoEdge, g.FirstEdge(7)) // out of range reads as isolated
	assert.Empty(t, g.Adjacent(0))
	assert.Equal(t, citygraph.NoEdge, g.NextEdge(42))
	assert.Equal(t, citygraph.NewEdge(0, 0, 0), g.Edge(42))
}

func TestBuilder_Errors(t *testing.T) {
	b := citygraph.NewBuilder(2)

	_, err := b.AddCity("", 0, 0)
	assert.ErrorIs(t, err, citygraph.ErrEmptyName)

	_, err = b.AddCity("X", 0, 0)
	require.NoError(t, err)
	_, err = b.AddCity("X", 1, 1)
	assert.ErrorIs(t, err, citygraph.ErrDuplicateCity)

	assert.ErrorIs(t, b.AddRoad("X", "Y", 5), citygraph.ErrCityNotFound)
	assert.ErrorIs(t, b.AddRoad("Y", "X", 5), citygraph.ErrCityNotFound)

	_, err = b.AddCity("Y", 1, 1)
	require.NoError(t, err)
	assert.ErrorIs(t, b.AddRoad("X", "Y", -1), citygraph.ErrNegativeCost)
	assert.ErrorIs(t, b.AddRoad("X", "Y", citygraph.MaxCost+1), citygraph.ErrCostTooLarge)
	assert.ErrorIs(t, b.AddRoadByID(0, 2, 1), citygraph.ErrVertexOutOfRange)
	require.NoError(t, b.AddRoad("X", "Y", 5))

	id, ok := b.Lookup("Y")
	assert.True(t, ok)
	assert.Equal(t, 1, id)
	assert.Equal(t, 2, b.Len())

	g := b.Build()
	assert.Same(t, g, b.Build())

	// Sealed: the graph stays immutable.
	_, err = b.AddCity("Z", 0, 0)
	assert.ErrorIs(t, err, citygraph.ErrSealed)
	assert.ErrorIs(t, b.AddRoad("X", "Y", 1), citygraph.ErrSealed)
	assert.ErrorIs(t, b.AddRoadByID(0, 1, 1), citygraph.ErrSealed)
	assert.Equal(t, 1, g.NumRoads())
}

func TestEdge_Helpers(t *testing.T) {
	e := citygraph.NewEdge(1, 2, 7)
	assert.Equal(t, "1-2(7)", e.String())
	assert.Equal(t, citygraph.NewEdge(2, 1, 7), e.Reverse())
}
