// SPDX-License-Identifier: MIT

package citygraph

import (
	"errors"
	"fmt"
	"math"
)

// Sentinel errors for graph construction and queries.
var (
	// ErrEmptyName indicates a city declared with an empty name.
	ErrEmptyName = errors.New("citygraph: city name is empty")

	// ErrDuplicateCity indicates a city name declared more than once.
	ErrDuplicateCity = errors.New("citygraph: duplicate city")

	// ErrCityNotFound indicates a lookup of a name that was never declared.
	ErrCityNotFound = errors.New("citygraph: city not found")

	// ErrNegativeCost indicates a road with a negative distance.
	ErrNegativeCost = errors.New("citygraph: negative road cost")

	// ErrCostTooLarge indicates a road cost above MaxCost.
	ErrCostTooLarge = errors.New("citygraph: road cost too large")

	// ErrVertexOutOfRange indicates a vertex id outside [0, NumNodes()).
	ErrVertexOutOfRange = errors.New("citygraph: vertex id out of range")

	// ErrSealed indicates a Builder mutation after Build has been called.
	ErrSealed = errors.New("citygraph: builder already built")
)

// NoEdge terminates a vertex bucket and marks an isolated vertex.
const NoEdge = -1

// MaxCost is the largest accepted road cost. math.MaxInt64 is reserved as
// the "unreachable" priority of the MST frontier.
const MaxCost int64 = math.MaxInt64 - 1

// CityNode is a named point. Coordinates are display data only; the
// algorithms never read them.
type CityNode struct {
	// ID is the dense vertex id assigned in declaration order.
	ID int

	// Name is the unique city key used by the input format.
	Name string

	// X, Y are the city coordinates, carried through unchanged.
	X, Y float64
}

// Edge is one directed record of an undirected road.
type Edge struct {
	From int   // source vertex id; the bucket this record lives in
	To   int   // destination vertex id
	Cost int64 // road distance in [0, MaxCost]

	next int // arena index of the next record in From's bucket, or NoEdge
}

// NewEdge returns a standalone record that is not linked into any bucket.
// Algorithms use it for the edges they hand back to callers.
func NewEdge(from, to int, cost int64) Edge {
	return Edge{From: from, To: to, Cost: cost, next: NoEdge}
}

// String renders the edge as "from-to(cost)" using vertex ids.
func (e Edge) String() string {
	return fmt.Sprintf("%d-%d(%d)", e.From, e.To, e.Cost)
}

// Reverse returns the mirror record To→From with the same cost.
func (e Edge) Reverse() Edge {
	return NewEdge(e.To, e.From, e.Cost)
}

// Graph is the immutable road network. Build one with NewBuilder.
type Graph struct {
	nodes []CityNode     // vertex id → city
	head  []int          // vertex id → first arena index, or NoEdge
	edges []Edge         // edge arena
	index map[string]int // city name → vertex id
}

// checkVertex validates a vertex id against the node count.
func (g *Graph) checkVertex(id int) error {
	if id < 0 || id >= len(g.nodes) {
		return fmt.Errorf("%w: %d not in [0,%d)", ErrVertexOutOfRange, id, len(g.nodes))
	}

	return nil
}
