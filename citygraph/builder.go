// SPDX-License-Identifier: MIT

package citygraph

import "fmt"

// Builder stages cities and roads and seals them into a Graph.
// A Builder is not safe for concurrent use.
type Builder struct {
	g      *Graph
	sealed bool
}

// NewBuilder returns an empty Builder. capacity is a hint for the number
// of cities and may be zero.
//
// Complexity: O(capacity).
func NewBuilder(capacity int) *Builder {
	if capacity < 0 {
		capacity = 0
	}

	return &Builder{g: &Graph{
		nodes: make([]CityNode, 0, capacity),
		head:  make([]int, 0, capacity),
		edges: make([]Edge, 0, 2*capacity),
		index: make(map[string]int, capacity),
	}}
}

// AddCity declares a city and returns its vertex id. Ids are dense and
// assigned in declaration order.
//
// Complexity: O(1) amortized.
func (b *Builder) AddCity(name string, x, y float64) (int, error) {
	// 1. Validate builder state and the name.
	if b.sealed {
		return 0, ErrSealed
	}
	if name == "" {
		return 0, ErrEmptyName
	}
	if _, ok := b.g.index[name]; ok {
		return 0, fmt.Errorf("%w: %q", ErrDuplicateCity, name)
	}

	// 2. Assign the next dense id and open an empty bucket.
	id := len(b.g.nodes)
	b.g.nodes = append(b.g.nodes, CityNode{ID: id, Name: name, X: x, Y: y})
	b.g.head = append(b.g.head, NoEdge)
	b.g.index[name] = id

	return id, nil
}

// AddRoad connects two declared cities by name. See AddRoadByID.
func (b *Builder) AddRoad(from, to string, cost int64) error {
	if b.sealed {
		return ErrSealed
	}
	u, ok := b.g.index[from]
	if !ok {
		return fmt.Errorf("%w: %q", ErrCityNotFound, from)
	}
	v, ok := b.g.index[to]
	if !ok {
		return fmt.Errorf("%w: %q", ErrCityNotFound, to)
	}

	return b.AddRoadByID(u, v, cost)
}

// AddRoadByID connects vertices u and v with an undirected road.
// The record u→v is linked into u's bucket first, then v→u into v's, each
// becoming the new head of its bucket. cost must lie in [0, MaxCost].
//
// Complexity: O(1) amortized.
func (b *Builder) AddRoadByID(u, v int, cost int64) error {
	// 1. Sealed builders are read-only.
	if b.sealed {
		return ErrSealed
	}
	// 2. Both endpoints must already be declared.
	if err := b.g.checkVertex(u); err != nil {
		return err
	}
	if err := b.g.checkVertex(v); err != nil {
		return err
	}
	// 3. Cost range check.
	if cost < 0 {
		return fmt.Errorf("%w: %d-%d cost=%d", ErrNegativeCost, u, v, cost)
	}
	if cost > MaxCost {
		return fmt.Errorf("%w: %d-%d cost=%d max=%d", ErrCostTooLarge, u, v, cost, MaxCost)
	}

	// 4. Link both directed records, forward first.
	b.link(u, v, cost)
	b.link(v, u, cost)

	return nil
}

// link prepends the record from→to onto from's bucket.
func (b *Builder) link(from, to int, cost int64) {
	idx := len(b.g.edges)
	b.g.edges = append(b.g.edges, Edge{From: from, To: to, Cost: cost, next: b.g.head[from]})
	b.g.head[from] = idx
}

// Len reports the number of cities declared so far.
func (b *Builder) Len() int { return len(b.g.nodes) }

// Lookup resolves a declared city name to its vertex id.
func (b *Builder) Lookup(name string) (int, bool) {
	id, ok := b.g.index[name]

	return id, ok
}

// Build seals the builder and returns the Graph. Further mutations on the
// builder return ErrSealed; Build itself may be called again and returns
// the same Graph.
func (b *Builder) Build() *Graph {
	b.sealed = true

	return b.g
}
