// SPDX-License-Identifier: MIT

package citygraph

import "fmt"

// NumNodes returns the number of cities.
func (g *Graph) NumNodes() int { return len(g.nodes) }

// NumEdges returns the number of directed edge records (twice the road count).
func (g *Graph) NumEdges() int { return len(g.edges) }

// NumRoads returns the number of undirected roads.
func (g *Graph) NumRoads() int { return len(g.edges) / 2 }

// Node returns the city with the given vertex id.
func (g *Graph) Node(id int) (CityNode, error) {
	if err := g.checkVertex(id); err != nil {
		return CityNode{}, err
	}

	return g.nodes[id], nil
}

// Name returns the city name for id, or "" when id is out of range.
func (g *Graph) Name(id int) string {
	if id < 0 || id >= len(g.nodes) {
		return ""
	}

	return g.nodes[id].Name
}

// Nodes returns a copy of all cities ordered by id.
func (g *Graph) Nodes() []CityNode {
	out := make([]CityNode, len(g.nodes))
	copy(out, g.nodes)

	return out
}

// Lookup resolves a city name to its vertex id.
func (g *Graph) Lookup(name string) (int, error) {
	id, ok := g.index[name]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrCityNotFound, name)
	}

	return id, nil
}

// FirstEdge returns the arena index of the head of id's bucket, or NoEdge
// when the vertex is isolated or id is out of range.
//
// Complexity: O(1).
func (g *Graph) FirstEdge(id int) int {
	if id < 0 || id >= len(g.head) {
		return NoEdge
	}

	return g.head[id]
}

// NextEdge returns the arena index following idx in its bucket, or NoEdge.
//
// Complexity: O(1).
func (g *Graph) NextEdge(idx int) int {
	if idx < 0 || idx >= len(g.edges) {
		return NoEdge
	}

	return g.edges[idx].next
}

// Edge returns the record at arena index idx. idx must come from
// FirstEdge/NextEdge; other values yield the zero Edge.
func (g *Graph) Edge(idx int) Edge {
	if idx < 0 || idx >= len(g.edges) {
		return Edge{next: NoEdge}
	}

	return g.edges[idx]
}

// Adjacent returns a copy of id's bucket in list order (newest first).
//
// Complexity: O(deg(id)).
func (g *Graph) Adjacent(id int) []Edge {
	var out []Edge
	for i := g.FirstEdge(id); i != NoEdge; i = g.edges[i].next {
		out = append(out, g.edges[i])
	}

	return out
}

// Degree returns the number of roads incident to id (0 for invalid ids).
func (g *Graph) Degree(id int) int {
	d := 0
	for i := g.FirstEdge(id); i != NoEdge; i = g.edges[i].next {
		d++
	}

	return d
}

// Edges enumerates every directed record: vertices in id order, each
// bucket in list order. Each road therefore appears twice.
//
// Complexity: O(V + E).
func (g *Graph) Edges() []Edge {
	out := make([]Edge, 0, len(g.edges))
	// 1. Vertices in id order.
	for v := range g.head {
		// 2. Walk v's bucket newest first.
		for i := g.head[v]; i != NoEdge; i = g.edges[i].next {
			out = append(out, g.edges[i])
		}
	}

	return out
}

// HasRoad reports whether a road u–v with exactly the given cost exists.
//
// Complexity: O(deg(u)).
func (g *Graph) HasRoad(u, v int, cost int64) bool {
	for i := g.FirstEdge(u); i != NoEdge; i = g.edges[i].next {
		if e := g.edges[i]; e.To == v && e.Cost == cost {
			return true
		}
	}

	return false
}

// Roads returns one record per undirected road in insertion order, oriented
// as it was added (From is the first city passed to AddRoad).
//
// Complexity: O(E).
func (g *Graph) Roads() []Edge {
	out := make([]Edge, 0, len(g.edges)/2)
	// Forward records sit at even arena indexes; the mirror follows.
	for i := 0; i < len(g.edges); i += 2 {
		e := g.edges[i]
		out = append(out, NewEdge(e.From, e.To, e.Cost))
	}

	return out
}
