// SPDX-License-Identifier: MIT

package prim_kruskal_test

import (
	"fmt"

	"github.com/katalvlaran/citymst/citygraph"
	"github.com/katalvlaran/citymst/prim_kruskal"
)

// mustGraph declares the named cities and roads; it panics on fixture errors.
func mustGraph(cities []string, roads []road) *citygraph.Graph {
	b := citygraph.NewBuilder(len(cities))
	for i, name := range cities {
		if _, err := b.AddCity(name, float64(i), 0); err != nil {
			panic(err)
		}
	}
	for _, r := range roads {
		if err := b.AddRoad(r.from, r.to, r.cost); err != nil {
			panic(err)
		}
	}

	return b.Build()
}

func printMST(g *citygraph.Graph, edges []citygraph.Edge, total int64) {
	fmt.Printf("Total: %d, Edges:", total)
	for _, e := range edges {
		fmt.Printf(" %s-%s", g.Name(e.From), g.Name(e.To))
	}
	fmt.Println()
}

// ExampleKruskal demonstrates Kruskal's algorithm on a triangle.
// The MST is {A–B, B–C} with total weight 3.
func ExampleKruskal() {
	g := mustGraph([]string{"A", "B", "C"}, []road{
		{"A", "B", 1},
		{"B", "C", 2},
		{"A", "C", 4},
	})

	edges, total, err := prim_kruskal.Kruskal(g)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	printMST(g, edges, total)
	// Output: Total: 3, Edges: A-B B-C
}

// ExampleKruskal_envelope runs Kruskal on a 4-city "letter envelope":
// A—B(4), A—C(1), C—B(2), B—D(3), C—D(5), D—A(4). MST weight is 6.
func ExampleKruskal_envelope() {
	g := mustGraph([]string{"A", "B", "C", "D"}, []road{
		{"A", "B", 4},
		{"A", "C", 1},
		{"C", "B", 2},
		{"B", "D", 3},
		{"C", "D", 5},
		{"D", "A", 4},
	})

	edges, total, _ := prim_kruskal.Kruskal(g)
	printMST(g, edges, total)
	// Output: Total: 6, Edges: A-C B-C B-D
}

// ExamplePrim grows a tree from A over seven cities; edges are listed in
// the order the cities join the tree.
func ExamplePrim() {
	g := mustGraph([]string{"A", "B", "C", "D", "E", "F", "G"}, []road{
		{"A", "B", 2},
		{"B", "C", 1},
		{"D", "E", 1},
		{"E", "G", 2},
		{"F", "G", 3},
		{"A", "C", 3},
		{"B", "D", 4},
		{"C", "E", 5},
		{"E", "F", 6},
		{"D", "F", 7},
	})

	edges, total, err := prim_kruskal.Prim(g, 0)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	printMST(g, edges, total)
	// Output: Total: 13, Edges: A-B B-C B-D D-E E-G G-F
}

// ExampleCompute_requireSpanning shows how a forest is rejected on demand.
func ExampleCompute_requireSpanning() {
	g := mustGraph([]string{"Iso", "P", "Q"}, []road{{"P", "Q", 4}})

	_, _, err := prim_kruskal.Compute(g, prim_kruskal.DefaultOptions(prim_kruskal.WithRequireSpanning()))
	fmt.Println(err)
	// Output: prim_kruskal: graph is disconnected
}

// ExampleNewPrim uses the strategy object form.
func ExampleNewPrim() {
	g := mustGraph([]string{"X", "Y"}, []road{{"X", "Y", 5}})

	algo := prim_kruskal.NewPrim(g, 1)
	if err := algo.ComputeMST(); err != nil {
		fmt.Println("error:", err)
		return
	}
	printMST(g, algo.Edges(), algo.TotalCost())
	// Output: Total: 5, Edges: Y-X
}
