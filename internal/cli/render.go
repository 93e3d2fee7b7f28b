// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/cheynewallace/tabby"

	"github.com/katalvlaran/citymst/citygraph"
	"github.com/katalvlaran/citymst/prim_kruskal"
)

func newTable(w io.Writer) *tabby.Tabby {
	return tabby.NewCustom(tabwriter.NewWriter(w, 0, 0, 2, ' ', 0))
}

// renderTree prints one tree as a FROM/TO/COST table and a summary line.
func renderTree(w io.Writer, g *citygraph.Graph, r result, comps int) {
	fmt.Fprintf(w, "\n[%s]\n", r.method)
	t := newTable(w)
	t.AddHeader("FROM", "TO", "COST")
	for _, e := range r.edges {
		t.AddLine(g.Name(e.From), g.Name(e.To), e.Cost)
	}
	t.Print()

	shape := "spanning tree"
	switch {
	case comps <= 1:
	case r.method == prim_kruskal.MethodPrim:
		shape = fmt.Sprintf("source component only, graph has %d components", comps)
	default:
		shape = fmt.Sprintf("forest, graph has %d components", comps)
	}
	fmt.Fprintf(w, "Total cost: %d (%d roads, %s)\n", r.total, len(r.edges), shape)
}
