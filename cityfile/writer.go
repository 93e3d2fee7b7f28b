// SPDX-License-Identifier: MIT

package cityfile

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/katalvlaran/citymst/citygraph"
)

// ErrNilGraph is returned by Write for a nil graph.
var ErrNilGraph = errors.New("cityfile: graph is nil")

// Write emits g in the NODES/ARCS format. Cities appear in id order and
// roads in insertion order, each road once, so Read(Write(g)) rebuilds an
// identical graph.
func Write(w io.Writer, g *citygraph.Graph) error {
	if g == nil {
		return ErrNilGraph
	}

	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, KeywordNodes)
	fmt.Fprintln(bw, g.NumNodes())
	for _, c := range g.Nodes() {
		fmt.Fprintf(bw, "%s %s %s\n", c.Name, formatCoord(c.X), formatCoord(c.Y))
	}
	fmt.Fprintln(bw, KeywordArcs)
	for _, r := range g.Roads() {
		fmt.Fprintf(bw, "%s %s %d\n", g.Name(r.From), g.Name(r.To), r.Cost)
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("cityfile: write: %w", err)
	}

	return nil
}

func formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
