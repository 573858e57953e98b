package wgraph

import (
	"fmt"
	"sort"
	"strings"
)

// String renders the graph for diagnostics: one line per vertex in index
// order, listing its outgoing edges as "(i, j)[weight]" tuples.
// Destinations are sorted ascending so the output is reproducible; the
// format is not a contract surface and is never re-parsed.
// Complexity: O(V + E log E).
func (g *Graph[W]) String() string {
	var b strings.Builder
	for i := range g.adj {
		fmt.Fprintf(&b, "%d:", i)
		dests := make([]int, 0, len(g.adj[i]))
		for j := range g.adj[i] {
			dests = append(dests, j)
		}
		sort.Ints(dests)
		for _, j := range dests {
			fmt.Fprintf(&b, " (%d, %d)[%v]", i, j, g.adj[i][j])
		}
		b.WriteByte('\n')
	}

	return b.String()
}
