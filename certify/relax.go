package certify

import (
	"fmt"

	"github.com/velmark/sptcert/wgraph"
)

// AllEdgesRelaxed reports whether dist is the true shortest-distance
// vector from source in g, by the Bellman–Ford optimality certificate:
// dist[source] must be zero, and for every edge (u, v, w) with finite
// dist[u] the inequality dist[v] ≤ dist[u] + w must hold. Edges leaving
// an infinite-distance vertex satisfy the certificate vacuously.
//
// A false result means some edge is "not relaxed" — a shorter path than
// the one dist records exists. That includes distance vectors produced in
// the presence of negative cycles; no separate cycle detection is done.
//
// Returns ErrNilGraph for a nil graph, ErrDistanceLength when dist does
// not have one entry per vertex, and ErrRootOutOfRange for an invalid
// source index.
// Complexity: O(V + E).
func AllEdgesRelaxed[W wgraph.Weight](dist []W, g *wgraph.Graph[W], source int) (bool, error) {
	if g == nil {
		return false, ErrNilGraph
	}
	n := g.VertexCount()
	if len(dist) != n {
		return false, fmt.Errorf("%w: got %d entries for %d vertices", ErrDistanceLength, len(dist), n)
	}
	if source < 0 || source >= n {
		return false, fmt.Errorf("%w: source %d in graph of %d vertices", ErrRootOutOfRange, source, n)
	}

	if dist[source] != 0 {
		return false, nil
	}
	inf := wgraph.Infinity[W]()
	for u := 0; u < n; u++ {
		if dist[u] == inf {
			continue
		}
		for v, w := range g.Neighbors(u) {
			if dist[v] > dist[u]+w {
				return false, nil
			}
		}
	}

	return true, nil
}
