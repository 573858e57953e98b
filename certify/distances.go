package certify

import (
	"fmt"

	"github.com/velmark/sptcert/wgraph"
)

// PathLengthsFromRoot computes the distance from root to every vertex of
// the tree t by a breadth-first traversal, returning a freshly allocated
// vector with one entry per vertex. Unreachable vertices hold
// wgraph.Infinity; dist[root] is always zero.
//
// The relaxation step (update when d + w < dist[v]) is written in the
// general form, but because t must already have passed IsTreePlusIsolated
// each non-root vertex is reached through exactly one incoming edge, so
// every update is the first and only write — the result equals the sum of
// edge weights along the unique root-to-vertex path.
//
// Returns ErrNilGraph for a nil tree and ErrRootOutOfRange for an invalid
// root index.
// Complexity: O(V + E).
func PathLengthsFromRoot[W wgraph.Weight](t *wgraph.Graph[W], root int) ([]W, error) {
	if t == nil {
		return nil, ErrNilGraph
	}
	n := t.VertexCount()
	if root < 0 || root >= n {
		return nil, fmt.Errorf("%w: root %d in graph of %d vertices", ErrRootOutOfRange, root, n)
	}

	inf := wgraph.Infinity[W]()
	dist := make([]W, n)
	for v := range dist {
		dist[v] = inf
	}
	dist[root] = 0

	queue := make([]int, 0, n)
	queue = append(queue, root)
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		for v, w := range t.Neighbors(u) {
			if dist[u]+w < dist[v] {
				dist[v] = dist[u] + w
				queue = append(queue, v)
			}
		}
	}

	return dist, nil
}
