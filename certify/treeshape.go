package certify

import (
	"fmt"

	"github.com/velmark/sptcert/wgraph"
)

// IsTreePlusIsolated reports whether t, restricted to the vertices
// reachable from root, forms a simple tree, and every unreachable vertex
// is isolated (has no outgoing edges).
//
// The traversal marks each vertex on first visit; reaching an already
// marked vertex means some vertex has in-degree > 1 or a cycle exists,
// and the check fails. Root is marked before traversal, so a
// single-vertex graph with no edges is trivially tree-shaped.
//
// Returns ErrNilGraph for a nil tree and ErrRootOutOfRange when root is
// not a valid vertex index (a precondition violation, not a soft false).
// Complexity: O(V + E).
func IsTreePlusIsolated[W wgraph.Weight](t *wgraph.Graph[W], root int) (bool, error) {
	if t == nil {
		return false, ErrNilGraph
	}
	n := t.VertexCount()
	if root < 0 || root >= n {
		return false, fmt.Errorf("%w: root %d in graph of %d vertices", ErrRootOutOfRange, root, n)
	}

	marked := make([]bool, n)
	queue := make([]int, 0, n)
	marked[root] = true
	queue = append(queue, root)
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		for v := range t.Neighbors(u) {
			if marked[v] {
				return false, nil
			}
			marked[v] = true
			queue = append(queue, v)
		}
	}

	// Every vertex outside the reachable component must be isolated.
	for v := 0; v < n; v++ {
		if !marked[v] && t.Degree(v) > 0 {
			return false, nil
		}
	}

	return true, nil
}
