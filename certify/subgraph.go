package certify

import "github.com/velmark/sptcert/wgraph"

// IsSubgraph reports whether every edge of h also exists in g with an
// identical weight.
//
// It fails fast when h has more vertices than g. Vertices of h that are
// not the origin of any edge are not checked beyond that count bound.
// Returns ErrNilGraph if either graph is nil.
// Complexity: O(V(h) + E(h)).
func IsSubgraph[W wgraph.Weight](h, g *wgraph.Graph[W]) (bool, error) {
	if h == nil || g == nil {
		return false, ErrNilGraph
	}
	if h.VertexCount() > g.VertexCount() {
		return false, nil
	}
	for v := 0; v < h.VertexCount(); v++ {
		for w, weight := range h.Neighbors(v) {
			got, err := g.EdgeWeight(v, w)
			if err != nil || got != weight {
				return false, nil
			}
		}
	}

	return true, nil
}
