// Package certify implements the composite shortest-path-tree
// verification protocol and its four stages.
package certify

import (
	"fmt"

	"github.com/velmark/sptcert/wgraph"
)

// Verify runs the full certification protocol: the candidate t is the
// shortest-path tree of g rooted at root iff
//
//	IsSubgraph(t, g) ∧ IsTreePlusIsolated(t, root) ∧
//	AllEdgesRelaxed(PathLengthsFromRoot(t, root), g, root).
//
// Stages short-circuit on first failure; the Result records which stage
// rejected the candidate via Reason. t must use the same vertex indexing
// convention as g; a candidate with fewer vertices than g is allowed, and
// its missing vertices are treated as unreached (infinite distance).
//
// Returns ErrNilGraph for nil inputs, ErrRootOutOfRange when root is not
// a valid index of t, or ErrOptionViolation for invalid options. A
// rejected candidate is a normal outcome, never an error.
// Complexity: O(V + E) over both graphs.
func Verify[W wgraph.Weight](g, t *wgraph.Graph[W], root int, opts ...Option) (*Result[W], error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if g == nil || t == nil {
		return nil, ErrNilGraph
	}
	if root < 0 || root >= t.VertexCount() {
		return nil, fmt.Errorf("%w: root %d in tree of %d vertices", ErrRootOutOfRange, root, t.VertexCount())
	}

	o.OnStage(StageSubgraph)
	ok, err := IsSubgraph(t, g)
	if err != nil {
		return nil, err
	}
	if !ok {
		return &Result[W]{Reason: ReasonNotSubgraph}, nil
	}

	if err = o.Ctx.Err(); err != nil {
		return nil, err
	}
	o.OnStage(StageTreeShape)
	ok, err = IsTreePlusIsolated(t, root)
	if err != nil {
		return nil, err
	}
	if !ok {
		return &Result[W]{Reason: ReasonNotTree}, nil
	}

	if err = o.Ctx.Err(); err != nil {
		return nil, err
	}
	o.OnStage(StageDistances)
	dist, err := PathLengthsFromRoot(t, root)
	if err != nil {
		return nil, err
	}
	// The subgraph stage guarantees t has at most as many vertices as g;
	// vertices of g beyond t's range are unreached by the tree.
	if len(dist) < g.VertexCount() {
		inf := wgraph.Infinity[W]()
		for v := len(dist); v < g.VertexCount(); v++ {
			dist = append(dist, inf)
		}
	}

	if err = o.Ctx.Err(); err != nil {
		return nil, err
	}
	o.OnStage(StageRelaxation)
	ok, err = AllEdgesRelaxed(dist, g, root)
	if err != nil {
		return nil, err
	}
	if !ok {
		return &Result[W]{Reason: ReasonNotOptimal, Distances: dist}, nil
	}

	return &Result[W]{OK: true, Reason: ReasonNone, Distances: dist}, nil
}
