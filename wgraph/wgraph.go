// Package wgraph provides a directed weighted graph over a fixed set of
// dense integer vertices, generic over any ordered, summable weight domain.
//
// Vertices are identified by indices in [0, N); N is fixed at construction.
// Each vertex owns a destination→weight adjacency mapping, so at most one
// edge exists per (origin, destination) pair and re-adding overwrites the
// stored weight (upsert semantics).
package wgraph

import (
	"fmt"
	"iter"
)

// Graph is a directed weighted graph with a fixed vertex count and
// per-vertex destination→weight adjacency.
//
// Graph is not safe for concurrent mutation. Concurrent readers are safe
// as long as no writer runs for the duration of their access.
type Graph[W Weight] struct {
	adj      []map[int]W // adj[i] maps destination j → weight of edge (i, j)
	numEdges int
}

// New returns an empty graph with n vertices and no edges.
// Returns ErrNegativeVertexCount if n < 0.
// Complexity: O(n).
func New[W Weight](n int) (*Graph[W], error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: %d", ErrNegativeVertexCount, n)
	}

	return &Graph[W]{adj: make([]map[int]W, n)}, nil
}

// VertexCount returns the number of vertices fixed at construction.
func (g *Graph[W]) VertexCount() int {
	return len(g.adj)
}

// EdgeCount returns the number of distinct directed edges currently stored.
func (g *Graph[W]) EdgeCount() int {
	return g.numEdges
}

// AddEdge inserts a directed edge from i to j with the given weight,
// overwriting the weight of an existing (i, j) edge.
// Returns ErrVertexOutOfRange if i or j lies outside [0, VertexCount);
// that is a precondition violation, not a soft failure.
// Complexity: O(1) amortized.
func (g *Graph[W]) AddEdge(i, j int, weight W) error {
	if !g.inRange(i) || !g.inRange(j) {
		return fmt.Errorf("%w: edge (%d, %d) in graph of %d vertices", ErrVertexOutOfRange, i, j, len(g.adj))
	}
	if g.adj[i] == nil {
		g.adj[i] = make(map[int]W)
	}
	if _, exists := g.adj[i][j]; !exists {
		g.numEdges++
	}
	g.adj[i][j] = weight

	return nil
}

// RemoveEdge deletes the edge from i to j if present.
// Out-of-range indices and absent edges are silently ignored.
// Complexity: O(1).
func (g *Graph[W]) RemoveEdge(i, j int) {
	if !g.inRange(i) || !g.inRange(j) {
		return
	}
	if _, exists := g.adj[i][j]; exists {
		delete(g.adj[i], j)
		g.numEdges--
	}
}

// HasEdge reports whether a directed edge from i to j exists.
// Returns false for out-of-range indices.
// Complexity: O(1).
func (g *Graph[W]) HasEdge(i, j int) bool {
	if !g.inRange(i) || !g.inRange(j) {
		return false
	}
	_, ok := g.adj[i][j]

	return ok
}

// EdgeWeight returns the weight of the edge from i to j.
// Returns ErrEdgeNotFound when the edge is absent or either index is out
// of range; a zero return value therefore always means a stored weight
// of zero, never "missing".
// Complexity: O(1).
func (g *Graph[W]) EdgeWeight(i, j int) (W, error) {
	if !g.inRange(i) || !g.inRange(j) {
		var zero W
		return zero, fmt.Errorf("%w: edge (%d, %d)", ErrEdgeNotFound, i, j)
	}
	w, ok := g.adj[i][j]
	if !ok {
		var zero W
		return zero, fmt.Errorf("%w: edge (%d, %d)", ErrEdgeNotFound, i, j)
	}

	return w, nil
}

// Neighbors returns a lazy, restartable sequence over the outgoing edges
// of v as (destination, weight) pairs. The sequence is empty for
// out-of-range v. Iteration order is implementation-defined; consumers
// must not rely on it.
// Complexity: O(deg(v)) per full iteration, O(1) to obtain.
func (g *Graph[W]) Neighbors(v int) iter.Seq2[int, W] {
	return func(yield func(int, W) bool) {
		if !g.inRange(v) {
			return
		}
		for j, w := range g.adj[v] {
			if !yield(j, w) {
				return
			}
		}
	}
}

// Degree returns the number of outgoing edges of v, or 0 when v is out
// of range.
func (g *Graph[W]) Degree(v int) int {
	if !g.inRange(v) {
		return 0
	}

	return len(g.adj[v])
}

// Clone returns a deep copy of the graph: same vertex count, same edges,
// no shared adjacency storage.
// Complexity: O(V + E).
func (g *Graph[W]) Clone() *Graph[W] {
	c := &Graph[W]{
		adj:      make([]map[int]W, len(g.adj)),
		numEdges: g.numEdges,
	}
	for i, nbrs := range g.adj {
		if nbrs == nil {
			continue
		}
		c.adj[i] = make(map[int]W, len(nbrs))
		for j, w := range nbrs {
			c.adj[i][j] = w
		}
	}

	return c
}

// inRange reports whether v is a valid vertex index.
func (g *Graph[W]) inRange(v int) bool {
	return v >= 0 && v < len(g.adj)
}
