// Package wgraph defines the weight-domain constraint and sentinel errors
// for the generic weighted digraph container.
package wgraph

import (
	"errors"
	"math"
	"unsafe"

	"golang.org/x/exp/constraints"
)

// Weight constrains the edge-weight domain: any built-in (or derived)
// integer or floating-point type. The domain must support addition,
// ordering, equality, and a distinguished Infinity value — all of which
// the constraint guarantees.
type Weight interface {
	constraints.Integer | constraints.Float
}

// Sentinel errors for graph construction and queries.
var (
	// ErrNegativeVertexCount is returned when a graph is constructed with n < 0.
	ErrNegativeVertexCount = errors.New("wgraph: vertex count must be non-negative")

	// ErrVertexOutOfRange is returned when AddEdge references a vertex
	// index outside [0, VertexCount). This signals caller misuse.
	ErrVertexOutOfRange = errors.New("wgraph: vertex index out of range")

	// ErrEdgeNotFound is returned by EdgeWeight when the requested edge
	// does not exist. It is never conflated with a stored weight of zero.
	ErrEdgeNotFound = errors.New("wgraph: edge not found")

	// ErrOpenSource is returned by FromFile when the edge-list source
	// cannot be opened.
	ErrOpenSource = errors.New("wgraph: cannot open edge-list source")
)

// Infinity returns the sentinel "unreachable" distance for W:
// native positive infinity for floating-point weight types, and the
// maximum representable value for integer weight types.
func Infinity[W Weight]() W {
	// Converting 0.5 survives only in floating-point domains;
	// integer domains truncate it to zero.
	half := 0.5
	if W(half) != 0 {
		return W(math.Inf(1))
	}
	var zero W
	// Unsigned integers wrap below zero straight to their maximum value.
	if zero-1 > zero {
		return zero - 1
	}
	// Signed integers: 2^(bits-1) − 1.
	bits := unsafe.Sizeof(zero) * 8

	return W(uint64(1)<<(bits-1) - 1)
}
