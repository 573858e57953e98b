// Package certify defines sentinel errors, functional options, and the
// result types shared by the shortest-path-tree verification stages.
package certify

import (
	"context"
	"errors"

	"github.com/velmark/sptcert/wgraph"
)

// Sentinel errors for precondition violations. Verification failures are
// never errors; they are boolean results carrying a Reason.
var (
	// ErrNilGraph is returned when a nil graph or tree pointer is passed.
	ErrNilGraph = errors.New("certify: graph is nil")

	// ErrRootOutOfRange is returned when the root or source index lies
	// outside the graph's vertex range.
	ErrRootOutOfRange = errors.New("certify: root vertex out of range")

	// ErrDistanceLength is returned when a distance vector does not have
	// one entry per graph vertex.
	ErrDistanceLength = errors.New("certify: distance vector length mismatch")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("certify: invalid option supplied")
)

// Stage identifies one step of the composite verification protocol,
// in execution order.
type Stage int

const (
	// StageSubgraph checks that every edge of the candidate tree exists
	// in the graph with an identical weight.
	StageSubgraph Stage = iota

	// StageTreeShape checks that the candidate is a tree rooted at the
	// root plus isolated vertices.
	StageTreeShape

	// StageDistances computes root-to-vertex distances along the tree.
	StageDistances

	// StageRelaxation checks the Bellman–Ford optimality certificate
	// over every edge of the graph.
	StageRelaxation
)

// String returns a short human-readable stage name.
func (s Stage) String() string {
	switch s {
	case StageSubgraph:
		return "subgraph"
	case StageTreeShape:
		return "tree-shape"
	case StageDistances:
		return "distances"
	case StageRelaxation:
		return "relaxation"
	default:
		return "unknown"
	}
}

// Reason explains why a verification run rejected the candidate tree.
type Reason int

const (
	// ReasonNone means the candidate tree was certified valid.
	ReasonNone Reason = iota

	// ReasonNotSubgraph means some tree edge is absent from the graph or
	// carries a different weight.
	ReasonNotSubgraph

	// ReasonNotTree means the candidate revisits a vertex from the root
	// or has a non-isolated vertex outside the reachable set.
	ReasonNotTree

	// ReasonNotOptimal means the tree distances violate the relaxation
	// certificate: some graph edge admits a shorter path.
	ReasonNotOptimal
)

// String returns the diagnostic rendering of the rejection reason.
func (r Reason) String() string {
	switch r {
	case ReasonNone:
		return "valid"
	case ReasonNotSubgraph:
		return "not a subgraph"
	case ReasonNotTree:
		return "not tree-shaped"
	case ReasonNotOptimal:
		return "distances not optimal"
	default:
		return "unknown"
	}
}

// Result holds the outcome of a composite verification run.
//
// Distances is populated once StageDistances has run (even when the
// relaxation stage later rejects the tree) and is freshly allocated per
// run; it is nil when an earlier stage short-circuited.
type Result[W wgraph.Weight] struct {
	OK        bool
	Reason    Reason
	Distances []W
}

// Option configures Verify via functional arguments. An invalid Option is
// recorded internally and surfaced as ErrOptionViolation when Verify runs.
type Option func(*Options)

// Options holds parameters and callbacks customizing a verification run.
type Options struct {
	// Ctx allows cancellation between stages.
	Ctx context.Context

	// OnStage is called when a stage is entered, in execution order.
	OnStage func(Stage)

	err error
}

// DefaultOptions returns Options with a background context and a no-op
// stage hook.
func DefaultOptions() Options {
	return Options{
		Ctx:     context.Background(),
		OnStage: func(Stage) {},
	}
}

// WithContext sets a custom context; Verify checks it between stages.
// A nil ctx is an option violation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx == nil {
			o.err = ErrOptionViolation
			return
		}
		o.Ctx = ctx
	}
}

// WithOnStage registers a diagnostic callback invoked as each stage begins.
func WithOnStage(fn func(Stage)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnStage = fn
		}
	}
}
