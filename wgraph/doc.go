// Package wgraph provides a directed weighted graph container over a
// fixed set of dense integer vertices, generic over any ordered, summable
// numeric weight domain.
//
// What
//
//   - Graph[W] owns N vertices (indices 0..N−1, fixed at construction)
//     and a set of directed weighted edges.
//   - Storage: one destination→weight map per vertex, so at most one edge
//     exists per (origin, destination) pair; AddEdge overwrites an
//     existing weight (upsert).
//   - Construction: New(n) for an empty graph, FromReader/FromFile for a
//     serialized edge list ("N" then "origin dest weight" triples).
//   - Queries: HasEdge, EdgeWeight, VertexCount, EdgeCount, Degree.
//   - Neighbors(v) yields a lazy, finite, restartable (destination,
//     weight) sequence; order is implementation-defined and never
//     semantically significant.
//   - Infinity[W]() is the distinguished "unreachable" value: native +Inf
//     for floating-point domains, the maximum representable value for
//     integer domains.
//   - String() renders "i: (i, j)[w] ..." per vertex for diagnostics.
//
// Why
//
//	The shortest-path-tree certifier in package certify needs exactly
//	this surface: O(1) edge lookup by endpoint pair, per-vertex edge
//	iteration, and a weight domain with addition, ordering, and an
//	infinity sentinel. Nothing more is provided on purpose.
//
// Error model
//
//   - ErrNegativeVertexCount — New(n) with n < 0.
//   - ErrVertexOutOfRange    — AddEdge with an index outside [0, N);
//     caller misuse, fails loudly.
//   - ErrEdgeNotFound        — EdgeWeight on an absent edge; a legitimate
//     query outcome, distinguishable from weight 0.
//   - ErrOpenSource          — FromFile on an unopenable path.
//   - RemoveEdge and HasEdge never fail: out-of-range or absent inputs
//     are a no-op / false.
//
// Concurrency
//
//	No internal locking. Concurrent readers are safe; any mutation must
//	be externally serialized against all other access.
//
// Complexity (V = |vertices|, E = |edges|)
//
//   - AddEdge / RemoveEdge / HasEdge / EdgeWeight: O(1)
//   - Neighbors full iteration: O(deg(v)); Clone: O(V + E)
//   - FromReader: O(V + E); String: O(V + E log E)
package wgraph
