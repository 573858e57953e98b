// Package certify verifies that a candidate shortest-path tree really is
// the shortest-path tree of a weighted directed graph, using the
// Bellman–Ford optimality certificate instead of recomputation.
//
// What
//
//   - IsSubgraph(t, g): every edge of t exists in g with identical weight.
//   - IsTreePlusIsolated(t, root): t restricted to the vertices reachable
//     from root is a simple tree (no vertex visited twice), and every
//     unreachable vertex has no outgoing edges.
//   - PathLengthsFromRoot(t, root): distance from root to each vertex
//     along the tree; unreached vertices hold wgraph.Infinity.
//   - AllEdgesRelaxed(dist, g, source): dist[source] == 0 and no edge
//     (u, v, w) with finite dist[u] satisfies dist[v] > dist[u] + w.
//   - Verify(g, t, root): composes the four stages, short-circuiting on
//     the first failure and reporting the rejection Reason.
//
// Why
//
//	A distance assignment is the unique shortest-distance solution from a
//	source iff it is zero at the source and no edge admits further
//	relaxation. Verifying that certificate is O(V + E) and independent of
//	whatever solver produced the tree, so a buggy solver cannot vouch for
//	its own output.
//
// Verification vs. error
//
//	A rejected candidate is a normal outcome: the stages return false (or
//	a Result with OK == false and a Reason), never an error. Errors are
//	reserved for caller misuse — nil graphs, an out-of-range root or
//	source, a distance vector of the wrong length, or an invalid Option.
//
// Options
//
//   - WithContext(ctx): cancellation is honored between stages.
//   - WithOnStage(fn):  diagnostic hook called as each stage begins.
//
// Reasons
//
//   - ReasonNotSubgraph — "not a subgraph"
//   - ReasonNotTree     — "not tree-shaped"
//   - ReasonNotOptimal  — "distances not optimal"
//
// Complexity (V = |vertices|, E = |edges|)
//
//   - Each stage: O(V + E) time, O(V) additional space.
//   - Verify allocates a fresh distance vector and visited marks per run;
//     nothing is shared across runs, so concurrent verifications over the
//     same read-only graphs are safe.
//
// Negative cycles are not detected as such: a distance vector affected by
// one simply fails the relaxation stage.
package certify
