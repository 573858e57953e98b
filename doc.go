// Package sptcert is a certifying checker for shortest-path-tree results:
// given a weighted directed graph G and a candidate shortest-path tree T
// rooted at some source vertex, it verifies that T really is the
// shortest-path tree of G from that root, without re-running any
// shortest-path algorithm.
//
// 🔍 What is sptcert?
//
//	A small, focused library built around the classical Bellman–Ford
//	optimality certificate:
//		• wgraph/     — generic weighted digraph container over any numeric
//		                weight domain (integers or floats)
//		• certify/    — the four checker stages and the composite protocol:
//		                subgraph containment → tree-shape validation →
//		                tree distances → edge-relaxation certificate
//		• cmd/sptcert — a thin CLI driver that loads two edge lists and
//		                reports the verdict with a reason
//
// ✨ Why certify instead of recompute?
//
//   - A distance assignment is the unique shortest-distance solution iff
//     dist[root] == 0 and no edge of G admits further relaxation. Checking
//     that takes O(V + E): no priority queues, no recomputation, and the
//     checker cannot inherit a bug from the solver it is auditing.
//
// All checks are single-threaded and deterministic; graphs are safe to
// share between concurrent verification runs as long as nobody mutates
// them in flight.
//
//	go get github.com/velmark/sptcert
package sptcert
