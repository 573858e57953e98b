package wgraph_test

import (
	"math/rand"
	"testing"

	"github.com/velmark/sptcert/wgraph"
)

// BenchmarkAddEdge measures upsert throughput on a random edge stream.
func BenchmarkAddEdge(b *testing.B) {
	const V = 1000
	rnd := rand.New(rand.NewSource(42))
	g, _ := wgraph.New[float64](V)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.AddEdge(rnd.Intn(V), rnd.Intn(V), float64(i))
	}
}

// BenchmarkNeighbors measures a full iteration over a dense vertex.
func BenchmarkNeighbors(b *testing.B) {
	const V = 1000
	g, _ := wgraph.New[float64](V)
	for j := 1; j < V; j++ {
		_ = g.AddEdge(0, j, float64(j))
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		var sum float64
		for _, w := range g.Neighbors(0) {
			sum += w
		}
		_ = sum
	}
}

// BenchmarkClone measures deep-copying a sparse random graph.
func BenchmarkClone(b *testing.B) {
	const V, E = 5000, 10000
	rnd := rand.New(rand.NewSource(42))
	g, _ := wgraph.New[float64](V)
	for k := 0; k < E; k++ {
		_ = g.AddEdge(rnd.Intn(V), rnd.Intn(V), rnd.Float64())
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.Clone()
	}
}
