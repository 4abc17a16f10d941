package cycle_test

import (
	"testing"

	"github.com/katalvlaran/girth/builder"
	"github.com/katalvlaran/girth/cycle"
)

// BenchmarkShortestCycleThrough measures the per-pointer-event query on a
// sparse random graph.
func BenchmarkShortestCycleThrough(b *testing.B) {
	g, err := builder.NewRandom(500, 0.01, builder.WithSeed(42))
	if err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	b.SetBytes(int64(g.Order() + g.Size()))
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = cycle.ShortestCycleThrough(g, i%g.Order())
	}
}

// BenchmarkShortestCycle measures the graph-wide search done once per Finder.
func BenchmarkShortestCycle(b *testing.B) {
	g, err := builder.NewRandom(200, 0.02, builder.WithSeed(42))
	if err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = cycle.ShortestCycle(g)
	}
}
