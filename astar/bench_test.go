package astar_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/astarviz/astar"
	"github.com/katalvlaran/astarviz/grid"
)

// BenchmarkSearch_Open measures A* corner to corner on an empty 50×50 grid,
// the default board size.
// Complexity: O(V log V), V = 2500.
func BenchmarkSearch_Open(b *testing.B) {
	const n = 50
	g, _ := grid.New(n)
	g.RecomputeNeighbors()
	start, end := g.At(pos(0, 0)), g.At(pos(n-1, n-1))

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = astar.Search(g, start, end)
	}
}

// BenchmarkSearch_Random measures A* on a 50×50 grid with ~30% barriers.
func BenchmarkSearch_Random(b *testing.B) {
	const n = 50
	g, _ := grid.New(n)
	rnd := rand.New(rand.NewSource(42))
	for _, c := range g.Cells() {
		if rnd.Intn(10) < 3 {
			c.MarkBarrier()
		}
	}
	start, end := g.At(pos(0, 0)), g.At(pos(n-1, n-1))
	start.Reset()
	end.Reset()
	g.RecomputeNeighbors()

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = astar.Search(g, start, end)
	}
}
