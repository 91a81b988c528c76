package flood_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/spilldem/dem"
	"github.com/katalvlaran/spilldem/flood"
)

// benchGrid builds a deterministic random 512×512 terrain with nodata holes.
func benchGrid(b *testing.B) *dem.Grid {
	b.Helper()
	const n = 512
	rng := rand.New(rand.NewSource(42))
	values := make([]float32, n*n)
	for i := range values {
		if rng.Intn(50) == 0 {
			values[i] = -9999

			continue
		}
		values[i] = float32(rng.Float64() * 500)
	}
	g, err := dem.NewGrid(values, n, n, -9999, 30, 30)
	if err != nil {
		b.Fatalf("setup NewGrid failed: %v", err)
	}

	return g
}

// BenchmarkFill_Flat measures the classical flat fill on a 512×512 grid.
// Complexity: O(N log N)
func BenchmarkFill_Flat(b *testing.B) {
	g := benchGrid(b)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, _, err := flood.Fill(g); err != nil {
			b.Fatalf("Fill failed: %v", err)
		}
	}
}

// BenchmarkFill_MinSlope measures the minimum-slope variant on the same grid.
func BenchmarkFill_MinSlope(b *testing.B) {
	g := benchGrid(b)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, _, err := flood.Fill(g, flood.WithMinSlope(0.1)); err != nil {
			b.Fatalf("Fill failed: %v", err)
		}
	}
}
