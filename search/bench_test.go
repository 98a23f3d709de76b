package search_test

import (
	"testing"

	"github.com/katalvlaran/spaceship/kinematics"
	"github.com/katalvlaran/spaceship/search"
)

// BenchmarkSearch_Lookahead measures a lookahead search over a small cluster.
func BenchmarkSearch_Lookahead(b *testing.B) {
	ts := kinematics.NewTargetSet([]kinematics.Cell{{X: 4, Y: 3}, {X: -5, Y: 2}, {X: 1, Y: -6}})
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := search.Search(kinematics.ShipState{}, ts); err != nil {
			b.Fatalf("Search failed: %v", err)
		}
	}
}

// BenchmarkSearch_Last measures a last-segment search to a far target.
func BenchmarkSearch_Last(b *testing.B) {
	ts := kinematics.NewTargetSet([]kinematics.Cell{{X: 12, Y: -9}})
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := search.Search(kinematics.ShipState{}, ts); err != nil {
			b.Fatalf("Search failed: %v", err)
		}
	}
}
