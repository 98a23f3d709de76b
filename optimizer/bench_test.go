package optimizer_test

import (
	"testing"

	"github.com/katalvlaran/spaceship/axis"
	"github.com/katalvlaran/spaceship/kinematics"
	"github.com/katalvlaran/spaceship/optimizer"
	"github.com/katalvlaran/spaceship/planner"
)

// BenchmarkOptimize_Sequential measures rewriting a rest-to-rest tour.
func BenchmarkOptimize_Sequential(b *testing.B) {
	tbl, err := axis.Build(axis.DefaultCeiling)
	if err != nil {
		b.Fatal(err)
	}
	targets := []kinematics.Cell{{X: 3, Y: 2}, {X: -2, Y: 4}, {X: 5, Y: -3}, {X: 0, Y: -5}, {X: 9, Y: 9}}
	opts := planner.DefaultOptions()
	opts.Strategy = planner.StrategySequential
	tour, err := planner.Plan(targets, opts)
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := optimizer.Optimize(targets, tour.Solution, tbl, optimizer.Options{}); err != nil {
			b.Fatalf("Optimize failed: %v", err)
		}
	}
}
