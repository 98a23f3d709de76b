package optimizer_test

import (
	"fmt"

	"github.com/katalvlaran/spaceship/axis"
	"github.com/katalvlaran/spaceship/kinematics"
	"github.com/katalvlaran/spaceship/optimizer"
)

// ExampleOptimize shortens a hand-written detour to (2,0).
func ExampleOptimize() {
	tbl, err := axis.Build(16)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	res, err := optimizer.Optimize([]kinematics.Cell{{X: 2, Y: 0}}, "64564", tbl, optimizer.Options{})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.Solution, res.Improved, res.Saved)
	// Output:
	// 65 true 3
}
