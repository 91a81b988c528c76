// File: flood/example_test.go
package flood_test

import (
	"fmt"

	"github.com/katalvlaran/spilldem/dem"
	"github.com/katalvlaran/spilldem/flood"
)

////////////////////////////////////////////////////////////////////////////////
// Example: Fill
////////////////////////////////////////////////////////////////////////////////

// ExampleFill demonstrates filling an enclosed pit.
// Scenario:
//
//   - 3×3 terrain, all cells at elevation 10, center pit at 1
//   - unit cell size, nodata = -9999, flat fill (no minimum slope)
//   - the pit cannot drain, so it is raised to the lowest spill level
//     of its surroundings: 10
//
// Complexity: O(N log N), Memory: O(N)
func ExampleFill() {
	values := []float32{
		10, 10, 10,
		10, 1, 10,
		10, 10, 10,
	}
	g, err := dem.NewGrid(values, 3, 3, -9999, 1, 1)
	if err != nil {
		fmt.Println("grid:", err)

		return
	}

	filled, _, err := flood.Fill(g)
	if err != nil {
		fmt.Println("fill:", err)

		return
	}

	for y := 0; y < 3; y++ {
		for x := 0; x < 3; x++ {
			fmt.Printf("%4.0f", filled[g.Index(x, y)])
		}
		fmt.Println()
	}
	// Output:
	//   10  10  10
	//   10  10  10
	//   10  10  10
}

// ExampleFill_noData shows nodata handling: the hole keeps its sentinel,
// and every cell touching it (or the boundary) drains off the modeled
// surface (code 255).
func ExampleFill_noData() {
	values := []float32{
		5, 5, 5,
		5, -9999, 5,
		5, 5, 5,
	}
	g, err := dem.NewGrid(values, 3, 3, -9999, 1, 1)
	if err != nil {
		fmt.Println("grid:", err)

		return
	}

	filled, dirs, err := flood.Fill(g)
	if err != nil {
		fmt.Println("fill:", err)

		return
	}

	fmt.Println("center elevation:", filled[g.Index(1, 1)])
	fmt.Println("center direction:", dirs[g.Index(1, 1)])
	fmt.Println("corner direction:", dirs[g.Index(0, 0)])
	// Output:
	// center elevation: -9999
	// center direction: 255
	// corner direction: 255
}
