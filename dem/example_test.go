// File: dem/example_test.go
package dem_test

import (
	"fmt"

	"github.com/katalvlaran/spilldem/dem"
)

// ExampleNewGrid demonstrates the row-major layout and the per-direction
// traversal lengths of an anisotropic grid (30 m × 40 m cells).
func ExampleNewGrid() {
	values := []float32{
		1, 2, 3,
		4, 5, 6,
	}
	g, err := dem.NewGrid(values, 3, 2, -9999, 30, 40)
	if err != nil {
		fmt.Println("grid:", err)

		return
	}

	fmt.Println("index of (2,1):", g.Index(2, 1))
	x, y := g.Coordinate(4)
	fmt.Printf("coordinate of 4: (%d,%d)\n", x, y)
	fmt.Println("east length:", g.DirectionLength(0))
	fmt.Println("north length:", g.DirectionLength(2))
	fmt.Println("diagonal length:", g.DirectionLength(1))
	// Output:
	// index of (2,1): 5
	// coordinate of 4: (1,1)
	// east length: 30
	// north length: 40
	// diagonal length: 50
}
