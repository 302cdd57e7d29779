package distance_test

import (
	"fmt"

	"github.com/katalvlaran/lvmaze/distance"
	"github.com/katalvlaran/lvmaze/floorplan"
)

// ExampleCompute walks from the start position to the exit of a short
// L-shaped maze by following NeighborCloserToExit.
func ExampleCompute() {
	fp, _ := floorplan.New(2, 2)
	_ = fp.DeleteWallboard(floorplan.Wallboard{X: 0, Y: 0, Dir: floorplan.East})
	_ = fp.DeleteWallboard(floorplan.Wallboard{X: 1, Y: 0, Dir: floorplan.South})
	_ = fp.DeleteWallboard(floorplan.Wallboard{X: 1, Y: 1, Dir: floorplan.West})
	_ = fp.SetExit(floorplan.Cell{X: 0, Y: 0}, floorplan.North)

	f, _ := distance.Compute(fp)
	c := f.StartPosition()
	for {
		fmt.Println(c, f.Distance(c.X, c.Y))
		next, err := f.NeighborCloserToExit(c.X, c.Y)
		if err != nil {
			break
		}
		c = next
	}
	// Output:
	// (0,1) 3
	// (1,1) 2
	// (1,0) 1
	// (0,0) 0
}
