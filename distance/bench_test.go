package distance_test

import (
	"testing"

	"github.com/katalvlaran/lvmaze/distance"
	"github.com/katalvlaran/lvmaze/floorplan"
)

// BenchmarkCompute measures the BFS on a 300×250 serpentine maze, the largest
// skill level.
func BenchmarkCompute(b *testing.B) {
	const w, h = 300, 250
	fp, _ := floorplan.New(w, h)
	for y := 0; y < h; y++ {
		for x := 0; x+1 < w; x++ {
			_ = fp.DeleteWallboard(floorplan.Wallboard{X: x, Y: y, Dir: floorplan.East})
		}
		if y+1 < h {
			x := w - 1
			if y%2 == 1 {
				x = 0
			}
			_ = fp.DeleteWallboard(floorplan.Wallboard{X: x, Y: y, Dir: floorplan.South})
		}
	}
	_ = fp.SetExit(floorplan.Cell{X: 0, Y: 0}, floorplan.West)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := distance.Compute(fp); err != nil {
			b.Fatal(err)
		}
	}
}
