package builder_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/lvmaze/builder"
	"github.com/katalvlaran/lvmaze/distance"
	"github.com/katalvlaran/lvmaze/floorplan"
)

// ExampleGenerate builds a perfect 8×6 maze with Borůvka and reports its
// basic shape. The layout itself depends on the seed only.
func ExampleGenerate() {
	fp, _ := floorplan.New(8, 6)
	err := builder.Generate(context.Background(), fp, builder.MethodBoruvka,
		builder.WithSeed(13),
		builder.WithPerfect(true),
	)
	if err != nil {
		fmt.Println(err)
		return
	}
	f, _ := distance.Compute(fp)

	fmt.Println("perfect:", fp.IsPerfect())
	fmt.Println("removed:", fp.RemovedCount())
	fmt.Println("all reachable:", f.AllReachable())
	// Output:
	// perfect: true
	// removed: 47
	// all reachable: true
}
