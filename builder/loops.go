// SPDX-License-Identifier: MIT
// Package: lvmaze/builder
//
// loops.go — extra openings for imperfect mazes.

package builder

import (
	"context"
	"fmt"

	"github.com/katalvlaran/lvmaze/floorplan"
)

// addLoops tears down additional removable walls once the maze is
// connected, creating cycles. Walls whose removal would leave a cell without
// walls are skipped. Returns how many walls were opened.
func addLoops(ctx context.Context, fp *floorplan.Floorplan, cfg *builderConfig) (int, error) {
	want := cfg.extraWalls
	if want < 0 {
		want = fp.Size() / extraWallDivisor
	}
	if want == 0 {
		return 0, nil
	}
	walls := removableWallboards(fp)
	cfg.rng.Shuffle(len(walls), func(i, j int) {
		walls[i], walls[j] = walls[j], walls[i]
	})

	opened := 0
	for _, wb := range walls {
		if opened == want {
			break
		}
		if err := canceled(ctx); err != nil {
			return opened, err
		}
		if !fp.CanTearDown(wb) || !fp.KeepsWalls(wb) {
			continue
		}
		if err := fp.DeleteWallboard(wb); err != nil {
			return opened, fmt.Errorf("builder: loops: %w", err)
		}
		opened++
	}
	return opened, nil
}
