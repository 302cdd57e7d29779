// SPDX-License-Identifier: MIT
// Package: lvmaze/builder
//
// helpers.go — traversal helpers shared by the builders.

package builder

import (
	"context"
	"fmt"

	"github.com/katalvlaran/lvmaze/floorplan"
)

// checkInput rejects nil and frozen floorplans.
func checkInput(fp *floorplan.Floorplan) error {
	if fp == nil {
		return ErrNilFloorplan
	}
	if fp.Frozen() {
		return fmt.Errorf("builder: %w", floorplan.ErrFrozen)
	}
	return nil
}

// canceled returns ctx.Err() without blocking.
func canceled(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
		return nil
	}
}

// flood marks start and every cell reachable from it through open walls as
// visited and returns them in BFS order, start first. Cells that were already
// visited are not returned.
func flood(fp *floorplan.Floorplan, start int, visited []bool) []int {
	if visited[start] {
		return nil
	}
	visited[start] = true
	region := []int{start}
	for head := 0; head < len(region); head++ {
		c := fp.Coordinate(region[head])
		for _, d := range floorplan.Directions {
			if fp.HasWall(c.X, c.Y, d) {
				continue
			}
			n := c.Neighbor(d)
			if !fp.InBounds(n.X, n.Y) {
				continue
			}
			if j := fp.Index(n); !visited[j] {
				visited[j] = true
				region = append(region, j)
			}
		}
	}
	return region
}

// removableWallboards lists every wall the builders may tear down, each
// physical wall once (from its west or north side), in row-major order.
func removableWallboards(fp *floorplan.Floorplan) []floorplan.Wallboard {
	out := make([]floorplan.Wallboard, 0, fp.InteriorWallboards())
	for y := 0; y < fp.Height(); y++ {
		for x := 0; x < fp.Width(); x++ {
			for _, d := range [2]floorplan.Direction{floorplan.East, floorplan.South} {
				wb := floorplan.Wallboard{X: x, Y: y, Dir: d}
				if fp.CanTearDown(wb) {
					out = append(out, wb)
				}
			}
		}
	}
	return out
}
