// SPDX-License-Identifier: MIT
// Package: lvmaze/builder
//
// dfs.go — randomized depth-first backtracker.
//
// Algorithm:
//  1. Enter a random cell and push it (and its open region) on a stack.
//  2. Look at the top cell: if it has unvisited neighbors behind removable
//     walls, tear one of them down at random and enter that neighbor;
//     otherwise pop.
//  3. Stop when every cell is visited.
//
// Produces long winding corridors with few branches.
// Complexity: O(W×H) time, O(W×H) stack.

package builder

import (
	"context"
	"fmt"

	"github.com/katalvlaran/lvmaze/floorplan"
)

type dfsBuilder struct {
	cfg *builderConfig
}

// Method implements Builder.
func (b *dfsBuilder) Method() Method { return MethodDFS }

// Build implements Builder.
func (b *dfsBuilder) Build(ctx context.Context, fp *floorplan.Floorplan) error {
	if err := checkInput(fp); err != nil {
		return err
	}
	n := fp.Size()
	rng := b.cfg.rng
	visited := make([]bool, n)
	stack := make([]int, 0, n)
	var deferred []floorplan.Wallboard
	reached := 0

	enter := func(i int) {
		region := flood(fp, i, visited)
		reached += len(region)
		// entry cell ends on top
		for k := len(region) - 1; k >= 0; k-- {
			stack = append(stack, region[k])
		}
	}
	enter(rng.Intn(n))

	var options [4]floorplan.Wallboard
	for reached < n {
		if err := canceled(ctx); err != nil {
			return err
		}
		if len(stack) == 0 {
			wb, ok := fallback(fp, deferred, visited)
			if !ok {
				return fmt.Errorf("%w: dfs reached %d of %d cells", ErrDisconnected, reached, n)
			}
			b.cfg.log.WithField("wallboard", wb.String()).Debug("dfs: opening a cell completely")
			if err := fp.DeleteWallboard(wb); err != nil {
				return fmt.Errorf("builder: dfs: %w", err)
			}
			enter(fp.Index(wb.Neighbor()))
			b.cfg.step(reached, n)
			continue
		}

		c := fp.Coordinate(stack[len(stack)-1])
		k := 0
		for _, d := range floorplan.Directions {
			wb := floorplan.Wallboard{X: c.X, Y: c.Y, Dir: d}
			if !fp.CanTearDown(wb) || visited[fp.Index(wb.Neighbor())] {
				continue
			}
			if !fp.KeepsWalls(wb) {
				deferred = append(deferred, wb)
				continue
			}
			options[k] = wb
			k++
		}
		if k == 0 {
			stack = stack[:len(stack)-1]
			continue
		}
		wb := options[rng.Intn(k)]
		if err := fp.DeleteWallboard(wb); err != nil {
			return fmt.Errorf("builder: dfs: %w", err)
		}
		enter(fp.Index(wb.Neighbor()))
		b.cfg.step(reached, n)
	}
	return nil
}
