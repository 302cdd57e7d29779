// SPDX-License-Identifier: MIT
// Package: lvmaze/builder
//
// prim.go — frontier growth (randomized Prim).
//
// Algorithm:
//  1. Pick a random cell and enter it: mark its open region visited and add
//     every removable wallboard leading out of the region to the frontier.
//  2. Each round draw a uniformly random frontier index. Drop the candidate
//     if its far side is already visited. Otherwise tear it down and enter
//     the far side.
//  3. Stop when every cell is visited.
//
// Candidates whose removal would leave a cell without walls are set aside
// and only used when the frontier is exhausted.
//
// Complexity: O(W×H) rounds, O(W×H) memory for the frontier.

package builder

import (
	"context"
	"fmt"

	"github.com/katalvlaran/lvmaze/floorplan"
)

type primBuilder struct {
	cfg *builderConfig
}

// Method implements Builder.
func (b *primBuilder) Method() Method { return MethodPrim }

// Build implements Builder.
func (b *primBuilder) Build(ctx context.Context, fp *floorplan.Floorplan) error {
	if err := checkInput(fp); err != nil {
		return err
	}
	n := fp.Size()
	rng := b.cfg.rng
	visited := make([]bool, n)
	var frontier, deferred []floorplan.Wallboard
	reached := 0

	enter := func(i int) {
		for _, j := range flood(fp, i, visited) {
			reached++
			c := fp.Coordinate(j)
			for _, d := range floorplan.Directions {
				wb := floorplan.Wallboard{X: c.X, Y: c.Y, Dir: d}
				if !fp.CanTearDown(wb) || visited[fp.Index(wb.Neighbor())] {
					continue
				}
				frontier = append(frontier, wb)
			}
		}
	}
	enter(rng.Intn(n))

	for reached < n {
		if err := canceled(ctx); err != nil {
			return err
		}
		if len(frontier) == 0 {
			wb, ok := fallback(fp, deferred, visited)
			if !ok {
				return fmt.Errorf("%w: prim reached %d of %d cells", ErrDisconnected, reached, n)
			}
			b.cfg.log.WithField("wallboard", wb.String()).Debug("prim: opening a cell completely")
			if err := fp.DeleteWallboard(wb); err != nil {
				return fmt.Errorf("builder: prim: %w", err)
			}
			enter(fp.Index(wb.Neighbor()))
			b.cfg.step(reached, n)
			continue
		}

		k := rng.Intn(len(frontier))
		wb := frontier[k]
		frontier[k] = frontier[len(frontier)-1]
		frontier = frontier[:len(frontier)-1]

		next := fp.Index(wb.Neighbor())
		if visited[next] || !fp.CanTearDown(wb) {
			continue
		}
		if !fp.KeepsWalls(wb) {
			deferred = append(deferred, wb)
			continue
		}
		if err := fp.DeleteWallboard(wb); err != nil {
			return fmt.Errorf("builder: prim: %w", err)
		}
		enter(next)
		b.cfg.step(reached, n)
	}
	return nil
}

// fallback returns the first set-aside wallboard that still leads to an
// unvisited cell.
func fallback(fp *floorplan.Floorplan, deferred []floorplan.Wallboard, visited []bool) (floorplan.Wallboard, bool) {
	for _, wb := range deferred {
		if fp.CanTearDown(wb) && !visited[fp.Index(wb.Neighbor())] {
			return wb, true
		}
	}
	return floorplan.Wallboard{}, false
}
