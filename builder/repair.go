// SPDX-License-Identifier: MIT
// Package: lvmaze/builder
//
// repair.go — gives every fully opened cell a wall back.
//
// A builder that ran out of wall-keeping candidates may have opened a cell on
// all four sides. For each such cell one open side is closed again. If that
// splits the maze, the two halves are rejoined through a wallboard that
// leaves both of its cells with a wall. The number of removed walls is
// unchanged by a rejoin, so perfect mazes stay spanning trees.

package builder

import (
	"context"
	"fmt"

	"github.com/katalvlaran/lvmaze/floorplan"
)

// repairOpenCells closes one side of every cell that has no wall left.
// Returns how many cells were repaired.
func repairOpenCells(ctx context.Context, fp *floorplan.Floorplan, cfg *builderConfig) (int, error) {
	repaired := 0
	for i := 0; i < fp.Size(); i++ {
		c := fp.Coordinate(i)
		if fp.OpenSides(c.X, c.Y) < 4 {
			continue
		}
		if err := canceled(ctx); err != nil {
			return repaired, err
		}
		if err := closeOneSide(fp, cfg, c); err != nil {
			return repaired, err
		}
		cfg.log.WithField("cell", c.String()).Debug("closed a side of a fully open cell")
		repaired++
	}
	return repaired, nil
}

// closeOneSide re-adds one open wall of c and, if the maze falls apart,
// opens a wall-keeping wallboard between the two parts.
func closeOneSide(fp *floorplan.Floorplan, cfg *builderConfig, c floorplan.Cell) error {
	n := fp.Size()
	for _, k := range cfg.rng.Perm(len(floorplan.Directions)) {
		wb := floorplan.Wallboard{X: c.X, Y: c.Y, Dir: floorplan.Directions[k]}
		if err := fp.AddWallboard(wb); err != nil {
			return fmt.Errorf("builder: repair: %w", err)
		}
		visited := make([]bool, n)
		if len(flood(fp, fp.Index(c), visited)) == n {
			return nil
		}
		if bridge, ok := bridgeWallboard(fp, cfg, visited, wb); ok {
			if err := fp.DeleteWallboard(bridge); err != nil {
				return fmt.Errorf("builder: repair: %w", err)
			}
			return nil
		}
		if err := fp.DeleteWallboard(wb); err != nil {
			return fmt.Errorf("builder: repair: %w", err)
		}
	}
	return fmt.Errorf("%w: cannot close a side of open cell %v", ErrNoCandidate, c)
}

// bridgeWallboard picks a random removable wallboard with exactly one side in
// the visited part, other than closed, whose removal keeps walls on both sides.
func bridgeWallboard(fp *floorplan.Floorplan, cfg *builderConfig, visited []bool, closed floorplan.Wallboard) (floorplan.Wallboard, bool) {
	var candidates []floorplan.Wallboard
	for _, wb := range removableWallboards(fp) {
		if wb == closed || wb == closed.Mirror() {
			continue
		}
		if visited[fp.Index(wb.Cell())] == visited[fp.Index(wb.Neighbor())] {
			continue
		}
		if fp.KeepsWalls(wb) {
			candidates = append(candidates, wb)
		}
	}
	if len(candidates) == 0 {
		return floorplan.Wallboard{}, false
	}
	return candidates[cfg.rng.Intn(len(candidates))], true
}
