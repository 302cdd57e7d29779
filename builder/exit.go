// SPDX-License-Identifier: MIT
// Package: lvmaze/builder
//
// exit.go — exit placement.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvmaze/distance"
	"github.com/katalvlaran/lvmaze/floorplan"
)

// placeExit opens the exit. A random anchor cell is chosen and the border
// cell farthest from it becomes the exit, so the start position computed
// later lies deep inside the maze. The exterior wall opened is the first one
// in Direction order; corners therefore prefer North, then East.
// Border cells that would lose their last wall are skipped.
func placeExit(fp *floorplan.Floorplan, cfg *builderConfig) error {
	anchor := floorplan.Cell{X: cfg.rng.Intn(fp.Width()), Y: cfg.rng.Intn(fp.Height())}
	field, err := distance.ComputeFrom(fp, anchor)
	if err != nil {
		return fmt.Errorf("builder: exit: %w", err)
	}

	best := -1
	var exit floorplan.Cell
	var dir floorplan.Direction
	for y := 0; y < fp.Height(); y++ {
		for x := 0; x < fp.Width(); x++ {
			if !fp.IsOnBorder(x, y) || field.Distance(x, y) <= best {
				continue
			}
			d, ok := exteriorSide(fp, x, y)
			if !ok {
				continue
			}
			best, exit, dir = field.Distance(x, y), floorplan.Cell{X: x, Y: y}, d
		}
	}
	if best < 0 {
		return fmt.Errorf("%w: no border cell can hold the exit", ErrNoCandidate)
	}
	cfg.log.WithField("exit", exit.String()).Debug("exit placed")
	return fp.SetExit(exit, dir)
}

// exteriorSide returns the first exterior direction of (x,y) whose wall can
// be opened while the cell keeps another wall.
func exteriorSide(fp *floorplan.Floorplan, x, y int) (floorplan.Direction, bool) {
	if fp.OpenSides(x, y) >= 3 {
		return 0, false
	}
	c := floorplan.Cell{X: x, Y: y}
	for _, d := range floorplan.Directions {
		n := c.Neighbor(d)
		if !fp.InBounds(n.X, n.Y) && fp.HasWall(x, y, d) {
			return d, true
		}
	}
	return 0, false
}
