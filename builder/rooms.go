// SPDX-License-Identifier: MIT
// Package: lvmaze/builder
//
// rooms.go — room pre-pass for imperfect mazes.
//
// Room shape:
//   • One side is 2 cells, the other 2..maxRoomSpan, so every room cell
//     touches the outline and keeps at least one wall.
//   • Rooms keep one cell of distance from the grid edge and from each
//     other; the corridor cells around them stay connected.
//   • Doors sit on room corners, at most one per corner, so a corner cell
//     with an open door still has its other outline wall.

package builder

import (
	"github.com/katalvlaran/lvmaze/floorplan"
	"github.com/zyedidia/generic/mapset"
)

// placeRooms tries to place cfg.rooms rooms and returns how many fit.
func placeRooms(fp *floorplan.Floorplan, cfg *builderConfig) int {
	occupied := mapset.New[int]()
	placed := 0
	for r := 0; r < cfg.rooms; r++ {
		for attempt := 0; attempt < roomPlacementAttempts; attempt++ {
			rect, ok := randomRoom(fp, cfg)
			if !ok {
				return placed // grid too small for any room
			}
			if crowded(fp, occupied, rect) {
				continue
			}
			if err := fp.MarkRoom(rect, roomDoors(rect, cfg)); err != nil {
				cfg.log.WithError(err).Debug("room rejected")
				continue
			}
			for y := rect.Y; y < rect.Y+rect.H; y++ {
				for x := rect.X; x < rect.X+rect.W; x++ {
					occupied.Put(y*fp.Width() + x)
				}
			}
			placed++
			break
		}
	}
	return placed
}

// randomRoom draws a room shape and position with a one-cell margin to the
// grid edge. ok is false if no shape fits.
func randomRoom(fp *floorplan.Floorplan, cfg *builderConfig) (floorplan.Rect, bool) {
	long := 2 + cfg.rng.Intn(maxRoomSpan-1)
	w, h := long, 2
	if cfg.rng.Intn(2) == 0 {
		w, h = h, w
	}
	fits := func(w, h int) bool { return fp.Width() >= w+2 && fp.Height() >= h+2 }
	switch {
	case fits(w, h):
	case fits(h, w):
		w, h = h, w
	case fits(2, 2):
		w, h = 2, 2
	default:
		return floorplan.Rect{}, false
	}
	return floorplan.Rect{
		X: 1 + cfg.rng.Intn(fp.Width()-w-1),
		Y: 1 + cfg.rng.Intn(fp.Height()-h-1),
		W: w,
		H: h,
	}, true
}

// crowded reports whether rect or the ring of cells around it is already
// occupied by a room.
func crowded(fp *floorplan.Floorplan, occupied mapset.Set[int], rect floorplan.Rect) bool {
	for y := rect.Y - 1; y <= rect.Y+rect.H; y++ {
		for x := rect.X - 1; x <= rect.X+rect.W; x++ {
			if fp.InBounds(x, y) && occupied.Has(y*fp.Width()+x) {
				return true
			}
		}
	}
	return false
}

// cornerExits lists the two outward directions of each corner returned by
// Rect.Corners.
var cornerExits = [4][2]floorplan.Direction{
	{floorplan.North, floorplan.West},
	{floorplan.North, floorplan.East},
	{floorplan.South, floorplan.East},
	{floorplan.South, floorplan.West},
}

// roomDoors picks 2..4 distinct corners and one outward wall for each.
func roomDoors(rect floorplan.Rect, cfg *builderConfig) []floorplan.Wallboard {
	corners := rect.Corners()
	count := 2 + cfg.rng.Intn(3)
	doors := make([]floorplan.Wallboard, 0, count)
	for _, k := range cfg.rng.Perm(4)[:count] {
		c := corners[k]
		d := cornerExits[k][cfg.rng.Intn(2)]
		doors = append(doors, floorplan.Wallboard{X: c.X, Y: c.Y, Dir: d})
	}
	return doors
}
