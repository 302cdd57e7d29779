package floorplan

import "fmt"

// MarkRoom carves r as a room: walls between two room cells are removed, the
// outline of r becomes border and each wallboard in doors is left removable.
// Doors must belong to a room cell and face a cell outside r but inside the
// grid.
//
// Returns ErrFrozen, ErrOutOfBounds if r does not fit, ErrRoomOverlap if any
// cell already belongs to a room, or ErrInvalidDoor for a bad door. The
// floorplan is unchanged on error.
// Complexity: O(r.W×r.H + len(doors)).
func (fp *Floorplan) MarkRoom(r Rect, doors []Wallboard) error {
	if fp.frozen {
		return ErrFrozen
	}
	if r.W <= 0 || r.H <= 0 || !fp.InBounds(r.X, r.Y) || !fp.InBounds(r.X+r.W-1, r.Y+r.H-1) {
		return fmt.Errorf("%w: room %+v", ErrOutOfBounds, r)
	}
	for y := r.Y; y < r.Y+r.H; y++ {
		for x := r.X; x < r.X+r.W; x++ {
			if fp.rooms[fp.index(x, y)] != 0 {
				return fmt.Errorf("%w: cell (%d,%d)", ErrRoomOverlap, x, y)
			}
		}
	}
	for _, d := range doors {
		n := d.Neighbor()
		if !r.Contains(d.Cell()) || r.Contains(n) || !fp.InBounds(n.X, n.Y) {
			return fmt.Errorf("%w: %v", ErrInvalidDoor, d)
		}
	}

	fp.roomCount++
	id := int32(fp.roomCount)
	for y := r.Y; y < r.Y+r.H; y++ {
		for x := r.X; x < r.X+r.W; x++ {
			i := fp.index(x, y)
			fp.rooms[i] = id
			for _, d := range Directions {
				n := Cell{X: x, Y: y}.Neighbor(d)
				if r.Contains(n) {
					// inner wall, counted once from its east or south side
					if (d == East || d == South) && fp.walls[i]&d.bit() != 0 {
						fp.walls[i] &^= d.bit()
						fp.walls[fp.index(n.X, n.Y)] &^= d.Inverse().bit()
						fp.removed++
					}
					continue
				}
				fp.borders[i] |= d.bit()
				if fp.InBounds(n.X, n.Y) {
					fp.borders[fp.index(n.X, n.Y)] |= d.Inverse().bit()
				}
			}
		}
	}
	for _, d := range doors {
		n := d.Neighbor()
		fp.borders[fp.index(d.X, d.Y)] &^= d.Dir.bit()
		fp.borders[fp.index(n.X, n.Y)] &^= d.Dir.Inverse().bit()
	}

	return nil
}

// IsInRoom reports whether (x,y) belongs to a room.
func (fp *Floorplan) IsInRoom(x, y int) bool {
	return fp.InBounds(x, y) && fp.rooms[fp.index(x, y)] != 0
}

// RoomID returns the room id of (x,y), or 0 outside rooms.
func (fp *Floorplan) RoomID(x, y int) int {
	if !fp.InBounds(x, y) {
		return 0
	}
	return int(fp.rooms[fp.index(x, y)])
}

// Rooms returns the number of rooms marked so far.
func (fp *Floorplan) Rooms() int {
	return fp.roomCount
}
