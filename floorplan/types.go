package floorplan

import "fmt"

// Direction is one of the four compass directions. Its value doubles as the
// bit index used in wall masks.
type Direction uint8

const (
	// North points to y-1.
	North Direction = iota
	// East points to x+1.
	East
	// South points to y+1.
	South
	// West points to x-1.
	West
)

// Directions lists all directions in priority order. Every tie-break in this
// module iterates in this order.
var Directions = [4]Direction{North, East, South, West}

// offsets matches Directions: N, E, S, W.
var offsets = [4][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}

// allWalls is the mask with every direction bit set.
const allWalls uint8 = 0x0F

// Inverse returns the opposite direction.
func (d Direction) Inverse() Direction {
	return (d + 2) & 3
}

// Delta returns the coordinate offset of one step in direction d.
func (d Direction) Delta() (dx, dy int) {
	o := offsets[d&3]
	return o[0], o[1]
}

func (d Direction) bit() uint8 {
	return 1 << (d & 3)
}

// String implements fmt.Stringer.
func (d Direction) String() string {
	switch d {
	case North:
		return "N"
	case East:
		return "E"
	case South:
		return "S"
	case West:
		return "W"
	}
	return fmt.Sprintf("Direction(%d)", d)
}

// Cell is a grid position.
type Cell struct {
	X, Y int
}

// Neighbor returns the cell one step away in direction d. The result may lie
// outside the grid.
func (c Cell) Neighbor(d Direction) Cell {
	dx, dy := d.Delta()
	return Cell{X: c.X + dx, Y: c.Y + dy}
}

// String implements fmt.Stringer.
func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Wallboard is the wall on side Dir of cell (X,Y). A wallboard and its
// Mirror denote the same physical wall.
type Wallboard struct {
	X, Y int
	Dir  Direction
}

// Cell returns the cell the wallboard belongs to.
func (w Wallboard) Cell() Cell {
	return Cell{X: w.X, Y: w.Y}
}

// Neighbor returns the cell on the other side of the wall.
func (w Wallboard) Neighbor() Cell {
	return w.Cell().Neighbor(w.Dir)
}

// Mirror returns the same wall seen from the neighboring cell.
func (w Wallboard) Mirror() Wallboard {
	n := w.Neighbor()
	return Wallboard{X: n.X, Y: n.Y, Dir: w.Dir.Inverse()}
}

// String implements fmt.Stringer.
func (w Wallboard) String() string {
	return fmt.Sprintf("(%d,%d)%s", w.X, w.Y, w.Dir)
}

// Rect is an axis-aligned block of cells: X..X+W-1 by Y..Y+H-1.
type Rect struct {
	X, Y, W, H int
}

// Contains reports whether c lies inside r.
func (r Rect) Contains(c Cell) bool {
	return c.X >= r.X && c.X < r.X+r.W && c.Y >= r.Y && c.Y < r.Y+r.H
}

// Corners returns the corner cells of r in the order
// top-left, top-right, bottom-right, bottom-left.
func (r Rect) Corners() [4]Cell {
	x1, y1 := r.X+r.W-1, r.Y+r.H-1
	return [4]Cell{{r.X, r.Y}, {x1, r.Y}, {x1, y1}, {r.X, y1}}
}
