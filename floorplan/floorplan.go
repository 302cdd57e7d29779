package floorplan

import (
	"fmt"
	"math"
	"math/bits"
)

// Floorplan is the wall layout of a width×height maze.
//
// walls[i] has bit d set when cell i still has its wall in direction d.
// borders[i] has bit d set when that wall is load-bearing: exterior walls,
// and room outlines other than doors. The exit is the only exterior wall
// that may be open.
type Floorplan struct {
	width, height int
	walls         []uint8
	borders       []uint8
	rooms         []int32 // 0 outside rooms, otherwise room id
	roomCount     int
	exit          int // cell index, -1 while unset
	exitDir       Direction
	removed       int // interior walls currently open
	frozen        bool
}

// New returns a width×height floorplan with every wall present and every
// exterior wall flagged as border.
// Returns ErrInvalidDimensions if width or height is not positive or the
// grid has more than math.MaxInt32 cells.
// Complexity: O(W×H).
func New(width, height int) (*Floorplan, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}
	if width > math.MaxInt32/height {
		return nil, fmt.Errorf("%w: %dx%d exceeds %d cells", ErrInvalidDimensions, width, height, math.MaxInt32)
	}
	n := width * height
	fp := &Floorplan{
		width:   width,
		height:  height,
		walls:   make([]uint8, n),
		borders: make([]uint8, n),
		rooms:   make([]int32, n),
		exit:    -1,
	}
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			i := fp.index(x, y)
			fp.walls[i] = allWalls
			for _, d := range Directions {
				dx, dy := d.Delta()
				if !fp.InBounds(x+dx, y+dy) {
					fp.borders[i] |= d.bit()
				}
			}
		}
	}

	return fp, nil
}

// Width returns the number of columns.
func (fp *Floorplan) Width() int { return fp.width }

// Height returns the number of rows.
func (fp *Floorplan) Height() int { return fp.height }

// Size returns the number of cells.
func (fp *Floorplan) Size() int { return fp.width * fp.height }

// InBounds reports whether (x,y) lies within the grid.
func (fp *Floorplan) InBounds(x, y int) bool {
	return x >= 0 && x < fp.width && y >= 0 && y < fp.height
}

// Index returns the row-major index of c. c must be in bounds.
func (fp *Floorplan) Index(c Cell) int {
	return fp.index(c.X, c.Y)
}

// Coordinate converts a row-major index back to a Cell.
func (fp *Floorplan) Coordinate(i int) Cell {
	return Cell{X: i % fp.width, Y: i / fp.width}
}

func (fp *Floorplan) index(x, y int) int {
	return y*fp.width + x
}

// HasWall reports whether cell (x,y) has its wall in direction d.
// Positions outside the grid are all wall.
func (fp *Floorplan) HasWall(x, y int, d Direction) bool {
	if !fp.InBounds(x, y) {
		return true
	}
	return fp.walls[fp.index(x, y)]&d.bit() != 0
}

// IsBorder reports whether the wall of (x,y) in direction d is load-bearing.
func (fp *Floorplan) IsBorder(x, y int, d Direction) bool {
	if !fp.InBounds(x, y) {
		return true
	}
	return fp.borders[fp.index(x, y)]&d.bit() != 0
}

// CanTearDown reports whether wb may be removed: both sides lie in the grid,
// the wall is still present and it is not a border.
// Complexity: O(1).
func (fp *Floorplan) CanTearDown(wb Wallboard) bool {
	n := wb.Neighbor()
	if !fp.InBounds(wb.X, wb.Y) || !fp.InBounds(n.X, n.Y) {
		return false
	}
	i := fp.index(wb.X, wb.Y)
	b := wb.Dir.bit()
	return fp.walls[i]&b != 0 && fp.borders[i]&b == 0
}

// DeleteWallboard removes wb and its mirror. Removing an already open wall is
// a no-op.
// Returns ErrFrozen, ErrOutOfBounds when either side is outside the grid, or
// ErrBorderWall for load-bearing walls.
// Complexity: O(1).
func (fp *Floorplan) DeleteWallboard(wb Wallboard) error {
	if fp.frozen {
		return ErrFrozen
	}
	n := wb.Neighbor()
	if !fp.InBounds(wb.X, wb.Y) || !fp.InBounds(n.X, n.Y) {
		return fmt.Errorf("%w: %v", ErrOutOfBounds, wb)
	}
	i, j := fp.index(wb.X, wb.Y), fp.index(n.X, n.Y)
	b := wb.Dir.bit()
	if fp.borders[i]&b != 0 {
		return fmt.Errorf("%w: %v", ErrBorderWall, wb)
	}
	if fp.walls[i]&b == 0 {
		return nil
	}
	fp.walls[i] &^= b
	fp.walls[j] &^= wb.Dir.Inverse().bit()
	fp.removed++

	return nil
}

// AddWallboard puts back an interior wall previously removed. Adding a wall
// that is present is a no-op.
// Returns ErrFrozen or ErrOutOfBounds.
func (fp *Floorplan) AddWallboard(wb Wallboard) error {
	if fp.frozen {
		return ErrFrozen
	}
	n := wb.Neighbor()
	if !fp.InBounds(wb.X, wb.Y) || !fp.InBounds(n.X, n.Y) {
		return fmt.Errorf("%w: %v", ErrOutOfBounds, wb)
	}
	i, j := fp.index(wb.X, wb.Y), fp.index(n.X, n.Y)
	b := wb.Dir.bit()
	if fp.walls[i]&b != 0 {
		return nil
	}
	fp.walls[i] |= b
	fp.walls[j] |= wb.Dir.Inverse().bit()
	fp.removed--

	return nil
}

// KeepsWalls reports whether both cells adjacent to wb would still have at
// least one wall if wb were removed. Out-of-bounds wallboards report false.
func (fp *Floorplan) KeepsWalls(wb Wallboard) bool {
	n := wb.Neighbor()
	if !fp.InBounds(wb.X, wb.Y) || !fp.InBounds(n.X, n.Y) {
		return false
	}
	ci := fp.walls[fp.index(wb.X, wb.Y)] &^ wb.Dir.bit()
	ni := fp.walls[fp.index(n.X, n.Y)] &^ wb.Dir.Inverse().bit()
	return ci != 0 && ni != 0
}

// OpenSides returns how many walls of (x,y) are open.
func (fp *Floorplan) OpenSides(x, y int) int {
	if !fp.InBounds(x, y) {
		return 0
	}
	return 4 - bits.OnesCount8(fp.walls[fp.index(x, y)])
}

// InteriorWallboards returns the number of walls between two in-grid cells.
func (fp *Floorplan) InteriorWallboards() int {
	return (fp.width-1)*fp.height + fp.width*(fp.height-1)
}

// WallCount returns how many interior walls are still present.
func (fp *Floorplan) WallCount() int {
	return fp.InteriorWallboards() - fp.removed
}

// RemovedCount returns how many interior walls are open.
func (fp *Floorplan) RemovedCount() int {
	return fp.removed
}

// SetExit opens the exterior wall of c facing d and records c as the exit.
// Returns ErrFrozen, ErrExitExists, ErrOutOfBounds if c is outside the grid,
// or ErrNotExterior if d does not face outside.
func (fp *Floorplan) SetExit(c Cell, d Direction) error {
	if fp.frozen {
		return ErrFrozen
	}
	if fp.exit >= 0 {
		return ErrExitExists
	}
	if !fp.InBounds(c.X, c.Y) {
		return fmt.Errorf("%w: %v", ErrOutOfBounds, c)
	}
	n := c.Neighbor(d)
	if fp.InBounds(n.X, n.Y) {
		return fmt.Errorf("%w: %v facing %s", ErrNotExterior, c, d)
	}
	i := fp.index(c.X, c.Y)
	fp.walls[i] &^= d.bit()
	fp.exit = i
	fp.exitDir = d

	return nil
}

// Exit returns the exit wallboard, if one was set.
func (fp *Floorplan) Exit() (Wallboard, bool) {
	if fp.exit < 0 {
		return Wallboard{}, false
	}
	c := fp.Coordinate(fp.exit)
	return Wallboard{X: c.X, Y: c.Y, Dir: fp.exitDir}, true
}

// IsExitPosition reports whether (x,y) is the exit cell.
func (fp *Floorplan) IsExitPosition(x, y int) bool {
	return fp.exit >= 0 && fp.InBounds(x, y) && fp.index(x, y) == fp.exit
}

// IsOnBorder reports whether (x,y) touches the outside of the grid.
func (fp *Floorplan) IsOnBorder(x, y int) bool {
	return fp.InBounds(x, y) && (x == 0 || y == 0 || x == fp.width-1 || y == fp.height-1)
}

// Freeze makes the floorplan read-only.
func (fp *Floorplan) Freeze() { fp.frozen = true }

// Frozen reports whether Freeze was called.
func (fp *Floorplan) Frozen() bool { return fp.frozen }

// Clone returns an unfrozen deep copy.
func (fp *Floorplan) Clone() *Floorplan {
	c := *fp
	c.walls = append([]uint8(nil), fp.walls...)
	c.borders = append([]uint8(nil), fp.borders...)
	c.rooms = append([]int32(nil), fp.rooms...)
	c.frozen = false
	return &c
}

// Equal reports whether two floorplans have the same walls, borders, rooms
// and exit.
func (fp *Floorplan) Equal(other *Floorplan) bool {
	if other == nil || fp.width != other.width || fp.height != other.height {
		return false
	}
	if fp.exit != other.exit || (fp.exit >= 0 && fp.exitDir != other.exitDir) {
		return false
	}
	for i := range fp.walls {
		if fp.walls[i] != other.walls[i] || fp.borders[i] != other.borders[i] || fp.rooms[i] != other.rooms[i] {
			return false
		}
	}
	return true
}
