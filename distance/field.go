package distance

import (
	"fmt"

	"github.com/katalvlaran/lvmaze/floorplan"
)

// Width returns the number of columns.
func (f *Field) Width() int { return f.width }

// Height returns the number of rows.
func (f *Field) Height() int { return f.height }

// Distance returns the step count of (x,y), or Unreachable. Positions outside
// the grid are Unreachable.
func (f *Field) Distance(x, y int) int {
	if x < 0 || x >= f.width || y < 0 || y >= f.height {
		return Unreachable
	}
	return f.dists[y*f.width+x]
}

// IsReachable reports whether (x,y) has a finite distance.
func (f *Field) IsReachable(x, y int) bool {
	return f.Distance(x, y) != Unreachable
}

// AllReachable reports whether every cell has a finite distance.
func (f *Field) AllReachable() bool {
	return f.reached == len(f.dists)
}

// MaxDistance returns the largest finite distance.
func (f *Field) MaxDistance() int {
	return f.max
}

// StartPosition returns the cell farthest from the sources; ties go to the
// first such cell in row-major order.
func (f *Field) StartPosition() floorplan.Cell {
	return f.farthest
}

// Sources returns the cells the search started from.
func (f *Field) Sources() []floorplan.Cell {
	return append([]floorplan.Cell(nil), f.sources...)
}

// Values returns a copy of the distances in row-major order.
func (f *Field) Values() []int {
	return append([]int(nil), f.dists...)
}

// Equal reports whether two fields have the same shape and distances.
func (f *Field) Equal(other *Field) bool {
	if other == nil || f.width != other.width || f.height != other.height {
		return false
	}
	for i, d := range f.dists {
		if other.dists[i] != d {
			return false
		}
	}
	return true
}

// NeighborCloserToExit returns the open neighbor of (x,y) with the smallest
// distance below that of (x,y). Equal candidates are resolved in
// Direction order N, E, S, W.
// Returns ErrOutOfBounds, ErrUnreachable, or ErrAtExit when (x,y) is a
// source.
func (f *Field) NeighborCloserToExit(x, y int) (floorplan.Cell, error) {
	if x < 0 || x >= f.width || y < 0 || y >= f.height {
		return floorplan.Cell{}, fmt.Errorf("%w: (%d,%d)", ErrOutOfBounds, x, y)
	}
	own := f.dists[y*f.width+x]
	switch own {
	case Unreachable:
		return floorplan.Cell{}, fmt.Errorf("%w: (%d,%d)", ErrUnreachable, x, y)
	case 0:
		return floorplan.Cell{}, ErrAtExit
	}

	c := floorplan.Cell{X: x, Y: y}
	best, bestDist := c, own
	for _, d := range floorplan.Directions {
		if f.fp.HasWall(x, y, d) {
			continue
		}
		nb := c.Neighbor(d)
		nd := f.Distance(nb.X, nb.Y)
		if nd != Unreachable && nd < bestDist {
			best, bestDist = nb, nd
		}
	}
	if best == c {
		// a reached cell always has a neighbor one step closer
		return floorplan.Cell{}, fmt.Errorf("%w: no closer neighbor of (%d,%d)", ErrUnreachable, x, y)
	}
	return best, nil
}
