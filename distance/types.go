package distance

import (
	"errors"

	"github.com/katalvlaran/lvmaze/floorplan"
)

// Unreachable marks cells the search did not reach.
const Unreachable = -1

// Sentinel errors for distance computation and queries.
var (
	// ErrNilFloorplan is returned if a nil floorplan pointer is passed.
	ErrNilFloorplan = errors.New("distance: floorplan is nil")

	// ErrNoExit is returned by Compute when the floorplan has no exit.
	ErrNoExit = errors.New("distance: floorplan has no exit")

	// ErrNoSource is returned by ComputeFrom without source cells.
	ErrNoSource = errors.New("distance: no source cell")

	// ErrOutOfBounds is returned for positions outside the grid.
	ErrOutOfBounds = errors.New("distance: position out of bounds")

	// ErrAtExit is returned when asking for a closer neighbor at a source.
	ErrAtExit = errors.New("distance: already at the exit")

	// ErrUnreachable is returned when the queried cell was not reached.
	ErrUnreachable = errors.New("distance: cell is unreachable")
)

// Field holds one distance per cell, row-major, and the floorplan it was
// computed on. The floorplan must not change while the field is in use.
type Field struct {
	fp       *floorplan.Floorplan
	width    int
	height   int
	dists    []int
	sources  []floorplan.Cell
	farthest floorplan.Cell
	max      int
	reached  int
}
