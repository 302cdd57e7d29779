package floorplan

import "errors"

// Sentinel errors for floorplan operations.
var (
	// ErrInvalidDimensions indicates a non-positive width or height, or a grid
	// too large to index.
	ErrInvalidDimensions = errors.New("floorplan: invalid width or height")
	// ErrOutOfBounds indicates a cell or its neighbor lies outside the grid.
	ErrOutOfBounds = errors.New("floorplan: position out of bounds")
	// ErrBorderWall indicates an attempt to remove a load-bearing wall.
	ErrBorderWall = errors.New("floorplan: wall is part of the border")
	// ErrExitExists indicates a second exit was requested.
	ErrExitExists = errors.New("floorplan: exit already set")
	// ErrNotExterior indicates the exit wallboard does not face outside the grid.
	ErrNotExterior = errors.New("floorplan: exit must be an exterior wall")
	// ErrRoomOverlap indicates a room would cover cells of another room.
	ErrRoomOverlap = errors.New("floorplan: room overlaps an existing room")
	// ErrInvalidDoor indicates a door that is not on the outline of its room.
	ErrInvalidDoor = errors.New("floorplan: door must lead from a room cell to a cell outside the room")
	// ErrFrozen indicates a mutation after Freeze.
	ErrFrozen = errors.New("floorplan: floorplan is frozen")
	// ErrInvariant indicates a structural invariant does not hold.
	ErrInvariant = errors.New("floorplan: invariant violated")
)
