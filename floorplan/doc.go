// Package floorplan models a rectangular maze grid as cells separated by
// wallboards, the mutable state every maze builder works on.
//
// What:
//
//   - Cell and Direction address the grid; Wallboard names one side of a wall.
//   - Floorplan stores, per cell, which of its four walls are present and which
//     of them are load-bearing (border) and may never be torn down.
//   - Rooms are rectangles whose inner walls are removed up front and whose
//     outline becomes border except for a few door wallboards.
//   - Exactly one exterior wall is opened as the exit.
//
// Why:
//
//   - Builders need O(1) wall queries and symmetric wall deletion.
//   - Distance fields and solvers need a read-only view once generation ends.
//
// Layout:
//
//   - All per-cell state lives in flat slices indexed y*Width+x.
//   - Wall presence and border flags are 4-bit masks, one bit per Direction.
//
// Lifecycle:
//
//	New -> MarkRoom* -> DeleteWallboard* -> SetExit -> Verify -> Freeze
//
// After Freeze every mutator returns ErrFrozen.
//
// Complexity:
//
//   - HasWall, CanTearDown, DeleteWallboard, AddWallboard: O(1).
//   - ConnectedComponents, Verify: O(W×H).
//
// Errors:
//
//   - ErrInvalidDimensions: non-positive width or height, or more than
//     math.MaxInt32 cells.
//   - ErrOutOfBounds: a cell or its neighbor lies outside the grid.
//   - ErrBorderWall: the wallboard is load-bearing.
//   - ErrExitExists, ErrNotExterior: misuse of SetExit.
//   - ErrRoomOverlap, ErrInvalidDoor: misuse of MarkRoom.
//   - ErrFrozen: mutation after Freeze.
//   - ErrInvariant: Verify found a broken maze.
package floorplan
