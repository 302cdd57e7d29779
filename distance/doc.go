// Package distance computes the distance field of a finished maze: for every
// cell, the number of steps needed to walk out through the exit.
//
// What
//
//   - Compute runs a breadth-first search seeded at the exit cell, stepping
//     only through open walls of a floorplan.Floorplan.
//   - ComputeFrom does the same from any set of source cells; builders use it
//     to find the cell farthest from a random point before placing the exit.
//   - Field answers the queries solvers rely on: the distance of a cell, the
//     neighbor one step closer to the exit, and the start position (the cell
//     farthest from the exit).
//
// Determinism
//
//	Neighbors are explored in Direction order N, E, S, W and ties are broken
//	the same way, so equal floorplans yield equal fields and equal answers.
//
// Unreachable cells
//
//	Cells the search never reaches keep the Unreachable sentinel. On a
//	verified floorplan there are none; the sentinel exists so that solvers
//	can detect a broken input instead of walking in circles.
//
// Complexity (N = width×height)
//
//   - Compute, ComputeFrom: O(N) time, O(N) memory.
//   - Distance, IsReachable, NeighborCloserToExit: O(1).
//   - StartPosition, MaxDistance: O(1), precomputed during the search.
//
// Errors
//
//   - ErrNilFloorplan: nil input.
//   - ErrNoExit: Compute on a floorplan without an exit.
//   - ErrNoSource, ErrOutOfBounds: bad ComputeFrom sources.
//   - ErrAtExit, ErrUnreachable: NeighborCloserToExit has no answer.
package distance
