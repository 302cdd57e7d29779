// Package builder turns a fresh floorplan.Floorplan into a maze by tearing
// down wallboards until every cell is connected.
//
// The package offers the following key components:
//
//   - Spanning-tree builders (Builder implementations, selected by Method):
//     – MethodDFS:      randomized depth-first backtracker, long corridors.
//     – MethodPrim:     frontier growth from one random cell.
//     – MethodKruskal:  shuffled wallboards joined through union-find.
//     – MethodBoruvka:  every component merges along its cheapest wallboard
//     each round; weights 1–10 with random tie ranks.
//   - Generate, the orchestrator:
//     – room pre-pass (imperfect mazes): 2×k rooms with corner doors;
//     – pathways via the chosen Builder;
//     – loop post-pass (imperfect mazes): extra openings;
//     – exit placement on the border cell farthest from a random anchor;
//     – floorplan.Verify and Freeze.
//   - Configuration primitives:
//     – Option:        a function that mutates builderConfig before use.
//     – WithSeed / WithRand, WithPerfect, WithRooms, WithExtraWalls,
//     WithProgress, WithLogger.
//
// Guarantees:
//
//   - Every generated maze is connected and has exactly one exit.
//   - Perfect mazes are spanning trees: exactly W×H-1 interior walls removed.
//   - Every cell of a generated maze keeps at least one wall. Builders prefer
//     wallboards that leave both cells with a wall; when Build had to open a
//     cell on all four sides, Generate closes one side again and rejoins the
//     maze elsewhere.
//   - Determinism: same size, method and seed ⇒ identical floorplans.
//   - Cancellation: ctx is polled once per builder round; Generate returns
//     ctx.Err() and leaves the floorplan unfrozen.
//
// Errors:
//
//   - ErrUnknownMethod: configuration error.
//   - ErrNilFloorplan: nil input.
//   - ErrNoCandidate, ErrDisconnected, floorplan.ErrInvariant: the maze could
//     not be completed; the result must not be used.
package builder
