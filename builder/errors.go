// SPDX-License-Identifier: MIT
// Package: lvmaze/builder
//
// errors.go — sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables (package-level) are exposed.
//   • Callers branch with errors.Is(err, ErrX); messages are not a contract.
//   • Implementations attach context with %w.
//   • Builders never panic at runtime; option constructors panic on
//     meaningless arguments.
//   • Cancellation is reported as ctx.Err(), unwrapped.

package builder

import "errors"

// ErrUnknownMethod indicates a Method value or name that no builder implements.
// Usage: if errors.Is(err, ErrUnknownMethod) { /* reject configuration */ }.
var ErrUnknownMethod = errors.New("builder: unknown method")

// ErrNilFloorplan indicates a nil *floorplan.Floorplan was passed.
var ErrNilFloorplan = errors.New("builder: floorplan is nil")

// ErrNoCandidate indicates a component has no removable wallboard leading
// out of it while other components remain. The floorplan cannot be connected.
// Classification: invariant violation, fatal for the generation.
var ErrNoCandidate = errors.New("builder: component has no removable wallboard")

// ErrDisconnected indicates a builder ran out of candidates before reaching
// every cell.
// Classification: invariant violation, fatal for the generation.
var ErrDisconnected = errors.New("builder: cells left unreached")
