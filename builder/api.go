// SPDX-License-Identifier: MIT
// Package: lvmaze/builder
//
// api.go — public entry points for the builder package.
//
// Design contract:
//   • Builder.Build only tears down wallboards until the floorplan is one
//     component. Rooms, loops and the exit are Generate's business.
//   • Generate is the one orchestrator: rooms → pathways → repair → loops →
//     exit → floorplan.Verify → Freeze.
//   • Determinism: same floorplan size, method and options ⇒ same result.
//   • Cancellation: ctx is polled once per round; its error is returned as is.

package builder

import (
	"context"
	"fmt"
	"strings"

	"github.com/katalvlaran/lvmaze/floorplan"
	"github.com/sirupsen/logrus"
)

// Method selects a spanning-tree strategy.
type Method int

const (
	// MethodDFS is the randomized depth-first backtracker.
	MethodDFS Method = iota
	// MethodPrim grows one tree from a random cell through a random frontier.
	MethodPrim
	// MethodKruskal joins components along wallboards in shuffled order.
	MethodKruskal
	// MethodBoruvka merges every component along its cheapest wallboard per round.
	MethodBoruvka
)

var methodNames = [...]string{
	MethodDFS:     "dfs",
	MethodPrim:    "prim",
	MethodKruskal: "kruskal",
	MethodBoruvka: "boruvka",
}

// Methods lists every supported method.
var Methods = []Method{MethodDFS, MethodPrim, MethodKruskal, MethodBoruvka}

// String implements fmt.Stringer.
func (m Method) String() string {
	if m.Valid() {
		return methodNames[m]
	}
	return fmt.Sprintf("Method(%d)", int(m))
}

// Valid reports whether m names a builder.
func (m Method) Valid() bool {
	return m >= MethodDFS && m <= MethodBoruvka
}

// ParseMethod maps a case-insensitive name ("dfs", "prim", "kruskal",
// "boruvka") to its Method. Returns ErrUnknownMethod otherwise.
func ParseMethod(s string) (Method, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for m, n := range methodNames {
		if n == name {
			return Method(m), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownMethod, s)
}

// Builder tears down wallboards of a floorplan until all cells form one
// component. Builders never remove border walls.
type Builder interface {
	Method() Method
	Build(ctx context.Context, fp *floorplan.Floorplan) error
}

// New returns the builder for m configured by opts.
// Returns ErrUnknownMethod for unsupported methods.
func New(m Method, opts ...Option) (Builder, error) {
	return newBuilder(m, newBuilderConfig(opts...))
}

func newBuilder(m Method, cfg *builderConfig) (Builder, error) {
	switch m {
	case MethodDFS:
		return &dfsBuilder{cfg: cfg}, nil
	case MethodPrim:
		return &primBuilder{cfg: cfg}, nil
	case MethodKruskal:
		return &kruskalBuilder{cfg: cfg}, nil
	case MethodBoruvka:
		return &boruvkaBuilder{cfg: cfg}, nil
	}
	return nil, fmt.Errorf("%w: %v", ErrUnknownMethod, m)
}

// Generate turns a fresh floorplan into a finished, frozen maze:
//
//  1. imperfect mazes get up to WithRooms rooms;
//  2. the builder for m connects every cell and cells it opened on all four
//     sides get one wall back;
//  3. imperfect mazes get WithExtraWalls additional openings;
//  4. the exit is opened on the border cell farthest from a random anchor;
//  5. floorplan.Verify checks the result and the floorplan is frozen.
//
// On error the floorplan is left in an unspecified state.
// Returns ErrNilFloorplan, ErrUnknownMethod, ErrNoCandidate, ErrDisconnected,
// errors wrapping floorplan.ErrInvariant, or ctx.Err().
func Generate(ctx context.Context, fp *floorplan.Floorplan, m Method, opts ...Option) error {
	if fp == nil {
		return ErrNilFloorplan
	}
	cfg := newBuilderConfig(opts...)
	b, err := newBuilder(m, cfg)
	if err != nil {
		return err
	}
	log := cfg.log.WithFields(logrus.Fields{
		"method":  m.String(),
		"width":   fp.Width(),
		"height":  fp.Height(),
		"perfect": cfg.perfect,
	})
	cfg.report(0)

	if !cfg.perfect && cfg.rooms > 0 {
		placed := placeRooms(fp, cfg)
		log.WithField("rooms", placed).Debug("rooms placed")
	}
	if err := b.Build(ctx, fp); err != nil {
		return err
	}
	repaired, err := repairOpenCells(ctx, fp, cfg)
	if err != nil {
		return err
	}
	if repaired > 0 {
		log.WithField("cells", repaired).Debug("fully open cells repaired")
	}
	if !cfg.perfect {
		opened, err := addLoops(ctx, fp, cfg)
		if err != nil {
			return err
		}
		log.WithField("extra_walls", opened).Debug("loops added")
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := placeExit(fp, cfg); err != nil {
		return err
	}
	if err := floorplan.Verify(fp); err != nil {
		return fmt.Errorf("builder: %v: %w", m, err)
	}
	fp.Freeze()
	cfg.report(100)
	log.WithField("removed", fp.RemovedCount()).Debug("maze generated")

	return nil
}
