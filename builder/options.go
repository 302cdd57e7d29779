// SPDX-License-Identifier: MIT
// Package: lvmaze/builder
//
// options.go — functional options for the builder package.
//
// Contract:
//   • Options are functional (type Option func(*builderConfig)).
//   • Option constructors validate and panic on meaningless inputs.
//     Builders themselves never panic.
//   • Determinism is explicit: the same seed yields the same floorplan.
//   • No hidden globals; everything flows through builderConfig.

package builder

import (
	"math/rand"

	"github.com/sirupsen/logrus"
)

// Option customizes a builder by mutating its builderConfig before the build
// begins. Later options override earlier ones.
type Option func(*builderConfig)

// WithSeed creates a new *rand.Rand with the given seed (deterministic).
func WithSeed(seed int64) Option {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand provides an explicit RNG. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithPerfect selects a perfect maze (a spanning tree, no rooms) or an
// imperfect one with rooms and extra openings.
func WithPerfect(perfect bool) Option {
	return func(c *builderConfig) {
		c.perfect = perfect
	}
}

// WithRooms sets how many rooms an imperfect maze tries to place.
// Panics on negative n.
func WithRooms(n int) Option {
	if n < 0 {
		panic("builder: WithRooms(n<0)")
	}
	return func(c *builderConfig) {
		c.rooms = n
	}
}

// WithExtraWalls sets how many additional walls an imperfect maze opens after
// the spanning structure is complete. Panics on negative n.
func WithExtraWalls(n int) Option {
	if n < 0 {
		panic("builder: WithExtraWalls(n<0)")
	}
	return func(c *builderConfig) {
		c.extraWalls = n
	}
}

// WithProgress registers a callback receiving completion percentages in
// [0,100]. Values never decrease within one Generate call. Panics on nil.
func WithProgress(fn func(percent int)) Option {
	if fn == nil {
		panic("builder: WithProgress(nil)")
	}
	return func(c *builderConfig) {
		c.progress = fn
	}
}

// WithLogger routes builder diagnostics to l. Panics on nil.
func WithLogger(l logrus.FieldLogger) Option {
	if l == nil {
		panic("builder: WithLogger(nil)")
	}
	return func(c *builderConfig) {
		c.log = l
	}
}
