// SPDX-License-Identifier: MIT
// Package: lvmaze/builder
//
// config.go — internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • rng        = rand.New(rand.NewSource(defaultSeed))
//   • perfect    = true
//   • rooms      = 0
//   • extraWalls = W×H / extraWallDivisor (imperfect mazes only)
//   • progress   = none
//   • log        = discarded

package builder

import (
	"io"
	"math/rand"

	"github.com/sirupsen/logrus"
)

// Deterministic defaults (named, no magic numbers).
const (
	defaultSeed           = int64(1)
	extraWallDivisor      = 20 // imperfect mazes open W×H/20 extra walls
	maxRoomSpan           = 5  // long side of a room; the short side is 2
	roomPlacementAttempts = 64
	minWeight             = 1 // Boruvka wallboard weights are in [minWeight, maxWeight]
	maxWeight             = 10
	pathwayShare          = 95 // percent of progress spent building pathways
)

// builderConfig aggregates every knob used by the builders.
type builderConfig struct {
	rng        *rand.Rand
	perfect    bool
	rooms      int
	extraWalls int // <0 selects the default fraction
	progress   func(int)
	log        logrus.FieldLogger
	lastReport int
}

// newBuilderConfig constructs a config with deterministic defaults and applies
// all options in order.
func newBuilderConfig(opts ...Option) *builderConfig {
	cfg := &builderConfig{
		perfect:    true,
		extraWalls: -1,
		lastReport: -1,
	}
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.rng == nil {
		cfg.rng = rand.New(rand.NewSource(defaultSeed))
	}
	if cfg.log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		cfg.log = l
	}
	return cfg
}

// report forwards percent to the progress callback if it advances.
func (c *builderConfig) report(percent int) {
	if percent > 100 {
		percent = 100
	}
	if c.progress == nil || percent <= c.lastReport {
		return
	}
	c.lastReport = percent
	c.progress(percent)
}

// step reports pathway progress: done out of total units of work.
func (c *builderConfig) step(done, total int) {
	if total <= 0 {
		return
	}
	c.report(done * pathwayShare / total)
}
