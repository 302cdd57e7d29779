// Package cache stores finished floorplans keyed by the order that produced
// them, so identical orders skip generation.
//
// Entries are encoded floorplan snapshots. Decoding re-runs floorplan.Verify,
// so a corrupted or tampered entry is rejected instead of handed to a solver.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/katalvlaran/lvmaze/floorplan"
)

var (
	// ErrMiss is returned by Get when the key is not cached.
	ErrMiss = errors.New("cache: miss")
	// ErrCorrupt is returned by Get when a cached entry cannot be decoded or
	// fails verification.
	ErrCorrupt = errors.New("cache: corrupt entry")
	// ErrLockLost is returned by an unlock func when the lock expired before
	// it was released.
	ErrLockLost = errors.New("cache: lock lost before release")
)

// Cache stores frozen floorplans.
type Cache interface {
	// Get returns the floorplan stored under key, ErrMiss or ErrCorrupt.
	Get(ctx context.Context, key string) (*floorplan.Floorplan, error)
	// Put stores fp under key, replacing any previous entry.
	Put(ctx context.Context, key string, fp *floorplan.Floorplan) error
}

// Locker is implemented by caches shared between processes. Lock blocks
// until key is held by the caller and returns the func releasing it.
type Locker interface {
	Lock(ctx context.Context, key string) (unlock func(context.Context) error, err error)
}

// encode serializes a floorplan snapshot.
func encode(fp *floorplan.Floorplan) ([]byte, error) {
	if fp == nil {
		return nil, errors.New("cache: nil floorplan")
	}
	return json.Marshal(fp.Snapshot())
}

// decode restores and verifies a floorplan.
func decode(data []byte) (*floorplan.Floorplan, error) {
	var s floorplan.Snapshot
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorrupt, err)
	}
	fp, err := floorplan.FromSnapshot(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCorrupt, err)
	}
	return fp, nil
}
