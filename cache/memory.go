package cache

import (
	"context"
	"sync"

	"github.com/katalvlaran/lvmaze/floorplan"
)

// Memory is a process-local Cache. Entries are stored encoded, so callers
// never share a floorplan instance.
type Memory struct {
	mu    sync.RWMutex
	items map[string][]byte
}

// NewMemory returns an empty in-memory cache.
func NewMemory() *Memory {
	return &Memory{items: make(map[string][]byte)}
}

// Get implements Cache.
func (m *Memory) Get(_ context.Context, key string) (*floorplan.Floorplan, error) {
	m.mu.RLock()
	data, ok := m.items[key]
	m.mu.RUnlock()
	if !ok {
		return nil, ErrMiss
	}
	return decode(data)
}

// Put implements Cache.
func (m *Memory) Put(_ context.Context, key string, fp *floorplan.Floorplan) error {
	data, err := encode(fp)
	if err != nil {
		return err
	}
	m.mu.Lock()
	m.items[key] = data
	m.mu.Unlock()
	return nil
}

// Len returns the number of entries.
func (m *Memory) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.items)
}
