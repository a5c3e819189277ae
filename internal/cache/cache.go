// Package cache provides a target-cache capability: parsed target maps
// keyed by their descriptor source, so large target lists are parsed
// once per run rather than on every rebuild. Implementations are
// selected by configuration, not by dynamic name resolution.
package cache

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/openpore/channelmap/internal/targets"
)

// ErrUnknownBackend is returned for an unrecognized cache backend name.
var ErrUnknownBackend = errors.New("unknown cache backend")

// TargetCache stores parsed target maps by source key.
type TargetCache interface {
	// Get returns the cached map for key, with ok=false on a miss.
	Get(ctx context.Context, key string) (m targets.Map, ok bool, err error)

	// Put stores the map for key, replacing any previous entry.
	Put(ctx context.Context, key string, m targets.Map) error

	// Close releases any resources.
	Close() error
}

// New constructs a cache backend by name: "memory" (the default when
// name is empty) or "sqlite" (dsn is the database file path).
func New(name, dsn string) (TargetCache, error) {
	switch name {
	case "", "memory":
		return NewMemory(), nil
	case "sqlite":
		if dsn == "" {
			return nil, fmt.Errorf("sqlite cache requires a dsn")
		}
		return NewSQLite(dsn)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, name)
	}
}

// Memory is an in-process TargetCache.
type Memory struct {
	mu sync.RWMutex
	m  map[string]targets.Map
}

// NewMemory returns an empty in-memory cache.
func NewMemory() *Memory {
	return &Memory{m: make(map[string]targets.Map)}
}

func (c *Memory) Get(ctx context.Context, key string) (targets.Map, bool, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	m, ok := c.m[key]
	return m, ok, nil
}

func (c *Memory) Put(ctx context.Context, key string, m targets.Map) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.m[key] = m
	return nil
}

func (c *Memory) Close() error { return nil }
