// Marquee - Movie Recommendations by Genre, Mood and Content Similarity
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/goccy/go-json"

	"github.com/tomtom215/marquee/internal/metrics"
)

// ErrNilStore is returned when a store is used before it is configured.
var ErrNilStore = errors.New("cache: store not configured")

// Store caches JSON-encodable values by key. Both the in-process cache and
// Redis implement it, so clients do not care which backend is configured.
type Store interface {
	// GetJSON decodes the value for key into dest. It reports false with a
	// nil error on a miss.
	GetJSON(ctx context.Context, key string, dest any) (bool, error)

	// SetJSON encodes value and stores it for ttl.
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases the backend.
	Close() error
}

// MemoryStore is a Store backed by Cache. Values are kept JSON-encoded so
// callers never share mutable state through the cache.
type MemoryStore struct {
	cache *Cache
	name  string
}

// NewMemoryStore creates an in-process store. name labels cache metrics.
func NewMemoryStore(name string, ttl time.Duration) *MemoryStore {
	return &MemoryStore{cache: New(ttl), name: name}
}

// GetJSON implements Store.
func (s *MemoryStore) GetJSON(_ context.Context, key string, dest any) (bool, error) {
	v, ok := s.cache.Get(key)
	metrics.RecordCacheLookup(s.name, ok)
	if !ok {
		return false, nil
	}
	raw, ok := v.([]byte)
	if !ok {
		return false, fmt.Errorf("cache: unexpected entry type %T for %s", v, key)
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		return false, fmt.Errorf("cache: decode %s: %w", key, err)
	}
	return true, nil
}

// SetJSON implements Store.
func (s *MemoryStore) SetJSON(_ context.Context, key string, value any, ttl time.Duration) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("cache: encode %s: %w", key, err)
	}
	s.cache.SetWithTTL(key, raw, ttl)
	return nil
}

// Delete implements Store.
func (s *MemoryStore) Delete(_ context.Context, key string) error {
	s.cache.Delete(key)
	return nil
}

// Close stops the sweeper goroutine.
func (s *MemoryStore) Close() error {
	s.cache.Close()
	return nil
}

// Stats exposes the underlying cache counters.
func (s *MemoryStore) Stats() Stats {
	return s.cache.GetStats()
}

var (
	_ Store = (*MemoryStore)(nil)
	_ Store = (*RedisStore)(nil)
)
