// Package kv provides the durable key-value backends the travel store
// persists through. The store only ever reads and writes three string blobs
// (one per collection), so the contract is deliberately tiny: Get and Set.
//
// Three implementations exist: Memory (tests, ephemeral runs), File (local
// single-user persistence, the default) and PG (Postgres-backed, selected
// when DATABASE_URL is configured).
package kv

import (
	"context"
	"sync"
)

// Store is the persistence contract the travel store writes through.
// Get reports whether the key was present; a missing key is not an error.
type Store interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
}

// Memory is a map-backed Store. Safe for concurrent use.
// The zero value is not usable; create with NewMemory.
type Memory struct {
	mu     sync.Mutex
	values map[string]string
}

// NewMemory returns an empty in-memory Store.
func NewMemory() *Memory {
	return &Memory{values: make(map[string]string)}
}

// Get returns the value stored under key, if any.
func (m *Memory) Get(_ context.Context, key string) (string, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.values[key]
	return v, ok, nil
}

// Set stores value under key, replacing any previous value.
func (m *Memory) Set(_ context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = value
	return nil
}

var _ Store = (*Memory)(nil)
