// Copyright (c) 2026 Swahilipot Hub. All rights reserved.

package storage

import (
	"context"
	"sync"
)

// MemoryStore implements [Store] with an in-process map.
//
// It is the default backend for tests and the fallback when no durable medium
// is configured. State does not survive a restart.
type MemoryStore struct {
	mu      sync.RWMutex
	entries map[string][]byte
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{entries: make(map[string][]byte)}
}

// Get decodes the value stored under key into target.
func (store *MemoryStore) Get(_ context.Context, key string, target any) error {
	store.mu.RLock()
	raw, ok := store.entries[key]
	store.mu.RUnlock()

	if !ok {
		return ErrNotFound
	}
	return decode(raw, target)
}

// Set stores the JSON encoding of value under key.
func (store *MemoryStore) Set(_ context.Context, key string, value any) error {
	raw, err := encode(value)
	if err != nil {
		return err
	}

	store.mu.Lock()
	store.entries[key] = raw
	store.mu.Unlock()
	return nil
}

// Remove deletes the entry under key.
func (store *MemoryStore) Remove(_ context.Context, key string) error {
	store.mu.Lock()
	delete(store.entries, key)
	store.mu.Unlock()
	return nil
}

// SetRaw stores an already-encoded value verbatim. Tests use this to simulate
// corrupt persisted payloads.
func (store *MemoryStore) SetRaw(key string, raw []byte) {
	store.mu.Lock()
	store.entries[key] = raw
	store.mu.Unlock()
}
