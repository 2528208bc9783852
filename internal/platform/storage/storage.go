// Copyright (c) 2026 Swahilipot Hub. All rights reserved.

/*
Package storage abstracts the persisted local state of the booking client
behind a small key-value interface.

The browser original kept this state in window.localStorage. Here the same
contract (string keys, JSON-encoded values, absence is a valid state) is
backed by any of three media:

  - Memory: volatile, used by tests and as a safe fallback.
  - SQLite: a single-file database, the default for desktop installations.
  - Redis: a shared instance for kiosk fleets.

Core Responsibilities:

  - Opacity: Values are JSON documents; backends never interpret them.
  - Absence: A missing key yields [ErrNotFound], never a fatal error.
  - Corruption: An undecodable value yields [ErrCorrupt] so callers can
    discard the entry and substitute a default.
*/
package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
)

// ErrNotFound is returned by [Store.Get] when the key has no entry.
// Absence is a valid, handled state for every key the client persists.
var ErrNotFound = errors.New("storage: key not found")

// ErrCorrupt is returned by [Store.Get] when the stored value exists but
// cannot be decoded into the target. Callers recover by removing the entry
// and substituting a default (fail-safe, not fail-loud).
var ErrCorrupt = errors.New("storage: stored value is corrupt")

// Store is the persistence contract for all client-side state.
//
// Implementations must be safe for use from the single event loop that owns
// them; multi-writer coordination across processes is out of scope.
type Store interface {
	// Get decodes the JSON value stored under key into target.
	// Returns [ErrNotFound] when absent and [ErrCorrupt] when undecodable.
	Get(ctx context.Context, key string, target any) error

	// Set encodes value as JSON and stores it under key, replacing any
	// previous entry.
	Set(ctx context.Context, key string, value any) error

	// Remove deletes the entry under key. Removing an absent key is a no-op.
	Remove(ctx context.Context, key string) error
}

// encode marshals a value for storage. Shared by all backends so every medium
// carries the same JSON representation.
func encode(value any) ([]byte, error) {
	raw, err := json.Marshal(value)
	if err != nil {
		return nil, fmt.Errorf("storage_encode_failed: %w", err)
	}
	return raw, nil
}

// decode unmarshals a stored value, mapping failures to [ErrCorrupt].
func decode(raw []byte, target any) error {
	if err := json.Unmarshal(raw, target); err != nil {
		return fmt.Errorf("%w: %w", ErrCorrupt, err)
	}
	return nil
}
