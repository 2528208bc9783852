// Copyright (c) 2026 Swahilipot Hub. All rights reserved.

package storage

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/swahilipothub/hubclient/internal/platform/config"
)

// Open selects and initializes the [Store] backend named by the configuration.
//
// # Returns
//   - The ready store.
//   - A close function releasing backend resources (never nil).
//   - An initialization error, e.g. an unreachable Redis instance.
func Open(context context.Context, cfg *config.Config, logger *slog.Logger) (Store, func() error, error) {
	switch cfg.StorageBackend {

	case config.StorageMemory:
		return NewMemoryStore(), func() error { return nil }, nil

	case config.StorageSQLite:
		store, err := NewSQLiteStore(context, cfg.StatePath, logger)
		if err != nil {
			return nil, nil, err
		}
		return store, store.Close, nil

	case config.StorageRedis:
		store, err := NewRedisStore(context, cfg.RedisURL, logger)
		if err != nil {
			return nil, nil, err
		}
		return store, store.Close, nil

	default:
		// config.Load validates the selector; this guards direct construction.
		return nil, nil, fmt.Errorf("storage: unknown backend %q", cfg.StorageBackend)
	}
}
