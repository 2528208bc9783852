// Copyright (c) 2026 Swahilipot Hub. All rights reserved.

package storage

import (
	stdctx "context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/swahilipothub/hubclient/internal/platform/constants"
)

// Opiniated default timeouts for Redis operations.
const (
	dialTimeout  = 3 * time.Second
	readTimeout  = 2 * time.Second
	writeTimeout = 2 * time.Second
	pingTimeout  = 2 * time.Second
)

// RedisStore implements [Store] on a shared Redis instance. Kiosk fleets use
// it so a terminal keeps its preferences wherever it is plugged in.
//
// Every key is namespaced under [constants.RedisPrefixState].
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore parses a Redis URL and returns a ready-to-use store.
//
// # Parameters
//   - context: Context for the initial ping.
//   - redisURL: Redis connection URL.
//   - logger: Structured logger for connection events.
func NewRedisStore(context stdctx.Context, redisURL string, logger *slog.Logger) (*RedisStore, error) {
	options, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("redis: invalid URL: %w", err)
	}

	// Pool configuration Tuning. The client issues one request at a time, so
	// the pool stays small.
	options.PoolSize = 5
	options.MinIdleConns = 1
	options.MaxIdleConns = 2

	options.DialTimeout = dialTimeout
	options.ReadTimeout = readTimeout
	options.WriteTimeout = writeTimeout

	client := redis.NewClient(options)

	// Validate connectivity immediately at startup.
	pingCtx, cancel := stdctx.WithTimeout(context, pingTimeout)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis: ping failed: %w", err)
	}

	logger.Info("redis state store connected",
		slog.String("addr", options.Addr),
		slog.Int("pool_size", options.PoolSize),
	)

	return &RedisStore{client: client}, nil
}

// Get decodes the value stored under key into target.
func (store *RedisStore) Get(ctx stdctx.Context, key string, target any) error {
	raw, err := store.client.Get(ctx, constants.RedisPrefixState+key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return ErrNotFound
		}
		return fmt.Errorf("redis_state_get_failed: %w", err)
	}
	return decode(raw, target)
}

// Set stores the JSON encoding of value under key. Entries never expire;
// local state lives until the user logs out or toggles it away.
func (store *RedisStore) Set(ctx stdctx.Context, key string, value any) error {
	raw, err := encode(value)
	if err != nil {
		return err
	}

	if err := store.client.Set(ctx, constants.RedisPrefixState+key, raw, 0).Err(); err != nil {
		return fmt.Errorf("redis_state_set_failed: %w", err)
	}
	return nil
}

// Remove deletes the entry under key.
func (store *RedisStore) Remove(ctx stdctx.Context, key string) error {
	if err := store.client.Del(ctx, constants.RedisPrefixState+key).Err(); err != nil {
		return fmt.Errorf("redis_state_remove_failed: %w", err)
	}
	return nil
}

// Close releases the underlying Redis client.
func (store *RedisStore) Close() error {
	return store.client.Close()
}
