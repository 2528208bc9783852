// Copyright (c) 2026 Swahilipot Hub. All rights reserved.

package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	// Registers the pure-Go "sqlite" driver with database/sql.
	_ "modernc.org/sqlite"
)

// sqliteSchema holds the single key-value table. Values are stored as TEXT
// because every entry is a JSON document.
const sqliteSchema = `
CREATE TABLE IF NOT EXISTS kv_state (
	key   TEXT PRIMARY KEY,
	value TEXT NOT NULL
);
`

// SQLiteStore implements [Store] on a single-file SQLite database. It is the
// default durable medium for desktop installations of the client.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore opens (and if necessary creates) the database at path and
// ensures the state table exists.
//
// # Parameters
//   - context: Context for schema initialization.
//   - path: Database file path, or ":memory:" for a volatile store.
//   - logger: Structured logger for connection events.
func NewSQLiteStore(context context.Context, path string, logger *slog.Logger) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("sqlite: open %q: %w", path, err)
	}

	// Local state is accessed from a single event loop; one connection avoids
	// SQLITE_BUSY contention entirely.
	db.SetMaxOpenConns(1)

	if _, err := db.ExecContext(context, sqliteSchema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("sqlite: initialize schema: %w", err)
	}

	logger.Info("sqlite state store opened", slog.String("path", path))

	return &SQLiteStore{db: db}, nil
}

// Get decodes the value stored under key into target.
func (store *SQLiteStore) Get(ctx context.Context, key string, target any) error {
	var raw []byte

	err := store.db.QueryRowContext(ctx,
		`SELECT value FROM kv_state WHERE key = ?`, key,
	).Scan(&raw)

	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("sqlite_state_get_failed: %w", err)
	}

	return decode(raw, target)
}

// Set stores the JSON encoding of value under key, replacing any previous entry.
func (store *SQLiteStore) Set(ctx context.Context, key string, value any) error {
	raw, err := encode(value)
	if err != nil {
		return err
	}

	_, err = store.db.ExecContext(ctx,
		`INSERT INTO kv_state (key, value) VALUES (?, ?)
		 ON CONFLICT (key) DO UPDATE SET value = excluded.value`,
		key, raw,
	)
	if err != nil {
		return fmt.Errorf("sqlite_state_set_failed: %w", err)
	}

	return nil
}

// Remove deletes the entry under key. Removing an absent key is a no-op.
func (store *SQLiteStore) Remove(ctx context.Context, key string) error {
	if _, err := store.db.ExecContext(ctx,
		`DELETE FROM kv_state WHERE key = ?`, key,
	); err != nil {
		return fmt.Errorf("sqlite_state_remove_failed: %w", err)
	}
	return nil
}

// Close releases the underlying database handle.
func (store *SQLiteStore) Close() error {
	return store.db.Close()
}
