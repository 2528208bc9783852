// Copyright (c) 2026 Swahilipot Hub. All rights reserved.

package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/swahilipothub/hubclient/internal/platform/config"
)

/*
TestLoad_Defaults verifies that an empty environment yields the documented
development defaults.
*/
func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:3000", cfg.BackendURL)
	assert.Equal(t, config.StorageSQLite, cfg.StorageBackend)
	assert.Equal(t, "hubclient.db", cfg.StatePath)
	assert.Equal(t, "light", cfg.ColorScheme)
	assert.Equal(t, "3000", cfg.StubPort)
	assert.True(t, cfg.IsDevelopment())
	assert.False(t, cfg.IsProduction())
}

/*
TestLoad_Overrides verifies environment variables take precedence over
defaults.
*/
func TestLoad_Overrides(t *testing.T) {
	t.Setenv("BACKEND_URL", "http://backend.internal:8080")
	t.Setenv("STORAGE_BACKEND", config.StorageMemory)
	t.Setenv("COLOR_SCHEME", "dark")
	t.Setenv("ENVIRONMENT", "production")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "http://backend.internal:8080", cfg.BackendURL)
	assert.Equal(t, config.StorageMemory, cfg.StorageBackend)
	assert.Equal(t, "dark", cfg.ColorScheme)
	assert.True(t, cfg.IsProduction())
}

/*
TestLoad_RejectsUnknownStorageBackend verifies the selector validation.
*/
func TestLoad_RejectsUnknownStorageBackend(t *testing.T) {
	t.Setenv("STORAGE_BACKEND", "filesystem")

	_, err := config.Load()
	assert.ErrorContains(t, err, "STORAGE_BACKEND")
}
