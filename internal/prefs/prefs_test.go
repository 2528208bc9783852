// Copyright (c) 2026 Swahilipot Hub. All rights reserved.

package prefs_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/swahilipothub/hubclient/internal/i18n"
	"github.com/swahilipothub/hubclient/internal/platform/storage"
	"github.com/swahilipothub/hubclient/internal/prefs"
)

// countingStore wraps a memory store and counts writes so tests can assert
// the no-extra-persistence property of repeated reads.
type countingStore struct {
	*storage.MemoryStore
	writes int
}

func (store *countingStore) Set(ctx context.Context, key string, value any) error {
	store.writes++
	return store.MemoryStore.Set(ctx, key, value)
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

/*
TestCurrent_Defaults verifies that with nothing persisted, the theme derives
from the host color-scheme signal and the language defaults to English, and
that the initializing resolution persists exactly once.
*/
func TestCurrent_Defaults(t *testing.T) {
	ctx := context.Background()
	kv := &countingStore{MemoryStore: storage.NewMemoryStore()}

	darkScheme := func() prefs.Theme { return prefs.ThemeDark }
	store := prefs.NewStore(kv, darkScheme, nil, testLogger())

	preference, err := store.Current(ctx)
	require.NoError(t, err)
	assert.Equal(t, prefs.ThemeDark, preference.Theme)
	assert.Equal(t, i18n.English, preference.Language)

	// One write per preference key, nothing more.
	initializingWrites := kv.writes
	assert.Equal(t, 2, initializingWrites)

	// Repeated reads yield the same value and no additional writes.
	again, err := store.Current(ctx)
	require.NoError(t, err)
	assert.Equal(t, preference, again)
	assert.Equal(t, initializingWrites, kv.writes)
}

/*
TestToggleTheme_Involution verifies light↔dark flipping, persistence across
store instances, and the surface side effect.
*/
func TestToggleTheme_Involution(t *testing.T) {
	ctx := context.Background()
	kv := storage.NewMemoryStore()

	var surfaceDark bool
	store := prefs.NewStore(kv, nil, func(dark bool) { surfaceDark = dark }, testLogger())

	first, err := store.ToggleTheme(ctx)
	require.NoError(t, err)
	assert.Equal(t, prefs.ThemeDark, first)
	assert.True(t, surfaceDark)

	second, err := store.ToggleTheme(ctx)
	require.NoError(t, err)
	assert.Equal(t, prefs.ThemeLight, second)
	assert.False(t, surfaceDark)

	// A fresh store on the same backend restores the persisted value.
	restored, err := prefs.NewStore(kv, nil, nil, testLogger()).Current(ctx)
	require.NoError(t, err)
	assert.Equal(t, prefs.ThemeLight, restored.Theme)
}

/*
TestToggleLanguage_Involution verifies en↔sw flipping and persistence.
*/
func TestToggleLanguage_Involution(t *testing.T) {
	ctx := context.Background()
	kv := storage.NewMemoryStore()
	store := prefs.NewStore(kv, nil, nil, testLogger())

	first, err := store.ToggleLanguage(ctx)
	require.NoError(t, err)
	assert.Equal(t, i18n.Swahili, first)

	second, err := store.ToggleLanguage(ctx)
	require.NoError(t, err)
	assert.Equal(t, i18n.English, second)

	restored, err := prefs.NewStore(kv, nil, nil, testLogger()).Current(ctx)
	require.NoError(t, err)
	assert.Equal(t, i18n.English, restored.Language)
}

/*
TestCurrent_RegionalLanguageNormalized verifies that a regional language tag
persisted by another client collapses onto its base table instead of being
reset, and that the collapsed code is re-persisted.
*/
func TestCurrent_RegionalLanguageNormalized(t *testing.T) {
	ctx := context.Background()
	kv := storage.NewMemoryStore()
	kv.SetRaw("language", []byte(`"sw-TZ"`))

	store := prefs.NewStore(kv, nil, nil, testLogger())

	preference, err := store.Current(ctx)
	require.NoError(t, err)
	assert.Equal(t, i18n.Swahili, preference.Language)
	assert.Equal(t, "Ondoka", store.Translate(ctx, "logout"))

	var persisted i18n.Language
	require.NoError(t, kv.Get(ctx, "language", &persisted))
	assert.Equal(t, i18n.Swahili, persisted)
}

/*
TestCurrent_CorruptEntriesReset verifies that undecodable or out-of-range
persisted preferences are discarded and replaced with defaults instead of
failing.
*/
func TestCurrent_CorruptEntriesReset(t *testing.T) {
	ctx := context.Background()
	kv := storage.NewMemoryStore()

	kv.SetRaw("theme", []byte(`{not json`))
	kv.SetRaw("language", []byte(`""`))

	store := prefs.NewStore(kv, nil, nil, testLogger())

	preference, err := store.Current(ctx)
	require.NoError(t, err)
	assert.Equal(t, prefs.ThemeLight, preference.Theme)
	assert.Equal(t, i18n.English, preference.Language)
}

/*
TestTranslate resolves through the persisted language preference.
*/
func TestTranslate(t *testing.T) {
	ctx := context.Background()
	store := prefs.NewStore(storage.NewMemoryStore(), nil, nil, testLogger())

	assert.Equal(t, "Logout", store.Translate(ctx, "logout"))

	_, err := store.ToggleLanguage(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Ondoka", store.Translate(ctx, "logout"))
}
