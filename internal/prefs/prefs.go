// Copyright (c) 2026 Swahilipot Hub. All rights reserved.

/*
Package prefs implements the persisted display preferences of the booking
client: theme and language.

Both preferences are independent scalar values restored across restarts from
the key-value state store. Mutation happens only via toggles; every mutation
persists the new value. Absence is a valid state with defined defaults: theme
derives from the host color-scheme signal, language defaults to English.
*/
package prefs

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/swahilipothub/hubclient/internal/i18n"
	"github.com/swahilipothub/hubclient/internal/platform/apperr"
	"github.com/swahilipothub/hubclient/internal/platform/constants"
	"github.com/swahilipothub/hubclient/internal/platform/storage"
)

// Theme is a display mode of the rendered surface.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// Toggle flips between light and dark. An unknown value toggles to light so a
// corrupted preference cannot wedge the surface in an undefined mode.
func (t Theme) Toggle() Theme {
	if t == ThemeLight {
		return ThemeDark
	}
	return ThemeLight
}

// Preference bundles the two persisted display settings.
type Preference struct {
	Theme    Theme         `json:"theme"`
	Language i18n.Language `json:"language"`
}

// ColorSchemeFunc reports the host environment's preferred color scheme. It
// stands in for the browser's prefers-color-scheme media query and is only
// consulted when no theme has been persisted yet.
type ColorSchemeFunc func() Theme

// SurfaceFunc marks the rendered surface with the current dark-mode flag.
// Implementations must be idempotent; the store may invoke it redundantly.
type SurfaceFunc func(dark bool)

// Store owns the persisted preferences. It is created once at the application
// root and passed explicitly to the components that need it; there is no
// ambient singleton.
type Store struct {
	kv          storage.Store
	colorScheme ColorSchemeFunc
	markSurface SurfaceFunc
	logger      *slog.Logger
}

// NewStore constructs a preference store on the given state backend.
//
// colorScheme and markSurface may be nil; the defaults are a light scheme and
// a no-op surface.
func NewStore(kv storage.Store, colorScheme ColorSchemeFunc, markSurface SurfaceFunc, logger *slog.Logger) *Store {
	if colorScheme == nil {
		colorScheme = func() Theme { return ThemeLight }
	}
	if markSurface == nil {
		markSurface = func(bool) {}
	}
	return &Store{
		kv:          kv,
		colorScheme: colorScheme,
		markSurface: markSurface,
		logger:      logger,
	}
}

// Current returns the persisted preferences, resolving defaults for anything
// absent or corrupt.
//
// Resolving a default persists it once, so repeated calls without a toggle
// read back the same value and perform no further writes. The surface flag is
// re-applied on every call; the operation is idempotent.
func (store *Store) Current(ctx context.Context) (Preference, error) {
	theme, err := store.currentTheme(ctx)
	if err != nil {
		return Preference{}, err
	}

	lang, err := store.currentLanguage(ctx)
	if err != nil {
		return Preference{}, err
	}

	store.markSurface(theme == ThemeDark)

	return Preference{Theme: theme, Language: lang}, nil
}

// ToggleTheme flips light/dark, persists the new value, and marks the surface.
func (store *Store) ToggleTheme(ctx context.Context) (Theme, error) {
	current, err := store.currentTheme(ctx)
	if err != nil {
		return "", err
	}

	next := current.Toggle()
	if err := store.kv.Set(ctx, constants.StorageKeyTheme, next); err != nil {
		return "", fmt.Errorf("prefs_theme_persist_failed: %w", err)
	}

	store.markSurface(next == ThemeDark)
	store.logger.Debug("theme_toggled", slog.String("theme", string(next)))

	return next, nil
}

// ToggleLanguage flips en/sw and persists the new value.
func (store *Store) ToggleLanguage(ctx context.Context) (i18n.Language, error) {
	current, err := store.currentLanguage(ctx)
	if err != nil {
		return "", err
	}

	next := current.Toggle()
	if err := store.kv.Set(ctx, constants.StorageKeyLanguage, next); err != nil {
		return "", fmt.Errorf("prefs_language_persist_failed: %w", err)
	}

	store.logger.Debug("language_toggled", slog.String("language", string(next)))

	return next, nil
}

// Translate resolves a display string in the currently preferred language.
func (store *Store) Translate(ctx context.Context, key string) string {
	lang, err := store.currentLanguage(ctx)
	if err != nil {
		lang = i18n.English
	}
	return i18n.Resolve(lang, key)
}

// currentTheme reads the persisted theme, falling back to the host
// color-scheme signal. The fallback (and a discarded corrupt entry) is
// persisted immediately so the next read is a plain hit.
func (store *Store) currentTheme(ctx context.Context) (Theme, error) {
	var theme Theme

	err := store.kv.Get(ctx, constants.StorageKeyTheme, &theme)
	switch {
	case err == nil && (theme == ThemeLight || theme == ThemeDark):
		return theme, nil

	case errors.Is(err, storage.ErrNotFound):
		// First run on this installation.

	case errors.Is(err, storage.ErrCorrupt), err == nil:
		// err == nil with an out-of-range value is corruption in disguise.
		store.logger.Warn("theme_preference_corrupt_reset",
			slog.Any("error", apperr.CorruptState(constants.StorageKeyTheme, err)))

	default:
		return "", fmt.Errorf("prefs_theme_read_failed: %w", err)
	}

	theme = store.colorScheme()
	if theme != ThemeDark {
		theme = ThemeLight
	}

	if err := store.kv.Set(ctx, constants.StorageKeyTheme, theme); err != nil {
		return "", fmt.Errorf("prefs_theme_persist_failed: %w", err)
	}
	return theme, nil
}

// currentLanguage reads the persisted language, falling back to English.
//
// Values other than the exact supported codes are normalized first, so a
// regional variant written by another client ("sw-TZ") collapses onto its
// base table instead of being reset.
func (store *Store) currentLanguage(ctx context.Context) (i18n.Language, error) {
	var lang i18n.Language

	err := store.kv.Get(ctx, constants.StorageKeyLanguage, &lang)
	switch {
	case err == nil && (lang == i18n.English || lang == i18n.Swahili):
		return lang, nil

	case err == nil && lang != "":
		normalized := i18n.Normalize(string(lang))
		store.logger.Info("language_preference_normalized",
			slog.String("stored", string(lang)),
			slog.String("normalized", string(normalized)),
		)
		if err := store.kv.Set(ctx, constants.StorageKeyLanguage, normalized); err != nil {
			return "", fmt.Errorf("prefs_language_persist_failed: %w", err)
		}
		return normalized, nil

	case errors.Is(err, storage.ErrNotFound):

	case errors.Is(err, storage.ErrCorrupt), err == nil:
		// err == nil here means an empty stored code.
		store.logger.Warn("language_preference_corrupt_reset",
			slog.Any("error", apperr.CorruptState(constants.StorageKeyLanguage, err)))

	default:
		return "", fmt.Errorf("prefs_language_read_failed: %w", err)
	}

	lang = i18n.English
	if err := store.kv.Set(ctx, constants.StorageKeyLanguage, lang); err != nil {
		return "", fmt.Errorf("prefs_language_persist_failed: %w", err)
	}
	return lang, nil
}
