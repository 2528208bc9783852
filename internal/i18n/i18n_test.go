// Copyright (c) 2026 Swahilipot Hub. All rights reserved.

package i18n_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/swahilipothub/hubclient/internal/i18n"
)

/*
TestResolve_FallbackChain verifies the defined lookup order: exact language
table, then the English table, then the key itself verbatim.
*/
func TestResolve_FallbackChain(t *testing.T) {
	tests := []struct {
		name string
		lang i18n.Language
		key  string
		want string
	}{
		{"exact_swahili", i18n.Swahili, "logout", "Ondoka"},
		{"exact_english", i18n.English, "logout", "Logout"},
		{"orphan_key_falls_back_to_key", i18n.Swahili, "noSuchKey", "noSuchKey"},
		{"unknown_language_falls_back_to_english", i18n.Language("fr"), "logout", "Logout"},
		{"unknown_language_and_key", i18n.Language("fr"), "noSuchKey", "noSuchKey"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, i18n.Resolve(tt.lang, tt.key))
		})
	}
}

/*
TestResolve_NeverEmpty asserts the resolver contract across every supported
language and every key of every table: the result is always the language's
own translation, the English fallback, or the key verbatim, never blank.
*/
func TestResolve_NeverEmpty(t *testing.T) {
	for _, source := range i18n.Supported() {
		for _, key := range i18n.Keys(source) {
			for _, target := range i18n.Supported() {
				assert.NotEmpty(t, i18n.Resolve(target, key),
					"resolve(%s, %s) must not be empty", target, key)
			}
		}
	}
}

/*
TestTables_KeySymmetry verifies that every key present in en is present in sw
and vice versa, so no orphan keys ship in production tables.
*/
func TestTables_KeySymmetry(t *testing.T) {
	englishKeys := i18n.Keys(i18n.English)
	swahiliKeys := i18n.Keys(i18n.Swahili)

	require.NotEmpty(t, englishKeys)
	assert.ElementsMatch(t, englishKeys, swahiliKeys)
}

/*
TestLanguage_Toggle verifies the involution property: toggling twice returns
to the original value, and unknown codes recover to English.
*/
func TestLanguage_Toggle(t *testing.T) {
	assert.Equal(t, i18n.Swahili, i18n.English.Toggle())
	assert.Equal(t, i18n.English, i18n.Swahili.Toggle())
	assert.Equal(t, i18n.English, i18n.English.Toggle().Toggle())

	// An unknown persisted code must not wedge the toggle.
	assert.Equal(t, i18n.English, i18n.Language("xx").Toggle())
}

/*
TestNormalize maps arbitrary BCP 47 tags onto the supported tables.
*/
func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		code string
		want i18n.Language
	}{
		{"plain_english", "en", i18n.English},
		{"regional_english", "en-US", i18n.English},
		{"plain_swahili", "sw", i18n.Swahili},
		{"regional_swahili", "sw-TZ", i18n.Swahili},
		{"unsupported", "fr", i18n.English},
		{"garbage", "not a tag!", i18n.English},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, i18n.Normalize(tt.code))
		})
	}
}
