// Copyright (c) 2026 Swahilipot Hub. All rights reserved.

/*
Package i18n resolves (language, key) pairs to display strings.

It carries the static string tables of the booking client and implements the
defined fallback chain:

 1. Exact match in the requested language's table.
 2. Exact match in the English table.
 3. The key itself, verbatim.

An unresolvable key is therefore visually detectable on the surface rather
than silently blank, and resolution never fails.
*/
package i18n

import (
	"golang.org/x/text/language"
)

// Language identifies a supported string table.
type Language string

const (
	// English is the default and fallback language.
	English Language = "en"

	// Swahili is the second supported language.
	Swahili Language = "sw"
)

// Supported lists every language the client ships tables for, default first.
func Supported() []Language {
	return []Language{English, Swahili}
}

// Toggle flips between the two supported languages. Anything that is not
// English (including an unknown code) toggles back to English.
func (l Language) Toggle() Language {
	if l == English {
		return Swahili
	}
	return English
}

// matcher maps arbitrary BCP 47 tags onto the supported tables. Order must
// mirror [Supported] so match indexes line up.
var matcher = language.NewMatcher([]language.Tag{
	language.English, // also the matcher fallback
	language.Swahili,
})

// Normalize maps an arbitrary language code onto a supported [Language].
// Regional variants collapse onto their base table ("en-US" resolves to en,
// "sw-TZ" to sw); anything unrecognizable resolves to English.
func Normalize(code string) Language {
	tag, err := language.Parse(code)
	if err != nil {
		return English
	}

	_, index, _ := matcher.Match(tag)
	return Supported()[index]
}

// Resolve returns the display string for key in the given language, following
// the package fallback chain. It never fails: an orphan key comes back
// verbatim.
func Resolve(lang Language, key string) string {
	if table, ok := translations[lang]; ok {
		if value, ok := table[key]; ok {
			return value
		}
	}

	if value, ok := translations[English][key]; ok {
		return value
	}

	return key
}

// Keys returns every translation key present in the given language's table.
// The test suite uses it to verify en/sw key-set symmetry.
func Keys(lang Language) []string {
	table := translations[lang]
	keys := make([]string, 0, len(table))
	for key := range table {
		keys = append(keys, key)
	}
	return keys
}
