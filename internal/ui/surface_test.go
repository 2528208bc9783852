// Copyright (c) 2026 Swahilipot Hub. All rights reserved.

package ui_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/swahilipothub/hubclient/internal/ui"
)

/*
TestSurface verifies the dark-mode flag: marking is idempotent and the
indicator tracks it.
*/
func TestSurface(t *testing.T) {
	surface := &ui.Surface{}

	assert.False(t, surface.Dark())
	assert.Equal(t, "light", surface.Indicator())

	surface.Mark(true)
	surface.Mark(true)
	assert.True(t, surface.Dark())
	assert.Equal(t, "dark", surface.Indicator())

	surface.Mark(false)
	assert.False(t, surface.Dark())
	assert.Equal(t, "light", surface.Indicator())
}
