// Copyright (c) 2026 Swahilipot Hub. All rights reserved.

package ui

// Surface tracks the rendered surface's dark-mode flag.
//
// The browser original toggled a "dark" class on the document root; here the
// same boolean is rendered as a prompt indicator. Marking is idempotent.
type Surface struct {
	dark bool
}

// Mark sets the dark-mode flag. Wired as the preference store's SurfaceFunc.
func (surface *Surface) Mark(dark bool) {
	surface.dark = dark
}

// Dark reports the current flag.
func (surface *Surface) Dark() bool {
	return surface.dark
}

// Indicator renders the flag the way the prompt shows it.
func (surface *Surface) Indicator() string {
	if surface.Dark() {
		return "dark"
	}
	return "light"
}
