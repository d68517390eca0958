// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: config/dock.go
// Summary: Typed view of the "dock" section.

package config

// DockSettings are the knobs dock containers read at construction.
type DockSettings struct {
	// TitleBarVisible is the initial title bar state of new containers.
	TitleBarVisible bool
	// DragThreshold is how many cells the pointer must travel before a
	// press on a drag handle turns into a drag.
	DragThreshold int
}

// Dock reads the dock section of cfg.
func (c Config) Dock() DockSettings {
	s := DockSettings{
		TitleBarVisible: c.GetBool("dock", "title_bar_visible", false),
		DragThreshold:   c.GetInt("dock", "drag_threshold", 1),
	}
	if s.DragThreshold < 0 {
		s.DragThreshold = 0
	}
	return s
}
