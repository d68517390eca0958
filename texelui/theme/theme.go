// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: texelui/theme/theme.go
// Summary: Colour lookup over the "theme" config section.

package theme

import (
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/framegrace/texeldock/config"
)

// Theme resolves named colours. Keys are "<group>.<name>" inside the theme
// section, e.g. "tab.active_bg".
type Theme struct {
	section config.Section
}

// Get returns the theme from the current system config.
func Get() Theme {
	return FromConfig(config.System())
}

// FromConfig builds a theme from an arbitrary config.
func FromConfig(cfg config.Config) Theme {
	return Theme{section: cfg.Section("theme")}
}

// GetColor returns the colour stored under group.name, or def when the key is
// missing or does not name a colour tcell understands.
func (t Theme) GetColor(group, name string, def tcell.Color) tcell.Color {
	if t.section == nil {
		return def
	}
	raw, ok := t.section[group+"."+name].(string)
	if !ok || strings.TrimSpace(raw) == "" {
		return def
	}
	c := tcell.GetColor(strings.ToLower(strings.TrimSpace(raw)))
	if c == tcell.ColorDefault && raw != "default" {
		return def
	}
	return c
}

// Style builds a foreground/background style from two theme keys.
func (t Theme) Style(group, fgName, bgName string, fg, bg tcell.Color) tcell.Style {
	return tcell.StyleDefault.
		Foreground(t.GetColor(group, fgName, fg)).
		Background(t.GetColor(group, bgName, bg))
}
