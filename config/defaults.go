// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: config/defaults.go
// Summary: Defaults filled into any config missing them.

package config

func applySystemDefaults(cfg Config) {
	if cfg == nil {
		return
	}
	cfg.RegisterDefaults("dock", Section{
		"title_bar_visible": false,
		"drag_threshold":    1,
	})
	cfg.RegisterDefaults("highlight", Section{
		"style": "catppuccin-mocha",
	})
	cfg.RegisterDefaults("theme", Section{
		"ui.surface_bg":   "black",
		"ui.surface_fg":   "white",
		"tab.strip_bg":    "#1e1e2e",
		"tab.inactive_fg": "#a6adc8",
		"tab.active_fg":   "#1e1e2e",
		"tab.active_bg":   "#89b4fa",
		"title.fg":        "#cdd6f4",
		"title.bg":        "#313244",
		"tab.dragging_fg": "#f9e2af",
	})
}
