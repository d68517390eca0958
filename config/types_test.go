// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package config

import (
	"encoding/json"
	"testing"
)

func TestTypedGetters(t *testing.T) {
	cfg := Config{
		"dock": map[string]interface{}{
			"title_bar_visible": "true",
			"drag_threshold":    json.Number("3"),
			"ratio":             "0.5",
		},
	}
	if !cfg.GetBool("dock", "title_bar_visible", false) {
		t.Fatalf("expected string bool to parse")
	}
	if got := cfg.GetInt("dock", "drag_threshold", 0); got != 3 {
		t.Fatalf("expected 3, got %d", got)
	}
	if got := cfg.GetFloat("dock", "ratio", 0); got != 0.5 {
		t.Fatalf("expected 0.5, got %v", got)
	}
	if got := cfg.GetInt("missing", "x", 7); got != 7 {
		t.Fatalf("expected default 7, got %d", got)
	}
}

func TestDockClampsNegativeThreshold(t *testing.T) {
	cfg := Config{"dock": Section{"drag_threshold": -5}}
	if got := cfg.Dock().DragThreshold; got != 0 {
		t.Fatalf("expected clamp to 0, got %d", got)
	}
}
