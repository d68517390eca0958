// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package theme

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"

	"github.com/framegrace/texeldock/config"
)

func TestGetColorResolvesNamesAndHex(t *testing.T) {
	tm := FromConfig(config.Config{
		"theme": map[string]interface{}{
			"tab.active_bg": "navy",
			"tab.active_fg": "#ff8800",
			"tab.broken":    "not-a-colour",
		},
	})

	assert.Equal(t, tcell.ColorNavy, tm.GetColor("tab", "active_bg", tcell.ColorBlack))
	assert.Equal(t, tcell.NewHexColor(0xff8800), tm.GetColor("tab", "active_fg", tcell.ColorBlack))
	assert.Equal(t, tcell.ColorRed, tm.GetColor("tab", "broken", tcell.ColorRed))
	assert.Equal(t, tcell.ColorGreen, tm.GetColor("tab", "missing", tcell.ColorGreen))
}

func TestGetColorWithoutThemeSection(t *testing.T) {
	tm := FromConfig(config.Config{})
	assert.Equal(t, tcell.ColorWhite, tm.GetColor("ui", "surface_fg", tcell.ColorWhite))
}
