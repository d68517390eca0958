// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: texelui/scroll/indicators.go
// Summary: ▲/▼ glyphs shown when content overflows a viewport.

package scroll

import (
	"github.com/gdamore/tcell/v2"

	"github.com/framegrace/texeldock/texelui/core"
)

const (
	UpGlyph   = '▲'
	DownGlyph = '▼'
)

// DrawIndicators marks the right column of rect with an up glyph on the first
// row when s can scroll up, and a down glyph on the last row when it can
// scroll down.
func DrawIndicators(p *core.Painter, rect core.Rect, s State, style tcell.Style) {
	if rect.Empty() {
		return
	}
	x := rect.X + rect.W - 1
	if s.CanScrollUp() {
		p.SetCell(x, rect.Y, UpGlyph, style)
	}
	if s.CanScrollDown() {
		p.SetCell(x, rect.Y+rect.H-1, DownGlyph, style)
	}
}
