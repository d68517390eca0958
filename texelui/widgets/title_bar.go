// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: texelui/widgets/title_bar.go
// Summary: One-row bar describing the active tab; drag handle for its owner.

package widgets

import (
	"github.com/gdamore/tcell/v2"

	"github.com/framegrace/texeldock/texelui/core"
	"github.com/framegrace/texeldock/texelui/dnd"
	"github.com/framegrace/texeldock/texelui/theme"
)

// TitleBar mirrors the label and glyph of a tab. Grabbing it drags whatever
// Source was set with SetDragSource.
type TitleBar struct {
	core.BaseWidget
	text   string
	glyph  rune
	source dnd.Source
	Style  tcell.Style
}

func NewTitleBar() *TitleBar {
	t := &TitleBar{}
	tm := theme.Get()
	t.Style = tm.Style("title", "fg", "bg", tcell.ColorWhite, tcell.ColorGray)
	t.SetDock(core.DockTop)
	t.SetPreferredSize(0, 1)
	t.Resize(0, 1)
	return t
}

// UpdateFromTab copies b's label and glyph. A nil tab leaves the bar as is.
func (t *TitleBar) UpdateFromTab(b *TabButton) {
	if b == nil {
		return
	}
	if t.text == b.Label() && t.glyph == b.Glyph() {
		return
	}
	t.text = b.Label()
	t.glyph = b.Glyph()
	t.Invalidate()
}

// Text returns the displayed title.
func (t *TitleBar) Text() string { return t.text }

// Glyph returns the displayed icon, 0 when unset.
func (t *TitleBar) Glyph() rune { return t.glyph }

// SetDragSource sets what a drag started on the bar moves. nil disables dragging.
func (t *TitleBar) SetDragSource(src dnd.Source) { t.source = src }

func (t *TitleBar) Draw(p *core.Painter) {
	p.Fill(t.Rect, ' ', t.Style)
	text := t.text
	if t.glyph != 0 {
		text = string(t.glyph) + " " + text
	}
	p.DrawText(t.Rect.X+1, t.Rect.Y, core.Truncate(text, t.Rect.W-2), t.Style.Bold(true))
}

// DragPackage offers the whole owner as a PackageTabWindowMove.
func (t *TitleBar) DragPackage(x, y int) *dnd.Package {
	if t.source == nil {
		return nil
	}
	return &dnd.Package{
		Name:   PackageTabWindowMove,
		Data:   t.source,
		Source: t.source,
		HoldX:  x - t.Rect.X,
		HoldY:  y - t.Rect.Y,
	}
}
