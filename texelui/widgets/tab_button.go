// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: texelui/widgets/tab_button.go
// Summary: A selectable tab that controls one page.

package widgets

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/framegrace/texeldock/texelui/core"
	"github.com/framegrace/texeldock/texelui/dnd"
	"github.com/framegrace/texeldock/texelui/theme"
)

// Drag package names used by the tab widgets.
const (
	// PackageTabButtonMove carries a single *TabButton.
	PackageTabButtonMove = "TabButtonMove"
	// PackageTabWindowMove carries a whole tab container.
	PackageTabWindowMove = "TabWindowMove"
)

// TabButton is one entry of a TabStrip. It belongs to exactly one strip at a
// time and controls the page shown when it is selected.
type TabButton struct {
	core.BaseWidget
	label    string
	glyph    rune
	page     core.Widget
	control  *TabControl
	active   bool
	dragging bool

	Style       tcell.Style
	ActiveStyle tcell.Style
	DragStyle   tcell.Style
}

// NewTabButton creates a detached tab. Use TabControl.AddExistingTab to place it.
func NewTabButton(label string, page core.Widget) *TabButton {
	b := &TabButton{label: label, page: page}
	tm := theme.Get()
	b.Style = tm.Style("tab", "inactive_fg", "strip_bg", tcell.ColorSilver, tcell.ColorBlack)
	b.ActiveStyle = tm.Style("tab", "active_fg", "active_bg", tcell.ColorBlack, tcell.ColorBlue)
	b.DragStyle = tm.Style("tab", "dragging_fg", "strip_bg", tcell.ColorYellow, tcell.ColorBlack)
	b.SetDock(core.DockLeft)
	b.SetFocusable(true)
	b.fit()
	return b
}

func (b *TabButton) fit() {
	w := runewidth.StringWidth(b.label) + 2
	if b.glyph != 0 {
		w += runewidth.RuneWidth(b.glyph) + 1
	}
	b.SetPreferredSize(w, 1)
	b.Resize(w, 1)
	if p := b.Parent(); p != nil {
		p.InvalidateLayout()
	}
}

func (b *TabButton) Label() string { return b.label }

func (b *TabButton) SetLabel(label string) {
	b.label = label
	b.fit()
}

// Glyph is the tab's icon, 0 when unset.
func (b *TabButton) Glyph() rune { return b.glyph }

func (b *TabButton) SetGlyph(r rune) {
	b.glyph = r
	b.fit()
}

// Page is the content widget this tab shows.
func (b *TabButton) Page() core.Widget { return b.page }

// Control is the tab control whose strip currently owns the button.
func (b *TabButton) Control() *TabControl { return b.control }

func (b *TabButton) IsActive() bool { return b.active }

func (b *TabButton) setActive(v bool) {
	if b.active == v {
		return
	}
	b.active = v
	b.Invalidate()
}

func (b *TabButton) Draw(p *core.Painter) {
	style := b.Style
	switch {
	case b.dragging:
		style = b.DragStyle
	case b.active:
		style = b.ActiveStyle
	}
	style = b.EffectiveStyle(style)
	p.Fill(b.Rect, ' ', style)
	text := b.label
	if b.glyph != 0 {
		text = string(b.glyph) + " " + text
	}
	p.DrawText(b.Rect.X+1, b.Rect.Y, core.Truncate(text, b.Rect.W-2), style)
}

// HandleMouse selects the tab on press.
func (b *TabButton) HandleMouse(ev *tcell.EventMouse) bool {
	x, y := ev.Position()
	if ev.Buttons()&tcell.Button1 == 0 || !b.HitTest(x, y) {
		return false
	}
	if b.control != nil {
		b.control.Select(b)
	}
	return true
}

// HandleKey moves the selection with Left/Right.
func (b *TabButton) HandleKey(ev *tcell.EventKey) bool {
	if b.control == nil {
		return false
	}
	switch ev.Key() {
	case tcell.KeyLeft:
		return b.control.SelectOffset(-1)
	case tcell.KeyRight:
		return b.control.SelectOffset(1)
	case tcell.KeyEnter:
		b.control.Select(b)
		return true
	}
	return false
}

// DragPackage lets a single tab be dragged to another strip.
func (b *TabButton) DragPackage(x, y int) *dnd.Package {
	if b.control == nil {
		return nil
	}
	return &dnd.Package{
		Name:   PackageTabButtonMove,
		Data:   b,
		Source: b,
		HoldX:  x - b.Rect.X,
		HoldY:  y - b.Rect.Y,
	}
}

func (b *TabButton) DragStart(pkg *dnd.Package, x, y int) {
	b.dragging = true
	b.Invalidate()
}

func (b *TabButton) DragEnd(success bool, x, y int) {
	b.dragging = false
	b.Invalidate()
}
