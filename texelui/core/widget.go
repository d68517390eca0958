// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: texelui/core/widget.go
// Summary: Widget contract and the BaseWidget embedded by every widget.

package core

import "github.com/gdamore/tcell/v2"

// DockStyle says how a widget is placed inside its parent's remaining space.
type DockStyle int

const (
	// DockNone keeps the widget's own position and size.
	DockNone DockStyle = iota
	DockTop
	DockBottom
	DockLeft
	DockRight
	// DockFill takes whatever space is left after the edge docks.
	DockFill
)

// Widget is the minimal contract for drawable UI elements.
type Widget interface {
	SetPosition(x, y int)
	Position() (int, int)
	Resize(w, h int)
	Size() (int, int)
	PreferredSize() (int, int)
	Draw(p *Painter)
	Focusable() bool
	Focus()
	Blur()
	HandleKey(ev *tcell.EventKey) bool
	HitTest(x, y int) bool

	Parent() Parent
	IsHidden() bool
	SetHidden(hidden bool)
	Dock() DockStyle
	SetDock(d DockStyle)

	setParent(p Parent)
}

// Parent is a widget that owns an ordered list of children.
type Parent interface {
	Widget
	AddChild(w Widget)
	RemoveChild(w Widget) bool
	Children() []Widget
	InvalidateLayout()
}

// Layouter widgets take part in the layout pass. The UI manager calls Layout
// on every root before each frame; containers recurse into their children.
type Layouter interface {
	Layout()
}

// BaseWidget provides common fields/behaviour for widgets.
type BaseWidget struct {
	Rect      Rect
	focused   bool
	hidden    bool
	focusable bool
	dock      DockStyle
	parent    Parent
	inv       func(Rect)

	focusStyle    tcell.Style
	hasFocusStyle bool
	needsLayout   bool

	prefW, prefH int
}

func (b *BaseWidget) SetPosition(x, y int) { b.Rect.X, b.Rect.Y = x, y }
func (b *BaseWidget) Position() (int, int) { return b.Rect.X, b.Rect.Y }
func (b *BaseWidget) Resize(w, h int) {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	b.Rect.W, b.Rect.H = w, h
}
func (b *BaseWidget) Size() (int, int)    { return b.Rect.W, b.Rect.H }
func (b *BaseWidget) Focusable() bool     { return b.focusable }
func (b *BaseWidget) SetFocusable(f bool) { b.focusable = f }
func (b *BaseWidget) Focus() {
	if b.focusable {
		b.focused = true
	}
}
func (b *BaseWidget) Blur()                             { b.focused = false }
func (b *BaseWidget) IsFocused() bool                   { return b.focused }
func (b *BaseWidget) HitTest(x, y int) bool             { return !b.hidden && b.Rect.Contains(x, y) }
func (b *BaseWidget) HandleKey(ev *tcell.EventKey) bool { return false }

func (b *BaseWidget) Parent() Parent     { return b.parent }
func (b *BaseWidget) setParent(p Parent) { b.parent = p }
func (b *BaseWidget) Dock() DockStyle    { return b.dock }
func (b *BaseWidget) IsHidden() bool     { return b.hidden }
func (b *BaseWidget) NeedsLayout() bool  { return b.needsLayout }
func (b *BaseWidget) clearLayoutFlag()   { b.needsLayout = false }

// PreferredSize is the thickness a docked widget asks for. Layout clamps the
// rect it assigns, never this value.
func (b *BaseWidget) PreferredSize() (int, int) { return b.prefW, b.prefH }

// SetPreferredSize records the requested size and asks the parent to lay out again.
func (b *BaseWidget) SetPreferredSize(w, h int) {
	w, h = max(w, 0), max(h, 0)
	if b.prefW == w && b.prefH == h {
		return
	}
	b.prefW, b.prefH = w, h
	if b.parent != nil {
		b.parent.InvalidateLayout()
	}
}

// SetInvalidator installs the dirty-region callback.
func (b *BaseWidget) SetInvalidator(fn func(Rect)) { b.inv = fn }

// SetDock changes the dock style and asks the parent to lay out again.
func (b *BaseWidget) SetDock(d DockStyle) {
	if b.dock == d {
		return
	}
	b.dock = d
	if b.parent != nil {
		b.parent.InvalidateLayout()
	}
}

// SetHidden toggles visibility. Hidden widgets take no layout space, are not
// drawn and are skipped by hit testing.
func (b *BaseWidget) SetHidden(hidden bool) {
	if b.hidden == hidden {
		return
	}
	b.hidden = hidden
	b.Invalidate()
	if b.parent != nil {
		b.parent.InvalidateLayout()
	}
}

// InvalidateLayout marks the widget and its ancestors for another layout pass.
func (b *BaseWidget) InvalidateLayout() {
	b.needsLayout = true
	b.Invalidate()
	if b.parent != nil {
		b.parent.InvalidateLayout()
	}
}

// Invalidate marks the widget's rect dirty.
func (b *BaseWidget) Invalidate() {
	if b.inv != nil {
		b.inv(b.Rect)
	}
}

// SetFocusedStyle sets the style used while the widget has focus.
func (b *BaseWidget) SetFocusedStyle(s tcell.Style, enabled bool) {
	b.focusStyle = s
	b.hasFocusStyle = enabled
}

// EffectiveStyle returns the focused style when focused, else base.
func (b *BaseWidget) EffectiveStyle(base tcell.Style) tcell.Style {
	if b.focused && b.hasFocusStyle {
		return b.focusStyle
	}
	return base
}

// MouseAware widgets can consume mouse events directly.
type MouseAware interface {
	HandleMouse(ev *tcell.EventMouse) bool
}

// InvalidationAware widgets accept an invalidation callback to mark dirty regions.
type InvalidationAware interface {
	SetInvalidator(func(Rect))
}

// ChildContainer allows recursive operations over widget trees without
// depending on concrete widget packages.
type ChildContainer interface {
	VisitChildren(func(Widget))
}

// HitTester allows a container to return the deepest widget under a point.
type HitTester interface {
	WidgetAt(x, y int) Widget
}

// ZIndexer lets a root widget draw above its siblings.
type ZIndexer interface {
	ZIndex() int
}

// Visible reports whether w and every ancestor are shown.
func Visible(w Widget) bool {
	for w != nil {
		if w.IsHidden() {
			return false
		}
		p := w.Parent()
		if p == nil {
			return true
		}
		w = p
	}
	return false
}
