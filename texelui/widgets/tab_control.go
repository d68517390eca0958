// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: texelui/widgets/tab_control.go
// Summary: Generic tabbed container: a strip of buttons over a page area.

package widgets

import (
	"github.com/framegrace/texeldock/texelui/core"
	"github.com/framegrace/texeldock/texelui/dnd"
)

// TabControl shows one page at a time, chosen from its TabStrip.
type TabControl struct {
	core.Container
	strip    *TabStrip
	pages    *core.Container
	current  *TabButton
	dragging *dnd.Package

	// OnTabChanged fires after the selected tab changes. b is nil when the
	// control lost its last tab.
	OnTabChanged func(b *TabButton)
}

func NewTabControl() *TabControl {
	tc := &TabControl{}
	tc.Init(tc)
	return tc
}

// Init builds the strip and page area for the widget embedding the control.
func (tc *TabControl) Init(owner core.Parent) {
	tc.Container.Init(owner)
	tc.strip = newTabStrip(tc)
	tc.pages = core.NewContainer()
	tc.pages.SetDock(core.DockFill)
	tc.AddChild(tc.strip)
	tc.AddChild(tc.pages)
}

// Strip returns the control's tab strip.
func (tc *TabControl) Strip() *TabStrip { return tc.strip }

// Tabs returns the tab buttons in display order.
func (tc *TabControl) Tabs() []*TabButton { return tc.strip.Tabs() }

// TabCount returns the number of tabs.
func (tc *TabControl) TabCount() int { return tc.strip.TabCount() }

// AddPage creates a tab for page and appends it. A nil page gets an empty Pane.
func (tc *TabControl) AddPage(label string, page core.Widget) *TabButton {
	if page == nil {
		page = NewPane()
	}
	b := NewTabButton(label, page)
	tc.AddExistingTab(b)
	return b
}

// AddExistingTab moves b, and the page it controls, to the end of this
// control. The button is attached here before its previous control is told
// it left, so it is never observable without an owner.
func (tc *TabControl) AddExistingTab(b *TabButton) {
	if b == nil {
		return
	}
	prev := b.control
	if prev != tc {
		b.setActive(false)
	}
	b.control = tc
	tc.strip.AddChild(b)
	if page := b.page; page != nil {
		page.SetDock(core.DockFill)
		page.SetHidden(tc.current != b)
		tc.pages.AddChild(page)
	}
	if prev != nil && prev != tc {
		prev.tabLost(b)
	}
	if tc.CurrentButton() == nil {
		tc.Select(b)
	}
	tc.InvalidateLayout()
}

// RemovePage detaches b from the control. The control never destroys tabs;
// a removed button is simply no longer referenced.
func (tc *TabControl) RemovePage(b *TabButton) bool {
	if b == nil || b.control != tc {
		return false
	}
	tc.strip.RemoveChild(b)
	if b.page != nil {
		tc.pages.RemoveChild(b.page)
	}
	b.control = nil
	b.setActive(false)
	tc.tabLost(b)
	return true
}

// tabLost repairs the selection after b left the strip.
func (tc *TabControl) tabLost(b *TabButton) {
	if tc.current == b {
		tc.current = nil
		if tabs := tc.strip.Tabs(); len(tabs) > 0 {
			tc.Select(tabs[0])
		} else if tc.OnTabChanged != nil {
			tc.OnTabChanged(nil)
		}
	}
	tc.InvalidateLayout()
}

// CurrentButton returns the selected tab, or nil. The stored reference is
// checked against the live strip so a tab that has since moved away is
// reported as no selection.
func (tc *TabControl) CurrentButton() *TabButton {
	b := tc.current
	if b == nil || b.control != tc || tc.strip.IndexOf(b) < 0 {
		return nil
	}
	return b
}

// Select shows b's page and hides the previous one.
func (tc *TabControl) Select(b *TabButton) {
	if b == nil || b.control != tc {
		return
	}
	cur := tc.CurrentButton()
	if cur == b {
		return
	}
	if cur != nil {
		cur.setActive(false)
		if cur.page != nil {
			cur.page.SetHidden(true)
		}
	}
	tc.current = b
	b.setActive(true)
	if b.page != nil {
		b.page.SetHidden(false)
	}
	tc.InvalidateLayout()
	if tc.OnTabChanged != nil {
		tc.OnTabChanged(b)
	}
}

// SelectOffset moves the selection by delta tabs, wrapping around.
func (tc *TabControl) SelectOffset(delta int) bool {
	tabs := tc.strip.Tabs()
	if len(tabs) == 0 {
		return false
	}
	idx := 0
	if cur := tc.CurrentButton(); cur != nil {
		for i, b := range tabs {
			if b == cur {
				idx = i
				break
			}
		}
	}
	n := len(tabs)
	tc.Select(tabs[((idx+delta)%n+n)%n])
	return true
}

// DragStart is the generic drag hook: it records the package in flight.
func (tc *TabControl) DragStart(pkg *dnd.Package, x, y int) {
	tc.dragging = pkg
}

// DragEnd clears the package recorded by DragStart.
func (tc *TabControl) DragEnd(success bool, x, y int) {
	tc.dragging = nil
}

// Dragging returns the package of the drag in flight, or nil.
func (tc *TabControl) Dragging() *dnd.Package { return tc.dragging }
