// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: texelui/widgets/tab_strip.go
// Summary: The row of tab buttons at the top of a TabControl.

package widgets

import (
	"github.com/gdamore/tcell/v2"

	"github.com/framegrace/texeldock/texelui/core"
	"github.com/framegrace/texeldock/texelui/dnd"
	"github.com/framegrace/texeldock/texelui/theme"
)

// TabStrip holds TabButtons in display order. It may also hold other
// widgets; Tabs filters them out.
type TabStrip struct {
	core.Container
	control *TabControl
	Style   tcell.Style
}

func newTabStrip(control *TabControl) *TabStrip {
	s := &TabStrip{control: control}
	s.Init(s)
	tm := theme.Get()
	s.Style = tm.Style("tab", "inactive_fg", "strip_bg", tcell.ColorSilver, tcell.ColorBlack)
	s.SetDock(core.DockTop)
	s.SetPreferredSize(0, 1)
	s.Resize(0, 1)
	return s
}

// Tabs returns the tab buttons in display order.
func (s *TabStrip) Tabs() []*TabButton {
	var out []*TabButton
	for _, child := range s.Children() {
		if b, ok := child.(*TabButton); ok {
			out = append(out, b)
		}
	}
	return out
}

// TabCount returns the number of tab buttons, ignoring other children.
func (s *TabStrip) TabCount() int {
	n := 0
	for _, child := range s.Children() {
		if _, ok := child.(*TabButton); ok {
			n++
		}
	}
	return n
}

// Control returns the tab control that owns the strip.
func (s *TabStrip) Control() *TabControl { return s.control }

func (s *TabStrip) Draw(p *core.Painter) {
	p.Fill(s.Rect, ' ', s.Style)
	s.Container.Draw(p)
}

// CanDrop accepts single tabs dragged from any strip.
func (s *TabStrip) CanDrop(pkg *dnd.Package) bool {
	if pkg == nil || pkg.Name != PackageTabButtonMove || s.control == nil {
		return false
	}
	_, ok := pkg.Data.(*TabButton)
	return ok
}

// Drop appends the dragged tab to this strip's control and selects it.
func (s *TabStrip) Drop(pkg *dnd.Package, x, y int) bool {
	b, ok := pkg.Data.(*TabButton)
	if !ok || s.control == nil {
		return false
	}
	s.control.AddExistingTab(b)
	s.control.Select(b)
	return true
}
