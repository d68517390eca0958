// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package core

import (
	"testing"

	"github.com/gdamore/tcell/v2"
)

type box struct {
	BaseWidget
	ch rune
}

func newBox(d DockStyle, w, h int) *box {
	b := &box{ch: 'X'}
	b.SetDock(d)
	b.SetPreferredSize(w, h)
	return b
}

func (b *box) Draw(p *Painter) { p.Fill(b.Rect, b.ch, tcell.StyleDefault) }

func TestLayoutDockedEdgesThenFill(t *testing.T) {
	top := newBox(DockTop, 0, 1)
	left := newBox(DockLeft, 3, 0)
	bottom := newBox(DockBottom, 0, 2)
	right := newBox(DockRight, 4, 0)
	fill := newBox(DockFill, 0, 0)

	rem := LayoutDocked([]Widget{fill, top, left, bottom, right}, Rect{X: 1, Y: 1, W: 20, H: 10})

	checks := []struct {
		name string
		w    Widget
		want Rect
	}{
		{"top", top, Rect{X: 1, Y: 1, W: 20, H: 1}},
		{"left", left, Rect{X: 1, Y: 2, W: 3, H: 9}},
		{"bottom", bottom, Rect{X: 4, Y: 9, W: 17, H: 2}},
		{"right", right, Rect{X: 17, Y: 2, W: 4, H: 7}},
		{"fill", fill, Rect{X: 4, Y: 2, W: 13, H: 7}},
	}
	for _, c := range checks {
		x, y := c.w.Position()
		w, h := c.w.Size()
		if got := (Rect{X: x, Y: y, W: w, H: h}); got != c.want {
			t.Errorf("%s: got %+v want %+v", c.name, got, c.want)
		}
	}
	if rem != (Rect{X: 4, Y: 2, W: 13, H: 7}) {
		t.Fatalf("unexpected remainder %+v", rem)
	}
}

func TestLayoutDockedHiddenTakesNoSpace(t *testing.T) {
	top := newBox(DockTop, 0, 2)
	top.SetHidden(true)
	fill := newBox(DockFill, 0, 0)

	LayoutDocked([]Widget{top, fill}, Rect{W: 10, H: 5})
	if _, y := fill.Position(); y != 0 {
		t.Fatalf("fill should start at row 0, got %d", y)
	}
	if _, h := fill.Size(); h != 5 {
		t.Fatalf("fill should take all rows, got %d", h)
	}
}

func TestLayoutDockedClampsOversizedEdges(t *testing.T) {
	top := newBox(DockTop, 0, 8)
	fill := newBox(DockFill, 0, 0)

	LayoutDocked([]Widget{top, fill}, Rect{W: 4, H: 3})
	if _, h := top.Size(); h != 3 {
		t.Fatalf("top should clamp to 3 rows, got %d", h)
	}
	if w, h := fill.Size(); w != 4 || h != 0 {
		t.Fatalf("fill should be empty, got %dx%d", w, h)
	}
}

func TestLayoutDockedLeavesDockNoneAlone(t *testing.T) {
	free := newBox(DockNone, 2, 2)
	free.SetPosition(5, 5)
	LayoutDocked([]Widget{free}, Rect{W: 10, H: 10})
	if x, y := free.Position(); x != 5 || y != 5 {
		t.Fatalf("DockNone widget moved to %d,%d", x, y)
	}
}

func TestLayoutDockedRecoversAfterShrink(t *testing.T) {
	top := newBox(DockTop, 0, 1)
	left := newBox(DockLeft, 6, 0)
	fill := newBox(DockFill, 0, 0)
	kids := []Widget{top, left, fill}

	LayoutDocked(kids, Rect{W: 2, H: 0})
	if _, h := top.Size(); h != 0 {
		t.Fatalf("top should be squeezed to 0 rows, got %d", h)
	}
	if w, _ := left.Size(); w != 2 {
		t.Fatalf("left should be squeezed to 2 columns, got %d", w)
	}

	LayoutDocked(kids, Rect{W: 20, H: 10})
	if _, h := top.Size(); h != 1 {
		t.Fatalf("top should get its row back, got %d", h)
	}
	if w, _ := left.Size(); w != 6 {
		t.Fatalf("left should get its width back, got %d", w)
	}
	if pw, ph := top.PreferredSize(); pw != 0 || ph != 1 {
		t.Fatalf("preferred size changed to %dx%d", pw, ph)
	}
}

func TestSetPreferredSizeFlagsParent(t *testing.T) {
	c := NewContainer()
	b := newBox(DockTop, 0, 1)
	c.AddChild(b)
	c.Layout()
	b.SetPreferredSize(0, 1)
	if c.NeedsLayout() {
		t.Fatalf("unchanged preferred size should not flag the parent")
	}
	b.SetPreferredSize(0, 2)
	if !c.NeedsLayout() {
		t.Fatalf("parent not flagged after preferred size change")
	}
}
