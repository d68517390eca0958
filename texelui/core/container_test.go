// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package core

import (
	"errors"
	"fmt"
	"testing"
)

func TestAddChildDetachesFromPreviousParent(t *testing.T) {
	a := NewContainer()
	b := NewContainer()
	w := newBox(DockFill, 0, 0)

	a.AddChild(w)
	if w.Parent() != Parent(a) {
		t.Fatalf("expected parent a")
	}
	b.AddChild(w)
	if a.ChildCount() != 0 {
		t.Fatalf("a still holds the child")
	}
	if b.IndexOf(w) != 0 || w.Parent() != Parent(b) {
		t.Fatalf("child not owned by b")
	}
}

func TestInsertChildOrder(t *testing.T) {
	c := NewContainer()
	x, y, z := newBox(DockTop, 0, 1), newBox(DockTop, 0, 1), newBox(DockTop, 0, 1)
	c.AddChild(x)
	c.AddChild(z)
	c.InsertChild(1, y)
	c.InsertChild(99, newBox(DockNone, 0, 0))

	kids := c.Children()
	if kids[0] != Widget(x) || kids[1] != Widget(y) || kids[2] != Widget(z) || len(kids) != 4 {
		t.Fatalf("unexpected order %v", kids)
	}
}

func TestChildrenIsACopy(t *testing.T) {
	c := NewContainer()
	w := newBox(DockFill, 0, 0)
	c.AddChild(w)
	snap := c.Children()
	c.RemoveChild(w)
	if len(snap) != 1 || snap[0] != Widget(w) {
		t.Fatalf("snapshot changed after removal")
	}
	if c.RemoveChild(w) {
		t.Fatalf("second removal should report false")
	}
	if w.Parent() != nil {
		t.Fatalf("removed child keeps a parent")
	}
}

type outer struct {
	Container
}

func TestInitOwnerIsSeenByChildren(t *testing.T) {
	o := &outer{}
	o.Init(o)
	w := newBox(DockFill, 0, 0)
	o.AddChild(w)
	if _, ok := w.Parent().(*outer); !ok {
		t.Fatalf("child parent is %T, want *outer", w.Parent())
	}
}

func TestInvalidateLayoutReachesAncestors(t *testing.T) {
	root := NewContainer()
	mid := NewContainer()
	root.AddChild(mid)
	root.Layout()
	mid.Layout()
	if root.NeedsLayout() || mid.NeedsLayout() {
		t.Fatalf("layout flags not cleared")
	}
	leaf := newBox(DockTop, 0, 1)
	mid.AddChild(leaf)
	leaf.SetHidden(true)
	if !root.NeedsLayout() || !mid.NeedsLayout() {
		t.Fatalf("ancestors not flagged")
	}
}

func TestContainerPaddingAndWidgetAt(t *testing.T) {
	c := NewContainer()
	c.Padding = 1
	c.Resize(10, 6)
	top := newBox(DockTop, 0, 1)
	fill := newBox(DockFill, 0, 0)
	c.AddChild(top)
	c.AddChild(fill)
	c.Layout()

	if x, y := top.Position(); x != 1 || y != 1 {
		t.Fatalf("top at %d,%d", x, y)
	}
	if got := c.WidgetAt(2, 3); got != Widget(fill) {
		t.Fatalf("expected fill under 2,3, got %T", got)
	}
	fill.SetHidden(true)
	if got := c.WidgetAt(2, 3); got != nil {
		t.Fatalf("hidden child was hit")
	}
}

func TestVisibleWalksAncestors(t *testing.T) {
	root := NewContainer()
	mid := NewContainer()
	leaf := newBox(DockFill, 0, 0)
	root.AddChild(mid)
	mid.AddChild(leaf)
	if !Visible(leaf) {
		t.Fatalf("leaf should be visible")
	}
	mid.SetHidden(true)
	if Visible(leaf) {
		t.Fatalf("leaf under hidden parent reported visible")
	}
}

func TestErrNilParentIsInvalidUsage(t *testing.T) {
	err := fmt.Errorf("wrap: %w", ErrNilParent)
	if !errors.Is(err, ErrInvalidUsage) {
		t.Fatalf("ErrNilParent does not match ErrInvalidUsage")
	}
}
