// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: texelui/core/container.go
// Summary: Container widget owning an ordered child list.
// A widget has at most one parent: AddChild detaches it from the previous one.

package core

// Container is a widget that owns an ordered list of children and lays them
// out with LayoutDocked. Widgets embedding Container must call Init with
// themselves so children see the outer widget as their parent.
type Container struct {
	BaseWidget
	// Padding insets the area children are docked into.
	Padding  int
	children []Widget
	owner    Parent
}

// NewContainer returns an empty container.
func NewContainer() *Container {
	c := &Container{}
	c.Init(c)
	return c
}

// Init records the outermost widget embedding this container.
func (c *Container) Init(owner Parent) {
	c.owner = owner
}

func (c *Container) self() Parent {
	if c.owner == nil {
		return c
	}
	return c.owner
}

// AddChild appends w, detaching it from its previous parent first.
func (c *Container) AddChild(w Widget) {
	c.InsertChild(-1, w)
}

// InsertChild places w at index i. A negative or out-of-range index appends.
func (c *Container) InsertChild(i int, w Widget) {
	if w == nil {
		return
	}
	if old := w.Parent(); old != nil {
		old.RemoveChild(w)
	}
	if i < 0 || i > len(c.children) {
		i = len(c.children)
	}
	c.children = append(c.children, nil)
	copy(c.children[i+1:], c.children[i:])
	c.children[i] = w
	w.setParent(c.self())
	if c.inv != nil {
		propagateInvalidator(w, c.inv)
	}
	c.InvalidateLayout()
}

// RemoveChild detaches w and reports whether it was a child.
func (c *Container) RemoveChild(w Widget) bool {
	idx := c.IndexOf(w)
	if idx < 0 {
		return false
	}
	next := make([]Widget, 0, len(c.children)-1)
	next = append(next, c.children[:idx]...)
	next = append(next, c.children[idx+1:]...)
	c.children = next
	w.setParent(nil)
	c.InvalidateLayout()
	return true
}

// IndexOf returns the position of w among the children, or -1.
func (c *Container) IndexOf(w Widget) int {
	for i, child := range c.children {
		if child == w {
			return i
		}
	}
	return -1
}

// Children returns a copy of the child list in display order.
func (c *Container) Children() []Widget {
	out := make([]Widget, len(c.children))
	copy(out, c.children)
	return out
}

// ChildCount returns the number of children.
func (c *Container) ChildCount() int { return len(c.children) }

// VisitChildren calls f for each child over a snapshot of the list.
func (c *Container) VisitChildren(f func(Widget)) {
	for _, child := range c.Children() {
		f(child)
	}
}

// SetInvalidator installs fn on the container and every descendant.
func (c *Container) SetInvalidator(fn func(Rect)) {
	c.inv = fn
	for _, child := range c.children {
		propagateInvalidator(child, fn)
	}
}

func propagateInvalidator(w Widget, fn func(Rect)) {
	if ia, ok := w.(InvalidationAware); ok {
		ia.SetInvalidator(fn)
		return
	}
	if cc, ok := w.(ChildContainer); ok {
		cc.VisitChildren(func(child Widget) { propagateInvalidator(child, fn) })
	}
}

// Resize resizes the container and schedules a layout.
func (c *Container) Resize(w, h int) {
	if c.Rect.W == w && c.Rect.H == h {
		return
	}
	c.BaseWidget.Resize(w, h)
	c.needsLayout = true
}

// SetPosition moves the container and schedules a layout.
func (c *Container) SetPosition(x, y int) {
	if c.Rect.X == x && c.Rect.Y == y {
		return
	}
	c.BaseWidget.SetPosition(x, y)
	c.needsLayout = true
}

// ClientRect is the container's rect minus padding.
func (c *Container) ClientRect() Rect {
	r := c.Rect
	p := c.Padding
	if r.W < 2*p || r.H < 2*p {
		return Rect{X: r.X, Y: r.Y}
	}
	return Rect{X: r.X + p, Y: r.Y + p, W: r.W - 2*p, H: r.H - 2*p}
}

// Layout is the generic layout routine: dock the children into the
// client rect, then let each visible child lay out its own subtree.
func (c *Container) Layout() {
	LayoutDocked(c.children, c.ClientRect())
	c.clearLayoutFlag()
	for _, child := range c.Children() {
		if child.IsHidden() {
			continue
		}
		if l, ok := child.(Layouter); ok {
			l.Layout()
		}
	}
}

// Draw paints visible children clipped to the container.
func (c *Container) Draw(p *Painter) {
	cp := p.WithClip(c.Rect)
	for _, child := range c.children {
		if child.IsHidden() {
			continue
		}
		child.Draw(cp)
	}
}

// WidgetAt returns the deepest visible child under (x, y), topmost first.
func (c *Container) WidgetAt(x, y int) Widget {
	if c.hidden || !c.Rect.Contains(x, y) {
		return nil
	}
	for i := len(c.children) - 1; i >= 0; i-- {
		child := c.children[i]
		if child.IsHidden() {
			continue
		}
		if ht, ok := child.(HitTester); ok {
			if w := ht.WidgetAt(x, y); w != nil {
				return w
			}
		}
		if child.HitTest(x, y) {
			return child
		}
	}
	return nil
}
