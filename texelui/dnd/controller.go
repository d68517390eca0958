// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: texelui/dnd/controller.go
// Summary: Turns raw mouse events into drag start/drop/end calls.

package dnd

import (
	"log"

	"github.com/gdamore/tcell/v2"

	"github.com/framegrace/texeldock/texelui/core"
)

// Controller tracks at most one gesture. It plugs into core.UIManager as a
// mouse and key interceptor.
type Controller struct {
	threshold int

	pending        *Package
	active         *Package
	startX, startY int
	lastX, lastY   int
	down           bool
}

// NewController returns a controller that starts drags after the pointer
// moves more than threshold cells from the press point.
func NewController(threshold int) *Controller {
	if threshold < 0 {
		threshold = 0
	}
	return &Controller{threshold: threshold}
}

// Active returns the package being dragged, or nil.
func (c *Controller) Active() *Package { return c.active }

// Press arms a drag if under (or one of its ancestors) is a Handle that
// offers a package. It never consumes the press.
func (c *Controller) Press(under core.Widget, x, y int) {
	c.down = true
	c.pending = nil
	c.startX, c.startY = x, y
	c.lastX, c.lastY = x, y
	for w := under; w != nil; w = parentOf(w) {
		h, ok := w.(Handle)
		if !ok {
			continue
		}
		if pkg := h.DragPackage(x, y); pkg != nil && pkg.Source != nil {
			c.pending = pkg
		}
		return
	}
}

// Move starts the pending drag once the threshold is exceeded. It reports
// whether a drag is in flight.
func (c *Controller) Move(x, y int) bool {
	c.lastX, c.lastY = x, y
	if c.active != nil {
		return true
	}
	if c.pending == nil {
		return false
	}
	if abs(x-c.startX) <= c.threshold && abs(y-c.startY) <= c.threshold {
		return false
	}
	c.active, c.pending = c.pending, nil
	log.Printf("DnD: start %q at %d,%d", c.active.Name, x, y)
	c.active.Source.DragStart(c.active, x, y)
	return true
}

// Release drops the active package on the first accepting Target at or above
// under, then ends the drag. It reports whether a drag was in flight.
func (c *Controller) Release(under core.Widget, x, y int) bool {
	c.down = false
	c.pending = nil
	pkg := c.active
	if pkg == nil {
		return false
	}
	c.active = nil

	success := false
	for w := under; w != nil; w = parentOf(w) {
		t, ok := w.(Target)
		if !ok || !t.CanDrop(pkg) {
			continue
		}
		success = t.Drop(pkg, x, y)
		break
	}
	log.Printf("DnD: end %q at %d,%d success=%v", pkg.Name, x, y, success)
	pkg.Source.DragEnd(success, x, y)
	return true
}

// Cancel aborts an in-flight drag, reporting failure to its source.
func (c *Controller) Cancel() bool {
	c.pending = nil
	pkg := c.active
	if pkg == nil {
		return false
	}
	c.active = nil
	log.Printf("DnD: cancel %q", pkg.Name)
	pkg.Source.DragEnd(false, c.lastX, c.lastY)
	return true
}

// InterceptMouse implements core.MouseInterceptor.
func (c *Controller) InterceptMouse(ev *tcell.EventMouse, under core.Widget) bool {
	x, y := ev.Position()
	nowDown := ev.Buttons()&tcell.Button1 != 0
	switch {
	case nowDown && !c.down:
		c.Press(under, x, y)
		return false
	case nowDown:
		return c.Move(x, y)
	case c.down:
		return c.Release(under, x, y)
	}
	return false
}

// InterceptKey implements core.KeyInterceptor: Escape cancels a drag.
func (c *Controller) InterceptKey(ev *tcell.EventKey) bool {
	if ev.Key() != tcell.KeyEscape {
		return false
	}
	return c.Cancel()
}

func parentOf(w core.Widget) core.Widget {
	p := w.Parent()
	if p == nil {
		return nil
	}
	return p
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
