// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: texelui/dock/container.go
// Summary: DockContainer, a tab control with a title bar that can hand its
// tabs over to another container.

package dock

import (
	"fmt"
	"log"

	"github.com/framegrace/texeldock/texelui/core"
	"github.com/framegrace/texeldock/texelui/dnd"
	"github.com/framegrace/texeldock/texelui/widgets"
)

// PackageTabWindowMove is the drag package of a whole container.
const PackageTabWindowMove = widgets.PackageTabWindowMove

var (
	// ErrNilTarget is returned by MoveTabsTo when the target is nil.
	ErrNilTarget = fmt.Errorf("%w: nil dock target", core.ErrInvalidUsage)
	// ErrSelfTarget is returned by MoveTabsTo when the target is the source.
	ErrSelfTarget = fmt.Errorf("%w: dock target is the source container", core.ErrInvalidUsage)
)

// DockContainer is a TabControl that fills its parent, shows its tab strip
// only when there is a choice to make, and optionally shows a title bar
// naming the active tab. Grabbing the title bar drags the whole container.
type DockContainer struct {
	widgets.TabControl
	titleBar *widgets.TitleBar

	// parentWasHidden is the parent's visibility when the last drag started.
	parentWasHidden bool
}

// New creates a container inside parent with the title bar hidden.
func New(parent core.Parent) (*DockContainer, error) {
	if parent == nil {
		return nil, fmt.Errorf("dock: new container: %w", core.ErrNilParent)
	}
	d := &DockContainer{}
	d.TabControl.Init(d)
	d.SetDock(core.DockFill)

	d.titleBar = widgets.NewTitleBar()
	d.titleBar.SetDragSource(d)
	d.titleBar.SetHidden(true)
	d.InsertChild(0, d.titleBar)

	parent.AddChild(d)
	return d, nil
}

// TitleBar returns the container's title bar.
func (d *DockContainer) TitleBar() *widgets.TitleBar { return d.titleBar }

// TitleBarVisible reports whether the title bar is shown.
func (d *DockContainer) TitleBarVisible() bool { return !d.titleBar.IsHidden() }

// SetTitleBarVisible shows or hides the title bar.
func (d *DockContainer) SetTitleBarVisible(v bool) { d.titleBar.SetHidden(!v) }

// Layout runs before every geometry pass. The strip is hidden when it holds
// one tab or none, and the title bar follows the current tab. Both happen
// before the generic layout because it reads the strip's hidden flag.
func (d *DockContainer) Layout() {
	d.Strip().SetHidden(d.TabCount() <= 1)
	if b := d.CurrentButton(); b != nil {
		d.titleBar.UpdateFromTab(b)
	}
	d.TabControl.Layout()
}

// DragStart hides the container, and its parent, while it is dragged.
func (d *DockContainer) DragStart(pkg *dnd.Package, x, y int) {
	d.TabControl.DragStart(pkg, x, y)
	if p := d.Parent(); p != nil {
		d.parentWasHidden = p.IsHidden()
	}
	d.setDragVisuals(true, true)
}

// DragEnd shows the container again. The parent gets back its pre-drag
// visibility only when the drop failed; after a successful drop its
// visibility belongs to the host. It is safe to call without a matching
// DragStart.
func (d *DockContainer) DragEnd(success bool, x, y int) {
	d.TabControl.DragEnd(success, x, y)
	d.setDragVisuals(false, !success)
	d.parentWasHidden = false
}

// setDragVisuals is the only place that touches the parent's visibility.
// Hiding the parent keeps its frame from covering the drag.
func (d *DockContainer) setDragVisuals(active, includeParent bool) {
	d.SetHidden(active)
	if !includeParent {
		return
	}
	if p := d.Parent(); p != nil {
		p.SetHidden(active || d.parentWasHidden)
	}
}

// MoveTabsTo appends every tab of d, in order, to target. Non-tab children
// of the strip stay behind. The strip is snapshotted first because each
// move removes the tab from it.
func (d *DockContainer) MoveTabsTo(target *DockContainer) error {
	if target == nil {
		return ErrNilTarget
	}
	if target == d {
		return ErrSelfTarget
	}
	snapshot := d.Strip().Children()
	moved := 0
	for _, child := range snapshot {
		b, ok := child.(*widgets.TabButton)
		if !ok {
			continue
		}
		target.AddExistingTab(b)
		moved++
	}
	d.InvalidateLayout()
	if moved > 0 {
		log.Printf("Dock: moved %d tab(s), target now has %d", moved, target.TabCount())
	}
	return nil
}
