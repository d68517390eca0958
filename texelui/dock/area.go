// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: texelui/dock/area.go
// Summary: Framed host for one DockContainer; the drop site for container drags.

package dock

import (
	"errors"
	"log"

	"github.com/framegrace/texeldock/texelui/dnd"
	"github.com/framegrace/texeldock/texelui/widgets"
)

// Area hosts a single DockContainer. Dropping another container's title bar
// on it merges that container's tabs into this one; dropping a lone tab adds
// just that tab.
type Area struct {
	widgets.Border
	tabs *DockContainer
}

// NewArea creates an area with an empty container.
func NewArea() *Area {
	a := &Area{}
	a.Border.Init(a)
	tabs, err := New(a)
	if err != nil {
		panic(err)
	}
	a.tabs = tabs
	return a
}

// Tabs returns the hosted container.
func (a *Area) Tabs() *DockContainer { return a.tabs }

// CanDrop accepts container drags from other containers and single tabs.
func (a *Area) CanDrop(pkg *dnd.Package) bool {
	if pkg == nil {
		return false
	}
	switch pkg.Name {
	case PackageTabWindowMove:
		src, ok := pkg.Source.(*DockContainer)
		return ok && src != a.tabs
	case widgets.PackageTabButtonMove:
		_, ok := pkg.Data.(*widgets.TabButton)
		return ok
	}
	return false
}

// Drop performs the merge. It returns false when nothing moved.
func (a *Area) Drop(pkg *dnd.Package, x, y int) bool {
	switch pkg.Name {
	case PackageTabWindowMove:
		src, ok := pkg.Source.(*DockContainer)
		if !ok {
			return false
		}
		if err := src.MoveTabsTo(a.tabs); err != nil {
			if !errors.Is(err, ErrSelfTarget) {
				log.Printf("Dock: drop failed: %v", err)
			}
			return false
		}
		return true
	case widgets.PackageTabButtonMove:
		b, ok := pkg.Data.(*widgets.TabButton)
		if !ok {
			return false
		}
		a.tabs.AddExistingTab(b)
		a.tabs.Select(b)
		return true
	}
	return false
}
