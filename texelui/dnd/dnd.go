// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: texelui/dnd/dnd.go
// Summary: Drag-and-drop contracts shared by handles, sources and targets.

// Package dnd is a small drag-and-drop transport for texelui widget trees.
//
// A Handle is the widget the user grabs. It hands out a Package naming the
// Source being dragged. While the drag is in flight the Source is told via
// DragStart, and when the pointer is released the deepest Target under it
// that accepts the package gets Drop. The Source always hears DragEnd.
package dnd

// Package describes what is being dragged. Data is opaque to the transport.
type Package struct {
	Name   string
	Data   interface{}
	Source Source
	// HoldX/HoldY is the grab point relative to the handle's origin.
	HoldX, HoldY int
}

// Source is the object a drag moves.
type Source interface {
	// DragStart is called once the pointer has travelled past the threshold.
	DragStart(pkg *Package, x, y int)
	// DragEnd is called when the gesture finishes, successful or not.
	DragEnd(success bool, x, y int)
}

// Handle widgets can begin drags. DragPackage returns nil to refuse.
type Handle interface {
	DragPackage(x, y int) *Package
}

// Target widgets accept drops.
type Target interface {
	CanDrop(pkg *Package) bool
	Drop(pkg *Package, x, y int) bool
}
