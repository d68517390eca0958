// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: texelui/core/layout.go
// Summary: Dock layout engine used by every container.

package core

// LayoutDocked positions children inside bounds by dock style and returns the
// space left over. Edge docks are resolved in child order and get their
// preferred thickness, clamped to what is left; DockFill children then share
// the remainder. Hidden children take no space and DockNone children are left
// alone.
func LayoutDocked(children []Widget, bounds Rect) Rect {
	rem := bounds
	for _, w := range children {
		if w.IsHidden() {
			continue
		}
		cw, ch := w.PreferredSize()
		switch w.Dock() {
		case DockTop:
			ch = clamp(ch, rem.H)
			w.SetPosition(rem.X, rem.Y)
			w.Resize(rem.W, ch)
			rem.Y += ch
			rem.H -= ch
		case DockBottom:
			ch = clamp(ch, rem.H)
			w.SetPosition(rem.X, rem.Y+rem.H-ch)
			w.Resize(rem.W, ch)
			rem.H -= ch
		case DockLeft:
			cw = clamp(cw, rem.W)
			w.SetPosition(rem.X, rem.Y)
			w.Resize(cw, rem.H)
			rem.X += cw
			rem.W -= cw
		case DockRight:
			cw = clamp(cw, rem.W)
			w.SetPosition(rem.X+rem.W-cw, rem.Y)
			w.Resize(cw, rem.H)
			rem.W -= cw
		}
	}
	for _, w := range children {
		if w.IsHidden() || w.Dock() != DockFill {
			continue
		}
		w.SetPosition(rem.X, rem.Y)
		w.Resize(rem.W, rem.H)
	}
	return rem
}

func clamp(v, limit int) int {
	if v < 0 {
		return 0
	}
	if v > limit {
		return limit
	}
	return v
}
