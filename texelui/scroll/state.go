// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: texelui/scroll/state.go
// Summary: Vertical scroll position over content taller than its viewport.

package scroll

// State is an immutable scroll position. Offset is always within
// [0, max(0, content-viewport)].
type State struct {
	content  int
	viewport int
	offset   int
}

// NewState returns a state scrolled to the top.
func NewState(content, viewport int) State {
	return State{content: max(0, content), viewport: max(0, viewport)}
}

func (s State) Offset() int         { return s.offset }
func (s State) ContentHeight() int  { return s.content }
func (s State) ViewportHeight() int { return s.viewport }

// MaxOffset is the largest valid offset.
func (s State) MaxOffset() int { return max(0, s.content-s.viewport) }

func (s State) CanScrollUp() bool   { return s.offset > 0 }
func (s State) CanScrollDown() bool { return s.offset < s.MaxOffset() }

// ScrollTo returns the state moved to row, clamped.
func (s State) ScrollTo(row int) State {
	s.offset = min(max(row, 0), s.MaxOffset())
	return s
}

// ScrollBy returns the state moved by delta rows, clamped.
func (s State) ScrollBy(delta int) State { return s.ScrollTo(s.offset + delta) }

// WithViewport keeps the offset while changing the viewport height.
func (s State) WithViewport(h int) State {
	s.viewport = max(0, h)
	return s.ScrollTo(s.offset)
}
