// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package scroll

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/framegrace/texeldock/texelui/core"
)

func TestStateClamps(t *testing.T) {
	s := NewState(20, 5)
	if s.CanScrollUp() || !s.CanScrollDown() {
		t.Fatalf("fresh state should only scroll down")
	}
	s = s.ScrollBy(100)
	if s.Offset() != 15 || s.CanScrollDown() {
		t.Fatalf("expected offset 15 at bottom, got %d", s.Offset())
	}
	s = s.ScrollBy(-100)
	if s.Offset() != 0 {
		t.Fatalf("expected offset 0, got %d", s.Offset())
	}
}

func TestStateWithViewportReclamps(t *testing.T) {
	s := NewState(10, 2).ScrollTo(8)
	s = s.WithViewport(6)
	if s.Offset() != 4 {
		t.Fatalf("expected offset 4 after growing viewport, got %d", s.Offset())
	}
	if got := NewState(3, 10).MaxOffset(); got != 0 {
		t.Fatalf("short content should not scroll, max=%d", got)
	}
}

func TestDrawIndicators(t *testing.T) {
	buf := make([][]core.Cell, 3)
	for y := range buf {
		buf[y] = make([]core.Cell, 4)
	}
	p := core.NewPainter(buf, core.Rect{W: 4, H: 3})
	DrawIndicators(p, core.Rect{W: 4, H: 3}, NewState(10, 3).ScrollTo(2), tcell.StyleDefault)
	if buf[0][3].Ch != UpGlyph || buf[2][3].Ch != DownGlyph {
		t.Fatalf("indicators missing: %q %q", buf[0][3].Ch, buf[2][3].Ch)
	}
}
