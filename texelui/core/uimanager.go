// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: texelui/core/uimanager.go
// Summary: Root of a widget tree: layout pass, composition, input routing.

package core

import (
	"sort"
	"sync"

	"github.com/gdamore/tcell/v2"

	"github.com/framegrace/texeldock/texelui/theme"
)

// MouseInterceptor sees every mouse event before normal routing. under is the
// deepest visible widget at the pointer, or nil. Returning true consumes it.
type MouseInterceptor interface {
	InterceptMouse(ev *tcell.EventMouse, under Widget) bool
}

// KeyInterceptor is the keyboard counterpart of MouseInterceptor.
type KeyInterceptor interface {
	InterceptKey(ev *tcell.EventKey) bool
}

// UIManager owns a widget tree and composes it to a buffer.
type UIManager struct {
	mu          sync.Mutex // protects widgets, focus, capture, buffer, interceptor
	dirtyMu     sync.Mutex // protects dirty list and notifier
	W, H        int
	widgets     []Widget // z-ordered: later entries draw on top
	bgStyle     tcell.Style
	notifier    chan<- bool
	focused     Widget
	buf         [][]Cell
	dirty       []Rect
	capture     Widget
	interceptor MouseInterceptor
}

func NewUIManager() *UIManager {
	tm := theme.Get()
	bg := tm.GetColor("ui", "surface_bg", tcell.ColorBlack)
	fg := tm.GetColor("ui", "surface_fg", tcell.ColorWhite)
	return &UIManager{
		bgStyle: tcell.StyleDefault.Background(bg).Foreground(fg),
	}
}

func (u *UIManager) SetRefreshNotifier(ch chan<- bool) {
	u.dirtyMu.Lock()
	defer u.dirtyMu.Unlock()
	u.notifier = ch
}

func (u *UIManager) RequestRefresh() {
	u.dirtyMu.Lock()
	defer u.dirtyMu.Unlock()
	u.requestRefreshLocked()
}

// SetInterceptor installs the mouse (and optionally key) interceptor, usually
// a drag-and-drop controller.
func (u *UIManager) SetInterceptor(i MouseInterceptor) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.interceptor = i
}

func (u *UIManager) Resize(w, h int) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.dirtyMu.Lock()
	defer u.dirtyMu.Unlock()

	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	u.W, u.H = w, h
	u.buf = nil
	for _, root := range u.widgets {
		if root.Dock() == DockFill {
			root.SetPosition(0, 0)
			root.Resize(w, h)
		}
	}
	u.invalidateAllLocked()
}

func (u *UIManager) AddWidget(w Widget) {
	u.mu.Lock()
	defer u.mu.Unlock()

	u.widgets = append(u.widgets, w)
	if w.Dock() == DockFill {
		w.SetPosition(0, 0)
		w.Resize(u.W, u.H)
	}
	propagateInvalidator(w, u.Invalidate)
	u.dirtyMu.Lock()
	u.invalidateAllLocked()
	u.dirtyMu.Unlock()
}

func (u *UIManager) Focus(w Widget) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.focusLocked(w)
}

// Update runs fn with the tree lock held, passing the focused widget. Code
// outside the manager's own input routing mutates the tree through Update.
// fn must not call back into the manager.
func (u *UIManager) Update(fn func(focused Widget)) {
	u.mu.Lock()
	defer u.mu.Unlock()
	fn(u.focused)
}

// Focused returns the widget holding keyboard focus.
func (u *UIManager) Focused() Widget {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.focused
}

func (u *UIManager) focusLocked(w Widget) {
	if w == nil || !w.Focusable() {
		return
	}
	if u.focused == w {
		return
	}
	if u.focused != nil {
		u.focused.Blur()
	}
	u.focused = w
	u.focused.Focus()
}

func (u *UIManager) HandleKey(ev *tcell.EventKey) bool {
	u.mu.Lock()
	defer u.mu.Unlock()

	if ki, ok := u.interceptor.(KeyInterceptor); ok && ki.InterceptKey(ev) {
		u.fullRedrawLocked()
		return true
	}

	if u.focused != nil && Visible(u.focused) && u.focused.HandleKey(ev) {
		u.dirtyMu.Lock()
		if len(u.dirty) == 0 {
			u.invalidateAllLocked()
		} else {
			u.requestRefreshLocked()
		}
		u.dirtyMu.Unlock()
		return true
	}

	if ev.Key() == tcell.KeyTab || ev.Key() == tcell.KeyBacktab {
		forward := ev.Key() == tcell.KeyTab && ev.Modifiers()&tcell.ModShift == 0
		if u.cycleFocusLocked(forward) {
			u.fullRedrawLocked()
			return true
		}
	}
	return false
}

// cycleFocusLocked moves focus to the next visible focusable widget in tree order.
func (u *UIManager) cycleFocusLocked(forward bool) bool {
	var order []Widget
	var walk func(w Widget)
	walk = func(w Widget) {
		if w.IsHidden() {
			return
		}
		if w.Focusable() {
			order = append(order, w)
		}
		if cc, ok := w.(ChildContainer); ok {
			cc.VisitChildren(walk)
		}
	}
	for _, w := range u.widgets {
		walk(w)
	}
	if len(order) == 0 {
		return false
	}
	cur := -1
	for i, w := range order {
		if w == u.focused {
			cur = i
			break
		}
	}
	n := len(order)
	var next int
	switch {
	case cur < 0:
		next = 0
	case forward:
		next = (cur + 1) % n
	default:
		next = (cur - 1 + n) % n
	}
	u.focusLocked(order[next])
	return true
}

// HandleMouse routes mouse events for click-to-focus and optional capture drags.
func (u *UIManager) HandleMouse(ev *tcell.EventMouse) bool {
	u.mu.Lock()
	defer u.mu.Unlock()

	x, y := ev.Position()
	buttons := ev.Buttons()

	if u.interceptor != nil && u.interceptor.InterceptMouse(ev, u.topmostAtLocked(x, y)) {
		u.capture = nil
		u.fullRedrawLocked()
		return true
	}

	prevIsDown := u.capture != nil
	nowDown := buttons&tcell.Button1 != 0

	if !prevIsDown && nowDown {
		if w := u.topmostAtLocked(x, y); w != nil {
			u.focusLocked(w)
			u.capture = w
			if mw, ok := w.(MouseAware); ok {
				_ = mw.HandleMouse(ev)
			}
			u.fullRedrawLocked()
			return true
		}
		return false
	}

	if u.capture != nil {
		if mw, ok := u.capture.(MouseAware); ok {
			_ = mw.HandleMouse(ev)
		}
		if prevIsDown && !nowDown {
			u.capture = nil
		}
		u.fullRedrawLocked()
		return true
	}

	if buttons&(tcell.WheelUp|tcell.WheelDown|tcell.WheelLeft|tcell.WheelRight) != 0 {
		if w := u.topmostAtLocked(x, y); w != nil {
			if mw, ok := w.(MouseAware); ok {
				_ = mw.HandleMouse(ev)
				u.fullRedrawLocked()
				return true
			}
		}
	}
	return false
}

// WidgetAt returns the deepest visible widget under (x, y).
func (u *UIManager) WidgetAt(x, y int) Widget {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.topmostAtLocked(x, y)
}

func (u *UIManager) topmostAtLocked(x, y int) Widget {
	sorted := u.sortedWidgetsLocked()
	for i := len(sorted) - 1; i >= 0; i-- {
		if w := deepHit(sorted[i], x, y); w != nil {
			return w
		}
	}
	return nil
}

func deepHit(w Widget, x, y int) Widget {
	if w.IsHidden() {
		return nil
	}
	if ht, ok := w.(HitTester); ok {
		if dw := ht.WidgetAt(x, y); dw != nil {
			return dw
		}
	}
	if w.HitTest(x, y) {
		return w
	}
	return nil
}

// Invalidate marks a region for redraw.
// Thread-safe.
func (u *UIManager) Invalidate(r Rect) {
	u.dirtyMu.Lock()
	defer u.dirtyMu.Unlock()

	if r.W <= 0 || r.H <= 0 {
		return
	}
	u.dirty = append(u.dirty, r)
	u.requestRefreshLocked()
}

// InvalidateAll marks the whole surface for redraw.
func (u *UIManager) InvalidateAll() {
	u.dirtyMu.Lock()
	defer u.dirtyMu.Unlock()
	u.invalidateAllLocked()
}

func (u *UIManager) fullRedrawLocked() {
	u.dirtyMu.Lock()
	u.invalidateAllLocked()
	u.dirtyMu.Unlock()
}

// assumes dirtyMu is held
func (u *UIManager) invalidateAllLocked() {
	u.dirty = append(u.dirty, Rect{X: 0, Y: 0, W: u.W, H: u.H})
	u.requestRefreshLocked()
}

// assumes dirtyMu is held
func (u *UIManager) requestRefreshLocked() {
	if u.notifier == nil {
		return
	}
	select {
	case u.notifier <- true:
	default:
	}
}

func (u *UIManager) ensureBufferLocked() {
	h := u.H
	w := u.W
	if u.buf != nil && len(u.buf) == h && (h == 0 || len(u.buf[0]) == w) {
		return
	}
	u.buf = make([][]Cell, h)
	for y := 0; y < h; y++ {
		row := make([]Cell, w)
		for x := 0; x < w; x++ {
			row[x] = Cell{Ch: ' ', Style: u.bgStyle}
		}
		u.buf[y] = row
	}
}

func getZIndex(w Widget) int {
	if zi, ok := w.(ZIndexer); ok {
		return zi.ZIndex()
	}
	return 0
}

// sortedWidgetsLocked returns a copy of widgets sorted by z-index (stable sort).
func (u *UIManager) sortedWidgetsLocked() []Widget {
	sorted := make([]Widget, len(u.widgets))
	copy(sorted, u.widgets)
	sort.SliceStable(sorted, func(i, j int) bool {
		return getZIndex(sorted[i]) < getZIndex(sorted[j])
	})
	return sorted
}

// Layout runs one layout pass over the tree.
func (u *UIManager) Layout() {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.layoutLocked()
}

// layoutLocked calls Layout on every visible root, unconditionally. Roots that
// were flagged dirty force a full redraw since geometry may have moved.
func (u *UIManager) layoutLocked() {
	moved := false
	for _, w := range u.widgets {
		if w.IsHidden() {
			continue
		}
		if nl, ok := w.(interface{ NeedsLayout() bool }); ok && nl.NeedsLayout() {
			moved = true
		}
		if l, ok := w.(Layouter); ok {
			l.Layout()
		}
	}
	if moved {
		u.fullRedrawLocked()
	}
}

// Render lays the tree out, updates dirty regions and returns the framebuffer.
func (u *UIManager) Render() [][]Cell {
	u.mu.Lock()
	defer u.mu.Unlock()

	u.layoutLocked()
	u.ensureBufferLocked()

	u.dirtyMu.Lock()
	dirtyCopy := u.dirty
	u.dirty = nil
	u.dirtyMu.Unlock()

	sorted := u.sortedWidgetsLocked()

	if len(dirtyCopy) == 0 {
		return u.buf
	}

	for _, clip := range mergeRects(dirtyCopy) {
		clip = clip.Intersect(Rect{W: u.W, H: u.H})
		if clip.Empty() {
			continue
		}
		p := NewPainter(u.buf, clip)
		p.Fill(clip, ' ', u.bgStyle)
		for _, w := range sorted {
			if w.IsHidden() {
				continue
			}
			wx, wy := w.Position()
			ww, wh := w.Size()
			if rectsOverlap(Rect{X: wx, Y: wy, W: ww, H: wh}, clip) {
				w.Draw(p)
			}
		}
	}
	return u.buf
}

func rectsOverlap(a, b Rect) bool {
	return !a.Intersect(b).Empty()
}

// mergeRects unions overlapping or edge-adjacent rectangles into a compact set.
func mergeRects(in []Rect) []Rect {
	out := make([]Rect, 0, len(in))
	for _, r := range in {
		if r.Empty() {
			continue
		}
		out = append(out, r)
	}
	changed := true
	for changed {
		changed = false
		for i := 0; i < len(out) && !changed; i++ {
			for j := i + 1; j < len(out) && !changed; j++ {
				if rectsTouchOrOverlap(out[i], out[j]) {
					out[i] = union(out[i], out[j])
					out = append(out[:j], out[j+1:]...)
					changed = true
				}
			}
		}
	}
	return out
}

func rectsTouchOrOverlap(a, b Rect) bool {
	if rectsOverlap(a, b) {
		return true
	}
	ax1 := a.X + a.W
	ay1 := a.Y + a.H
	bx1 := b.X + b.W
	by1 := b.Y + b.H
	horizontallyAdjacent := (ax1 == b.X || bx1 == a.X) && !(a.Y >= by1 || ay1 <= b.Y)
	verticallyAdjacent := (ay1 == b.Y || by1 == a.Y) && !(a.X >= bx1 || ax1 <= b.X)
	cornerAdjacent := (ax1 == b.X || bx1 == a.X) && (ay1 == b.Y || by1 == a.Y)
	return horizontallyAdjacent || verticallyAdjacent || cornerAdjacent
}

func union(a, b Rect) Rect {
	x0 := min(a.X, b.X)
	y0 := min(a.Y, b.Y)
	x1 := max(a.X+a.W, b.X+b.W)
	y1 := max(a.Y+a.H, b.Y+b.H)
	return Rect{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}
}
