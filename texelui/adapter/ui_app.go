// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: texelui/adapter/ui_app.go
// Summary: Runs a UIManager on a tcell screen.

package adapter

import (
	"log"
	"sync"

	"github.com/gdamore/tcell/v2"

	"github.com/framegrace/texeldock/texelui/core"
)

// UIApp drives a UIManager from a tcell screen's event stream.
type UIApp struct {
	title    string
	ui       *core.UIManager
	stopCh   chan struct{}
	stopOnce sync.Once
	refresh  chan bool
	onResize func(w, h int)
	onKey    func(ev *tcell.EventKey, focused core.Widget) bool
}

func NewUIApp(title string, ui *core.UIManager) *UIApp {
	if ui == nil {
		ui = core.NewUIManager()
	}
	a := &UIApp{
		title:   title,
		ui:      ui,
		stopCh:  make(chan struct{}),
		refresh: make(chan bool, 1),
	}
	ui.SetRefreshNotifier(a.refresh)
	return a
}

// UI exposes the manager for composition.
func (a *UIApp) UI() *core.UIManager { return a.ui }

func (a *UIApp) Title() string {
	if a.title == "" {
		return "TexelUI"
	}
	return a.title
}

// SetOnResize registers a callback run after the UI is resized.
func (a *UIApp) SetOnResize(fn func(w, h int)) { a.onResize = fn }

// SetOnKey registers a callback that sees keys before the UI. It runs under
// the UI's tree lock and gets the focused widget. Returning true consumes the
// key.
func (a *UIApp) SetOnKey(fn func(ev *tcell.EventKey, focused core.Widget) bool) { a.onKey = fn }

func (a *UIApp) Stop() {
	a.stopOnce.Do(func() { close(a.stopCh) })
}

// Resize resizes the UI and runs the resize callback under the tree lock.
func (a *UIApp) Resize(cols, rows int) {
	a.ui.Resize(cols, rows)
	if a.onResize != nil {
		a.ui.Update(func(core.Widget) { a.onResize(cols, rows) })
	}
}

// HandleEvent routes one tcell event. It returns false when the app should quit.
func (a *UIApp) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		w, h := ev.Size()
		a.Resize(w, h)
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyCtrlC || ev.Key() == tcell.KeyCtrlQ {
			return false
		}
		if a.onKey != nil {
			handled := false
			a.ui.Update(func(focused core.Widget) { handled = a.onKey(ev, focused) })
			if handled {
				a.ui.InvalidateAll()
				return true
			}
		}
		a.ui.HandleKey(ev)
	case *tcell.EventMouse:
		a.ui.HandleMouse(ev)
	}
	return true
}

// Flush renders a frame into screen and shows it.
func (a *UIApp) Flush(screen tcell.Screen) {
	buf := a.ui.Render()
	for y, row := range buf {
		for x, c := range row {
			if c.Ch == 0 {
				continue
			}
			screen.SetContent(x, y, c.Ch, nil, c.Style)
		}
	}
	screen.Show()
}

// Run initialises screen and processes events until Stop, Ctrl+C or Ctrl+Q.
// The screen is finalised on return.
func (a *UIApp) Run(screen tcell.Screen) error {
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()
	screen.EnableMouse()
	screen.Clear()

	events := make(chan tcell.Event, 16)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			events <- ev
		}
	}()

	a.Resize(screen.Size())
	a.Flush(screen)
	for {
		select {
		case <-a.stopCh:
			return nil
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if !a.HandleEvent(ev) {
				log.Printf("UIApp: %s quitting", a.Title())
				return nil
			}
			a.Flush(screen)
		case <-a.refresh:
			a.Flush(screen)
		}
	}
}
