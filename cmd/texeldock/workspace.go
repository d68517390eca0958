// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: cmd/texeldock/workspace.go
// Summary: Builds the two-area dock layout and its key bindings.

package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/gdamore/tcell/v2"

	"github.com/framegrace/texeldock/config"
	"github.com/framegrace/texeldock/texelui/core"
	"github.com/framegrace/texeldock/texelui/dnd"
	"github.com/framegrace/texeldock/texelui/dock"
	"github.com/framegrace/texeldock/texelui/widgets"
)

type document struct {
	name string
	data []byte
}

func loadDocuments(paths []string) ([]document, error) {
	docs := make([]document, 0, len(paths))
	for _, p := range paths {
		data, err := os.ReadFile(p)
		if err != nil {
			return nil, fmt.Errorf("load %s: %w", p, err)
		}
		docs = append(docs, document{name: filepath.Base(p), data: data})
	}
	return docs, nil
}

type workspace struct {
	ui          *core.UIManager
	root        *widgets.Pane
	left, right *dock.Area
	drag        *dnd.Controller
	titleBars   bool
}

// newWorkspace puts the first split documents in the left area and the rest
// in the right one. A negative split means half.
func newWorkspace(settings config.DockSettings, highlightStyle string, docs []document, split int) *workspace {
	ws := &workspace{
		ui:        core.NewUIManager(),
		root:      widgets.NewPane(),
		left:      dock.NewArea(),
		right:     dock.NewArea(),
		drag:      dnd.NewController(settings.DragThreshold),
		titleBars: settings.TitleBarVisible,
	}
	ws.root.SetDock(core.DockFill)
	ws.left.SetDock(core.DockLeft)
	ws.right.SetDock(core.DockFill)
	ws.root.AddChild(ws.left)
	ws.root.AddChild(ws.right)

	if split < 0 || split > len(docs) {
		split = (len(docs) + 1) / 2
	}
	for i, d := range docs {
		area := ws.right
		if i < split {
			area = ws.left
		}
		view := widgets.NewSourceView(d.name, d.data, highlightStyle)
		area.Tabs().AddPage(d.name, view)
	}
	if len(docs) == 0 {
		ws.left.Tabs().AddPage("empty", widgets.NewLabel("No files given. Run texeldock FILE..."))
	}

	for _, a := range ws.areas() {
		a.Tabs().SetTitleBarVisible(ws.titleBars)
		area := a
		a.Tabs().OnTabChanged = func(b *widgets.TabButton) { area.Title = tabTitle(b) }
		a.Title = tabTitle(a.Tabs().CurrentButton())
	}

	ws.ui.AddWidget(ws.root)
	ws.ui.SetInterceptor(ws.drag)
	return ws
}

func tabTitle(b *widgets.TabButton) string {
	if b == nil {
		return ""
	}
	if v, ok := b.Page().(*widgets.SourceView); ok && v.Language() != "" {
		return fmt.Sprintf("%s [%s]", b.Label(), v.Language())
	}
	return b.Label()
}

func (ws *workspace) areas() []*dock.Area { return []*dock.Area{ws.left, ws.right} }

// resize gives the left area half the width; the right one fills the rest.
func (ws *workspace) resize(w, h int) {
	ws.left.SetPreferredSize(w/2, h)
}

// handleKey runs under the UI's tree lock.
func (ws *workspace) handleKey(ev *tcell.EventKey, focused core.Widget) bool {
	switch ev.Key() {
	case tcell.KeyF2:
		ws.titleBars = !ws.titleBars
		for _, a := range ws.areas() {
			a.Tabs().SetTitleBarVisible(ws.titleBars)
		}
		return true
	case tcell.KeyF3:
		if err := ws.right.Tabs().MoveTabsTo(ws.left.Tabs()); err != nil {
			log.Printf("Workspace: merge failed: %v", err)
		}
		return true
	case tcell.KeyF4:
		for _, a := range ws.areas() {
			a.SetHidden(false)
			a.Tabs().SetHidden(false)
		}
		return true
	case tcell.KeyCtrlW:
		return ws.closeCurrent(focused)
	}
	return false
}

// closeCurrent closes the current tab of the area holding keyboard focus,
// falling back to the left area.
func (ws *workspace) closeCurrent(focused core.Widget) bool {
	target := ws.left
	if focused != nil {
		for _, a := range ws.areas() {
			if contains(a, focused) {
				target = a
				break
			}
		}
	}
	b := target.Tabs().CurrentButton()
	if b == nil {
		return false
	}
	return target.Tabs().RemovePage(b)
}

func contains(root core.Widget, w core.Widget) bool {
	for cur := w; cur != nil; {
		if cur == root {
			return true
		}
		p := cur.Parent()
		if p == nil {
			return false
		}
		cur = p
	}
	return false
}
