// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/framegrace/texeldock/config"
)

func testDocs() []document {
	return []document{
		{name: "main.go", data: []byte("package main\n\nfunc main() {}\n")},
		{name: "notes.txt", data: []byte("hello\n")},
		{name: "run.sh", data: []byte("#!/bin/sh\necho hi\n")},
	}
}

func key(k tcell.Key) *tcell.EventKey { return tcell.NewEventKey(k, 0, tcell.ModNone) }

func TestLoadDocuments(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "a.go")
	require.NoError(t, os.WriteFile(p, []byte("package a\n"), 0644))

	docs, err := loadDocuments([]string{p})
	require.NoError(t, err)
	require.Len(t, docs, 1)
	assert.Equal(t, "a.go", docs[0].name)

	_, err = loadDocuments([]string{filepath.Join(dir, "missing")})
	assert.Error(t, err)
}

func TestWorkspaceSplitsDocuments(t *testing.T) {
	ws := newWorkspace(config.DockSettings{DragThreshold: 1}, "", testDocs(), -1)
	assert.Equal(t, 2, ws.left.Tabs().TabCount())
	assert.Equal(t, 1, ws.right.Tabs().TabCount())
	assert.Equal(t, "main.go [Go]", ws.left.Title)

	ws = newWorkspace(config.DockSettings{}, "", testDocs(), 0)
	assert.Equal(t, 0, ws.left.Tabs().TabCount())
	assert.Equal(t, 3, ws.right.Tabs().TabCount())
}

func TestWorkspaceEmpty(t *testing.T) {
	ws := newWorkspace(config.DockSettings{}, "", nil, -1)
	assert.Equal(t, 1, ws.left.Tabs().TabCount())
	assert.Equal(t, "empty", ws.left.Title)
}

func TestWorkspaceKeys(t *testing.T) {
	ws := newWorkspace(config.DockSettings{TitleBarVisible: true}, "", testDocs(), -1)
	assert.True(t, ws.left.Tabs().TitleBarVisible())

	assert.True(t, ws.handleKey(key(tcell.KeyF2), nil))
	assert.False(t, ws.left.Tabs().TitleBarVisible())
	assert.False(t, ws.right.Tabs().TitleBarVisible())

	assert.True(t, ws.handleKey(key(tcell.KeyF3), nil))
	assert.Equal(t, 3, ws.left.Tabs().TabCount())
	assert.Equal(t, 0, ws.right.Tabs().TabCount())
	assert.Equal(t, "", ws.right.Title)

	assert.True(t, ws.handleKey(key(tcell.KeyCtrlW), nil))
	assert.Equal(t, 2, ws.left.Tabs().TabCount())

	ws.left.SetHidden(true)
	ws.left.Tabs().SetHidden(true)
	assert.True(t, ws.handleKey(key(tcell.KeyF4), nil))
	assert.False(t, ws.left.IsHidden())
	assert.False(t, ws.left.Tabs().IsHidden())

	assert.False(t, ws.handleKey(key(tcell.KeyF10), nil))
}

func TestWorkspaceRendersBothAreas(t *testing.T) {
	ws := newWorkspace(config.DockSettings{}, "", testDocs(), -1)
	ws.ui.Resize(40, 10)
	ws.resize(40, 10)
	ws.ui.Render()

	lx, _ := ws.left.Position()
	lw, _ := ws.left.Size()
	rx, _ := ws.right.Position()
	rw, _ := ws.right.Size()
	assert.Equal(t, 0, lx)
	assert.Equal(t, 20, lw)
	assert.Equal(t, 20, rx)
	assert.Equal(t, 20, rw)
}
