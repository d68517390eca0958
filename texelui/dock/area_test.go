// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package dock

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/framegrace/texeldock/texelui/core"
	"github.com/framegrace/texeldock/texelui/dnd"
	"github.com/framegrace/texeldock/texelui/widgets"
)

func TestAreaRefusesItsOwnContainer(t *testing.T) {
	a := NewArea()
	a.Tabs().AddPage("x", nil)
	pkg := a.Tabs().TitleBar().DragPackage(0, 0)
	require.NotNil(t, pkg)
	assert.False(t, a.CanDrop(pkg))
	assert.False(t, a.Drop(pkg, 0, 0))
	assert.Equal(t, 1, a.Tabs().TabCount())
}

func TestAreaMergesOtherContainer(t *testing.T) {
	left, right := NewArea(), NewArea()
	left.Tabs().AddPage("L1", nil)
	right.Tabs().AddPage("R1", nil)
	right.Tabs().AddPage("R2", nil)

	pkg := right.Tabs().TitleBar().DragPackage(0, 0)
	require.True(t, left.CanDrop(pkg))
	require.True(t, left.Drop(pkg, 0, 0))
	assert.Equal(t, []string{"L1", "R1", "R2"}, labels(left.Tabs()))
	assert.Equal(t, 0, right.Tabs().TabCount())
}

func TestAreaAcceptsSingleTab(t *testing.T) {
	left, right := NewArea(), NewArea()
	left.Tabs().AddPage("L1", nil)
	r := right.Tabs().AddPage("R1", nil)

	pkg := r.DragPackage(0, 0)
	require.True(t, left.CanDrop(pkg))
	require.True(t, left.Drop(pkg, 0, 0))
	assert.Same(t, r, left.Tabs().CurrentButton())
	assert.False(t, left.CanDrop(&dnd.Package{Name: "other"}))
	assert.False(t, left.CanDrop(nil))
}

// Drags a container's title bar across the screen and drops it on the other area.
func TestTitleBarDragMergesThroughUIManager(t *testing.T) {
	ui := core.NewUIManager()
	ui.Resize(40, 10)
	root := widgets.NewPane()
	root.SetDock(core.DockFill)
	left, right := NewArea(), NewArea()
	left.SetDock(core.DockLeft)
	left.SetPreferredSize(20, 0)
	right.SetDock(core.DockFill)
	root.AddChild(left)
	root.AddChild(right)
	left.Tabs().AddPage("L1", nil)
	right.Tabs().AddPage("R1", nil)
	left.Tabs().SetTitleBarVisible(true)
	ui.AddWidget(root)
	ui.SetInterceptor(dnd.NewController(1))
	ui.Render()

	require.Same(t, left.Tabs().TitleBar(), ui.WidgetAt(2, 1))

	ui.HandleMouse(tcell.NewEventMouse(2, 1, tcell.Button1, tcell.ModNone))
	ui.HandleMouse(tcell.NewEventMouse(25, 5, tcell.Button1, tcell.ModNone))
	assert.True(t, left.IsHidden(), "source area hides while dragging")
	assert.True(t, left.Tabs().IsHidden())

	ui.HandleMouse(tcell.NewEventMouse(25, 5, tcell.ButtonNone, tcell.ModNone))
	assert.Equal(t, []string{"R1", "L1"}, labels(right.Tabs()))
	assert.Equal(t, 0, left.Tabs().TabCount())
	assert.False(t, left.Tabs().IsHidden())
	assert.True(t, left.IsHidden(), "host keeps the emptied area hidden")

	ui.Render()
	assert.False(t, right.Tabs().Strip().IsHidden())
}
