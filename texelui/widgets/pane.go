package widgets

import (
	"github.com/gdamore/tcell/v2"

	"github.com/framegrace/texeldock/texelui/core"
	"github.com/framegrace/texeldock/texelui/theme"
)

// Pane is a container that paints a solid background under its children.
type Pane struct {
	core.Container
	Style tcell.Style
}

func NewPane() *Pane {
	p := &Pane{}
	p.Init(p)
	tm := theme.Get()
	p.Style = tm.Style("ui", "surface_fg", "surface_bg", tcell.ColorWhite, tcell.ColorBlack)
	return p
}

func (p *Pane) Draw(painter *core.Painter) {
	painter.Fill(p.Rect, ' ', p.EffectiveStyle(p.Style))
	p.Container.Draw(painter)
}
