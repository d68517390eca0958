package widgets

import (
	"github.com/gdamore/tcell/v2"

	"github.com/framegrace/texeldock/texelui/core"
	"github.com/framegrace/texeldock/texelui/theme"
)

// Border is a container framed by a one-cell box. Children dock inside the frame.
type Border struct {
	core.Container
	Style   tcell.Style
	Charset [6]rune // h, v, tl, tr, bl, br
	Title   string
}

func NewBorder() *Border {
	b := &Border{}
	b.Init(b)
	return b
}

// Init prepares the border for the widget embedding it.
func (b *Border) Init(owner core.Parent) {
	b.Container.Init(owner)
	b.Padding = 1
	b.Charset = [6]rune{'─', '│', '┌', '┐', '└', '┘'}
	tm := theme.Get()
	b.Style = tm.Style("ui", "surface_fg", "surface_bg", tcell.ColorWhite, tcell.ColorBlack)
}

func (b *Border) Draw(p *core.Painter) {
	p.DrawBorder(b.Rect, b.Style, b.Charset)
	if b.Title != "" && b.Rect.W > 4 {
		p.DrawText(b.Rect.X+2, b.Rect.Y, core.Truncate(b.Title, b.Rect.W-4), b.Style)
	}
	b.Container.Draw(p)
}
