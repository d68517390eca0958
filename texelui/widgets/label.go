package widgets

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/framegrace/texeldock/texelui/core"
	"github.com/framegrace/texeldock/texelui/theme"
)

// Label draws a single line of text.
type Label struct {
	core.BaseWidget
	Text  string
	Style tcell.Style
}

// NewLabel sizes the label to its text.
func NewLabel(text string) *Label {
	l := &Label{Text: text}
	tm := theme.Get()
	l.Style = tm.Style("ui", "surface_fg", "surface_bg", tcell.ColorWhite, tcell.ColorBlack)
	l.SetPreferredSize(runewidth.StringWidth(text), 1)
	l.Resize(runewidth.StringWidth(text), 1)
	return l
}

func (l *Label) Draw(p *core.Painter) {
	p.Fill(l.Rect, ' ', l.Style)
	p.DrawText(l.Rect.X, l.Rect.Y, core.Truncate(l.Text, l.Rect.W), l.Style)
}
