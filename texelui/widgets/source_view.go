// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: texelui/widgets/source_view.go
// Summary: Read-only, syntax highlighted text page.

package widgets

import (
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/gdamore/tcell/v2"
	"github.com/go-enry/go-enry/v2"
	"github.com/mattn/go-runewidth"

	"github.com/framegrace/texeldock/texelui/core"
	"github.com/framegrace/texeldock/texelui/scroll"
	"github.com/framegrace/texeldock/texelui/theme"
)

const defaultHighlightStyle = "catppuccin-mocha"

// SourceView displays a file's contents with chroma highlighting. The
// language is detected by go-enry from the file name and content.
type SourceView struct {
	core.BaseWidget
	name     string
	language string
	lines    [][]core.Cell
	offset   int
	Style    tcell.Style
}

// NewSourceView highlights src with the named chroma style ("" for the default).
func NewSourceView(name string, src []byte, styleName string) *SourceView {
	v := &SourceView{name: name}
	tm := theme.Get()
	v.Style = tm.Style("ui", "surface_fg", "surface_bg", tcell.ColorWhite, tcell.ColorBlack)
	v.SetFocusable(true)
	v.language = enry.GetLanguage(name, src)
	v.lines = highlight(string(src), lexerFor(v.language, name, string(src)), chromaStyle(styleName), v.Style)
	return v
}

// Name returns the file name the view was created with.
func (v *SourceView) Name() string { return v.name }

// Language returns the detected language, "" when unknown.
func (v *SourceView) Language() string { return v.language }

// LineCount returns the number of lines.
func (v *SourceView) LineCount() int { return len(v.lines) }

// Offset returns the first visible line.
func (v *SourceView) Offset() int { return v.offset }

func (v *SourceView) state() scroll.State {
	return scroll.NewState(len(v.lines), v.Rect.H).ScrollTo(v.offset)
}

// ScrollBy moves the view by delta lines, clamped to the content.
func (v *SourceView) ScrollBy(delta int) bool {
	next := v.state().ScrollBy(delta).Offset()
	if next == v.offset {
		return false
	}
	v.offset = next
	v.Invalidate()
	return true
}

func (v *SourceView) Draw(p *core.Painter) {
	p.Fill(v.Rect, ' ', v.Style)
	st := v.state()
	for row := 0; row < v.Rect.H; row++ {
		idx := st.Offset() + row
		if idx >= len(v.lines) {
			break
		}
		col := 0
		for _, c := range v.lines[idx] {
			w := runewidth.RuneWidth(c.Ch)
			if w == 0 {
				continue
			}
			if col+w > v.Rect.W {
				break
			}
			p.SetCell(v.Rect.X+col, v.Rect.Y+row, c.Ch, c.Style)
			if w == 2 {
				p.SetCell(v.Rect.X+col+1, v.Rect.Y+row, 0, c.Style)
			}
			col += w
		}
	}
	scroll.DrawIndicators(p, v.Rect, st, v.Style.Bold(true))
}

func (v *SourceView) HandleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyUp:
		return v.ScrollBy(-1)
	case tcell.KeyDown:
		return v.ScrollBy(1)
	case tcell.KeyPgUp:
		return v.ScrollBy(-max(1, v.Rect.H-1))
	case tcell.KeyPgDn:
		return v.ScrollBy(max(1, v.Rect.H-1))
	case tcell.KeyHome:
		return v.ScrollBy(-v.offset)
	}
	return false
}

func (v *SourceView) HandleMouse(ev *tcell.EventMouse) bool {
	switch {
	case ev.Buttons()&tcell.WheelUp != 0:
		return v.ScrollBy(-3)
	case ev.Buttons()&tcell.WheelDown != 0:
		return v.ScrollBy(3)
	}
	return false
}

func chromaStyle(name string) *chroma.Style {
	if name == "" {
		name = defaultHighlightStyle
	}
	return styles.Get(name)
}

// lexerFor prefers the enry language, then the file name, then content analysis.
func lexerFor(language, name, text string) chroma.Lexer {
	if language != "" {
		if l := lexers.Get(language); l != nil {
			return l
		}
	}
	if l := lexers.Match(name); l != nil {
		return l
	}
	if l := lexers.Analyse(text); l != nil {
		return l
	}
	return lexers.Fallback
}

// highlight tokenises text and returns one styled cell slice per line. Tabs
// expand to four spaces. On lexer failure the text is returned unstyled.
func highlight(text string, lexer chroma.Lexer, style *chroma.Style, base tcell.Style) [][]core.Cell {
	lines := [][]core.Cell{nil}
	emit := func(s string, st tcell.Style) {
		for _, r := range s {
			switch r {
			case '\n':
				lines = append(lines, nil)
			case '\r':
			case '\t':
				for i := 0; i < 4; i++ {
					lines[len(lines)-1] = append(lines[len(lines)-1], core.Cell{Ch: ' ', Style: st})
				}
			default:
				lines[len(lines)-1] = append(lines[len(lines)-1], core.Cell{Ch: r, Style: st})
			}
		}
	}

	it, err := chroma.Coalesce(lexer).Tokenise(nil, text)
	if err != nil {
		emit(text, base)
		return trimTrailing(lines)
	}
	for _, tok := range it.Tokens() {
		emit(tok.Value, tokenStyle(style.Get(tok.Type), base))
	}
	return trimTrailing(lines)
}

func tokenStyle(entry chroma.StyleEntry, base tcell.Style) tcell.Style {
	st := base
	if entry.Colour.IsSet() {
		st = st.Foreground(tcell.NewRGBColor(int32(entry.Colour.Red()), int32(entry.Colour.Green()), int32(entry.Colour.Blue())))
	}
	if entry.Bold == chroma.Yes {
		st = st.Bold(true)
	}
	if entry.Italic == chroma.Yes {
		st = st.Italic(true)
	}
	if entry.Underline == chroma.Yes {
		st = st.Underline(true)
	}
	return st
}

func trimTrailing(lines [][]core.Cell) [][]core.Cell {
	if n := len(lines); n > 1 && len(lines[n-1]) == 0 {
		return lines[:n-1]
	}
	return lines
}

// PlainText returns line i without styling, for tests and copy.
func (v *SourceView) PlainText(i int) string {
	if i < 0 || i >= len(v.lines) {
		return ""
	}
	var sb strings.Builder
	for _, c := range v.lines[i] {
		sb.WriteRune(c.Ch)
	}
	return sb.String()
}
