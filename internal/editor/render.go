package editor

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"

	"github.com/kobzarvs/padedit/internal/screen"
)

// drawLine rewrites one line in place. prevLen is the line's length before
// the edit; the shrunk tail is blanked so no stale glyphs remain.
func (s *State) drawLine(line, prevLen int) {
	row := s.row(line)
	if row < 0 || row >= s.viewHeight() {
		return
	}
	text := s.Buffer.Line(line)
	if n := prevLen - utf8.RuneCountInString(text); n > 0 {
		text += strings.Repeat(" ", n)
	}
	s.Screen.Write(row, 0, text)
}

// redrawFrom repaints every visible row from line down, clearing rows past
// the end of the buffer.
func (s *State) redrawFrom(line int) {
	w, _ := s.Screen.Size()
	h := s.viewHeight()
	for row := max(0, s.row(line)); row < h; row++ {
		text := s.Buffer.Line(s.Pad + row)
		if n := w - utf8.RuneCountInString(text); n > 0 {
			text += strings.Repeat(" ", n)
		}
		s.Screen.Write(row, 0, text)
	}
}

// render repaints the whole screen.
func (s *State) render() {
	s.Screen.Clear()
	line := s.Buffer.Current()
	if h := s.viewHeight(); line >= s.Pad+h {
		s.Pad = line - h + 1
	}
	s.redrawFrom(s.Pad)
	if s.Debug {
		s.drawDebug()
	}
	s.place(s.Cursor.X, line)
}

// drawDebug fills the pane under the text area with the editor's internals.
func (s *State) drawDebug() {
	w, h := s.Screen.Size()
	top := s.viewHeight()
	rows := []string{
		fmt.Sprintf("CURRENT:    %s", s.Buffer.CurrentLine()),
		fmt.Sprintf("CURSOR:     %d, %d", s.Cursor.X, s.Cursor.Y),
		fmt.Sprintf("PAD:        %d", s.Pad),
		fmt.Sprintf("CH:         %d", s.Code),
		fmt.Sprintf("CHAR:       %s", screen.KeyName(s.Code)),
		fmt.Sprintf("MOUSE:      %d, %d", s.Mouse.X, s.Mouse.Y),
		fmt.Sprintf("LINE NO:    %d", s.Buffer.Current()),
		fmt.Sprintf("LINES:      %q", s.Buffer.Lines()),
	}
	for i, text := range rows {
		if top+i >= h {
			return
		}
		text = runewidth.FillRight(runewidth.Truncate(text, w, "…"), w)
		s.Screen.WriteStyled(top+i, 0, text, screen.StyleDebug)
	}
}
