package editor

import (
	"unicode"

	"github.com/kobzarvs/padedit/internal/screen"
)

const (
	actionInsertChar  = "insert_char"
	actionBackspace   = "backspace"
	actionNewline     = "newline"
	actionMoveUp      = "move_up"
	actionMoveDown    = "move_down"
	actionMoveLeft    = "move_left"
	actionMoveRight   = "move_right"
	actionLineStart   = "line_start"
	actionLineEnd     = "line_end"
	actionMouseClick  = "mouse_click"
	actionQuit        = "quit"
	actionRedraw      = "redraw"
	actionToggleDebug = "toggle_debug"
)

// actions names every built-in handler so the keymap can refer to them.
var actions = map[string]Handler{
	actionInsertChar:  insertChar,
	actionBackspace:   backspace,
	actionNewline:     newline,
	actionMoveUp:      moveUp,
	actionMoveDown:    moveDown,
	actionMoveLeft:    moveLeft,
	actionMoveRight:   moveRight,
	actionLineStart:   lineStart,
	actionLineEnd:     lineEnd,
	actionMouseClick:  mouseClick,
	actionQuit:        quit,
	actionRedraw:      redraw,
	actionToggleDebug: toggleDebug,
}

// Action returns the built-in handler registered under name.
func Action(name string) (Handler, bool) {
	h, ok := actions[name]
	return h, ok
}

// DefaultBindings returns the startup key table.
func DefaultBindings() map[int]Handler {
	return map[int]Handler{
		screen.CodeSpace:     insertChar,
		screen.CodeBackspace: backspace,
		screen.CodeEnter:     newline,
		screen.CodeUp:        moveUp,
		screen.CodeDown:      moveDown,
		screen.CodeLeft:      moveLeft,
		screen.CodeRight:     moveRight,
		screen.CodeCtrlLeft:  lineStart,
		screen.CodeHome:      lineStart,
		screen.CodeCtrlRight: lineEnd,
		screen.CodeEnd:       lineEnd,
		screen.CodeMouse:     mouseClick,
		screen.CodeCtrlQ:     quit,
		screen.CodeCtrlC:     quit,
		screen.CodeResize:    redraw,
		screen.CodeF12:       toggleDebug,
	}
}

// insertChar is also the fallback for unbound codes; anything that is not a
// printable rune is ignored.
func insertChar(s *State) bool {
	if s.Code < 0 || s.Code > unicode.MaxRune || !unicode.IsPrint(rune(s.Code)) {
		return true
	}
	line, col := s.Buffer.Current(), s.Cursor.X
	prev := s.Buffer.LineLen(line)
	if !s.Buffer.InsertChar(line, col, rune(s.Code)) {
		return true
	}
	s.drawLine(line, prev)
	s.place(col+1, line)
	return true
}

func backspace(s *State) bool {
	line, col := s.Buffer.Current(), s.Cursor.X
	if col == 0 && line == 0 {
		return true
	}
	if col > 0 {
		prev := s.Buffer.LineLen(line)
		if !s.Buffer.RemoveChar(line, col) {
			return true
		}
		s.drawLine(line, prev)
		s.place(col-1, line)
		return true
	}
	joinCol, err := s.Buffer.JoinWithPrevious(line)
	if err != nil {
		return true
	}
	s.redrawFrom(line - 1)
	s.place(joinCol, line-1)
	return true
}

func newline(s *State) bool {
	line, col := s.Buffer.Current(), s.Cursor.X
	if col < s.Buffer.LineLen(line) {
		s.Buffer.SplitLine(line, col)
	} else if err := s.Buffer.InsertLine(line+1, ""); err != nil {
		return true
	}
	s.redrawFrom(line)
	s.place(0, line+1)
	return true
}

func moveUp(s *State) bool {
	line := s.Buffer.Current()
	if line == 0 {
		return true
	}
	s.place(min(s.Cursor.X, s.Buffer.LineLen(line-1)), line-1)
	return true
}

func moveDown(s *State) bool {
	line := s.Buffer.Current()
	if line+1 >= s.Buffer.Len() {
		return true
	}
	s.place(min(s.Cursor.X, s.Buffer.LineLen(line+1)), line+1)
	return true
}

func moveLeft(s *State) bool {
	line, col := s.Buffer.Current(), s.Cursor.X
	switch {
	case col > 0:
		s.place(col-1, line)
	case line > 0:
		s.place(s.Buffer.LineLen(line-1), line-1)
	}
	return true
}

func moveRight(s *State) bool {
	line, col := s.Buffer.Current(), s.Cursor.X
	switch {
	case col < s.Buffer.LineLen(line):
		s.place(col+1, line)
	case line+1 < s.Buffer.Len():
		s.place(0, line+1)
	}
	return true
}

func lineStart(s *State) bool {
	s.place(0, s.Buffer.Current())
	return true
}

func lineEnd(s *State) bool {
	line := s.Buffer.Current()
	s.place(s.Buffer.LineLen(line), line)
	return true
}

func mouseClick(s *State) bool {
	m := s.Mouse
	if m.ButtonState&screen.ButtonPrimary == 0 {
		return true
	}
	if m.Y < 0 || m.Y >= s.viewHeight() {
		return true
	}
	line := m.Y + s.Pad
	if line >= s.Buffer.Len() {
		return true
	}
	s.place(max(0, min(m.X, s.Buffer.LineLen(line))), line)
	return true
}

func quit(*State) bool {
	return false
}

func redraw(s *State) bool {
	s.render()
	return true
}

func toggleDebug(s *State) bool {
	s.Debug = !s.Debug
	s.render()
	return true
}
