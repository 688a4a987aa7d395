package editor

import (
	"errors"
	"fmt"

	"github.com/kobzarvs/padedit/internal/buffer"
	"github.com/kobzarvs/padedit/internal/logger"
	"github.com/kobzarvs/padedit/internal/screen"
)

var (
	ErrInvalidCursorValue   = errors.New("invalid cursor value")
	ErrInvalidCallbackTable = errors.New("invalid callback table")
)

// Cursor is the on-screen position. X is the column, Y the row.
type Cursor struct {
	X int
	Y int
}

// Set assigns both coordinates, rejecting negatives.
func (c *Cursor) Set(x, y int) error {
	if x < 0 || y < 0 {
		return fmt.Errorf("cursor (%d, %d): %w", x, y, ErrInvalidCursorValue)
	}
	c.X, c.Y = x, y
	return nil
}

// Mouse is the last pointer event received.
type Mouse struct {
	ID          int
	X           int
	Y           int
	Z           int
	ButtonState int
}

// Handler reacts to one key code. Returning false stops the main loop.
type Handler func(s *State) bool

// State is everything a handler may read or change.
type State struct {
	Buffer *buffer.Buffer
	Cursor Cursor
	Mouse  Mouse
	Screen screen.Screen
	// Code is the key code being dispatched.
	Code int
	// Pad is the buffer line drawn on screen row 0.
	Pad   int
	Debug bool
}

// debugRows is the height of the debug pane.
const debugRows = 8

func (s *State) viewHeight() int {
	_, h := s.Screen.Size()
	if s.Debug {
		h -= debugRows
	}
	if h < 1 {
		h = 1
	}
	return h
}

func (s *State) row(line int) int {
	return line - s.Pad
}

// place makes line current and puts the cursor at (col, line), shifting the
// pad when line falls outside the text area.
func (s *State) place(col, line int) {
	if err := s.Buffer.SetCurrent(line); err != nil {
		logger.Error("place cursor", "line", line, "err", err)
		return
	}
	h := s.viewHeight()
	scrolled := false
	if line < s.Pad {
		s.Pad = line
		scrolled = true
	} else if line >= s.Pad+h {
		s.Pad = line - h + 1
		scrolled = true
	}
	if err := s.Cursor.Set(col, s.row(line)); err != nil {
		logger.Error("place cursor", "col", col, "line", line, "err", err)
		return
	}
	if scrolled {
		s.redrawFrom(s.Pad)
	}
	s.Screen.MoveCursor(s.Cursor.X, s.Cursor.Y)
}
