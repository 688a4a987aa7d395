package screen

import (
	"errors"
	"strings"
	"unicode"
)

// ErrClosed is returned by ReadEvent once the event source is gone.
var ErrClosed = errors.New("screen closed")

// Screen is the character-cell surface the editor draws on.
// Write takes (row, col); MoveCursor takes (col, row) like Cursor{X, Y}.
type Screen interface {
	Write(row, col int, text string)
	WriteStyled(row, col int, text string, style Style)
	MoveCursor(col, row int)
	Clear()
	Refresh()
	Size() (width, height int)
	ReadEvent() (Event, error)
	EnterRawMode() error
	ExitRawMode() error
	SetKeypadMode(enabled bool)
}

type Style int

const (
	StyleText Style = iota
	StyleDebug
)

// MouseEvent is a single pointer report.
type MouseEvent struct {
	ID          int
	X           int
	Y           int
	Z           int
	ButtonState int
}

// Event is one decoded input. Mouse is set only when Code is CodeMouse.
type Event struct {
	Code  int
	Mouse *MouseEvent
}

// ButtonPrimary is the bit set in MouseEvent.ButtonState for the left button.
const ButtonPrimary = 1

// Codes below unicode.MaxRune are the rune or ASCII control value itself.
const (
	CodeUnknown   = -1
	CodeCtrlC     = 3
	CodeTab       = 9
	CodeEnter     = 10
	CodeCtrlQ     = 17
	CodeEscape    = 27
	CodeSpace     = 32
	CodeBackspace = 127
)

const codeBase int = unicode.MaxRune + 1

const (
	CodeUp = codeBase + iota
	CodeDown
	CodeLeft
	CodeRight
	CodeCtrlLeft
	CodeCtrlRight
	CodeHome
	CodeEnd
	CodeDelete
	CodePageUp
	CodePageDown
	CodeResize
	CodeMouse
	CodeF1
	CodeF2
	CodeF3
	CodeF4
	CodeF5
	CodeF6
	CodeF7
	CodeF8
	CodeF9
	CodeF10
	CodeF11
	CodeF12
)

var keyNames = map[string]int{
	"enter":      CodeEnter,
	"backspace":  CodeBackspace,
	"space":      CodeSpace,
	"tab":        CodeTab,
	"esc":        CodeEscape,
	"up":         CodeUp,
	"down":       CodeDown,
	"left":       CodeLeft,
	"right":      CodeRight,
	"ctrl+left":  CodeCtrlLeft,
	"ctrl+right": CodeCtrlRight,
	"home":       CodeHome,
	"end":        CodeEnd,
	"del":        CodeDelete,
	"pgup":       CodePageUp,
	"pgdn":       CodePageDown,
	"resize":     CodeResize,
	"mouse":      CodeMouse,
	"f1":         CodeF1,
	"f2":         CodeF2,
	"f3":         CodeF3,
	"f4":         CodeF4,
	"f5":         CodeF5,
	"f6":         CodeF6,
	"f7":         CodeF7,
	"f8":         CodeF8,
	"f9":         CodeF9,
	"f10":        CodeF10,
	"f11":        CodeF11,
	"f12":        CodeF12,
}

// ParseKey resolves a key name such as "ctrl+q", "left" or "x" to its code.
func ParseKey(name string) (int, bool) {
	if rs := []rune(name); len(rs) == 1 {
		if unicode.IsPrint(rs[0]) {
			return int(rs[0]), true
		}
		return 0, false
	}
	lower := strings.ToLower(name)
	if code, ok := keyNames[lower]; ok {
		return code, true
	}
	if letter, ok := strings.CutPrefix(lower, "ctrl+"); ok && len(letter) == 1 {
		c := letter[0]
		if c >= 'a' && c <= 'z' {
			return int(c-'a') + 1, true
		}
	}
	return 0, false
}

// KeyName is the inverse of ParseKey, used for logs and the debug pane.
func KeyName(code int) string {
	for name, c := range keyNames {
		if c == code {
			return name
		}
	}
	switch {
	case code >= 1 && code <= 26:
		return "ctrl+" + string(rune('a'+code-1))
	case code >= 0 && code <= unicode.MaxRune && unicode.IsPrint(rune(code)):
		return string(rune(code))
	}
	return "unknown"
}
