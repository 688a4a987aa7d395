package screen

import (
	"github.com/gdamore/tcell/v2"
)

// Options configure the tcell adapter.
type Options struct {
	Mouse      bool
	Keypad     bool
	Text       tcell.Style
	DebugStyle tcell.Style
}

// Tcell adapts a tcell.Screen to Screen.
type Tcell struct {
	scr     tcell.Screen
	opts    Options
	keypad  bool
	active  bool
	mouseID int
}

func NewTcell(scr tcell.Screen, opts Options) *Tcell {
	return &Tcell{scr: scr, opts: opts, keypad: opts.Keypad}
}

// EnterRawMode initializes the terminal. Calling it twice is a no-op.
func (t *Tcell) EnterRawMode() error {
	if t.active {
		return nil
	}
	if err := t.scr.Init(); err != nil {
		return err
	}
	t.active = true
	t.scr.SetStyle(t.opts.Text)
	if t.opts.Mouse {
		t.scr.EnableMouse(tcell.MouseButtonEvents)
	}
	t.scr.Clear()
	return nil
}

// ExitRawMode restores the terminal. Only the first call after
// EnterRawMode does anything.
func (t *Tcell) ExitRawMode() error {
	if !t.active {
		return nil
	}
	t.active = false
	if t.opts.Mouse {
		t.scr.DisableMouse()
	}
	t.scr.Fini()
	return nil
}

func (t *Tcell) Active() bool {
	return t.active
}

func (t *Tcell) SetKeypadMode(enabled bool) {
	t.keypad = enabled
}

func (t *Tcell) Write(row, col int, text string) {
	t.write(row, col, text, t.opts.Text)
}

func (t *Tcell) WriteStyled(row, col int, text string, style Style) {
	st := t.opts.Text
	if style == StyleDebug {
		st = t.opts.DebugStyle
	}
	t.write(row, col, text, st)
}

func (t *Tcell) write(row, col int, text string, style tcell.Style) {
	w, h := t.scr.Size()
	if row < 0 || row >= h {
		return
	}
	x := col
	for _, r := range text {
		if x >= w {
			return
		}
		if x >= 0 {
			t.scr.SetContent(x, row, r, nil, style)
		}
		x++
	}
}

func (t *Tcell) MoveCursor(col, row int) {
	t.scr.ShowCursor(col, row)
}

func (t *Tcell) Clear() {
	t.scr.Clear()
}

func (t *Tcell) Refresh() {
	t.scr.Show()
}

func (t *Tcell) Size() (int, int) {
	return t.scr.Size()
}

// ReadEvent blocks until a key, mouse or resize event arrives.
func (t *Tcell) ReadEvent() (Event, error) {
	for {
		ev := t.scr.PollEvent()
		if ev == nil {
			return Event{Code: CodeUnknown}, ErrClosed
		}
		switch ev := ev.(type) {
		case *tcell.EventKey:
			return Event{Code: t.translateKey(ev)}, nil
		case *tcell.EventMouse:
			x, y := ev.Position()
			t.mouseID++
			return Event{
				Code: CodeMouse,
				Mouse: &MouseEvent{
					ID:          t.mouseID,
					X:           x,
					Y:           y,
					ButtonState: int(ev.Buttons()),
				},
			}, nil
		case *tcell.EventResize:
			t.scr.Sync()
			return Event{Code: CodeResize}, nil
		}
	}
}

var namedKeys = map[tcell.Key]int{
	tcell.KeyUp:     CodeUp,
	tcell.KeyDown:   CodeDown,
	tcell.KeyLeft:   CodeLeft,
	tcell.KeyRight:  CodeRight,
	tcell.KeyHome:   CodeHome,
	tcell.KeyEnd:    CodeEnd,
	tcell.KeyDelete: CodeDelete,
	tcell.KeyPgUp:   CodePageUp,
	tcell.KeyPgDn:   CodePageDown,
	tcell.KeyF1:     CodeF1,
	tcell.KeyF2:     CodeF2,
	tcell.KeyF3:     CodeF3,
	tcell.KeyF4:     CodeF4,
	tcell.KeyF5:     CodeF5,
	tcell.KeyF6:     CodeF6,
	tcell.KeyF7:     CodeF7,
	tcell.KeyF8:     CodeF8,
	tcell.KeyF9:     CodeF9,
	tcell.KeyF10:    CodeF10,
	tcell.KeyF11:    CodeF11,
	tcell.KeyF12:    CodeF12,
}

func (t *Tcell) translateKey(ev *tcell.EventKey) int {
	switch ev.Key() {
	case tcell.KeyRune:
		r := ev.Rune()
		if ev.Modifiers()&tcell.ModCtrl != 0 {
			if r >= 'a' && r <= 'z' {
				return int(r-'a') + 1
			}
			if r >= 'A' && r <= 'Z' {
				return int(r-'A') + 1
			}
		}
		return int(r)
	case tcell.KeyEnter, tcell.KeyLF:
		return CodeEnter
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return CodeBackspace
	case tcell.KeyTab:
		return CodeTab
	case tcell.KeyEscape:
		return CodeEscape
	}
	if code, ok := namedKeys[ev.Key()]; ok {
		// Without keypad translation the terminal hands us the raw escape.
		if !t.keypad {
			return CodeEscape
		}
		if ev.Modifiers()&tcell.ModCtrl != 0 {
			switch code {
			case CodeLeft:
				return CodeCtrlLeft
			case CodeRight:
				return CodeCtrlRight
			}
		}
		return code
	}
	if ev.Key() >= tcell.KeyCtrlA && ev.Key() <= tcell.KeyCtrlZ {
		return int(ev.Key())
	}
	return CodeUnknown
}
