package app

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/kobzarvs/padedit/internal/config"
	"github.com/kobzarvs/padedit/internal/screen"
)

// scriptScreen replays a fixed list of events.
type scriptScreen struct {
	events   []screen.Event
	entered  int
	exited   int
	keypad   bool
	refresh  int
	panicOn  int
	enterErr error
	writes   []string
}

func (s *scriptScreen) Write(row, col int, text string) { s.writes = append(s.writes, text) }
func (s *scriptScreen) WriteStyled(row, col int, text string, _ screen.Style) {
	s.Write(row, col, text)
}
func (s *scriptScreen) MoveCursor(col, row int) {}
func (s *scriptScreen) Clear() {}
func (s *scriptScreen) Refresh() { s.refresh++ }
func (s *scriptScreen) Size() (int, int) { return 40, 20 }
func (s *scriptScreen) SetKeypadMode(on bool) { s.keypad = on }

func (s *scriptScreen) EnterRawMode() error {
	if s.enterErr != nil {
		return s.enterErr
	}
	s.entered++
	return nil
}

func (s *scriptScreen) ExitRawMode() error {
	s.exited++
	return nil
}

func (s *scriptScreen) ReadEvent() (screen.Event, error) {
	if s.panicOn > 0 && len(s.events) < s.panicOn {
		panic("boom")
	}
	if len(s.events) == 0 {
		return screen.Event{}, screen.ErrClosed
	}
	ev := s.events[0]
	s.events = s.events[1:]
	return ev, nil
}

func keys(codes ...int) []screen.Event {
	evs := make([]screen.Event, len(codes))
	for i, c := range codes {
		evs[i] = screen.Event{Code: c}
	}
	return evs
}

func TestRunStopsOnQuit(t *testing.T) {
	scr := &scriptScreen{events: keys('h', 'i', screen.CodeCtrlQ, 'x')}
	if err := New().run(config.Default(), scr); err != nil {
		t.Fatalf("run error: %v", err)
	}
	if scr.entered != 1 || scr.exited != 1 {
		t.Fatalf("entered=%d exited=%d, want 1/1", scr.entered, scr.exited)
	}
	if len(scr.events) != 1 {
		t.Fatalf("loop consumed events after quit: %d left", len(scr.events))
	}
	if !scr.keypad {
		t.Fatalf("keypad mode not enabled")
	}
	if scr.refresh == 0 {
		t.Fatalf("screen never refreshed")
	}
}

func TestRunEndsWhenEventsClose(t *testing.T) {
	scr := &scriptScreen{events: keys('a')}
	if err := New().run(config.Default(), scr); err != nil {
		t.Fatalf("run error: %v", err)
	}
	if scr.exited != 1 {
		t.Fatalf("exited=%d, want 1", scr.exited)
	}
}

func TestRunRestoresTerminalOnPanic(t *testing.T) {
	scr := &scriptScreen{events: keys('a', 'b'), panicOn: 2}
	func() {
		defer func() {
			if r := recover(); r == nil {
				t.Fatalf("panic was swallowed")
			}
		}()
		_ = New().run(config.Default(), scr)
	}()
	if scr.exited != 1 {
		t.Fatalf("exited=%d, want 1", scr.exited)
	}
}

func TestRunRestoresTerminalOnBadKeymap(t *testing.T) {
	cfg := config.Default()
	cfg.Keymap["ctrl+x"] = "no_such_action"
	scr := &scriptScreen{}
	if err := New().run(cfg, scr); err == nil {
		t.Fatalf("run error = nil, want keymap error")
	}
	if scr.exited != 1 {
		t.Fatalf("exited=%d, want 1", scr.exited)
	}
}

func TestRunEnterRawModeFailure(t *testing.T) {
	want := errors.New("no tty")
	scr := &scriptScreen{enterErr: want}
	if err := New().run(config.Default(), scr); !errors.Is(err, want) {
		t.Fatalf("err = %v, want %v", err, want)
	}
	if scr.exited != 0 {
		t.Fatalf("exited=%d, want 0", scr.exited)
	}
}

func TestRunRequiresTerminal(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("PADEDIT_CONFIG_HOME", dir)
	t.Setenv("PADEDIT_LOG_FILE", filepath.Join(dir, "padedit.log"))
	a := New()
	a.isTerminal = func() bool { return false }
	a.newScreen = func() (tcell.Screen, error) {
		t.Fatalf("screen created without a terminal")
		return nil, nil
	}
	if err := a.Run(); !errors.Is(err, ErrNotTerminal) {
		t.Fatalf("err = %v, want ErrNotTerminal", err)
	}
}

func TestRunWithSimulationScreen(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("PADEDIT_CONFIG_HOME", dir)
	t.Setenv("PADEDIT_LOG_FILE", filepath.Join(dir, "padedit.log"))
	sim := tcell.NewSimulationScreen("UTF-8")
	a := New()
	a.isTerminal = func() bool { return true }
	a.newScreen = func() (tcell.Screen, error) { return quitOnInit{sim}, nil }
	if err := a.Run(); err != nil {
		t.Fatalf("Run error: %v", err)
	}
}

// quitOnInit queues Ctrl+Q as soon as the screen is initialized.
type quitOnInit struct {
	tcell.SimulationScreen
}

func (q quitOnInit) Init() error {
	if err := q.SimulationScreen.Init(); err != nil {
		return err
	}
	return q.PostEvent(tcell.NewEventKey(tcell.KeyCtrlQ, 0, tcell.ModCtrl))
}

func TestParseColor(t *testing.T) {
	if got := parseColor("", tcell.ColorRed); got != tcell.ColorRed {
		t.Fatalf("empty = %v, want fallback", got)
	}
	if got := parseColor("not-a-color", tcell.ColorRed); got != tcell.ColorRed {
		t.Fatalf("invalid = %v, want fallback", got)
	}
	if got := parseColor("#102030", tcell.ColorRed); got != tcell.NewRGBColor(0x10, 0x20, 0x30) {
		t.Fatalf("hex = %v", got)
	}
}
