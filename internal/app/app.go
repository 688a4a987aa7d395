package app

import (
	"errors"
	"fmt"
	"os"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/multierr"
	"golang.org/x/term"

	"github.com/kobzarvs/padedit/internal/config"
	"github.com/kobzarvs/padedit/internal/editor"
	"github.com/kobzarvs/padedit/internal/logger"
	"github.com/kobzarvs/padedit/internal/screen"
)

var ErrNotTerminal = errors.New("stdin is not a terminal")

// App is the top-level runtime for padedit.
type App struct {
	isTerminal func() bool
	newScreen  func() (tcell.Screen, error)
}

func New() *App {
	return &App{
		isTerminal: func() bool { return term.IsTerminal(int(os.Stdin.Fd())) },
		newScreen:  tcell.NewScreen,
	}
}

func (a *App) Run() (err error) {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if err := logger.Init(cfg.Editor.Debug); err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer func() { err = multierr.Append(err, logger.Close()) }()

	if !a.isTerminal() {
		return ErrNotTerminal
	}
	s, err := a.newScreen()
	if err != nil {
		return err
	}
	scr := screen.NewTcell(s, screenOptions(cfg))
	return a.run(cfg, scr)
}

// run owns the terminal session: raw mode is left on every exit path,
// including a panicking handler.
func (a *App) run(cfg config.Config, scr screen.Screen) (err error) {
	if err := scr.EnterRawMode(); err != nil {
		return fmt.Errorf("enter raw mode: %w", err)
	}
	logger.Info("session started")
	defer func() {
		r := recover()
		err = multierr.Append(err, scr.ExitRawMode())
		logger.Info("session ended", "err", err)
		if r != nil {
			logger.Error("handler panic", "panic", r)
			panic(r)
		}
	}()
	scr.SetKeypadMode(cfg.Editor.KeypadEnabled())

	ed, err := editor.New(cfg, scr)
	if err != nil {
		return err
	}
	ed.Render()
	for {
		scr.Refresh()
		ev, err := scr.ReadEvent()
		if err != nil {
			if errors.Is(err, screen.ErrClosed) {
				return nil
			}
			return err
		}
		if !ed.Handle(ev) {
			return nil
		}
	}
}

func screenOptions(cfg config.Config) screen.Options {
	fg := parseColor(cfg.Theme.Foreground, tcell.ColorWhite)
	bg := parseColor(cfg.Theme.Background, tcell.ColorBlack)
	debugFg := parseColor(cfg.Theme.DebugForeground, bg)
	debugBg := parseColor(cfg.Theme.DebugBackground, fg)
	return screen.Options{
		Mouse:      cfg.Editor.MouseEnabled(),
		Keypad:     cfg.Editor.KeypadEnabled(),
		Text:       tcell.StyleDefault.Foreground(fg).Background(bg),
		DebugStyle: tcell.StyleDefault.Foreground(debugFg).Background(debugBg),
	}
}

func parseColor(name string, fallback tcell.Color) tcell.Color {
	if name == "" {
		return fallback
	}
	c := tcell.GetColor(name)
	if c == tcell.ColorDefault {
		return fallback
	}
	return c
}
