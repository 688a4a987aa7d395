package editor

import (
	"fmt"

	"github.com/kobzarvs/padedit/internal/buffer"
	"github.com/kobzarvs/padedit/internal/config"
	"github.com/kobzarvs/padedit/internal/logger"
	"github.com/kobzarvs/padedit/internal/screen"
)

// Editor owns the editing state and the key table.
type Editor struct {
	state    *State
	dispatch *Dispatcher
}

// New builds an editor over scr with the default bindings plus the keymap
// overrides from cfg.
func New(cfg config.Config, scr screen.Screen) (*Editor, error) {
	d, err := NewDispatcher(DefaultBindings(), insertChar)
	if err != nil {
		return nil, err
	}
	for key, name := range cfg.Keymap {
		code, ok := screen.ParseKey(key)
		if !ok {
			return nil, fmt.Errorf("keymap: unknown key %q: %w", key, ErrInvalidCallbackTable)
		}
		h, ok := Action(name)
		if !ok {
			return nil, fmt.Errorf("keymap: unknown action %q for %q: %w", name, key, ErrInvalidCallbackTable)
		}
		if err := d.Register(code, h); err != nil {
			return nil, err
		}
		logger.Debug("keymap override", "key", key, "action", name)
	}
	return &Editor{
		state: &State{
			Buffer: buffer.New(),
			Screen: scr,
			Debug:  cfg.Editor.Debug,
		},
		dispatch: d,
	}, nil
}

func (e *Editor) State() *State {
	return e.state
}

// Register binds code to h at runtime.
func (e *Editor) Register(code int, h Handler) error {
	return e.dispatch.Register(code, h)
}

// Render draws the full screen.
func (e *Editor) Render() {
	e.state.render()
}

// Handle records ev in the editor state and dispatches it. It returns false
// once a handler asks the loop to stop.
func (e *Editor) Handle(ev screen.Event) bool {
	s := e.state
	s.Code = ev.Code
	if ev.Mouse != nil {
		s.Mouse = Mouse{
			ID:          ev.Mouse.ID,
			X:           ev.Mouse.X,
			Y:           ev.Mouse.Y,
			Z:           ev.Mouse.Z,
			ButtonState: ev.Mouse.ButtonState,
		}
	}
	_, bound := e.dispatch.Lookup(ev.Code)
	logger.Debug("dispatch", "code", ev.Code, "key", screen.KeyName(ev.Code), "bound", bound)
	cont := e.dispatch.Dispatch(ev.Code, s)
	if s.Debug {
		s.drawDebug()
		s.Screen.MoveCursor(s.Cursor.X, s.Cursor.Y)
	}
	return cont
}
