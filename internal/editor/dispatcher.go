package editor

import "fmt"

// Dispatcher maps key codes to handlers. Codes without an entry go to the
// fallback handler.
type Dispatcher struct {
	handlers map[int]Handler
	fallback Handler
}

func NewDispatcher(table map[int]Handler, fallback Handler) (*Dispatcher, error) {
	if table == nil {
		return nil, fmt.Errorf("nil table: %w", ErrInvalidCallbackTable)
	}
	if fallback == nil {
		return nil, fmt.Errorf("nil fallback handler: %w", ErrInvalidCallbackTable)
	}
	d := &Dispatcher{handlers: make(map[int]Handler, len(table)), fallback: fallback}
	for code, h := range table {
		if err := d.Register(code, h); err != nil {
			return nil, err
		}
	}
	return d, nil
}

// Register binds code to h, replacing any earlier binding.
func (d *Dispatcher) Register(code int, h Handler) error {
	if h == nil {
		return fmt.Errorf("nil handler for code %d: %w", code, ErrInvalidCallbackTable)
	}
	d.handlers[code] = h
	return nil
}

func (d *Dispatcher) Lookup(code int) (Handler, bool) {
	h, ok := d.handlers[code]
	return h, ok
}

// Dispatch runs the handler for code and reports whether the loop continues.
func (d *Dispatcher) Dispatch(code int, s *State) bool {
	if h, ok := d.handlers[code]; ok {
		return h(s)
	}
	return d.fallback(s)
}
