package hxclient

// Event is the interaction that triggered a dispatch. The engine only ever
// cancels its default action.
type Event interface {
	PreventDefault()
}

// InteractionEvent is a minimal Event for callers without a richer type.
type InteractionEvent struct {
	Type      string
	prevented bool
}

// NewEvent creates an event of the given type, such as "click" or "submit".
func NewEvent(typ string) *InteractionEvent {
	return &InteractionEvent{Type: typ}
}

// PreventDefault marks the default action as cancelled.
func (e *InteractionEvent) PreventDefault() {
	if e == nil {
		return
	}
	e.prevented = true
}

// DefaultPrevented reports whether PreventDefault was called.
func (e *InteractionEvent) DefaultPrevented() bool {
	return e != nil && e.prevented
}
