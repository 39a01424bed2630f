package emit

// Event is an opaque identifier used as a registry key grouping listeners.
type Event string

// Reserved events carry emitter-defined semantics beyond plain delivery.
const (
	// EventNewListener fires on every registration with (event, listener) as
	// arguments, before the new listener is appended to the registry.
	EventNewListener Event = "new_listener"

	// EventError is the error-surfacing event. Emitting it with no listener
	// registered makes Emit return the emitted error instead of dropping it.
	EventError Event = "error"
)

func (e Event) Is(other Event) bool {
	return e == other
}

func (e Event) IsNewListener() bool {
	return e.Is(EventNewListener)
}

func (e Event) IsError() bool {
	return e.Is(EventError)
}

func (e Event) IsReserved() bool {
	return e.IsNewListener() || e.IsError()
}

func (e Event) String() string {
	return string(e)
}
