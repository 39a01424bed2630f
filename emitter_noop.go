package emit

type (
	// Emitter is the full surface of the event emitter.
	Emitter interface {
		// On registers a listener for the given event and returns it.
		On(event Event, listener Listener) Listener

		// Once registers a listener that runs on the next emission only and
		// returns the self-removing wrapper held in the registry.
		Once(event Event, listener Listener) Listener

		// Register returns a function performing On with a listener supplied later.
		Register(event Event) func(Listener) Listener

		// RegisterOnce returns a function performing Once with a listener supplied later.
		RegisterOnce(event Event) func(Listener) Listener

		// Emit invokes the event's listeners synchronously, in registration order.
		Emit(event Event, args ...any) (bool, error)

		// RemoveListener removes the first entry matching the listener's identity.
		RemoveListener(event Event, listener Listener) error

		// RemoveAllListeners clears the given events, or everything when called bare.
		RemoveAllListeners(events ...Event)

		// Listeners returns a copy of the event's current listener list.
		Listeners(event Event) []Listener

		// ListenerCount returns the number of listeners attached to the event.
		ListenerCount(event Event) int

		// EventNames returns the events present in the registry.
		EventNames() []Event

		// Close removes all listeners.
		Close()
	}
)

// NoopEmitter discards registrations and emissions. It stands in wherever an
// Emitter is required but event delivery is not wanted.
type NoopEmitter struct{}

var _ Emitter = NoopEmitter{}

func (NoopEmitter) On(_ Event, listener Listener) Listener { return listener }

func (NoopEmitter) Once(_ Event, listener Listener) Listener { return listener }

func (NoopEmitter) Register(Event) func(Listener) Listener {
	return func(listener Listener) Listener { return listener }
}

func (NoopEmitter) RegisterOnce(Event) func(Listener) Listener {
	return func(listener Listener) Listener { return listener }
}

func (NoopEmitter) Emit(Event, ...any) (bool, error) { return false, nil }

func (NoopEmitter) RemoveListener(Event, Listener) error { return nil }

func (NoopEmitter) RemoveAllListeners(...Event) {}

func (NoopEmitter) Listeners(Event) []Listener { return nil }

func (NoopEmitter) ListenerCount(Event) int { return 0 }

func (NoopEmitter) EventNames() []Event { return nil }

func (NoopEmitter) Close() {}
