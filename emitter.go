package emit

import (
	"context"
	"reflect"
	"sync"
	"sync/atomic"

	"github.com/pkg/errors"
)

type (
	// Listener is a callable registered against an event, invoked with the
	// emission arguments verbatim. Returning a Deferred hands the pending
	// work to the emitter's Scheduler; any other return value is ignored.
	Listener func(args ...any) any

	// listenerEntry pairs a listener with its removal bookkeeping. ptr is the
	// func pointer RemoveListener matches on; id is unique per registration
	// so a once wrapper always unregisters exactly itself.
	listenerEntry struct {
		id  uint64
		ptr uintptr
		fn  Listener
	}
)

// EventEmitter maps events to ordered lists of listeners and delivers every
// emission synchronously, in registration order. It is the sole mutator of
// its registry: Listeners returns copies, and Emit iterates over a snapshot,
// so listeners may re-enter the emitter without affecting the in-flight pass.
//
// Reserved events: EventNewListener fires before every registration, and an
// EventError emission with no listener registered makes Emit return the
// emitted error instead of dropping it.
//
// The registry is guarded by a single lock so the emitter survives use from
// several goroutines, but no ordering is guaranteed between concurrent Emit
// calls.
type EventEmitter struct {
	lock      sync.RWMutex
	listeners map[Event][]listenerEntry
	lastID    atomic.Uint64

	scheduler Scheduler
	schedCtx  context.Context
	logger    Logger
}

var _ Emitter = (*EventEmitter)(nil)

// Option configures an EventEmitter during construction.
type Option func(*EventEmitter)

// WithScheduler injects the capability that receives Deferred values
// returned by listeners. Without one, deferred results are discarded.
func WithScheduler(scheduler Scheduler) Option {
	return func(e *EventEmitter) {
		e.scheduler = scheduler
	}
}

// WithSchedulerContext sets the context forwarded verbatim to the scheduler
// on every hand-off. Defaults to context.Background(). The emitter never
// inspects it.
func WithSchedulerContext(ctx context.Context) Option {
	return func(e *EventEmitter) {
		e.schedCtx = ctx
	}
}

// WithLogger sets the logger. Defaults to a no-op.
func WithLogger(logger Logger) Option {
	return func(e *EventEmitter) {
		e.logger = logger
	}
}

// NewEventEmitter creates a new EventEmitter and returns a pointer to it.
func NewEventEmitter(opts ...Option) *EventEmitter {
	e := &EventEmitter{
		listeners: make(map[Event][]listenerEntry),
		schedCtx:  context.Background(),
		logger:    noopLogger{},
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// register fires EventNewListener with (event, entry.fn) and then appends
// the entry. The write lock is not held during the emission so that
// new_listener listeners may re-enter the emitter; it also means the new
// listener is not yet visible to them.
func (e *EventEmitter) register(event Event, entry listenerEntry) {
	_, _ = e.Emit(EventNewListener, event, entry.fn)

	e.lock.Lock()
	e.listeners[event] = append(e.listeners[event], entry)
	e.lock.Unlock()
}

// On registers listener for the given event and returns it unchanged, so
// the call site can keep the value for later removal.
//
// Listeners already attached to EventNewListener are notified with
// (event, listener) before the append, which means a listener never
// observes its own registration. Registering the same func value twice
// appends two entries; nothing is deduplicated.
func (e *EventEmitter) On(event Event, listener Listener) Listener {
	e.register(event, listenerEntry{
		id:  e.lastID.Add(1),
		ptr: identityOf(listener),
		fn:  listener,
	})

	e.logger.WithField("event", event).Debugf("listener registered")
	return listener
}

// Register is the deferred form of On: it returns a function that performs
// the registration once the listener exists.
func (e *EventEmitter) Register(event Event) func(Listener) Listener {
	return func(listener Listener) Listener {
		return e.On(event, listener)
	}
}

// Once registers listener to run on the next emission of event only. The
// registry holds a self-removing wrapper instead of the original listener,
// so EventNewListener observers and Listeners report the wrapper identity.
// Once returns that wrapper; retain it if the listener may need removal
// before it fires, since RemoveListener cannot find it under the original
// func value.
func (e *EventEmitter) Once(event Event, listener Listener) Listener {
	id := e.lastID.Add(1)

	wrapper := Listener(func(args ...any) any {
		out := listener(args...)
		e.removeByID(event, id)
		return out
	})

	e.register(event, listenerEntry{
		id:  id,
		ptr: identityOf(wrapper),
		fn:  wrapper,
	})

	e.logger.WithField("event", event).Debugf("once listener registered")
	return wrapper
}

// RegisterOnce is the deferred form of Once.
func (e *EventEmitter) RegisterOnce(event Event) func(Listener) Listener {
	return func(listener Listener) Listener {
		return e.Once(event, listener)
	}
}

// Emit invokes every listener registered for event at the moment of the
// call, synchronously and in registration order, passing args through
// verbatim. Mutations performed by listeners only affect later emissions,
// never the in-flight snapshot. Emit reports whether at least one listener
// ran.
//
// A listener result implementing Deferred is handed to the scheduler and
// not awaited. A listener panic propagates to the caller and aborts the
// rest of the snapshot.
//
// Emitting EventError with nobody listening does not drop the event: the
// first argument comes back as the returned error (wrapped when it is not
// an error value), or ErrUncaughtErrorEvent when no argument was given.
func (e *EventEmitter) Emit(event Event, args ...any) (bool, error) {
	e.lock.RLock()
	entries := e.listeners[event]
	snapshot := make([]listenerEntry, len(entries))
	copy(snapshot, entries)
	e.lock.RUnlock()

	if len(snapshot) == 0 {
		if event.IsError() {
			err := uncaughtError(args)
			e.logger.WithField("event", event).Errorf("no listener for error event: %s", err)
			return false, err
		}
		return false, nil
	}

	for _, entry := range snapshot {
		if deferred, ok := entry.fn(args...).(Deferred); ok && deferred != nil {
			e.schedule(deferred)
		}
	}

	return true, nil
}

func (e *EventEmitter) schedule(d Deferred) {
	if e.scheduler == nil {
		e.logger.Debugf("no scheduler configured, deferred result dropped")
		return
	}
	e.scheduler(e.schedCtx, d)
}

// RemoveListener removes the first entry for event whose func identity
// matches listener. It returns an error wrapping ErrListenerNotFound when
// no entry matches.
//
// Identity is the func pointer, so a once registration is only removable
// through the wrapper value Once returned. Closures built from the same
// func literal share a pointer; prefer removing the exact value the
// registration call returned.
func (e *EventEmitter) RemoveListener(event Event, listener Listener) error {
	ptr := identityOf(listener)

	e.lock.Lock()
	defer e.lock.Unlock()

	entries := e.listeners[event]
	for i, entry := range entries {
		if entry.ptr == ptr {
			e.listeners[event] = append(entries[:i], entries[i+1:]...)
			e.logger.WithField("event", event).Debugf("listener removed")
			return nil
		}
	}

	return errors.Wrapf(ErrListenerNotFound, "event %q", event)
}

// removeByID drops the entry with the given registration id. Unlike
// RemoveListener it is exact: it never confuses two wrappers that share a
// code pointer. Missing entries are fine, the wrapper may have been removed
// externally between snapshot and invocation.
func (e *EventEmitter) removeByID(event Event, id uint64) {
	e.lock.Lock()
	defer e.lock.Unlock()

	entries := e.listeners[event]
	for i, entry := range entries {
		if entry.id == id {
			e.listeners[event] = append(entries[:i], entries[i+1:]...)
			return
		}
	}
}

// RemoveAllListeners clears the listener lists of the given events, keeping
// their keys mapped to empty lists. With no arguments it discards the whole
// registry, every event included.
func (e *EventEmitter) RemoveAllListeners(events ...Event) {
	e.lock.Lock()
	defer e.lock.Unlock()

	if len(events) == 0 {
		e.listeners = make(map[Event][]listenerEntry)
		return
	}

	for _, event := range events {
		e.listeners[event] = nil
	}
}

// Listeners returns a copy of the current listener list for event, in
// registration order. Unknown events yield an empty list. Once
// registrations appear as their wrapper, not the original listener.
func (e *EventEmitter) Listeners(event Event) []Listener {
	e.lock.RLock()
	defer e.lock.RUnlock()

	out := make([]Listener, 0, len(e.listeners[event]))
	for _, entry := range e.listeners[event] {
		out = append(out, entry.fn)
	}
	return out
}

// ListenerCount returns how many listeners are attached to event.
func (e *EventEmitter) ListenerCount(event Event) int {
	e.lock.RLock()
	defer e.lock.RUnlock()

	return len(e.listeners[event])
}

// EventNames returns the events currently present in the registry, in no
// particular order. Events cleared with RemoveAllListeners(event) keep
// their key and still show up here.
func (e *EventEmitter) EventNames() []Event {
	e.lock.RLock()
	defer e.lock.RUnlock()

	out := make([]Event, 0, len(e.listeners))
	for event := range e.listeners {
		out = append(out, event)
	}
	return out
}

// Close removes all listeners. The emitter stays usable afterwards; Close
// exists so the emitter fits components with a close-and-release contract.
func (e *EventEmitter) Close() {
	e.RemoveAllListeners()
}

// identityOf returns the func pointer used as listener identity. Closures
// created from the same func literal share a code pointer.
func identityOf(listener Listener) uintptr {
	return reflect.ValueOf(listener).Pointer()
}
