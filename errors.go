package emit

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	// ErrListenerNotFound is returned by RemoveListener when the listener was
	// never registered for the event.
	ErrListenerNotFound = errors.New("listener not found")

	// ErrUncaughtErrorEvent is returned by Emit when EventError fires with no
	// listener registered and no payload.
	ErrUncaughtErrorEvent = errors.New("uncaught, unspecified 'error' event")
)

// UncaughtErrorEventError carries a non-error payload that was emitted on
// EventError while nobody was listening.
type UncaughtErrorEventError struct {
	payload any
}

func (e UncaughtErrorEventError) Error() string {
	return fmt.Sprintf("uncaught 'error' event: %v", e.payload)
}

func (e UncaughtErrorEventError) Payload() any { return e.payload }

func (e UncaughtErrorEventError) Unwrap() error { return ErrUncaughtErrorEvent }

// uncaughtError maps the arguments of an unhandled EventError emission to
// the error Emit returns. A leading error payload comes back as is.
func uncaughtError(args []any) error {
	if len(args) == 0 {
		return ErrUncaughtErrorEvent
	}
	if err, ok := args[0].(error); ok && err != nil {
		return err
	}
	return UncaughtErrorEventError{payload: args[0]}
}
