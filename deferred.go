package emit

import (
	"context"
)

type (
	// Deferred represents work a listener has started but not completed. The
	// emitter never runs or waits on one; Emit hands the value to the
	// configured Scheduler and moves on to the next listener in the snapshot.
	Deferred interface {
		Run(ctx context.Context) error
	}

	// DeferredFunc adapts a plain function to the Deferred interface.
	DeferredFunc func(ctx context.Context) error

	// Scheduler receives deferred computations produced by listeners during
	// Emit, together with the scheduler context the emitter was built with.
	// Implementations own execution, completion and failure of the deferred;
	// the emitter keeps no handle to it after the hand-off.
	Scheduler func(ctx context.Context, d Deferred)
)

func (f DeferredFunc) Run(ctx context.Context) error {
	return f(ctx)
}
