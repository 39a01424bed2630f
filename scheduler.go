package emit

import (
	"context"
)

// NewGoroutineScheduler returns a Scheduler that runs every deferred on its
// own goroutine. Failures are logged and dropped: once a deferred has been
// scheduled there is no caller left to report to.
func NewGoroutineScheduler(logger Logger) Scheduler {
	if logger == nil {
		logger = noopLogger{}
	}

	return func(ctx context.Context, d Deferred) {
		go func() {
			if err := d.Run(ctx); err != nil {
				logger.Errorf("deferred computation failed: %s", err)
			}
		}()
	}
}
