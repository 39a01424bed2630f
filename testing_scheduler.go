package emit

import (
	"context"
	"sync"

	"github.com/stretchr/testify/mock"
)

type mockScheduler struct {
	mock.Mock
}

func (m *mockScheduler) Schedule(ctx context.Context, d Deferred) {
	m.Called(ctx, d)
}

// captureScheduler records every hand-off it receives.
type captureScheduler struct {
	mu        sync.Mutex
	deferreds []Deferred
	contexts  []context.Context
}

func (c *captureScheduler) Schedule(ctx context.Context, d Deferred) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.deferreds = append(c.deferreds, d)
	c.contexts = append(c.contexts, ctx)
}

func (c *captureScheduler) Scheduled() []Deferred {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]Deferred, len(c.deferreds))
	copy(out, c.deferreds)
	return out
}

func (c *captureScheduler) Contexts() []context.Context {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]context.Context, len(c.contexts))
	copy(out, c.contexts)
	return out
}
