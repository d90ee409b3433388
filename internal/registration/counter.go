package registration

import (
	"context"
	"log/slog"
	"sync"
)

// CounterKey is the local key holding the fallback team counter.
const CounterKey = "teamCounter"

// CollectionCounter reports how many registrations are stored.
type CollectionCounter interface {
	Count(ctx context.Context) (int, error)
}

// LocalCounter is the device-local key/value store used when the
// collection cannot be counted.
type LocalCounter interface {
	Incr(ctx context.Context, key string) (int, error)
	Delete(ctx context.Context, key string) error
}

// Counter hands out the next team number. It never fails: the collection
// count is preferred, then the local counter, then an in-process counter.
type Counter struct {
	logger *slog.Logger
	remote CollectionCounter
	local  LocalCounter

	mu       sync.Mutex
	inMemory int
}

func NewCounter(logger *slog.Logger, remote CollectionCounter, local LocalCounter) *Counter {
	return &Counter{logger: logger, remote: remote, local: local}
}

// NextTeamNumber returns count+1 of the stored registrations. The number
// is a hint: two callers reading the same count get the same value.
func (c *Counter) NextTeamNumber(ctx context.Context) int {
	n, err := c.remote.Count(ctx)
	if err == nil {
		return n + 1
	}
	c.logger.Warn("counting registrations failed, using local counter", "error", err)

	if c.local != nil {
		next, err := c.local.Incr(ctx, CounterKey)
		if err == nil {
			return next
		}
		c.logger.Error("local counter failed, using in-memory counter", "error", err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.inMemory++
	return c.inMemory
}

// ResetFallback clears the local fallback counter.
func (c *Counter) ResetFallback(ctx context.Context) error {
	c.mu.Lock()
	c.inMemory = 0
	c.mu.Unlock()

	if c.local == nil {
		return nil
	}
	return c.local.Delete(ctx, CounterKey)
}
