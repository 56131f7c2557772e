package ratelimit

import (
	"context"
	"time"
)

// FixedWindow implements a fixed-window counter rate limiter. Each key gets a
// counter that resets when its window expires. Simple and cheap; the
// worst-case burst at a window boundary is 2x the limit, which is acceptable
// for abuse bounding on form endpoints.
type FixedWindow struct {
	store  Store
	limit  int
	window time.Duration
}

// NewFixedWindow creates a new fixed-window rate limiter allowing limit
// requests per window.
func NewFixedWindow(store Store, limit int, window time.Duration) (*FixedWindow, error) {
	if store == nil {
		return nil, ErrStoreRequired
	}
	if limit <= 0 {
		return nil, ErrInvalidLimit
	}
	if window <= 0 {
		return nil, ErrInvalidWindow
	}

	return &FixedWindow{
		store:  store,
		limit:  limit,
		window: window,
	}, nil
}

// Allow checks if a single request is allowed for the given key and consumes
// one slot. A denied request still increments the counter, extending nothing:
// the window TTL is fixed from the first request in the window.
func (fw *FixedWindow) Allow(ctx context.Context, key string) (*Result, error) {
	if key == "" {
		return nil, ErrKeyRequired
	}

	current, ttl, err := fw.store.IncrementAndGet(ctx, key, 1, fw.window)
	if err != nil {
		return nil, err
	}

	return fw.result(current <= int64(fw.limit), current, ttl), nil
}

// Status returns the current rate limit status without consuming a slot.
func (fw *FixedWindow) Status(ctx context.Context, key string) (*Result, error) {
	if key == "" {
		return nil, ErrKeyRequired
	}

	current, ttl, err := fw.store.Get(ctx, key)
	if err != nil {
		return nil, err
	}
	if ttl <= 0 {
		ttl = fw.window
	}

	return fw.result(current < int64(fw.limit), current, ttl), nil
}

// Reset resets the rate limit for the given key.
func (fw *FixedWindow) Reset(ctx context.Context, key string) error {
	if key == "" {
		return ErrKeyRequired
	}
	return fw.store.Delete(ctx, key)
}

func (fw *FixedWindow) result(allowed bool, current int64, ttl time.Duration) *Result {
	return &Result{
		Allowed:   allowed,
		Limit:     fw.limit,
		Remaining: max(0, fw.limit-int(current)),
		ResetAt:   time.Now().Add(ttl),
	}
}
