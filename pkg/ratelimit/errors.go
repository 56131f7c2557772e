package ratelimit

import "errors"

var (
	// ErrStoreRequired is returned when a limiter is created without a store.
	ErrStoreRequired = errors.New("rate limit store is required")
	// ErrInvalidLimit is returned for a non-positive request limit.
	ErrInvalidLimit = errors.New("rate limit must be positive")
	// ErrInvalidWindow is returned for a non-positive window duration.
	ErrInvalidWindow = errors.New("rate limit window must be positive")
	// ErrKeyRequired is returned when a limiter method is called with an empty key.
	ErrKeyRequired = errors.New("rate limit key is required")
)
