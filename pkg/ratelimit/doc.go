// Package ratelimit provides a fixed-window rate limiter with an in-memory
// store and net/http middleware.
//
// The submission endpoints use it to bound abuse per client IP:
//
//	store := ratelimit.NewMemoryStore()
//	limiter, _ := ratelimit.NewFixedWindow(store, 5, 15*time.Minute)
//	r.Use(ratelimit.Middleware(limiter, keyFunc))
//
// The middleware sets X-RateLimit-* headers on every response and rejects
// excess requests with 429 and a Retry-After header. On store errors it fails
// open so a limiter fault never takes the endpoints down.
package ratelimit
