package ratelimit

import (
	"net/http"

	"github.com/dmitrymomot/formgate/pkg/clientip"
)

// KeyFunc extracts a unique identifier from an HTTP request for rate limiting.
type KeyFunc func(*http.Request) string

// ByClientIP keys requests by the originating client IP address, resolved
// through proxy headers. Requests whose IP cannot be determined yield an
// empty key and bypass limiting rather than sharing one bucket.
func ByClientIP() KeyFunc {
	return func(r *http.Request) string {
		return clientip.GetIP(r)
	}
}
