package middleware

import (
	"net/http"
)

// DefaultMaxBodySize is 1MB, plenty for a single event record.
const DefaultMaxBodySize int64 = 1 << 20

// RequestSize limits the size of incoming request bodies via
// http.MaxBytesReader; oversized bodies surface as decode errors in the
// handler and map to 400.
func RequestSize(maxBytes int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
			next.ServeHTTP(w, r)
		})
	}
}
