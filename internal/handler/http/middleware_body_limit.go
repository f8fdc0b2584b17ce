package http

import "net/http"

// maxUnlockBodyBytes comfortably fits {"credential": "<36 chars>"}.
const maxUnlockBodyBytes = 4 << 10

func withBodyLimit(limit int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			r.Body = http.MaxBytesReader(w, r.Body, limit)
			next.ServeHTTP(w, r)
		})
	}
}
