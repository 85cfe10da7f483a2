package middleware

import (
	"log"
	"net/http"
	"time"

	"github.com/google/uuid"
)

// RequestLogger tags each request with a generated id, exposes it on the
// X-Request-ID response header and logs method, path, remote address and
// how long the request took to serve.
func RequestLogger() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			reqID := r.Header.Get("X-Request-ID")
			if reqID == "" {
				reqID = uuid.NewString()
			}
			w.Header().Set("X-Request-ID", reqID)

			next.ServeHTTP(w, r)

			log.Printf("%s %s %s %s [%s]", reqID, r.Method, r.URL.Path, r.RemoteAddr, time.Since(start))
		})
	}
}
