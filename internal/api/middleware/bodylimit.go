package middleware

import (
	"net/http"

	"github.com/phrazzld/tasks-api/internal/api/shared"
)

// BodyLimit caps request bodies at maxBytes. Declared oversized bodies are
// rejected up front; undeclared ones fail on read with *http.MaxBytesError,
// which the error normalizer maps to 413.
func BodyLimit(maxBytes int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.ContentLength > maxBytes {
				shared.RespondWithError(w, r, http.StatusRequestEntityTooLarge, shared.MsgTooLarge)
				return
			}
			if r.Body != nil {
				r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
			}
			next.ServeHTTP(w, r)
		})
	}
}
