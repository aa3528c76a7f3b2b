package middleware

import (
	"context"
	"net/http"

	"github.com/google/uuid"
)

type contextKey struct{ name string }

var requestIDKey = contextKey{"request_id"}

const requestIDHeader = "X-Request-Id"

// RequestID assigns each request a unique id, honoring the one supplied by
// the caller when present. The id is stored in the context and echoed back
// in the response headers.
func RequestID() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			id := req.Header.Get(requestIDHeader)
			if id == "" {
				id = uuid.NewString()
			}

			ctx := context.WithValue(req.Context(), requestIDKey, id)
			w.Header().Set(requestIDHeader, id)

			next.ServeHTTP(w, req.WithContext(ctx))
		})
	}
}

// GetRequestID returns the request id stored by RequestID, or empty.
func GetRequestID(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}
