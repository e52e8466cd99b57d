package middleware

import (
	"context"
	"net/http"

	"github.com/carloscedeno/cardstore"
	"github.com/google/uuid"
)

// RequestID adds a uuid to the request context under cardstore.RequestIDKey.
func RequestID() Adapter {
	return func(h http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := context.WithValue(r.Context(), cardstore.RequestIDKey, uuid.NewString())
			h.ServeHTTP(w, r.Clone(ctx))
		})
	}
}
