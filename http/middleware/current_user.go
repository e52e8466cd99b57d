package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/carloscedeno/cardstore"
	"github.com/carloscedeno/cardstore/auth"
)

// CurrentUser pulls the bearer token out of the Authorization header,
// resolves it with the auth.Verifier, and stores the resulting
// *auth.Claims in the *http.Request.Context under
// cardstore.CurrentUserKey.
//
// A request with no token, or one the Verifier rejects, passes through
// with no user set; handlers that require a user enforce that
// themselves. If v is nil, then NoopAdapter returns and this
// middleware does nothing.
func CurrentUser(v auth.Verifier) Adapter {
	if v == nil {
		return NoopAdapter
	}

	return func(handler http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
			if !ok {
				handler.ServeHTTP(w, r)
				return
			}

			claims, err := v.VerifyBearer(strings.TrimSpace(token))
			if err != nil {
				handler.ServeHTTP(w, r)
				return
			}

			ctx := context.WithValue(r.Context(), cardstore.CurrentUserKey, claims)
			handler.ServeHTTP(w, r.Clone(ctx))
		})
	}
}
