package middleware

import (
	"net/http"
	"strings"
)

// StripFunctionPrefix removes the deployment platform's function-name
// prefix from the request path, so routes can be declared against the
// resource paths alone.
//
// A request for "/<name>/api/cards" reaches the router as "/api/cards";
// a request for "/<name>" alone becomes "/". If name is "", then
// NoopAdapter returns and this middleware does nothing.
func StripFunctionPrefix(name string) Adapter {
	if name == "" {
		return NoopAdapter
	}

	prefix := "/" + strings.Trim(name, "/")
	return func(handler http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if p, ok := strings.CutPrefix(r.URL.Path, prefix); ok {
				if p == "" {
					p = "/"
				}
				r.URL.Path = p
			}

			handler.ServeHTTP(w, r)
		})
	}
}
