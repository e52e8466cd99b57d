package middleware

import (
	"net/http"
	"strings"

	"github.com/carloscedeno/cardstore"
	"github.com/carloscedeno/cardstore/logger"
)

// LogRequest logs the request's method, requested URL, and originating IP address
// using the enclosed implementation of logger.Logger.
//
// LogRequest scrubs the values for the following query params:
// - apikey
// - token
//
// If ls is nil, then NoopAdapter returns and this middleware does nothing.
func LogRequest(ls logger.Logger) Adapter {
	if ls == nil {
		return NoopAdapter
	}

	return func(h http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			uri := r.URL.Path
			q := r.URL.Query()
			for _, secret := range []string{"apikey", "token"} {
				if q.Get(secret) != "" {
					q.Set(secret, "xxxxxxx")
				}
			}

			if query := q.Encode(); query != "" {
				uri += "?" + query
			}

			strs := []string{r.Method, uri}
			if val, ok := r.Context().Value(cardstore.IpAddrKey).(string); ok {
				strs = append([]string{val}, strs...)
			}

			ls.Info(strings.Join(strs, " "), nil)
			h.ServeHTTP(w, r)
		})
	}
}
