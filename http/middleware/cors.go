package middleware

import (
	"net/http"
)

// corsHeaders are set on every response so browser clients on any
// origin can call the API with the auth headers the storefront sends.
var corsHeaders = map[string]string{
	"Access-Control-Allow-Origin":  "*",
	"Access-Control-Allow-Headers": "authorization, x-client-info, apikey, content-type",
}

// CORS sets "Access-Control-Allow" style headers on a response.
//
// Preflight OPTIONS requests short-circuit here with a 200 and a plain
// "ok" body; no other handler or middleware after CORS sees them.
func CORS() Adapter {
	return func(handler http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			for k, v := range corsHeaders {
				w.Header().Set(k, v)
			}

			if r.Method == http.MethodOptions {
				w.Header().Set("Content-Type", "text/plain")
				w.Write([]byte("ok"))
				return
			}

			handler.ServeHTTP(w, r)
		})
	}
}
