package middleware

import (
	"net/http"

	"github.com/carloscedeno/cardstore"
	sentryhttp "github.com/getsentry/sentry-go/http"
)

// ReportPanic recovers and reports panics to Sentry before the
// response is written.
//
// In development and testing environments NoopAdapter returns so
// panics surface locally instead of being swallowed.
func ReportPanic(env cardstore.Environment) Adapter {
	if env.IsDevelopment() || env.IsTesting() {
		return NoopAdapter
	}

	sh := sentryhttp.New(sentryhttp.Options{
		Repanic:         false,
		WaitForDelivery: true,
	})

	return func(handler http.Handler) http.Handler {
		return sh.Handle(handler)
	}
}
