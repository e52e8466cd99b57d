package middleware_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/carloscedeno/cardstore"
	"github.com/carloscedeno/cardstore/http/middleware"
	"github.com/carloscedeno/cardstore/logger"
	"github.com/stretchr/testify/require"
)

type captureLogger struct {
	logger.Logger

	msgs []string
}

func (cl *captureLogger) Info(msg string, _ *logger.LogContext) { cl.msgs = append(cl.msgs, msg) }

func TestLogRequest(t *testing.T) {
	// Arrange + Act
	actual := middleware.LogRequest(nil)

	// Assert
	require.Equal(t, fmt.Sprintf("%p", middleware.NoopAdapter), fmt.Sprintf("%p", actual))

	t.Run("Default", func(t *testing.T) {
		// Arrange
		cl := new(captureLogger)
		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "https://example.com/api/cards?game=mtg", nil)
		r = r.Clone(context.WithValue(r.Context(), cardstore.IpAddrKey, "93.184.216.34"))

		// Act
		middleware.LogRequest(cl)(NoopHandler()).ServeHTTP(w, r)

		// Assert
		require.Equal(t, []string{"93.184.216.34 GET /api/cards?game=mtg"}, cl.msgs)
	})

	t.Run("ScrubsSecrets", func(t *testing.T) {
		// Arrange
		cl := new(captureLogger)
		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "https://example.com/api/cards?apikey=hunter2", nil)

		// Act
		middleware.LogRequest(cl)(NoopHandler()).ServeHTTP(w, r)

		// Assert
		require.Equal(t, []string{"GET /api/cards?apikey=xxxxxxx"}, cl.msgs)
	})
}
