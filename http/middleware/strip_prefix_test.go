package middleware_test

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/carloscedeno/cardstore/http/middleware"
	"github.com/stretchr/testify/require"
)

func TestStripFunctionPrefix(t *testing.T) {
	// Arrange + Act
	actual := middleware.StripFunctionPrefix("")

	// Assert
	require.Equal(t, fmt.Sprintf("%p", middleware.NoopAdapter), fmt.Sprintf("%p", actual))

	tcs := []struct {
		name     string
		path     string
		expected string
	}{
		{"Prefixed", "/smart-api/api/cards", "/api/cards"},
		{"PrefixOnly", "/smart-api", "/"},
		{"Unprefixed", "/api/cards", "/api/cards"},
		{"PrefixedRoot", "/smart-api/", "/"},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			// Arrange
			w := httptest.NewRecorder()
			r := httptest.NewRequest(http.MethodGet, "https://example.com"+tc.path, nil)

			// Act + Assert
			middleware.StripFunctionPrefix("smart-api")(http.HandlerFunc(func(wx http.ResponseWriter, rx *http.Request) {
				require.Equal(t, tc.expected, rx.URL.Path)
			})).ServeHTTP(w, r)
		})
	}
}
