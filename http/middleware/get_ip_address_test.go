package middleware_test

import (
	"net/http"
	"testing"

	"github.com/carloscedeno/cardstore/http/middleware"
	"github.com/stretchr/testify/require"
)

func TestGetIPAddress(t *testing.T) {
	tcs := []struct {
		name     string
		header   string
		value    string
		expected string
	}{
		{"None", "", "", "0.0.0.0"},
		{"Public", "X-Forwarded-For", "93.184.216.34", "93.184.216.34"},
		{"PrivateSkipped", "X-Forwarded-For", "192.168.0.10", "0.0.0.0"},
		{"ProxyChain", "X-Forwarded-For", "93.184.216.34, 10.0.0.1", "93.184.216.34"},
		{"RealIP", "X-Real-Ip", "203.0.113.7", "203.0.113.7"},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			// Arrange
			hm := make(http.Header)
			if tc.header != "" {
				hm.Set(tc.header, tc.value)
			}

			// Act + Assert
			require.Equal(t, tc.expected, middleware.GetIPAddress(hm))
		})
	}
}
