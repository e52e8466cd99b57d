package middleware_test

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/carloscedeno/cardstore"
	"github.com/carloscedeno/cardstore/auth"
	"github.com/carloscedeno/cardstore/http/middleware"
	"github.com/stretchr/testify/require"
)

type stubVerifier struct {
	claims *auth.Claims
	err    error
}

func (s stubVerifier) VerifyBearer(token string) (*auth.Claims, error) { return s.claims, s.err }

func TestCurrentUser(t *testing.T) {
	// Arrange + Act
	actual := middleware.CurrentUser(nil)

	// Assert
	require.Equal(t, fmt.Sprintf("%p", middleware.NoopAdapter), fmt.Sprintf("%p", actual))

	t.Run("Valid", func(t *testing.T) {
		// Arrange
		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "https://example.com/api/cart", nil)
		r.Header.Set("Authorization", "Bearer some-token")
		v := stubVerifier{claims: &auth.Claims{UserID: 42}}

		// Act + Assert
		middleware.CurrentUser(v)(http.HandlerFunc(func(wx http.ResponseWriter, rx *http.Request) {
			claims, ok := rx.Context().Value(cardstore.CurrentUserKey).(*auth.Claims)
			require.True(t, ok)
			require.Equal(t, uint(42), claims.UserID)
		})).ServeHTTP(w, r)
	})

	t.Run("NoHeader", func(t *testing.T) {
		// Arrange
		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "https://example.com/api/cart", nil)
		v := stubVerifier{claims: &auth.Claims{UserID: 42}}

		// Act + Assert
		middleware.CurrentUser(v)(http.HandlerFunc(func(wx http.ResponseWriter, rx *http.Request) {
			require.Nil(t, rx.Context().Value(cardstore.CurrentUserKey))
		})).ServeHTTP(w, r)
	})

	t.Run("Rejected", func(t *testing.T) {
		// Arrange
		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "https://example.com/api/cart", nil)
		r.Header.Set("Authorization", "Bearer bad-token")
		v := stubVerifier{err: auth.ErrUnauthorized}

		// Act + Assert
		middleware.CurrentUser(v)(http.HandlerFunc(func(wx http.ResponseWriter, rx *http.Request) {
			require.Nil(t, rx.Context().Value(cardstore.CurrentUserKey))
		})).ServeHTTP(w, r)
	})
}
