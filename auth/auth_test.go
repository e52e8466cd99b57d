package auth_test

import (
	"testing"
	"time"

	"github.com/carloscedeno/cardstore/auth"
	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/require"
)

const testKey = "test-service-key"

func mintToken(t *testing.T, key, sub string, method jwt.SigningMethod) string {
	t.Helper()
	tok := jwt.NewWithClaims(method, jwt.RegisteredClaims{
		Subject:   sub,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})
	s, err := tok.SignedString([]byte(key))
	require.Nil(t, err)
	return s
}

func TestNewService(t *testing.T) {
	// Arrange + Act
	_, err := auth.NewService("")

	// Assert
	require.ErrorIs(t, err, auth.ErrNotValid)

	// Arrange + Act
	svc, err := auth.NewService(testKey)

	// Assert
	require.Nil(t, err)
	require.NotNil(t, svc)
}

func TestVerifyBearer(t *testing.T) {
	svc, err := auth.NewService(testKey)
	require.Nil(t, err)

	t.Run("Valid", func(t *testing.T) {
		claims, err := svc.VerifyBearer(mintToken(t, testKey, "42", jwt.SigningMethodHS256))
		require.Nil(t, err)
		require.Equal(t, uint(42), claims.UserID)
	})

	t.Run("Empty", func(t *testing.T) {
		_, err := svc.VerifyBearer("")
		require.ErrorIs(t, err, auth.ErrUnauthorized)
	})

	t.Run("BadSignature", func(t *testing.T) {
		_, err := svc.VerifyBearer(mintToken(t, "other-key", "42", jwt.SigningMethodHS256))
		require.ErrorIs(t, err, auth.ErrUnauthorized)
	})

	t.Run("BadSubject", func(t *testing.T) {
		_, err := svc.VerifyBearer(mintToken(t, testKey, "not-a-user", jwt.SigningMethodHS256))
		require.ErrorIs(t, err, auth.ErrUnauthorized)
	})

	t.Run("Garbage", func(t *testing.T) {
		_, err := svc.VerifyBearer("not.a.jwt")
		require.ErrorIs(t, err, auth.ErrUnauthorized)
	})
}
