package auth

import (
	"fmt"
	"strconv"

	"github.com/golang-jwt/jwt/v4"
)

// tokenClaims is the registered-claims shape the auth provider mints.
// The subject carries the user's numeric ID.
type tokenClaims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// VerifyBearer decodes and verifies the provided bearer token,
// resolving it to the user identity it was minted for.
//
// An empty, malformed, expired, or badly signed token returns
// ErrUnauthorized; so does a verified token whose subject is not a
// user ID.
func (s *Service) VerifyBearer(token string) (*Claims, error) {
	if token == "" {
		return nil, fmt.Errorf("%w: no bearer token", ErrUnauthorized)
	}

	tc := new(tokenClaims)
	if _, err := s.parser.ParseWithClaims(token, tc, func(t *jwt.Token) (any, error) {
		return s.key, nil
	}); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrUnauthorized, err)
	}

	id, err := strconv.ParseUint(tc.Subject, 10, 64)
	if err != nil || id == 0 {
		return nil, fmt.Errorf("%w: token subject is not a user", ErrUnauthorized)
	}

	return &Claims{UserID: uint(id), Email: tc.Email}, nil
}
