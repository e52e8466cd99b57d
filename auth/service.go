package auth

import (
	"fmt"

	"github.com/golang-jwt/jwt/v4"
)

// Service is an implementation of the Verifier interface defined in this package.
//
// Tokens are minted by the external auth provider and signed HS256 with
// the shared service key; verifying the signature is how this component
// "resolves" a token without a network round trip.
type Service struct {
	key    []byte
	parser *jwt.Parser
}

func NewService(serviceKey string) (*Service, error) {
	if serviceKey == "" {
		return nil, fmt.Errorf(`%w: service key cannot be ""`, ErrNotValid)
	}

	return &Service{
		key:    []byte(serviceKey),
		parser: jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()})),
	}, nil
}
