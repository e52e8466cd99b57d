package auth

import "errors"

var (
	ErrNotValid     = errors.New("not valid")
	ErrUnauthorized = errors.New("unauthorized")
	ErrUnexpected   = errors.New("unexpected")
)
