package resp

import (
	"net/http"

	"github.com/carloscedeno/cardstore/logger"
)

// A Fn is a functional option that mutates the state of the Response.
type Fn func(Responder, *Response) error

// A Response is the internal object a Responder response method builds
// while applying all functional options.
type Response struct {
	w         http.ResponseWriter
	r         *http.Request
	closeBody bool
	code      int
	data      any
	err       error
	user      logger.LogUser
}

// Code sets the response status code, overriding whatever Json would
// otherwise derive from the payload.
func Code(c int) Fn {
	return func(_ Responder, r *Response) error {
		r.code = c
		return nil
	}
}

// Data stores the provided payload for writing to the client.
func Data(d any) Fn {
	return func(_ Responder, r *Response) error {
		r.data = d
		return nil
	}
}

// Err logs the error and marks the Response as failed,
// so Json writes the error envelope with a 500.
func Err(e error) Fn {
	return func(d Responder, r *Response) error {
		if e == nil {
			return nil
		}

		d.logger.Error(e.Error(), newLogContext(r.r, e, r.data, r.user))
		r.err = e
		return nil
	}
}

// User associates the user with the Response for the purposes of logging.
func User(u logger.LogUser) Fn {
	return func(_ Responder, r *Response) error {
		r.user = u
		return nil
	}
}
