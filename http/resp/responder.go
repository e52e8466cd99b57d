package resp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"

	"github.com/carloscedeno/cardstore"
	"github.com/carloscedeno/cardstore/logger"
)

const responderFrames = 0

// Responder maintains reusable pieces for responding to HTTP requests.
//
// Every response this API writes is JSON, and clients read outcomes off
// the status code and the payload shape rather than a mixed bag of
// content types. Setting up a single instance of a Responder suffices
// for an application; handlers supply per-request specifics through Fn
// functions.
type Responder struct {
	logger logger.Logger

	// Pool of *bytes.Buffer to prerender responses into
	pool *sync.Pool
}

// NewResponder constructs a *Responder using the ResponderOptFns passed in.
func NewResponder(opts ...ResponderOptFn) *Responder {
	d := &Responder{
		pool: &sync.Pool{New: func() any { return new(bytes.Buffer) }},
	}
	for _, opt := range opts {
		opt(d)
	}

	if d.logger == nil {
		d.logger = logger.New()
	}

	if l, ok := d.logger.(logger.SkipLogger); ok {
		d.logger = l.AddSkip(responderFrames)
	}

	return d
}

// CurrentUser retrieves the user set in the context under cardstore.CurrentUserKey.
func (doer Responder) CurrentUser(ctx context.Context) (logger.LogUser, error) {
	val, ok := ctx.Value(cardstore.CurrentUserKey).(logger.LogUser)
	if !ok {
		return nil, fmt.Errorf("%w: no user in request context", ErrNotFound)
	}

	return val, nil
}

// Err writes the JSON error envelope for err with a 500,
// logging the error causing the failure state.
//
// Use when a handler throws and no payload-specific response can occur.
func (doer *Responder) Err(w http.ResponseWriter, r *http.Request, err error, opts ...Fn) error {
	return doer.Json(w, r, append(opts, Err(err))...)
}

// Json writes the payload set by Data as the JSON response body,
// deriving the status code from the shape of the response:
//
//   - an error set by Err writes {"error": <message>} with a 500
//   - a payload carrying an "error" key writes with a 400
//   - anything else writes with a 200
//
// Code overrides the derived status.
func (doer *Responder) Json(w http.ResponseWriter, r *http.Request, opts ...Fn) error {
	rr, err := doer.do(w, r, opts...)
	if err != nil {
		return err
	}

	if rr.closeBody {
		defer r.Body.Close()
	}

	payload := rr.data
	if rr.err != nil {
		payload = map[string]any{"error": rr.err.Error()}
	}

	if rr.code == 0 {
		switch {
		case rr.err != nil:
			rr.code = http.StatusInternalServerError
		case hasErrorKey(payload):
			rr.code = http.StatusBadRequest
		default:
			rr.code = http.StatusOK
		}
	}

	b := doer.pool.Get().(*bytes.Buffer)
	b.Reset()
	defer doer.pool.Put(b)

	if err := json.NewEncoder(b).Encode(payload); err != nil {
		doer.logger.Error(err.Error(), newLogContext(r, err, rr.data, rr.user))
		http.Error(w, `{"error":"failed encoding response"}`, http.StatusInternalServerError)
		return err
	}

	w.Header().Set("Content-Type", "application/json; charset=UTF-8")
	w.WriteHeader(rr.code)
	if _, err := b.WriteTo(w); err != nil {
		return err
	}

	return nil
}

// hasErrorKey reports whether the payload is a map carrying an "error"
// key, the shape handlers use for issues that are the client's fault.
func hasErrorKey(payload any) bool {
	m, ok := payload.(map[string]any)
	if !ok {
		return false
	}

	_, ok = m["error"]
	return ok
}

// do applies all options to the passed in http.ResponseWriter and *http.Request.
//
// Calling code ought to pass Options in the correct order.
// An option requiring something set by another one should come after.
func (doer *Responder) do(w http.ResponseWriter, r *http.Request, opts ...Fn) (*Response, error) {
	resp := &Response{
		closeBody: true,
		w:         w,
		r:         r,
	}

	for _, opt := range opts {
		select {
		case <-r.Context().Done():
			return nil, fmt.Errorf("%w", ErrDone)
		default:
			if err := opt(*doer, resp); err != nil {
				return nil, err
			}
		}
	}

	return resp, nil
}
