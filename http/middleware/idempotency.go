package middleware

import (
	"bytes"
	"context"
	"crypto/sha256"
	"fmt"
	"io"
	"net/http"
)

const (
	IdempotencyHeader = "Idempotency-Key"
)

var _ http.ResponseWriter = idemResWriter{}

// Idempotent returns a middleware.Adapter that enables features
// of idempotency on a POST endpoint.
// GET, DELETE, PUT, & PATCH are idempotent by definition.
//
// Idempotent pulls a key (a UUID v4 string) from request headers
// to base the uniqueness of a POST request around.
// The header is opt-in: a request without one passes straight
// through to the handler with no replay protection.
//
// If a previous request has not used that key,
// Idempotent pairs all of the following values to the key:
// - a digest of the body of the request
// - the body of the resulting response
// - the status code of the resulting response
//
// If that key has been used before (and has not expired),
// Idempotent falls into one of these scenarios:
//
//   - if a status code has not been set for that key,
//     Idempotent responds with 409 since the idempotent request is still processing
//
//   - if the newly requested resource (the URI) or the new request's
//     body does not match the original's, Idempotent responds with 422
//
//   - Idempotent writes the status code and body saved for the key
//
// cache can be nil; Idempotent will use an in-process default.
//
// Idempotent implements the draft Idempotent HTTP Header Field specification:
// https://tools.ietf.org/id/draft-idempotency-header-01.html
func Idempotent(cache IdempotencyCacher) Adapter {
	if cache == nil {
		cache = NewIdemResMap()
	}

	return func(handler http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := r.Header.Get(IdempotencyHeader)
			if key == "" {
				handler.ServeHTTP(w, r)
				return
			}

			if r.Method != http.MethodPost {
				idemReject(w, http.StatusMethodNotAllowed, "idempotency keys apply to POST requests only")
				return
			}

			body, err := io.ReadAll(r.Body)
			if err != nil {
				idemReject(w, http.StatusInternalServerError, "could not read request body")
				return
			}

			r.Body = io.NopCloser(bytes.NewReader(body))
			sum := sha256.Sum256(body)

			ir, ok := cache.Get(r.Context(), key)
			if ok {
				if ir.Status == 0 {
					idemReject(w, http.StatusConflict, "request with this idempotency key is still processing")
					return
				}

				if ir.URI != r.URL.RequestURI() || !bytes.Equal(ir.Req, sum[:]) {
					idemReject(w, http.StatusUnprocessableEntity, "idempotency key was used for a different request")
					return
				}

				w.WriteHeader(ir.Status)
				w.Write(ir.Body)
				return
			}

			ir = IdemRes{URI: r.URL.RequestURI(), Req: sum[:]}
			cache.Set(r.Context(), key, ir)

			handler.ServeHTTP(idemResWriter{
				ctx: r.Context(),
				c:   cache,
				i:   &ir,
				k:   key,
				w:   w,
			}, r)
		})
	}
}

// idemReject refuses a keyed request in the JSON error envelope
// every other failure in the API wears.
func idemReject(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json; charset=UTF-8")
	w.WriteHeader(status)
	fmt.Fprintf(w, `{"error": %q}`, msg)
}

// An IdemRes is data from an HTTP response
// that can be reused when another request
// matches the same idempotency key.
type IdemRes struct {
	Body   []byte `json:"body"`
	Req    []byte `json:"req"`
	Status int    `json:"status"`
	URI    string `json:"uri"`
}

// An idemResWriter pairs an IdemRes with an http.ResponseWriter
// so both can be written to by an HTTP handler.
// Changes to the IdemRes in such a way are saved in the cache.
type idemResWriter struct {
	ctx context.Context
	c   IdempotencyCacher
	i   *IdemRes
	k   string
	w   http.ResponseWriter
}

// Header returns the http.Header of the underlying http.ResponseWriter.
func (irw idemResWriter) Header() http.Header { return irw.w.Header() }

// Write writes the bytes to all consumers the idemResWriter is concerned with.
func (irw idemResWriter) Write(b []byte) (int, error) {
	select {
	case <-irw.ctx.Done():
		return 0, nil
	default:
		if irw.i.Status == 0 {
			irw.WriteHeader(http.StatusOK)
		}

		n, err := irw.w.Write(b)
		if err != nil {
			return n, err
		}

		irw.i.Body = append(irw.i.Body, b...)
		irw.c.Set(irw.ctx, irw.k, *irw.i)
		return n, nil
	}
}

// WriteHeader copies the status code about to be written to the *IdemRes for later reuse
// before actually writing the status code.
func (irw idemResWriter) WriteHeader(s int) {
	select {
	case <-irw.ctx.Done():
		return
	default:
		irw.w.WriteHeader(s)
		irw.i.Status = s
		irw.c.Set(irw.ctx, irw.k, *irw.i)
	}
}
