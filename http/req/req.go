package req

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/carloscedeno/cardstore"
)

type Parser struct {
	queryParamDecoder queryParamDecoder
	validator
}

func NewParser() *Parser {
	return &Parser{
		queryParamDecoder: newQueryParamDecoder(),
		validator:         newValidator(),
	}
}

// Parse decodes an *http.Request into a pointer to a struct,
// merging the two places a client can put parameters.
//
// Query params decode first. For POST, PUT and PATCH requests a
// JSON body then decodes over the same struct, so a key present in
// both places takes the body's value. A request with no body, or with
// a body that is not valid JSON, parses from query params alone; body
// problems never fail the parse. GET and DELETE requests never read
// the body.
//
// If successful, Parse runs validation against the contents,
// returning an ErrNotValid if the data fails validation rules.
func (p *Parser) Parse(r *http.Request, structPtr any) error {
	if err := p.queryParamDecoder.decode(structPtr, r.URL.Query()); err != nil {
		return fmt.Errorf("cardstore/http/req: failed decoding request query params: %w", translateDecoderError(err))
	}

	switch r.Method {
	case http.MethodPost, http.MethodPut, http.MethodPatch:
		if r.Body != nil {
			// tolerated: a missing or malformed body leaves the
			// query-derived values in place
			json.NewDecoder(r.Body).Decode(structPtr)
		}
	}

	if err := p.validate(structPtr); err != nil {
		return fmt.Errorf("cardstore/http/req: %T failed validation: %w", structPtr, err)
	}

	return nil
}

// ParseBody decodes into a pointer to a struct the JSON data in *http.Request.Body.
// If successful, ParseBody runs validation against the contents,
// returning an ErrNotValid if the data fails validation rules.
//
// ParseBody reads the entire r.Body and can't be read from again.
// Use a [io.TeeReader] if r.Body needs to be reused after calling ParseBody.
func (p *Parser) ParseBody(body io.Reader, structPtr any) error {
	var ourFault *json.InvalidUnmarshalError
	err := json.NewDecoder(body).Decode(structPtr)
	if errors.As(err, &ourFault) {
		return fmt.Errorf("cardstore/http/req: %w: ParseBody called with non-pointer: %s", cardstore.ErrNotValid, err)
	}

	if err != nil {
		return fmt.Errorf("cardstore/http/req: %w: failed decoding request body: %s", cardstore.ErrBadFormat, err)
	}

	if err := p.validate(structPtr); err != nil {
		return fmt.Errorf("cardstore/http/req: %T failed validation: %w", structPtr, err)
	}

	return nil
}

// ParseQueryParams decodes into a pointer to a struct the query param data in *http.Request.URL.Query.
// If successful, ParseQueryParams runs validation against the contents,
// returning an ErrNotValid if the data fails validation rules.
func (p *Parser) ParseQueryParams(params url.Values, structPtr any) error {
	if err := p.queryParamDecoder.decode(structPtr, params); err != nil {
		return fmt.Errorf("cardstore/http/req: failed decoding request query params: %w", translateDecoderError(err))
	}

	if err := p.validate(structPtr); err != nil {
		return fmt.Errorf("cardstore/http/req: %T failed validation: %w", structPtr, err)
	}

	return nil
}
