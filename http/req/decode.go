package req

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/carloscedeno/cardstore"
	"github.com/gorilla/schema"
)

type queryParamDecoder interface {
	decode(any, url.Values) error
}

type schemaDecoder struct {
	dec *schema.Decoder
}

func newQueryParamDecoder() queryParamDecoder {
	dec := schema.NewDecoder()
	dec.IgnoreUnknownKeys(true)

	return schemaDecoder{dec}
}

func (s schemaDecoder) decode(structPtr any, params url.Values) error {
	return s.dec.Decode(structPtr, params)
}

// translateDecoderError converts an error returned by *schema.Decoder into standardized errors.
// Some *schema.Decoder errors are issues with calling code;
// some errors are unexpected issues;
// still some are issues with mismatches between a request's query params and the expected shape.
func translateDecoderError(err error) error {
	var pkgErrs schema.MultiError
	// NOTE: outside other errors handled below, the schema package
	// appears to always use MultiError to wrap errors up.
	if !errors.As(err, &pkgErrs) {
		return fmt.Errorf("%w: %s", cardstore.ErrBadFormat, err)
	}

	var validErrs ValidationErrors
	for _, pkgErr := range pkgErrs {
		switch err := pkgErr.(type) {
		case schema.ConversionError:
			ve := ValidationError{
				Field: err.Key,
				// NOTE: for non-slice values, err.Index is -1.
				Got:  fmt.Sprintf("bad value at index %d", max(0, err.Index)),
				Rule: "must be " + err.Type.String(),
			}

			validErrs = append(validErrs, ve)

		case schema.EmptyFieldError:
			return fmt.Errorf(`%w: use validate pkg to set "required" fields, not schema`, cardstore.ErrNotImplemented)

		case schema.UnknownKeyError:
			ve := ValidationError{
				Field: err.Key,
				Got:   "value is set",
				Rule:  "unexpected key should not be set",
			}

			validErrs = append(validErrs, ve)

		default:
			// A field without a registered schema.Converter only
			// errors once a url.Values sets a value for its key.
			if strings.Contains(err.Error(), "schema: converter not found for") {
				return fmt.Errorf("%w: cannot convert values into unsupported type", cardstore.ErrNotImplemented)
			}

			// Anything else is likely a programming error; surface it immediately.
			return fmt.Errorf("%w: %s", cardstore.ErrUnexpected, err)
		}
	}

	return validErrs
}
