package req_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/carloscedeno/cardstore"
	"github.com/carloscedeno/cardstore/http/req"
	"github.com/stretchr/testify/require"
)

type testEnum string

func (t testEnum) String() string { return string(t) }
func (t testEnum) Valid() error {
	if t == "mtg" {
		return nil
	}
	return errors.New("oops")
}

type searchParams struct {
	Game    testEnum `json:"game" schema:"game" validate:"omitempty,enum"`
	Name    string   `json:"name" schema:"name"`
	Page    int      `json:"page" schema:"page" validate:"omitempty,gt=0"`
	PerPage int      `json:"per_page" schema:"per_page" validate:"omitempty,gt=0"`
}

func TestParserParse(t *testing.T) {
	parser := req.NewParser()

	t.Run("QueryOnly", func(t *testing.T) {
		// Arrange
		r := httptest.NewRequest(http.MethodGet, "/api/cards?name=bolt&page=2", nil)
		actual := new(searchParams)

		// Act
		err := parser.Parse(r, actual)

		// Assert
		require.Nil(t, err)
		require.Equal(t, "bolt", actual.Name)
		require.Equal(t, 2, actual.Page)
	})

	t.Run("BodyWinsCollision", func(t *testing.T) {
		// Arrange
		body := strings.NewReader(`{"name":"counterspell","per_page":50}`)
		r := httptest.NewRequest(http.MethodPost, "/api/cards?name=bolt&page=2", body)
		actual := new(searchParams)

		// Act
		err := parser.Parse(r, actual)

		// Assert
		require.Nil(t, err)
		require.Equal(t, "counterspell", actual.Name)
		require.Equal(t, 2, actual.Page)
		require.Equal(t, 50, actual.PerPage)
	})

	t.Run("MalformedBodyTolerated", func(t *testing.T) {
		// Arrange
		r := httptest.NewRequest(http.MethodPost, "/api/cards?name=bolt", strings.NewReader("{nope"))
		actual := new(searchParams)

		// Act
		err := parser.Parse(r, actual)

		// Assert
		require.Nil(t, err)
		require.Equal(t, "bolt", actual.Name)
	})

	t.Run("GetIgnoresBody", func(t *testing.T) {
		// Arrange
		r := httptest.NewRequest(http.MethodGet, "/api/cards?name=bolt", strings.NewReader(`{"name":"counterspell"}`))
		actual := new(searchParams)

		// Act
		err := parser.Parse(r, actual)

		// Assert
		require.Nil(t, err)
		require.Equal(t, "bolt", actual.Name)
	})

	t.Run("ValidatesMergedResult", func(t *testing.T) {
		// Arrange
		r := httptest.NewRequest(http.MethodPost, "/api/cards", strings.NewReader(`{"page":-1}`))
		var actual req.ValidationErrors

		// Act
		err := parser.Parse(r, new(searchParams))

		// Assert
		require.ErrorIs(t, err, cardstore.ErrNotValid)
		require.ErrorAs(t, err, &actual)
		require.Equal(t, "page", actual[0].Field)
	})
}

func TestParserParseBody(t *testing.T) {
	// Arrange
	parser := req.NewParser()

	var actual req.ValidationErrors

	type test struct {
		A string `json:"a,omitempty" validate:"required"`
		B int64  `json:"b" validate:"gt=10,required"`
		C struct {
			Nested bool `json:"nested" validate:"eq=true"`
		} `json:"c"`
		D testEnum `json:"d" validate:"enum"`
		E string   `json:"-"`
	}
	var input, output test

	b := new(bytes.Buffer)
	require.Nil(t, json.NewEncoder(b).Encode(input))

	// Act
	err := parser.ParseBody(b, struct{}{})

	// Assert
	require.ErrorIs(t, err, cardstore.ErrNotValid)

	// Arrange
	b.Reset()
	b.WriteByte('\x00')

	// Act
	err = parser.ParseBody(b, &output)

	// Assert
	require.ErrorIs(t, err, cardstore.ErrBadFormat)

	// Arrange
	expected := req.ValidationErrors{
		req.ValidationError{
			Field: "a",
			Got:   "",
			Rule:  "required; string",
		},
		req.ValidationError{
			Field: "b",
			Got:   int64(0),
			Rule:  "gt=10; int64",
		},
		req.ValidationError{
			Field: "c.nested",
			Got:   false,
			Rule:  "eq=true; bool",
		},
		req.ValidationError{
			Field: "d",
			Got:   testEnum(""),
			Rule:  "enum; req_test.testEnum",
		},
	}

	require.Nil(t, json.NewEncoder(b).Encode(input))

	// Act
	err = parser.ParseBody(b, &output)

	// Assert
	require.ErrorIs(t, err, cardstore.ErrNotValid)
	require.ErrorAs(t, err, &actual)
	require.Len(t, actual, 4)
	require.Equal(t, expected[0], actual[0])
	require.Equal(t, expected[1], actual[1])
	require.Equal(t, expected[2], actual[2])
	require.Equal(t, expected[3], actual[3])

	// Arrange
	input.A = "hello"
	input.B = 20
	input.C.Nested = true
	input.D = "mtg"
	input.E = "ignore"

	b = new(bytes.Buffer)
	require.Nil(t, json.NewEncoder(b).Encode(input))

	// Act
	err = parser.ParseBody(b, &output)

	// Assert
	require.Nil(t, err)
	require.Equal(t, input.A, output.A)
	require.Equal(t, input.B, output.B)
	require.Equal(t, input.C, output.C)
	require.Equal(t, input.D, output.D)
	require.Equal(t, "", output.E)
}

func TestParserParseQueryParams(t *testing.T) {
	// Arrange
	parser := req.NewParser()
	u := make(url.Values)

	// Act
	err := parser.ParseQueryParams(u, new(struct {
		A string `schema:"a,required"`
	}))

	// Assert
	require.ErrorIs(t, err, cardstore.ErrNotImplemented)

	// Arrange
	type test struct {
		A string   `schema:"a" validate:"required"`
		B int64    `schema:"b" validate:"gt=10,required"`
		C []string `schema:"c" validate:"len=2,required"`
		D string   `schema:"-"`
	}

	u.Set("a", "test")
	u.Set("b", "test")

	var actual req.ValidationErrors
	expected := req.ValidationErrors{{
		Field: "b",
		Got:   "bad value at index 0",
		Rule:  "must be int64",
	}}

	// Act
	err = parser.ParseQueryParams(u, new(test))

	// Assert
	require.ErrorIs(t, err, cardstore.ErrNotValid)
	require.ErrorAs(t, err, &actual)
	require.Equal(t, expected[0], actual[0])

	// Arrange
	u.Set("b", "20")
	u.Add("c", "1")
	u.Add("c", "2")
	u.Set("d", "ignore")
	actualVal := new(test)

	// Act
	err = parser.ParseQueryParams(u, actualVal)

	// Assert
	require.Nil(t, err)
	require.Equal(t, "test", actualVal.A)
	require.Equal(t, int64(20), actualVal.B)
	require.Equal(t, []string{"1", "2"}, actualVal.C)
	require.Equal(t, "", actualVal.D)
}
