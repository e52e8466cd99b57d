package handler_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/carloscedeno/cardstore"
	"github.com/carloscedeno/cardstore/postgres"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func TestGetCartLazilyCreates(t *testing.T) {
	// Arrange
	inserted := false
	db := &stubDB{
		findFn: func(model any, query map[string]any) error {
			return fmt.Errorf("%w", cardstore.ErrNotExist)
		},
		insertFn: func(model any) error {
			inserted = true
			model.(*cardstore.Cart).ID = 11
			return nil
		},
	}

	r := authed(httptest.NewRequest(http.MethodGet, "/api/cart", nil), 42)

	// Act
	w := serve(t, db, r)

	// Assert
	require.Equal(t, http.StatusOK, w.Code)
	require.True(t, inserted)
	require.EqualValues(t, 42, decodeBody(t, w)["user_id"])
}

func TestCartRequiresAuth(t *testing.T) {
	for _, tc := range []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/api/cart"},
		{http.MethodPost, "/api/cart/add"},
		{http.MethodPost, "/api/cart/checkout"},
	} {
		t.Run(tc.path, func(t *testing.T) {
			// Arrange + Act
			w := serve(t, &stubDB{}, httptest.NewRequest(tc.method, tc.path, nil))

			// Assert
			require.Equal(t, http.StatusInternalServerError, w.Code)
			require.Contains(t, decodeBody(t, w), "error")
		})
	}
}

func TestAddToCartNoMatchingProduct(t *testing.T) {
	// Arrange
	db := &stubDB{
		findFn: func(model any, query map[string]any) error {
			if _, ok := model.(*cardstore.Product); ok {
				return fmt.Errorf("%w", cardstore.ErrNotExist)
			}
			return nil
		},
	}

	body := strings.NewReader(`{"printing_id": 9}`)
	r := authed(httptest.NewRequest(http.MethodPost, "/api/cart/add", body), 42)

	// Act
	w := serve(t, db, r)

	// Assert
	require.Equal(t, http.StatusInternalServerError, w.Code)
	require.Contains(t, decodeBody(t, w)["error"], "no matching product")
}

func TestAddToCartRequiresAnIdentifier(t *testing.T) {
	// Arrange
	r := authed(httptest.NewRequest(http.MethodPost, "/api/cart/add", strings.NewReader(`{}`)), 42)

	// Act
	w := serve(t, &stubDB{}, r)

	// Assert
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Contains(t, decodeBody(t, w)["error"], "product_id or printing_id")
}

func TestCheckoutComputesTotal(t *testing.T) {
	// Arrange
	var (
		calledFn    string
		passedTotal float64
		passedLines []cardstore.OrderLine
	)
	db := &stubDB{
		findFn: func(model any, query map[string]any) error {
			model.(*cardstore.Cart).ID = 11
			return nil
		},
		fetchFn: func(models any, query string, params []any) error {
			*models.(*[]cardstore.CartItem) = []cardstore.CartItem{
				{ProductID: 1, Quantity: 2, Price: ptr(10.0)},
				{ProductID: 2, Quantity: 1, Price: ptr(5.0)},
			}
			return nil
		},
		rpcFn: func(dest any, fn string, args ...any) error {
			calledFn = fn
			require.Len(t, args, 4)
			require.Nil(t, json.Unmarshal(args[1].([]byte), &passedLines))
			passedTotal = args[3].(float64)
			return nil
		},
	}

	body := strings.NewReader(`{"shipping_address":{"street":"123 Main St"}}`)
	r := authed(httptest.NewRequest(http.MethodPost, "/api/cart/checkout", body), 42)

	// Act
	w := serve(t, db, r)

	// Assert
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, postgres.RPCCreateOrderAtomic, calledFn)
	require.Equal(t, 25.0, passedTotal)
	require.Len(t, passedLines, 2)
	require.Equal(t, 25.0, decodeBody(t, w)["total"])
}

func TestCheckoutNilPriceCountsAsZero(t *testing.T) {
	// Arrange
	var passedTotal float64
	db := &stubDB{
		findFn: func(model any, query map[string]any) error {
			model.(*cardstore.Cart).ID = 11
			return nil
		},
		fetchFn: func(models any, query string, params []any) error {
			*models.(*[]cardstore.CartItem) = []cardstore.CartItem{
				{ProductID: 1, Quantity: 3, Price: nil},
				{ProductID: 2, Quantity: 2, Price: ptr(4.0)},
			}
			return nil
		},
		rpcFn: func(dest any, fn string, args ...any) error {
			passedTotal = args[3].(float64)
			return nil
		},
	}

	body := strings.NewReader(`{"shipping_address":{"street":"123 Main St"}}`)
	r := authed(httptest.NewRequest(http.MethodPost, "/api/cart/checkout", body), 42)

	// Act
	w := serve(t, db, r)

	// Assert
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, 8.0, passedTotal)
}

func TestCheckoutEmptyCart(t *testing.T) {
	// Arrange
	db := &stubDB{
		findFn: func(model any, query map[string]any) error {
			model.(*cardstore.Cart).ID = 11
			return nil
		},
	}

	body := strings.NewReader(`{"shipping_address":{"street":"123 Main St"}}`)
	r := authed(httptest.NewRequest(http.MethodPost, "/api/cart/checkout", body), 42)

	// Act
	w := serve(t, db, r)

	// Assert
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Contains(t, decodeBody(t, w)["error"], "cart is empty")
}
