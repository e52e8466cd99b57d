package handler_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/carloscedeno/cardstore/postgres"
	"github.com/stretchr/testify/require"
)

func TestCollectionStats(t *testing.T) {
	// Arrange
	var (
		calledFn string
		gotArgs  []any
	)
	db := &stubDB{
		rpcFn: func(dest any, fn string, args ...any) error {
			calledFn = fn
			gotArgs = args
			return nil
		},
	}

	r := authed(httptest.NewRequest(http.MethodGet, "/api/stats/collection", nil), 42)

	// Act
	w := serve(t, db, r)

	// Assert
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, postgres.RPCUserCollectionStats, calledFn)
	require.EqualValues(t, 42, gotArgs[0])
}

func TestCollectionStatsRequiresAuth(t *testing.T) {
	// Arrange + Act
	w := serve(t, &stubDB{}, httptest.NewRequest(http.MethodGet, "/api/stats/collection", nil))

	// Assert
	require.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestPriceStats(t *testing.T) {
	// Arrange
	var calledFn string
	db := &stubDB{
		rpcFn: func(dest any, fn string, args ...any) error {
			calledFn = fn
			return nil
		},
	}

	r := httptest.NewRequest(http.MethodGet, "/api/stats/prices?printing_id=4", nil)

	// Act
	w := serve(t, db, r)

	// Assert
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, postgres.RPCCalculatePriceTrends, calledFn)
	require.EqualValues(t, 30, decodeBody(t, w)["days"])
}
