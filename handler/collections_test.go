package handler_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/carloscedeno/cardstore"
	"github.com/carloscedeno/cardstore/postgres"
	"github.com/stretchr/testify/require"
)

func TestCollectionsRequireAuth(t *testing.T) {
	for _, tc := range []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/api/collections"},
		{http.MethodPost, "/api/collections"},
		{http.MethodPatch, "/api/collections/3"},
		{http.MethodDelete, "/api/collections/3"},
	} {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			// Arrange + Act
			w := serve(t, &stubDB{}, httptest.NewRequest(tc.method, tc.path, nil))

			// Assert
			require.Equal(t, http.StatusInternalServerError, w.Code)
			require.Contains(t, decodeBody(t, w)["error"], "bearer token")
		})
	}
}

func TestListCollectionScopesToUser(t *testing.T) {
	// Arrange
	var scopedTo any
	db := &stubDB{
		fetchFn: func(models any, query string, params []any) error {
			require.Equal(t, "user_id = ?", query)
			scopedTo = params[0]
			return nil
		},
	}

	r := authed(httptest.NewRequest(http.MethodGet, "/api/collections", nil), 42)

	// Act
	w := serve(t, db, r)

	// Assert
	require.Equal(t, http.StatusOK, w.Code)
	require.EqualValues(t, 42, scopedTo)
}

func TestCreateCollectionItem(t *testing.T) {
	// Arrange
	var inserted cardstore.CollectionItem
	db := &stubDB{
		insertFn: func(model any) error {
			inserted = *model.(*cardstore.CollectionItem)
			return nil
		},
	}

	body := strings.NewReader(`{"card_id":7,"quantity":3,"condition":"NM"}`)
	r := authed(httptest.NewRequest(http.MethodPost, "/api/collections", body), 42)

	// Act
	w := serve(t, db, r)

	// Assert
	require.Equal(t, http.StatusOK, w.Code)
	require.EqualValues(t, 42, inserted.UserID)
	require.EqualValues(t, 7, inserted.CardID)
	require.Equal(t, 3, inserted.Quantity)
}

func TestUpdateCollectionItemScopesAndStripsNils(t *testing.T) {
	// Arrange
	var (
		gotUpdates postgres.Updates
		gotQuery   map[string]any
	)
	db := &stubDB{
		updateFn: func(model any, updates postgres.Updates, query map[string]any) error {
			gotUpdates, gotQuery = updates, query
			return nil
		},
	}

	body := strings.NewReader(`{"quantity":5}`)
	r := authed(httptest.NewRequest(http.MethodPatch, "/api/collections/3", body), 42)

	// Act
	w := serve(t, db, r)

	// Assert
	require.Equal(t, http.StatusOK, w.Code)
	require.Len(t, gotUpdates, 1)
	require.Contains(t, gotUpdates, "quantity")
	require.Equal(t, "3", gotQuery["id = ?"])
	require.EqualValues(t, 42, gotQuery["user_id = ?"])
}

func TestUpdateCollectionItemNothingToDo(t *testing.T) {
	// Arrange
	body := strings.NewReader(`{}`)
	r := authed(httptest.NewRequest(http.MethodPatch, "/api/collections/3", body), 42)

	// Act
	w := serve(t, &stubDB{}, r)

	// Assert
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Contains(t, decodeBody(t, w)["error"], "no fields")
}

func TestDeleteCollectionItem(t *testing.T) {
	// Arrange
	var gotQuery map[string]any
	db := &stubDB{
		deleteFn: func(model any, query map[string]any) error {
			gotQuery = query
			return nil
		},
	}

	r := authed(httptest.NewRequest(http.MethodDelete, "/api/collections/3", nil), 42)

	// Act
	w := serve(t, db, r)

	// Assert
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "3", gotQuery["id = ?"])
	require.EqualValues(t, 42, gotQuery["user_id = ?"])
}

func TestDeleteCollectionLiteralSegmentRejected(t *testing.T) {
	// Arrange
	deleted := false
	db := &stubDB{
		deleteFn: func(model any, query map[string]any) error {
			deleted = true
			return nil
		},
	}

	r := authed(httptest.NewRequest(http.MethodDelete, "/api/collections/collections", nil), 42)

	// Act
	w := serve(t, db, r)

	// Assert
	require.False(t, deleted)
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Contains(t, decodeBody(t, w)["error"], "ID is required")
}
