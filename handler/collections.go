package handler

import (
	"net/http"

	"github.com/carloscedeno/cardstore"
	"github.com/carloscedeno/cardstore/http/resp"
	"github.com/carloscedeno/cardstore/postgres"
)

// ListCollection responds with the current user's collection items.
func (h *Handler) ListCollection(w http.ResponseWriter, r *http.Request) {
	claims, err := h.currentUser(r)
	if err != nil {
		h.resp.Err(w, r, err)
		return
	}

	var items []cardstore.CollectionItem
	if err := h.db.FetchByQuery(&items, "user_id = ?", []any{claims.UserID}); err != nil {
		h.resp.Err(w, r, err)
		return
	}

	h.resp.Json(w, r, resp.Data(items))
}

type createCollectionItemParams struct {
	CardID     uint   `json:"card_id" schema:"card_id" validate:"required"`
	PrintingID *uint  `json:"printing_id" schema:"printing_id"`
	Quantity   int    `json:"quantity" schema:"quantity" validate:"omitempty,gt=0"`
	Condition  string `json:"condition" schema:"condition"`
	Notes      string `json:"notes" schema:"notes"`
}

// CreateCollectionItem adds a card to the current user's collection.
func (h *Handler) CreateCollectionItem(w http.ResponseWriter, r *http.Request) {
	claims, err := h.currentUser(r)
	if err != nil {
		h.resp.Err(w, r, err)
		return
	}

	params := createCollectionItemParams{Quantity: 1}
	if err := h.parser.Parse(r, &params); err != nil {
		h.resp.Err(w, r, err)
		return
	}

	item := cardstore.CollectionItem{
		UserID:     claims.UserID,
		CardID:     params.CardID,
		PrintingID: params.PrintingID,
		Quantity:   params.Quantity,
		Condition:  params.Condition,
		Notes:      params.Notes,
	}
	if err := h.db.Insert(&item); err != nil {
		h.resp.Err(w, r, err)
		return
	}

	h.resp.Json(w, r, resp.Data(item))
}

type updateCollectionItemParams struct {
	PrintingID *uint   `json:"printing_id"`
	Quantity   *int    `json:"quantity" validate:"omitempty,gt=0"`
	Condition  *string `json:"condition"`
	Notes      *string `json:"notes"`
}

// UpdateCollectionItem updates one of the current user's collection
// items. Only keys present in the request change.
func (h *Handler) UpdateCollectionItem(w http.ResponseWriter, r *http.Request) {
	claims, err := h.currentUser(r)
	if err != nil {
		h.resp.Err(w, r, err)
		return
	}

	id, err := pathID(r, "id", "collections")
	if err != nil {
		h.clientErr(w, r, "collection item ID is required")
		return
	}

	var params updateCollectionItemParams
	if err := h.parser.Parse(r, &params); err != nil {
		h.resp.Err(w, r, err)
		return
	}

	updates := postgres.Updates{
		"printing_id": params.PrintingID,
		"quantity":    params.Quantity,
		"condition":   params.Condition,
		"notes":       params.Notes,
	}
	updates.StripNils()
	if len(updates) == 0 {
		h.clientErr(w, r, "no fields to update")
		return
	}

	query := map[string]any{"id = ?": id, "user_id = ?": claims.UserID}
	if err := h.db.UpdateByQuery(&cardstore.CollectionItem{}, updates, query); err != nil {
		h.resp.Err(w, r, err)
		return
	}

	var item cardstore.CollectionItem
	if err := h.db.FindByQuery(&item, query); err != nil {
		h.resp.Err(w, r, err)
		return
	}

	h.resp.Json(w, r, resp.Data(item))
}

// DeleteCollectionItem removes one of the current user's collection items.
func (h *Handler) DeleteCollectionItem(w http.ResponseWriter, r *http.Request) {
	claims, err := h.currentUser(r)
	if err != nil {
		h.resp.Err(w, r, err)
		return
	}

	id, err := pathID(r, "id", "collections")
	if err != nil {
		h.clientErr(w, r, "collection item ID is required")
		return
	}

	query := map[string]any{"id = ?": id, "user_id = ?": claims.UserID}
	if err := h.db.DeleteByQuery(&cardstore.CollectionItem{}, query); err != nil {
		h.resp.Err(w, r, err)
		return
	}

	h.resp.Json(w, r, resp.Data(map[string]any{"deleted": true, "id": id}))
}
