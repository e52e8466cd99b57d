package handler

import (
	"net/http"

	"github.com/carloscedeno/cardstore"
	"github.com/carloscedeno/cardstore/http/resp"
)

type listSetsParams struct {
	GameCode string `json:"game_code" schema:"game_code"`
}

// ListSets responds with card sets, optionally filtered by game code.
func (h *Handler) ListSets(w http.ResponseWriter, r *http.Request) {
	var params listSetsParams
	if err := h.parser.Parse(r, &params); err != nil {
		h.resp.Err(w, r, err)
		return
	}

	var query string
	var args []any
	if params.GameCode != "" {
		query, args = "game_code = ?", []any{params.GameCode}
	}

	var sets []cardstore.CardSet
	if err := h.db.FetchByQuery(&sets, query, args); err != nil {
		h.resp.Err(w, r, err)
		return
	}

	h.resp.Json(w, r, resp.Data(sets))
}

// GetSet responds with the set matching the trailing id segment.
func (h *Handler) GetSet(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id", "sets")
	if err != nil {
		h.clientErr(w, r, "set ID is required")
		return
	}

	var set cardstore.CardSet
	if err := h.db.FindByID(&set, id); err != nil {
		h.resp.Err(w, r, err)
		return
	}

	h.resp.Json(w, r, resp.Data(set))
}

type createSetParams struct {
	GameCode    string `json:"game_code" schema:"game_code" validate:"required"`
	SetCode     string `json:"set_code" schema:"set_code" validate:"required"`
	SetName     string `json:"set_name" schema:"set_name" validate:"required"`
	ReleaseYear int    `json:"release_year" schema:"release_year"`
}

// CreateSet inserts a new card set.
func (h *Handler) CreateSet(w http.ResponseWriter, r *http.Request) {
	var params createSetParams
	if err := h.parser.Parse(r, &params); err != nil {
		h.resp.Err(w, r, err)
		return
	}

	set := cardstore.CardSet{
		GameCode:    params.GameCode,
		SetCode:     params.SetCode,
		SetName:     params.SetName,
		ReleaseYear: params.ReleaseYear,
	}
	if err := h.db.Insert(&set); err != nil {
		h.resp.Err(w, r, err)
		return
	}

	h.resp.Json(w, r, resp.Data(set))
}
