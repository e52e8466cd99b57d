package handler

import (
	"net/http"

	"github.com/carloscedeno/cardstore/http/resp"
	"github.com/carloscedeno/cardstore/postgres"
)

type searchParams struct {
	Query string `json:"query" schema:"query" validate:"required"`
	Game  string `json:"game" schema:"game"`
	Limit int    `json:"limit" schema:"limit" validate:"omitempty,gt=0,lte=200"`
}

// Search responds with ranked card matches for a free-text query,
// delegating the ranking itself to the database-side routine.
func (h *Handler) Search(w http.ResponseWriter, r *http.Request) {
	params := searchParams{Limit: 50}
	if err := h.parser.Parse(r, &params); err != nil {
		h.resp.Err(w, r, err)
		return
	}

	var rows []CardSearchRow
	if err := h.db.RPC(&rows, postgres.RPCSearchCards, params.Query, params.Game, params.Limit); err != nil {
		h.resp.Err(w, r, err)
		return
	}

	h.resp.Json(w, r, resp.Data(map[string]any{
		"query":   params.Query,
		"results": rows,
	}))
}
