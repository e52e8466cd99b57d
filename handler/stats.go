package handler

import (
	"net/http"

	"github.com/carloscedeno/cardstore/http/resp"
	"github.com/carloscedeno/cardstore/postgres"
)

// CollectionStats responds with the database-computed statistics of the
// current user's collection.
func (h *Handler) CollectionStats(w http.ResponseWriter, r *http.Request) {
	claims, err := h.currentUser(r)
	if err != nil {
		h.resp.Err(w, r, err)
		return
	}

	var stats []map[string]any
	if err := h.db.RPC(&stats, postgres.RPCUserCollectionStats, claims.UserID); err != nil {
		h.resp.Err(w, r, err)
		return
	}

	h.resp.Json(w, r, resp.Data(map[string]any{"stats": stats}))
}

type priceStatsParams struct {
	PrintingID uint `json:"printing_id" schema:"printing_id" validate:"required"`
	Days       int  `json:"days" schema:"days" validate:"omitempty,gt=0,lte=3650"`
}

// PriceStats responds with database-computed price trends for one printing.
func (h *Handler) PriceStats(w http.ResponseWriter, r *http.Request) {
	params := priceStatsParams{Days: 30}
	if err := h.parser.Parse(r, &params); err != nil {
		h.resp.Err(w, r, err)
		return
	}

	var trends []map[string]any
	if err := h.db.RPC(&trends, postgres.RPCCalculatePriceTrends, params.PrintingID, params.Days); err != nil {
		h.resp.Err(w, r, err)
		return
	}

	h.resp.Json(w, r, resp.Data(map[string]any{
		"printing_id": params.PrintingID,
		"days":        params.Days,
		"trends":      trends,
	}))
}
