package handler

import (
	"net/http"

	"github.com/carloscedeno/cardstore"
	"github.com/carloscedeno/cardstore/http/resp"
)

// Analytics responds with an aggregate valuation of the current user's
// collection: item and card counts plus an estimated market value
// priced off the products currently selling each tracked printing.
func (h *Handler) Analytics(w http.ResponseWriter, r *http.Request) {
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

	var (
		totalItems  int
		uniqueCards = map[uint]struct{}{}
		printingIDs []any
	)
	for _, item := range items {
		totalItems += item.Quantity
		uniqueCards[item.CardID] = struct{}{}
		if item.PrintingID != nil {
			printingIDs = append(printingIDs, *item.PrintingID)
		}
	}

	estimated := 0.0
	if len(printingIDs) > 0 {
		var products []cardstore.Product
		if err := h.db.FetchByQuery(&products, "printing_id IN ?", []any{printingIDs}); err != nil {
			h.resp.Err(w, r, err)
			return
		}

		priceByPrinting := make(map[uint]float64, len(products))
		for _, p := range products {
			priceByPrinting[p.PrintingID] = p.Price
		}

		for _, item := range items {
			if item.PrintingID == nil {
				continue
			}

			estimated += priceByPrinting[*item.PrintingID] * float64(item.Quantity)
		}
	}

	h.resp.Json(w, r, resp.Data(map[string]any{
		"total_items":     totalItems,
		"unique_cards":    len(uniqueCards),
		"estimated_value": estimated,
	}))
}
