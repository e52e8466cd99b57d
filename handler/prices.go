package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/carloscedeno/cardstore"
	"github.com/carloscedeno/cardstore/http/resp"
)

type listPricesParams struct {
	PrintingID uint   `json:"printing_id" schema:"printing_id" validate:"required"`
	Condition  string `json:"condition" schema:"condition"`
	Days       int    `json:"days" schema:"days" validate:"omitempty,gt=0,lte=3650"`
}

// ListPrices responds with the price history of one printing over a
// trailing day window, optionally narrowed to a condition.
func (h *Handler) ListPrices(w http.ResponseWriter, r *http.Request) {
	params := listPricesParams{Days: 30}
	if err := h.parser.Parse(r, &params); err != nil {
		h.resp.Err(w, r, err)
		return
	}

	query := "printing_id = ? AND recorded_on >= ?"
	args := []any{params.PrintingID, time.Now().AddDate(0, 0, -params.Days)}
	if params.Condition != "" {
		query += " AND condition = ?"
		args = append(args, params.Condition)
	}

	var points []cardstore.PricePoint
	if err := h.db.FetchByQuery(&points, query, args); err != nil {
		h.resp.Err(w, r, err)
		return
	}

	h.resp.Json(w, r, resp.Data(map[string]any{
		"printing_id": params.PrintingID,
		"days":        params.Days,
		"prices":      points,
	}))
}

type createPricesParams struct {
	Prices []pricePointParams `json:"prices" validate:"required,min=1,dive"`
}

type pricePointParams struct {
	PrintingID uint    `json:"printing_id" validate:"required"`
	Condition  string  `json:"condition"`
	Price      float64 `json:"price" validate:"gte=0"`
	RecordedOn string  `json:"recorded_on"`
}

// CreatePrices bulk inserts observed price points.
// Unlike the collection import, a single bad point fails the whole request.
func (h *Handler) CreatePrices(w http.ResponseWriter, r *http.Request) {
	var params createPricesParams
	if err := h.parser.Parse(r, &params); err != nil {
		h.resp.Err(w, r, err)
		return
	}

	inserted := 0
	for i, pp := range params.Prices {
		recorded := time.Now()
		if pp.RecordedOn != "" {
			var err error
			if recorded, err = time.Parse("2006-01-02", pp.RecordedOn); err != nil {
				h.resp.Err(w, r, fmt.Errorf("%w: price %d: recorded_on must be YYYY-MM-DD", cardstore.ErrBadFormat, i))
				return
			}
		}

		point := cardstore.PricePoint{
			PrintingID: pp.PrintingID,
			Condition:  pp.Condition,
			Price:      pp.Price,
			RecordedOn: recorded,
		}
		if err := h.db.Insert(&point); err != nil {
			h.resp.Err(w, r, err)
			return
		}
		inserted++
	}

	h.resp.Json(w, r, resp.Data(map[string]any{"inserted": inserted}))
}
