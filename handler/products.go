package handler

import (
	"net/http"
	"strings"

	"github.com/carloscedeno/cardstore"
	"github.com/carloscedeno/cardstore/http/resp"
)

type listProductsParams struct {
	Page      int64    `json:"page" schema:"page" validate:"omitempty,gt=0"`
	PerPage   int64    `json:"per_page" schema:"per_page" validate:"omitempty,gt=0,lte=100"`
	Sort      string   `json:"sort" schema:"sort" validate:"omitempty,oneof=price_asc price_desc newest"`
	Condition string   `json:"condition" schema:"condition"`
	MaxPrice  *float64 `json:"max_price" schema:"max_price" validate:"omitempty,gte=0"`
	InStock   bool     `json:"in_stock" schema:"in_stock"`
}

// sortOrders whitelists client sorts to concrete order clauses.
var sortOrders = map[string]string{
	"price_asc":  "price ASC",
	"price_desc": "price DESC",
	"newest":     "created_at DESC",
}

// ListProducts responds with a page of sellable inventory,
// filterable by condition, price cap and stock, each line preloading
// the printing it sells.
func (h *Handler) ListProducts(w http.ResponseWriter, r *http.Request) {
	params := listProductsParams{Page: 1, PerPage: 20}
	if err := h.parser.Parse(r, &params); err != nil {
		h.resp.Err(w, r, err)
		return
	}

	var conds []string
	var args []any
	if params.Condition != "" {
		conds = append(conds, "condition = ?")
		args = append(args, params.Condition)
	}
	if params.MaxPrice != nil {
		conds = append(conds, "price <= ?")
		args = append(args, *params.MaxPrice)
	}
	if params.InStock {
		conds = append(conds, "quantity > 0")
	}
	query := strings.Join(conds, " AND ")

	var products []cardstore.Product
	paged, err := h.db.PagedByQuery(&products, query, args, sortOrders[params.Sort], params.Page, params.PerPage, "Printing")
	if err != nil {
		h.resp.Err(w, r, err)
		return
	}

	h.resp.Json(w, r, resp.Data(paged))
}
