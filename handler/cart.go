package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/carloscedeno/cardstore"
	"github.com/carloscedeno/cardstore/http/resp"
	"github.com/carloscedeno/cardstore/postgres"
)

// GetCart responds with the current user's cart,
// lazily creating an empty one the first time it is asked for.
func (h *Handler) GetCart(w http.ResponseWriter, r *http.Request) {
	claims, err := h.currentUser(r)
	if err != nil {
		h.resp.Err(w, r, err)
		return
	}

	cart, err := h.findOrCreateCart(claims.UserID)
	if err != nil {
		h.resp.Err(w, r, err)
		return
	}

	h.resp.Json(w, r, resp.Data(cart))
}

type addToCartParams struct {
	ProductID  uint `json:"product_id" schema:"product_id"`
	PrintingID uint `json:"printing_id" schema:"printing_id"`
	Quantity   int  `json:"quantity" schema:"quantity" validate:"omitempty,gt=0"`
}

// AddToCart puts a product line in the current user's cart.
//
// The product resolves either directly by product_id or by translating
// a printing_id into the product selling that printing; a request that
// resolves to no product fails before any write occurs.
func (h *Handler) AddToCart(w http.ResponseWriter, r *http.Request) {
	claims, err := h.currentUser(r)
	if err != nil {
		h.resp.Err(w, r, err)
		return
	}

	params := addToCartParams{Quantity: 1}
	if err := h.parser.Parse(r, &params); err != nil {
		h.resp.Err(w, r, err)
		return
	}

	if params.ProductID == 0 && params.PrintingID == 0 {
		h.clientErr(w, r, "product_id or printing_id is required")
		return
	}

	var product cardstore.Product
	if params.ProductID != 0 {
		err = h.db.FindByID(&product, params.ProductID)
	} else {
		err = h.db.FindByQuery(&product, map[string]any{"printing_id = ?": params.PrintingID})
	}
	if err != nil {
		h.resp.Err(w, r, fmt.Errorf("no matching product: %w", err))
		return
	}

	cart, err := h.findOrCreateCart(claims.UserID)
	if err != nil {
		h.resp.Err(w, r, err)
		return
	}

	price := product.Price
	item := cardstore.CartItem{
		CartID:    cart.ID,
		ProductID: product.ID,
		Quantity:  params.Quantity,
		Price:     &price,
	}
	if err := h.db.Insert(&item); err != nil {
		h.resp.Err(w, r, err)
		return
	}

	h.resp.Json(w, r, resp.Data(item))
}

type checkoutParams struct {
	ShippingAddress map[string]any `json:"shipping_address" validate:"required"`
}

// Checkout turns the current user's cart into an order.
//
// The handler computes the total by summing unit price times quantity
// across cart items, counting a missing price as zero, then hands the
// line items, shipping address and total to the database's atomic
// order routine. Atomicity lives entirely in that routine.
func (h *Handler) Checkout(w http.ResponseWriter, r *http.Request) {
	claims, err := h.currentUser(r)
	if err != nil {
		h.resp.Err(w, r, err)
		return
	}

	var params checkoutParams
	if err := h.parser.Parse(r, &params); err != nil {
		h.resp.Err(w, r, err)
		return
	}

	var cart cardstore.Cart
	if err := h.db.FindByQuery(&cart, map[string]any{"user_id = ?": claims.UserID}); err != nil {
		h.resp.Err(w, r, fmt.Errorf("no cart to check out: %w", err))
		return
	}

	var items []cardstore.CartItem
	if err := h.db.FetchByQuery(&items, "cart_id = ?", []any{cart.ID}); err != nil {
		h.resp.Err(w, r, err)
		return
	}

	if len(items) == 0 {
		h.clientErr(w, r, "cart is empty")
		return
	}

	total, lines := tallyCart(items)

	linesJSON, err := json.Marshal(lines)
	if err != nil {
		h.resp.Err(w, r, err)
		return
	}

	shippingJSON, err := json.Marshal(params.ShippingAddress)
	if err != nil {
		h.resp.Err(w, r, err)
		return
	}

	var result struct {
		OrderID uint `json:"order_id"`
	}
	if err := h.db.RPC(&result, postgres.RPCCreateOrderAtomic, claims.UserID, linesJSON, shippingJSON, total); err != nil {
		h.resp.Err(w, r, err)
		return
	}

	h.resp.Json(w, r, resp.Data(map[string]any{
		"order_id": result.OrderID,
		"total":    total,
	}))
}

// tallyCart sums price x quantity across items, treating a nil price
// as zero, and shapes the lines for the order routine.
func tallyCart(items []cardstore.CartItem) (float64, []cardstore.OrderLine) {
	var total float64
	lines := make([]cardstore.OrderLine, 0, len(items))
	for _, item := range items {
		var price float64
		if item.Price != nil {
			price = *item.Price
		}

		total += price * float64(item.Quantity)
		lines = append(lines, cardstore.OrderLine{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			UnitPrice: price,
		})
	}

	return total, lines
}

// findOrCreateCart is the idempotent get-or-create behind GetCart and AddToCart.
func (h *Handler) findOrCreateCart(userID uint) (cardstore.Cart, error) {
	var cart cardstore.Cart
	err := h.db.FindByQuery(&cart, map[string]any{"user_id = ?": userID})
	if errors.Is(err, cardstore.ErrNotExist) {
		cart = cardstore.Cart{UserID: userID}
		if err := h.db.Insert(&cart); err != nil {
			return cart, err
		}

		return cart, nil
	}
	if err != nil {
		return cart, err
	}

	if err := h.db.FetchByQuery(&cart.Items, "cart_id = ?", []any{cart.ID}); err != nil {
		return cart, err
	}

	return cart, nil
}
