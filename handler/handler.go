package handler

import (
	"fmt"
	"net/http"

	"github.com/carloscedeno/cardstore"
	"github.com/carloscedeno/cardstore/auth"
	"github.com/carloscedeno/cardstore/http/req"
	"github.com/carloscedeno/cardstore/http/resp"
	"github.com/carloscedeno/cardstore/http/router"
	"github.com/carloscedeno/cardstore/logger"
	"github.com/carloscedeno/cardstore/postgres"
	"github.com/gorilla/mux"
)

// A Handler owns all resource endpoints of the storefront API.
//
// Its dependencies arrive through New rather than package state, so
// each endpoint can be exercised against a substitute DatabaseService.
type Handler struct {
	db     postgres.DatabaseService
	parser *req.Parser
	resp   *resp.Responder
	logger logger.Logger
}

func New(db postgres.DatabaseService, responder *resp.Responder, l logger.Logger) *Handler {
	return &Handler{
		db:     db,
		parser: req.NewParser(),
		resp:   responder,
		logger: l,
	}
}

// Routes enumerates every resource endpoint in matching order.
//
// Ordering is part of the contract: the literal
// "/api/collections/import" registers before the templated
// "/api/collections/{id}" so an import request never parses as an
// identifier lookup.
func (h *Handler) Routes() []router.Route {
	return []router.Route{
		{Path: "/", Method: http.MethodGet, Handler: h.Root},

		{Path: "/api/games", Method: http.MethodGet, Handler: h.ListGames},
		{Path: "/api/games", Method: http.MethodPost, Handler: h.CreateGame},
		{Path: "/api/games/{code}", Method: http.MethodGet, Handler: h.GetGame},

		{Path: "/api/sets", Method: http.MethodGet, Handler: h.ListSets},
		{Path: "/api/sets", Method: http.MethodPost, Handler: h.CreateSet},
		{Path: "/api/sets/{id}", Method: http.MethodGet, Handler: h.GetSet},

		{Path: "/api/cards", Method: http.MethodGet, Handler: h.ListCards},
		{Path: "/api/cards/{id}", Method: http.MethodGet, Handler: h.GetCard},

		{Path: "/api/prices", Method: http.MethodGet, Handler: h.ListPrices},
		{Path: "/api/prices", Method: http.MethodPost, Handler: h.CreatePrices},

		{Path: "/api/search", Method: http.MethodPost, Handler: h.Search},

		{Path: "/api/collections/import", Method: http.MethodPost, Handler: h.ImportCollection},
		{Path: "/api/collections", Method: http.MethodGet, Handler: h.ListCollection},
		{Path: "/api/collections", Method: http.MethodPost, Handler: h.CreateCollectionItem},
		{Path: "/api/collections/{id}", Method: http.MethodPut, Handler: h.UpdateCollectionItem},
		{Path: "/api/collections/{id}", Method: http.MethodPatch, Handler: h.UpdateCollectionItem},
		{Path: "/api/collections/{id}", Method: http.MethodDelete, Handler: h.DeleteCollectionItem},

		{Path: "/api/cart", Method: http.MethodGet, Handler: h.GetCart},
		{Path: "/api/cart/add", Method: http.MethodPost, Handler: h.AddToCart},
		{Path: "/api/cart/checkout", Method: http.MethodPost, Handler: h.Checkout},

		{Path: "/api/analytics", Method: http.MethodGet, Handler: h.Analytics},

		{Path: "/api/products", Method: http.MethodGet, Handler: h.ListProducts},

		{Path: "/api/stats/collection", Method: http.MethodGet, Handler: h.CollectionStats},
		{Path: "/api/stats/prices", Method: http.MethodGet, Handler: h.PriceStats},
	}
}

// endpoints is the catalog the not-found payload advertises.
var endpoints = []string{
	"GET /",
	"GET|POST /api/games",
	"GET /api/games/{code}",
	"GET|POST /api/sets",
	"GET /api/sets/{id}",
	"GET /api/cards",
	"GET /api/cards/{id}",
	"GET|POST /api/prices",
	"POST /api/search",
	"POST /api/collections/import",
	"GET|POST /api/collections",
	"PUT|PATCH|DELETE /api/collections/{id}",
	"GET /api/cart",
	"POST /api/cart/add",
	"POST /api/cart/checkout",
	"GET /api/analytics",
	"GET /api/products",
	"GET /api/stats/collection",
	"GET /api/stats/prices",
}

// NotFound responds to unmatched paths with the endpoint catalog.
// The error key elevates the payload to a 400 rather than a thrown 500,
// so clients can tell a typo'd route from a server fault.
func (h *Handler) NotFound(w http.ResponseWriter, r *http.Request) {
	h.resp.Json(w, r, resp.Data(map[string]any{
		"error":     fmt.Sprintf("route not found: %s %s", r.Method, r.URL.Path),
		"endpoints": endpoints,
	}))
}

// MethodNotAllowed responds to a known path requested with an
// unsupported method. The condition surfaces as a thrown error.
func (h *Handler) MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	h.resp.Err(w, r, fmt.Errorf("%w: method %s not allowed for %s", cardstore.ErrNotValid, r.Method, r.URL.Path))
}

// currentUser requires the request to carry a verified bearer identity.
// Handlers for user-scoped resources call this first and throw the
// error as-is when no identity resolved.
func (h *Handler) currentUser(r *http.Request) (*auth.Claims, error) {
	claims, ok := r.Context().Value(cardstore.CurrentUserKey).(*auth.Claims)
	if !ok || claims == nil || claims.UserID == 0 {
		return nil, fmt.Errorf("%w: missing or invalid bearer token", cardstore.ErrUnauthorized)
	}

	return claims, nil
}

// clientErr writes the business-error payload, which the responder
// elevates to a 400.
func (h *Handler) clientErr(w http.ResponseWriter, r *http.Request, msg string) {
	h.resp.Json(w, r, resp.Data(map[string]any{"error": msg}))
}

// pathID extracts the trailing identifier segment of the request path.
// A segment equal to the resource's own name means the client omitted
// the identifier entirely, not that a record by that name exists.
func pathID(r *http.Request, varName, resource string) (string, error) {
	id := mux.Vars(r)[varName]
	if id == "" || id == resource {
		return "", fmt.Errorf("%w: %s ID is required", cardstore.ErrMissingData, resource)
	}

	return id, nil
}
