package handler

import (
	"net/http"

	"github.com/carloscedeno/cardstore/http/resp"
)

// Root responds with the static service descriptor.
func (h *Handler) Root(w http.ResponseWriter, r *http.Request) {
	h.resp.Json(w, r, resp.Data(map[string]any{
		"name":      "cardstore-api",
		"status":    "ok",
		"endpoints": endpoints,
	}))
}
