package handler

import (
	"net/http"

	"github.com/carloscedeno/cardstore"
	"github.com/carloscedeno/cardstore/http/resp"
	"github.com/gorilla/mux"
)

// ListGames responds with every game the storefront sells.
func (h *Handler) ListGames(w http.ResponseWriter, r *http.Request) {
	var games []cardstore.Game
	if err := h.db.FetchByQuery(&games, "", nil); err != nil {
		h.resp.Err(w, r, err)
		return
	}

	h.resp.Json(w, r, resp.Data(games))
}

// GetGame responds with the game matching the trailing code segment.
func (h *Handler) GetGame(w http.ResponseWriter, r *http.Request) {
	code := mux.Vars(r)["code"]
	if code == "" {
		h.clientErr(w, r, "game code is required")
		return
	}

	var game cardstore.Game
	if err := h.db.FindByQuery(&game, map[string]any{"game_code = ?": code}); err != nil {
		h.resp.Err(w, r, err)
		return
	}

	h.resp.Json(w, r, resp.Data(game))
}

type createGameParams struct {
	GameCode string `json:"game_code" schema:"game_code" validate:"required"`
	GameName string `json:"game_name" schema:"game_name" validate:"required"`
}

// CreateGame inserts a new game.
func (h *Handler) CreateGame(w http.ResponseWriter, r *http.Request) {
	var params createGameParams
	if err := h.parser.Parse(r, &params); err != nil {
		h.resp.Err(w, r, err)
		return
	}

	game := cardstore.Game{GameCode: params.GameCode, GameName: params.GameName}
	if err := h.db.Insert(&game); err != nil {
		h.resp.Err(w, r, err)
		return
	}

	h.resp.Json(w, r, resp.Data(game))
}
