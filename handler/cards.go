package handler

import (
	"net/http"

	"github.com/carloscedeno/cardstore"
	"github.com/carloscedeno/cardstore/http/resp"
	"github.com/carloscedeno/cardstore/postgres"
)

type listCardsParams struct {
	Query    string `json:"query" schema:"query"`
	Game     string `json:"game" schema:"game"`
	Set      string `json:"set" schema:"set"`
	Rarity   string `json:"rarity" schema:"rarity"`
	Color    string `json:"color" schema:"color"`
	CardType string `json:"type" schema:"type"`
	YearFrom int    `json:"year_from" schema:"year_from"`
	YearTo   int    `json:"year_to" schema:"year_to"`
	Sort     string `json:"sort" schema:"sort" validate:"omitempty,oneof=name release_year price"`
	Limit    int    `json:"limit" schema:"limit" validate:"omitempty,gt=0,lte=200"`
	Offset   int    `json:"offset" schema:"offset" validate:"omitempty,gte=0"`
}

// A CardSearchRow is one row of the card-list routine's result set:
// the unique card plus the price spread across its printings.
type CardSearchRow struct {
	ID          uint     `json:"id"`
	Name        string   `json:"name"`
	GameCode    string   `json:"game_code"`
	SetCode     string   `json:"set_code"`
	Rarity      string   `json:"rarity"`
	CardType    string   `json:"card_type"`
	ImageURL    string   `json:"image_url"`
	ReleaseYear int      `json:"release_year"`
	MinPrice    *float64 `json:"min_price"`
	MaxPrice    *float64 `json:"max_price"`
}

// ListCards responds with unique cards matching the filter params,
// delegating filtering and ordering to the database-side routine.
func (h *Handler) ListCards(w http.ResponseWriter, r *http.Request) {
	params := listCardsParams{Limit: 50}
	if err := h.parser.Parse(r, &params); err != nil {
		h.resp.Err(w, r, err)
		return
	}

	var rows []CardSearchRow
	err := h.db.RPC(&rows, postgres.RPCUniqueCards,
		params.Query,
		params.Game,
		params.Set,
		params.Rarity,
		params.Color,
		params.CardType,
		params.YearFrom,
		params.YearTo,
		params.Sort,
		params.Limit,
		params.Offset,
	)
	if err != nil {
		h.resp.Err(w, r, err)
		return
	}

	h.resp.Json(w, r, resp.Data(map[string]any{
		"cards":  rows,
		"limit":  params.Limit,
		"offset": params.Offset,
	}))
}

// GetCard responds with one card's full detail plus every printing of it.
func (h *Handler) GetCard(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id", "cards")
	if err != nil {
		h.clientErr(w, r, "card ID is required")
		return
	}

	var card cardstore.Card
	if err := h.db.FindByID(&card, id); err != nil {
		h.resp.Err(w, r, err)
		return
	}

	if err := h.db.FetchByQuery(&card.Printings, "card_id = ?", []any{card.ID}); err != nil {
		h.resp.Err(w, r, err)
		return
	}

	h.resp.Json(w, r, resp.Data(card))
}
