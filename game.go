package cardstore

// A Game is one trading card game sold by the storefront, e.g., MTG.
type Game struct {
	Model
	GameCode string `json:"game_code" gorm:"uniqueIndex" schema:"game_code" validate:"required"`
	GameName string `json:"game_name" schema:"game_name" validate:"required"`
}

func (Game) TableName() string { return "games" }

// A CardSet is one release of cards within a Game,
// identified by a set code unique within that game.
type CardSet struct {
	Model
	GameCode    string `json:"game_code" gorm:"index" schema:"game_code" validate:"required"`
	SetCode     string `json:"set_code" gorm:"uniqueIndex" schema:"set_code" validate:"required"`
	SetName     string `json:"set_name" schema:"set_name" validate:"required"`
	ReleaseYear int    `json:"release_year" schema:"release_year"`
}

func (CardSet) TableName() string { return "sets" }
