package cardstore

import (
	"github.com/lib/pq"
	"gorm.io/datatypes"
)

// A Card is the game-agnostic identity of a card: its name and rules-side
// attributes, independent of which sets it was printed in.
type Card struct {
	Model
	Name        string         `json:"name" gorm:"index"`
	GameCode    string         `json:"game_code" gorm:"index"`
	Rarity      string         `json:"rarity"`
	CardType    string         `json:"card_type"`
	Colors      pq.StringArray `json:"colors" gorm:"type:text[]"`
	Attributes  datatypes.JSON `json:"attributes"`
	ReleaseYear int            `json:"release_year"`

	Printings []CardPrinting `json:"printings,omitempty"`
}

func (Card) TableName() string { return "cards" }

// A CardPrinting is a specific physical edition of a Card:
// set + collector number + finish.
type CardPrinting struct {
	Model
	CardID          uint   `json:"card_id" gorm:"index"`
	SetCode         string `json:"set_code" gorm:"index"`
	CollectorNumber string `json:"collector_number"`
	Finish          string `json:"finish"`
	ImageURL        string `json:"image_url"`
}

func (CardPrinting) TableName() string { return "card_printings" }
