package cardstore

// A CollectionItem is one card a user tracks in their collection or
// watchlist. Every read and write is scoped to the owning user.
type CollectionItem struct {
	Model
	UserID     uint   `json:"user_id" gorm:"index"`
	CardID     uint   `json:"card_id"`
	PrintingID *uint  `json:"printing_id"`
	Quantity   int    `json:"quantity"`
	Condition  string `json:"condition"`
	Notes      string `json:"notes"`
}

func (CollectionItem) TableName() string { return "collection_items" }
