package cardstore

import "time"

// A Product is a sellable inventory line: a printing in a given
// condition and language, with a price and an on-hand quantity.
type Product struct {
	Model
	PrintingID uint    `json:"printing_id" gorm:"index"`
	Condition  string  `json:"condition"`
	Language   string  `json:"language"`
	Price      float64 `json:"price"`
	Quantity   int     `json:"quantity"`

	Printing CardPrinting `json:"printing,omitempty"`
}

func (Product) TableName() string { return "products" }

// A PricePoint is one observed market price for a printing in a given
// condition on a given day.
type PricePoint struct {
	Model
	PrintingID uint      `json:"printing_id" gorm:"index" schema:"printing_id" validate:"required"`
	Condition  string    `json:"condition" schema:"condition"`
	Price      float64   `json:"price" schema:"price" validate:"gte=0"`
	RecordedOn time.Time `json:"recorded_on" gorm:"index"`
}

func (PricePoint) TableName() string { return "price_history" }
