package cardstore

// A Cart holds a user's pending purchase.
// One cart exists per user; retrieval lazily creates it.
type Cart struct {
	Model
	UserID uint `json:"user_id" gorm:"uniqueIndex"`

	Items []CartItem `json:"items,omitempty"`
}

func (Cart) TableName() string { return "carts" }

// A CartItem is one product line in a Cart.
// Price is captured at add time; a nil price totals as zero at checkout.
type CartItem struct {
	Model
	CartID    uint     `json:"cart_id" gorm:"index"`
	ProductID uint     `json:"product_id"`
	Quantity  int      `json:"quantity"`
	Price     *float64 `json:"price"`
}

func (CartItem) TableName() string { return "cart_items" }

// An OrderLine is the shape create_order_atomic expects for each
// checked-out cart item. Orders themselves are written by that
// externally owned routine, never by this application.
type OrderLine struct {
	ProductID uint    `json:"product_id"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
}
