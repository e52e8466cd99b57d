package server

import (
	"github.com/carloscedeno/cardstore"
	"github.com/carloscedeno/cardstore/postgres"
	"gorm.io/gorm"
)

// Migrations is the ordered schema history of the storefront database.
// postgres.Connect runs any entries whose Key is not yet recorded.
var Migrations = []postgres.Migration{
	{
		Key: "2026-01-05-create-games-and-sets",
		Executor: func(db *gorm.DB) error {
			return db.AutoMigrate(&cardstore.Game{}, &cardstore.CardSet{})
		},
	},
	{
		Key: "2026-01-05-create-cards-and-printings",
		Executor: func(db *gorm.DB) error {
			return db.AutoMigrate(&cardstore.Card{}, &cardstore.CardPrinting{})
		},
	},
	{
		Key: "2026-01-12-create-users",
		Executor: func(db *gorm.DB) error {
			return db.AutoMigrate(&cardstore.User{})
		},
	},
	{
		Key: "2026-01-12-create-products-and-price-history",
		Executor: func(db *gorm.DB) error {
			return db.AutoMigrate(&cardstore.Product{}, &cardstore.PricePoint{})
		},
	},
	{
		Key: "2026-01-19-create-collection-items",
		Executor: func(db *gorm.DB) error {
			return db.AutoMigrate(&cardstore.CollectionItem{})
		},
	},
	{
		Key: "2026-02-02-create-carts",
		Executor: func(db *gorm.DB) error {
			return db.AutoMigrate(&cardstore.Cart{}, &cardstore.CartItem{})
		},
	},
}
