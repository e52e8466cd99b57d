package cardstore

import (
	"time"

	"gorm.io/gorm"
)

// A Model is the essential data points for primary ID-based models in a cardstore application,
// indicating when a record was created, last updated and soft deleted.
type Model struct {
	ID        uint           `json:"id" gorm:"primarykey"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`
}

// Exists asserts whether the record is persisted to the database.
func (m Model) Exists() bool { return !m.CreatedAt.IsZero() }
