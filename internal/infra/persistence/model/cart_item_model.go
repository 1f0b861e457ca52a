package model

import (
	"time"

	"github.com/google/uuid"
)

// CartItemModel is the GORM-specific struct for the 'cart_items' table.
// ProductID is a weak reference; no foreign-key constraint is declared, so a
// dangling reference degrades to a zero-priced line at read time.
type CartItemModel struct {
	ID        uuid.UUID `gorm:"type:text;primaryKey"`
	ProductID string    `gorm:"not null;index"`
	Qty       int       `gorm:"not null"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (CartItemModel) TableName() string {
	return "cart_items"
}
