package model

import (
	"time"

	"github.com/google/uuid"
)

// ReceiptModel is the GORM-specific struct for the 'receipts' table.
// Items holds the JSON-encoded line snapshot; it is opaque to the store and
// decoded only when receipts are read back.
type ReceiptModel struct {
	ID            uuid.UUID `gorm:"type:text;primaryKey"`
	CustomerName  string    `gorm:"not null"`
	CustomerEmail string    `gorm:"not null"`
	Total         float64   `gorm:"not null"`
	CreatedAt     time.Time `gorm:"index"`
	Items         string    `gorm:"type:text;not null"`
}

// TableName explicitly sets the table name for GORM.
func (ReceiptModel) TableName() string {
	return "receipts"
}
