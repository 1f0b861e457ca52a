package entity

import (
	"time"

	"github.com/google/uuid"
)

// Receipt is an immutable snapshot of a completed checkout. It is created
// exactly once per successful checkout and never mutated or deleted.
type Receipt struct {
	ID            uuid.UUID     `json:"id"`
	CustomerName  string        `json:"customerName"`
	CustomerEmail string        `json:"customerEmail"`
	Total         float64       `json:"total"`     // Sum of line subtotals at checkout time.
	CreatedAt     time.Time     `json:"createdAt"` // Sole sort key for listing, descending.
	Items         []ReceiptLine `json:"items"`
}

// ReceiptLine is a captured-by-value copy of one cart line at checkout time,
// independent of later catalog or cart changes. The product id is deliberately
// not retained.
type ReceiptLine struct {
	Name     *string `json:"name"`
	Price    float64 `json:"price"`
	Qty      int     `json:"qty"`
	Subtotal float64 `json:"subtotal"`
}
