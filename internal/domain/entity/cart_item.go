package entity

import (
	"time"

	"github.com/google/uuid"
)

// CartItem represents one line of the single shared cart. At most one line
// exists per product; repeated adds merge into the existing line.
type CartItem struct {
	ID        uuid.UUID `json:"id"`        // Line identifier assigned at creation.
	ProductID string    `json:"productId"` // Weak reference to a Product; not enforced by the store.
	Qty       int       `json:"qty"`       // Always >= 1; writes violating this are rejected.
	CreatedAt time.Time `json:"createdAt"` // Informational only, not used for ordering.
}

// CartLine is a cart item joined against the catalog for display. A dangling
// product reference yields a nil Name and a zero Price.
type CartLine struct {
	ID        uuid.UUID `json:"id"`
	ProductID string    `json:"productId"`
	Name      *string   `json:"name"`
	Price     float64   `json:"price"`
	Qty       int       `json:"qty"`
	Subtotal  float64   `json:"subtotal"` // Price * Qty.
}

// CartView is the full cart as returned to clients.
type CartView struct {
	Items []*CartLine `json:"items"`
	Total float64     `json:"total"` // Sum of all line subtotals.
}
