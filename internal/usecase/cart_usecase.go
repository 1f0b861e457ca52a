package usecase

import (
	"context"

	"vibecart/internal/domain/entity"

	"github.com/google/uuid"
)

// CartUsecase defines the interface for cart management use cases
type CartUsecase interface {
	// GetCart retrieves the cart joined against the catalog, with per-line
	// subtotals and the running total
	GetCart(ctx context.Context) (*entity.CartView, error)

	// AddToCart merges qty into the existing line for productID, or creates a
	// new line. The returned flag reports whether a new line was created.
	AddToCart(ctx context.Context, productID string, qty int) (*entity.CartItem, bool, error)

	// UpdateQuantity replaces the quantity of an existing line
	UpdateQuantity(ctx context.Context, id uuid.UUID, qty int) (*entity.CartItem, error)

	// RemoveFromCart deletes a single line
	RemoveFromCart(ctx context.Context, id uuid.UUID) error
}
