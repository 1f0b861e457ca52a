package repository

import (
	"context"

	"vibecart/internal/domain/entity"
	"vibecart/internal/errors"

	"github.com/google/uuid"
)

// ErrCartItemNotFound is returned when a cart line is not found.
var ErrCartItemNotFound = errors.New("cart item not found")

// CartRepository defines the interface for cart-line database operations.
type CartRepository interface {
	// ListCartLines retrieves every cart item joined against the catalog,
	// with per-line subtotals computed. A missing product yields a nil name
	// and zero price rather than an error.
	ListCartLines(ctx context.Context) ([]*entity.CartLine, error)

	// FindCartItemByID retrieves a single cart item by its line id.
	FindCartItemByID(ctx context.Context, id uuid.UUID) (*entity.CartItem, error)

	// FindCartItemByProduct retrieves the cart item holding the given product,
	// if any. There is at most one such line.
	FindCartItemByProduct(ctx context.Context, productID string) (*entity.CartItem, error)

	// CreateCartItem persists a new cart line.
	CreateCartItem(ctx context.Context, item *entity.CartItem) error

	// IncrementQty adds delta to an existing line's quantity.
	IncrementQty(ctx context.Context, id uuid.UUID, delta int) error

	// UpdateQty replaces a line's quantity.
	UpdateQty(ctx context.Context, id uuid.UUID, qty int) error

	// DeleteCartItem removes a single line.
	DeleteCartItem(ctx context.Context, id uuid.UUID) error

	// ClearCart removes all lines unconditionally. An empty cart is not an error.
	ClearCart(ctx context.Context) error
}
