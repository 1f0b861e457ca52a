// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"vibecart/internal/domain/entity"
)

// ProductRepository defines catalog persistence. The catalog is read-only
// after seeding, so there are no update or delete operations.
type ProductRepository interface {
	// ListProducts retrieves all products in store order.
	ListProducts(ctx context.Context) ([]*entity.Product, error)

	// CountProducts returns the number of catalog rows.
	CountProducts(ctx context.Context) (int64, error)

	// CreateProducts inserts the given products. Used only by seeding.
	CreateProducts(ctx context.Context, products []*entity.Product) error
}
