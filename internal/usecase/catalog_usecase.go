// Package usecase defines the application's use case interfaces and DTOs.
package usecase

import (
	"context"

	"vibecart/internal/domain/entity"
)

// CatalogUsecase defines the interface for catalog browsing and seeding
type CatalogUsecase interface {
	// ListProducts retrieves the full catalog
	ListProducts(ctx context.Context) ([]*entity.Product, error)

	// EnsureSeeded inserts the default catalog when the store is empty.
	// Safe to call on every startup; never duplicates rows.
	EnsureSeeded(ctx context.Context) error
}
