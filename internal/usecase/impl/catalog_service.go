// Package impl contains the concrete use case services.
package impl

import (
	"context"
	"log/slog"

	"vibecart/internal/domain/entity"
	"vibecart/internal/domain/repository"
	"vibecart/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// defaultCatalog is the fixed product set inserted on first startup.
var defaultCatalog = []*entity.Product{
	{ID: "p1", Name: "Vibe T-Shirt", Price: 399, Description: "Comfy cotton tee", Image: ""},
	{ID: "p2", Name: "Vibe Hoodie", Price: 1299, Description: "Warm hoodie", Image: ""},
	{ID: "p3", Name: "Vibe Sneakers", Price: 2499, Description: "Casual sneakers", Image: ""},
	{ID: "p4", Name: "Vibe Cap", Price: 299, Description: "Stylish cap", Image: ""},
	{ID: "p5", Name: "Vibe Backpack", Price: 1599, Description: "Daily backpack", Image: ""},
}

type catalogService struct {
	productRepo repository.ProductRepository
	logger      *slog.Logger
}

// CatalogServiceParams holds dependencies for CatalogService, injected by Fx.
type CatalogServiceParams struct {
	fx.In

	ProductRepo repository.ProductRepository
	Logger      *slog.Logger
}

// NewCatalogService creates a new catalog service instance
func NewCatalogService(params CatalogServiceParams) usecase.CatalogUsecase {
	return &catalogService{
		productRepo: params.ProductRepo,
		logger:      params.Logger,
	}
}

// ListProducts retrieves the full catalog
func (s *catalogService) ListProducts(ctx context.Context) ([]*entity.Product, error) {
	products, err := s.productRepo.ListProducts(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	return products, nil
}

// EnsureSeeded inserts the default catalog when the store is empty
func (s *catalogService) EnsureSeeded(ctx context.Context) error {
	count, err := s.productRepo.CountProducts(ctx)
	if err != nil {
		return errors.Wrap(err, "failed to count products")
	}

	if count > 0 {
		return nil
	}

	if err := s.productRepo.CreateProducts(ctx, defaultCatalog); err != nil {
		return errors.Wrap(err, "failed to seed products")
	}

	s.logger.Info("Seeded products", slog.Int("count", len(defaultCatalog)))

	return nil
}
