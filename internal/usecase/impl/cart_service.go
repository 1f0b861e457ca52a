package impl

import (
	"context"
	"strings"
	"time"

	"vibecart/internal/domain/entity"
	domainerrors "vibecart/internal/domain/errors"
	"vibecart/internal/domain/repository"
	"vibecart/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type cartService struct {
	cartRepo  repository.CartRepository
	txManager repository.TransactionManager
}

// CartServiceParams holds dependencies for CartService, injected by Fx.
type CartServiceParams struct {
	fx.In

	CartRepo  repository.CartRepository
	TxManager repository.TransactionManager
}

// NewCartService creates a new cart service instance
func NewCartService(params CartServiceParams) usecase.CartUsecase {
	return &cartService{
		cartRepo:  params.CartRepo,
		txManager: params.TxManager,
	}
}

// GetCart retrieves the cart joined against the catalog
func (s *cartService) GetCart(ctx context.Context) (*entity.CartView, error) {
	lines, err := s.cartRepo.ListCartLines(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list cart lines")
	}

	var total float64
	for _, line := range lines {
		total += line.Subtotal
	}

	return &entity.CartView{
		Items: lines,
		Total: total,
	}, nil
}

// AddToCart merges qty into the existing line for productID, or creates a new
// line. The find-or-create sequence runs inside one transaction so that two
// concurrent adds for the same product cannot produce two lines or lose an
// increment.
func (s *cartService) AddToCart(ctx context.Context, productID string, qty int) (*entity.CartItem, bool, error) {
	if strings.TrimSpace(productID) == "" {
		return nil, false, domainerrors.ErrProductIDRequired
	}
	if qty < 1 {
		return nil, false, domainerrors.ErrProductIDRequired
	}

	var (
		item    *entity.CartItem
		created bool
	)

	err := s.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		cartRepo := repoFactory.NewCartRepository()

		existing, err := cartRepo.FindCartItemByProduct(ctx, productID)
		if err != nil && !errors.Is(err, repository.ErrCartItemNotFound) {
			return errors.Wrap(err, "failed to find cart item by product")
		}

		if existing != nil {
			if err := cartRepo.IncrementQty(ctx, existing.ID, qty); err != nil {
				return errors.Wrap(err, "failed to increment cart item qty")
			}

			updated, err := cartRepo.FindCartItemByID(ctx, existing.ID)
			if err != nil {
				return errors.Wrap(err, "failed to reload cart item")
			}
			item = updated

			return nil
		}

		item = &entity.CartItem{
			ID:        uuid.New(),
			ProductID: productID,
			Qty:       qty,
			CreatedAt: time.Now().UTC(),
		}
		created = true

		return cartRepo.CreateCartItem(ctx, item)
	})
	if err != nil {
		return nil, false, err
	}

	return item, created, nil
}

// UpdateQuantity replaces the quantity of an existing line
func (s *cartService) UpdateQuantity(ctx context.Context, id uuid.UUID, qty int) (*entity.CartItem, error) {
	if qty < 1 {
		return nil, domainerrors.ErrInvalidQuantity
	}

	if err := s.cartRepo.UpdateQty(ctx, id, qty); err != nil {
		if errors.Is(err, repository.ErrCartItemNotFound) {
			return nil, domainerrors.ErrCartItemNotFound
		}

		return nil, errors.Wrap(err, "failed to update cart item qty")
	}

	item, err := s.cartRepo.FindCartItemByID(ctx, id)
	if err != nil {
		return nil, errors.Wrap(err, "failed to reload cart item")
	}

	return item, nil
}

// RemoveFromCart deletes a single line
func (s *cartService) RemoveFromCart(ctx context.Context, id uuid.UUID) error {
	if err := s.cartRepo.DeleteCartItem(ctx, id); err != nil {
		if errors.Is(err, repository.ErrCartItemNotFound) {
			return domainerrors.ErrCartItemNotFound
		}

		return errors.Wrap(err, "failed to delete cart item")
	}

	return nil
}
