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

type checkoutService struct {
	receiptRepo repository.ReceiptRepository
	txManager   repository.TransactionManager
}

// CheckoutServiceParams holds dependencies for CheckoutService, injected by Fx.
type CheckoutServiceParams struct {
	fx.In

	ReceiptRepo repository.ReceiptRepository
	TxManager   repository.TransactionManager
}

// NewCheckoutService creates a new checkout service instance
func NewCheckoutService(params CheckoutServiceParams) usecase.CheckoutUsecase {
	return &checkoutService{
		receiptRepo: params.ReceiptRepo,
		txManager:   params.TxManager,
	}
}

// Checkout snapshots the cart, records a receipt and clears the cart. The
// snapshot, the receipt write and the clear run inside one transaction so a
// line added concurrently is either billed or left in the cart, never lost.
func (s *checkoutService) Checkout(ctx context.Context, input *usecase.CheckoutInput) (*entity.Receipt, error) {
	if input == nil ||
		strings.TrimSpace(input.CustomerName) == "" ||
		strings.TrimSpace(input.CustomerEmail) == "" {
		return nil, domainerrors.ErrCustomerInfoRequired
	}

	var receipt *entity.Receipt

	err := s.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		cartRepo := repoFactory.NewCartRepository()
		receiptRepo := repoFactory.NewReceiptRepository()

		lines, err := cartRepo.ListCartLines(ctx)
		if err != nil {
			return errors.Wrap(err, "failed to snapshot cart")
		}

		if len(lines) == 0 {
			return domainerrors.ErrEmptyCart
		}

		// Re-derive the total from the lines rather than trusting any
		// previously computed value.
		var total float64
		items := make([]entity.ReceiptLine, 0, len(lines))
		for _, line := range lines {
			subtotal := line.Price * float64(line.Qty)
			total += subtotal
			items = append(items, entity.ReceiptLine{
				Name:     line.Name,
				Price:    line.Price,
				Qty:      line.Qty,
				Subtotal: subtotal,
			})
		}

		receipt = &entity.Receipt{
			ID:            uuid.New(),
			CustomerName:  input.CustomerName,
			CustomerEmail: input.CustomerEmail,
			Total:         total,
			CreatedAt:     time.Now().UTC(),
			Items:         items,
		}

		if err := receiptRepo.CreateReceipt(ctx, receipt); err != nil {
			return errors.Wrap(err, "failed to record receipt")
		}

		return cartRepo.ClearCart(ctx)
	})
	if err != nil {
		return nil, err
	}

	return receipt, nil
}

// ListReceipts retrieves all receipts, newest first
func (s *checkoutService) ListReceipts(ctx context.Context) ([]*entity.Receipt, error) {
	receipts, err := s.receiptRepo.ListReceipts(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list receipts")
	}

	return receipts, nil
}
