package usecase

import (
	"context"

	"vibecart/internal/domain/entity"
)

// CheckoutInput carries the customer details supplied at checkout.
type CheckoutInput struct {
	CustomerName  string `json:"customerName"`
	CustomerEmail string `json:"customerEmail"`
}

// CheckoutUsecase defines the interface for checkout and receipt history
type CheckoutUsecase interface {
	// Checkout validates the customer info, snapshots the cart, records a
	// receipt and clears the cart as a single unit of work, returning the
	// full receipt.
	Checkout(ctx context.Context, input *CheckoutInput) (*entity.Receipt, error)

	// ListReceipts retrieves all receipts, newest first, with line snapshots
	// expanded.
	ListReceipts(ctx context.Context) ([]*entity.Receipt, error)
}
