package repository

import (
	"context"

	"vibecart/internal/domain/entity"
)

// ReceiptRepository defines the interface for the append-only receipt archive.
type ReceiptRepository interface {
	// CreateReceipt persists one immutable receipt. The line snapshot is
	// stored as an opaque serialized blob, not a live reference.
	CreateReceipt(ctx context.Context, receipt *entity.Receipt) error

	// ListReceipts retrieves all receipts ordered by creation time descending,
	// with each stored snapshot decoded back into structured lines.
	ListReceipts(ctx context.Context) ([]*entity.Receipt, error)
}
