package sqlite

import (
	"context"
	"encoding/json"

	"vibecart/internal/domain/entity"
	"vibecart/internal/domain/repository"
	"vibecart/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// receiptRepository implements the repository.ReceiptRepository interface.
type receiptRepository struct {
	db *gorm.DB
}

// NewReceiptRepository is the constructor for receiptRepository.
func NewReceiptRepository(db *gorm.DB) repository.ReceiptRepository {
	return &receiptRepository{
		db: db,
	}
}

// CreateReceipt persists one immutable receipt with its line snapshot
// serialized to a JSON text column.
func (repo *receiptRepository) CreateReceipt(ctx context.Context, receipt *entity.Receipt) error {
	receiptM, err := fromReceiptDomain(receipt)
	if err != nil {
		return err
	}

	if err := repo.db.WithContext(ctx).Create(receiptM).Error; err != nil {
		return errors.Wrap(err, "failed to create receipt")
	}

	return nil
}

// ListReceipts retrieves all receipts ordered by creation time descending.
func (repo *receiptRepository) ListReceipts(ctx context.Context) ([]*entity.Receipt, error) {
	var receiptModels []*model.ReceiptModel

	if err := repo.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&receiptModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list receipts")
	}

	receipts := make([]*entity.Receipt, 0, len(receiptModels))
	for _, receiptM := range receiptModels {
		receipt, err := toReceiptDomain(receiptM)
		if err != nil {
			return nil, err
		}
		receipts = append(receipts, receipt)
	}

	return receipts, nil
}

// --- Mapper Functions ---

// toReceiptDomain converts a GORM ReceiptModel to a domain Receipt entity,
// decoding the stored line snapshot.
func toReceiptDomain(data *model.ReceiptModel) (*entity.Receipt, error) {
	if data == nil {
		return nil, nil
	}

	var items []entity.ReceiptLine
	if err := json.Unmarshal([]byte(data.Items), &items); err != nil {
		return nil, errors.Wrap(err, "failed to decode receipt item snapshot")
	}

	return &entity.Receipt{
		ID:            data.ID,
		CustomerName:  data.CustomerName,
		CustomerEmail: data.CustomerEmail,
		Total:         data.Total,
		CreatedAt:     data.CreatedAt,
		Items:         items,
	}, nil
}

// fromReceiptDomain converts a domain Receipt entity to a GORM ReceiptModel,
// encoding the line snapshot.
func fromReceiptDomain(data *entity.Receipt) (*model.ReceiptModel, error) {
	if data == nil {
		return nil, nil
	}

	items, err := json.Marshal(data.Items)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode receipt item snapshot")
	}

	return &model.ReceiptModel{
		ID:            data.ID,
		CustomerName:  data.CustomerName,
		CustomerEmail: data.CustomerEmail,
		Total:         data.Total,
		CreatedAt:     data.CreatedAt,
		Items:         string(items),
	}, nil
}
