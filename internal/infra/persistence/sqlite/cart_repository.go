package sqlite

import (
	"context"

	"vibecart/internal/domain/entity"
	"vibecart/internal/domain/repository"
	"vibecart/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// cartRepository implements the repository.CartRepository interface.
type cartRepository struct {
	db *gorm.DB
}

// NewCartRepository is the constructor for cartRepository.
func NewCartRepository(db *gorm.DB) repository.CartRepository {
	return &cartRepository{
		db: db,
	}
}

// cartLineRow is the scan target for the cart/catalog join. Name and Price
// are pointers because the join is a LEFT JOIN and the product may be gone.
type cartLineRow struct {
	ID        uuid.UUID
	ProductID string
	Qty       int
	Name      *string
	Price     *float64
}

// ListCartLines retrieves every cart item joined against the catalog.
func (repo *cartRepository) ListCartLines(ctx context.Context) ([]*entity.CartLine, error) {
	var rows []*cartLineRow

	query := `
		SELECT c.id, c.product_id, c.qty, p.name, p.price
		FROM cart_items c
		LEFT JOIN products p ON p.id = c.product_id
	`

	if err := repo.db.WithContext(ctx).
		Raw(query).
		Scan(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list cart lines")
	}

	lines := make([]*entity.CartLine, 0, len(rows))
	for _, row := range rows {
		lines = append(lines, toCartLineDomain(row))
	}

	return lines, nil
}

// FindCartItemByID retrieves a single cart item by its line id.
func (repo *cartRepository) FindCartItemByID(ctx context.Context, id uuid.UUID) (*entity.CartItem, error) {
	var itemM model.CartItemModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&itemM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCartItemNotFound
		}

		return nil, errors.Wrap(err, "failed to find cart item by ID")
	}

	return toCartItemDomain(&itemM), nil
}

// FindCartItemByProduct retrieves the cart item holding the given product, if any.
func (repo *cartRepository) FindCartItemByProduct(ctx context.Context, productID string) (*entity.CartItem, error) {
	var itemM model.CartItemModel

	if err := repo.db.WithContext(ctx).
		Where("product_id = ?", productID).
		First(&itemM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCartItemNotFound
		}

		return nil, errors.Wrap(err, "failed to find cart item by product")
	}

	return toCartItemDomain(&itemM), nil
}

// CreateCartItem persists a new cart line.
func (repo *cartRepository) CreateCartItem(ctx context.Context, item *entity.CartItem) error {
	itemM := fromCartItemDomain(item)

	if err := repo.db.WithContext(ctx).Create(itemM).Error; err != nil {
		return errors.Wrap(err, "failed to create cart item")
	}

	return nil
}

// IncrementQty adds delta to an existing line's quantity.
func (repo *cartRepository) IncrementQty(ctx context.Context, id uuid.UUID, delta int) error {
	result := repo.db.WithContext(ctx).
		Model(&model.CartItemModel{}).
		Where("id = ?", id).
		Update("qty", gorm.Expr("qty + ?", delta))

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to increment cart item qty")
	}

	if result.RowsAffected == 0 {
		return repository.ErrCartItemNotFound
	}

	return nil
}

// UpdateQty replaces a line's quantity.
func (repo *cartRepository) UpdateQty(ctx context.Context, id uuid.UUID, qty int) error {
	result := repo.db.WithContext(ctx).
		Model(&model.CartItemModel{}).
		Where("id = ?", id).
		Update("qty", qty)

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update cart item qty")
	}

	if result.RowsAffected == 0 {
		return repository.ErrCartItemNotFound
	}

	return nil
}

// DeleteCartItem removes a single line.
func (repo *cartRepository) DeleteCartItem(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.CartItemModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete cart item")
	}

	if result.RowsAffected == 0 {
		return repository.ErrCartItemNotFound
	}

	return nil
}

// ClearCart removes all lines unconditionally.
func (repo *cartRepository) ClearCart(ctx context.Context) error {
	if err := repo.db.WithContext(ctx).
		Where("1 = 1").
		Delete(&model.CartItemModel{}).Error; err != nil {
		return errors.Wrap(err, "failed to clear cart")
	}

	return nil
}

// --- Mapper Functions ---

// toCartItemDomain converts a GORM CartItemModel to a domain CartItem entity.
func toCartItemDomain(data *model.CartItemModel) *entity.CartItem {
	if data == nil {
		return nil
	}

	return &entity.CartItem{
		ID:        data.ID,
		ProductID: data.ProductID,
		Qty:       data.Qty,
		CreatedAt: data.CreatedAt,
	}
}

// fromCartItemDomain converts a domain CartItem entity to a GORM CartItemModel.
func fromCartItemDomain(data *entity.CartItem) *model.CartItemModel {
	if data == nil {
		return nil
	}

	return &model.CartItemModel{
		ID:        data.ID,
		ProductID: data.ProductID,
		Qty:       data.Qty,
		CreatedAt: data.CreatedAt,
	}
}

// toCartLineDomain converts a joined row to a domain CartLine, treating a
// missing product as price 0 with no name.
func toCartLineDomain(row *cartLineRow) *entity.CartLine {
	if row == nil {
		return nil
	}

	var price float64
	if row.Price != nil {
		price = *row.Price
	}

	return &entity.CartLine{
		ID:        row.ID,
		ProductID: row.ProductID,
		Name:      row.Name,
		Price:     price,
		Qty:       row.Qty,
		Subtotal:  price * float64(row.Qty),
	}
}
