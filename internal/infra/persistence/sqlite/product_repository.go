package sqlite

import (
	"context"

	"vibecart/internal/domain/entity"
	"vibecart/internal/domain/repository"
	"vibecart/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// productRepository implements the repository.ProductRepository interface.
type productRepository struct {
	db *gorm.DB
}

// NewProductRepository is the constructor for productRepository.
func NewProductRepository(db *gorm.DB) repository.ProductRepository {
	return &productRepository{
		db: db,
	}
}

// ListProducts retrieves all products in store order.
func (repo *productRepository) ListProducts(ctx context.Context) ([]*entity.Product, error) {
	var productModels []*model.ProductModel

	if err := repo.db.WithContext(ctx).
		Find(&productModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	products := make([]*entity.Product, 0, len(productModels))
	for _, productM := range productModels {
		products = append(products, toProductDomain(productM))
	}

	return products, nil
}

// CountProducts returns the number of catalog rows.
func (repo *productRepository) CountProducts(ctx context.Context) (int64, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.ProductModel{}).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count products")
	}

	return count, nil
}

// CreateProducts inserts the given products. Used only by seeding.
func (repo *productRepository) CreateProducts(ctx context.Context, products []*entity.Product) error {
	if len(products) == 0 {
		return nil
	}

	productModels := make([]*model.ProductModel, 0, len(products))
	for _, product := range products {
		productModels = append(productModels, fromProductDomain(product))
	}

	if err := repo.db.WithContext(ctx).Create(&productModels).Error; err != nil {
		return errors.Wrap(err, "failed to create products")
	}

	return nil
}

// --- Mapper Functions ---

// toProductDomain converts a GORM ProductModel to a domain Product entity.
func toProductDomain(data *model.ProductModel) *entity.Product {
	if data == nil {
		return nil
	}

	return &entity.Product{
		ID:          data.ID,
		Name:        data.Name,
		Description: data.Description,
		Price:       data.Price,
		Image:       data.Image,
	}
}

// fromProductDomain converts a domain Product entity to a GORM ProductModel.
func fromProductDomain(data *entity.Product) *model.ProductModel {
	if data == nil {
		return nil
	}

	return &model.ProductModel{
		ID:          data.ID,
		Name:        data.Name,
		Description: data.Description,
		Price:       data.Price,
		Image:       data.Image,
	}
}
