// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"exalum/internal/domain/entity"
	"exalum/internal/domain/repository"
	"exalum/internal/infra/persistence/model"

	"github.com/google/uuid"
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

// List retrieves the whole catalog with stock records, ordered by description.
func (repo *productRepository) List(ctx context.Context) ([]*entity.Product, error) {
	var productModels []*model.ProductModel

	if err := repo.db.WithContext(ctx).
		Preload("Stock").
		Order("descricao ASC").
		Find(&productModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	products := make([]*entity.Product, 0, len(productModels))
	for _, productM := range productModels {
		products = append(products, toProductDomain(productM))
	}

	return products, nil
}

// FindByID retrieves a single product with its stock record.
func (repo *productRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	var productM model.ProductModel

	if err := repo.db.WithContext(ctx).
		Preload("Stock").
		Where("id = ?", id).
		First(&productM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product by ID")
	}

	return toProductDomain(&productM), nil
}

// --- Mapper Functions ---

// toProductDomain converts a GORM ProductModel to a domain Product entity.
func toProductDomain(data *model.ProductModel) *entity.Product {
	if data == nil {
		return nil
	}

	product := &entity.Product{
		ID:          data.ID,
		Code:        data.Code,
		Description: data.Description,
		Type:        data.Type,
		Alloy:       data.Alloy,
		Color:       data.Color,
		SalePrice:   data.SalePrice,
		Weight:      data.Weight,
		Unit:        data.Unit,
		PhotoURL:    data.PhotoURL,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
	if data.Stock != nil {
		product.Stock = &entity.StockLevel{
			ProductID: data.Stock.ProductID,
			Quantity:  data.Stock.Quantity,
			UpdatedAt: data.Stock.UpdatedAt,
		}
	}

	return product
}
