// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"encoding/json"

	"exalum/internal/domain/entity"
	domainerrors "exalum/internal/domain/errors"
	"exalum/internal/domain/repository"
	"exalum/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
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

// Load retrieves the cart stored under the given slot key.
func (repo *cartRepository) Load(ctx context.Context, key string) (*entity.Cart, error) {
	var cartM model.CartModel

	if err := repo.db.WithContext(ctx).
		Where("chave = ?", key).
		First(&cartM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCartNotFound
		}

		return nil, errors.Wrap(err, "failed to load cart")
	}

	return toCartDomain(&cartM)
}

// Save overwrites the cart stored under its key, creating the slot on first write.
func (repo *cartRepository) Save(ctx context.Context, cart *entity.Cart) error {
	cartM, err := fromCartDomain(cart)
	if err != nil {
		return errors.Wrap(err, "failed to serialize cart")
	}

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "chave"}},
			DoUpdates: clause.AssignmentColumns([]string{"itens", "updated_at"}),
		}).
		Create(cartM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required cart information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to save cart")
	}

	cart.UpdatedAt = cartM.UpdatedAt

	return nil
}

// Delete removes the slot entirely. Deleting an absent slot is not an error.
func (repo *cartRepository) Delete(ctx context.Context, key string) error {
	if err := repo.db.WithContext(ctx).
		Where("chave = ?", key).
		Delete(&model.CartModel{}).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete cart")
	}

	return nil
}

// --- Mapper Functions ---

// toCartDomain converts a GORM CartModel to a domain Cart entity.
func toCartDomain(data *model.CartModel) (*entity.Cart, error) {
	if data == nil {
		return nil, nil
	}

	var items []entity.CartItem
	if len(data.Items) > 0 {
		if err := json.Unmarshal(data.Items, &items); err != nil {
			return nil, errors.Wrap(err, "failed to decode cart items")
		}
	}

	return &entity.Cart{
		Key:       data.Key,
		Items:     items,
		UpdatedAt: data.UpdatedAt,
	}, nil
}

// fromCartDomain converts a domain Cart entity to a GORM CartModel.
func fromCartDomain(data *entity.Cart) (*model.CartModel, error) {
	if data == nil {
		return nil, nil
	}

	items := data.Items
	if items == nil {
		items = []entity.CartItem{}
	}
	raw, err := json.Marshal(items)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode cart items")
	}

	return &model.CartModel{
		Key:   data.Key,
		Items: raw,
	}, nil
}
