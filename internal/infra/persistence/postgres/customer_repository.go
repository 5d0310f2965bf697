// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"exalum/internal/domain/entity"
	domainerrors "exalum/internal/domain/errors"
	"exalum/internal/domain/repository"
	"exalum/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// customerRepository implements the repository.CustomerRepository interface.
type customerRepository struct {
	db *gorm.DB
}

// NewCustomerRepository is the constructor for customerRepository.
func NewCustomerRepository(db *gorm.DB) repository.CustomerRepository {
	return &customerRepository{
		db: db,
	}
}

// FindByTaxID retrieves a customer by the digits-only key derived from the phone.
func (repo *customerRepository) FindByTaxID(ctx context.Context, taxID string) (*entity.Customer, error) {
	var customerM model.CustomerModel

	if err := repo.db.WithContext(ctx).
		Where("cpf_cnpj = ?", taxID).
		First(&customerM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCustomerNotFound
		}

		return nil, errors.Wrap(err, "failed to find customer by tax ID")
	}

	return toCustomerDomain(&customerM), nil
}

// Create persists a new customer.
func (repo *customerRepository) Create(ctx context.Context, customer *entity.Customer) error {
	customerM := fromCustomerDomain(customer)

	if err := repo.db.WithContext(ctx).Create(customerM).Error; err != nil {
		// Convert PostgreSQL errors to domain errors
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrOrderCreationFailed.WrapMessage("customer tax ID already registered")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrOrderCreationFailed.WrapMessage("missing required customer information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create customer")
	}

	// Update the entity with generated values
	customer.ID = customerM.ID
	customer.CreatedAt = customerM.CreatedAt
	customer.UpdatedAt = customerM.UpdatedAt

	return nil
}

// --- Mapper Functions ---

// toCustomerDomain converts a GORM CustomerModel to a domain Customer entity.
func toCustomerDomain(data *model.CustomerModel) *entity.Customer {
	if data == nil {
		return nil
	}

	return &entity.Customer{
		ID:        data.ID,
		Name:      data.Name,
		Phone:     data.Phone,
		TaxID:     data.TaxID,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

// fromCustomerDomain converts a domain Customer entity to a GORM CustomerModel.
func fromCustomerDomain(data *entity.Customer) *model.CustomerModel {
	if data == nil {
		return nil
	}

	return &model.CustomerModel{
		ID:        data.ID,
		Name:      data.Name,
		Phone:     data.Phone,
		TaxID:     data.TaxID,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}
