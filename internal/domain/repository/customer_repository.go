package repository

import (
	"context"
	"errors"

	"exalum/internal/domain/entity"
)

// ErrCustomerNotFound is returned when no customer matches the lookup key.
var ErrCustomerNotFound = errors.New("customer not found")

// CustomerRepository defines the operations for customer persistence. The
// checkout flow upserts customers by their derived tax id.
type CustomerRepository interface {
	// FindByTaxID retrieves a customer by the digits-only key derived from
	// the phone field.
	FindByTaxID(ctx context.Context, taxID string) (*entity.Customer, error)

	// Create persists a new customer and fills in the generated id.
	Create(ctx context.Context, customer *entity.Customer) error
}
