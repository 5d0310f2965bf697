// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"exalum/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrProductNotFound is a domain-specific error returned when a product is not found.
var ErrProductNotFound = errors.New("product not found")

// ProductRepository defines the read operations for the product catalog.
// The catalog is read-only from this service's point of view: products and
// stock are maintained by the back-office import, not by these flows.
type ProductRepository interface {
	// List retrieves all products joined with their stock records, ordered
	// by description.
	List(ctx context.Context) ([]*entity.Product, error)

	// FindByID retrieves a single product with its stock record.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error)
}
