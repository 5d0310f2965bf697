package repository

import (
	"context"
	"errors"

	"exalum/internal/domain/entity"
)

// ErrOrderNotFound is returned when no order matches the lookup key.
var ErrOrderNotFound = errors.New("order not found")

// OrderRepository defines the operations for order persistence.
type OrderRepository interface {
	// Create persists a new order row and fills in the generated id. Line
	// items are inserted separately via CreateLineItems.
	Create(ctx context.Context, order *entity.Order) error

	// CreateLineItems batch-inserts the line items of an order.
	CreateLineItems(ctx context.Context, items []entity.OrderLineItem) error

	// FindByNumber retrieves an order, with its line items, by the
	// human-facing order number.
	FindByNumber(ctx context.Context, number string) (*entity.Order, error)
}
