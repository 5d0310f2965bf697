package usecase

import (
	"context"

	"exalum/internal/domain/entity"

	"github.com/google/uuid"
)

// CartUsecase defines the interface for cart operations. Every mutation
// persists the whole cart back to its device slot before returning.
type CartUsecase interface {
	// GetCart loads the cart for the given slot key. An absent slot yields
	// an empty cart rather than an error.
	GetCart(ctx context.Context, key string) (*entity.Cart, error)

	// AddItem puts one unit of the product into the cart, capped at the
	// product's available stock as known at add time.
	AddItem(ctx context.Context, key string, productID uuid.UUID) (*entity.Cart, error)

	// UpdateItemQuantity sets the quantity of an existing line. Any value
	// below 1 removes the line.
	UpdateItemQuantity(ctx context.Context, key string, productID uuid.UUID, quantity int) (*entity.Cart, error)

	// RemoveItem deletes the line for the given product.
	RemoveItem(ctx context.Context, key string, productID uuid.UUID) (*entity.Cart, error)
}
