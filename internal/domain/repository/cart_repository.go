package repository

import (
	"context"
	"errors"

	"exalum/internal/domain/entity"
)

// ErrCartNotFound is returned when no cart is stored under the given key.
var ErrCartNotFound = errors.New("cart not found")

// CartRepository persists carts by their device slot key. Each key holds a
// single serialized cart which is overwritten on every mutation, mirroring
// the one-slot-per-device persistence of the storefront.
type CartRepository interface {
	// Load retrieves the cart stored under the given key.
	Load(ctx context.Context, key string) (*entity.Cart, error)

	// Save overwrites the cart stored under its key, creating the slot on
	// first write.
	Save(ctx context.Context, cart *entity.Cart) error

	// Delete removes the slot entirely. Deleting an absent slot is not an error.
	Delete(ctx context.Context, key string) error
}
