package impl

import (
	"context"
	"log/slog"
	"time"

	"exalum/internal/domain/entity"
	domainerrors "exalum/internal/domain/errors"
	"exalum/internal/domain/repository"
	"exalum/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// cartService implements the CartUsecase interface.
type cartService struct {
	txManager   repository.TransactionManager
	productRepo repository.ProductRepository
	logger      *slog.Logger
}

// NewCartService is the constructor for cartService.
func NewCartService(
	txManager repository.TransactionManager,
	productRepo repository.ProductRepository,
	logger *slog.Logger,
) usecase.CartUsecase {
	return &cartService{
		txManager:   txManager,
		productRepo: productRepo,
		logger:      logger,
	}
}

// GetCart loads the cart for the given slot key, yielding an empty cart for
// an absent slot.
func (srv *cartService) GetCart(ctx context.Context, key string) (*entity.Cart, error) {
	var cart *entity.Cart

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		loaded, err := repoFactory.NewCartRepository().Load(ctx, key)
		if err != nil {
			if errors.Is(err, repository.ErrCartNotFound) {
				cart = entity.NewCart(key)

				return nil
			}

			return errors.Wrap(err, "failed to load cart")
		}
		cart = loaded

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get cart")
	}

	return cart, nil
}

// AddItem puts one unit of the product into the cart.
func (srv *cartService) AddItem(ctx context.Context, key string, productID uuid.UUID) (*entity.Cart, error) {
	product, err := srv.productRepo.FindByID(ctx, productID)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product")
	}

	available := product.AvailableStock()
	if available <= 0 {
		return nil, domainerrors.ErrProductOutOfStock
	}

	var cart *entity.Cart
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		cartRepo := repoFactory.NewCartRepository()

		loaded, err := cartRepo.Load(ctx, key)
		if err != nil {
			if !errors.Is(err, repository.ErrCartNotFound) {
				return errors.Wrap(err, "failed to load cart")
			}
			loaded = entity.NewCart(key)
		}

		// The cap is the stock known at add time; later stock changes do
		// not shrink existing lines.
		if !loaded.Add(product, available) {
			return domainerrors.ErrStockLimitReached
		}
		loaded.UpdatedAt = time.Now()

		if err := cartRepo.Save(ctx, loaded); err != nil {
			return errors.Wrap(err, "failed to save cart")
		}
		cart = loaded

		return nil
	})
	if err != nil {
		return nil, err
	}
	srv.logger.Debug("Cart item added", "key", key, "productID", productID)

	return cart, nil
}

// UpdateItemQuantity sets the quantity of an existing line; below 1 removes it.
func (srv *cartService) UpdateItemQuantity(ctx context.Context, key string, productID uuid.UUID, quantity int) (*entity.Cart, error) {
	return srv.mutate(ctx, key, func(cart *entity.Cart) error {
		if !cart.SetQuantity(productID, quantity) {
			return domainerrors.ErrCartItemNotFound
		}

		return nil
	})
}

// RemoveItem deletes the line for the given product.
func (srv *cartService) RemoveItem(ctx context.Context, key string, productID uuid.UUID) (*entity.Cart, error) {
	return srv.mutate(ctx, key, func(cart *entity.Cart) error {
		if !cart.Remove(productID) {
			return domainerrors.ErrCartItemNotFound
		}

		return nil
	})
}

// mutate loads the cart, applies fn and saves the result, all inside one
// transaction.
func (srv *cartService) mutate(ctx context.Context, key string, fn func(cart *entity.Cart) error) (*entity.Cart, error) {
	var cart *entity.Cart

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		cartRepo := repoFactory.NewCartRepository()

		loaded, err := cartRepo.Load(ctx, key)
		if err != nil {
			if errors.Is(err, repository.ErrCartNotFound) {
				return domainerrors.ErrCartItemNotFound
			}

			return errors.Wrap(err, "failed to load cart")
		}

		if err := fn(loaded); err != nil {
			return err
		}
		loaded.UpdatedAt = time.Now()

		if err := cartRepo.Save(ctx, loaded); err != nil {
			return errors.Wrap(err, "failed to save cart")
		}
		cart = loaded

		return nil
	})
	if err != nil {
		return nil, err
	}

	return cart, nil
}
