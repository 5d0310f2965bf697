package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"exalum/internal/domain/entity"
	domainerrors "exalum/internal/domain/errors"
	"exalum/internal/domain/repository"
	"exalum/internal/usecase"

	"github.com/pkg/errors"
)

// checkoutService implements the CheckoutUsecase interface.
type checkoutService struct {
	txManager repository.TransactionManager
	logger    *slog.Logger
}

// NewCheckoutService is the constructor for checkoutService.
func NewCheckoutService(
	txManager repository.TransactionManager,
	logger *slog.Logger,
) usecase.CheckoutUsecase {
	return &checkoutService{
		txManager: txManager,
		logger:    logger,
	}
}

// PlaceOrder turns the cart into an order. The customer upsert, order
// insert, line item insert and cart clear either all happen or none do.
func (srv *checkoutService) PlaceOrder(ctx context.Context, cartKey string, input *usecase.CheckoutInput) (*usecase.CheckoutOutput, error) {
	name := strings.TrimSpace(input.Name)
	phone := strings.TrimSpace(input.Phone)
	if name == "" || phone == "" {
		return nil, domainerrors.ErrCustomerDataMissing
	}

	var output *usecase.CheckoutOutput

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		cartRepo := repoFactory.NewCartRepository()

		cart, err := cartRepo.Load(ctx, cartKey)
		if err != nil {
			if errors.Is(err, repository.ErrCartNotFound) {
				return domainerrors.ErrEmptyCart
			}

			return errors.Wrap(err, "failed to load cart")
		}
		if cart.IsEmpty() {
			return domainerrors.ErrEmptyCart
		}

		customer, err := srv.upsertCustomer(ctx, repoFactory, name, phone)
		if err != nil {
			return err
		}

		now := time.Now()
		order := &entity.Order{
			Number:     entity.NewOrderNumber(now),
			CustomerID: customer.ID,
			Status:     entity.OrderStatusPending,
			Total:      cart.Total(),
			Notes:      strings.TrimSpace(input.Notes),
		}

		orderRepo := repoFactory.NewOrderRepository()
		if err := orderRepo.Create(ctx, order); err != nil {
			return err
		}

		items := make([]entity.OrderLineItem, 0, len(cart.Items))
		for _, line := range cart.Items {
			items = append(items, entity.OrderLineItem{
				OrderID:   order.ID,
				ProductID: line.ProductID,
				Quantity:  line.Quantity,
				UnitPrice: line.UnitPrice,
				Subtotal:  line.Subtotal(),
			})
		}
		if err := orderRepo.CreateLineItems(ctx, items); err != nil {
			return err
		}

		if err := cartRepo.Delete(ctx, cartKey); err != nil {
			return errors.Wrap(err, "failed to clear cart")
		}

		output = &usecase.CheckoutOutput{
			OrderNumber: order.Number,
			Total:       order.Total,
		}

		return nil
	})
	if err != nil {
		srv.logger.Error("Checkout failed", "cartKey", cartKey, "error", err)

		return nil, err
	}
	srv.logger.Info("Order placed", "number", output.OrderNumber, "total", output.Total)

	return output, nil
}

// upsertCustomer finds the customer by the tax id derived from the phone, or
// creates one when absent.
func (srv *checkoutService) upsertCustomer(ctx context.Context, repoFactory repository.RepositoryFactory, name, phone string) (*entity.Customer, error) {
	customerRepo := repoFactory.NewCustomerRepository()
	taxID := entity.DeriveTaxID(phone)

	customer, err := customerRepo.FindByTaxID(ctx, taxID)
	if err == nil {
		return customer, nil
	}
	if !errors.Is(err, repository.ErrCustomerNotFound) {
		return nil, errors.Wrap(err, "failed to find customer")
	}

	customer = &entity.Customer{
		Name:  name,
		Phone: phone,
		TaxID: taxID,
	}
	if err := customerRepo.Create(ctx, customer); err != nil {
		return nil, err
	}

	return customer, nil
}
