package impl

import (
	"context"
	"testing"

	"exalum/internal/domain/entity"
	domainerrors "exalum/internal/domain/errors"
	"exalum/internal/domain/repository"
	mockRepo "exalum/internal/mocks/repository"
	"exalum/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// checkoutFixtures holds all test dependencies for checkout service tests.
type checkoutFixtures struct {
	service   usecase.CheckoutUsecase
	txManager *mockRepo.MockTransactionManager
}

func createTestCheckoutService(t *testing.T) checkoutFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)

	service := NewCheckoutService(txManager, newDiscardLogger())

	return checkoutFixtures{
		service:   service,
		txManager: txManager,
	}
}

func filledCart(key string) *entity.Cart {
	return &entity.Cart{
		Key: key,
		Items: []entity.CartItem{
			{ProductID: uuid.New(), Description: "Perfil 30x30", Quantity: 2, UnitPrice: 100, Weight: 0.5},
			{ProductID: uuid.New(), Description: "Chapa lisa", Quantity: 1, UnitPrice: 50.5, Weight: 2},
		},
	}
}

func TestCheckoutService_PlaceOrder_Success(t *testing.T) {
	fx := createTestCheckoutService(t)

	ctx := context.Background()
	cartKey := "slot-1"
	cart := filledCart(cartKey)
	input := &usecase.CheckoutInput{
		Name:  "  Maria Silva  ",
		Phone: "(11) 98765-4321",
		Notes: "Entregar pela manhã",
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockCartRepo := mockRepo.NewMockCartRepository(t)
			mockCustomerRepo := mockRepo.NewMockCustomerRepository(t)
			mockOrderRepo := mockRepo.NewMockOrderRepository(t)

			mockFactory.EXPECT().NewCartRepository().Return(mockCartRepo)
			mockFactory.EXPECT().NewCustomerRepository().Return(mockCustomerRepo)
			mockFactory.EXPECT().NewOrderRepository().Return(mockOrderRepo)

			mockCartRepo.EXPECT().Load(ctx, cartKey).Return(cart, nil)

			mockCustomerRepo.EXPECT().
				FindByTaxID(ctx, "11987654321").
				Return(nil, repository.ErrCustomerNotFound)
			mockCustomerRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.Customer")).
				Run(func(ctx context.Context, customer *entity.Customer) {
					assert.Equal(t, "Maria Silva", customer.Name)
					assert.Equal(t, "(11) 98765-4321", customer.Phone)
					assert.Equal(t, "11987654321", customer.TaxID)
					customer.ID = uuid.New()
				}).
				Return(nil)

			mockOrderRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.Order")).
				Run(func(ctx context.Context, order *entity.Order) {
					assert.Regexp(t, `^PED-\d+$`, order.Number)
					assert.Equal(t, entity.OrderStatusPending, order.Status)
					assert.InDelta(t, 250.5, order.Total, 0.001)
					assert.Equal(t, "Entregar pela manhã", order.Notes)
					order.ID = uuid.New()
				}).
				Return(nil)
			mockOrderRepo.EXPECT().
				CreateLineItems(ctx, mock.AnythingOfType("[]entity.OrderLineItem")).
				Run(func(ctx context.Context, items []entity.OrderLineItem) {
					require.Len(t, items, 2)
					assert.Equal(t, 2, items[0].Quantity)
					assert.InDelta(t, 200, items[0].Subtotal, 0.001)
					assert.InDelta(t, 50.5, items[1].Subtotal, 0.001)
				}).
				Return(nil)

			mockCartRepo.EXPECT().Delete(ctx, cartKey).Return(nil)

			return fn(mockFactory)
		})

	output, err := fx.service.PlaceOrder(ctx, cartKey, input)

	require.NoError(t, err)
	require.NotNil(t, output)
	assert.Regexp(t, `^PED-\d+$`, output.OrderNumber)
	assert.InDelta(t, 250.5, output.Total, 0.001)
}

func TestCheckoutService_PlaceOrder_ExistingCustomerReused(t *testing.T) {
	fx := createTestCheckoutService(t)

	ctx := context.Background()
	cartKey := "slot-1"
	cart := filledCart(cartKey)
	existing := &entity.Customer{
		ID:    uuid.New(),
		Name:  "Maria Silva",
		TaxID: "11987654321",
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockCartRepo := mockRepo.NewMockCartRepository(t)
			mockCustomerRepo := mockRepo.NewMockCustomerRepository(t)
			mockOrderRepo := mockRepo.NewMockOrderRepository(t)

			mockFactory.EXPECT().NewCartRepository().Return(mockCartRepo)
			mockFactory.EXPECT().NewCustomerRepository().Return(mockCustomerRepo)
			mockFactory.EXPECT().NewOrderRepository().Return(mockOrderRepo)

			mockCartRepo.EXPECT().Load(ctx, cartKey).Return(cart, nil)

			mockCustomerRepo.EXPECT().FindByTaxID(ctx, "11987654321").Return(existing, nil)

			mockOrderRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.Order")).
				Run(func(ctx context.Context, order *entity.Order) {
					assert.Equal(t, existing.ID, order.CustomerID)
					order.ID = uuid.New()
				}).
				Return(nil)
			mockOrderRepo.EXPECT().
				CreateLineItems(ctx, mock.AnythingOfType("[]entity.OrderLineItem")).
				Return(nil)

			mockCartRepo.EXPECT().Delete(ctx, cartKey).Return(nil)

			return fn(mockFactory)
		})

	output, err := fx.service.PlaceOrder(ctx, cartKey, &usecase.CheckoutInput{
		Name:  "Maria Silva",
		Phone: "11 98765-4321",
	})

	require.NoError(t, err)
	assert.NotNil(t, output)
}

func TestCheckoutService_PlaceOrder_MissingCustomerData(t *testing.T) {
	fx := createTestCheckoutService(t)

	ctx := context.Background()

	tests := []struct {
		name  string
		input *usecase.CheckoutInput
	}{
		{name: "empty name", input: &usecase.CheckoutInput{Name: "   ", Phone: "11987654321"}},
		{name: "empty phone", input: &usecase.CheckoutInput{Name: "Maria", Phone: ""}},
		{name: "both empty", input: &usecase.CheckoutInput{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			output, err := fx.service.PlaceOrder(ctx, "slot-1", tt.input)

			assert.Nil(t, output)
			assert.True(t, errors.Is(err, domainerrors.ErrCustomerDataMissing))
		})
	}
}

func TestCheckoutService_PlaceOrder_EmptyCart(t *testing.T) {
	fx := createTestCheckoutService(t)

	ctx := context.Background()
	cartKey := "slot-1"

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockCartRepo := mockRepo.NewMockCartRepository(t)

			mockFactory.EXPECT().NewCartRepository().Return(mockCartRepo)
			mockCartRepo.EXPECT().Load(ctx, cartKey).Return(entity.NewCart(cartKey), nil)

			return fn(mockFactory)
		})

	output, err := fx.service.PlaceOrder(ctx, cartKey, &usecase.CheckoutInput{
		Name:  "Maria",
		Phone: "11987654321",
	})

	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrEmptyCart))
}

func TestCheckoutService_PlaceOrder_AbsentSlotTreatedAsEmpty(t *testing.T) {
	fx := createTestCheckoutService(t)

	ctx := context.Background()
	cartKey := "slot-unknown"

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockCartRepo := mockRepo.NewMockCartRepository(t)

			mockFactory.EXPECT().NewCartRepository().Return(mockCartRepo)
			mockCartRepo.EXPECT().Load(ctx, cartKey).Return(nil, repository.ErrCartNotFound)

			return fn(mockFactory)
		})

	output, err := fx.service.PlaceOrder(ctx, cartKey, &usecase.CheckoutInput{
		Name:  "Maria",
		Phone: "11987654321",
	})

	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrEmptyCart))
}

func TestCheckoutService_PlaceOrder_OrderInsertFailureAborts(t *testing.T) {
	fx := createTestCheckoutService(t)

	ctx := context.Background()
	cartKey := "slot-1"
	cart := filledCart(cartKey)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockCartRepo := mockRepo.NewMockCartRepository(t)
			mockCustomerRepo := mockRepo.NewMockCustomerRepository(t)
			mockOrderRepo := mockRepo.NewMockOrderRepository(t)

			mockFactory.EXPECT().NewCartRepository().Return(mockCartRepo)
			mockFactory.EXPECT().NewCustomerRepository().Return(mockCustomerRepo)
			mockFactory.EXPECT().NewOrderRepository().Return(mockOrderRepo)

			mockCartRepo.EXPECT().Load(ctx, cartKey).Return(cart, nil)
			mockCustomerRepo.EXPECT().
				FindByTaxID(ctx, mock.AnythingOfType("string")).
				Return(&entity.Customer{ID: uuid.New()}, nil)
			mockOrderRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.Order")).
				Return(domainerrors.ErrOrderCreationFailed)

			// The cart must not be cleared when the insert fails.
			return fn(mockFactory)
		})

	output, err := fx.service.PlaceOrder(ctx, cartKey, &usecase.CheckoutInput{
		Name:  "Maria",
		Phone: "11987654321",
	})

	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrOrderCreationFailed))
}
