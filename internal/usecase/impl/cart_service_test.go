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

// cartFixtures holds all test dependencies for cart service tests.
type cartFixtures struct {
	service     usecase.CartUsecase
	txManager   *mockRepo.MockTransactionManager
	productRepo *mockRepo.MockProductRepository
}

func createTestCartService(t *testing.T) cartFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	productRepo := mockRepo.NewMockProductRepository(t)

	service := NewCartService(txManager, productRepo, newDiscardLogger())

	return cartFixtures{
		service:     service,
		txManager:   txManager,
		productRepo: productRepo,
	}
}

func stockedProduct(quantity int) *entity.Product {
	return &entity.Product{
		ID:          uuid.New(),
		Code:        "EX-1030",
		Description: "Perfil de aluminio 30x30",
		SalePrice:   125.50,
		Weight:      0.45,
		Stock:       &entity.StockLevel{Quantity: quantity},
	}
}

func expectCartTx(t *testing.T, txManager *mockRepo.MockTransactionManager, ctx context.Context, setup func(cartRepo *mockRepo.MockCartRepository)) {
	txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockCartRepo := mockRepo.NewMockCartRepository(t)

			mockFactory.EXPECT().NewCartRepository().Return(mockCartRepo)
			setup(mockCartRepo)

			return fn(mockFactory)
		})
}

func TestCartService_GetCart_AbsentSlotYieldsEmptyCart(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	expectCartTx(t, fx.txManager, ctx, func(cartRepo *mockRepo.MockCartRepository) {
		cartRepo.EXPECT().Load(ctx, "slot-1").Return(nil, repository.ErrCartNotFound)
	})

	cart, err := fx.service.GetCart(ctx, "slot-1")

	require.NoError(t, err)
	require.NotNil(t, cart)
	assert.Equal(t, "slot-1", cart.Key)
	assert.True(t, cart.IsEmpty())
}

func TestCartService_AddItem_NewCart(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	product := stockedProduct(5)

	fx.productRepo.EXPECT().FindByID(ctx, product.ID).Return(product, nil)
	expectCartTx(t, fx.txManager, ctx, func(cartRepo *mockRepo.MockCartRepository) {
		cartRepo.EXPECT().Load(ctx, "slot-1").Return(nil, repository.ErrCartNotFound)
		cartRepo.EXPECT().
			Save(ctx, mock.AnythingOfType("*entity.Cart")).
			Run(func(ctx context.Context, cart *entity.Cart) {
				require.Len(t, cart.Items, 1)
				assert.Equal(t, 1, cart.Items[0].Quantity)
				assert.False(t, cart.UpdatedAt.IsZero())
			}).
			Return(nil)
	})

	cart, err := fx.service.AddItem(ctx, "slot-1", product.ID)

	require.NoError(t, err)
	require.Len(t, cart.Items, 1)
	assert.InDelta(t, 125.50, cart.Items[0].UnitPrice, 0.001)
}

func TestCartService_AddItem_ProductNotFound(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	productID := uuid.New()

	fx.productRepo.EXPECT().FindByID(ctx, productID).Return(nil, repository.ErrProductNotFound)

	cart, err := fx.service.AddItem(ctx, "slot-1", productID)

	assert.Nil(t, cart)
	assert.True(t, errors.Is(err, domainerrors.ErrProductNotFound))
}

func TestCartService_AddItem_OutOfStock(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	product := stockedProduct(0)

	fx.productRepo.EXPECT().FindByID(ctx, product.ID).Return(product, nil)

	cart, err := fx.service.AddItem(ctx, "slot-1", product.ID)

	assert.Nil(t, cart)
	assert.True(t, errors.Is(err, domainerrors.ErrProductOutOfStock))
}

func TestCartService_AddItem_NoStockRecordTreatedAsUnavailable(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	product := stockedProduct(5)
	product.Stock = nil

	fx.productRepo.EXPECT().FindByID(ctx, product.ID).Return(product, nil)

	cart, err := fx.service.AddItem(ctx, "slot-1", product.ID)

	assert.Nil(t, cart)
	assert.True(t, errors.Is(err, domainerrors.ErrProductOutOfStock))
}

func TestCartService_AddItem_StockLimitReached(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	product := stockedProduct(2)
	existing := entity.NewCart("slot-1")
	require.True(t, existing.Add(product, 2))
	require.True(t, existing.Add(product, 2))

	fx.productRepo.EXPECT().FindByID(ctx, product.ID).Return(product, nil)
	expectCartTx(t, fx.txManager, ctx, func(cartRepo *mockRepo.MockCartRepository) {
		cartRepo.EXPECT().Load(ctx, "slot-1").Return(existing, nil)
	})

	cart, err := fx.service.AddItem(ctx, "slot-1", product.ID)

	assert.Nil(t, cart)
	assert.True(t, errors.Is(err, domainerrors.ErrStockLimitReached))
}

func TestCartService_UpdateItemQuantity(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	product := stockedProduct(10)
	existing := entity.NewCart("slot-1")
	require.True(t, existing.Add(product, 10))

	expectCartTx(t, fx.txManager, ctx, func(cartRepo *mockRepo.MockCartRepository) {
		cartRepo.EXPECT().Load(ctx, "slot-1").Return(existing, nil)
		cartRepo.EXPECT().Save(ctx, mock.AnythingOfType("*entity.Cart")).Return(nil)
	})

	cart, err := fx.service.UpdateItemQuantity(ctx, "slot-1", product.ID, 7)

	require.NoError(t, err)
	assert.Equal(t, 7, cart.Items[0].Quantity)
}

func TestCartService_UpdateItemQuantity_ZeroRemovesLine(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	product := stockedProduct(10)
	existing := entity.NewCart("slot-1")
	require.True(t, existing.Add(product, 10))

	expectCartTx(t, fx.txManager, ctx, func(cartRepo *mockRepo.MockCartRepository) {
		cartRepo.EXPECT().Load(ctx, "slot-1").Return(existing, nil)
		cartRepo.EXPECT().Save(ctx, mock.AnythingOfType("*entity.Cart")).Return(nil)
	})

	cart, err := fx.service.UpdateItemQuantity(ctx, "slot-1", product.ID, 0)

	require.NoError(t, err)
	assert.True(t, cart.IsEmpty())
}

func TestCartService_UpdateItemQuantity_UnknownLine(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	existing := entity.NewCart("slot-1")

	expectCartTx(t, fx.txManager, ctx, func(cartRepo *mockRepo.MockCartRepository) {
		cartRepo.EXPECT().Load(ctx, "slot-1").Return(existing, nil)
	})

	cart, err := fx.service.UpdateItemQuantity(ctx, "slot-1", uuid.New(), 3)

	assert.Nil(t, cart)
	assert.True(t, errors.Is(err, domainerrors.ErrCartItemNotFound))
}

func TestCartService_RemoveItem(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	product := stockedProduct(10)
	existing := entity.NewCart("slot-1")
	require.True(t, existing.Add(product, 10))

	expectCartTx(t, fx.txManager, ctx, func(cartRepo *mockRepo.MockCartRepository) {
		cartRepo.EXPECT().Load(ctx, "slot-1").Return(existing, nil)
		cartRepo.EXPECT().Save(ctx, mock.AnythingOfType("*entity.Cart")).Return(nil)
	})

	cart, err := fx.service.RemoveItem(ctx, "slot-1", product.ID)

	require.NoError(t, err)
	assert.True(t, cart.IsEmpty())
}

func TestCartService_RemoveItem_AbsentSlot(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()

	expectCartTx(t, fx.txManager, ctx, func(cartRepo *mockRepo.MockCartRepository) {
		cartRepo.EXPECT().Load(ctx, "slot-1").Return(nil, repository.ErrCartNotFound)
	})

	cart, err := fx.service.RemoveItem(ctx, "slot-1", uuid.New())

	assert.Nil(t, cart)
	assert.True(t, errors.Is(err, domainerrors.ErrCartItemNotFound))
}
