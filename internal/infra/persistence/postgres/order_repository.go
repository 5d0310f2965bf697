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

// orderRepository implements the repository.OrderRepository interface.
type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository is the constructor for orderRepository.
func NewOrderRepository(db *gorm.DB) repository.OrderRepository {
	return &orderRepository{
		db: db,
	}
}

// Create persists a new order row. Line items are inserted separately.
func (repo *orderRepository) Create(ctx context.Context, order *entity.Order) error {
	orderM := fromOrderDomain(order)

	if err := repo.db.WithContext(ctx).Omit("Items").Create(orderM).Error; err != nil {
		// Convert PostgreSQL errors to domain errors
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrOrderCreationFailed.WrapMessage("invalid customer reference")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrOrderCreationFailed.WrapMessage("missing required order information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create order")
	}

	// Update the entity with generated values
	order.ID = orderM.ID
	order.CreatedAt = orderM.CreatedAt
	order.UpdatedAt = orderM.UpdatedAt

	return nil
}

// CreateLineItems batch-inserts the line items of an order.
func (repo *orderRepository) CreateLineItems(ctx context.Context, items []entity.OrderLineItem) error {
	if len(items) == 0 {
		return nil
	}

	itemModels := make([]*model.OrderItemModel, 0, len(items))
	for i := range items {
		itemModels = append(itemModels, fromOrderItemDomain(&items[i]))
	}

	if err := repo.db.WithContext(ctx).CreateInBatches(itemModels, 100).Error; err != nil {
		// Convert PostgreSQL errors to domain errors
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrOrderCreationFailed.WrapMessage("invalid order or product reference in line items")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrOrderCreationFailed.WrapMessage("missing required line item information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create order line items")
	}

	// Update the entities with generated values
	for i, itemM := range itemModels {
		items[i].ID = itemM.ID
	}

	return nil
}

// FindByNumber retrieves an order with its line items by the human-facing number.
func (repo *orderRepository) FindByNumber(ctx context.Context, number string) (*entity.Order, error) {
	var orderM model.OrderModel

	if err := repo.db.WithContext(ctx).
		Preload("Items").
		Where("numero = ?", number).
		First(&orderM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order by number")
	}

	return toOrderDomain(&orderM), nil
}

// --- Mapper Functions ---

// toOrderDomain converts a GORM OrderModel to a domain Order entity.
func toOrderDomain(data *model.OrderModel) *entity.Order {
	if data == nil {
		return nil
	}

	order := &entity.Order{
		ID:         data.ID,
		Number:     data.Number,
		CustomerID: data.CustomerID,
		Status:     entity.OrderStatus(data.Status),
		Total:      data.Total,
		CreatedAt:  data.CreatedAt,
		UpdatedAt:  data.UpdatedAt,
	}
	if data.Notes != nil {
		order.Notes = *data.Notes
	}

	order.Items = make([]entity.OrderLineItem, 0, len(data.Items))
	for i := range data.Items {
		order.Items = append(order.Items, *toOrderItemDomain(&data.Items[i]))
	}

	return order
}

// fromOrderDomain converts a domain Order entity to a GORM OrderModel.
func fromOrderDomain(data *entity.Order) *model.OrderModel {
	if data == nil {
		return nil
	}

	orderM := &model.OrderModel{
		ID:         data.ID,
		Number:     data.Number,
		CustomerID: data.CustomerID,
		Status:     data.Status.String(),
		Total:      data.Total,
		CreatedAt:  data.CreatedAt,
		UpdatedAt:  data.UpdatedAt,
	}
	if data.Notes != "" {
		notes := data.Notes
		orderM.Notes = &notes
	}

	return orderM
}

// toOrderItemDomain converts a GORM OrderItemModel to a domain OrderLineItem entity.
func toOrderItemDomain(data *model.OrderItemModel) *entity.OrderLineItem {
	if data == nil {
		return nil
	}

	return &entity.OrderLineItem{
		ID:        data.ID,
		OrderID:   data.OrderID,
		ProductID: data.ProductID,
		Quantity:  data.Quantity,
		UnitPrice: data.UnitPrice,
		Subtotal:  data.Subtotal,
	}
}

// fromOrderItemDomain converts a domain OrderLineItem entity to a GORM OrderItemModel.
func fromOrderItemDomain(data *entity.OrderLineItem) *model.OrderItemModel {
	if data == nil {
		return nil
	}

	return &model.OrderItemModel{
		ID:        data.ID,
		OrderID:   data.OrderID,
		ProductID: data.ProductID,
		Quantity:  data.Quantity,
		UnitPrice: data.UnitPrice,
		Subtotal:  data.Subtotal,
	}
}
