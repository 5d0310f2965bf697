package entity

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// OrderStatus is the lifecycle state of an order.
type OrderStatus string

const (
	// OrderStatusPending is the state of every order created through checkout.
	OrderStatusPending OrderStatus = "pendente"
	// OrderStatusConfirmed marks an order accepted by the back office.
	OrderStatusConfirmed OrderStatus = "confirmado"
	// OrderStatusCancelled marks an order rejected or withdrawn.
	OrderStatusCancelled OrderStatus = "cancelado"
)

// String returns the string representation of the OrderStatus.
func (s OrderStatus) String() string {
	return string(s)
}

// IsValid checks if the OrderStatus is a valid value.
func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderStatusPending, OrderStatusConfirmed, OrderStatusCancelled:
		return true
	default:
		return false
	}
}

// orderNumberPrefix precedes the millisecond timestamp in generated order numbers.
const orderNumberPrefix = "PED-"

// Order is a customer order created from a cart at checkout. Total equals the
// sum of line subtotals at creation time and is never recomputed afterwards.
type Order struct {
	ID         uuid.UUID
	Number     string // Human-facing reference, not a database key.
	CustomerID uuid.UUID
	Status     OrderStatus
	Total      float64
	Notes      string
	Items      []OrderLineItem
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// OrderLineItem is one line of an order, carrying the quantity and the unit
// price captured from the cart line it was built from.
type OrderLineItem struct {
	ID        uuid.UUID
	OrderID   uuid.UUID
	ProductID uuid.UUID
	Quantity  int
	UnitPrice float64
	Subtotal  float64
}

// NewOrderNumber builds the human-facing order reference from the given
// moment: a fixed prefix plus the millisecond timestamp.
func NewOrderNumber(at time.Time) string {
	return fmt.Sprintf("%s%d", orderNumberPrefix, at.UnixMilli())
}
