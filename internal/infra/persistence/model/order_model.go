package model

import (
	"time"

	"github.com/google/uuid"
)

// OrderModel mirrors the 'pedidos' table.
type OrderModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Number     string    `gorm:"column:numero;type:varchar(50);not null"`
	CustomerID uuid.UUID `gorm:"column:cliente_id;type:uuid;not null"`
	Status     string    `gorm:"type:varchar(20);not null;default:pendente"`
	Total      float64   `gorm:"column:valor_total;not null"`
	Notes      *string   `gorm:"column:observacoes;type:text"`
	CreatedAt  time.Time
	UpdatedAt  time.Time

	Items []OrderItemModel `gorm:"foreignKey:OrderID"`
}

// TableName explicitly sets the table name for GORM.
func (OrderModel) TableName() string {
	return "pedidos"
}

// OrderItemModel mirrors the 'pedido_itens' table.
type OrderItemModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	OrderID   uuid.UUID `gorm:"column:pedido_id;type:uuid;not null"`
	ProductID uuid.UUID `gorm:"column:produto_id;type:uuid;not null"`
	Quantity  int       `gorm:"column:quantidade;not null;check:quantidade >= 1"`
	UnitPrice float64   `gorm:"column:preco_unitario;not null"`
	Subtotal  float64   `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (OrderItemModel) TableName() string {
	return "pedido_itens"
}
