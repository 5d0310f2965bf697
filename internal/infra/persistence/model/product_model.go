// Package model contains the GORM persistence models mirroring the database tables.
package model

import (
	"time"

	"github.com/google/uuid"
)

// ProductModel mirrors the 'produtos' table. PostgreSQL generates UUIDs via gen_random_uuid().
type ProductModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Code        string    `gorm:"column:codigo;type:varchar(50);unique;not null"`
	Description string    `gorm:"column:descricao;type:text;not null"`
	Type        string    `gorm:"column:tipo;type:varchar(100)"`
	Alloy       string    `gorm:"column:liga;type:varchar(100)"`
	Color       string    `gorm:"column:cor;type:varchar(100)"`
	SalePrice   float64   `gorm:"column:preco_venda;not null;check:preco_venda >= 0"`
	Weight      float64   `gorm:"column:peso;check:peso >= 0"`
	Unit        string    `gorm:"column:unidade;type:varchar(20);not null;default:barra"`
	PhotoURL    string    `gorm:"column:foto_url;type:text"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Stock *StockModel `gorm:"foreignKey:ProductID"`
}

// TableName explicitly sets the table name for GORM.
func (ProductModel) TableName() string {
	return "produtos"
}

// StockModel mirrors the 'estoque' table. One row per product.
type StockModel struct {
	ProductID uuid.UUID `gorm:"column:produto_id;type:uuid;primaryKey"`
	Quantity  int       `gorm:"column:quantidade;not null;default:0;check:quantidade >= 0"`
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (StockModel) TableName() string {
	return "estoque"
}
