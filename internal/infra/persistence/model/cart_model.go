package model

import (
	"time"

	"gorm.io/datatypes"
)

// CartModel mirrors the 'carrinhos' table: one serialized cart per device
// slot key, overwritten on every mutation.
type CartModel struct {
	Key       string         `gorm:"column:chave;type:varchar(64);primaryKey"`
	Items     datatypes.JSON `gorm:"column:itens;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (CartModel) TableName() string {
	return "carrinhos"
}
