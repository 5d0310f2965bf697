package model

import (
	"time"

	"github.com/google/uuid"
)

// CustomerModel mirrors the 'clientes' table. The cpf_cnpj column holds the
// digits-only key derived from the phone and is the upsert key for checkout.
type CustomerModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Name      string    `gorm:"column:nome;type:varchar(255);not null"`
	Phone     string    `gorm:"column:telefone;type:varchar(50)"`
	TaxID     string    `gorm:"column:cpf_cnpj;type:varchar(20);unique;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (CustomerModel) TableName() string {
	return "clientes"
}
