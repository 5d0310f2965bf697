package model

import (
	"time"

	"github.com/google/uuid"
)

// SettingsModel mirrors the single-row 'configuracoes' table.
type SettingsModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	CompanyName string    `gorm:"column:nome_empresa;type:varchar(255);not null"`
	TaxID       string    `gorm:"column:cnpj;type:varchar(20)"`
	Phone       string    `gorm:"column:telefone;type:varchar(50)"`
	Email       string    `gorm:"column:email;type:varchar(255)"`
	Address     string    `gorm:"column:endereco;type:text"`
	LogoURL     string    `gorm:"column:logo_url;type:text"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (SettingsModel) TableName() string {
	return "configuracoes"
}
