package entity

import (
	"time"

	"github.com/google/uuid"
)

// CompanySettings is the single-row company configuration shown on the
// settings page and printed on order documents.
type CompanySettings struct {
	ID          uuid.UUID
	CompanyName string
	TaxID       string // Company CNPJ.
	Phone       string
	Email       string
	Address     string
	LogoURL     string
	UpdatedAt   time.Time
}
