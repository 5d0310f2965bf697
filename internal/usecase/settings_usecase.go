package usecase

import (
	"context"

	"exalum/internal/domain/entity"
)

// SettingsUsecase defines the interface for the company configuration page.
type SettingsUsecase interface {
	// GetSettings returns the single company configuration row.
	GetSettings(ctx context.Context) (*entity.CompanySettings, error)

	// UpdateSettings overwrites the editable configuration fields and
	// returns the updated row.
	UpdateSettings(ctx context.Context, input *UpdateSettingsInput) (*entity.CompanySettings, error)

	// CatalogShareQR renders the public catalog link as a PNG QR code.
	CatalogShareQR(ctx context.Context) ([]byte, error)

	// CatalogShareLink returns the public catalog URL encoded by the QR code.
	CatalogShareLink() string
}

// --- Input DTOs ---

// UpdateSettingsInput defines the editable company configuration fields.
type UpdateSettingsInput struct {
	CompanyName string `json:"nome_empresa" validate:"required"`
	TaxID       string `json:"cnpj"`
	Phone       string `json:"telefone"`
	Email       string `json:"email" validate:"omitempty,email"`
	Address     string `json:"endereco"`
	LogoURL     string `json:"logo_url"`
}
