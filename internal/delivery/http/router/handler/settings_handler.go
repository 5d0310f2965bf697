package handler

import (
	"net/http"
	"time"

	"exalum/internal/delivery/http/response"
	"exalum/internal/domain/entity"
	domainerrors "exalum/internal/domain/errors"
	"exalum/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// SettingsDTO is the wire representation of the company configuration.
type SettingsDTO struct {
	ID          uuid.UUID `json:"id"`
	CompanyName string    `json:"nome_empresa"`
	TaxID       string    `json:"cnpj,omitempty"`
	Phone       string    `json:"telefone,omitempty"`
	Email       string    `json:"email,omitempty"`
	Address     string    `json:"endereco,omitempty"`
	LogoURL     string    `json:"logo_url,omitempty"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func toSettingsDTO(settings *entity.CompanySettings) SettingsDTO {
	return SettingsDTO{
		ID:          settings.ID,
		CompanyName: settings.CompanyName,
		TaxID:       settings.TaxID,
		Phone:       settings.Phone,
		Email:       settings.Email,
		Address:     settings.Address,
		LogoURL:     settings.LogoURL,
		UpdatedAt:   settings.UpdatedAt,
	}
}

// SettingsHandler serves the company settings and the catalog share link.
type SettingsHandler struct {
	settingsUC usecase.SettingsUsecase
}

// NewSettingsHandler is the constructor for SettingsHandler.
func NewSettingsHandler(settingsUC usecase.SettingsUsecase) *SettingsHandler {
	return &SettingsHandler{settingsUC: settingsUC}
}

// GetSettings handles GET /api/configuracoes.
func (h *SettingsHandler) GetSettings(c echo.Context) error {
	settings, err := h.settingsUC.GetSettings(c.Request().Context())
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, toSettingsDTO(settings), "")
}

// UpdateSettings handles PUT /api/configuracoes.
func (h *SettingsHandler) UpdateSettings(c echo.Context) error {
	input := new(usecase.UpdateSettingsInput)
	if err := c.Bind(input); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}
	if err := c.Validate(input); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	settings, err := h.settingsUC.UpdateSettings(c.Request().Context(), input)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, toSettingsDTO(settings), "Configurações salvas com sucesso")
}

// CatalogShareQR handles GET /api/configuracoes/qrcode.
func (h *SettingsHandler) CatalogShareQR(c echo.Context) error {
	png, err := h.settingsUC.CatalogShareQR(c.Request().Context())
	if err != nil {
		return err
	}

	return response.PNG(c, http.StatusOK, png)
}

// CatalogShareLink handles GET /api/configuracoes/link.
func (h *SettingsHandler) CatalogShareLink(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{
		"link": h.settingsUC.CatalogShareLink(),
	}, "")
}
