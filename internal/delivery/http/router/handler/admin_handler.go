package handler

import (
	"net/http"

	"exalum/internal/delivery/http/response"
	domainerrors "exalum/internal/domain/errors"
	"exalum/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// AdminHandler manages administrator accounts. Routes mounting it must be
// guarded by the admin role check.
type AdminHandler struct {
	adminUC usecase.AdminUsecase
}

// NewAdminHandler is the constructor for AdminHandler.
func NewAdminHandler(adminUC usecase.AdminUsecase) *AdminHandler {
	return &AdminHandler{adminUC: adminUC}
}

// ListAdmins handles GET /api/admin-management.
func (h *AdminHandler) ListAdmins(c echo.Context) error {
	admins, err := h.adminUC.ListAdmins(c.Request().Context())
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, admins, "")
}

// CreateAdmin handles POST /api/admin-management.
func (h *AdminHandler) CreateAdmin(c echo.Context) error {
	input := new(usecase.CreateAdminInput)
	if err := c.Bind(input); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	admin, err := h.adminUC.CreateAdmin(c.Request().Context(), input)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusCreated, admin, "Administrador criado com sucesso")
}

// DeleteAdmin handles DELETE /api/admin-management/:id.
func (h *AdminHandler) DeleteAdmin(c echo.Context) error {
	accountID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("invalid account id")
	}

	if err := h.adminUC.DeleteAdmin(c.Request().Context(), accountID); err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, nil, "Acesso de administrador removido")
}
