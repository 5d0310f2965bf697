package handler

import (
	"net/http"

	"exalum/internal/delivery/http/response"
	domainerrors "exalum/internal/domain/errors"
	"exalum/internal/usecase"

	"github.com/labstack/echo/v4"
)

// SessionHandler serves back-office authentication.
type SessionHandler struct {
	sessionUC usecase.SessionUsecase
}

// NewSessionHandler is the constructor for SessionHandler.
func NewSessionHandler(sessionUC usecase.SessionUsecase) *SessionHandler {
	return &SessionHandler{sessionUC: sessionUC}
}

// Login handles POST /auth/login.
func (h *SessionHandler) Login(c echo.Context) error {
	input := new(usecase.LoginInput)
	if err := c.Bind(input); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}
	if err := c.Validate(input); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	output, err := h.sessionUC.Login(c.Request().Context(), input)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, output, "")
}
