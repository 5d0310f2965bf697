package handler

import (
	"net/http"

	"exalum/internal/delivery/http/response"
	domainerrors "exalum/internal/domain/errors"
	"exalum/internal/usecase"

	"github.com/labstack/echo/v4"
)

// OrderHandler turns a cart into a placed order.
type OrderHandler struct {
	checkoutUC usecase.CheckoutUsecase
}

// NewOrderHandler is the constructor for OrderHandler.
func NewOrderHandler(checkoutUC usecase.CheckoutUsecase) *OrderHandler {
	return &OrderHandler{checkoutUC: checkoutUC}
}

// PlaceOrder handles POST /api/pedidos.
func (h *OrderHandler) PlaceOrder(c echo.Context) error {
	key, err := cartKey(c)
	if err != nil {
		return err
	}

	input := new(usecase.CheckoutInput)
	if err := c.Bind(input); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	output, err := h.checkoutUC.PlaceOrder(c.Request().Context(), key, input)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusCreated, output, "Pedido enviado com sucesso")
}
