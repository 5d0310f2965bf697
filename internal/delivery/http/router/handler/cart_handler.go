package handler

import (
	"net/http"
	"strings"

	"exalum/internal/delivery/http/response"
	domainerrors "exalum/internal/domain/errors"
	"exalum/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// HeaderCartKey carries the device slot key identifying the cart.
const HeaderCartKey = "X-Cart-Key"

// maxCartKeyLength matches the width of the cart key column.
const maxCartKeyLength = 64

// CartHandler serves the device-slot shopping cart.
type CartHandler struct {
	cartUC usecase.CartUsecase
}

// NewCartHandler is the constructor for CartHandler.
func NewCartHandler(cartUC usecase.CartUsecase) *CartHandler {
	return &CartHandler{cartUC: cartUC}
}

// addItemRequest is the body of POST /api/carrinho/itens.
type addItemRequest struct {
	ProductID uuid.UUID `json:"produto_id"`
}

// updateItemRequest is the body of PUT /api/carrinho/itens/:produtoID.
type updateItemRequest struct {
	Quantity int `json:"quantidade"`
}

// GetCart handles GET /api/carrinho.
func (h *CartHandler) GetCart(c echo.Context) error {
	key, err := cartKey(c)
	if err != nil {
		return err
	}

	cart, err := h.cartUC.GetCart(c.Request().Context(), key)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, toCartDTO(cart), "")
}

// AddItem handles POST /api/carrinho/itens.
func (h *CartHandler) AddItem(c echo.Context) error {
	key, err := cartKey(c)
	if err != nil {
		return err
	}

	req := new(addItemRequest)
	if err := c.Bind(req); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}
	if req.ProductID == uuid.Nil {
		return domainerrors.ErrValidationFailed.WithDetails("produto_id must be provided")
	}

	cart, err := h.cartUC.AddItem(c.Request().Context(), key, req.ProductID)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, toCartDTO(cart), "")
}

// UpdateItem handles PUT /api/carrinho/itens/:produtoID.
func (h *CartHandler) UpdateItem(c echo.Context) error {
	key, err := cartKey(c)
	if err != nil {
		return err
	}

	productID, err := uuid.Parse(c.Param("produtoID"))
	if err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("invalid product id")
	}

	req := new(updateItemRequest)
	if err := c.Bind(req); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	cart, err := h.cartUC.UpdateItemQuantity(c.Request().Context(), key, productID, req.Quantity)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, toCartDTO(cart), "")
}

// RemoveItem handles DELETE /api/carrinho/itens/:produtoID.
func (h *CartHandler) RemoveItem(c echo.Context) error {
	key, err := cartKey(c)
	if err != nil {
		return err
	}

	productID, err := uuid.Parse(c.Param("produtoID"))
	if err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("invalid product id")
	}

	cart, err := h.cartUC.RemoveItem(c.Request().Context(), key, productID)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, toCartDTO(cart), "")
}

// cartKey extracts and validates the device slot key header.
func cartKey(c echo.Context) (string, error) {
	key := strings.TrimSpace(c.Request().Header.Get(HeaderCartKey))
	if key == "" {
		return "", domainerrors.ErrValidationFailed.WithDetails(HeaderCartKey + " header must be provided")
	}
	if len(key) > maxCartKeyLength {
		return "", domainerrors.ErrValidationFailed.WithDetails(HeaderCartKey + " header is too long")
	}

	return key, nil
}
