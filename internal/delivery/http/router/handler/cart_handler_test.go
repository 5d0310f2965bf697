package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"exalum/internal/domain/entity"
	domainerrors "exalum/internal/domain/errors"
	mockUC "exalum/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCartTestContext(t *testing.T, method, target, body, cartKey string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if cartKey != "" {
		req.Header.Set(HeaderCartKey, cartKey)
	}
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func TestCartHandler_GetCart_MissingKeyHeader(t *testing.T) {
	cartUC := mockUC.NewMockCartUsecase(t)
	h := NewCartHandler(cartUC)

	c, _ := newCartTestContext(t, http.MethodGet, "/api/carrinho", "", "")

	err := h.GetCart(c)

	require.Error(t, err)
	assert.Equal(t, domainerrors.ErrValidationFailed.ErrorCode(), errorCodeOf(err))
}

func errorCodeOf(err error) string {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return appErr.ErrorCode()
	}

	return ""
}

func TestCartHandler_GetCart_Success(t *testing.T) {
	cartUC := mockUC.NewMockCartUsecase(t)
	h := NewCartHandler(cartUC)

	c, rec := newCartTestContext(t, http.MethodGet, "/api/carrinho", "", "slot-1")
	cart := entity.NewCart("slot-1")
	cartUC.EXPECT().GetCart(c.Request().Context(), "slot-1").Return(cart, nil)

	err := h.GetCart(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"chave":"slot-1"`)
	// An empty cart serializes with an empty item list, not null.
	assert.Contains(t, rec.Body.String(), `"itens":[]`)
}

func TestCartHandler_AddItem_NilProductID(t *testing.T) {
	cartUC := mockUC.NewMockCartUsecase(t)
	h := NewCartHandler(cartUC)

	c, _ := newCartTestContext(t, http.MethodPost, "/api/carrinho/itens", `{}`, "slot-1")

	err := h.AddItem(c)

	require.Error(t, err)
	assert.Equal(t, domainerrors.ErrValidationFailed.ErrorCode(), errorCodeOf(err))
}

func TestCartHandler_AddItem_Success(t *testing.T) {
	cartUC := mockUC.NewMockCartUsecase(t)
	h := NewCartHandler(cartUC)

	productID := uuid.New()
	cart := &entity.Cart{
		Key: "slot-1",
		Items: []entity.CartItem{
			{ProductID: productID, Description: "Perfil 30x30", Quantity: 1, UnitPrice: 100},
		},
	}

	c, rec := newCartTestContext(t, http.MethodPost, "/api/carrinho/itens",
		`{"produto_id":"`+productID.String()+`"}`, "slot-1")
	cartUC.EXPECT().AddItem(c.Request().Context(), "slot-1", productID).Return(cart, nil)

	err := h.AddItem(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"quantidade_itens":1`)
}

func TestCartHandler_UpdateItem_InvalidProductID(t *testing.T) {
	cartUC := mockUC.NewMockCartUsecase(t)
	h := NewCartHandler(cartUC)

	c, _ := newCartTestContext(t, http.MethodPut, "/api/carrinho/itens/not-a-uuid",
		`{"quantidade":3}`, "slot-1")
	c.SetParamNames("produtoID")
	c.SetParamValues("not-a-uuid")

	err := h.UpdateItem(c)

	require.Error(t, err)
	assert.Equal(t, domainerrors.ErrValidationFailed.ErrorCode(), errorCodeOf(err))
}

func TestCartHandler_RemoveItem_Success(t *testing.T) {
	cartUC := mockUC.NewMockCartUsecase(t)
	h := NewCartHandler(cartUC)

	productID := uuid.New()
	c, rec := newCartTestContext(t, http.MethodDelete, "/api/carrinho/itens/"+productID.String(), "", "slot-1")
	c.SetParamNames("produtoID")
	c.SetParamValues(productID.String())

	cartUC.EXPECT().
		RemoveItem(c.Request().Context(), "slot-1", productID).
		Return(entity.NewCart("slot-1"), nil)

	err := h.RemoveItem(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}
