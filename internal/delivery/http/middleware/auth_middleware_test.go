package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"exalum/config"
	mockSvc "exalum/internal/mocks/service"
	mockUC "exalum/internal/mocks/usecase"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func newTestAuthConfig() *config.Config {
	cfg := &config.Config{}
	cfg.SecretKey.Access = testSecret

	return cfg
}

func newAuthTestContext(t *testing.T, header string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/admin-management", nil)
	if header != "" {
		req.Header.Set(echo.HeaderAuthorization, header)
	}
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func okNext(called *bool) echo.HandlerFunc {
	return func(c echo.Context) error {
		*called = true

		return c.NoContent(http.StatusOK)
	}
}

func TestAuthMiddleware_Authenticate_MissingHeader(t *testing.T) {
	tokenSvc := mockSvc.NewMockTokenService(t)
	adminUC := mockUC.NewMockAdminUsecase(t)
	m := NewAuthMiddleware(tokenSvc, adminUC, newTestAuthConfig())

	c, rec := newAuthTestContext(t, "")
	called := false

	err := m.Authenticate(okNext(&called))(c)

	require.NoError(t, err)
	assert.False(t, called)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddleware_Authenticate_NotBearer(t *testing.T) {
	tokenSvc := mockSvc.NewMockTokenService(t)
	adminUC := mockUC.NewMockAdminUsecase(t)
	m := NewAuthMiddleware(tokenSvc, adminUC, newTestAuthConfig())

	c, rec := newAuthTestContext(t, "Basic dXNlcjpwYXNz")
	called := false

	err := m.Authenticate(okNext(&called))(c)

	require.NoError(t, err)
	assert.False(t, called)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddleware_Authenticate_InvalidToken(t *testing.T) {
	tokenSvc := mockSvc.NewMockTokenService(t)
	adminUC := mockUC.NewMockAdminUsecase(t)
	m := NewAuthMiddleware(tokenSvc, adminUC, newTestAuthConfig())

	tokenSvc.EXPECT().
		ValidateToken("bad-token", testSecret).
		Return(nil, jwt.ErrTokenSignatureInvalid)

	c, rec := newAuthTestContext(t, "Bearer bad-token")
	called := false

	err := m.Authenticate(okNext(&called))(c)

	require.NoError(t, err)
	assert.False(t, called)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddleware_Authenticate_SetsAccountID(t *testing.T) {
	tokenSvc := mockSvc.NewMockTokenService(t)
	adminUC := mockUC.NewMockAdminUsecase(t)
	m := NewAuthMiddleware(tokenSvc, adminUC, newTestAuthConfig())

	accountID := uuid.New()
	tokenSvc.EXPECT().
		ValidateToken("good-token", testSecret).
		Return(&jwt.Token{
			Valid:  true,
			Claims: jwt.MapClaims{"sub": accountID.String()},
		}, nil)

	c, rec := newAuthTestContext(t, "Bearer good-token")

	var seen uuid.UUID
	err := m.Authenticate(func(c echo.Context) error {
		id, ok := AccountID(c)
		require.True(t, ok)
		seen = id

		return c.NoContent(http.StatusOK)
	})(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, accountID, seen)
}

func TestAuthMiddleware_RequireAdmin_NoAccountInContext(t *testing.T) {
	tokenSvc := mockSvc.NewMockTokenService(t)
	adminUC := mockUC.NewMockAdminUsecase(t)
	m := NewAuthMiddleware(tokenSvc, adminUC, newTestAuthConfig())

	c, rec := newAuthTestContext(t, "")
	called := false

	err := m.RequireAdmin(okNext(&called))(c)

	require.NoError(t, err)
	assert.False(t, called)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestAuthMiddleware_RequireAdmin_NonAdminGets403(t *testing.T) {
	tokenSvc := mockSvc.NewMockTokenService(t)
	adminUC := mockUC.NewMockAdminUsecase(t)
	m := NewAuthMiddleware(tokenSvc, adminUC, newTestAuthConfig())

	accountID := uuid.New()
	c, rec := newAuthTestContext(t, "")
	c.Set(ContextKeyAccountID, accountID)

	adminUC.EXPECT().IsAdmin(c.Request().Context(), accountID).Return(false, nil)

	called := false
	err := m.RequireAdmin(okNext(&called))(c)

	require.NoError(t, err)
	assert.False(t, called)
	// An authenticated session without the role is forbidden, not
	// unauthorized.
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestAuthMiddleware_RequireAdmin_AdminPassesThrough(t *testing.T) {
	tokenSvc := mockSvc.NewMockTokenService(t)
	adminUC := mockUC.NewMockAdminUsecase(t)
	m := NewAuthMiddleware(tokenSvc, adminUC, newTestAuthConfig())

	accountID := uuid.New()
	c, rec := newAuthTestContext(t, "")
	c.Set(ContextKeyAccountID, accountID)

	adminUC.EXPECT().IsAdmin(c.Request().Context(), accountID).Return(true, nil)

	called := false
	err := m.RequireAdmin(okNext(&called))(c)

	require.NoError(t, err)
	assert.True(t, called)
	assert.Equal(t, http.StatusOK, rec.Code)
}
