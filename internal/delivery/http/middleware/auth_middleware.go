package middleware

import (
	"net/http"
	"strings"

	"exalum/config"
	"exalum/internal/domain/service"
	"exalum/internal/usecase"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// ContextKeyAccountID is the echo context key holding the authenticated
// account id.
const ContextKeyAccountID = "accountID"

// AuthMiddleware provides middleware for JWT authentication and authorization.
type AuthMiddleware struct {
	tokenSvc service.TokenService
	adminUC  usecase.AdminUsecase
	cfg      *config.Config
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService, adminUC usecase.AdminUsecase, cfg *config.Config) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc, adminUC: adminUC, cfg: cfg}
}

// Authenticate is the core middleware function that validates the JWT access token.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Authorization header is missing"})
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Invalid token format, must be Bearer token"})
		}

		token, err := m.tokenSvc.ValidateToken(tokenString, m.cfg.SecretKey.Access)
		if err != nil || !token.Valid {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Invalid or expired token"})
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Failed to parse token claims"})
		}

		accountIDStr, ok := claims["sub"].(string)
		if !ok {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Account ID missing from token"})
		}
		accountID, err := uuid.Parse(accountIDStr)
		if err != nil {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Invalid account ID format in token"})
		}

		// Set the account id on the context for handlers to use
		c.Set(ContextKeyAccountID, accountID)

		return next(c)
	}
}

// RequireAdmin checks the admin role against the database on every request,
// so a revoked role locks the account out immediately. A valid session
// without the role yields 403, never 401. It must be used AFTER the
// Authenticate middleware.
func (m *AuthMiddleware) RequireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		accountID, ok := c.Get(ContextKeyAccountID).(uuid.UUID)
		if !ok {
			return c.JSON(http.StatusForbidden, map[string]string{"error": "Permission denied: account information missing"})
		}

		isAdmin, err := m.adminUC.IsAdmin(c.Request().Context(), accountID)
		if err != nil {
			return err
		}
		if !isAdmin {
			return c.JSON(http.StatusForbidden, map[string]string{"error": "Permission denied: require 'admin' role"})
		}

		return next(c)
	}
}

// AccountID extracts the authenticated account id set by Authenticate.
func AccountID(c echo.Context) (uuid.UUID, bool) {
	id, ok := c.Get(ContextKeyAccountID).(uuid.UUID)

	return id, ok
}
