// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"exalum/internal/delivery/http/middleware"
	"exalum/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	CatalogHandler  *handler.CatalogHandler
	CartHandler     *handler.CartHandler
	OrderHandler    *handler.OrderHandler
	SessionHandler  *handler.SessionHandler
	SettingsHandler *handler.SettingsHandler
	AdminHandler    *handler.AdminHandler
	AuthMiddleware  *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	catalogHandler  *handler.CatalogHandler
	cartHandler     *handler.CartHandler
	orderHandler    *handler.OrderHandler
	sessionHandler  *handler.SessionHandler
	settingsHandler *handler.SettingsHandler
	adminHandler    *handler.AdminHandler
	authMiddleware  *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		catalogHandler:  params.CatalogHandler,
		cartHandler:     params.CartHandler,
		orderHandler:    params.OrderHandler,
		sessionHandler:  params.SessionHandler,
		settingsHandler: params.SettingsHandler,
		adminHandler:    params.AdminHandler,
		authMiddleware:  params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/login", r.sessionHandler.Login)
	}

	// Public storefront routes; no authentication, the cart slot key
	// travels in a header.
	apiGroup := e.Group("/api")
	{
		apiGroup.GET("/catalogo", r.catalogHandler.ListCatalog)
		apiGroup.POST("/busca-por-foto", r.catalogHandler.SearchByPhoto)

		apiGroup.GET("/carrinho", r.cartHandler.GetCart)
		apiGroup.POST("/carrinho/itens", r.cartHandler.AddItem)
		apiGroup.PUT("/carrinho/itens/:produtoID", r.cartHandler.UpdateItem)
		apiGroup.DELETE("/carrinho/itens/:produtoID", r.cartHandler.RemoveItem)

		apiGroup.POST("/pedidos", r.orderHandler.PlaceOrder)

		apiGroup.GET("/configuracoes", r.settingsHandler.GetSettings)
	}

	// Back-office routes that require authentication and the admin role
	adminGroup := e.Group("/api")
	adminGroup.Use(r.authMiddleware.Authenticate) // First, check if logged in
	adminGroup.Use(r.authMiddleware.RequireAdmin) // Then, check for the role
	{
		adminGroup.PUT("/configuracoes", r.settingsHandler.UpdateSettings)
		adminGroup.GET("/configuracoes/qrcode", r.settingsHandler.CatalogShareQR)
		adminGroup.GET("/configuracoes/link", r.settingsHandler.CatalogShareLink)

		adminGroup.GET("/admin-management", r.adminHandler.ListAdmins)
		adminGroup.POST("/admin-management", r.adminHandler.CreateAdmin)
		adminGroup.DELETE("/admin-management/:id", r.adminHandler.DeleteAdmin)
	}
}
