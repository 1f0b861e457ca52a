// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"vibecart/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	CatalogHandler  *handler.CatalogHandler
	CartHandler     *handler.CartHandler
	CheckoutHandler *handler.CheckoutHandler
}

// router holds all the handlers that need to be registered.
type router struct {
	catalogHandler  *handler.CatalogHandler
	cartHandler     *handler.CartHandler
	checkoutHandler *handler.CheckoutHandler
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		catalogHandler:  params.CatalogHandler,
		cartHandler:     params.CartHandler,
		checkoutHandler: params.CheckoutHandler,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	api := e.Group("/api")
	{
		api.GET("/products", r.catalogHandler.ListProducts)

		api.GET("/cart", r.cartHandler.GetCart)
		api.POST("/cart", r.cartHandler.AddToCart)
		api.PUT("/cart/:id", r.cartHandler.UpdateQuantity)
		api.DELETE("/cart/:id", r.cartHandler.RemoveFromCart)

		api.POST("/checkout", r.checkoutHandler.Checkout)
		api.GET("/receipts", r.checkoutHandler.ListReceipts)
	}
}
