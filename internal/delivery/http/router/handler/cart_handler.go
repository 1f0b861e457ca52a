package handler

import (
	"log/slog"
	"net/http"

	"vibecart/internal/delivery/http/response"
	domainerrors "vibecart/internal/domain/errors"
	"vibecart/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// CartHandlerParams holds dependencies for CartHandler, injected by Fx.
type CartHandlerParams struct {
	fx.In

	CartUC usecase.CartUsecase
	Logger *slog.Logger
}

// CartHandler holds dependencies for cart-related handlers
type CartHandler struct {
	cartUC usecase.CartUsecase
	logger *slog.Logger
}

// NewCartHandler is the constructor for CartHandler
func NewCartHandler(params CartHandlerParams) *CartHandler {
	return &CartHandler{
		cartUC: params.CartUC,
		logger: params.Logger,
	}
}

// AddToCartRequest represents the request body for adding a product to the cart
type AddToCartRequest struct {
	ProductID string `json:"productId"`
	Qty       int    `json:"qty"`
}

// UpdateQtyRequest represents the request body for replacing a line's quantity
type UpdateQtyRequest struct {
	Qty int `json:"qty"`
}

// GetCart handles retrieving the cart with subtotals and total
func (h *CartHandler) GetCart(c echo.Context) error {
	cart, err := h.cartUC.GetCart(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, cart, "Cart retrieved successfully")
}

// AddToCart handles merging a product into the cart
func (h *CartHandler) AddToCart(c echo.Context) error {
	var req AddToCartRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid cart input")
	}

	item, created, err := h.cartUC.AddToCart(c.Request().Context(), req.ProductID, req.Qty)
	if err != nil {
		return errors.WithStack(err)
	}

	message := "Updated quantity"
	if created {
		message = "Added to cart"
	}

	return response.Success(c, http.StatusOK, item, message)
}

// UpdateQuantity handles replacing the quantity of an existing cart line
func (h *CartHandler) UpdateQuantity(c echo.Context) error {
	var req UpdateQtyRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid cart input")
	}

	// Reject the quantity before resolving the id so an invalid body fails as
	// a validation error regardless of which line it targets.
	if req.Qty < 1 {
		return errors.WithStack(domainerrors.ErrInvalidQuantity)
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		// An unparseable id cannot match any line.
		return errors.WithStack(domainerrors.ErrCartItemNotFound)
	}

	item, err := h.cartUC.UpdateQuantity(c.Request().Context(), id, req.Qty)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, item, "Updated qty")
}

// RemoveFromCart handles deleting a single cart line
func (h *CartHandler) RemoveFromCart(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return errors.WithStack(domainerrors.ErrCartItemNotFound)
	}

	if err := h.cartUC.RemoveFromCart(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"id": id.String()}, "Removed from cart")
}
