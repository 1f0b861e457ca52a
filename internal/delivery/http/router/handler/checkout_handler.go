package handler

import (
	"log/slog"
	"net/http"

	"vibecart/internal/delivery/http/response"
	"vibecart/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// CheckoutHandlerParams holds dependencies for CheckoutHandler, injected by Fx.
type CheckoutHandlerParams struct {
	fx.In

	CheckoutUC usecase.CheckoutUsecase
	Logger     *slog.Logger
}

// CheckoutHandler holds dependencies for checkout-related handlers
type CheckoutHandler struct {
	checkoutUC usecase.CheckoutUsecase
	logger     *slog.Logger
}

// NewCheckoutHandler is the constructor for CheckoutHandler
func NewCheckoutHandler(params CheckoutHandlerParams) *CheckoutHandler {
	return &CheckoutHandler{
		checkoutUC: params.CheckoutUC,
		logger:     params.Logger,
	}
}

// Checkout handles finalizing the cart into a receipt
func (h *CheckoutHandler) Checkout(c echo.Context) error {
	var input usecase.CheckoutInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid checkout input")
	}

	receipt, err := h.checkoutUC.Checkout(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, receipt, "Checkout success")
}

// ListReceipts handles retrieving the receipt history, newest first
func (h *CheckoutHandler) ListReceipts(c echo.Context) error {
	receipts, err := h.checkoutUC.ListReceipts(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, receipts, "Receipts retrieved successfully")
}
