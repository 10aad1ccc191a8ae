package handlers

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Skotchmaster/furniture_store/internal/middleware/auth"
	"github.com/Skotchmaster/furniture_store/internal/service"
	"github.com/Skotchmaster/furniture_store/internal/transport"
	"github.com/Skotchmaster/furniture_store/pkg/logging"
)

type OrderHandler struct {
	Svc *service.CheckoutService
}

func (h *OrderHandler) CreateOrder(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "order.create_order")

	user, ok := auth.UserFrom(c)
	if !ok {
		l.Warn("create_order_error", "status", 401, "reason", "no user in context")
		return echo.NewHTTPError(http.StatusUnauthorized, "Invalid or expired token")
	}

	var req transport.CreateOrderRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("create_order_error", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}

	order, err := h.Svc.PlaceOrder(ctx, user.ID, req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEmptyCart):
			l.Warn("create_order_error", "status", 400, "reason", "empty cart")
			return echo.NewHTTPError(http.StatusBadRequest, "Cart is empty")
		case errors.Is(err, service.ErrValidation):
			l.Warn("create_order_error", "status", 400, "reason", "invalid items", "error", err)
			return echo.NewHTTPError(http.StatusBadRequest, "Invalid cart items")
		default:
			l.Error("create_order_error", "status", 500, "reason", "internal error", "error", err)
			return echo.NewHTTPError(http.StatusInternalServerError, msgServerError)
		}
	}

	l.Info("create_order_success", "order_id", order.ID)
	return c.JSON(http.StatusCreated, transport.OrderPlacedResponse{
		Message:     "Order placed successfully",
		OrderID:     order.ID,
		TotalAmount: order.TotalAmount,
	})
}
