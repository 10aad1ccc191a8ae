package handlers

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Skotchmaster/furniture_store/internal/middleware/auth"
	"github.com/Skotchmaster/furniture_store/internal/models"
	"github.com/Skotchmaster/furniture_store/internal/service"
	"github.com/Skotchmaster/furniture_store/internal/transport"
	"github.com/Skotchmaster/furniture_store/pkg/logging"
)

type AuthHandler struct {
	Svc *service.AuthService
}

func summary(u *models.User) transport.UserSummary {
	return transport.UserSummary{ID: u.ID, Name: u.Name, Email: u.Email}
}

func (h *AuthHandler) Register(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "auth_register")

	var req transport.RegisterRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("register_error", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}

	res, err := h.Svc.Register(ctx, req.Name, req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrPasswordTooLong):
			l.Warn("register_error", "status", 400, "reason", "password too long")
			return echo.NewHTTPError(http.StatusBadRequest, "Password must be at most 72 bytes")
		case errors.Is(err, service.ErrValidation):
			l.Warn("register_error", "status", 400, "reason", "missing fields", "error", err)
			return echo.NewHTTPError(http.StatusBadRequest, "All fields are required")
		case errors.Is(err, service.ErrConflict):
			l.Warn("register_error", "status", 400, "reason", "duplicate email")
			return echo.NewHTTPError(http.StatusBadRequest, "Email already registered")
		default:
			l.Error("register_error", "status", 500, "error", err)
			return echo.NewHTTPError(http.StatusInternalServerError, msgServerError)
		}
	}

	return c.JSON(http.StatusCreated, transport.AuthResponse{User: summary(res.User), Token: res.Token})
}

func (h *AuthHandler) Login(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "auth_login")

	var req transport.LoginRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("login_error", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}

	res, err := h.Svc.Login(ctx, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			l.Warn("login_failed", "status", 401)
			return echo.NewHTTPError(http.StatusUnauthorized, "Invalid credentials")
		}
		l.Error("login_failed", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, msgServerError)
	}

	l.Info("login_successful", "user_id", res.User.ID)
	return c.JSON(http.StatusOK, transport.AuthResponse{User: summary(res.User), Token: res.Token})
}

func (h *AuthHandler) Me(c echo.Context) error {
	user, ok := auth.UserFrom(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "Invalid or expired token")
	}
	return c.JSON(http.StatusOK, summary(user))
}
