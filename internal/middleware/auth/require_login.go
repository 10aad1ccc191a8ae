package auth

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/Skotchmaster/furniture_store/internal/models"
	"github.com/Skotchmaster/furniture_store/internal/service"
	"github.com/Skotchmaster/furniture_store/pkg/logging"
	"github.com/Skotchmaster/furniture_store/pkg/tokens"
)

const CtxUser = "user"

const (
	msgMissingToken = "Missing token"
	msgInvalidToken = "Invalid or expired token"
)

type UserLookup interface {
	UserByID(ctx context.Context, id uint) (*models.User, error)
}

type Gate struct {
	JWTSecret []byte
	Users     UserLookup
}

func NewGate(secret []byte, users UserLookup) *Gate {
	return &Gate{JWTSecret: secret, Users: users}
}

func bearerToken(r *http.Request) string {
	h := strings.TrimSpace(r.Header.Get(echo.HeaderAuthorization))
	if len(h) >= 7 && strings.EqualFold(h[:7], "bearer ") {
		return strings.TrimSpace(h[7:])
	}
	return h
}

// RequireLogin verifies the bearer token and resolves its subject. A valid
// token whose user no longer exists gets the same answer as a forged one.
func (g *Gate) RequireLogin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		l := logging.FromContext(ctx).With("middleware", "require_login")

		raw := bearerToken(c.Request())
		if raw == "" {
			l.Warn("auth_error", "status", 401, "reason", "missing token")
			return echo.NewHTTPError(http.StatusUnauthorized, msgMissingToken)
		}

		claims, err := tokens.AccessClaimsFromToken(raw, g.JWTSecret)
		if err != nil {
			l.Warn("auth_error", "status", 401, "reason", "invalid token", "error", err)
			return echo.NewHTTPError(http.StatusUnauthorized, msgInvalidToken)
		}

		user, err := g.Users.UserByID(ctx, claims.UserID)
		if err != nil {
			if errors.Is(err, service.ErrNotFound) {
				l.Warn("auth_error", "status", 401, "reason", "unknown subject", "user_id", claims.UserID)
				return echo.NewHTTPError(http.StatusUnauthorized, msgInvalidToken)
			}
			l.Error("auth_error", "status", 500, "reason", "user lookup failed", "error", err)
			return echo.NewHTTPError(http.StatusInternalServerError, "Server error")
		}

		c.Set(CtxUser, user)
		c.SetRequest(c.Request().WithContext(logging.IntoContext(ctx, logging.FromContext(ctx).With("user_id", user.ID))))
		return next(c)
	}
}

func UserFrom(c echo.Context) (*models.User, bool) {
	u, ok := c.Get(CtxUser).(*models.User)
	return u, ok && u != nil
}
