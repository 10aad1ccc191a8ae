package httpserver

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/Skotchmaster/furniture_store/internal/handlers"
	"github.com/Skotchmaster/furniture_store/internal/middleware/auth"
	"github.com/Skotchmaster/furniture_store/pkg/metrics"
	loggingmw "github.com/Skotchmaster/furniture_store/pkg/middleware/logging"
)

type Deps struct {
	AuthHandler    *handlers.AuthHandler
	ProductHandler *handlers.ProductHandler
	OrderHandler   *handlers.OrderHandler
	Gate           *auth.Gate

	Metrics   *metrics.Metrics
	Logger    *slog.Logger
	StaticDir string
}

var corsConfig = middleware.CORSConfig{
	AllowOrigins: []string{"*"},
	AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
	AllowHeaders: []string{
		echo.HeaderOrigin, "X-Requested-With", echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization,
	},
}

func New(d *Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = handlers.ErrorHandler

	e.Pre(middleware.RemoveTrailingSlash())
	e.Use(middleware.Recover(), middleware.RequestID(), middleware.CORSWithConfig(corsConfig))
	if d.Logger != nil {
		e.Use(loggingmw.RequestLogger(d.Logger))
	}
	if d.Metrics != nil {
		e.Use(d.Metrics.Middleware())
	}

	Register(e, d)
	return e
}

func Register(e *echo.Echo, d *Deps) {
	api := e.Group("/api")

	api.GET("/health", handlers.Health)

	api.POST("/auth/register", d.AuthHandler.Register)
	api.POST("/auth/login", d.AuthHandler.Login)
	api.GET("/auth/me", d.AuthHandler.Me, d.Gate.RequireLogin)

	api.GET("/products", d.ProductHandler.GetProducts)
	api.POST("/products", d.ProductHandler.CreateProduct, d.Gate.RequireLogin)

	api.POST("/orders", d.OrderHandler.CreateOrder, d.Gate.RequireLogin)

	if d.Metrics != nil {
		e.GET("/metrics", echo.WrapHandler(d.Metrics.Handler()))
	}
	if d.StaticDir != "" {
		e.Static("/", d.StaticDir)
	}
}
