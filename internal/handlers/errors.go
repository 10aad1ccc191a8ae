package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/Skotchmaster/furniture_store/internal/transport"
	"github.com/Skotchmaster/furniture_store/pkg/logging"
)

const msgServerError = "Server error"

// ErrorHandler renders every error as {"error": "..."}. Anything that is not
// an *echo.HTTPError becomes a 500 without leaking its text.
func ErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code := http.StatusInternalServerError
	msg := msgServerError

	var he *echo.HTTPError
	if errors.As(err, &he) {
		code = he.Code
		if he.Message != nil {
			msg = fmt.Sprint(he.Message)
		}
	} else {
		logging.FromContext(c.Request().Context()).Error("unhandled_error", "error", err)
	}

	var werr error
	if c.Request().Method == http.MethodHead {
		werr = c.NoContent(code)
	} else {
		werr = c.JSON(code, transport.ErrorResponse{Error: msg})
	}
	if werr != nil {
		logging.FromContext(c.Request().Context()).Error("error_response_failed", "error", werr)
	}
}

func Health(c echo.Context) error {
	return c.JSON(http.StatusOK, transport.HealthResponse{Status: "OK", Timestamp: time.Now().UTC()})
}
