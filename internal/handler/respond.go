package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"scheduler-service/internal/apperr"
)

// fail writes the error outcome with its stable kind and message. Internal
// failures are logged with their cause and surfaced opaquely.
func fail(c echo.Context, log *zap.Logger, err error) error {
	status := apperr.HTTPStatus(err)
	if status == http.StatusInternalServerError {
		log.Error("Request failed", zap.Error(err))
		return c.JSON(status, echo.Map{"error": "internal error"})
	}
	return c.JSON(status, echo.Map{"error": err.Error()})
}
