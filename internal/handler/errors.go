// Package handler contains the HTTP handlers.  Handlers translate the
// three domain error kinds into status codes: validation errors become
// 400 with the full message list, not-found errors become 404, and
// anything else is an infrastructure failure reported as 500.
package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/meeting-room-reservation/internal/model"
	"github.com/iliyamo/meeting-room-reservation/internal/service"
)

// writeDomainError maps a service error onto the wire.  Validation
// messages are passed through verbatim so the client sees every
// violated rule at once.
func writeDomainError(c echo.Context, err error) error {
	var vErr *model.ValidationError
	if errors.As(err, &vErr) {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error":    "validation failed",
			"messages": vErr.Messages,
		})
	}
	if service.IsNotFound(err) {
		return c.JSON(http.StatusNotFound, echo.Map{"error": err.Error()})
	}
	c.Logger().Errorf("internal error: %v", err)
	return c.JSON(http.StatusInternalServerError, echo.Map{"error": "internal error"})
}
