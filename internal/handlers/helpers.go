package handlers

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/Skotchmaster/petcute_backend/internal/transport"
)

func validationFailed(c echo.Context, err error) error {
	return c.JSON(http.StatusUnprocessableEntity, echo.Map{
		"errors": transport.FieldErrors(err),
	})
}

func fieldError(c echo.Context, field, message string) error {
	return c.JSON(http.StatusUnprocessableEntity, echo.Map{
		"errors": map[string]string{field: message},
	})
}

func notFound(c echo.Context, what, id string) error {
	return c.JSON(http.StatusNotFound, echo.Map{
		"error":   what + " not found",
		"message": "no " + what + " exists with id: " + id,
	})
}

func pathID(c echo.Context) (uint, string, error) {
	idParam := c.Param("id")
	id, err := strconv.ParseUint(idParam, 10, 64)
	return uint(id), idParam, err
}

func parseIntDefault(s string, def int) int {
	if s == "" {
		return def
	}
	if v, err := strconv.Atoi(s); err == nil {
		return v
	}
	return def
}
