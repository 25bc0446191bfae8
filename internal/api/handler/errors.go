package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/sirh-molino/hr-api/internal/core/domain"
)

// jsonError maps a domain error to its HTTP status and writes the standard
// error envelope. Unknown errors become an opaque 500 so internals never leak.
func jsonError(c echo.Context, err error) error {
	status := http.StatusInternalServerError
	message := "internal error"

	switch {
	case errors.Is(err, domain.ErrValidation):
		status = http.StatusUnprocessableEntity
		message = err.Error()
	case errors.Is(err, domain.ErrDuplicateDocument),
		errors.Is(err, domain.ErrUserExists):
		status = http.StatusConflict
		message = err.Error()
	case errors.Is(err, domain.ErrEmployeeNotFound),
		errors.Is(err, domain.ErrContractNotFound),
		errors.Is(err, domain.ErrUserNotFound):
		status = http.StatusNotFound
		message = err.Error()
	case errors.Is(err, domain.ErrInvalidCredentials),
		errors.Is(err, domain.ErrSessionRevoked):
		status = http.StatusUnauthorized
		message = err.Error()
	case errors.Is(err, domain.ErrStoreUnavailable):
		status = http.StatusServiceUnavailable
		message = "record store unavailable"
	}

	return c.JSON(status, errorResponse{Error: message})
}
