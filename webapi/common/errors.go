package common

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/splitmoney/splitmoney/pkg/domain"
)

// ErrorToStatusCode maps business failures to HTTP status codes.
func ErrorToStatusCode(err error) int {
	switch {
	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrEmailAlreadyVerified):
		return fiber.StatusBadRequest
	case errors.Is(err, domain.ErrInvalidCredentials),
		errors.Is(err, domain.ErrInvalidOrExpiredOtp),
		errors.Is(err, domain.ErrUnauthorized),
		errors.Is(err, domain.ErrExpiredToken),
		errors.Is(err, domain.ErrMalformedToken):
		return fiber.StatusUnauthorized
	case errors.Is(err, domain.ErrForbidden),
		errors.Is(err, domain.ErrAdminRequired):
		return fiber.StatusForbidden
	case errors.Is(err, domain.ErrNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, domain.ErrEmailExists):
		return fiber.StatusConflict
	default:
		return fiber.StatusInternalServerError
	}
}

// HandleError writes the failure envelope for a business error. Internal
// errors get a generic message so storage details never leak.
func HandleError(c *fiber.Ctx, err error) error {
	status := ErrorToStatusCode(err)
	message := err.Error()
	if status == fiber.StatusInternalServerError {
		message = "Internal server error"
	}
	return ErrorJSON(c, status, message)
}
