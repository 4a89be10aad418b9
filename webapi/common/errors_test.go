package common_test

import (
	"fmt"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"

	"github.com/splitmoney/splitmoney/pkg/domain"
	"github.com/splitmoney/splitmoney/webapi/common"
)

func TestErrorToStatusCode(t *testing.T) {
	t.Parallel()
	cases := []struct {
		err  error
		want int
	}{
		{domain.ErrValidation, fiber.StatusBadRequest},
		{domain.ErrEmailAlreadyVerified, fiber.StatusBadRequest},
		{domain.ErrInvalidCredentials, fiber.StatusUnauthorized},
		{domain.ErrInvalidOrExpiredOtp, fiber.StatusUnauthorized},
		{domain.ErrUnauthorized, fiber.StatusUnauthorized},
		{domain.ErrExpiredToken, fiber.StatusUnauthorized},
		{domain.ErrMalformedToken, fiber.StatusUnauthorized},
		{domain.ErrForbidden, fiber.StatusForbidden},
		{domain.ErrAdminRequired, fiber.StatusForbidden},
		{domain.ErrNotFound, fiber.StatusNotFound},
		{domain.ErrEmailExists, fiber.StatusConflict},
		{fmt.Errorf("storage exploded"), fiber.StatusInternalServerError},
	}
	for _, tc := range cases {
		t.Run(tc.err.Error(), func(t *testing.T) {
			assert.Equal(t, tc.want, common.ErrorToStatusCode(tc.err))
		})
	}
}

func TestErrorToStatusCode_Wrapped(t *testing.T) {
	t.Parallel()
	wrapped := fmt.Errorf("verify otp: %w", domain.ErrInvalidOrExpiredOtp)
	assert.Equal(t, fiber.StatusUnauthorized, common.ErrorToStatusCode(wrapped))
}
