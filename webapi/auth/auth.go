// Package auth exposes login, OTP and verification endpoints.
package auth

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/splitmoney/splitmoney/pkg/config"
	authsvc "github.com/splitmoney/splitmoney/pkg/service/auth"
	"github.com/splitmoney/splitmoney/webapi/common"
)

const adminAppKey = 1

func Routes(app *fiber.App, authSvc *authsvc.Service, cfg *config.Jwt) {
	app.Post("/auth/login", Login(authSvc, cfg))
	app.Post("/auth/generate-otp", GenerateOtp(authSvc))
	app.Post("/auth/verify-otp", VerifyOtp(authSvc, cfg))
}

// Login authenticates an account. The response is either a token or an OTP
// challenge; the app_key flag restricts the admin console to admin roles.
func Login(authSvc *authsvc.Service, cfg *config.Jwt) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[LoginRequest](c)
		if input == nil {
			return err
		}
		result, err := authSvc.Login(
			c.Context(),
			input.Email,
			input.Password,
			input.AppKey == adminAppKey,
		)
		if err != nil {
			return common.HandleError(c, err)
		}
		if result.Challenge != nil {
			return common.SuccessJSON(c, fiber.StatusOK, "OTP verification required", result.Challenge)
		}
		setTokenCookie(c, cfg, result.Token.AccessToken)
		return common.SuccessJSON(c, fiber.StatusOK, "Login successful", result.Token)
	}
}

// GenerateOtp re-issues a code for an unverified account.
func GenerateOtp(authSvc *authsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[GenerateOtpRequest](c)
		if input == nil {
			return err
		}
		challenge, err := authSvc.GenerateOtp(c.Context(), input.Email, input.Password)
		if err != nil {
			return common.HandleError(c, err)
		}
		return common.SuccessJSON(c, fiber.StatusOK, "OTP generated", challenge)
	}
}

// VerifyOtp consumes a challenge code and issues a token.
func VerifyOtp(authSvc *authsvc.Service, cfg *config.Jwt) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[VerifyOtpRequest](c)
		if input == nil {
			return err
		}
		userID, err := uuid.Parse(input.UserID)
		if err != nil {
			return common.ErrorJSON(c, fiber.StatusBadRequest, "Invalid user ID")
		}
		token, err := authSvc.VerifyOtp(c.Context(), userID, input.OtpCode)
		if err != nil {
			return common.HandleError(c, err)
		}
		setTokenCookie(c, cfg, token.AccessToken)
		return common.SuccessJSON(c, fiber.StatusOK, "Email verified", token)
	}
}

func setTokenCookie(c *fiber.Ctx, cfg *config.Jwt, token string) {
	c.Cookie(&fiber.Cookie{
		Name:     cfg.CookieName,
		Value:    token,
		Expires:  time.Now().Add(cfg.Expiry()),
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
}
