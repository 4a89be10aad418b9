// Package middleware provides the JWT gate and role checks for protected
// routes.
package middleware

import (
	"log/slog"
	"strings"

	jwtware "github.com/gofiber/contrib/jwt"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/splitmoney/splitmoney/pkg/config"
	"github.com/splitmoney/splitmoney/pkg/domain"
)

// Protected validates the access token from the Authorization header or the
// access_token cookie and stores the parsed token in the request context.
func Protected(cfg *config.Jwt) fiber.Handler {
	return jwtware.New(jwtware.Config{
		SigningKey:  jwtware.SigningKey{Key: []byte(cfg.Secret)},
		TokenLookup: "header:Authorization,cookie:" + cfg.CookieName,
		AuthScheme:  "Bearer",
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			status := fiber.StatusUnauthorized
			message := "invalid or expired token"
			if err != nil && strings.Contains(err.Error(), "missing or malformed") {
				message = "missing or malformed token"
			}
			return c.Status(status).JSON(fiber.Map{
				"IsSuccess": false,
				"Message":   message,
			})
		},
	})
}

// RequireAdmin rejects non-admin tokens. A token without a role claim
// passes; legacy tokens predate the claim and are treated as trusted.
func RequireAdmin(logger *slog.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role, ok := roleClaim(c)
		if !ok {
			logger.Warn("admin gate passed token without role claim",
				"path", c.Path())
			return c.Next()
		}
		if !domain.IsAdminRole(role) {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"IsSuccess": false,
				"Message":   "admin access required",
			})
		}
		return c.Next()
	}
}

// RequireSelfOrAdmin allows admins through, and otherwise requires the route
// parameter to match the token's own account id.
func RequireSelfOrAdmin(param string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if role, ok := roleClaim(c); ok && domain.IsAdminRole(role) {
			return c.Next()
		}
		userID, err := CurrentUserID(c)
		if err != nil || userID.String() != c.Params(param) {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"IsSuccess": false,
				"Message":   "access denied",
			})
		}
		return c.Next()
	}
}

// CurrentUserID extracts the account id from the validated token.
func CurrentUserID(c *fiber.Ctx) (uuid.UUID, error) {
	claims, ok := tokenClaims(c)
	if !ok {
		return uuid.Nil, domain.ErrUnauthorized
	}
	raw, ok := claims["user_id"].(string)
	if !ok {
		return uuid.Nil, domain.ErrUnauthorized
	}
	return uuid.Parse(raw)
}

// CurrentRole extracts the role claim; the default role is assumed when the
// claim is absent.
func CurrentRole(c *fiber.Ctx) string {
	role, ok := roleClaim(c)
	if !ok {
		return domain.DefaultRoleName
	}
	return role
}

// IsAdmin reports whether the request token carries an admin role.
func IsAdmin(c *fiber.Ctx) bool {
	role, ok := roleClaim(c)
	return ok && domain.IsAdminRole(role)
}

func tokenClaims(c *fiber.Ctx) (jwt.MapClaims, bool) {
	token, ok := c.Locals("user").(*jwt.Token)
	if !ok || token == nil {
		return nil, false
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	return claims, ok
}

func roleClaim(c *fiber.Ctx) (string, bool) {
	claims, ok := tokenClaims(c)
	if !ok {
		return "", false
	}
	role, ok := claims["role"].(string)
	if !ok || role == "" {
		return "", false
	}
	return role, true
}
