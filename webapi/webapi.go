// Package webapi provides HTTP handlers and API endpoints for the
// SplitMoney backend. It is organized into sub-packages per domain:
// - auth: login, OTP and verification endpoints
// - user: account management endpoints
// - role: role management endpoints
// - event: event CRUD, summary and share-link endpoints
// - payment: contribution ledger endpoints
// - report: rollups and export jobs
// - dashboard: stat cards and the live SSE stream
package webapi

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/splitmoney/splitmoney/pkg/app"
	"github.com/splitmoney/splitmoney/pkg/metrics"
	authweb "github.com/splitmoney/splitmoney/webapi/auth"
	"github.com/splitmoney/splitmoney/webapi/common"
	dashboardweb "github.com/splitmoney/splitmoney/webapi/dashboard"
	eventweb "github.com/splitmoney/splitmoney/webapi/event"
	paymentweb "github.com/splitmoney/splitmoney/webapi/payment"
	reportweb "github.com/splitmoney/splitmoney/webapi/report"
	roleweb "github.com/splitmoney/splitmoney/webapi/role"
	userweb "github.com/splitmoney/splitmoney/webapi/user"
)

// SetupApp initializes Fiber with the shared middleware stack and registers
// every route group.
func SetupApp(a *app.App) *fiber.App {
	fiberApp := fiber.New(fiber.Config{
		AppName: "SplitMoney API",
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			if fe, ok := err.(*fiber.Error); ok {
				return common.ErrorJSON(c, fe.Code, fe.Message)
			}
			return common.ErrorJSON(c, fiber.StatusInternalServerError, "Internal server error")
		},
	})

	// Rate limiting keys on X-Forwarded-For when behind a proxy, falling
	// back to X-Real-IP and the direct peer address.
	fiberApp.Use(limiter.New(limiter.Config{
		Max:        a.Config.RateLimit.MaxRequests,
		Expiration: a.Config.RateLimit.Window,
		KeyGenerator: func(c *fiber.Ctx) string {
			if forwardedFor := c.Get("X-Forwarded-For"); forwardedFor != "" {
				if commaIndex := strings.Index(forwardedFor, ","); commaIndex != -1 {
					return strings.TrimSpace(forwardedFor[:commaIndex])
				}
				return strings.TrimSpace(forwardedFor)
			}
			if realIP := c.Get("X-Real-IP"); realIP != "" {
				return realIP
			}
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return common.ErrorJSON(c, fiber.StatusTooManyRequests, "Rate limit exceeded")
		},
	}))
	fiberApp.Use(recover.New())
	fiberApp.Use(logger.New())
	fiberApp.Use(cors.New())
	fiberApp.Use(metrics.Middleware())

	fiberApp.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("SplitMoney API is running")
	})
	fiberApp.Get("/metrics", metrics.Handler())

	authweb.Routes(fiberApp, a.AuthService, a.Config.Jwt)
	userweb.Routes(fiberApp, a.UserService, a.RoleService, a.Config.Jwt, a.Logger)
	roleweb.Routes(fiberApp, a.RoleService, a.Config.Jwt, a.Logger)
	eventweb.Routes(fiberApp, a.EventService, a.Config.Jwt, a.Logger)
	paymentweb.Routes(fiberApp, a.PaymentService, a.Config.Jwt, a.Logger)
	reportweb.Routes(fiberApp, a.ReportService, a.Config.Jwt, a.Logger)
	dashboardweb.Routes(fiberApp, a.DashboardService, a.Config.Jwt, a.Config.Stream, a.Logger)
	return fiberApp
}
