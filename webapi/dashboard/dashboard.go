// Package dashboard exposes the stat card endpoints and a live SSE stream.
package dashboard

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"

	"github.com/splitmoney/splitmoney/pkg/config"
	"github.com/splitmoney/splitmoney/pkg/middleware"
	dashboardsvc "github.com/splitmoney/splitmoney/pkg/service/dashboard"
	"github.com/splitmoney/splitmoney/webapi/common"
)

func Routes(
	app *fiber.App,
	dashboardSvc *dashboardsvc.Service,
	cfg *config.Jwt,
	streamCfg *config.Stream,
	logger *slog.Logger,
) {
	grp := app.Group("/dashboard", middleware.Protected(cfg))
	grp.Get("/admin", middleware.RequireAdmin(logger), AdminStats(dashboardSvc))
	grp.Get("/me", UserStats(dashboardSvc))
	grp.Get("/stream", Stream(dashboardSvc, streamCfg, logger))
}

func AdminStats(dashboardSvc *dashboardsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		stats, err := dashboardSvc.AdminStats(c.Context())
		if err != nil {
			return common.HandleError(c, err)
		}
		return common.SuccessJSON(c, fiber.StatusOK, "Dashboard stats", stats)
	}
}

func UserStats(dashboardSvc *dashboardsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := middleware.CurrentUserID(c)
		if err != nil {
			return common.HandleError(c, err)
		}
		stats, err := dashboardSvc.UserStats(c.Context(), userID)
		if err != nil {
			return common.HandleError(c, err)
		}
		return common.SuccessJSON(c, fiber.StatusOK, "Dashboard stats", stats)
	}
}
