// Package report exposes date-ranged report and export job endpoints.
package report

import (
	"log/slog"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/splitmoney/splitmoney/pkg/config"
	"github.com/splitmoney/splitmoney/pkg/domain"
	"github.com/splitmoney/splitmoney/pkg/middleware"
	reportsvc "github.com/splitmoney/splitmoney/pkg/service/report"
	"github.com/splitmoney/splitmoney/webapi/common"
)

const dateLayout = "2006-01-02"

// ExportRequest queues a report for the offline export worker.
type ExportRequest struct {
	ReportType string            `json:"report_type" validate:"required"`
	Format     string            `json:"export_format" validate:"required"`
	Filters    map[string]string `json:"filters"`
}

func Routes(app *fiber.App, reportSvc *reportsvc.Service, cfg *config.Jwt, logger *slog.Logger) {
	grp := app.Group("/reports", middleware.Protected(cfg))
	grp.Get("/me", UserSummary(reportSvc))

	admin := grp.Group("", middleware.RequireAdmin(logger))
	admin.Get("/summary", AdminSummary(reportSvc))
	admin.Post("/exports", RequestExport(reportSvc))
	admin.Get("/exports", ListExports(reportSvc))
	admin.Get("/exports/:id", GetExport(reportSvc))
}

func parseRange(c *fiber.Ctx) (from, to time.Time, err error) {
	if raw := c.Query("fromDate"); raw != "" {
		if from, err = time.Parse(dateLayout, raw); err != nil {
			return from, to, err
		}
	}
	if raw := c.Query("toDate"); raw != "" {
		if to, err = time.Parse(dateLayout, raw); err != nil {
			return from, to, err
		}
		// inclusive upper bound
		to = to.Add(24*time.Hour - time.Nanosecond)
	}
	return from, to, nil
}

func AdminSummary(reportSvc *reportsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		from, to, err := parseRange(c)
		if err != nil {
			return common.ErrorJSON(c, fiber.StatusBadRequest, "Invalid date range")
		}
		report, err := reportSvc.AdminSummary(c.Context(), from, to, c.Query("interval"))
		if err != nil {
			return common.HandleError(c, err)
		}
		return common.SuccessJSON(c, fiber.StatusOK, "Summary report", report)
	}
}

func UserSummary(reportSvc *reportsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := middleware.CurrentUserID(c)
		if err != nil {
			return common.HandleError(c, err)
		}
		from, to, err := parseRange(c)
		if err != nil {
			return common.ErrorJSON(c, fiber.StatusBadRequest, "Invalid date range")
		}
		report, err := reportSvc.UserSummary(c.Context(), userID, from, to)
		if err != nil {
			return common.HandleError(c, err)
		}
		return common.SuccessJSON(c, fiber.StatusOK, "User summary report", report)
	}
}

func RequestExport(reportSvc *reportsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[ExportRequest](c)
		if input == nil {
			return err
		}
		userID, err := middleware.CurrentUserID(c)
		if err != nil {
			return common.HandleError(c, err)
		}
		job, err := reportSvc.RequestExport(
			c.Context(),
			domain.ReportType(input.ReportType),
			domain.ExportFormat(input.Format),
			input.Filters,
			userID,
		)
		if err != nil {
			return common.HandleError(c, err)
		}
		return common.SuccessJSON(c, fiber.StatusCreated, "Export job queued", job)
	}
}

func GetExport(reportSvc *reportsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := uuid.Parse(c.Params("id"))
		if err != nil {
			return common.ErrorJSON(c, fiber.StatusBadRequest, "Invalid job ID")
		}
		job, err := reportSvc.GetExport(c.Context(), id)
		if err != nil {
			return common.HandleError(c, err)
		}
		return common.SuccessJSON(c, fiber.StatusOK, "Export job found", job)
	}
}

func ListExports(reportSvc *reportsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		page, pageSize := common.ParsePagination(c)
		jobs, total, err := reportSvc.ListExports(c.Context(), page, pageSize)
		if err != nil {
			return common.HandleError(c, err)
		}
		return common.PaginatedJSON(c, "Export jobs retrieved", jobs, page, pageSize, total)
	}
}
