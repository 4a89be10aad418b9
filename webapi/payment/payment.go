// Package payment exposes the contribution ledger endpoints.
package payment

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/splitmoney/splitmoney/pkg/config"
	"github.com/splitmoney/splitmoney/pkg/domain"
	"github.com/splitmoney/splitmoney/pkg/dto"
	"github.com/splitmoney/splitmoney/pkg/middleware"
	paymentsvc "github.com/splitmoney/splitmoney/pkg/service/payment"
	"github.com/splitmoney/splitmoney/webapi/common"
)

func Routes(app *fiber.App, paymentSvc *paymentsvc.Service, cfg *config.Jwt, logger *slog.Logger) {
	grp := app.Group("/payments", middleware.Protected(cfg))
	grp.Post("/", Create(paymentSvc))
	grp.Get("/", List(paymentSvc))
	grp.Get("/event/:id/summary", EventSummary(paymentSvc))
	grp.Get("/event/:id/latest", LatestByContributor(paymentSvc))
	grp.Get("/:id", Get(paymentSvc))
	grp.Put("/:id", middleware.RequireAdmin(logger), Update(paymentSvc))
	grp.Patch("/:id/delete", middleware.RequireAdmin(logger), SoftDelete(paymentSvc))

	app.Get("/users/:id/payments",
		middleware.Protected(cfg), middleware.RequireSelfOrAdmin("id"),
		UserHistory(paymentSvc))
}

func Create(paymentSvc *paymentsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[CreateRequest](c)
		if input == nil {
			return err
		}
		eventID, err := uuid.Parse(input.EventID)
		if err != nil {
			return common.ErrorJSON(c, fiber.StatusBadRequest, "Invalid event ID")
		}
		userID, err := middleware.CurrentUserID(c)
		if err != nil {
			return common.HandleError(c, err)
		}
		t, err := paymentSvc.Create(c.Context(), &dto.TransactionCreate{
			EventID:       eventID,
			UserID:        userID,
			Amount:        input.Amount,
			Kind:          domain.TransactionKind(input.Kind),
			Description:   input.Description,
			PaymentMethod: input.PaymentMethod,
		})
		if err != nil {
			return common.HandleError(c, err)
		}
		return common.SuccessJSON(c, fiber.StatusCreated, "Payment recorded", t)
	}
}

// Get returns a single ledger entry. Non-admins may only read their own.
func Get(paymentSvc *paymentsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := uuid.Parse(c.Params("id"))
		if err != nil {
			return common.ErrorJSON(c, fiber.StatusBadRequest, "Invalid payment ID")
		}
		t, err := paymentSvc.Get(c.Context(), id)
		if err != nil {
			return common.HandleError(c, err)
		}
		if !middleware.IsAdmin(c) {
			userID, err := middleware.CurrentUserID(c)
			if err != nil || t.UserID != userID {
				return common.ErrorJSON(c, fiber.StatusForbidden, "Access denied")
			}
		}
		return common.SuccessJSON(c, fiber.StatusOK, "Payment found", t)
	}
}

// List applies the query filters. Non-admin callers only see their own
// entries.
func List(paymentSvc *paymentsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		filter := &dto.TransactionFilter{
			Status: domain.TransactionStatus(c.Query("status")),
			Kind:   domain.TransactionKind(c.Query("transactionType")),
		}
		if raw := c.Query("eventId"); raw != "" {
			eventID, err := uuid.Parse(raw)
			if err != nil {
				return common.ErrorJSON(c, fiber.StatusBadRequest, "Invalid event ID")
			}
			filter.EventID = eventID
		}
		if middleware.IsAdmin(c) {
			if raw := c.Query("userId"); raw != "" {
				userID, err := uuid.Parse(raw)
				if err != nil {
					return common.ErrorJSON(c, fiber.StatusBadRequest, "Invalid user ID")
				}
				filter.UserID = userID
			}
		} else {
			userID, err := middleware.CurrentUserID(c)
			if err != nil {
				return common.HandleError(c, err)
			}
			filter.UserID = userID
		}

		page, pageSize := common.ParsePagination(c)
		txns, total, err := paymentSvc.List(c.Context(), filter, page, pageSize)
		if err != nil {
			return common.HandleError(c, err)
		}
		return common.PaginatedJSON(c, "Payments retrieved", txns, page, pageSize, total)
	}
}

func Update(paymentSvc *paymentsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[UpdateRequest](c)
		if input == nil {
			return err
		}
		id, err := uuid.Parse(c.Params("id"))
		if err != nil {
			return common.ErrorJSON(c, fiber.StatusBadRequest, "Invalid payment ID")
		}
		update := &dto.TransactionUpdate{
			Description:   input.Description,
			PaymentMethod: input.PaymentMethod,
		}
		if input.Status != nil {
			status := domain.TransactionStatus(*input.Status)
			update.Status = &status
		}
		t, err := paymentSvc.Update(c.Context(), id, update)
		if err != nil {
			return common.HandleError(c, err)
		}
		return common.SuccessJSON(c, fiber.StatusOK, "Payment updated", t)
	}
}

func SoftDelete(paymentSvc *paymentsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := uuid.Parse(c.Params("id"))
		if err != nil {
			return common.ErrorJSON(c, fiber.StatusBadRequest, "Invalid payment ID")
		}
		if err := paymentSvc.SoftDelete(c.Context(), id); err != nil {
			return common.HandleError(c, err)
		}
		return common.SuccessJSON(c, fiber.StatusOK, "Payment deleted", nil)
	}
}

func EventSummary(paymentSvc *paymentsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := uuid.Parse(c.Params("id"))
		if err != nil {
			return common.ErrorJSON(c, fiber.StatusBadRequest, "Invalid event ID")
		}
		summary, err := paymentSvc.EventSummary(c.Context(), id)
		if err != nil {
			return common.HandleError(c, err)
		}
		return common.SuccessJSON(c, fiber.StatusOK, "Event payment summary", summary)
	}
}

func LatestByContributor(paymentSvc *paymentsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := uuid.Parse(c.Params("id"))
		if err != nil {
			return common.ErrorJSON(c, fiber.StatusBadRequest, "Invalid event ID")
		}
		txns, err := paymentSvc.LatestByContributor(c.Context(), id)
		if err != nil {
			return common.HandleError(c, err)
		}
		return common.SuccessJSON(c, fiber.StatusOK, "Latest payments per member", txns)
	}
}

func UserHistory(paymentSvc *paymentsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := uuid.Parse(c.Params("id"))
		if err != nil {
			return common.ErrorJSON(c, fiber.StatusBadRequest, "Invalid user ID")
		}
		page, pageSize := common.ParsePagination(c)
		txns, total, err := paymentSvc.UserHistory(c.Context(), userID, page, pageSize)
		if err != nil {
			return common.HandleError(c, err)
		}
		return common.PaginatedJSON(c, "Payment history retrieved", txns, page, pageSize, total)
	}
}
