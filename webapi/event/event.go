// Package event exposes event CRUD, summary, share link and join preview
// endpoints.
package event

import (
	"log/slog"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/splitmoney/splitmoney/pkg/config"
	"github.com/splitmoney/splitmoney/pkg/domain"
	"github.com/splitmoney/splitmoney/pkg/dto"
	"github.com/splitmoney/splitmoney/pkg/middleware"
	eventsvc "github.com/splitmoney/splitmoney/pkg/service/event"
	"github.com/splitmoney/splitmoney/pkg/split"
	"github.com/splitmoney/splitmoney/webapi/common"
)

const dateLayout = "2006-01-02"

func Routes(app *fiber.App, eventSvc *eventsvc.Service, cfg *config.Jwt, logger *slog.Logger) {
	// Join preview is public: invitees follow the share link without an
	// account.
	app.Get(split.JoinPath, JoinPreview(eventSvc))

	grp := app.Group("/events", middleware.Protected(cfg))
	grp.Post("/", Create(eventSvc))
	grp.Get("/", List(eventSvc))
	grp.Get("/:id", Get(eventSvc))
	grp.Put("/:id", Update(eventSvc))
	grp.Patch("/:id/status", UpdateStatus(eventSvc))
	grp.Patch("/:id/delete", SoftDelete(eventSvc))
	grp.Get("/:id/summary", Summary(eventSvc))
	grp.Get("/:id/share-link", ShareLink(eventSvc))
}

// requireOwnerOrAdmin loads the event and checks that the caller created it
// or carries an admin role. Returns nil with the response already written on
// failure.
func requireOwnerOrAdmin(c *fiber.Ctx, eventSvc *eventsvc.Service) (*dto.EventRead, error) {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return nil, common.ErrorJSON(c, fiber.StatusBadRequest, "Invalid event ID")
	}
	e, err := eventSvc.Get(c.Context(), id)
	if err != nil {
		return nil, common.HandleError(c, err)
	}
	if middleware.IsAdmin(c) {
		return e, nil
	}
	userID, err := middleware.CurrentUserID(c)
	if err != nil || e.CreatedBy != userID {
		return nil, common.ErrorJSON(c, fiber.StatusForbidden, "Access denied")
	}
	return e, nil
}

func Create(eventSvc *eventsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[CreateRequest](c)
		if input == nil {
			return err
		}
		userID, err := middleware.CurrentUserID(c)
		if err != nil {
			return common.HandleError(c, err)
		}
		e, err := eventSvc.Create(c.Context(), &dto.EventCreate{
			Title:         input.Title,
			Category:      domain.EventCategory(input.Category),
			Description:   input.Description,
			EventDate:     input.EventDate,
			StartDateTime: input.StartDateTime,
			EndDateTime:   input.EndDateTime,
			DuePayDate:    input.DuePayDate,
			EventAmount:   input.EventAmount,
			Latitude:      input.Latitude,
			Longitude:     input.Longitude,
			PersonsCount:  input.PersonsCount,
			CreatedBy:     userID,
		})
		if err != nil {
			return common.HandleError(c, err)
		}
		return common.SuccessJSON(c, fiber.StatusCreated, "Event created", e)
	}
}

func Get(eventSvc *eventsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := uuid.Parse(c.Params("id"))
		if err != nil {
			return common.ErrorJSON(c, fiber.StatusBadRequest, "Invalid event ID")
		}
		e, err := eventSvc.Get(c.Context(), id)
		if err != nil {
			return common.HandleError(c, err)
		}
		return common.SuccessJSON(c, fiber.StatusOK, "Event found", e)
	}
}

// List applies the query filters. Non-admin callers only see their own
// events.
func List(eventSvc *eventsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		filter := &dto.EventFilter{
			Status:   domain.EventStatus(c.Query("status")),
			Category: domain.EventCategory(c.Query("category")),
			Search:   c.Query("search"),
		}
		if raw := c.Query("fromDate"); raw != "" {
			t, err := time.Parse(dateLayout, raw)
			if err != nil {
				return common.ErrorJSON(c, fiber.StatusBadRequest, "Invalid fromDate")
			}
			filter.FromDate = &t
		}
		if raw := c.Query("toDate"); raw != "" {
			t, err := time.Parse(dateLayout, raw)
			if err != nil {
				return common.ErrorJSON(c, fiber.StatusBadRequest, "Invalid toDate")
			}
			filter.ToDate = &t
		}
		if !middleware.IsAdmin(c) {
			userID, err := middleware.CurrentUserID(c)
			if err != nil {
				return common.HandleError(c, err)
			}
			filter.CreatedBy = userID
		}

		page, pageSize := common.ParsePagination(c)
		events, total, err := eventSvc.List(c.Context(), filter, page, pageSize)
		if err != nil {
			return common.HandleError(c, err)
		}
		return common.PaginatedJSON(c, "Events retrieved", events, page, pageSize, total)
	}
}

func Update(eventSvc *eventsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[UpdateRequest](c)
		if input == nil {
			return err
		}
		e, err := requireOwnerOrAdmin(c, eventSvc)
		if e == nil {
			return err
		}
		update := &dto.EventUpdate{
			Title:         input.Title,
			Description:   input.Description,
			EventDate:     input.EventDate,
			StartDateTime: input.StartDateTime,
			EndDateTime:   input.EndDateTime,
			DuePayDate:    input.DuePayDate,
			EventAmount:   input.EventAmount,
			Latitude:      input.Latitude,
			Longitude:     input.Longitude,
			PersonsCount:  input.PersonsCount,
		}
		if input.Category != nil {
			cat := domain.EventCategory(*input.Category)
			update.Category = &cat
		}
		if input.Status != nil {
			status := domain.EventStatus(*input.Status)
			update.Status = &status
		}
		updated, err := eventSvc.Update(c.Context(), e.ID, update)
		if err != nil {
			return common.HandleError(c, err)
		}
		return common.SuccessJSON(c, fiber.StatusOK, "Event updated", updated)
	}
}

func UpdateStatus(eventSvc *eventsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[StatusRequest](c)
		if input == nil {
			return err
		}
		e, err := requireOwnerOrAdmin(c, eventSvc)
		if e == nil {
			return err
		}
		updated, err := eventSvc.UpdateStatus(c.Context(), e.ID, domain.EventStatus(input.Status))
		if err != nil {
			return common.HandleError(c, err)
		}
		return common.SuccessJSON(c, fiber.StatusOK, "Event status updated", updated)
	}
}

func SoftDelete(eventSvc *eventsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		e, err := requireOwnerOrAdmin(c, eventSvc)
		if e == nil {
			return err
		}
		if err := eventSvc.SoftDelete(c.Context(), e.ID); err != nil {
			return common.HandleError(c, err)
		}
		return common.SuccessJSON(c, fiber.StatusOK, "Event deleted", nil)
	}
}

func Summary(eventSvc *eventsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := uuid.Parse(c.Params("id"))
		if err != nil {
			return common.ErrorJSON(c, fiber.StatusBadRequest, "Invalid event ID")
		}
		summary, err := eventSvc.Summary(c.Context(), id)
		if err != nil {
			return common.HandleError(c, err)
		}
		return common.SuccessJSON(c, fiber.StatusOK, "Event summary", summary)
	}
}

func ShareLink(eventSvc *eventsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		e, err := requireOwnerOrAdmin(c, eventSvc)
		if e == nil {
			return err
		}
		link, err := eventSvc.ShareLink(c.Context(), e.ID)
		if err != nil {
			return common.HandleError(c, err)
		}
		return common.SuccessJSON(c, fiber.StatusOK, "Share link generated", link)
	}
}

// JoinPreview resolves a share link for an invitee without authentication.
func JoinPreview(eventSvc *eventsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		preview, err := eventSvc.JoinPreview(
			c.Context(),
			c.Query("event_id"),
			c.Query("amount"),
		)
		if err != nil {
			return common.HandleError(c, err)
		}
		return common.SuccessJSON(c, fiber.StatusOK, "Event open for joining", preview)
	}
}
