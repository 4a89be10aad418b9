// Package role exposes admin-only role management endpoints.
package role

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/splitmoney/splitmoney/pkg/config"
	"github.com/splitmoney/splitmoney/pkg/middleware"
	rolesvc "github.com/splitmoney/splitmoney/pkg/service/role"
	"github.com/splitmoney/splitmoney/webapi/common"
)

// RoleRequest creates or renames a role.
type RoleRequest struct {
	Name string `json:"name" validate:"required,min=2,max=50"`
}

func Routes(app *fiber.App, roleSvc *rolesvc.Service, cfg *config.Jwt, logger *slog.Logger) {
	grp := app.Group("/roles", middleware.Protected(cfg), middleware.RequireAdmin(logger))
	grp.Post("/", Create(roleSvc))
	grp.Get("/", List(roleSvc))
	grp.Get("/:id", Get(roleSvc))
	grp.Put("/:id", Update(roleSvc))
	grp.Patch("/:id/delete", SoftDelete(roleSvc))
}

func Create(roleSvc *rolesvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[RoleRequest](c)
		if input == nil {
			return err
		}
		r, err := roleSvc.Create(c.Context(), input.Name)
		if err != nil {
			return common.HandleError(c, err)
		}
		return common.SuccessJSON(c, fiber.StatusCreated, "Role created", r)
	}
}

func Get(roleSvc *rolesvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := uuid.Parse(c.Params("id"))
		if err != nil {
			return common.ErrorJSON(c, fiber.StatusBadRequest, "Invalid role ID")
		}
		r, err := roleSvc.Get(c.Context(), id)
		if err != nil {
			return common.HandleError(c, err)
		}
		return common.SuccessJSON(c, fiber.StatusOK, "Role found", r)
	}
}

func List(roleSvc *rolesvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		roles, err := roleSvc.List(c.Context())
		if err != nil {
			return common.HandleError(c, err)
		}
		return common.SuccessJSON(c, fiber.StatusOK, "Roles retrieved", roles)
	}
}

func Update(roleSvc *rolesvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[RoleRequest](c)
		if input == nil {
			return err
		}
		id, err := uuid.Parse(c.Params("id"))
		if err != nil {
			return common.ErrorJSON(c, fiber.StatusBadRequest, "Invalid role ID")
		}
		r, err := roleSvc.Update(c.Context(), id, input.Name)
		if err != nil {
			return common.HandleError(c, err)
		}
		return common.SuccessJSON(c, fiber.StatusOK, "Role updated", r)
	}
}

func SoftDelete(roleSvc *rolesvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := uuid.Parse(c.Params("id"))
		if err != nil {
			return common.ErrorJSON(c, fiber.StatusBadRequest, "Invalid role ID")
		}
		if err := roleSvc.SoftDelete(c.Context(), id); err != nil {
			return common.HandleError(c, err)
		}
		return common.SuccessJSON(c, fiber.StatusOK, "Role deleted", nil)
	}
}
