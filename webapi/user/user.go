// Package user exposes account management endpoints.
package user

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/splitmoney/splitmoney/pkg/config"
	"github.com/splitmoney/splitmoney/pkg/dto"
	"github.com/splitmoney/splitmoney/pkg/middleware"
	rolesvc "github.com/splitmoney/splitmoney/pkg/service/role"
	usersvc "github.com/splitmoney/splitmoney/pkg/service/user"
	"github.com/splitmoney/splitmoney/webapi/common"
)

func Routes(
	app *fiber.App,
	userSvc *usersvc.Service,
	roleSvc *rolesvc.Service,
	cfg *config.Jwt,
	logger *slog.Logger,
) {
	app.Post("/users", Register(userSvc))
	app.Get("/users",
		middleware.Protected(cfg), middleware.RequireAdmin(logger),
		List(userSvc))
	app.Get("/users/:id",
		middleware.Protected(cfg), middleware.RequireSelfOrAdmin("id"),
		Get(userSvc))
	app.Put("/users/:id",
		middleware.Protected(cfg), middleware.RequireSelfOrAdmin("id"),
		Update(userSvc))
	app.Patch("/users/:id/delete",
		middleware.Protected(cfg), middleware.RequireAdmin(logger),
		SoftDelete(userSvc))
	app.Post("/users/:id/role",
		middleware.Protected(cfg), middleware.RequireAdmin(logger),
		AssignRole(roleSvc))
}

// Register creates an account. The endpoint is public; new accounts must
// verify their email on first login.
func Register(userSvc *usersvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[RegisterRequest](c)
		if input == nil {
			return err
		}
		u, err := userSvc.Register(
			c.Context(),
			input.FullName, input.Email, input.ContactNo, input.Password,
		)
		if err != nil {
			return common.HandleError(c, err)
		}
		return common.SuccessJSON(c, fiber.StatusCreated, "User registered", u)
	}
}

func Get(userSvc *usersvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := uuid.Parse(c.Params("id"))
		if err != nil {
			return common.ErrorJSON(c, fiber.StatusBadRequest, "Invalid user ID")
		}
		u, err := userSvc.Get(c.Context(), id)
		if err != nil {
			return common.HandleError(c, err)
		}
		return common.SuccessJSON(c, fiber.StatusOK, "User found", u)
	}
}

func List(userSvc *usersvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		page, pageSize := common.ParsePagination(c)
		users, total, err := userSvc.List(c.Context(), c.Query("search"), page, pageSize)
		if err != nil {
			return common.HandleError(c, err)
		}
		return common.PaginatedJSON(c, "Users retrieved", users, page, pageSize, total)
	}
}

func Update(userSvc *usersvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[UpdateRequest](c)
		if input == nil {
			return err
		}
		id, err := uuid.Parse(c.Params("id"))
		if err != nil {
			return common.ErrorJSON(c, fiber.StatusBadRequest, "Invalid user ID")
		}
		u, err := userSvc.Update(c.Context(), id, &dto.UserUpdate{
			FullName:  input.FullName,
			Email:     input.Email,
			ContactNo: input.ContactNo,
			Password:  input.Password,
		})
		if err != nil {
			return common.HandleError(c, err)
		}
		return common.SuccessJSON(c, fiber.StatusOK, "User updated", u)
	}
}

func SoftDelete(userSvc *usersvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := uuid.Parse(c.Params("id"))
		if err != nil {
			return common.ErrorJSON(c, fiber.StatusBadRequest, "Invalid user ID")
		}
		if err := userSvc.SoftDelete(c.Context(), id); err != nil {
			return common.HandleError(c, err)
		}
		return common.SuccessJSON(c, fiber.StatusOK, "User deleted", nil)
	}
}

// AssignRole replaces the account's active role assignment.
func AssignRole(roleSvc *rolesvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[AssignRoleRequest](c)
		if input == nil {
			return err
		}
		userID, err := uuid.Parse(c.Params("id"))
		if err != nil {
			return common.ErrorJSON(c, fiber.StatusBadRequest, "Invalid user ID")
		}
		roleID, err := uuid.Parse(input.RoleID)
		if err != nil {
			return common.ErrorJSON(c, fiber.StatusBadRequest, "Invalid role ID")
		}
		if err := roleSvc.Assign(c.Context(), userID, roleID); err != nil {
			return common.HandleError(c, err)
		}
		return common.SuccessJSON(c, fiber.StatusOK, "Role assigned", nil)
	}
}
