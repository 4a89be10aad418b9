package common

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// BindAndValidate parses the JSON body into T and runs struct validation.
// On failure the error envelope is already written; callers check for a nil
// result and return the accompanying error.
func BindAndValidate[T any](c *fiber.Ctx) (*T, error) {
	var input T
	if err := c.BodyParser(&input); err != nil {
		return nil, ErrorJSON(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&input); err != nil {
		return nil, ErrorJSON(c, fiber.StatusBadRequest, "Validation failed: "+err.Error())
	}
	return &input, nil
}
