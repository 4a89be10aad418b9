package common

import "github.com/gofiber/fiber/v2"

const (
	DefaultPageSize = 10
	MaxPageSize     = 100
)

// ParsePagination reads pageNo and pageSize query parameters with sane
// bounds.
func ParsePagination(c *fiber.Ctx) (page, pageSize int) {
	page = c.QueryInt("pageNo", 1)
	if page < 1 {
		page = 1
	}
	pageSize = c.QueryInt("pageSize", DefaultPageSize)
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}
	if pageSize > MaxPageSize {
		pageSize = MaxPageSize
	}
	return page, pageSize
}
