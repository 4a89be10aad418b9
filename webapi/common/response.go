// Package common holds the response envelope and request binding helpers
// shared by all endpoint packages.
package common

import (
	"github.com/gofiber/fiber/v2"
)

// Response is the envelope every JSON endpoint returns. Pagination fields
// appear only on paginated listings.
type Response struct {
	IsSuccess   bool   `json:"IsSuccess"`
	Message     string `json:"Message"`
	Data        any    `json:"Data"`
	PageNo      *int   `json:"PageNo,omitempty"`
	PageSize    *int   `json:"PageSize,omitempty"`
	TotalRecord *int64 `json:"TotalRecord,omitempty"`
	TotalPages  *int64 `json:"TotalPages,omitempty"`
}

// SuccessJSON writes a success envelope with the given status code.
func SuccessJSON(c *fiber.Ctx, status int, message string, data any) error {
	return c.Status(status).JSON(Response{
		IsSuccess: true,
		Message:   message,
		Data:      data,
	})
}

// ErrorJSON writes a failure envelope with the given status code.
func ErrorJSON(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(Response{
		IsSuccess: false,
		Message:   message,
	})
}

// PaginatedJSON writes a success envelope with pagination metadata.
// TotalPages is the ceiling of totalRecord over pageSize.
func PaginatedJSON(
	c *fiber.Ctx,
	message string,
	data any,
	pageNo, pageSize int,
	totalRecord int64,
) error {
	totalPages := int64(0)
	if pageSize > 0 {
		totalPages = (totalRecord + int64(pageSize) - 1) / int64(pageSize)
	}
	return c.Status(fiber.StatusOK).JSON(Response{
		IsSuccess:   true,
		Message:     message,
		Data:        data,
		PageNo:      &pageNo,
		PageSize:    &pageSize,
		TotalRecord: &totalRecord,
		TotalPages:  &totalPages,
	})
}
