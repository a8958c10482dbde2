package utils

import (
	"github.com/gofiber/fiber/v2"
)

func ErrorResponse(c *fiber.Ctx, status int, message string, err error) error {
	var errMsg interface{}
	if err != nil {
		errMsg = err.Error()
	} else {
		errMsg = nil
	}
	return c.Status(status).JSON(fiber.Map{
		"message": message,
		"error":   errMsg,
	})
}

func SuccessResponse(c *fiber.Ctx, status int, data any) error {
	return c.Status(status).JSON(fiber.Map{
		"status": "success",
		"data":   data,
	})
}

func StringPtr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// ApplySlicePagination cắt trang trên snapshot đã load (store trả slice,
// không phải query builder)
func ApplySlicePagination[T any](rows []T, limit, page *int) []T {
	if limit == nil || *limit <= 0 || page == nil || *page < 1 {
		return rows
	}
	offset := *limit * (*page - 1)
	if offset >= len(rows) {
		return []T{}
	}
	end := offset + *limit
	if end > len(rows) {
		end = len(rows)
	}
	return rows[offset:end]
}
