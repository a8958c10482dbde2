package validate

import (
	"github.com/gofiber/fiber/v2"

	"event_ticketing/model"
	"event_ticketing/utils"
)

func CreateEvent() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CreateEventInput
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, 400, "Dữ liệu không hợp lệ", err)
		}
		if err := validate.Struct(input); err != nil {
			return utils.ErrorResponse(c, 400, err.Error(), err)
		}
		if input.EndTime != nil && input.EndTime.Before(input.StartTime) {
			return utils.ErrorResponse(c, 400, "endTime phải sau startTime", nil)
		}
		c.Locals("input", input)
		return c.Next()
	}
}
