package validate

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"event_ticketing/model"
	"event_ticketing/utils"
)

func CreateTicket() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CreateTicketInput
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, 400, "Dữ liệu không hợp lệ", err)
		}
		if err := validate.Struct(input); err != nil {
			return utils.ErrorResponse(c, 400, err.Error(), err)
		}
		c.Locals("input", input)
		return c.Next()
	}
}

func UpdateTicket(key string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		// param
		params := c.Params(key)
		valueKey, err := strconv.Atoi(params)
		if err != nil || valueKey <= 0 {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "ID không phải là số hợp lệ", errors.New("params invalid"))
		}

		// body parse
		var input model.UpdateTicketInput
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, 400, "Dữ liệu không hợp lệ", err)
		}
		if err := validate.Struct(input); err != nil {
			return utils.ErrorResponse(c, 400, err.Error(), err)
		}
		c.Locals("inputId", uint(valueKey))
		c.Locals("input", input)
		return c.Next()
	}
}

func FilterTicket() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.FilterTicketInput
		if err := c.QueryParser(&input); err != nil {
			return utils.ErrorResponse(c, 400, "Query không hợp lệ", err)
		}
		if err := validate.Struct(input); err != nil {
			return utils.ErrorResponse(c, 400, err.Error(), err)
		}
		c.Locals("filter", input)
		return c.Next()
	}
}
