package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jinzhu/copier"

	"event_ticketing/helper"
	"event_ticketing/inventory"
	"event_ticketing/model"
	"event_ticketing/utils"
)

func CreateEvent(c *fiber.Ctx) error {
	input := c.Locals("input").(model.CreateEventInput)

	var newEvent model.Event
	copier.Copy(&newEvent, &input)
	newEvent.Slug = helper.GenerateUniqueEventSlug(Events, input.Name)

	if newEvent.Active == nil {
		active := true
		newEvent.Active = &active
	}

	event, err := Events.CreateEvent(newEvent)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Không thể tạo sự kiện", err)
	}
	return utils.SuccessResponse(c, fiber.StatusCreated, event)
}

func GetEvents(c *fiber.Ctx) error {
	events, err := Events.ListEvents()
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Không thể lấy danh sách sự kiện", err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, events)
}

func GetEventById(c *fiber.Ctx) error {
	id := c.Locals("inputId").(uint)

	event, err := Events.GetEvent(id)
	if err != nil {
		if errors.Is(err, inventory.ErrEventNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, "Không tìm thấy sự kiện", err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Lỗi truy vấn sự kiện", err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, event)
}
