package handler

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"

	"event_ticketing/catalog"
	"event_ticketing/inventory"
	"event_ticketing/model"
	"event_ticketing/utils"
)

func CreateTicket(c *fiber.Ctx) error {
	input := c.Locals("input").(model.CreateTicketInput)

	ticket, err := Catalog.AddTicket(input)
	if err != nil {
		return ticketError(c, "Không thể tạo vé", err)
	}
	return utils.SuccessResponse(c, fiber.StatusCreated, ticket)
}

func UpdateTicket(c *fiber.Ctx) error {
	id := c.Locals("inputId").(uint)
	input := c.Locals("input").(model.UpdateTicketInput)

	ticket, err := Catalog.UpdateTicket(id, input)
	if err != nil {
		return ticketError(c, "Không thể cập nhật vé", err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, ticket)
}

// GetTickets trả danh sách vé đang mở bán (đã lọc soft-delete)
func GetTickets(c *fiber.Ctx) error {
	filter := c.Locals("filter").(model.FilterTicketInput)

	tickets, err := Catalog.ListAvailable()
	if err != nil {
		return ticketError(c, "Không thể lấy danh sách vé", err)
	}

	if filter.EventId > 0 || filter.Category != "" {
		filtered := make([]model.Ticket, 0, len(tickets))
		for _, t := range tickets {
			if filter.EventId > 0 && t.EventID != filter.EventId {
				continue
			}
			if filter.Category != "" && t.Category != filter.Category {
				continue
			}
			filtered = append(filtered, t)
		}
		tickets = filtered
	}

	total := int64(len(tickets))
	rows := utils.ApplySlicePagination(tickets, filter.Limit, filter.Page)

	return utils.SuccessResponse(c, fiber.StatusOK, model.ResponseCustom{
		Rows:       rows,
		Limit:      filter.Limit,
		Page:       filter.Page,
		TotalCount: total,
	})
}

func GetTicketById(c *fiber.Ctx) error {
	id := c.Locals("inputId").(uint)

	ticket, err := Store.Get(id)
	if err != nil {
		return ticketError(c, "Không tìm thấy vé", err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, ticket)
}

func DeleteTicket(c *fiber.Ctx) error {
	input := c.Locals("deleteIds").(model.ArrayId)

	for _, id := range input.IDs {
		if err := Catalog.DeleteTicket(id); err != nil {
			return ticketError(c, "Không thể xoá vé", err)
		}
	}
	return utils.SuccessResponse(c, fiber.StatusOK, input.IDs)
}

func DisableTicket(c *fiber.Ctx) error {
	id := c.Locals("inputId").(uint)

	ticket, err := Catalog.DisableTicket(id)
	if err != nil {
		return ticketError(c, "Không thể vô hiệu hoá vé", err)
	}
	BroadcastEventTickets(ticket.EventID)
	return utils.SuccessResponse(c, fiber.StatusOK, ticket)
}

func EnableTicket(c *fiber.Ctx) error {
	id := c.Locals("inputId").(uint)

	ticket, err := Catalog.EnableTicket(id)
	if err != nil {
		return ticketError(c, "Không thể mở lại vé", err)
	}
	BroadcastEventTickets(ticket.EventID)
	return utils.SuccessResponse(c, fiber.StatusOK, ticket)
}

// PurchaseTicket: mua đúng 1 vé. Engine đảm bảo không oversell,
// handler chỉ dịch kết quả sang HTTP.
func PurchaseTicket(c *fiber.Ctx) error {
	id := c.Locals("inputId").(uint)

	ticket, code, err := Engine.Purchase(id)
	if err != nil {
		switch {
		case errors.Is(err, inventory.ErrTicketNotFound):
			return utils.ErrorResponse(c, fiber.StatusNotFound, "Vé không tồn tại hoặc đã ngừng bán", err)
		case errors.Is(err, inventory.ErrSoldOut):
			return utils.ErrorResponse(c, fiber.StatusConflict, "Vé đã bán hết", err)
		default:
			log.Printf("Purchase vé %d thất bại: %v", id, err)
			return utils.ErrorResponse(c, fiber.StatusServiceUnavailable, "Hệ thống bận, thử lại sau", err)
		}
	}

	BroadcastEventTickets(ticket.EventID)

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"ticket":       ticket,
		"purchaseCode": code,
		"soldOut":      ticket.SoldOut(),
	})
}

// PurchaseQR render mã biên nhận thành PNG để check-in
func PurchaseQR(c *fiber.Ctx) error {
	code := c.Params("code")

	rec, err := Ledger.GetSaleByCode(code)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Không tìm thấy giao dịch", err)
	}

	qr, err := utils.GenerateQRCode(rec.Code, 256)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Không thể tạo QR", err)
	}
	c.Set("Content-Type", "image/png")
	return c.Send(qr)
}

func ticketError(c *fiber.Ctx, message string, err error) error {
	switch {
	case errors.Is(err, inventory.ErrTicketNotFound):
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Không tìm thấy vé", err)
	case errors.Is(err, catalog.ErrValidation):
		return utils.ErrorResponse(c, fiber.StatusBadRequest, message, err)
	case errors.Is(err, inventory.ErrUnavailable):
		return utils.ErrorResponse(c, fiber.StatusServiceUnavailable, message, err)
	default:
		log.Printf("%s: %v", message, err)
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, message, err)
	}
}
