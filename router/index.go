package router

import (
	"event_ticketing/handler"
	"event_ticketing/validate"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func SetupRoutes(app *fiber.App) {
	api := app.Group("/api", logger.New())
	v1 := api.Group("/v1", logger.New())

	event := v1.Group("/event", logger.New())
	event.Get("/", handler.GetEvents)
	event.Get("/:eventId", validate.GetById("eventId"), handler.GetEventById)
	event.Post("/", validate.CreateEvent(), handler.CreateEvent)

	ticket := v1.Group("/ticket", logger.New())
	ticket.Get("/", validate.FilterTicket(), handler.GetTickets)
	ticket.Get("/:ticketId", validate.GetById("ticketId"), handler.GetTicketById)
	ticket.Post("/", validate.CreateTicket(), handler.CreateTicket)
	ticket.Put("/:ticketId", validate.UpdateTicket("ticketId"), handler.UpdateTicket)
	ticket.Delete("/", validate.Delete(), handler.DeleteTicket)
	ticket.Patch("/:ticketId/disable", validate.GetById("ticketId"), handler.DisableTicket)
	ticket.Patch("/:ticketId/enable", validate.GetById("ticketId"), handler.EnableTicket)
	ticket.Post("/:ticketId/purchase", validate.GetById("ticketId"), handler.PurchaseTicket)

	purchase := v1.Group("/purchase", logger.New())
	purchase.Get("/:code/qr", handler.PurchaseQR)

	// Websocket realtime tình trạng vé theo event
	app.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return fiber.ErrUpgradeRequired
	})
	app.Get("/ws/event/:eventId/tickets", websocket.New(handler.TicketWebsocket))
}
