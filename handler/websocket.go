package handler

import (
	"context"
	"encoding/json"
	"log"
	"strconv"
	"sync"

	"github.com/gofiber/contrib/websocket"

	"event_ticketing/database"
	"event_ticketing/model"
)

var (
	ticketConnections = make(map[uint]map[*websocket.Conn]bool)
	ticketMutex       sync.Mutex
)

type TicketUI struct {
	Id       uint    `json:"id"`
	Name     string  `json:"name"`
	Category string  `json:"category"`
	Price    float64 `json:"price"`
	Quota    int     `json:"quota"`
	Sold     int     `json:"sold"`
	SoldOut  bool    `json:"soldOut"`
}

// TicketWebsocket đẩy realtime tình trạng vé của một event cho client
func TicketWebsocket(c *websocket.Conn) {
	eventIdStr := c.Params("eventId")
	id64, err := strconv.ParseUint(eventIdStr, 10, 64)
	if err != nil {
		log.Printf("Invalid eventId: %s", eventIdStr)
		c.Close()
		return
	}
	eventId := uint(id64)

	// Thêm connection vào map
	ticketMutex.Lock()
	if ticketConnections[eventId] == nil {
		ticketConnections[eventId] = make(map[*websocket.Conn]bool)
	}
	ticketConnections[eventId][c] = true
	ticketMutex.Unlock()

	defer func() {
		ticketMutex.Lock()
		delete(ticketConnections[eventId], c)
		if len(ticketConnections[eventId]) == 0 {
			delete(ticketConnections, eventId)
		}
		ticketMutex.Unlock()
		c.Close()
	}()

	// Gửi snapshot lần đầu cho client mới connect
	if snapshot, err := buildTicketUI(eventId); err == nil {
		c.WriteJSON(snapshot)
	}

	if redisClient == nil {
		// Không có Redis: broadcast được ghi thẳng vào conn,
		// loop này chỉ giữ connection
		for {
			if _, _, err := c.ReadMessage(); err != nil {
				return
			}
		}
	}

	// Sub kênh Redis của event
	pubsub := redisClient.Subscribe(
		context.Background(),
		database.AvailabilityChannel(eventId),
	)
	defer pubsub.Close()

	for range pubsub.Channel() {
		// Payload trên kênh chỉ là tín hiệu, load lại snapshot cho chắc
		snapshot, err := buildTicketUI(eventId)
		if err != nil {
			log.Printf("Lỗi load vé cho broadcast: %v", err)
			continue
		}
		if err := c.WriteJSON(snapshot); err != nil {
			return
		}
	}
}

// BroadcastEventTickets đẩy tình trạng vé mới nhất của event tới mọi client
func BroadcastEventTickets(eventId uint) {
	if redisClient != nil {
		payload, _ := json.Marshal(availabilitySignal{EventID: eventId})
		if err := redisClient.Publish(context.Background(), database.AvailabilityChannel(eventId), payload).Err(); err != nil {
			log.Printf("Lỗi publish availability event %d: %v", eventId, err)
		}
		return
	}

	snapshot, err := buildTicketUI(eventId)
	if err != nil {
		log.Printf("Lỗi load vé cho broadcast: %v", err)
		return
	}

	ticketMutex.Lock()
	conns, ok := ticketConnections[eventId]
	if !ok {
		ticketMutex.Unlock()
		return
	}
	ticketMutex.Unlock()

	for conn := range conns {
		if err := conn.WriteJSON(snapshot); err != nil {
			log.Printf("Error broadcasting ticket state: %v", err)
		}
	}
}

type availabilitySignal struct {
	EventID uint `json:"eventId"`
}

func buildTicketUI(eventId uint) ([]TicketUI, error) {
	all, err := Store.List()
	if err != nil {
		return nil, err
	}
	result := make([]TicketUI, 0, len(all))
	for _, t := range all {
		if t.EventID != eventId || t.Deleted {
			continue
		}
		result = append(result, ticketUIFrom(t))
	}
	return result, nil
}

func ticketUIFrom(t model.Ticket) TicketUI {
	return TicketUI{
		Id:       t.ID,
		Name:     t.Name,
		Category: t.Category,
		Price:    t.Price,
		Quota:    t.Quota,
		Sold:     t.Sold,
		SoldOut:  t.SoldOut(),
	}
}
