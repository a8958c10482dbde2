package database

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/redis/go-redis/v9"

	"event_ticketing/inventory"
)

const SalesQueue = "ticket_sales_queue"

// AvailabilityChannel là kênh pub/sub theo event, websocket handler subscribe
func AvailabilityChannel(eventId uint) string {
	return fmt.Sprintf("event:%d:tickets", eventId)
}

func NewRedisClient(addr string) *redis.Client {
	return redis.NewClient(&redis.Options{Addr: addr})
}

// RedisPublisher đẩy SaleEvent vào queue cho ledger worker và publish
// lên kênh availability cho realtime broadcast
type RedisPublisher struct {
	client *redis.Client
}

func NewRedisPublisher(client *redis.Client) *RedisPublisher {
	return &RedisPublisher{client: client}
}

func (p *RedisPublisher) PublishSale(ev inventory.SaleEvent) {
	payload, err := json.Marshal(ev)
	if err != nil {
		log.Printf("Lỗi marshal sale event %s: %v", ev.Code, err)
		return
	}
	ctx := context.Background()

	if err := p.client.LPush(ctx, SalesQueue, payload).Err(); err != nil {
		log.Printf("Không thể LPUSH sale %s vào queue: %v", ev.Code, err)
	}
	if err := p.client.Publish(ctx, AvailabilityChannel(ev.EventID), payload).Err(); err != nil {
		log.Printf("Không thể publish sale %s lên kênh event %d: %v", ev.Code, ev.EventID, err)
	}
}
