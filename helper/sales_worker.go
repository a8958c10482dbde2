package helper

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"event_ticketing/database"
	"event_ticketing/inventory"
)

// StartSalesWorker tiêu thụ queue bán vé trên Redis và ghi sổ.
// Queue giao at-least-once: ghi trùng code thì ledger tự bỏ qua.
func StartSalesWorker(ctx context.Context, client *redis.Client, ledger inventory.Ledger) {
	go func() {
		for {
			res, err := client.BRPop(ctx, 5*time.Second, database.SalesQueue).Result()
			if err != nil {
				if errors.Is(err, context.Canceled) {
					return
				}
				if !errors.Is(err, redis.Nil) {
					log.Printf("Lỗi đọc sales queue: %v", err)
					time.Sleep(time.Second)
				}
				continue
			}
			// res[0] là tên queue, res[1] là payload
			var ev inventory.SaleEvent
			if err := json.Unmarshal([]byte(res[1]), &ev); err != nil {
				log.Printf("Payload sales queue không hợp lệ, bỏ qua: %v", err)
				continue
			}
			if err := ledger.RecordSale(recordFromSale(ev)); err != nil {
				log.Printf("Lỗi ghi sổ sale %s: %v", ev.Code, err)
				// Đẩy lại để xử lý lần sau
				client.LPush(ctx, database.SalesQueue, res[1])
				time.Sleep(time.Second)
			}
		}
	}()
}
