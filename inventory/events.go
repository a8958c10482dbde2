package inventory

import "time"

// SaleEvent được phát ra sau khi một giao dịch mua đã commit.
// Consumer (ledger worker, websocket broadcast) xử lý độc lập,
// giao at-least-once, không đảm bảo thứ tự giữa các consumer.
type SaleEvent struct {
	Code      string    `json:"code"`
	TicketID  uint      `json:"ticketId"`
	EventID   uint      `json:"eventId"`
	Price     float64   `json:"price"`
	Remaining int       `json:"remaining"`
	Sold      int       `json:"sold"`
	SoldAt    time.Time `json:"soldAt"`
}

type Publisher interface {
	PublishSale(ev SaleEvent)
}
