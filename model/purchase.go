package model

import "time"

// PurchaseRecord là sổ bán vé, ghi lại từng giao dịch đã commit.
// Record không bao giờ bị xoá, kể cả khi ticket bị xoá cứng.
type PurchaseRecord struct {
	DTO
	Code      string    `gorm:"size:40;uniqueIndex" json:"code"`
	TicketID  uint      `gorm:"index;not null" json:"ticketId"`
	EventID   uint      `gorm:"index;not null" json:"eventId"`
	Price     float64   `gorm:"not null" json:"price"`
	SoldAt    time.Time `gorm:"not null" json:"soldAt"`
	Remaining int       `json:"remaining"`
}
