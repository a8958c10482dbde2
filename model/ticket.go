package model

const (
	CategoryVIP     = "VIP"
	CategoryRegular = "REGULAR"
)

type Ticket struct {
	DTO
	Name     string  `gorm:"size:255;not null" json:"name"`
	Price    float64 `gorm:"not null" json:"price"`
	Category string  `gorm:"size:20;not null;default:'REGULAR'" json:"category"`
	Quota    int     `gorm:"not null" json:"quota"`
	Sold     int     `gorm:"not null;default:0" json:"sold"`
	EventID  uint    `gorm:"index;not null" json:"eventId"`
	Deleted  bool    `gorm:"not null;default:false" json:"deleted"`

	Event Event `gorm:"foreignKey:EventID" json:"-"`
}

// SoldOut theo quy ước: quota <= 0 là hết vé (kể cả khi organizer
// ghi đè quota xuống dưới số đã bán)
func (t *Ticket) SoldOut() bool {
	return t.Quota <= 0
}

type CreateTicketInput struct {
	Name     string  `json:"name" validate:"required"`
	Price    float64 `json:"price" validate:"gte=0"`
	Quota    int     `json:"quota" validate:"gte=0"`
	Category string  `json:"category" validate:"required,oneof=VIP REGULAR"`
	EventID  uint    `json:"eventId" validate:"required"`
}

type UpdateTicketInput struct {
	Name     *string  `json:"name" validate:"omitempty,min=1"`
	Price    *float64 `json:"price" validate:"omitempty,gte=0"`
	Quota    *int     `json:"quota" validate:"omitempty,gte=0"`
	Category *string  `json:"category" validate:"omitempty,oneof=VIP REGULAR"`
}

type FilterTicketInput struct {
	Pagination
	EventId  uint   `json:"eventId" query:"eventId" validate:"omitempty,gt=0"`
	Category string `json:"category" query:"category" validate:"omitempty,oneof=VIP REGULAR"`
}
