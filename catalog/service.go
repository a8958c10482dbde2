package catalog

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/jinzhu/copier"

	"event_ticketing/inventory"
	"event_ticketing/model"
)

// ErrValidation: input tạo/sửa vé không hợp lệ, reject trước khi đụng store
var ErrValidation = errors.New("VALIDATION_ERROR")

var validate = validator.New()

// EventChecker: event cha phải tồn tại trước khi tạo vé tham chiếu nó
type EventChecker interface {
	EventExists(id uint) (bool, error)
}

// Service quản lý vòng đời vé (trừ mua vé — việc đó của inventory.Engine)
type Service struct {
	store  inventory.Store
	events EventChecker
}

func NewService(store inventory.Store, events EventChecker) *Service {
	return &Service{store: store, events: events}
}

func (s *Service) AddTicket(input model.CreateTicketInput) (model.Ticket, error) {
	if err := validate.Struct(input); err != nil {
		return model.Ticket{}, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	exists, err := s.events.EventExists(input.EventID)
	if err != nil {
		return model.Ticket{}, fmt.Errorf("%w: %v", inventory.ErrUnavailable, err)
	}
	if !exists {
		return model.Ticket{}, fmt.Errorf("%w: event %d không tồn tại", ErrValidation, input.EventID)
	}

	var ticket model.Ticket
	copier.Copy(&ticket, &input)
	ticket.Sold = 0
	ticket.Deleted = false

	return s.store.Create(ticket)
}

// UpdateTicket ghi đè các field được phép sửa. Quota là overwrite trực tiếp,
// KHÔNG đối chiếu lại với sold: organizer set quota thấp hơn số đã bán thì
// vé lập tức hết hàng theo quy ước quota <= 0, không phải lỗi.
func (s *Service) UpdateTicket(id uint, input model.UpdateTicketInput) (model.Ticket, error) {
	if err := validate.Struct(input); err != nil {
		return model.Ticket{}, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	ticket, err := s.store.Get(id)
	if err != nil {
		return model.Ticket{}, err
	}

	if input.Name != nil {
		ticket.Name = *input.Name
	}
	if input.Price != nil {
		ticket.Price = *input.Price
	}
	if input.Quota != nil {
		ticket.Quota = *input.Quota
	}
	if input.Category != nil {
		ticket.Category = *input.Category
	}

	return s.store.Update(ticket)
}

// ListAvailable trả về snapshot các vé chưa bị soft-delete
func (s *Service) ListAvailable() ([]model.Ticket, error) {
	all, err := s.store.List()
	if err != nil {
		return nil, err
	}
	out := make([]model.Ticket, 0, len(all))
	for _, t := range all {
		if !t.Deleted {
			out = append(out, t)
		}
	}
	return out, nil
}

// DeleteTicket xoá cứng, khác với cờ deleted
func (s *Service) DeleteTicket(id uint) error {
	return s.store.Delete(id)
}

// DisableTicket bật cờ soft-delete: vé biến mất khỏi listing và không mua
// được nữa nhưng record vẫn giữ lại cho lịch sử
func (s *Service) DisableTicket(id uint) (model.Ticket, error) {
	return s.setDeleted(id, true)
}

func (s *Service) EnableTicket(id uint) (model.Ticket, error) {
	return s.setDeleted(id, false)
}

func (s *Service) setDeleted(id uint, deleted bool) (model.Ticket, error) {
	ticket, err := s.store.Get(id)
	if err != nil {
		return model.Ticket{}, err
	}
	ticket.Deleted = deleted
	return s.store.Update(ticket)
}
