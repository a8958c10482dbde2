package inventory

import (
	"sort"
	"sync"
	"time"

	"event_ticketing/model"
)

// Store giữ bản ghi vé gốc, mọi mutation quota/sold đều phải đi qua đây.
// Get/List trả về bản copy nên caller không sửa được state bên trong store.
type Store interface {
	Create(t model.Ticket) (model.Ticket, error)
	Get(id uint) (model.Ticket, error)
	Update(t model.Ticket) (model.Ticket, error)
	Delete(id uint) error
	List() ([]model.Ticket, error)
}

// EventStore quản lý event cha của vé
type EventStore interface {
	CreateEvent(e model.Event) (model.Event, error)
	GetEvent(id uint) (model.Event, error)
	ListEvents() ([]model.Event, error)
	EventExists(id uint) (bool, error)
	EventSlugTaken(slug string) (bool, error)
}

// Ledger ghi sổ các giao dịch bán vé đã commit
type Ledger interface {
	RecordSale(rec model.PurchaseRecord) error
	GetSaleByCode(code string) (model.PurchaseRecord, error)
}

// MemoryStore: map theo id dưới RWMutex. Dùng khi STORE_DRIVER=memory
// và trong test.
type MemoryStore struct {
	mu         sync.RWMutex
	tickets    map[uint]model.Ticket
	events     map[uint]model.Event
	sales      map[string]model.PurchaseRecord
	nextTicket uint
	nextEvent  uint
	nextSale   uint
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		tickets: make(map[uint]model.Ticket),
		events:  make(map[uint]model.Event),
		sales:   make(map[string]model.PurchaseRecord),
	}
}

func (s *MemoryStore) Create(t model.Ticket) (model.Ticket, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextTicket++
	now := time.Now()
	t.ID = s.nextTicket
	t.CreatedAt = now
	t.UpdatedAt = now
	s.tickets[t.ID] = t
	return t, nil
}

func (s *MemoryStore) Get(id uint) (model.Ticket, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	t, ok := s.tickets[id]
	if !ok {
		return model.Ticket{}, ErrTicketNotFound
	}
	return t, nil
}

func (s *MemoryStore) Update(t model.Ticket) (model.Ticket, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	old, ok := s.tickets[t.ID]
	if !ok {
		return model.Ticket{}, ErrTicketNotFound
	}
	t.CreatedAt = old.CreatedAt
	t.UpdatedAt = time.Now()
	s.tickets[t.ID] = t
	return t, nil
}

func (s *MemoryStore) Delete(id uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.tickets[id]; !ok {
		return ErrTicketNotFound
	}
	delete(s.tickets, id)
	return nil
}

// List trả snapshot tại thời điểm gọi, sort theo id cho ổn định
func (s *MemoryStore) List() ([]model.Ticket, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.Ticket, 0, len(s.tickets))
	for _, t := range s.tickets {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *MemoryStore) CreateEvent(e model.Event) (model.Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextEvent++
	now := time.Now()
	e.ID = s.nextEvent
	e.CreatedAt = now
	e.UpdatedAt = now
	if e.Active == nil {
		active := true
		e.Active = &active
	}
	s.events[e.ID] = e
	return e, nil
}

func (s *MemoryStore) GetEvent(id uint) (model.Event, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	e, ok := s.events[id]
	if !ok {
		return model.Event{}, ErrEventNotFound
	}
	return e, nil
}

func (s *MemoryStore) ListEvents() ([]model.Event, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.Event, 0, len(s.events))
	for _, e := range s.events {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *MemoryStore) EventExists(id uint) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.events[id]
	return ok, nil
}

func (s *MemoryStore) EventSlugTaken(slug string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, e := range s.events {
		if e.Slug == slug {
			return true, nil
		}
	}
	return false, nil
}

func (s *MemoryStore) RecordSale(rec model.PurchaseRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.sales[rec.Code]; ok {
		// queue giao at-least-once, bỏ qua record trùng code
		return nil
	}
	s.nextSale++
	rec.ID = s.nextSale
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now()
	}
	s.sales[rec.Code] = rec
	return nil
}

func (s *MemoryStore) GetSaleByCode(code string) (model.PurchaseRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rec, ok := s.sales[code]
	if !ok {
		return model.PurchaseRecord{}, ErrTicketNotFound
	}
	return rec, nil
}
