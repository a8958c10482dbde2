package inventory

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"event_ticketing/model"
)

// AtomicSeller: store tự serialize được giao dịch bán (conditional update
// trên DB, check RowsAffected). Engine ưu tiên đường này khi store hỗ trợ.
type AtomicSeller interface {
	Sell(id uint) (model.Ticket, error)
}

// Engine là nơi duy nhất được phép chuyển "muốn mua 1 vé" thành một lần
// decrement quota. Hai request mua cùng một vé phải được serialize,
// vé khác nhau thì chạy song song.
type Engine struct {
	store Store
	pub   Publisher

	mu    sync.Mutex
	locks map[uint]*sync.Mutex
}

func NewEngine(store Store, pub Publisher) *Engine {
	return &Engine{
		store: store,
		pub:   pub,
		locks: make(map[uint]*sync.Mutex),
	}
}

// lockFor lấy mutex riêng của ticket, tạo lần đầu khi chưa có
func (e *Engine) lockFor(id uint) *sync.Mutex {
	e.mu.Lock()
	defer e.mu.Unlock()
	l, ok := e.locks[id]
	if !ok {
		l = &sync.Mutex{}
		e.locks[id] = l
	}
	return l
}

// Purchase bán đúng 1 vé: check tồn tại → check quota → quota-1, sold+1
// trong một bước atomic. Thất bại thì không có thay đổi state nào.
// Trả về bản ghi vé sau khi bán kèm mã biên nhận.
func (e *Engine) Purchase(id uint) (model.Ticket, string, error) {
	t, err := e.sell(id)
	if err != nil {
		return model.Ticket{}, "", err
	}

	code := "TKT-" + uuid.New().String()[:10]
	if e.pub != nil {
		e.pub.PublishSale(SaleEvent{
			Code:      code,
			TicketID:  t.ID,
			EventID:   t.EventID,
			Price:     t.Price,
			Remaining: t.Quota,
			Sold:      t.Sold,
			SoldAt:    time.Now(),
		})
	}
	return t, code, nil
}

func (e *Engine) sell(id uint) (model.Ticket, error) {
	// Store có conditional update riêng (GORM/Postgres) thì DB là
	// điểm serialize, không cần lock trong process
	if seller, ok := e.store.(AtomicSeller); ok {
		t, err := seller.Sell(id)
		if err != nil {
			return model.Ticket{}, e.mapErr(err)
		}
		return t, nil
	}

	// Lock theo từng ticket id, vé khác nhau không chặn nhau
	l := e.lockFor(id)
	l.Lock()
	defer l.Unlock()

	t, err := e.store.Get(id)
	if err != nil {
		return model.Ticket{}, e.mapErr(err)
	}
	if t.Deleted {
		return model.Ticket{}, ErrTicketNotFound
	}
	if t.SoldOut() {
		return model.Ticket{}, ErrSoldOut
	}

	t.Quota--
	t.Sold++
	updated, err := e.store.Update(t)
	if err != nil {
		return model.Ticket{}, e.mapErr(err)
	}
	return updated, nil
}

// mapErr: lỗi nghiệp vụ giữ nguyên, lỗi hạ tầng gói thành ErrUnavailable
// để caller phân biệt được với SoldOut/NotFound và tự quyết retry
func (e *Engine) mapErr(err error) error {
	switch {
	case errors.Is(err, ErrTicketNotFound), errors.Is(err, ErrSoldOut):
		return err
	default:
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
}
