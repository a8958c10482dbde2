package database

import (
	"errors"

	"gorm.io/gorm"

	"event_ticketing/inventory"
	"event_ticketing/model"
)

// GormStore là bản Postgres của inventory.Store. Giao dịch bán vé dùng
// conditional update nên DB tự serialize, không cần lock trong process.
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func (s *GormStore) Create(t model.Ticket) (model.Ticket, error) {
	if err := s.db.Create(&t).Error; err != nil {
		return model.Ticket{}, err
	}
	return t, nil
}

func (s *GormStore) Get(id uint) (model.Ticket, error) {
	var t model.Ticket
	if err := s.db.First(&t, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return model.Ticket{}, inventory.ErrTicketNotFound
		}
		return model.Ticket{}, err
	}
	return t, nil
}

func (s *GormStore) Update(t model.Ticket) (model.Ticket, error) {
	res := s.db.Model(&model.Ticket{}).
		Where("id = ?", t.ID).
		Select("name", "price", "category", "quota", "sold", "deleted").
		Updates(map[string]any{
			"name":     t.Name,
			"price":    t.Price,
			"category": t.Category,
			"quota":    t.Quota,
			"sold":     t.Sold,
			"deleted":  t.Deleted,
		})
	if res.Error != nil {
		return model.Ticket{}, res.Error
	}
	if res.RowsAffected == 0 {
		return model.Ticket{}, inventory.ErrTicketNotFound
	}
	return s.Get(t.ID)
}

func (s *GormStore) Delete(id uint) error {
	res := s.db.Delete(&model.Ticket{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return inventory.ErrTicketNotFound
	}
	return nil
}

func (s *GormStore) List() ([]model.Ticket, error) {
	var tickets []model.Ticket
	if err := s.db.Order("id").Find(&tickets).Error; err != nil {
		return nil, err
	}
	return tickets, nil
}

// Sell: decrement có điều kiện, RowsAffected == 1 nghĩa là bán thành công.
// Hai request cùng thấy quota = 1 thì chỉ một UPDATE ăn, request kia rơi
// vào nhánh phân loại NotFound / SoldOut bên dưới.
func (s *GormStore) Sell(id uint) (model.Ticket, error) {
	var t model.Ticket
	err := s.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&model.Ticket{}).
			Where("id = ? AND deleted = false AND quota > 0", id).
			Updates(map[string]any{
				"quota": gorm.Expr("quota - 1"),
				"sold":  gorm.Expr("sold + 1"),
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			var exists int64
			if err := tx.Model(&model.Ticket{}).
				Where("id = ? AND deleted = false", id).
				Count(&exists).Error; err != nil {
				return err
			}
			if exists == 0 {
				return inventory.ErrTicketNotFound
			}
			return inventory.ErrSoldOut
		}
		return tx.First(&t, id).Error
	})
	if err != nil {
		return model.Ticket{}, err
	}
	return t, nil
}

func (s *GormStore) CreateEvent(e model.Event) (model.Event, error) {
	if err := s.db.Create(&e).Error; err != nil {
		return model.Event{}, err
	}
	return e, nil
}

func (s *GormStore) GetEvent(id uint) (model.Event, error) {
	var e model.Event
	if err := s.db.First(&e, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return model.Event{}, inventory.ErrEventNotFound
		}
		return model.Event{}, err
	}
	return e, nil
}

func (s *GormStore) ListEvents() ([]model.Event, error) {
	var events []model.Event
	if err := s.db.Order("id").Find(&events).Error; err != nil {
		return nil, err
	}
	return events, nil
}

func (s *GormStore) EventExists(id uint) (bool, error) {
	var count int64
	if err := s.db.Model(&model.Event{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (s *GormStore) EventSlugTaken(slug string) (bool, error) {
	var count int64
	if err := s.db.Model(&model.Event{}).Where("slug = ?", slug).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (s *GormStore) RecordSale(rec model.PurchaseRecord) error {
	// code có uniqueIndex, queue giao trùng thì bỏ qua
	err := s.db.Create(&rec).Error
	if err != nil && errors.Is(err, gorm.ErrDuplicatedKey) {
		return nil
	}
	return err
}

func (s *GormStore) GetSaleByCode(code string) (model.PurchaseRecord, error) {
	var rec model.PurchaseRecord
	if err := s.db.Where("code = ?", code).First(&rec).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return model.PurchaseRecord{}, inventory.ErrTicketNotFound
		}
		return model.PurchaseRecord{}, err
	}
	return rec, nil
}
