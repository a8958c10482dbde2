package inventory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"event_ticketing/model"
)

func newTicket(name string, quota int) model.Ticket {
	return model.Ticket{
		Name:     name,
		Price:    500,
		Category: model.CategoryRegular,
		Quota:    quota,
		EventID:  1,
	}
}

func TestMemoryStoreCreateAssignsIds(t *testing.T) {
	store := NewMemoryStore()

	first, err := store.Create(newTicket("A", 10))
	require.NoError(t, err)
	second, err := store.Create(newTicket("B", 10))
	require.NoError(t, err)

	assert.NotZero(t, first.ID)
	assert.NotEqual(t, first.ID, second.ID)
	assert.False(t, first.CreatedAt.IsZero())
}

func TestMemoryStoreGet(t *testing.T) {
	store := NewMemoryStore()
	created, _ := store.Create(newTicket("A", 10))

	got, err := store.Get(created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, "A", got.Name)

	_, err = store.Get(999)
	assert.ErrorIs(t, err, ErrTicketNotFound)
}

func TestMemoryStoreGetReturnsCopy(t *testing.T) {
	store := NewMemoryStore()
	created, _ := store.Create(newTicket("A", 10))

	got, _ := store.Get(created.ID)
	got.Quota = 0
	got.Name = "changed"

	// Sửa bản copy không được đụng vào state trong store
	again, _ := store.Get(created.ID)
	assert.Equal(t, 10, again.Quota)
	assert.Equal(t, "A", again.Name)
}

func TestMemoryStoreUpdate(t *testing.T) {
	store := NewMemoryStore()
	created, _ := store.Create(newTicket("A", 10))

	created.Quota = 3
	updated, err := store.Update(created)
	require.NoError(t, err)
	assert.Equal(t, 3, updated.Quota)

	missing := newTicket("X", 1)
	missing.ID = 999
	_, err = store.Update(missing)
	assert.ErrorIs(t, err, ErrTicketNotFound)
}

func TestMemoryStoreDelete(t *testing.T) {
	store := NewMemoryStore()
	created, _ := store.Create(newTicket("A", 10))

	require.NoError(t, store.Delete(created.ID))
	_, err := store.Get(created.ID)
	assert.ErrorIs(t, err, ErrTicketNotFound)

	assert.ErrorIs(t, store.Delete(created.ID), ErrTicketNotFound)
}

func TestMemoryStoreListSnapshot(t *testing.T) {
	store := NewMemoryStore()
	a, _ := store.Create(newTicket("A", 10))
	b, _ := store.Create(newTicket("B", 5))

	list, err := store.List()
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, a.ID, list[0].ID)
	assert.Equal(t, b.ID, list[1].ID)

	// Snapshot không phải live view: mutation sau khi List không lộ ra
	a.Quota = 0
	store.Update(a)
	assert.Equal(t, 10, list[0].Quota)
}

func TestMemoryStoreEvents(t *testing.T) {
	store := NewMemoryStore()

	event, err := store.CreateEvent(model.Event{Name: "Concert", Slug: "concert"})
	require.NoError(t, err)
	require.NotZero(t, event.ID)

	exists, err := store.EventExists(event.ID)
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = store.EventExists(999)
	require.NoError(t, err)
	assert.False(t, exists)

	taken, err := store.EventSlugTaken("concert")
	require.NoError(t, err)
	assert.True(t, taken)

	taken, err = store.EventSlugTaken("khac")
	require.NoError(t, err)
	assert.False(t, taken)
}

func TestMemoryStoreLedgerDedup(t *testing.T) {
	store := NewMemoryStore()
	rec := model.PurchaseRecord{Code: "TKT-abc", TicketID: 1, EventID: 1}

	require.NoError(t, store.RecordSale(rec))
	// giao lần hai (at-least-once) không tạo record mới
	require.NoError(t, store.RecordSale(rec))

	got, err := store.GetSaleByCode("TKT-abc")
	require.NoError(t, err)
	assert.Equal(t, uint(1), got.TicketID)

	_, err = store.GetSaleByCode("TKT-khong-co")
	assert.ErrorIs(t, err, ErrTicketNotFound)
}
