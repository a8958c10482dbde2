package helper

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"event_ticketing/inventory"
	"event_ticketing/model"
)

func TestAutoDisableEndedEventTickets(t *testing.T) {
	store := inventory.NewMemoryStore()

	past := time.Now().Add(-48 * time.Hour)
	future := time.Now().Add(48 * time.Hour)

	endedEvent, err := store.CreateEvent(model.Event{Name: "Đã xong", Slug: "da-xong", StartTime: past.Add(-2 * time.Hour), EndTime: &past})
	require.NoError(t, err)
	liveEvent, err := store.CreateEvent(model.Event{Name: "Đang bán", Slug: "dang-ban", StartTime: time.Now(), EndTime: &future})
	require.NoError(t, err)
	openEvent, err := store.CreateEvent(model.Event{Name: "Không có end", Slug: "khong-end", StartTime: time.Now()})
	require.NoError(t, err)

	endedTicket, _ := store.Create(model.Ticket{Name: "A", Quota: 10, Category: model.CategoryRegular, EventID: endedEvent.ID})
	liveTicket, _ := store.Create(model.Ticket{Name: "B", Quota: 10, Category: model.CategoryRegular, EventID: liveEvent.ID})
	openTicket, _ := store.Create(model.Ticket{Name: "C", Quota: 10, Category: model.CategoryRegular, EventID: openEvent.ID})

	AutoDisableEndedEventTickets(store, store)

	got, _ := store.Get(endedTicket.ID)
	assert.True(t, got.Deleted)

	got, _ = store.Get(liveTicket.ID)
	assert.False(t, got.Deleted)

	// event không khai EndTime thì không đụng tới
	got, _ = store.Get(openTicket.ID)
	assert.False(t, got.Deleted)
}

func TestGenerateUniqueEventSlug(t *testing.T) {
	store := inventory.NewMemoryStore()

	first := GenerateUniqueEventSlug(store, "Đêm nhạc Mùa Thu")
	assert.Equal(t, "dem-nhac-mua-thu", first)

	_, err := store.CreateEvent(model.Event{Name: "Đêm nhạc Mùa Thu", Slug: first})
	require.NoError(t, err)

	second := GenerateUniqueEventSlug(store, "Đêm nhạc Mùa Thu")
	assert.Equal(t, "dem-nhac-mua-thu-1", second)
}
