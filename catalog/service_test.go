package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"event_ticketing/inventory"
	"event_ticketing/model"
)

func newService(t *testing.T) (*Service, *inventory.MemoryStore, model.Event) {
	t.Helper()
	store := inventory.NewMemoryStore()
	event, err := store.CreateEvent(model.Event{Name: "Concert", Slug: "concert"})
	require.NoError(t, err)
	return NewService(store, store), store, event
}

func validInput(eventId uint) model.CreateTicketInput {
	return model.CreateTicketInput{
		Name:     "VIP",
		Price:    500,
		Quota:    2,
		Category: model.CategoryVIP,
		EventID:  eventId,
	}
}

func TestAddTicket(t *testing.T) {
	svc, _, event := newService(t)

	ticket, err := svc.AddTicket(validInput(event.ID))
	require.NoError(t, err)
	assert.NotZero(t, ticket.ID)
	assert.Equal(t, "VIP", ticket.Name)
	assert.Equal(t, 2, ticket.Quota)
	assert.Equal(t, 0, ticket.Sold)
	assert.False(t, ticket.Deleted)
}

func TestAddTicketValidation(t *testing.T) {
	svc, store, event := newService(t)

	cases := []struct {
		name  string
		input model.CreateTicketInput
	}{
		{"giá âm", func() model.CreateTicketInput {
			in := validInput(event.ID)
			in.Price = -1
			return in
		}()},
		{"quota âm", func() model.CreateTicketInput {
			in := validInput(event.ID)
			in.Quota = -5
			return in
		}()},
		{"category lạ", func() model.CreateTicketInput {
			in := validInput(event.ID)
			in.Category = "PREMIUM"
			return in
		}()},
		{"thiếu tên", func() model.CreateTicketInput {
			in := validInput(event.ID)
			in.Name = ""
			return in
		}()},
		{"event không tồn tại", func() model.CreateTicketInput {
			in := validInput(999)
			return in
		}()},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.AddTicket(tc.input)
			assert.ErrorIs(t, err, ErrValidation)
		})
	}

	// reject trước mọi mutation: store vẫn rỗng
	list, _ := store.List()
	assert.Empty(t, list)
}

func TestUpdateTicket(t *testing.T) {
	svc, _, event := newService(t)
	created, _ := svc.AddTicket(validInput(event.ID))

	newPrice := 800.0
	newName := "VIP Gold"
	updated, err := svc.UpdateTicket(created.ID, model.UpdateTicketInput{
		Price: &newPrice,
		Name:  &newName,
	})
	require.NoError(t, err)
	assert.Equal(t, 800.0, updated.Price)
	assert.Equal(t, "VIP Gold", updated.Name)
	// field không gửi thì giữ nguyên
	assert.Equal(t, 2, updated.Quota)
	assert.Equal(t, model.CategoryVIP, updated.Category)
}

func TestUpdateTicketNotFound(t *testing.T) {
	svc, _, _ := newService(t)

	price := 100.0
	_, err := svc.UpdateTicket(999, model.UpdateTicketInput{Price: &price})
	assert.ErrorIs(t, err, inventory.ErrTicketNotFound)
}

func TestUpdateTicketNegativeQuotaRejected(t *testing.T) {
	svc, _, event := newService(t)
	created, _ := svc.AddTicket(validInput(event.ID))

	bad := -1
	_, err := svc.UpdateTicket(created.ID, model.UpdateTicketInput{Quota: &bad})
	assert.ErrorIs(t, err, ErrValidation)
}

// Edge case giữ nguyên theo thiết kế: quota overwrite không đối chiếu sold.
// Set quota dưới sold → vé sold out ngay, không raise lỗi.
func TestUpdateTicketQuotaOverwriteBelowSold(t *testing.T) {
	svc, store, event := newService(t)
	engine := inventory.NewEngine(store, nil)
	created, _ := svc.AddTicket(validInput(event.ID))

	_, _, err := engine.Purchase(created.ID)
	require.NoError(t, err)

	zero := 0
	updated, err := svc.UpdateTicket(created.ID, model.UpdateTicketInput{Quota: &zero})
	require.NoError(t, err)
	assert.True(t, updated.SoldOut())
	assert.Equal(t, 1, updated.Sold)

	// và mở bán lại được bằng một overwrite khác
	ten := 10
	updated, err = svc.UpdateTicket(created.ID, model.UpdateTicketInput{Quota: &ten})
	require.NoError(t, err)
	assert.False(t, updated.SoldOut())
}

func TestListAvailableExcludesSoftDeleted(t *testing.T) {
	svc, _, event := newService(t)
	a, _ := svc.AddTicket(validInput(event.ID))
	in := validInput(event.ID)
	in.Name = "Thường"
	in.Category = model.CategoryRegular
	b, _ := svc.AddTicket(in)

	_, err := svc.DisableTicket(a.ID)
	require.NoError(t, err)

	list, err := svc.ListAvailable()
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, b.ID, list[0].ID)
}

func TestDisabledTicketCannotBePurchased(t *testing.T) {
	svc, store, event := newService(t)
	engine := inventory.NewEngine(store, nil)
	created, _ := svc.AddTicket(validInput(event.ID))

	_, err := svc.DisableTicket(created.ID)
	require.NoError(t, err)

	_, _, err = engine.Purchase(created.ID)
	assert.ErrorIs(t, err, inventory.ErrTicketNotFound)

	// enable lại thì mua được
	_, err = svc.EnableTicket(created.ID)
	require.NoError(t, err)
	_, _, err = engine.Purchase(created.ID)
	assert.NoError(t, err)
}

func TestDeleteTicket(t *testing.T) {
	svc, store, event := newService(t)
	engine := inventory.NewEngine(store, nil)
	created, _ := svc.AddTicket(validInput(event.ID))

	require.NoError(t, svc.DeleteTicket(created.ID))
	assert.ErrorIs(t, svc.DeleteTicket(created.ID), inventory.ErrTicketNotFound)

	// xoá xong thì purchase trả NotFound
	_, _, err := engine.Purchase(created.ID)
	assert.ErrorIs(t, err, inventory.ErrTicketNotFound)
}
