package bookings

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/BarberBookingService/internal/domain"
	"github.com/m04kA/BarberBookingService/internal/infra/kv"
	"github.com/m04kA/BarberBookingService/pkg/types"
)

// fakeStore in-memory реализация kv.Store для тестов
// failSave включает отказ сохранения для проверки отката
type fakeStore struct {
	data     map[string][]byte
	failSave bool
}

func newFakeStore() *fakeStore {
	return &fakeStore{data: make(map[string][]byte)}
}

var errSaveFailed = errors.New("save failed")

func (s *fakeStore) Load(_ context.Context, key string) ([]byte, error) {
	value, ok := s.data[key]
	if !ok {
		return nil, kv.ErrKeyNotFound
	}
	return value, nil
}

func (s *fakeStore) Save(_ context.Context, key string, value []byte) error {
	if s.failSave {
		return errSaveFailed
	}
	s.data[key] = value
	return nil
}

func TestNewRepository_SeedsOnFirstRun(t *testing.T) {
	store := newFakeStore()
	now := time.Date(2024, 3, 15, 8, 0, 0, 0, time.UTC)

	repo, err := NewRepository(context.Background(), store, now)
	require.NoError(t, err)

	items, err := repo.List(context.Background(), domain.BookingsFilter{IncludeInactive: true})
	require.NoError(t, err)
	assert.Len(t, items, 4)

	// Стартовые данные сразу сохранены в хранилище
	raw, ok := store.data[kv.KeyBookings]
	require.True(t, ok)

	var stored []storedBooking
	require.NoError(t, json.Unmarshal(raw, &stored))
	assert.Len(t, stored, 4)
}

func TestNewRepository_LoadsExistingState(t *testing.T) {
	store := newFakeStore()
	now := time.Now()

	first, err := NewRepository(context.Background(), store, now)
	require.NoError(t, err)

	_, err = first.SetStatus(context.Background(), "101", domain.StatusCompleted)
	require.NoError(t, err)

	// Новый репозиторий поверх того же хранилища видит сохраненное состояние
	second, err := NewRepository(context.Background(), store, now)
	require.NoError(t, err)

	booking, err := second.GetByID(context.Background(), "101")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCompleted, booking.Status)
}

func TestRepository_AppendPersists(t *testing.T) {
	store := newFakeStore()
	repo, err := NewRepository(context.Background(), store, time.Now())
	require.NoError(t, err)

	booking := &domain.Booking{
		ID:           "new-1",
		ServiceID:    "1",
		ServiceName:  "Неоновый фейд",
		CustomerName: "Клиент",
		Date:         "2024-03-20",
		Time:         types.TimeString("12:00"),
		Status:       domain.StatusConfirmed,
	}
	require.NoError(t, repo.Append(context.Background(), booking))

	var stored []storedBooking
	require.NoError(t, json.Unmarshal(store.data[kv.KeyBookings], &stored))
	assert.Len(t, stored, 5)

	found, err := repo.GetByID(context.Background(), "new-1")
	require.NoError(t, err)
	assert.Equal(t, "Неоновый фейд", found.ServiceName)
}

func TestRepository_ListByDateSortsAscending(t *testing.T) {
	store := newFakeStore()
	now := time.Date(2024, 3, 15, 8, 0, 0, 0, time.UTC)
	repo, err := NewRepository(context.Background(), store, now)
	require.NoError(t, err)

	today := now.Format(domain.DateFormat)
	items, err := repo.List(context.Background(), domain.BookingsFilter{Date: &today})
	require.NoError(t, err)
	require.NotEmpty(t, items)

	for i := 1; i < len(items); i++ {
		assert.True(t, items[i-1].Time.IsBefore(items[i].Time) || items[i-1].Time == items[i].Time)
	}
}

func TestRepository_ListExcludesCancelledByDefault(t *testing.T) {
	store := newFakeStore()
	repo, err := NewRepository(context.Background(), store, time.Now())
	require.NoError(t, err)

	_, err = repo.SetStatus(context.Background(), "101", domain.StatusCancelled)
	require.NoError(t, err)

	active, err := repo.List(context.Background(), domain.BookingsFilter{})
	require.NoError(t, err)
	for _, b := range active {
		assert.NotEqual(t, "101", b.ID)
	}

	all, err := repo.List(context.Background(), domain.BookingsFilter{IncludeInactive: true})
	require.NoError(t, err)
	assert.Len(t, all, 4)
}

func TestRepository_UpdateTouchesOnlyMutableFields(t *testing.T) {
	store := newFakeStore()
	repo, err := NewRepository(context.Background(), store, time.Now())
	require.NoError(t, err)

	before, err := repo.GetByID(context.Background(), "99")
	require.NoError(t, err)
	require.NotNil(t, before.Review)

	updated, err := repo.Update(context.Background(), "99", domain.BookingUpdate{
		CustomerName: "Новое имя",
		Date:         "2024-04-01",
		Time:         types.TimeString("11:30"),
		Status:       domain.StatusCompleted,
	})
	require.NoError(t, err)

	assert.Equal(t, "Новое имя", updated.CustomerName)
	assert.Equal(t, "2024-04-01", updated.Date)

	// Отзыв и денормализованное название услуги не затрагиваются
	assert.Equal(t, before.ServiceName, updated.ServiceName)
	require.NotNil(t, updated.Review)
	assert.Equal(t, before.Review.Rating, updated.Review.Rating)
}

func TestRepository_GetByIDNotFound(t *testing.T) {
	store := newFakeStore()
	repo, err := NewRepository(context.Background(), store, time.Now())
	require.NoError(t, err)

	_, err = repo.GetByID(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestRepository_ListReturnsCopies(t *testing.T) {
	store := newFakeStore()
	repo, err := NewRepository(context.Background(), store, time.Now())
	require.NoError(t, err)

	items, err := repo.List(context.Background(), domain.BookingsFilter{IncludeInactive: true})
	require.NoError(t, err)
	require.NotEmpty(t, items)

	items[0].CustomerName = "мутация снаружи"

	fresh, err := repo.GetByID(context.Background(), items[0].ID)
	require.NoError(t, err)
	assert.NotEqual(t, "мутация снаружи", fresh.CustomerName)
}
func TestRepository_AppendRollsBackOnSaveFailure(t *testing.T) {
	store := newFakeStore()
	repo, err := NewRepository(context.Background(), store, time.Now())
	require.NoError(t, err)

	store.failSave = true
	booking := &domain.Booking{
		ID:        "phantom-1",
		ServiceID: "1",
		Date:      "2024-03-20",
		Time:      types.TimeString("12:00"),
		Status:    domain.StatusConfirmed,
	}
	err = repo.Append(context.Background(), booking)
	require.ErrorIs(t, err, ErrSaveState)

	// Несохраненная запись не остается в коллекции
	_, err = repo.GetByID(context.Background(), "phantom-1")
	assert.ErrorIs(t, err, ErrBookingNotFound)

	// Следующее успешное сохранение не уносит ее в хранилище
	store.failSave = false
	_, err = repo.SetStatus(context.Background(), "101", domain.StatusCompleted)
	require.NoError(t, err)

	var stored []storedBooking
	require.NoError(t, json.Unmarshal(store.data[kv.KeyBookings], &stored))
	assert.Len(t, stored, 4)
	for _, s := range stored {
		assert.NotEqual(t, "phantom-1", s.ID)
	}
}

func TestRepository_SetStatusRollsBackOnSaveFailure(t *testing.T) {
	store := newFakeStore()
	repo, err := NewRepository(context.Background(), store, time.Now())
	require.NoError(t, err)

	store.failSave = true
	_, err = repo.SetStatus(context.Background(), "101", domain.StatusCancelled)
	require.ErrorIs(t, err, ErrSaveState)

	booking, err := repo.GetByID(context.Background(), "101")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusConfirmed, booking.Status)
}

func TestRepository_UpdateRollsBackOnSaveFailure(t *testing.T) {
	store := newFakeStore()
	repo, err := NewRepository(context.Background(), store, time.Now())
	require.NoError(t, err)

	before, err := repo.GetByID(context.Background(), "101")
	require.NoError(t, err)

	store.failSave = true
	_, err = repo.Update(context.Background(), "101", domain.BookingUpdate{
		CustomerName: "Фантом",
		Date:         "2024-04-01",
		Time:         types.TimeString("11:00"),
		Status:       domain.StatusConfirmed,
	})
	require.ErrorIs(t, err, ErrSaveState)

	after, err := repo.GetByID(context.Background(), "101")
	require.NoError(t, err)
	assert.Equal(t, before.CustomerName, after.CustomerName)
	assert.Equal(t, before.Date, after.Date)
}
