package services

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
	"github.com/m04kA/BarberBookingService/pkg/ptr"
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

	repo, err := NewRepository(context.Background(), store, time.Now())
	require.NoError(t, err)

	items, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 4)
	assert.Equal(t, "Неоновый фейд", items[0].Name)

	var stored []storedService
	require.NoError(t, json.Unmarshal(store.data[kv.KeyServices], &stored))
	assert.Len(t, stored, 4)
}

func TestRepository_UpdatePartial(t *testing.T) {
	store := newFakeStore()
	repo, err := NewRepository(context.Background(), store, time.Now())
	require.NoError(t, err)

	before, err := repo.GetByID(context.Background(), "1")
	require.NoError(t, err)

	updated, err := repo.Update(context.Background(), "1", domain.ServiceUpdate{
		Price: ptr.Ptr(50.0),
	})
	require.NoError(t, err)

	assert.Equal(t, 50.0, updated.Price)
	// nil-поля не затронуты
	assert.Equal(t, before.Name, updated.Name)
	assert.Equal(t, before.DurationMinutes, updated.DurationMinutes)
}

func TestRepository_UpdateNotFound(t *testing.T) {
	store := newFakeStore()
	repo, err := NewRepository(context.Background(), store, time.Now())
	require.NoError(t, err)

	_, err = repo.Update(context.Background(), "missing", domain.ServiceUpdate{})
	assert.ErrorIs(t, err, ErrServiceNotFound)
}

func TestRepository_DeletePersists(t *testing.T) {
	store := newFakeStore()
	repo, err := NewRepository(context.Background(), store, time.Now())
	require.NoError(t, err)

	require.NoError(t, repo.Delete(context.Background(), "2"))

	_, err = repo.GetByID(context.Background(), "2")
	assert.ErrorIs(t, err, ErrServiceNotFound)

	var stored []storedService
	require.NoError(t, json.Unmarshal(store.data[kv.KeyServices], &stored))
	assert.Len(t, stored, 3)
}
func TestRepository_AppendRollsBackOnSaveFailure(t *testing.T) {
	store := newFakeStore()
	repo, err := NewRepository(context.Background(), store, time.Now())
	require.NoError(t, err)

	store.failSave = true
	err = repo.Append(context.Background(), &domain.Service{ID: "phantom", Name: "Фантом", Price: 10})
	require.ErrorIs(t, err, ErrSaveState)

	// Несохраненная услуга не остается в каталоге
	_, err = repo.GetByID(context.Background(), "phantom")
	assert.ErrorIs(t, err, ErrServiceNotFound)

	store.failSave = false
	_, err = repo.Update(context.Background(), "1", domain.ServiceUpdate{Price: ptr.Ptr(50.0)})
	require.NoError(t, err)

	var stored []storedService
	require.NoError(t, json.Unmarshal(store.data[kv.KeyServices], &stored))
	assert.Len(t, stored, 4)
}

func TestRepository_UpdateRollsBackOnSaveFailure(t *testing.T) {
	store := newFakeStore()
	repo, err := NewRepository(context.Background(), store, time.Now())
	require.NoError(t, err)

	before, err := repo.GetByID(context.Background(), "1")
	require.NoError(t, err)

	store.failSave = true
	_, err = repo.Update(context.Background(), "1", domain.ServiceUpdate{Price: ptr.Ptr(99.0)})
	require.ErrorIs(t, err, ErrSaveState)

	after, err := repo.GetByID(context.Background(), "1")
	require.NoError(t, err)
	assert.Equal(t, before.Price, after.Price)
}

func TestRepository_DeleteRollsBackOnSaveFailure(t *testing.T) {
	store := newFakeStore()
	repo, err := NewRepository(context.Background(), store, time.Now())
	require.NoError(t, err)

	store.failSave = true
	err = repo.Delete(context.Background(), "2")
	require.ErrorIs(t, err, ErrSaveState)

	// Услуга остается в каталоге
	_, err = repo.GetByID(context.Background(), "2")
	require.NoError(t, err)

	items, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, items, 4)
}
