package bookings

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/m04kA/BarberBookingService/internal/domain"
	"github.com/m04kA/BarberBookingService/internal/infra/kv"
)

// Repository репозиторий записей
// Коллекция живет в памяти (единственный источник истины) и целиком
// сохраняется в key-value хранилище после каждой мутации
type Repository struct {
	store kv.Store

	mu    sync.RWMutex
	items []*domain.Booking
}

// NewRepository создает репозиторий и загружает коллекцию из хранилища
// Отсутствие ключа означает первый запуск: коллекция наполняется стартовыми
// данными и сразу сохраняется
func NewRepository(ctx context.Context, store kv.Store, now time.Time) (*Repository, error) {
	r := &Repository{store: store}

	data, err := store.Load(ctx, kv.KeyBookings)
	if err != nil {
		if !errors.Is(err, kv.ErrKeyNotFound) {
			return nil, fmt.Errorf("%w: NewRepository - load: %v", ErrLoadState, err)
		}
		r.items = domain.SeedBookings(now)
		if err := r.persist(ctx); err != nil {
			return nil, err
		}
		return r, nil
	}

	var stored []storedBooking
	if err := json.Unmarshal(data, &stored); err != nil {
		return nil, fmt.Errorf("%w: NewRepository - unmarshal: %v", ErrDecodeState, err)
	}

	r.items = make([]*domain.Booking, 0, len(stored))
	for _, s := range stored {
		r.items = append(r.items, fromStored(s))
	}

	return r, nil
}

// List возвращает записи по фильтру
// Для выборки на конкретную дату записи сортируются по времени начала (ASC),
// иначе по дате и времени (DESC - сначала новые)
func (r *Repository) List(_ context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*domain.Booking, 0)
	for _, b := range r.items {
		if filter.Date != nil && b.Date != *filter.Date {
			continue
		}
		if filter.Status != nil {
			if b.Status != *filter.Status {
				continue
			}
		} else if !filter.IncludeInactive && b.IsCancelled() {
			continue
		}
		result = append(result, clone(b))
	}

	if filter.Date != nil {
		sort.Slice(result, func(i, j int) bool {
			return result[i].Time.IsBefore(result[j].Time)
		})
	} else {
		sort.Slice(result, func(i, j int) bool {
			if result[i].Date != result[j].Date {
				return result[i].Date > result[j].Date
			}
			return result[i].Time.IsAfter(result[j].Time)
		})
	}

	return result, nil
}

// GetByID получает запись по ID
func (r *Repository) GetByID(_ context.Context, id string) (*domain.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, b := range r.items {
		if b.ID == id {
			return clone(b), nil
		}
	}
	return nil, ErrBookingNotFound
}

// Append добавляет новую запись в коллекцию и сохраняет состояние
// Репозиторий не проверяет занятость слота: это ответственность операции
// создания записи (см. usecase create_booking)
func (r *Repository) Append(ctx context.Context, booking *domain.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.items = append(r.items, clone(booking))
	if err := r.persist(ctx); err != nil {
		r.items = r.items[:len(r.items)-1]
		return err
	}
	return nil
}

// Update заменяет изменяемые персоналом поля записи и сохраняет состояние
// Затрагиваются только имя клиента, дата, время и статус; остальные поля
// (денормализованное название услуги, отзыв, подтверждение) не меняются
func (r *Repository) Update(ctx context.Context, id string, update domain.BookingUpdate) (*domain.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, b := range r.items {
		if b.ID != id {
			continue
		}
		prev := *b
		b.CustomerName = update.CustomerName
		b.Date = update.Date
		b.Time = update.Time
		b.Status = update.Status
		b.UpdatedAt = time.Now()

		// Коллекция в памяти остается источником истины только пока она
		// совпадает с сохраненным состоянием: при ошибке откатываем
		if err := r.persist(ctx); err != nil {
			*b = prev
			return nil, err
		}
		return clone(b), nil
	}

	return nil, ErrBookingNotFound
}

// SetStatus обновляет статус записи и сохраняет состояние
func (r *Repository) SetStatus(ctx context.Context, id string, status domain.BookingStatus) (*domain.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, b := range r.items {
		if b.ID != id {
			continue
		}
		prev := *b
		b.Status = status
		b.UpdatedAt = time.Now()

		if err := r.persist(ctx); err != nil {
			*b = prev
			return nil, err
		}
		return clone(b), nil
	}

	return nil, ErrBookingNotFound
}

// persist сохраняет коллекцию целиком
// Вызывается только под блокировкой записи
func (r *Repository) persist(ctx context.Context) error {
	stored := make([]storedBooking, 0, len(r.items))
	for _, b := range r.items {
		stored = append(stored, toStored(b))
	}

	data, err := json.Marshal(stored)
	if err != nil {
		return fmt.Errorf("%w: persist - marshal: %v", ErrSaveState, err)
	}
	if err := r.store.Save(ctx, kv.KeyBookings, data); err != nil {
		return fmt.Errorf("%w: persist - save: %v", ErrSaveState, err)
	}
	return nil
}
