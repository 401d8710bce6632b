package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/m04kA/BarberBookingService/internal/domain"
	"github.com/m04kA/BarberBookingService/internal/infra/kv"
)

// Формат хранения совместим с localStorage-форматом исходного SPA
type storedService struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	Description     string    `json:"description"`
	Price           float64   `json:"price"`
	DurationMinutes int       `json:"durationMinutes"`
	Image           string    `json:"image"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// Repository репозиторий каталога услуг
// Каталог живет в памяти и целиком сохраняется после каждой мутации
type Repository struct {
	store kv.Store

	mu    sync.RWMutex
	items []*domain.Service
}

// NewRepository создает репозиторий и загружает каталог из хранилища
// Отсутствие ключа означает первый запуск: каталог наполняется стартовыми услугами
func NewRepository(ctx context.Context, store kv.Store, now time.Time) (*Repository, error) {
	r := &Repository{store: store}

	data, err := store.Load(ctx, kv.KeyServices)
	if err != nil {
		if !errors.Is(err, kv.ErrKeyNotFound) {
			return nil, fmt.Errorf("%w: NewRepository - load: %v", ErrLoadState, err)
		}
		r.items = domain.SeedServices(now)
		if err := r.persist(ctx); err != nil {
			return nil, err
		}
		return r, nil
	}

	var stored []storedService
	if err := json.Unmarshal(data, &stored); err != nil {
		return nil, fmt.Errorf("%w: NewRepository - unmarshal: %v", ErrDecodeState, err)
	}

	r.items = make([]*domain.Service, 0, len(stored))
	for _, s := range stored {
		r.items = append(r.items, fromStored(s))
	}

	return r, nil
}

// List возвращает все услуги каталога в порядке добавления
func (r *Repository) List(_ context.Context) ([]*domain.Service, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*domain.Service, 0, len(r.items))
	for _, s := range r.items {
		copied := *s
		result = append(result, &copied)
	}
	return result, nil
}

// GetByID получает услугу по ID
func (r *Repository) GetByID(_ context.Context, id string) (*domain.Service, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, s := range r.items {
		if s.ID == id {
			copied := *s
			return &copied, nil
		}
	}
	return nil, ErrServiceNotFound
}

// Append добавляет новую услугу в каталог и сохраняет состояние
func (r *Repository) Append(ctx context.Context, service *domain.Service) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	copied := *service
	r.items = append(r.items, &copied)
	if err := r.persist(ctx); err != nil {
		r.items = r.items[:len(r.items)-1]
		return err
	}
	return nil
}

// Update применяет частичное обновление к услуге и сохраняет состояние
// nil-поля обновления не затрагивают существующие значения
func (r *Repository) Update(ctx context.Context, id string, update domain.ServiceUpdate) (*domain.Service, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, s := range r.items {
		if s.ID != id {
			continue
		}
		prev := *s
		if update.Name != nil {
			s.Name = *update.Name
		}
		if update.Description != nil {
			s.Description = *update.Description
		}
		if update.Price != nil {
			s.Price = *update.Price
		}
		if update.DurationMinutes != nil {
			s.DurationMinutes = *update.DurationMinutes
		}
		if update.Image != nil {
			s.Image = *update.Image
		}
		s.UpdatedAt = time.Now()

		// При ошибке сохранения коллекция в памяти откатывается,
		// чтобы не разойтись с сохраненным состоянием
		if err := r.persist(ctx); err != nil {
			*s = prev
			return nil, err
		}
		copied := *s
		return &copied, nil
	}

	return nil, ErrServiceNotFound
}

// Delete удаляет услугу из каталога и сохраняет состояние
// Записи, ссылающиеся на услугу, не затрагиваются: их денормализованное
// название остается валидным, ссылка становится "висячей" - это осознанное решение
func (r *Repository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, s := range r.items {
		if s.ID != id {
			continue
		}
		prev := r.items
		next := make([]*domain.Service, 0, len(r.items)-1)
		next = append(next, r.items[:i]...)
		next = append(next, r.items[i+1:]...)
		r.items = next
		if err := r.persist(ctx); err != nil {
			r.items = prev
			return err
		}
		return nil
	}

	return ErrServiceNotFound
}

// persist сохраняет каталог целиком
// Вызывается только под блокировкой записи
func (r *Repository) persist(ctx context.Context) error {
	stored := make([]storedService, 0, len(r.items))
	for _, s := range r.items {
		stored = append(stored, toStored(s))
	}

	data, err := json.Marshal(stored)
	if err != nil {
		return fmt.Errorf("%w: persist - marshal: %v", ErrSaveState, err)
	}
	if err := r.store.Save(ctx, kv.KeyServices, data); err != nil {
		return fmt.Errorf("%w: persist - save: %v", ErrSaveState, err)
	}
	return nil
}

func toStored(s *domain.Service) storedService {
	return storedService{
		ID:              s.ID,
		Name:            s.Name,
		Description:     s.Description,
		Price:           s.Price,
		DurationMinutes: s.DurationMinutes,
		Image:           s.Image,
		CreatedAt:       s.CreatedAt,
		UpdatedAt:       s.UpdatedAt,
	}
}

func fromStored(s storedService) *domain.Service {
	return &domain.Service{
		ID:              s.ID,
		Name:            s.Name,
		Description:     s.Description,
		Price:           s.Price,
		DurationMinutes: s.DurationMinutes,
		Image:           s.Image,
		CreatedAt:       s.CreatedAt,
		UpdatedAt:       s.UpdatedAt,
	}
}
