package settings

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
type storedSettings struct {
	Name      string    `json:"name"`
	Tagline   string    `json:"tagline"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Repository репозиторий singleton-настроек магазина
type Repository struct {
	store kv.Store

	mu      sync.RWMutex
	current domain.ShopSettings
}

// NewRepository создает репозиторий и загружает настройки из хранилища
// Отсутствие ключа означает первый запуск: используются настройки по умолчанию
func NewRepository(ctx context.Context, store kv.Store) (*Repository, error) {
	r := &Repository{store: store}

	data, err := store.Load(ctx, kv.KeySettings)
	if err != nil {
		if !errors.Is(err, kv.ErrKeyNotFound) {
			return nil, fmt.Errorf("%w: NewRepository - load: %v", ErrLoadState, err)
		}
		r.current = domain.SeedSettings()
		if err := r.persist(ctx); err != nil {
			return nil, err
		}
		return r, nil
	}

	var stored storedSettings
	if err := json.Unmarshal(data, &stored); err != nil {
		return nil, fmt.Errorf("%w: NewRepository - unmarshal: %v", ErrDecodeState, err)
	}

	r.current = domain.ShopSettings{
		Name:      stored.Name,
		Tagline:   stored.Tagline,
		UpdatedAt: stored.UpdatedAt,
	}

	return r, nil
}

// Get возвращает текущие настройки магазина
func (r *Repository) Get(_ context.Context) (domain.ShopSettings, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.current, nil
}

// Update заменяет настройки магазина и сохраняет состояние
func (r *Repository) Update(ctx context.Context, name, tagline string) (domain.ShopSettings, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	prev := r.current
	r.current = domain.ShopSettings{
		Name:      name,
		Tagline:   tagline,
		UpdatedAt: time.Now(),
	}

	if err := r.persist(ctx); err != nil {
		r.current = prev
		return domain.ShopSettings{}, err
	}
	return r.current, nil
}

// persist сохраняет настройки
// Вызывается только под блокировкой записи
func (r *Repository) persist(ctx context.Context) error {
	data, err := json.Marshal(storedSettings{
		Name:      r.current.Name,
		Tagline:   r.current.Tagline,
		UpdatedAt: r.current.UpdatedAt,
	})
	if err != nil {
		return fmt.Errorf("%w: persist - marshal: %v", ErrSaveState, err)
	}
	if err := r.store.Save(ctx, kv.KeySettings, data); err != nil {
		return fmt.Errorf("%w: persist - save: %v", ErrSaveState, err)
	}
	return nil
}
